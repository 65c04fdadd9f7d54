// internal/adapters/db/device_event_repository.go
package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/renewcart/buyback-be/internal/core/domain"
	"github.com/renewcart/buyback-be/internal/core/ports"
)

// DeviceEventRepository implements ports.DeviceEventRepository using
// PostgreSQL. Events are append-only; there is no update or delete path.
type DeviceEventRepository struct {
	db *Database
}

// NewDeviceEventRepository creates a new device event repository
func NewDeviceEventRepository(database *Database) *DeviceEventRepository {
	return &DeviceEventRepository{db: database}
}

var _ ports.DeviceEventRepository = (*DeviceEventRepository)(nil)

// Append inserts an audit-log entry. The details snapshot is stored as
// JSONB so renamed grades or warehouses never rewrite history.
func (r *DeviceEventRepository) Append(ctx context.Context, q ports.Querier, event *domain.DeviceEvent) error {
	event.PrepareForStorage()

	query := `
		INSERT INTO device_events (
			id, device_id, actor_id, tenant_id, event_type, details, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := q.Exec(ctx, query,
		event.ID, event.DeviceID, event.ActorID, event.TenantID,
		event.EventType, event.Details, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append device event: %w", err)
	}

	return nil
}

// ListByDevice lists a device's events, most recent first
func (r *DeviceEventRepository) ListByDevice(ctx context.Context, deviceID, tenantID uuid.UUID) ([]*domain.DeviceEvent, error) {
	query := `
		SELECT id, device_id, actor_id, tenant_id, event_type, details, created_at
		FROM device_events
		WHERE device_id = $1 AND tenant_id = $2
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, deviceID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list device events: %w", err)
	}
	defer rows.Close()

	var events []*domain.DeviceEvent
	for rows.Next() {
		var e domain.DeviceEvent
		err := rows.Scan(
			&e.ID, &e.DeviceID, &e.ActorID, &e.TenantID,
			&e.EventType, &e.Details, &e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan device event: %w", err)
		}
		events = append(events, &e)
	}

	return events, rows.Err()
}
