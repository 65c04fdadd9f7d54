// internal/adapters/db/device_grade_repository.go
package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/renewcart/buyback-be/internal/core/domain"
	"github.com/renewcart/buyback-be/internal/core/ports"
	"github.com/renewcart/buyback-be/internal/pkg/apperror"
)

// DeviceGradeRepository implements ports.DeviceGradeRepository using
// PostgreSQL. The device_grades table carries a partial unique index on
// (device_id, tenant_id) WHERE status = 'active', so two concurrent
// stock-ins for the same device cannot both commit an active record.
type DeviceGradeRepository struct {
	db *Database
}

// NewDeviceGradeRepository creates a new device grade repository
func NewDeviceGradeRepository(database *Database) *DeviceGradeRepository {
	return &DeviceGradeRepository{db: database}
}

var _ ports.DeviceGradeRepository = (*DeviceGradeRepository)(nil)

const deviceGradeColumns = `
	id, device_id, grade_id, actor_id, tenant_id, status, created_at, updated_at`

// CurrentActive retrieves the device's active grade record.
// Returns (nil, nil) when the device has no active grade.
func (r *DeviceGradeRepository) CurrentActive(ctx context.Context, deviceID, tenantID uuid.UUID) (*domain.DeviceGradeRecord, error) {
	query := `
		SELECT` + deviceGradeColumns + `
		FROM device_grades
		WHERE device_id = $1 AND tenant_id = $2 AND status = $3`

	record, err := scanDeviceGrade(r.db.QueryRow(ctx, query, deviceID, tenantID, domain.GradeStatusActive))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find active grade record: %w", err)
	}

	return record, nil
}

// History lists all grade records for a device, most recent first
func (r *DeviceGradeRepository) History(ctx context.Context, deviceID, tenantID uuid.UUID) ([]*domain.DeviceGradeRecord, error) {
	query := `
		SELECT` + deviceGradeColumns + `
		FROM device_grades
		WHERE device_id = $1 AND tenant_id = $2
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, deviceID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list grade history: %w", err)
	}
	defer rows.Close()

	var records []*domain.DeviceGradeRecord
	for rows.Next() {
		record, err := scanDeviceGrade(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan grade record: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// Deactivate marks a grade record inactive. History rows are never deleted.
func (r *DeviceGradeRepository) Deactivate(ctx context.Context, q ports.Querier, recordID uuid.UUID) error {
	query := `
		UPDATE device_grades
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4`

	tag, err := q.Exec(ctx, query,
		domain.GradeStatusInactive, time.Now(), recordID, domain.GradeStatusActive)
	if err != nil {
		return fmt.Errorf("failed to deactivate grade record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Insert appends a new grade record. When a concurrent stock-in already
// committed an active record for the device, the partial unique index
// rejects the insert and the caller's transaction rolls back with the same
// Conflict the fast-path guard produces.
func (r *DeviceGradeRepository) Insert(ctx context.Context, q ports.Querier, record *domain.DeviceGradeRecord) error {
	query := `
		INSERT INTO device_grades (
			id, device_id, grade_id, actor_id, tenant_id, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := q.Exec(ctx, query,
		record.ID, record.DeviceID, record.GradeID, record.ActorID,
		record.TenantID, record.Status, record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err, "uq_device_grades_active") {
			return apperror.Conflict("device already has this grade")
		}
		return fmt.Errorf("failed to insert grade record: %w", err)
	}

	return nil
}

func scanDeviceGrade(row pgx.Row) (*domain.DeviceGradeRecord, error) {
	var rec domain.DeviceGradeRecord
	err := row.Scan(
		&rec.ID, &rec.DeviceID, &rec.GradeID, &rec.ActorID,
		&rec.TenantID, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
