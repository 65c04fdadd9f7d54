// internal/adapters/db/lookup_repository.go
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/renewcart/buyback-be/internal/core/domain"
	"github.com/renewcart/buyback-be/internal/core/ports"
)

// WarehouseRepository implements ports.WarehouseRepository
type WarehouseRepository struct {
	db *Database
}

// NewWarehouseRepository creates a new warehouse repository
func NewWarehouseRepository(database *Database) *WarehouseRepository {
	return &WarehouseRepository{db: database}
}

var _ ports.WarehouseRepository = (*WarehouseRepository)(nil)

// FindByID retrieves a warehouse by ID. Returns (nil, nil) when absent.
func (r *WarehouseRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Warehouse, error) {
	var w domain.Warehouse
	err := r.db.QueryRow(ctx,
		`SELECT id, name, created_at FROM warehouses WHERE id = $1`, id,
	).Scan(&w.ID, &w.Name, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find warehouse: %w", err)
	}

	return &w, nil
}

// ActorRepository implements ports.ActorRepository
type ActorRepository struct {
	db *Database
}

// NewActorRepository creates a new actor repository
func NewActorRepository(database *Database) *ActorRepository {
	return &ActorRepository{db: database}
}

var _ ports.ActorRepository = (*ActorRepository)(nil)

// FindByID retrieves an actor by ID. Returns (nil, nil) when absent.
func (r *ActorRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Actor, error) {
	var a domain.Actor
	err := r.db.QueryRow(ctx,
		`SELECT id, name, email, created_at FROM actors WHERE id = $1`, id,
	).Scan(&a.ID, &a.Name, &a.Email, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find actor: %w", err)
	}

	return &a, nil
}

// TestResultRepository implements ports.TestResultRepository
type TestResultRepository struct {
	db *Database
}

// NewTestResultRepository creates a new test result repository
func NewTestResultRepository(database *Database) *TestResultRepository {
	return &TestResultRepository{db: database}
}

var _ ports.TestResultRepository = (*TestResultRepository)(nil)

// LatestByDevice retrieves the most recent diagnostic result for a device.
// Returns (nil, nil) when the device was never tested.
func (r *TestResultRepository) LatestByDevice(ctx context.Context, deviceID, tenantID uuid.UUID) (*domain.TestResult, error) {
	query := `
		SELECT id, device_id, tenant_id, make, model_name, storage, color,
			battery_health, passed, created_at
		FROM test_results
		WHERE device_id = $1 AND tenant_id = $2
		ORDER BY created_at DESC
		LIMIT 1`

	var t domain.TestResult
	err := r.db.QueryRow(ctx, query, deviceID, tenantID).Scan(
		&t.ID, &t.DeviceID, &t.TenantID, &t.Make, &t.ModelName, &t.Storage,
		&t.Color, &t.BatteryHealth, &t.Passed, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find latest test result: %w", err)
	}

	return &t, nil
}

// TenantRepository implements ports.TenantRepository
type TenantRepository struct {
	db *Database
}

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(database *Database) *TenantRepository {
	return &TenantRepository{db: database}
}

var _ ports.TenantRepository = (*TenantRepository)(nil)

// ListIDs returns the IDs of all registered tenants.
func (r *TenantRepository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM tenants ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan tenant id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
