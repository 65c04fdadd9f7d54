// internal/adapters/db/device_repository.go
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

// DeviceRepository implements ports.DeviceRepository using PostgreSQL
type DeviceRepository struct {
	db *Database
}

// NewDeviceRepository creates a new device repository
func NewDeviceRepository(database *Database) *DeviceRepository {
	return &DeviceRepository{db: database}
}

var _ ports.DeviceRepository = (*DeviceRepository)(nil)

const deviceColumns = `
	id, tenant_id, imei, serial, guid, make, model_name, storage, color,
	created_at, updated_at, deleted_at`

// FindByIMEI retrieves a device by its IMEI within a tenant.
// Returns (nil, nil) when no device matches.
func (r *DeviceRepository) FindByIMEI(ctx context.Context, imei string, tenantID uuid.UUID) (*domain.Device, error) {
	query := `
		SELECT` + deviceColumns + `
		FROM devices
		WHERE imei = $1 AND tenant_id = $2 AND deleted_at IS NULL`

	device, err := scanDevice(r.db.QueryRow(ctx, query, imei, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find device by imei: %w", err)
	}

	return device, nil
}

// FindByID retrieves a device by ID within a tenant.
// Returns (nil, nil) when no device matches.
func (r *DeviceRepository) FindByID(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) (*domain.Device, error) {
	query := `
		SELECT` + deviceColumns + `
		FROM devices
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL`

	device, err := scanDevice(r.db.QueryRow(ctx, query, id, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find device by id: %w", err)
	}

	return device, nil
}

// Save inserts a new device
func (r *DeviceRepository) Save(ctx context.Context, device *domain.Device) error {
	device.PrepareForStorage()

	query := `
		INSERT INTO devices (
			id, tenant_id, imei, serial, guid, make, model_name, storage, color,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(ctx, query,
		device.ID, device.TenantID, device.IMEI, device.Serial, device.GUID,
		device.Make, device.ModelName, device.Storage, device.Color,
		device.CreatedAt, device.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save device: %w", err)
	}

	return nil
}

func scanDevice(row pgx.Row) (*domain.Device, error) {
	var d domain.Device
	err := row.Scan(
		&d.ID, &d.TenantID, &d.IMEI, &d.Serial, &d.GUID,
		&d.Make, &d.ModelName, &d.Storage, &d.Color,
		&d.CreatedAt, &d.UpdatedAt, &d.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
