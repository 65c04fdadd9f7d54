// internal/core/ports/repositories.go
package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/renewcart/buyback-be/internal/core/domain"
)

// Finders return (nil, nil) when no row matches; callers decide whether an
// absence is an error.

// DeviceRepository defines the persistence port for devices.
type DeviceRepository interface {
	FindByIMEI(ctx context.Context, imei string, tenantID uuid.UUID) (*domain.Device, error)
	FindByID(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) (*domain.Device, error)
	Save(ctx context.Context, device *domain.Device) error
}

// GradeRepository defines the persistence port for the grade catalog.
type GradeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) (*domain.Grade, error)
	FindAll(ctx context.Context, tenantID uuid.UUID) ([]*domain.Grade, error)
	Save(ctx context.Context, grade *domain.Grade) error
	Update(ctx context.Context, grade *domain.Grade) error
	Delete(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) error
	InUse(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) (bool, error)
}

// DeviceGradeRepository defines the persistence port for the grade
// assignment ledger. Write methods take a Querier so the stock-in
// transaction can span repositories.
type DeviceGradeRepository interface {
	CurrentActive(ctx context.Context, deviceID, tenantID uuid.UUID) (*domain.DeviceGradeRecord, error)
	History(ctx context.Context, deviceID, tenantID uuid.UUID) ([]*domain.DeviceGradeRecord, error)
	Deactivate(ctx context.Context, q Querier, recordID uuid.UUID) error
	Insert(ctx context.Context, q Querier, record *domain.DeviceGradeRecord) error
}

// SkuMappingRepository defines the persistence port for SKU mappings.
type SkuMappingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) (*domain.SkuMapping, error)
	FindByCanonicalKey(ctx context.Context, key string, tenantID uuid.UUID) (*domain.SkuMapping, error)
	FindAll(ctx context.Context, tenantID uuid.UUID) ([]*domain.SkuMapping, error)
	Save(ctx context.Context, mapping *domain.SkuMapping) error
	Update(ctx context.Context, mapping *domain.SkuMapping) error
	Delete(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) error
}

// MovementListParams holds filters for listing stock movements
type MovementListParams struct {
	SKU         string
	WarehouseID uuid.UUID
	Reason      string
	Page        int
	PageSize    int
}

// StockRepository defines the persistence port for the movement ledger,
// derived stock levels and device-to-lot links.
type StockRepository interface {
	// EnsureLevel creates a zero-quantity level row if absent. Idempotent.
	EnsureLevel(ctx context.Context, q Querier, sku string, warehouseID, tenantID uuid.UUID) error
	// AppendMovement inserts the immutable ledger row and applies the
	// matching atomic increment to the level in the same call, so neither
	// can commit without the other.
	AppendMovement(ctx context.Context, q Querier, movement *domain.StockMovement) error
	// LinkUnit associates a physical device with its stocked lot.
	LinkUnit(ctx context.Context, q Querier, unit *domain.StockUnit) error

	Levels(ctx context.Context, tenantID uuid.UUID) ([]*domain.StockLevel, error)
	Movements(ctx context.Context, tenantID uuid.UUID, params MovementListParams) ([]*domain.StockMovement, int64, error)
	// Reconcile compares every level row against the sum of its movement
	// deltas and returns one entry per (sku, warehouse).
	Reconcile(ctx context.Context, tenantID uuid.UUID) ([]*domain.ReconciliationEntry, error)
}

// DeviceEventRepository defines the persistence port for the device audit
// trail.
type DeviceEventRepository interface {
	Append(ctx context.Context, q Querier, event *domain.DeviceEvent) error
	ListByDevice(ctx context.Context, deviceID, tenantID uuid.UUID) ([]*domain.DeviceEvent, error)
}

// WarehouseRepository looks up stocking locations managed elsewhere.
type WarehouseRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Warehouse, error)
}

// ActorRepository looks up operators managed elsewhere.
type ActorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Actor, error)
}

// TestResultRepository looks up diagnostic results uploaded by the testing
// pipeline.
type TestResultRepository interface {
	LatestByDevice(ctx context.Context, deviceID, tenantID uuid.UUID) (*domain.TestResult, error)
}

// TenantRepository enumerates tenants, used by scheduled jobs that fan out
// per tenant.
type TenantRepository interface {
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
}
