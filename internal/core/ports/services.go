// internal/core/ports/services.go
package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/renewcart/buyback-be/internal/core/domain"
)

// StockInRequest carries the inputs of a stock-in call. SKU is an optional
// override; when empty the SKU is resolved from the device's latest test
// result plus the grade name.
type StockInRequest struct {
	IMEI        string          `json:"imei"`
	GradeID     uuid.UUID       `json:"grade_id"`
	WarehouseID uuid.UUID       `json:"warehouse_id"`
	SKU         string          `json:"sku,omitempty"`
	UnitValue   decimal.Decimal `json:"unit_value,omitempty"`
	Remarks     string          `json:"remarks,omitempty"`
}

// StockInResult is the successful outcome of a stock-in call.
type StockInResult struct {
	DeviceID      uuid.UUID `json:"device_id"`
	IMEI          string    `json:"imei"`
	GradeID       uuid.UUID `json:"grade_id"`
	GradeName     string    `json:"grade_name"`
	GradeColor    string    `json:"grade_color"`
	SKU           string    `json:"sku"`
	DeviceGradeID uuid.UUID `json:"device_grade_id"`
	EventID       uuid.UUID `json:"event_id"`
	WarehouseID   uuid.UUID `json:"warehouse_id"`
	WarehouseName string    `json:"warehouse_name"`
	ActorID       uuid.UUID `json:"actor_id"`
	ActorName     string    `json:"actor_name"`
	Message       string    `json:"message"`
}

// StockInService is the transactional stock-in workflow.
type StockInService interface {
	ProcessStockIn(ctx context.Context, req StockInRequest, actorID, tenantID uuid.UUID) (*StockInResult, error)
	GradeHistory(ctx context.Context, imei string, tenantID uuid.UUID) ([]*domain.DeviceGradeRecord, error)
	Events(ctx context.Context, imei string, tenantID uuid.UUID) ([]*domain.DeviceEvent, error)
}

// SkuMappingService manages condition-to-SKU mappings and performs runtime
// SKU resolution.
type SkuMappingService interface {
	Create(ctx context.Context, sku string, conditions map[string]string, tenantID uuid.UUID) (*domain.SkuMapping, error)
	Update(ctx context.Context, id uuid.UUID, sku string, conditions map[string]string, tenantID uuid.UUID) (*domain.SkuMapping, error)
	Delete(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) (*domain.SkuMapping, error)
	List(ctx context.Context, tenantID uuid.UUID) ([]*domain.SkuMapping, error)
	// ResolveSKU builds the canonical key for the condition set and returns
	// the mapped SKU, or ("", nil) when no mapping exists.
	ResolveSKU(ctx context.Context, conditions map[string]string, tenantID uuid.UUID) (string, error)
}

// GradeService manages the tenant-scoped grade catalog.
type GradeService interface {
	Create(ctx context.Context, name, color string, tenantID uuid.UUID) (*domain.Grade, error)
	Update(ctx context.Context, id uuid.UUID, name, color string, tenantID uuid.UUID) (*domain.Grade, error)
	Delete(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) (*domain.Grade, error)
	List(ctx context.Context, tenantID uuid.UUID) ([]*domain.Grade, error)
}

// ReconcileService checks stock aggregates against the movement ledger.
type ReconcileService interface {
	Run(ctx context.Context, tenantID uuid.UUID) ([]*domain.ReconciliationEntry, error)
}
