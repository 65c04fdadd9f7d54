// internal/core/domain/stock.go
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovementReason classifies why stock changed
type MovementReason string

// Movement reason constants
const (
	ReasonPurchase         MovementReason = "purchase"
	ReasonSale             MovementReason = "sale"
	ReasonReturnToCustomer MovementReason = "return_to_customer"
	ReasonAdjustment       MovementReason = "adjustment"
)

// MovementRefType identifies the kind of record a movement points back to
type MovementRefType string

// Movement reference type constants
const (
	RefTypeStockIn  MovementRefType = "stock_in"
	RefTypeStockOut MovementRefType = "stock_out"
	RefTypeManual   MovementRefType = "manual"
)

// StockMovement is one immutable ledger entry: a signed quantity delta for a
// SKU at a warehouse. Rows are inserted once and never updated or deleted;
// the stock level for the same (sku, warehouse, tenant) must stay
// reconcilable with the sum of these deltas.
type StockMovement struct {
	ID          uuid.UUID       `json:"id"`
	SKU         string          `json:"sku"`
	WarehouseID uuid.UUID       `json:"warehouse_id"`
	TenantID    uuid.UUID       `json:"tenant_id"`
	Delta       int             `json:"delta"`
	Reason      MovementReason  `json:"reason"`
	RefType     MovementRefType `json:"ref_type"`
	RefID       uuid.UUID       `json:"ref_id"`
	ActorID     uuid.UUID       `json:"actor_id"`
	UnitValue   decimal.Decimal `json:"unit_value"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Validate performs domain validation on the movement
func (m *StockMovement) Validate() error {
	if strings.TrimSpace(m.SKU) == "" {
		return fmt.Errorf("sku is required")
	}
	if m.Delta == 0 {
		return fmt.Errorf("delta must be non-zero")
	}
	if m.WarehouseID == uuid.Nil {
		return fmt.Errorf("warehouse_id is required")
	}
	if m.TenantID == uuid.Nil {
		return fmt.Errorf("tenant_id is required")
	}
	if m.Reason == "" {
		return fmt.Errorf("reason is required")
	}
	if m.UnitValue.IsNegative() {
		return fmt.Errorf("unit_value cannot be negative")
	}
	return nil
}

// PrepareForStorage prepares the movement for database storage
func (m *StockMovement) PrepareForStorage() {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.SKU = strings.TrimSpace(m.SKU)
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
}

// StockLevel is the derived current quantity for a (sku, warehouse, tenant)
// triple. It only ever changes through an atomic increment applied in the
// same transaction as the corresponding movement insert.
type StockLevel struct {
	ID          uuid.UUID `json:"id"`
	SKU         string    `json:"sku"`
	WarehouseID uuid.UUID `json:"warehouse_id"`
	TenantID    uuid.UUID `json:"tenant_id"`
	Quantity    int       `json:"quantity"`
}

// StockUnit associates one physical device with the stock lot it was booked
// into, so individual handsets remain traceable after stock-in.
type StockUnit struct {
	ID          uuid.UUID `json:"id"`
	DeviceID    uuid.UUID `json:"device_id"`
	SKU         string    `json:"sku"`
	WarehouseID uuid.UUID `json:"warehouse_id"`
	TenantID    uuid.UUID `json:"tenant_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReconciliationEntry is one row of a ledger-vs-aggregate comparison.
// Drift means the aggregate quantity no longer matches the movement sum.
type ReconciliationEntry struct {
	SKU         string    `json:"sku"`
	WarehouseID uuid.UUID `json:"warehouse_id"`
	TenantID    uuid.UUID `json:"tenant_id"`
	Quantity    int       `json:"quantity"`
	LedgerSum   int       `json:"ledger_sum"`
	Drift       int       `json:"drift"`
}

// InSync reports whether the aggregate matches its ledger.
func (e *ReconciliationEntry) InSync() bool {
	return e.Drift == 0
}
