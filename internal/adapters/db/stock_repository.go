// internal/adapters/db/stock_repository.go
package db

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/renewcart/buyback-be/internal/core/domain"
	"github.com/renewcart/buyback-be/internal/core/ports"
)

// StockRepository implements ports.StockRepository using PostgreSQL
type StockRepository struct {
	db *Database
	sb sq.StatementBuilderType
}

// NewStockRepository creates a new stock repository
func NewStockRepository(database *Database) *StockRepository {
	return &StockRepository{
		db: database,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var _ ports.StockRepository = (*StockRepository)(nil)

// EnsureLevel creates a zero-quantity level row for (sku, warehouse, tenant)
// if none exists. ON CONFLICT DO NOTHING keeps it idempotent under
// concurrent stock-ins for the same triple.
func (r *StockRepository) EnsureLevel(ctx context.Context, q ports.Querier, sku string, warehouseID, tenantID uuid.UUID) error {
	query := `
		INSERT INTO stock_levels (id, sku, warehouse_id, tenant_id, quantity)
		VALUES ($1, $2, $3, $4, 0)
		ON CONFLICT (sku, warehouse_id, tenant_id) DO NOTHING`

	if _, err := q.Exec(ctx, query, uuid.New(), sku, warehouseID, tenantID); err != nil {
		return fmt.Errorf("failed to ensure stock level: %w", err)
	}

	return nil
}

// AppendMovement inserts the immutable ledger row and applies the matching
// increment to the level row in the same call. Both statements run on the
// supplied Querier, so inside a transaction neither commits without the
// other. The increment is relative (quantity = quantity + delta), never an
// absolute overwrite.
func (r *StockRepository) AppendMovement(ctx context.Context, q ports.Querier, movement *domain.StockMovement) error {
	movement.PrepareForStorage()

	insertQuery := `
		INSERT INTO stock_movements (
			id, sku, warehouse_id, tenant_id, delta, reason, ref_type, ref_id,
			actor_id, unit_value, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := q.Exec(ctx, insertQuery,
		movement.ID, movement.SKU, movement.WarehouseID, movement.TenantID,
		movement.Delta, movement.Reason, movement.RefType, movement.RefID,
		movement.ActorID, movement.UnitValue, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert stock movement: %w", err)
	}

	updateQuery := `
		UPDATE stock_levels
		SET quantity = quantity + $1
		WHERE sku = $2 AND warehouse_id = $3 AND tenant_id = $4`

	tag, err := q.Exec(ctx, updateQuery,
		movement.Delta, movement.SKU, movement.WarehouseID, movement.TenantID)
	if err != nil {
		return fmt.Errorf("failed to apply stock increment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("stock level missing for sku %s: %w", movement.SKU, pgx.ErrNoRows)
	}

	return nil
}

// LinkUnit associates a physical device with its stocked lot
func (r *StockRepository) LinkUnit(ctx context.Context, q ports.Querier, unit *domain.StockUnit) error {
	if unit.ID == uuid.Nil {
		unit.ID = uuid.New()
	}

	query := `
		INSERT INTO stock_units (id, device_id, sku, warehouse_id, tenant_id, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())`

	_, err := q.Exec(ctx, query,
		unit.ID, unit.DeviceID, unit.SKU, unit.WarehouseID, unit.TenantID)
	if err != nil {
		return fmt.Errorf("failed to link stock unit: %w", err)
	}

	return nil
}

// Levels lists a tenant's stock levels ordered by SKU then warehouse
func (r *StockRepository) Levels(ctx context.Context, tenantID uuid.UUID) ([]*domain.StockLevel, error) {
	query := `
		SELECT id, sku, warehouse_id, tenant_id, quantity
		FROM stock_levels
		WHERE tenant_id = $1
		ORDER BY sku, warehouse_id`

	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock levels: %w", err)
	}
	defer rows.Close()

	var levels []*domain.StockLevel
	for rows.Next() {
		var l domain.StockLevel
		if err := rows.Scan(&l.ID, &l.SKU, &l.WarehouseID, &l.TenantID, &l.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan stock level: %w", err)
		}
		levels = append(levels, &l)
	}

	return levels, rows.Err()
}

// Movements lists ledger entries matching the filters, newest first, with
// the total count for pagination
func (r *StockRepository) Movements(ctx context.Context, tenantID uuid.UUID, params ports.MovementListParams) ([]*domain.StockMovement, int64, error) {
	conditions := sq.And{sq.Eq{"tenant_id": tenantID}}
	if params.SKU != "" {
		conditions = append(conditions, sq.Eq{"sku": params.SKU})
	}
	if params.WarehouseID != uuid.Nil {
		conditions = append(conditions, sq.Eq{"warehouse_id": params.WarehouseID})
	}
	if params.Reason != "" {
		conditions = append(conditions, sq.Eq{"reason": params.Reason})
	}

	countSQL, countArgs, err := r.sb.
		Select("COUNT(*)").
		From("stock_movements").
		Where(conditions).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count stock movements: %w", err)
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}

	listSQL, listArgs, err := r.sb.
		Select("id", "sku", "warehouse_id", "tenant_id", "delta", "reason",
			"ref_type", "ref_id", "actor_id", "unit_value", "created_at").
		From("stock_movements").
		Where(conditions).
		OrderBy("created_at DESC").
		Limit(uint64(pageSize)).
		Offset(uint64((page - 1) * pageSize)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := r.db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list stock movements: %w", err)
	}
	defer rows.Close()

	var movements []*domain.StockMovement
	for rows.Next() {
		var m domain.StockMovement
		err := rows.Scan(
			&m.ID, &m.SKU, &m.WarehouseID, &m.TenantID, &m.Delta, &m.Reason,
			&m.RefType, &m.RefID, &m.ActorID, &m.UnitValue, &m.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan stock movement: %w", err)
		}
		movements = append(movements, &m)
	}

	return movements, total, rows.Err()
}

// Reconcile compares every level row against the sum of its ledger deltas.
// Levels without movements compare against 0; movements without a level row
// show up with a zero quantity, which is itself drift.
func (r *StockRepository) Reconcile(ctx context.Context, tenantID uuid.UUID) ([]*domain.ReconciliationEntry, error) {
	query := `
		SELECT
			COALESCE(l.sku, m.sku) AS sku,
			COALESCE(l.warehouse_id, m.warehouse_id) AS warehouse_id,
			COALESCE(l.quantity, 0) AS quantity,
			COALESCE(m.ledger_sum, 0) AS ledger_sum
		FROM stock_levels l
		FULL OUTER JOIN (
			SELECT sku, warehouse_id, SUM(delta) AS ledger_sum
			FROM stock_movements
			WHERE tenant_id = $1
			GROUP BY sku, warehouse_id
		) m ON m.sku = l.sku AND m.warehouse_id = l.warehouse_id
		WHERE l.tenant_id = $1 OR l.tenant_id IS NULL
		ORDER BY 1, 2`

	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to run reconciliation query: %w", err)
	}
	defer rows.Close()

	var entries []*domain.ReconciliationEntry
	for rows.Next() {
		e := domain.ReconciliationEntry{TenantID: tenantID}
		if err := rows.Scan(&e.SKU, &e.WarehouseID, &e.Quantity, &e.LedgerSum); err != nil {
			return nil, fmt.Errorf("failed to scan reconciliation entry: %w", err)
		}
		e.Drift = e.Quantity - e.LedgerSum
		entries = append(entries, &e)
	}

	return entries, rows.Err()
}
