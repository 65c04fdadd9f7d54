// internal/core/services/reconcile.go
package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/renewcart/buyback-be/internal/core/domain"
	"github.com/renewcart/buyback-be/internal/core/ports"
	"github.com/renewcart/buyback-be/internal/pkg/apperror"
)

// ReconcileService compares stock aggregates against the movement ledger.
// It reports drift, it never corrects it; a non-zero drift means some write
// path bypassed the ledger and needs investigating, not papering over.
type ReconcileService struct {
	stock  ports.StockRepository
	logger *slog.Logger
}

var _ ports.ReconcileService = (*ReconcileService)(nil)

// NewReconcileService creates a new reconcile service
func NewReconcileService(stock ports.StockRepository, logger *slog.Logger) *ReconcileService {
	return &ReconcileService{
		stock:  stock,
		logger: logger.With(slog.String("service", "reconcile")),
	}
}

// Run produces one entry per (sku, warehouse) and logs any drift
func (s *ReconcileService) Run(ctx context.Context, tenantID uuid.UUID) ([]*domain.ReconciliationEntry, error) {
	entries, err := s.stock.Reconcile(ctx, tenantID)
	if err != nil {
		return nil, apperror.Internal("failed to reconcile stock", err)
	}

	drifted := 0
	for _, e := range entries {
		if !e.InSync() {
			drifted++
			s.logger.WarnContext(ctx, "stock drift detected",
				slog.String("sku", e.SKU),
				slog.String("warehouse_id", e.WarehouseID.String()),
				slog.Int("quantity", e.Quantity),
				slog.Int("ledger_sum", e.LedgerSum),
				slog.Int("drift", e.Drift),
			)
		}
	}

	s.logger.InfoContext(ctx, "reconciliation completed",
		slog.String("tenant_id", tenantID.String()),
		slog.Int("entries", len(entries)),
		slog.Int("drifted", drifted),
	)

	return entries, nil
}
