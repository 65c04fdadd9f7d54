// internal/handlers/stock.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/renewcart/buyback-be/internal/core/ports"
	"github.com/renewcart/buyback-be/internal/handlers/middleware"
	"github.com/renewcart/buyback-be/internal/pkg/apperror"
)

// StockHandler handles stock level, ledger and reconciliation requests
type StockHandler struct {
	stock     ports.StockRepository
	reconcile ports.ReconcileService
	logger    *slog.Logger
}

// NewStockHandler creates a new stock handler
func NewStockHandler(stock ports.StockRepository, reconcile ports.ReconcileService, logger *slog.Logger) *StockHandler {
	return &StockHandler{
		stock:     stock,
		reconcile: reconcile,
		logger:    logger.With(slog.String("handler", "stock")),
	}
}

// Levels handles GET /api/v1/stock/levels
func (h *StockHandler) Levels(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tenantID, ok := middleware.TenantID(ctx)
	if !ok {
		respondError(w, r, h.logger, apperror.BadRequest("missing tenant id"))
		return
	}

	levels, err := h.stock.Levels(ctx, tenantID)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, "ok", levels)
}

// Movements handles GET /api/v1/stock/movements with sku, warehouse_id,
// reason, page and page_size query filters
func (h *StockHandler) Movements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tenantID, ok := middleware.TenantID(ctx)
	if !ok {
		respondError(w, r, h.logger, apperror.BadRequest("missing tenant id"))
		return
	}

	params := ports.MovementListParams{
		SKU:    r.URL.Query().Get("sku"),
		Reason: r.URL.Query().Get("reason"),
	}
	if wh := r.URL.Query().Get("warehouse_id"); wh != "" {
		id, err := uuid.Parse(wh)
		if err != nil {
			respondError(w, r, h.logger, apperror.BadRequest("invalid warehouse_id"))
			return
		}
		params.WarehouseID = id
	}
	params.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	params.PageSize, _ = strconv.Atoi(r.URL.Query().Get("page_size"))

	movements, total, err := h.stock.Movements(ctx, tenantID, params)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, "ok", map[string]interface{}{
		"movements": movements,
		"total":     total,
	})
}

// Reconcile handles POST /api/v1/stock/reconcile, an on-demand run of the
// ledger-vs-aggregate check
func (h *StockHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tenantID, ok := middleware.TenantID(ctx)
	if !ok {
		respondError(w, r, h.logger, apperror.BadRequest("missing tenant id"))
		return
	}

	entries, err := h.reconcile.Run(ctx, tenantID)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	drifted := 0
	for _, e := range entries {
		if !e.InSync() {
			drifted++
		}
	}

	respondJSON(w, http.StatusOK, "reconciliation completed", map[string]interface{}{
		"entries": entries,
		"drifted": drifted,
	})
}
