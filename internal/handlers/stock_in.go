// internal/handlers/stock_in.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/renewcart/buyback-be/internal/core/ports"
	"github.com/renewcart/buyback-be/internal/handlers/middleware"
	"github.com/renewcart/buyback-be/internal/pkg/apperror"
)

// StockInHandler handles the stock-in workflow and device read surfaces
type StockInHandler struct {
	service ports.StockInService
	logger  *slog.Logger
}

// NewStockInHandler creates a new stock-in handler
func NewStockInHandler(service ports.StockInService, logger *slog.Logger) *StockInHandler {
	return &StockInHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "stock_in")),
	}
}

// StockInRequestDTO is the JSON body of a stock-in call
type StockInRequestDTO struct {
	IMEI        string          `json:"imei"`
	GradeID     string          `json:"grade_id"`
	WarehouseID string          `json:"warehouse_id"`
	SKU         string          `json:"sku,omitempty"`
	UnitValue   decimal.Decimal `json:"unit_value,omitempty"`
	Remarks     string          `json:"remarks,omitempty"`
}

// ToRequest converts the DTO to a service request
func (d *StockInRequestDTO) ToRequest() (ports.StockInRequest, error) {
	req := ports.StockInRequest{
		IMEI:      d.IMEI,
		SKU:       d.SKU,
		UnitValue: d.UnitValue,
		Remarks:   d.Remarks,
	}

	var err error
	if req.GradeID, err = parseUUIDField(d.GradeID, "grade_id"); err != nil {
		return req, err
	}
	if req.WarehouseID, err = parseUUIDField(d.WarehouseID, "warehouse_id"); err != nil {
		return req, err
	}

	return req, nil
}

// ProcessStockIn handles POST /api/v1/stock-in
func (h *StockInHandler) ProcessStockIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tenantID, ok := middleware.TenantID(ctx)
	if !ok {
		respondError(w, r, h.logger, apperror.BadRequest("missing tenant id"))
		return
	}
	actorID, ok := middleware.ActorID(ctx)
	if !ok {
		respondError(w, r, h.logger, apperror.BadRequest("missing actor id"))
		return
	}

	var dto StockInRequestDTO
	if err := decodeJSON(r, &dto); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	req, err := dto.ToRequest()
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	result, err := h.service.ProcessStockIn(ctx, req, actorID, tenantID)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, result.Message, result)
}

// GradeHistory handles GET /api/v1/devices/{imei}/grades
func (h *StockInHandler) GradeHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tenantID, ok := middleware.TenantID(ctx)
	if !ok {
		respondError(w, r, h.logger, apperror.BadRequest("missing tenant id"))
		return
	}

	records, err := h.service.GradeHistory(ctx, r.PathValue("imei"), tenantID)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, "ok", records)
}

// Events handles GET /api/v1/devices/{imei}/events
func (h *StockInHandler) Events(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tenantID, ok := middleware.TenantID(ctx)
	if !ok {
		respondError(w, r, h.logger, apperror.BadRequest("missing tenant id"))
		return
	}

	events, err := h.service.Events(ctx, r.PathValue("imei"), tenantID)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, "ok", events)
}
