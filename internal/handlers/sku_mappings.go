// internal/handlers/sku_mappings.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/renewcart/buyback-be/internal/core/ports"
	"github.com/renewcart/buyback-be/internal/handlers/middleware"
	"github.com/renewcart/buyback-be/internal/pkg/apperror"
)

// SkuMappingHandler handles SKU mapping HTTP requests
type SkuMappingHandler struct {
	service ports.SkuMappingService
	logger  *slog.Logger
}

// NewSkuMappingHandler creates a new SKU mapping handler
func NewSkuMappingHandler(service ports.SkuMappingService, logger *slog.Logger) *SkuMappingHandler {
	return &SkuMappingHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "sku_mappings")),
	}
}

// SkuMappingDTO is the JSON body for mapping create/update
type SkuMappingDTO struct {
	SKU        string            `json:"sku"`
	Conditions map[string]string `json:"conditions"`
}

// List handles GET /api/v1/sku-mappings
func (h *SkuMappingHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tenantID, ok := middleware.TenantID(ctx)
	if !ok {
		respondError(w, r, h.logger, apperror.BadRequest("missing tenant id"))
		return
	}

	mappings, err := h.service.List(ctx, tenantID)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, "ok", mappings)
}

// Get handles GET /api/v1/sku-mappings/{id}
func (h *SkuMappingHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tenantID, ok := middleware.TenantID(ctx)
	if !ok {
		respondError(w, r, h.logger, apperror.BadRequest("missing tenant id"))
		return
	}

	id, err := parseUUIDField(r.PathValue("id"), "mapping id")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	mapping, err := h.service.GetByID(ctx, id, tenantID)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, "ok", mapping)
}

// Create handles POST /api/v1/sku-mappings
func (h *SkuMappingHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tenantID, ok := middleware.TenantID(ctx)
	if !ok {
		respondError(w, r, h.logger, apperror.BadRequest("missing tenant id"))
		return
	}

	var dto SkuMappingDTO
	if err := decodeJSON(r, &dto); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	mapping, err := h.service.Create(ctx, dto.SKU, dto.Conditions, tenantID)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, "sku mapping created", mapping)
}

// Update handles PUT /api/v1/sku-mappings/{id}
func (h *SkuMappingHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tenantID, ok := middleware.TenantID(ctx)
	if !ok {
		respondError(w, r, h.logger, apperror.BadRequest("missing tenant id"))
		return
	}

	id, err := parseUUIDField(r.PathValue("id"), "mapping id")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	var dto SkuMappingDTO
	if err := decodeJSON(r, &dto); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	mapping, err := h.service.Update(ctx, id, dto.SKU, dto.Conditions, tenantID)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, "sku mapping updated", mapping)
}

// Delete handles DELETE /api/v1/sku-mappings/{id}
func (h *SkuMappingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tenantID, ok := middleware.TenantID(ctx)
	if !ok {
		respondError(w, r, h.logger, apperror.BadRequest("missing tenant id"))
		return
	}

	id, err := parseUUIDField(r.PathValue("id"), "mapping id")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	if err := h.service.Delete(ctx, id, tenantID); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, "sku mapping deleted", nil)
}

// Resolve handles POST /api/v1/sku-mappings/resolve. A missing mapping is a
// 200 with a null SKU; it only becomes an error inside the stock-in flow.
func (h *SkuMappingHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tenantID, ok := middleware.TenantID(ctx)
	if !ok {
		respondError(w, r, h.logger, apperror.BadRequest("missing tenant id"))
		return
	}

	var dto struct {
		Conditions map[string]string `json:"conditions"`
	}
	if err := decodeJSON(r, &dto); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	sku, err := h.service.ResolveSKU(ctx, dto.Conditions, tenantID)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	if sku == "" {
		respondJSON(w, http.StatusOK, "no mapping for these conditions", nil)
		return
	}

	respondJSON(w, http.StatusOK, "ok", map[string]string{"sku": sku})
}
