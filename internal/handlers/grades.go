// internal/handlers/grades.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/renewcart/buyback-be/internal/core/ports"
	"github.com/renewcart/buyback-be/internal/handlers/middleware"
	"github.com/renewcart/buyback-be/internal/pkg/apperror"
)

// GradeHandler handles grade catalog HTTP requests
type GradeHandler struct {
	service ports.GradeService
	logger  *slog.Logger
}

// NewGradeHandler creates a new grade handler
func NewGradeHandler(service ports.GradeService, logger *slog.Logger) *GradeHandler {
	return &GradeHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "grades")),
	}
}

// GradeDTO is the JSON body for grade create/update
type GradeDTO struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// List handles GET /api/v1/grades
func (h *GradeHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tenantID, ok := middleware.TenantID(ctx)
	if !ok {
		respondError(w, r, h.logger, apperror.BadRequest("missing tenant id"))
		return
	}

	grades, err := h.service.List(ctx, tenantID)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, "ok", grades)
}

// Get handles GET /api/v1/grades/{id}
func (h *GradeHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tenantID, ok := middleware.TenantID(ctx)
	if !ok {
		respondError(w, r, h.logger, apperror.BadRequest("missing tenant id"))
		return
	}

	id, err := parseUUIDField(r.PathValue("id"), "grade id")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	grade, err := h.service.GetByID(ctx, id, tenantID)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, "ok", grade)
}

// Create handles POST /api/v1/grades
func (h *GradeHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tenantID, ok := middleware.TenantID(ctx)
	if !ok {
		respondError(w, r, h.logger, apperror.BadRequest("missing tenant id"))
		return
	}

	var dto GradeDTO
	if err := decodeJSON(r, &dto); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	grade, err := h.service.Create(ctx, dto.Name, dto.Color, tenantID)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, "grade created", grade)
}

// Update handles PUT /api/v1/grades/{id}
func (h *GradeHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tenantID, ok := middleware.TenantID(ctx)
	if !ok {
		respondError(w, r, h.logger, apperror.BadRequest("missing tenant id"))
		return
	}

	id, err := parseUUIDField(r.PathValue("id"), "grade id")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	var dto GradeDTO
	if err := decodeJSON(r, &dto); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	grade, err := h.service.Update(ctx, id, dto.Name, dto.Color, tenantID)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, "grade updated", grade)
}

// Delete handles DELETE /api/v1/grades/{id}
func (h *GradeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tenantID, ok := middleware.TenantID(ctx)
	if !ok {
		respondError(w, r, h.logger, apperror.BadRequest("missing tenant id"))
		return
	}

	id, err := parseUUIDField(r.PathValue("id"), "grade id")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	if err := h.service.Delete(ctx, id, tenantID); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, "grade deleted", nil)
}
