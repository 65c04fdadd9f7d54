// internal/core/services/grade.go
package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/renewcart/buyback-be/internal/core/domain"
	"github.com/renewcart/buyback-be/internal/core/ports"
	"github.com/renewcart/buyback-be/internal/pkg/apperror"
)

// GradeService manages the tenant-scoped grade catalog
type GradeService struct {
	repo   ports.GradeRepository
	logger *slog.Logger
}

var _ ports.GradeService = (*GradeService)(nil)

// NewGradeService creates a new grade service
func NewGradeService(repo ports.GradeRepository, logger *slog.Logger) *GradeService {
	return &GradeService{
		repo:   repo,
		logger: logger.With(slog.String("service", "grade")),
	}
}

// Create registers a new grade
func (s *GradeService) Create(ctx context.Context, name, color string, tenantID uuid.UUID) (*domain.Grade, error) {
	grade := &domain.Grade{
		TenantID: tenantID,
		Name:     name,
		Color:    color,
	}
	if err := grade.Validate(); err != nil {
		return nil, apperror.BadRequest("%s", err.Error())
	}

	if err := s.repo.Save(ctx, grade); err != nil {
		return nil, apperror.FromError(err)
	}

	return grade, nil
}

// Update modifies an existing grade
func (s *GradeService) Update(ctx context.Context, id uuid.UUID, name, color string, tenantID uuid.UUID) (*domain.Grade, error) {
	existing, err := s.repo.FindByID(ctx, id, tenantID)
	if err != nil {
		return nil, apperror.Internal("failed to look up grade", err)
	}
	if existing == nil {
		return nil, apperror.NotFound("grade not found")
	}

	grade := &domain.Grade{
		ID:        id,
		TenantID:  tenantID,
		Name:      name,
		Color:     color,
		CreatedAt: existing.CreatedAt,
	}
	if err := grade.Validate(); err != nil {
		return nil, apperror.BadRequest("%s", err.Error())
	}

	if err := s.repo.Update(ctx, grade); err != nil {
		return nil, apperror.FromError(err)
	}

	return grade, nil
}

// Delete removes a grade. Grades referenced by any grade assignment are
// protected; history must stay resolvable.
func (s *GradeService) Delete(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) error {
	existing, err := s.repo.FindByID(ctx, id, tenantID)
	if err != nil {
		return apperror.Internal("failed to look up grade", err)
	}
	if existing == nil {
		return apperror.NotFound("grade not found")
	}

	inUse, err := s.repo.InUse(ctx, id, tenantID)
	if err != nil {
		return apperror.Internal("failed to check grade usage", err)
	}
	if inUse {
		return apperror.Conflict("grade is assigned to devices and cannot be deleted")
	}

	if err := s.repo.Delete(ctx, id, tenantID); err != nil {
		return apperror.FromError(err)
	}

	return nil
}

// GetByID retrieves a grade
func (s *GradeService) GetByID(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) (*domain.Grade, error) {
	grade, err := s.repo.FindByID(ctx, id, tenantID)
	if err != nil {
		return nil, apperror.Internal("failed to look up grade", err)
	}
	if grade == nil {
		return nil, apperror.NotFound("grade not found")
	}

	return grade, nil
}

// List retrieves all of a tenant's grades
func (s *GradeService) List(ctx context.Context, tenantID uuid.UUID) ([]*domain.Grade, error) {
	grades, err := s.repo.FindAll(ctx, tenantID)
	if err != nil {
		return nil, apperror.Internal("failed to list grades", err)
	}

	return grades, nil
}
