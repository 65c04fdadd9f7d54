// internal/adapters/db/grade_repository.go
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/renewcart/buyback-be/internal/core/domain"
	"github.com/renewcart/buyback-be/internal/core/ports"
)

// GradeRepository implements ports.GradeRepository using PostgreSQL
type GradeRepository struct {
	db *Database
}

// NewGradeRepository creates a new grade repository
func NewGradeRepository(database *Database) *GradeRepository {
	return &GradeRepository{db: database}
}

var _ ports.GradeRepository = (*GradeRepository)(nil)

// FindByID retrieves a grade by ID within a tenant.
// Returns (nil, nil) when no grade matches.
func (r *GradeRepository) FindByID(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) (*domain.Grade, error) {
	query := `
		SELECT id, tenant_id, name, color, created_at, updated_at
		FROM grades
		WHERE id = $1 AND tenant_id = $2`

	var g domain.Grade
	err := r.db.QueryRow(ctx, query, id, tenantID).Scan(
		&g.ID, &g.TenantID, &g.Name, &g.Color, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find grade: %w", err)
	}

	return &g, nil
}

// FindAll lists a tenant's grades ordered by name
func (r *GradeRepository) FindAll(ctx context.Context, tenantID uuid.UUID) ([]*domain.Grade, error) {
	query := `
		SELECT id, tenant_id, name, color, created_at, updated_at
		FROM grades
		WHERE tenant_id = $1
		ORDER BY name`

	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list grades: %w", err)
	}
	defer rows.Close()

	var grades []*domain.Grade
	for rows.Next() {
		var g domain.Grade
		if err := rows.Scan(&g.ID, &g.TenantID, &g.Name, &g.Color, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan grade: %w", err)
		}
		grades = append(grades, &g)
	}

	return grades, rows.Err()
}

// Save inserts a new grade
func (r *GradeRepository) Save(ctx context.Context, grade *domain.Grade) error {
	grade.PrepareForStorage()

	query := `
		INSERT INTO grades (id, tenant_id, name, color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query,
		grade.ID, grade.TenantID, grade.Name, grade.Color,
		grade.CreatedAt, grade.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save grade: %w", err)
	}

	return nil
}

// Update modifies an existing grade
func (r *GradeRepository) Update(ctx context.Context, grade *domain.Grade) error {
	grade.PrepareForStorage()

	query := `
		UPDATE grades
		SET name = $1, color = $2, updated_at = $3
		WHERE id = $4 AND tenant_id = $5`

	tag, err := r.db.Exec(ctx, query,
		grade.Name, grade.Color, grade.UpdatedAt, grade.ID, grade.TenantID,
	)
	if err != nil {
		return fmt.Errorf("failed to update grade: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete removes a grade
func (r *GradeRepository) Delete(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM grades WHERE id = $1 AND tenant_id = $2`, id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete grade: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// InUse reports whether any grade assignment references the grade
func (r *GradeRepository) InUse(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM device_grades WHERE grade_id = $1 AND tenant_id = $2
		)`

	var inUse bool
	if err := r.db.QueryRow(ctx, query, id, tenantID).Scan(&inUse); err != nil {
		return false, fmt.Errorf("failed to check grade usage: %w", err)
	}

	return inUse, nil
}
