// internal/adapters/db/sku_mapping_repository.go
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

// SkuMappingRepository implements ports.SkuMappingRepository using
// PostgreSQL. The sku_mappings table has a unique constraint on
// (canonical_key, tenant_id); duplicate condition sets surface as a unique
// violation that the service layer maps to a conflict.
type SkuMappingRepository struct {
	db *Database
}

// NewSkuMappingRepository creates a new SKU mapping repository
func NewSkuMappingRepository(database *Database) *SkuMappingRepository {
	return &SkuMappingRepository{db: database}
}

var _ ports.SkuMappingRepository = (*SkuMappingRepository)(nil)

const skuMappingColumns = `
	id, tenant_id, sku, conditions, canonical_key, created_at, updated_at`

// FindByID retrieves a mapping by ID within a tenant.
// Returns (nil, nil) when no mapping matches.
func (r *SkuMappingRepository) FindByID(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) (*domain.SkuMapping, error) {
	query := `
		SELECT` + skuMappingColumns + `
		FROM sku_mappings
		WHERE id = $1 AND tenant_id = $2`

	mapping, err := scanSkuMapping(r.db.QueryRow(ctx, query, id, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find sku mapping: %w", err)
	}

	return mapping, nil
}

// FindByCanonicalKey retrieves a mapping by its canonical key within a
// tenant. Returns (nil, nil) when no mapping matches; the stock-in flow
// treats that as "resolve failed" rather than an error.
func (r *SkuMappingRepository) FindByCanonicalKey(ctx context.Context, key string, tenantID uuid.UUID) (*domain.SkuMapping, error) {
	query := `
		SELECT` + skuMappingColumns + `
		FROM sku_mappings
		WHERE canonical_key = $1 AND tenant_id = $2`

	mapping, err := scanSkuMapping(r.db.QueryRow(ctx, query, key, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find sku mapping by canonical key: %w", err)
	}

	return mapping, nil
}

// FindAll lists a tenant's mappings ordered by SKU
func (r *SkuMappingRepository) FindAll(ctx context.Context, tenantID uuid.UUID) ([]*domain.SkuMapping, error) {
	query := `
		SELECT` + skuMappingColumns + `
		FROM sku_mappings
		WHERE tenant_id = $1
		ORDER BY sku`

	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sku mappings: %w", err)
	}
	defer rows.Close()

	var mappings []*domain.SkuMapping
	for rows.Next() {
		mapping, err := scanSkuMapping(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sku mapping: %w", err)
		}
		mappings = append(mappings, mapping)
	}

	return mappings, rows.Err()
}

// Save inserts a new mapping
func (r *SkuMappingRepository) Save(ctx context.Context, mapping *domain.SkuMapping) error {
	mapping.PrepareForStorage()

	query := `
		INSERT INTO sku_mappings (
			id, tenant_id, sku, conditions, canonical_key, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		mapping.ID, mapping.TenantID, mapping.SKU, mapping.Conditions,
		mapping.CanonicalKey, mapping.CreatedAt, mapping.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save sku mapping: %w", err)
	}

	return nil
}

// Update modifies an existing mapping, re-deriving its canonical key
func (r *SkuMappingRepository) Update(ctx context.Context, mapping *domain.SkuMapping) error {
	mapping.PrepareForStorage()

	query := `
		UPDATE sku_mappings
		SET sku = $1, conditions = $2, canonical_key = $3, updated_at = $4
		WHERE id = $5 AND tenant_id = $6`

	tag, err := r.db.Exec(ctx, query,
		mapping.SKU, mapping.Conditions, mapping.CanonicalKey,
		mapping.UpdatedAt, mapping.ID, mapping.TenantID,
	)
	if err != nil {
		return fmt.Errorf("failed to update sku mapping: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete removes a mapping
func (r *SkuMappingRepository) Delete(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM sku_mappings WHERE id = $1 AND tenant_id = $2`, id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete sku mapping: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func scanSkuMapping(row pgx.Row) (*domain.SkuMapping, error) {
	var m domain.SkuMapping
	err := row.Scan(
		&m.ID, &m.TenantID, &m.SKU, &m.Conditions,
		&m.CanonicalKey, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
