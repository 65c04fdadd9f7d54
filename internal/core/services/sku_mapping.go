// internal/core/services/sku_mapping.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	redis_a "github.com/renewcart/buyback-be/internal/adapters/redis_adapter"
	"github.com/renewcart/buyback-be/internal/core/domain"
	"github.com/renewcart/buyback-be/internal/core/ports"
	"github.com/renewcart/buyback-be/internal/pkg/apperror"
)

const skuResolveTTL = 10 * time.Minute

// SkuMappingService manages condition-to-SKU mappings. Resolution results
// are cached per canonical key; any mapping write invalidates the tenant's
// resolution cache.
type SkuMappingService struct {
	repo   ports.SkuMappingRepository
	cache  ports.CacheRepository
	logger *slog.Logger
}

var _ ports.SkuMappingService = (*SkuMappingService)(nil)

// NewSkuMappingService creates a new SKU mapping service
func NewSkuMappingService(repo ports.SkuMappingRepository, cache ports.CacheRepository, logger *slog.Logger) *SkuMappingService {
	return &SkuMappingService{
		repo:   repo,
		cache:  cache,
		logger: logger.With(slog.String("service", "sku_mapping")),
	}
}

// Create registers a new mapping. Two condition sets that normalize to the
// same canonical key conflict regardless of map ordering or casing.
func (s *SkuMappingService) Create(ctx context.Context, sku string, conditions map[string]string, tenantID uuid.UUID) (*domain.SkuMapping, error) {
	mapping := &domain.SkuMapping{
		TenantID:   tenantID,
		SKU:        sku,
		Conditions: conditions,
	}
	if err := mapping.Validate(); err != nil {
		return nil, apperror.BadRequest("%s", err.Error())
	}
	mapping.PrepareForStorage()

	existing, err := s.repo.FindByCanonicalKey(ctx, mapping.CanonicalKey, tenantID)
	if err != nil {
		return nil, apperror.Internal("failed to check existing mapping", err)
	}
	if existing != nil {
		return nil, apperror.Conflict("a mapping already exists for these conditions")
	}

	if err := s.repo.Save(ctx, mapping); err != nil {
		return nil, apperror.FromError(err)
	}

	s.invalidateResolveCache(ctx, tenantID)
	return mapping, nil
}

// Update modifies a mapping and re-derives its canonical key
func (s *SkuMappingService) Update(ctx context.Context, id uuid.UUID, sku string, conditions map[string]string, tenantID uuid.UUID) (*domain.SkuMapping, error) {
	current, err := s.repo.FindByID(ctx, id, tenantID)
	if err != nil {
		return nil, apperror.Internal("failed to look up mapping", err)
	}
	if current == nil {
		return nil, apperror.NotFound("sku mapping not found")
	}

	mapping := &domain.SkuMapping{
		ID:         id,
		TenantID:   tenantID,
		SKU:        sku,
		Conditions: conditions,
		CreatedAt:  current.CreatedAt,
	}
	if err := mapping.Validate(); err != nil {
		return nil, apperror.BadRequest("%s", err.Error())
	}
	mapping.PrepareForStorage()

	if mapping.CanonicalKey != current.CanonicalKey {
		existing, err := s.repo.FindByCanonicalKey(ctx, mapping.CanonicalKey, tenantID)
		if err != nil {
			return nil, apperror.Internal("failed to check existing mapping", err)
		}
		if existing != nil && existing.ID != id {
			return nil, apperror.Conflict("a mapping already exists for these conditions")
		}
	}

	if err := s.repo.Update(ctx, mapping); err != nil {
		return nil, apperror.FromError(err)
	}

	s.invalidateResolveCache(ctx, tenantID)
	return mapping, nil
}

// Delete removes a mapping
func (s *SkuMappingService) Delete(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) error {
	existing, err := s.repo.FindByID(ctx, id, tenantID)
	if err != nil {
		return apperror.Internal("failed to look up mapping", err)
	}
	if existing == nil {
		return apperror.NotFound("sku mapping not found")
	}

	if err := s.repo.Delete(ctx, id, tenantID); err != nil {
		return apperror.FromError(err)
	}

	s.invalidateResolveCache(ctx, tenantID)
	return nil
}

// GetByID retrieves a mapping
func (s *SkuMappingService) GetByID(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) (*domain.SkuMapping, error) {
	mapping, err := s.repo.FindByID(ctx, id, tenantID)
	if err != nil {
		return nil, apperror.Internal("failed to look up mapping", err)
	}
	if mapping == nil {
		return nil, apperror.NotFound("sku mapping not found")
	}

	return mapping, nil
}

// List retrieves all of a tenant's mappings
func (s *SkuMappingService) List(ctx context.Context, tenantID uuid.UUID) ([]*domain.SkuMapping, error) {
	mappings, err := s.repo.FindAll(ctx, tenantID)
	if err != nil {
		return nil, apperror.Internal("failed to list mappings", err)
	}

	return mappings, nil
}

// ResolveSKU builds the canonical key for the condition set and returns the
// mapped SKU, or ("", nil) when no mapping exists. Unmapped condition sets
// are a normal outcome here; the caller decides whether that is an error.
func (s *SkuMappingService) ResolveSKU(ctx context.Context, conditions map[string]string, tenantID uuid.UUID) (string, error) {
	key := domain.BuildCanonicalKey(conditions)
	if key == "" {
		return "", nil
	}

	cacheKey := redis_a.BuildKey(redis_a.PrefixSkuMapping, tenantID.String(), key)

	var sku string
	err := s.cache.GetOrSet(ctx, cacheKey, &sku, func() (interface{}, error) {
		mapping, err := s.repo.FindByCanonicalKey(ctx, key, tenantID)
		if err != nil {
			return nil, err
		}
		if mapping == nil {
			// Negative results are cached too; mapping writes flush them.
			return "", nil
		}
		return mapping.SKU, nil
	}, skuResolveTTL)
	if err != nil {
		return "", fmt.Errorf("failed to resolve sku: %w", err)
	}

	return sku, nil
}

func (s *SkuMappingService) invalidateResolveCache(ctx context.Context, tenantID uuid.UUID) {
	pattern := redis_a.BuildKey(redis_a.PrefixSkuMapping, tenantID.String(), "*")
	if err := s.cache.DeletePattern(ctx, pattern); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate sku resolve cache",
			slog.String("pattern", pattern), "err", err)
	}
}
