// internal/core/services/sku_mapping_service_test.go
package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/renewcart/buyback-be/internal/core/domain"
	"github.com/renewcart/buyback-be/internal/core/services"
	"github.com/renewcart/buyback-be/internal/pkg/apperror"
	"github.com/renewcart/buyback-be/test/helpers"
	"github.com/renewcart/buyback-be/test/mocks"
)

func newSkuMappingService(t *testing.T) (*services.SkuMappingService, *mocks.MockSkuMappingRepository, *mocks.MockCacheRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSkuMappingRepository(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)
	return services.NewSkuMappingService(repo, cache, helpers.TestLogger()), repo, cache
}

func sampleConditions() map[string]string {
	return map[string]string{
		"make":       "Apple",
		"model_name": "iPhone 13",
		"storage":    "128GB",
		"color":      "Midnight",
		"grade":      "A",
	}
}

func TestSkuMappingService_Create(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates_mapping_and_flushes_cache", func(t *testing.T) {
		svc, repo, cache := newSkuMappingService(t)

		repo.EXPECT().FindByCanonicalKey(gomock.Any(), gomock.Any(), tenantID).Return(nil, nil)
		repo.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, mapping *domain.SkuMapping) error {
				assert.NotEmpty(t, mapping.CanonicalKey)
				assert.Equal(t, "IP13-128-MID-A", mapping.SKU)
				return nil
			})
		cache.EXPECT().DeletePattern(gomock.Any(), gomock.Any()).Return(nil)

		mapping, err := svc.Create(context.Background(), "IP13-128-MID-A", sampleConditions(), tenantID)
		require.NoError(t, err)
		require.NotNil(t, mapping)
	})

	t.Run("rejects_empty_sku", func(t *testing.T) {
		svc, _, _ := newSkuMappingService(t)

		mapping, err := svc.Create(context.Background(), "  ", sampleConditions(), tenantID)
		require.Error(t, err)
		assert.Nil(t, mapping)
		assert.True(t, apperror.IsKind(err, apperror.KindBadRequest))
	})

	t.Run("conflicts_on_equivalent_conditions", func(t *testing.T) {
		svc, repo, _ := newSkuMappingService(t)

		existing := helpers.CreateTestSkuMapping(tenantID, "OTHER-SKU", sampleConditions())
		repo.EXPECT().FindByCanonicalKey(gomock.Any(), existing.CanonicalKey, tenantID).Return(existing, nil)

		// Same conditions, different casing and ordering
		shuffled := map[string]string{
			"grade":      "A",
			"color":      "Midnight",
			"Make":       "Apple",
			"STORAGE":    "128GB",
			"model_name": "iPhone 13",
		}
		mapping, err := svc.Create(context.Background(), "IP13-128-MID-A", shuffled, tenantID)
		require.Error(t, err)
		assert.Nil(t, mapping)
		assert.True(t, apperror.IsKind(err, apperror.KindConflict))
		assert.Contains(t, err.Error(), "a mapping already exists for these conditions")
	})
}

func TestSkuMappingService_Update(t *testing.T) {
	tenantID := uuid.New()
	id := uuid.New()

	t.Run("not_found", func(t *testing.T) {
		svc, repo, _ := newSkuMappingService(t)
		repo.EXPECT().FindByID(gomock.Any(), id, tenantID).Return(nil, nil)

		mapping, err := svc.Update(context.Background(), id, "SKU-1", sampleConditions(), tenantID)
		require.Error(t, err)
		assert.Nil(t, mapping)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})

	t.Run("key_change_conflicts_with_other_mapping", func(t *testing.T) {
		svc, repo, _ := newSkuMappingService(t)

		current := helpers.CreateTestSkuMapping(tenantID, "SKU-1", map[string]string{"make": "Apple", "grade": "B"})
		current.ID = id
		other := helpers.CreateTestSkuMapping(tenantID, "SKU-2", sampleConditions())

		repo.EXPECT().FindByID(gomock.Any(), id, tenantID).Return(current, nil)
		repo.EXPECT().FindByCanonicalKey(gomock.Any(), other.CanonicalKey, tenantID).Return(other, nil)

		mapping, err := svc.Update(context.Background(), id, "SKU-1", sampleConditions(), tenantID)
		require.Error(t, err)
		assert.Nil(t, mapping)
		assert.True(t, apperror.IsKind(err, apperror.KindConflict))
	})

	t.Run("updates_and_flushes_cache", func(t *testing.T) {
		svc, repo, cache := newSkuMappingService(t)

		current := helpers.CreateTestSkuMapping(tenantID, "SKU-1", sampleConditions())
		current.ID = id

		repo.EXPECT().FindByID(gomock.Any(), id, tenantID).Return(current, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		cache.EXPECT().DeletePattern(gomock.Any(), gomock.Any()).Return(nil)

		// Same conditions, new SKU: no canonical key change, no conflict check
		mapping, err := svc.Update(context.Background(), id, "SKU-NEW", sampleConditions(), tenantID)
		require.NoError(t, err)
		assert.Equal(t, "SKU-NEW", mapping.SKU)
		assert.Equal(t, current.CanonicalKey, mapping.CanonicalKey)
	})
}

func TestSkuMappingService_ResolveSKU(t *testing.T) {
	tenantID := uuid.New()

	t.Run("empty_conditions_resolve_to_nothing", func(t *testing.T) {
		svc, _, _ := newSkuMappingService(t)

		sku, err := svc.ResolveSKU(context.Background(), map[string]string{}, tenantID)
		require.NoError(t, err)
		assert.Empty(t, sku)
	})

	t.Run("fetches_through_cache", func(t *testing.T) {
		svc, repo, cache := newSkuMappingService(t)

		mapping := helpers.CreateTestSkuMapping(tenantID, "IP13-128-MID-A", sampleConditions())
		repo.EXPECT().FindByCanonicalKey(gomock.Any(), mapping.CanonicalKey, tenantID).Return(mapping, nil)
		cache.EXPECT().
			GetOrSet(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dest interface{}, fetch func() (interface{}, error), _ time.Duration) error {
				val, err := fetch()
				if err != nil {
					return err
				}
				*dest.(*string) = val.(string)
				return nil
			})

		sku, err := svc.ResolveSKU(context.Background(), sampleConditions(), tenantID)
		require.NoError(t, err)
		assert.Equal(t, "IP13-128-MID-A", sku)
	})

	t.Run("unmapped_is_not_an_error", func(t *testing.T) {
		svc, repo, cache := newSkuMappingService(t)

		repo.EXPECT().FindByCanonicalKey(gomock.Any(), gomock.Any(), tenantID).Return(nil, nil)
		cache.EXPECT().
			GetOrSet(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dest interface{}, fetch func() (interface{}, error), _ time.Duration) error {
				val, err := fetch()
				if err != nil {
					return err
				}
				*dest.(*string) = val.(string)
				return nil
			})

		sku, err := svc.ResolveSKU(context.Background(), sampleConditions(), tenantID)
		require.NoError(t, err)
		assert.Empty(t, sku)
	})

	t.Run("repository_error_surfaces", func(t *testing.T) {
		svc, repo, cache := newSkuMappingService(t)

		repo.EXPECT().FindByCanonicalKey(gomock.Any(), gomock.Any(), tenantID).Return(nil, errors.New("connection refused"))
		cache.EXPECT().
			GetOrSet(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ interface{}, fetch func() (interface{}, error), _ time.Duration) error {
				_, err := fetch()
				return err
			})

		sku, err := svc.ResolveSKU(context.Background(), sampleConditions(), tenantID)
		require.Error(t, err)
		assert.Empty(t, sku)
	})
}

func TestSkuMappingService_Delete(t *testing.T) {
	tenantID := uuid.New()
	id := uuid.New()

	t.Run("not_found", func(t *testing.T) {
		svc, repo, _ := newSkuMappingService(t)
		repo.EXPECT().FindByID(gomock.Any(), id, tenantID).Return(nil, nil)

		err := svc.Delete(context.Background(), id, tenantID)
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})

	t.Run("deletes_and_flushes_cache", func(t *testing.T) {
		svc, repo, cache := newSkuMappingService(t)

		existing := helpers.CreateTestSkuMapping(tenantID, "SKU-1", sampleConditions())
		existing.ID = id
		repo.EXPECT().FindByID(gomock.Any(), id, tenantID).Return(existing, nil)
		repo.EXPECT().Delete(gomock.Any(), id, tenantID).Return(nil)
		cache.EXPECT().DeletePattern(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, svc.Delete(context.Background(), id, tenantID))
	})
}
