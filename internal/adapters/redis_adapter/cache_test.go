// internal/adapters/redis_adapter/cache_test.go
package redis_a_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redis_a "github.com/renewcart/buyback-be/internal/adapters/redis_adapter"
	"github.com/renewcart/buyback-be/internal/core/ports"
	"github.com/renewcart/buyback-be/test/helpers"
)

func setupCache(t *testing.T) (*miniredis.Miniredis, ports.CacheRepository) {
	t.Helper()

	tr := helpers.SetupTestRedis(t)
	cache := redis_a.NewCache(tr.Client, time.Hour, helpers.TestLogger())
	return tr.Server, cache
}

func TestCache_SetAndGet(t *testing.T) {
	_, cache := setupCache(t)
	ctx := context.Background()

	type payload struct {
		SKU   string `json:"sku"`
		Count int    `json:"count"`
	}

	require.NoError(t, cache.Set(ctx, "stock:level:1", payload{SKU: "IP13-128-MID-A", Count: 3}))

	var got payload
	require.NoError(t, cache.Get(ctx, "stock:level:1", &got))
	assert.Equal(t, "IP13-128-MID-A", got.SKU)
	assert.Equal(t, 3, got.Count)
}

func TestCache_GetMiss(t *testing.T) {
	_, cache := setupCache(t)

	var dest string
	err := cache.Get(context.Background(), "absent", &dest)
	require.Error(t, err)
	assert.True(t, errors.Is(err, redis_a.ErrCacheMiss))
}

func TestCache_SetWithTTL(t *testing.T) {
	mr, cache := setupCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetWithTTL(ctx, "short", "value", time.Minute))

	// miniredis advances TTLs manually
	mr.FastForward(2 * time.Minute)

	var dest string
	err := cache.Get(ctx, "short", &dest)
	assert.True(t, errors.Is(err, redis_a.ErrCacheMiss))
}

func TestCache_DeletePattern(t *testing.T) {
	_, cache := setupCache(t)
	ctx := context.Background()

	tenant := "7b0d7e7e-0000-0000-0000-000000000001"
	other := "7b0d7e7e-0000-0000-0000-000000000002"

	require.NoError(t, cache.Set(ctx, redis_a.BuildKey(redis_a.PrefixSkuMapping, tenant, "key-a"), "SKU-A"))
	require.NoError(t, cache.Set(ctx, redis_a.BuildKey(redis_a.PrefixSkuMapping, tenant, "key-b"), "SKU-B"))
	require.NoError(t, cache.Set(ctx, redis_a.BuildKey(redis_a.PrefixSkuMapping, other, "key-a"), "SKU-C"))

	require.NoError(t, cache.DeletePattern(ctx, redis_a.BuildKey(redis_a.PrefixSkuMapping, tenant, "*")))

	var dest string
	assert.True(t, errors.Is(cache.Get(ctx, redis_a.BuildKey(redis_a.PrefixSkuMapping, tenant, "key-a"), &dest), redis_a.ErrCacheMiss))
	assert.True(t, errors.Is(cache.Get(ctx, redis_a.BuildKey(redis_a.PrefixSkuMapping, tenant, "key-b"), &dest), redis_a.ErrCacheMiss))

	// The other tenant's entries survive
	require.NoError(t, cache.Get(ctx, redis_a.BuildKey(redis_a.PrefixSkuMapping, other, "key-a"), &dest))
	assert.Equal(t, "SKU-C", dest)
}

func TestCache_GetOrSet(t *testing.T) {
	ctx := context.Background()

	t.Run("miss_fetches_and_caches", func(t *testing.T) {
		_, cache := setupCache(t)

		calls := 0
		fetch := func() (interface{}, error) {
			calls++
			return "IP13-128-MID-A", nil
		}

		var dest string
		require.NoError(t, cache.GetOrSet(ctx, "resolve:key", &dest, fetch, time.Minute))
		assert.Equal(t, "IP13-128-MID-A", dest)
		assert.Equal(t, 1, calls)

		// Second call is served from cache
		var again string
		require.NoError(t, cache.GetOrSet(ctx, "resolve:key", &again, fetch, time.Minute))
		assert.Equal(t, "IP13-128-MID-A", again)
		assert.Equal(t, 1, calls)
	})

	t.Run("caches_negative_result", func(t *testing.T) {
		_, cache := setupCache(t)

		calls := 0
		fetch := func() (interface{}, error) {
			calls++
			return "", nil
		}

		var dest string
		require.NoError(t, cache.GetOrSet(ctx, "resolve:unmapped", &dest, fetch, time.Minute))
		require.NoError(t, cache.GetOrSet(ctx, "resolve:unmapped", &dest, fetch, time.Minute))
		assert.Empty(t, dest)
		assert.Equal(t, 1, calls)
	})

	t.Run("fetch_error_surfaces", func(t *testing.T) {
		_, cache := setupCache(t)

		var dest string
		err := cache.GetOrSet(ctx, "resolve:err", &dest, func() (interface{}, error) {
			return nil, errors.New("boom")
		}, time.Minute)
		require.Error(t, err)
	})
}

func TestCache_Exists(t *testing.T) {
	_, cache := setupCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", 1))
	require.NoError(t, cache.Set(ctx, "b", 2))

	ok, err := cache.Exists(ctx, "a", "b")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = cache.Exists(ctx, "a", "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBuildKey(t *testing.T) {
	key := redis_a.BuildKey(redis_a.PrefixSkuMapping, "tenant-1", "canonical")
	assert.Equal(t, "skumap:tenant-1:canonical", key)
}
