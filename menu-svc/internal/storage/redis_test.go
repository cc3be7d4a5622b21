package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qrmenu-backend/menu-svc/internal/domain"
)

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisCache(client, time.Minute), mr
}

func TestRedisCache_CategoriesRoundTrip(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()
	ref := "uploads/1/3/category_3.jpg"

	_, hit, err := cache.GetCategories(ctx, 1)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, cache.SetCategories(ctx, 1, 0, []domain.Category{{ID: 3, RestaurantID: 1, Name: "Mains", ImageURL: &ref}}))
	assert.True(t, mr.Exists("menu:1:categories"))
	assert.Equal(t, time.Minute, mr.TTL("menu:1:categories"))

	categories, hit, err := cache.GetCategories(ctx, 1)
	require.NoError(t, err)
	assert.True(t, hit)
	require.Len(t, categories, 1)
	assert.Equal(t, ref, *categories[0].ImageURL)
}

func TestRedisCache_InvalidateDishes(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetDishes(ctx, 1, 2, 0, []domain.Dish{{ID: 7, Name: "Tiramisu"}}))
	require.NoError(t, cache.SetDishes(ctx, 1, 3, 0, []domain.Dish{{ID: 8, Name: "Soup"}}))

	require.NoError(t, cache.InvalidateDishes(ctx, 1, 2))

	assert.False(t, mr.Exists(DishesKey(1, 2)))
	assert.True(t, mr.Exists(DishesKey(1, 3)))
}

func TestRedisCache_InvalidateBumpsVersion(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	version, err := cache.CategoriesVersion(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), version)

	require.NoError(t, cache.InvalidateCategories(ctx, 1))
	require.NoError(t, cache.InvalidateCategories(ctx, 1))

	version, err = cache.CategoriesVersion(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)
	assert.Positive(t, mr.TTL(versionKey(CategoriesKey(1))))
}

func TestRedisCache_SetSkipsListingReadBeforeInvalidation(t *testing.T) {
	tests := []struct {
		name       string
		invalidate bool
		stored     bool
	}{
		{"unchanged version stores", false, true},
		{"invalidated in between drops", true, false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			cache, mr := newTestCache(t)
			ctx := context.Background()

			version, err := cache.DishesVersion(ctx, 1, 2)
			require.NoError(t, err)
			if testCase.invalidate {
				require.NoError(t, cache.InvalidateDishes(ctx, 1, 2))
			}

			require.NoError(t, cache.SetDishes(ctx, 1, 2, version, []domain.Dish{{ID: 7, Name: "Tiramisu"}}))

			assert.Equal(t, testCase.stored, mr.Exists(DishesKey(1, 2)))
			if testCase.stored {
				assert.Equal(t, time.Minute, mr.TTL(DishesKey(1, 2)))
			}
		})
	}
}

func TestRedisCache_CorruptEntry(t *testing.T) {
	cache, mr := newTestCache(t)
	require.NoError(t, mr.Set(CategoriesKey(1), "not json"))

	_, hit, err := cache.GetCategories(context.Background(), 1)

	assert.Error(t, err)
	assert.False(t, hit)
}

func TestRedisCache_Unavailable(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:0", MaxRetries: -1})
	defer client.Close()
	cache := NewRedisCache(client, time.Minute)

	_, _, err := cache.GetDishes(context.Background(), 1, 2)

	assert.Error(t, err)
}
