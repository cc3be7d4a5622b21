package storage

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"qrmenu-backend/menu-svc/internal/domain"
)

// RedisCache holds public menu listings. Entries keep stored image
// references; absolute URLs are resolved per request.
//
// Every listing has a version counter that invalidation bumps. A listing
// is only stored when the version still matches the one read before the
// database query, so a read that raced a committed write never lands.
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

// versionTTL bounds how long an idle version counter lives. It must
// outlast any single listing read.
const versionTTL = 7 * 24 * time.Hour

var setIfVersion = redis.NewScript(`
local current = redis.call('GET', KEYS[2])
if not current then current = '0' end
if current ~= ARGV[1] then return 0 end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[1], ARGV[2])
end
return 1
`)

func CategoriesKey(restaurantID int) string {
	return "menu:" + strconv.Itoa(restaurantID) + ":categories"
}

func DishesKey(restaurantID, categoryID int) string {
	return "menu:" + strconv.Itoa(restaurantID) + ":dishes:" + strconv.Itoa(categoryID)
}

func versionKey(key string) string {
	return key + ":version"
}

func (c *RedisCache) GetCategories(ctx context.Context, restaurantID int) ([]domain.Category, bool, error) {
	var categories []domain.Category
	ok, err := c.get(ctx, CategoriesKey(restaurantID), &categories)
	return categories, ok, err
}

func (c *RedisCache) CategoriesVersion(ctx context.Context, restaurantID int) (int64, error) {
	return c.version(ctx, CategoriesKey(restaurantID))
}

// SetCategories stores the listing unless it was invalidated after version
// was read.
func (c *RedisCache) SetCategories(ctx context.Context, restaurantID int, version int64, categories []domain.Category) error {
	return c.set(ctx, CategoriesKey(restaurantID), version, categories)
}

func (c *RedisCache) GetDishes(ctx context.Context, restaurantID, categoryID int) ([]domain.Dish, bool, error) {
	var dishes []domain.Dish
	ok, err := c.get(ctx, DishesKey(restaurantID, categoryID), &dishes)
	return dishes, ok, err
}

func (c *RedisCache) DishesVersion(ctx context.Context, restaurantID, categoryID int) (int64, error) {
	return c.version(ctx, DishesKey(restaurantID, categoryID))
}

func (c *RedisCache) SetDishes(ctx context.Context, restaurantID, categoryID int, version int64, dishes []domain.Dish) error {
	return c.set(ctx, DishesKey(restaurantID, categoryID), version, dishes)
}

func (c *RedisCache) InvalidateCategories(ctx context.Context, restaurantID int) error {
	return c.invalidate(ctx, CategoriesKey(restaurantID))
}

func (c *RedisCache) InvalidateDishes(ctx context.Context, restaurantID, categoryID int) error {
	return c.invalidate(ctx, DishesKey(restaurantID, categoryID))
}

func (c *RedisCache) invalidate(ctx context.Context, key string) error {
	_, err := c.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, versionKey(key))
		pipe.Expire(ctx, versionKey(key), versionTTL)
		pipe.Del(ctx, key)
		return nil
	})
	return err
}

// version returns 0 for a listing that was never invalidated.
func (c *RedisCache) version(ctx context.Context, key string) (int64, error) {
	v, err := c.Client.Get(ctx, versionKey(key)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

func (c *RedisCache) get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *RedisCache) set(ctx context.Context, key string, version int64, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	keys := []string{key, versionKey(key)}
	args := []any{strconv.FormatInt(version, 10), payload, c.TTL.Milliseconds()}
	return setIfVersion.Run(ctx, c.Client, keys, args...).Err()
}
