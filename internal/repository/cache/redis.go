package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Pesokrava/creator_catalogue/internal/domain"
)

const maxPriceKey = "catalogue:max_price"

// RedisCache stores derived catalogue values and tracks them by tag
type RedisCache struct {
	client      *redis.Client
	maxPriceTTL time.Duration
}

// NewRedisCache creates a new Redis cache instance
func NewRedisCache(client *redis.Client, maxPriceTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:      client,
		maxPriceTTL: maxPriceTTL,
	}
}

func tagKey(tag string) string {
	return fmt.Sprintf("tag:%s", tag)
}

// GetMaxPrice returns the cached highest published price in cents
func (c *RedisCache) GetMaxPrice(ctx context.Context) (int64, error) {
	val, err := c.client.Get(ctx, maxPriceKey).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, domain.ErrCacheMiss
		}
		return 0, err
	}
	return val, nil
}

// SetMaxPrice stores the highest published price and tags it with the products tag
func (c *RedisCache) SetMaxPrice(ctx context.Context, cents int64) error {
	return c.setTagged(ctx, maxPriceKey, cents, c.maxPriceTTL, domain.ProductsCacheTag)
}

// setTagged writes key and records it in the tracking SET of every tag
func (c *RedisCache) setTagged(ctx context.Context, key string, value any, ttl time.Duration, tags ...string) error {
	pipe := c.client.Pipeline()
	pipe.Set(ctx, key, value, ttl)
	for _, tag := range tags {
		pipe.SAdd(ctx, tagKey(tag), key)
		pipe.Expire(ctx, tagKey(tag), ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// InvalidateTag removes every entry tracked under tag using SET-based tracking
func (c *RedisCache) InvalidateTag(ctx context.Context, tag string) error {
	trackingKey := tagKey(tag)

	keys, err := c.client.SMembers(ctx, trackingKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}

	if len(keys) > 0 {
		keys = append(keys, trackingKey)
		return c.client.Unlink(ctx, keys...).Err()
	}

	return nil
}
