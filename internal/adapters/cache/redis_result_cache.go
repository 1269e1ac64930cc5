package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"itinerary-route-service/internal/domain"
	"itinerary-route-service/internal/platform/obs"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "itinerary:optimization:"

// Redis-backed cache of optimization results, stored as JSON with a TTL.
type RedisResultCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisResultCache(client *redis.Client, ttl time.Duration) *RedisResultCache {
	return &RedisResultCache{Client: client, TTL: ttl}
}

// NewRedisClient parses a redis:// URL and verifies connectivity.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: parse url: %w", err)
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 2 * time.Second
	opts.WriteTimeout = 2 * time.Second

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping failed: %w", err)
	}
	return client, nil
}

func (c *RedisResultCache) Get(ctx context.Context, key string) (_ *domain.OptimizationResult, _ bool, err error) {
	defer obs.Time(ctx, "result.cache.redis.Get")(&err)

	if c.Client == nil {
		return nil, false, errors.New("result cache: redis client is nil")
	}

	raw, err := c.Client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get result cache key=%s: %w", key, err)
	}

	var result domain.OptimizationResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, false, fmt.Errorf("get result cache key=%s: decode: %w", key, err)
	}
	return &result, true, nil
}

func (c *RedisResultCache) Put(ctx context.Context, key string, result *domain.OptimizationResult) (err error) {
	defer obs.Time(ctx, "result.cache.redis.Put")(&err)

	if c.Client == nil {
		return errors.New("result cache: redis client is nil")
	}
	if result == nil {
		return errors.New("put result cache: result is nil")
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("put result cache key=%s: encode: %w", key, err)
	}
	if err := c.Client.Set(ctx, redisKeyPrefix+key, raw, c.TTL).Err(); err != nil {
		return fmt.Errorf("put result cache key=%s: %w", key, err)
	}
	return nil
}
