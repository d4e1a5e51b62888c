package statsinfra

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shaheed425/jobsy/pkg/logx"
	"github.com/shaheed425/jobsy/placement/stats"
)

// RedisCache backs the statistics cache with Redis. Failures degrade to
// cache misses; the service recomputes from the stores.
type RedisCache struct {
	client *redis.Client
}

var _ stats.Cache = (*RedisCache)(nil)

// NewRedisCache creates a new Redis-backed statistics cache
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logx.Warnf("stats cache read for %s failed: %v", key, err)
		}
		return nil, false
	}
	return payload, true
}

func (c *RedisCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) {
	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		logx.Warnf("stats cache write for %s failed: %v", key, err)
	}
}
