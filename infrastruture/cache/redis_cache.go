package cache

import (
	"context"
	"time"

	"github.com/beka-birhanu/maze-solver-api/service/i"
	"github.com/redis/go-redis/v9"
)

// RedisCache stores byte values in Redis with per-key expiry.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache initializes a RedisCache with the provided Redis client.
func NewRedisCache(client *redis.Client) (i.Cache, error) {
	return &RedisCache{client: client}, nil
}

// Set stores a value under the key for the given TTL.
func (rc *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return rc.client.Set(ctx, key, value, ttl).Err()
}

// Get retrieves the value under the key. A miss returns nil bytes and a
// nil error.
func (rc *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := rc.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}
