package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RedisCache keeps values as JSON strings in Redis.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache wraps an already connected client.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, prefix, key string, dest interface{}) error {
	val, err := c.client.Get(ctx, fullKey(prefix, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		logrus.WithFields(logrus.Fields{"key": key}).WithError(err).Error("Failed to get key from Redis")
		return err
	}
	return json.Unmarshal(val, dest)
}

func (c *RedisCache) Set(ctx context.Context, prefix, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, fullKey(prefix, key), data, expiration).Err(); err != nil {
		logrus.WithFields(logrus.Fields{"key": key}).WithError(err).Error("Failed to set key in Redis")
		return err
	}
	return nil
}

func (c *RedisCache) Delete(ctx context.Context, prefix, key string) error {
	return c.client.Del(ctx, fullKey(prefix, key)).Err()
}
