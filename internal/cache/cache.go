// Package cache stores JSON-encoded values under prefixed keys, in Redis or
// in process memory.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is the error returned when a key is not found in the cache.
var ErrCacheMiss = errors.New("cache: key not found")

// Cache is implemented by RedisCache and MemoryCache.
type Cache interface {
	Get(ctx context.Context, prefix, key string, dest interface{}) error
	Set(ctx context.Context, prefix, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, prefix, key string) error
}

func fullKey(prefix, key string) string {
	return prefix + ":" + key
}
