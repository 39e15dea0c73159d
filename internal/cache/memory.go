package cache

import (
	"context"
	"encoding/json"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache is an in-process cache backed by patrickmn/go-cache. Values are
// stored JSON-encoded so callers get copies, as with Redis.
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a MemoryCache.
func NewMemoryCache(defaultExpiration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{cache: gocache.New(defaultExpiration, cleanupInterval)}
}

func (c *MemoryCache) Get(_ context.Context, prefix, key string, dest interface{}) error {
	val, found := c.cache.Get(fullKey(prefix, key))
	if !found {
		return ErrCacheMiss
	}
	data, ok := val.([]byte)
	if !ok {
		return ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (c *MemoryCache) Set(_ context.Context, prefix, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if expiration <= 0 {
		expiration = gocache.DefaultExpiration
	}
	c.cache.Set(fullKey(prefix, key), data, expiration)
	return nil
}

func (c *MemoryCache) Delete(_ context.Context, prefix, key string) error {
	c.cache.Delete(fullKey(prefix, key))
	return nil
}

// ItemCount returns the number of stored items, expired ones included.
func (c *MemoryCache) ItemCount() int {
	return c.cache.ItemCount()
}
