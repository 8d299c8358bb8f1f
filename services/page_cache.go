package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// PageCache is a short-TTL read-through cache for whole result pages. It is
// strictly best-effort: every failure degrades to direct computation and is
// never surfaced to the caller. A nil *PageCache is a valid no-op cache.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPageCache creates a new page cache instance
func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	return &PageCache{client: client, ttl: ttl}
}

// Get unmarshals the cached page for key into out and reports whether a
// valid entry was found.
func (c *PageCache) Get(ctx context.Context, key string, out interface{}) bool {
	if c == nil || c.client == nil {
		return false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("page cache get %s failed: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Printf("page cache entry %s is corrupt, ignoring: %v", key, err)
		return false
	}
	return true
}

// Set stores the page under key with the configured TTL.
func (c *PageCache) Set(ctx context.Context, key string, page interface{}) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(page)
	if err != nil {
		log.Printf("page cache marshal %s failed: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		log.Printf("page cache set %s failed: %v", key, err)
	}
}
