// Package cache holds rendered API payloads so repeated queries against
// the frozen registry skip the filter and clone work. Entries expire on
// a TTL; there is no invalidation because the underlying data never
// changes while the server runs.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache is a TTL keyed store backed by patrickmn/go-cache.
type Cache struct {
	store *gocache.Cache
}

// New creates a cache whose entries live for defaultTTL. Expired items
// are swept every cleanupInterval.
func New(defaultTTL, cleanupInterval time.Duration) *Cache {
	return &Cache{store: gocache.New(defaultTTL, cleanupInterval)}
}

// Get returns the cached value for key, if present and unexpired.
func (c *Cache) Get(key string) (any, bool) {
	return c.store.Get(key)
}

// Set stores value under key with the default TTL.
func (c *Cache) Set(key string, value any) {
	c.store.SetDefault(key, value)
}

// SetWithTTL stores value with an entry-specific TTL.
func (c *Cache) SetWithTTL(key string, value any, ttl time.Duration) {
	c.store.Set(key, value, ttl)
}

// Delete drops one entry.
func (c *Cache) Delete(key string) {
	c.store.Delete(key)
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.store.Flush()
}

// ItemCount reports how many entries are held, expired ones included
// until the next sweep.
func (c *Cache) ItemCount() int {
	return c.store.ItemCount()
}
