package cache

import (
	"strings"
	"sync"
	"time"
)

// timeNow is a variable so tests can pin the clock.
var timeNow = time.Now

// Query TTLs, scaled to how fast each underlying answer goes stale.
// Working-tree status churns constantly; the shape of history does not.
const (
	TTLStatus      = 1500 * time.Millisecond
	TTLLog         = 2 * time.Second
	TTLBranches    = 2500 * time.Millisecond
	TTLTags        = 3 * time.Second
	TTLRemotes     = 5 * time.Second
	TTLBranchGraph = 7 * time.Second
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Cache memoizes repository query results with a per-entry lifetime.
// Expired entries are evicted lazily when read; there is no background
// sweeper.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
}

func New() *Cache {
	return &Cache{entries: make(map[string]entry)}
}

// Get returns the typed value cached under key, if present and fresh.
// A stale entry is dropped on the spot and reported as a miss, as is a
// value of the wrong type.
func Get[V any](c *Cache, key string) (V, bool) {
	var zero V

	c.mu.Lock()
	defer c.mu.Unlock()

	ent, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	if timeNow().After(ent.expiresAt) {
		delete(c.entries, key)
		return zero, false
	}

	value, ok := ent.value.(V)
	if !ok {
		return zero, false
	}
	return value, true
}

// Set stores value under key for ttl. A non-positive ttl stores
// nothing, turning the key into a permanent miss so callers can switch
// caching off without changing their code path.
func (c *Cache) Set(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{
		value:     value,
		expiresAt: timeNow().Add(ttl),
	}
}

// Invalidate drops every entry whose key contains substr. The empty
// string matches every key and clears the whole cache.
func (c *Cache) Invalidate(substr string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if substr == "" {
		c.entries = make(map[string]entry)
		return
	}
	for key := range c.entries {
		if strings.Contains(key, substr) {
			delete(c.entries, key)
		}
	}
}
