package cache

import (
	"time"

	"golang.org/x/sync/singleflight"
)

// Group layers request coalescing over a Cache: when several callers
// miss on the same key at once, one of them computes and the rest wait
// for its answer instead of each launching the same expensive query.
type Group struct {
	cache  *Cache
	flight singleflight.Group
}

func NewGroup(c *Cache) *Group {
	return &Group{cache: c}
}

// Do returns the value cached under key or, on a miss, runs fn once
// across all concurrent callers and caches its result for ttl. Errors
// propagate to every waiter and are never cached, so the next call
// retries.
func Do[V any](g *Group, key string, ttl time.Duration, fn func() (V, error)) (V, error) {
	if value, ok := Get[V](g.cache, key); ok {
		return value, nil
	}

	result, err, _ := g.flight.Do(key, func() (any, error) {
		// A winner may have filled the cache while this caller was
		// waiting to enter the flight.
		if value, ok := Get[V](g.cache, key); ok {
			return value, nil
		}

		value, err := fn()
		if err != nil {
			return nil, err
		}
		g.cache.Set(key, value, ttl)
		return value, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return result.(V), nil
}

// Invalidate forwards to the underlying cache.
func (g *Group) Invalidate(substr string) {
	g.cache.Invalidate(substr)
}
