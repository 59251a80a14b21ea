package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/TemirB/storefront/internal/observability"
)

// Cache is a size- and TTL-bounded LRU that reports hits and misses under
// its name.
type Cache[V any] struct {
	name    string
	size    int
	lru     *expirable.LRU[string, V]
	metrics observability.Metrics
}

func New[V any](name string, size int, ttl time.Duration, metrics observability.Metrics) *Cache[V] {
	if size < 1 {
		size = 1
	}
	if metrics == nil {
		metrics = observability.NewNoop()
	}
	return &Cache[V]{
		name:    name,
		size:    size,
		lru:     expirable.NewLRU[string, V](size, nil, ttl),
		metrics: metrics,
	}
}

func (c *Cache[V]) Get(key string) (V, bool) {
	v, ok := c.lru.Get(key)
	if ok {
		c.metrics.IncCacheHit(c.name)
	} else {
		c.metrics.IncCacheMiss(c.name)
	}
	return v, ok
}

func (c *Cache[V]) Set(key string, v V) {
	c.lru.Add(key, v)
}

func (c *Cache[V]) Purge() {
	c.lru.Purge()
}

func (c *Cache[V]) Len() int {
	return c.lru.Len()
}

// GetOrLoad returns the cached value or calls load. Only successful loads
// are cached.
func (c *Cache[V]) GetOrLoad(ctx context.Context, key string, load func(context.Context) (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err := load(ctx)
	if err != nil {
		return v, err
	}
	c.Set(key, v)
	return v, nil
}

// Warm loads keys up to the cache size. Keys that fail to load are skipped.
func (c *Cache[V]) Warm(ctx context.Context, keys []string, load func(context.Context, string) (V, error)) int {
	n := 0
	for _, k := range keys {
		if n >= c.size || ctx.Err() != nil {
			break
		}
		v, err := load(ctx, k)
		if err != nil {
			continue
		}
		c.Set(k, v)
		n++
	}
	return n
}
