// Package cache provides the process-local read-through caches that sit in
// front of list/detail queries and downloaded file payloads. Entries expire
// after a fixed per-cache TTL; writes never invalidate (staleness is bounded
// by the TTL alone).
package cache

import (
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	hitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cache_hits_total",
		Help: "Total cache hits per cache instance.",
	}, []string{"cache"})
	missesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cache_misses_total",
		Help: "Total cache misses per cache instance.",
	}, []string{"cache"})
)

// Cache is a TTL-bounded in-memory cache keyed by request shape.
// Size 0 keeps it unbounded in entry count; expiry is the only eviction.
// Safe for concurrent use; two requests racing on the same key may both
// miss and both populate, last writer wins.
type Cache[V any] struct {
	name string
	lru  *expirable.LRU[string, V]
}

// New creates a named cache whose entries live for ttl after insertion.
// The name labels the prometheus hit/miss counters.
func New[V any](name string, ttl time.Duration) *Cache[V] {
	return &Cache[V]{
		name: name,
		lru:  expirable.NewLRU[string, V](0, nil, ttl),
	}
}

// Get returns the cached value for key if present and not expired.
func (c *Cache[V]) Get(key string) (V, bool) {
	v, ok := c.lru.Get(key)
	if ok {
		hitsTotal.WithLabelValues(c.name).Inc()
		return v, true
	}
	missesTotal.WithLabelValues(c.name).Inc()
	var zero V
	return zero, false
}

// Put stores the value under key, overwriting any existing entry.
func (c *Cache[V]) Put(key string, v V) {
	c.lru.Add(key, v)
}

// Len reports the current entry count (expired entries may still be counted
// until purged).
func (c *Cache[V]) Len() int {
	return c.lru.Len()
}

// Key builds a deterministic cache key from an operation name and every
// parameter that affects the result. Logically identical requests must map
// to the same key; requests differing in any parameter must not.
func Key(op string, parts ...any) string {
	var b strings.Builder
	b.WriteString(op)
	for _, p := range parts {
		b.WriteByte(':')
		fmt.Fprintf(&b, "%v", p)
	}
	return b.String()
}
