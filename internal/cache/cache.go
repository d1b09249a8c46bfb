package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"ai-news-digest/internal/models"
)

// DefaultTTL is how long a digest stays fresh when no TTL is configured.
const DefaultTTL = 300 * time.Second

// ComputeFn produces a digest on a cache miss.
type ComputeFn func(ctx context.Context) (*models.DigestResult, error)

// ResultCache memoizes digest results per (window, language) key for a
// fixed TTL. Lookups treat expired entries as absent. Concurrent misses
// on the same key may each compute; the cache is an optimization, not a
// lock, so duplicate upstream work is tolerated while stored entries are
// never corrupted (the underlying LRU is safe for concurrent use).
type ResultCache struct {
	entries *expirable.LRU[models.DigestKey, *models.DigestResult]
	ttl     time.Duration
}

// New creates a result cache. A non-positive ttl falls back to DefaultTTL;
// size bounds the number of live entries (0 means unbounded).
func New(ttl time.Duration, size int) *ResultCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ResultCache{
		entries: expirable.NewLRU[models.DigestKey, *models.DigestResult](size, nil, ttl),
		ttl:     ttl,
	}
}

// GetOrCompute returns the cached digest for key when one is still fresh,
// otherwise runs compute and stores its result. The returned bool reports
// whether the result came from the cache. Compute failures are propagated
// and nothing is stored for them.
func (c *ResultCache) GetOrCompute(ctx context.Context, key models.DigestKey, compute ComputeFn) (*models.DigestResult, bool, error) {
	if result, ok := c.entries.Get(key); ok {
		return result, true, nil
	}

	result, err := compute(ctx)
	if err != nil {
		return nil, false, err
	}

	c.entries.Add(key, result)
	return result, false, nil
}

// Invalidate drops the entry for key, if present.
func (c *ResultCache) Invalidate(key models.DigestKey) {
	c.entries.Remove(key)
}

// Purge drops all entries.
func (c *ResultCache) Purge() {
	c.entries.Purge()
}

// Len reports the number of live entries.
func (c *ResultCache) Len() int {
	return c.entries.Len()
}

// TTL reports the configured time-to-live.
func (c *ResultCache) TTL() time.Duration {
	return c.ttl
}
