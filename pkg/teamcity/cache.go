package teamcity

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Default TTLs for composite lookup results.
const (
	// DefaultStatusTTL bounds how long a cached build status is served.
	DefaultStatusTTL = 5 * time.Minute

	// DefaultResultsTTL bounds how long cached composite build results are
	// served. Results are heavier to recompute than status, so they keep a
	// longer window.
	DefaultResultsTTL = 10 * time.Minute
)

// Cache is a pluggable cache backend.
type Cache interface {
	Get(ctx context.Context, key string) (*CacheEntry, error)
	Set(ctx context.Context, key string, entry *CacheEntry) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Has(ctx context.Context, key string) bool
}

// CacheEntry represents a cached item. Entries are never mutated in place; a
// refresh replaces the entry wholesale.
type CacheEntry struct {
	Data      []byte    `json:"data"`
	StoredAt  time.Time `json:"storedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// IsExpired checks whether the entry has passed its expiry at the given time.
func (e *CacheEntry) IsExpired(now time.Time) bool {
	return now.After(e.ExpiresAt)
}

// MemoryCache is an in-memory cache backend with a size bound and lazy
// expiry. Safe for concurrent use.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*CacheEntry
	maxSize int
	now     func() time.Time
}

// MemoryCacheOption configures a MemoryCache.
type MemoryCacheOption func(*MemoryCache)

// WithMemoryClock overrides the cache's clock. Tests substitute a
// controllable clock instead of waiting on real timers.
func WithMemoryClock(now func() time.Time) MemoryCacheOption {
	return func(c *MemoryCache) {
		c.now = now
	}
}

// NewMemoryCache creates a new memory cache holding at most maxSize entries.
func NewMemoryCache(maxSize int, opts ...MemoryCacheOption) *MemoryCache {
	cache := &MemoryCache{
		entries: make(map[string]*CacheEntry),
		maxSize: maxSize,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache
}

// Get retrieves an entry. An expired entry is evicted and reported absent.
func (c *MemoryCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCacheKeyNotFound, key)
	}

	if entry.IsExpired(c.now()) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()

		return nil, fmt.Errorf("%w: %s", ErrCacheEntryExpired, key)
	}

	return entry, nil
}

// Set stores an entry, evicting the entry closest to expiry when full.
func (c *MemoryCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && c.maxSize > 0 && len(c.entries) >= c.maxSize {
		c.evictOldestLocked()
	}

	c.entries[key] = entry

	return nil
}

// Delete removes an entry.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)

	return nil
}

// Clear removes all entries.
func (c *MemoryCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*CacheEntry)

	return nil
}

// Has checks whether a non-expired entry exists for the key.
func (c *MemoryCache) Has(ctx context.Context, key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]

	return ok && !entry.IsExpired(c.now())
}

// Cleanup sweeps all expired entries.
func (c *MemoryCache) Cleanup() {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	for key, entry := range c.entries {
		if entry.IsExpired(now) {
			delete(c.entries, key)
		}
	}
}

func (c *MemoryCache) evictOldestLocked() {
	var (
		oldestKey  string
		oldestTime time.Time
		first      = true
	)

	for key, entry := range c.entries {
		if first || entry.ExpiresAt.Before(oldestTime) {
			oldestKey = key
			oldestTime = entry.ExpiresAt
			first = false
		}
	}

	if !first {
		delete(c.entries, oldestKey)
	}
}

// CacheStats tracks cache effectiveness counters.
type CacheStats struct {
	Hits   int64 `json:"hits"   yaml:"hits"`
	Misses int64 `json:"misses" yaml:"misses"`
	Sets   int64 `json:"sets"   yaml:"sets"`
}

// GetHitRate returns hits / (hits + misses), or 0 with no lookups.
func (s *CacheStats) GetHitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}

	return float64(s.Hits) / float64(total)
}

// ResultCache stores the last computed composite result for a
// (resource id, option set) pair, bounded by a fixed TTL. Whether a result
// may be stored at all is the caller's decision: the cacheability predicate
// is evaluated against the resource's lifecycle state at computation time,
// outside this type.
type ResultCache struct {
	backend Cache
	ttl     time.Duration
	now     func() time.Time

	mu    sync.Mutex
	stats CacheStats
}

// ResultCacheOption configures a ResultCache.
type ResultCacheOption func(*ResultCache)

// WithClock overrides the cache's clock for TTL computation.
func WithClock(now func() time.Time) ResultCacheOption {
	return func(c *ResultCache) {
		c.now = now
	}
}

// NewResultCache creates a ResultCache over the given backend. A nil backend
// disables caching: every Get misses and every Set is a no-op.
func NewResultCache(backend Cache, ttl time.Duration, opts ...ResultCacheOption) *ResultCache {
	cache := &ResultCache{
		backend: backend,
		ttl:     ttl,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache
}

// Key derives a deterministic cache key from a resource id and its option
// set. Options are canonicalized by sorting so that logically identical
// requests produce the same key regardless of construction order, and any
// option that affects the computed value must be present so that narrow and
// wide requests never satisfy each other.
func (c *ResultCache) Key(resourceID string, options map[string]string) string {
	if len(options) == 0 {
		return resourceID
	}

	keys := make([]string, 0, len(options))
	for key := range options {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+"="+options[key])
	}

	return resourceID + "?" + strings.Join(parts, "&")
}

// Get returns the cached bytes for the key, or false on a miss or expiry.
func (c *ResultCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c.backend == nil {
		return nil, false
	}

	entry, err := c.backend.Get(ctx, key)
	if err != nil || entry == nil || entry.IsExpired(c.now()) {
		c.mu.Lock()
		c.stats.Misses++
		c.mu.Unlock()

		return nil, false
	}

	c.mu.Lock()
	c.stats.Hits++
	c.mu.Unlock()

	return entry.Data, true
}

// Set stores the bytes under the key with the cache's TTL, sweeping expired
// entries opportunistically first.
func (c *ResultCache) Set(ctx context.Context, key string, data []byte) error {
	if c.backend == nil {
		return nil
	}

	c.Sweep()

	now := c.now()
	entry := &CacheEntry{
		Data:      data,
		StoredAt:  now,
		ExpiresAt: now.Add(c.ttl),
	}

	err := c.backend.Set(ctx, key, entry)
	if err != nil {
		return fmt.Errorf("storing cache entry: %w", err)
	}

	c.mu.Lock()
	c.stats.Sets++
	c.mu.Unlock()

	return nil
}

// Sweep removes expired entries from backends that support it.
func (c *ResultCache) Sweep() {
	type cleaner interface{ Cleanup() }

	if sweeper, ok := c.backend.(cleaner); ok {
		sweeper.Cleanup()
	}
}

// Stats returns a snapshot of the cache counters.
func (c *ResultCache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.stats
}
