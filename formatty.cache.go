package formatty

import (
	"math"
	"slices"
	"sync"

	"github.com/hashicorp/golang-lru/v2/simplelru"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// RendererCache keeps compiled renderers keyed by their exact template text.
// It is bounded by MaxEntries with least-recently-used eviction, and
// concurrent first use of a template compiles it once: every caller observes
// the same fully built renderer.
type RendererCache struct {
	mu         sync.Mutex
	maxEntries int
	lru        *simplelru.LRU[string, *Renderer]
	group      singleflight.Group
	stats      CacheStats
	logger     *zap.Logger

	// removing marks an explicit Remove, which is not counted as an eviction
	removing bool
}

// CacheStats tracks cache performance metrics.
type CacheStats struct {
	Hits       int64
	Misses     int64
	Evictions  int64
	Compiles   int64
	EntryCount int
}

// NewRendererCache creates a cache holding at most maxEntries renderers.
// Use 0 for an unbounded cache.
func NewRendererCache(maxEntries int, logger *zap.Logger) *RendererCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &RendererCache{
		maxEntries: maxEntries,
		logger:     logger,
	}
	c.lru = c.newLRU()
	return c
}

// newLRU builds the backing list. The eviction callback runs while mu is held.
func (c *RendererCache) newLRU() *simplelru.LRU[string, *Renderer] {
	size := c.maxEntries
	if size <= 0 {
		size = math.MaxInt
	}
	l, err := simplelru.NewLRU(size, c.onEvict)
	if err != nil {
		// size is always positive here
		panic(err)
	}
	return l
}

func (c *RendererCache) onEvict(key string, _ *Renderer) {
	if c.removing {
		return
	}
	c.stats.Evictions++
	c.logger.Debug(LogMsgCacheEvict, zap.Int(LogFieldLength, len(key)))
}

// Get returns the cached renderer for key and marks it recently used.
func (c *RendererCache) Get(key string) (*Renderer, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if r, ok := c.lru.Get(key); ok {
		c.stats.Hits++
		return r, true
	}
	c.stats.Misses++
	return nil, false
}

// GetOrBuild returns the cached renderer for key, calling build on a miss.
// Concurrent misses on the same key share one build. Failed builds are not
// cached.
func (c *RendererCache) GetOrBuild(key string, build func() (*Renderer, error)) (*Renderer, error) {
	if r, ok := c.Get(key); ok {
		c.logger.Debug(LogMsgCacheHit, zap.Int(LogFieldLength, len(key)))
		return r, nil
	}
	c.logger.Debug(LogMsgCacheMiss, zap.Int(LogFieldLength, len(key)))

	v, err, _ := c.group.Do(key, func() (any, error) {
		// A flight that finished just before this one may have stored it
		if r, ok := c.peek(key); ok {
			return r, nil
		}
		r, err := build()
		if err != nil {
			return nil, err
		}
		c.Add(key, r)
		return r, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Renderer), nil
}

// Add stores a renderer, evicting the least recently used entry when full.
func (c *RendererCache) Add(key string, r *Renderer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.Compiles++
	c.lru.Add(key, r)
	c.stats.EntryCount = c.lru.Len()
}

// Remove drops key from the cache and reports whether it was present.
func (c *RendererCache) Remove(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.removing = true
	present := c.lru.Remove(key)
	c.removing = false
	c.stats.EntryCount = c.lru.Len()
	return present
}

// Keys returns the cached template texts, most recently used first.
func (c *RendererCache) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := c.lru.Keys()
	slices.Reverse(keys)
	return keys
}

// Len returns the number of cached renderers.
func (c *RendererCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Clear removes all entries from the cache. Statistics other than the entry
// count are kept.
func (c *RendererCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lru = c.newLRU()
	c.stats.EntryCount = 0
	c.logger.Debug(LogMsgCacheCleared)
}

// Stats returns current cache statistics.
func (c *RendererCache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// HitRate returns the cache hit rate (0.0 to 1.0).
func (c *RendererCache) HitRate() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := c.stats.Hits + c.stats.Misses
	if total == 0 {
		return 0
	}
	return float64(c.stats.Hits) / float64(total)
}

// peek looks a key up without touching recency or statistics
func (c *RendererCache) peek(key string) (*Renderer, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Peek(key)
}
