package client

import (
	"sync"
	"time"
)

const (
	defaultFreshWindow = time.Minute
	defaultEvictAfter  = 5 * time.Minute
)

type cacheEntry struct {
	result     *ListResult
	fetchedAt  time.Time
	lastAccess time.Time
}

// ListCache memoizes list responses per filter key. An entry is fresh
// for the fresh window after it was stored; a stale entry is still
// served but signals the caller to refresh it in the background.
// Entries untouched for the eviction window are dropped outright.
type ListCache struct {
	mu      sync.Mutex
	fresh   time.Duration
	evict   time.Duration
	now     func() time.Time
	entries map[string]*cacheEntry
}

// NewListCache constructs a ListCache with the given windows. Non-positive
// durations fall back to one and five minutes respectively.
func NewListCache(fresh, evict time.Duration) *ListCache {
	if fresh <= 0 {
		fresh = defaultFreshWindow
	}
	if evict <= 0 {
		evict = defaultEvictAfter
	}
	return &ListCache{
		fresh:   fresh,
		evict:   evict,
		now:     time.Now,
		entries: make(map[string]*cacheEntry),
	}
}

// Get returns the cached result for key. fresh reports whether the entry
// is inside its fresh window. A hit counts as activity for eviction.
func (c *ListCache) Get(key string) (result *ListResult, fresh bool, ok bool) {
	if c == nil {
		return nil, false, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.sweepLocked(now)

	entry, found := c.entries[key]
	if !found {
		return nil, false, false
	}
	entry.lastAccess = now
	return entry.result, now.Sub(entry.fetchedAt) < c.fresh, true
}

// Put stores the result under key, restarting its freshness window.
func (c *ListCache) Put(key string, result *ListResult) {
	if c == nil || result == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.sweepLocked(now)
	c.entries[key] = &cacheEntry{result: result, fetchedAt: now, lastAccess: now}
}

// Len reports the number of live entries.
func (c *ListCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sweepLocked(c.now())
	return len(c.entries)
}

func (c *ListCache) sweepLocked(now time.Time) {
	for key, entry := range c.entries {
		if now.Sub(entry.lastAccess) >= c.evict {
			delete(c.entries, key)
		}
	}
}
