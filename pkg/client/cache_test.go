package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClockedCache(fresh, evict time.Duration) (*ListCache, *time.Time) {
	cache := NewListCache(fresh, evict)
	now := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }
	return cache, &now
}

func cachedResult(total int) *ListResult {
	return &ListResult{Advocates: []Advocate{}, Pagination: Pagination{Limit: 10, Total: total}}
}

func TestListCacheFreshWindow(t *testing.T) {
	cache, now := newClockedCache(time.Minute, 5*time.Minute)
	cache.Put("limit=10", cachedResult(25))

	result, fresh, ok := cache.Get("limit=10")
	require.True(t, ok)
	assert.True(t, fresh)
	assert.Equal(t, 25, result.Pagination.Total)

	*now = now.Add(59 * time.Second)
	_, fresh, ok = cache.Get("limit=10")
	require.True(t, ok)
	assert.True(t, fresh)

	*now = now.Add(2 * time.Second)
	result, fresh, ok = cache.Get("limit=10")
	require.True(t, ok)
	assert.False(t, fresh, "entry past the fresh window is served stale")
	assert.Equal(t, 25, result.Pagination.Total)
}

func TestListCacheEvictsIdleEntries(t *testing.T) {
	cache, now := newClockedCache(time.Minute, 5*time.Minute)
	cache.Put("limit=10", cachedResult(25))

	*now = now.Add(5 * time.Minute)
	_, _, ok := cache.Get("limit=10")
	assert.False(t, ok)
	assert.Zero(t, cache.Len())
}

func TestListCacheAccessKeepsEntryAlive(t *testing.T) {
	cache, now := newClockedCache(time.Minute, 5*time.Minute)
	cache.Put("limit=10", cachedResult(25))

	// touch every 4 minutes; the idle window never elapses
	for i := 0; i < 3; i++ {
		*now = now.Add(4 * time.Minute)
		_, _, ok := cache.Get("limit=10")
		require.True(t, ok, "touch %d", i)
	}

	*now = now.Add(5 * time.Minute)
	_, _, ok := cache.Get("limit=10")
	assert.False(t, ok)
}

func TestListCacheDistinctKeysDoNotCollide(t *testing.T) {
	cache, _ := newClockedCache(time.Minute, 5*time.Minute)
	cache.Put("limit=10&search=a", cachedResult(1))
	cache.Put("limit=10&search=b", cachedResult(2))

	a, _, ok := cache.Get("limit=10&search=a")
	require.True(t, ok)
	b, _, ok := cache.Get("limit=10&search=b")
	require.True(t, ok)
	assert.NotEqual(t, a.Pagination.Total, b.Pagination.Total)
	assert.Equal(t, 2, cache.Len())
}

func TestListCachePutRestartsFreshness(t *testing.T) {
	cache, now := newClockedCache(time.Minute, 5*time.Minute)
	cache.Put("limit=10", cachedResult(25))

	*now = now.Add(90 * time.Second)
	_, fresh, ok := cache.Get("limit=10")
	require.True(t, ok)
	require.False(t, fresh)

	cache.Put("limit=10", cachedResult(26))
	result, fresh, ok := cache.Get("limit=10")
	require.True(t, ok)
	assert.True(t, fresh)
	assert.Equal(t, 26, result.Pagination.Total)
}
