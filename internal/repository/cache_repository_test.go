package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appErrors "github.com/careloop/advocates-api/pkg/errors"
)

func newCacheRepo(t *testing.T) (*CacheRepository, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewCacheRepository(client, zap.NewNop()), mr
}

type cachedPage struct {
	Total int      `json:"total"`
	Names []string `json:"names"`
}

func TestCacheRepositoryRoundTrip(t *testing.T) {
	repo, _ := newCacheRepo(t)
	ctx := context.Background()

	value := cachedPage{Total: 2, Names: []string{"Doe", "Desai"}}
	require.NoError(t, repo.Set(ctx, "advocates:list:limit=10&offset=0", value, time.Minute))

	var got cachedPage
	require.NoError(t, repo.Get(ctx, "advocates:list:limit=10&offset=0", &got))
	assert.Equal(t, value, got)
}

func TestCacheRepositoryMissingKey(t *testing.T) {
	repo, _ := newCacheRepo(t)

	var got cachedPage
	err := repo.Get(context.Background(), "advocates:list:absent", &got)
	assert.ErrorIs(t, err, appErrors.ErrCacheMiss)
}

func TestCacheRepositoryEntryExpires(t *testing.T) {
	repo, mr := newCacheRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "advocates:list:ttl", cachedPage{Total: 1}, time.Minute))
	mr.FastForward(2 * time.Minute)

	var got cachedPage
	err := repo.Get(ctx, "advocates:list:ttl", &got)
	assert.ErrorIs(t, err, appErrors.ErrCacheMiss)
}

func TestCacheRepositoryDeleteByPattern(t *testing.T) {
	repo, _ := newCacheRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "advocates:list:a", cachedPage{Total: 1}, time.Minute))
	require.NoError(t, repo.Set(ctx, "advocates:list:b", cachedPage{Total: 2}, time.Minute))
	require.NoError(t, repo.Set(ctx, "other:key", cachedPage{Total: 3}, time.Minute))

	require.NoError(t, repo.DeleteByPattern(ctx, "advocates:list:*"))

	var got cachedPage
	assert.ErrorIs(t, repo.Get(ctx, "advocates:list:a", &got), appErrors.ErrCacheMiss)
	assert.ErrorIs(t, repo.Get(ctx, "advocates:list:b", &got), appErrors.ErrCacheMiss)
	assert.NoError(t, repo.Get(ctx, "other:key", &got))
}

func TestCacheRepositoryNilClient(t *testing.T) {
	repo := NewCacheRepository(nil, zap.NewNop())
	ctx := context.Background()

	var got cachedPage
	assert.ErrorIs(t, repo.Get(ctx, "any", &got), appErrors.ErrCacheMiss)
	assert.NoError(t, repo.Set(ctx, "any", got, time.Minute))
	assert.NoError(t, repo.DeleteByPattern(ctx, "any:*"))
}
