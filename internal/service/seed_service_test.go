package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/careloop/advocates-api/internal/models"
	appErrors "github.com/careloop/advocates-api/pkg/errors"
)

type mockSeedRepo struct {
	err      error
	gotCount int
}

func (m *mockSeedRepo) InsertBatch(ctx context.Context, advocates []models.Advocate) ([]models.Advocate, error) {
	m.gotCount = len(advocates)
	if m.err != nil {
		return nil, m.err
	}
	inserted := make([]models.Advocate, len(advocates))
	for i, advocate := range advocates {
		advocate.ID = int64(i + 1)
		advocate.CreatedAt = time.Now().UTC()
		inserted[i] = advocate
	}
	return inserted, nil
}

func TestSeedServiceSeed(t *testing.T) {
	repo := &mockSeedRepo{}
	cache, store := newTestCacheService()
	store.entries["advocates:list:limit=10&offset=0"] = []byte(`{}`)
	store.entries["unrelated:key"] = []byte(`{}`)

	svc := NewSeedService(repo, cache, validator.New(), zap.NewNop())

	resp, err := svc.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Database seeded successfully", resp.Message)
	assert.Equal(t, repo.gotCount, resp.Count)
	assert.Len(t, resp.Advocates, resp.Count)
	assert.NotZero(t, resp.Advocates[0].ID)

	_, evicted := store.entries["advocates:list:limit=10&offset=0"]
	assert.False(t, evicted)
	_, kept := store.entries["unrelated:key"]
	assert.True(t, kept)
}

func TestSeedServiceSeedConflictOnRerun(t *testing.T) {
	repo := &mockSeedRepo{err: &pq.Error{Code: "23505", Constraint: "advocates_phone_number_key"}}
	cache, _ := newTestCacheService()
	svc := NewSeedService(repo, cache, validator.New(), zap.NewNop())

	_, err := svc.Seed(context.Background())
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
	assert.Equal(t, http.StatusConflict, appErr.Status)
	assert.Equal(t, "Database already seeded", appErr.Message)
}

func TestSeedServiceSeedDatabaseDown(t *testing.T) {
	repo := &mockSeedRepo{err: &pq.Error{Code: "53300"}}
	cache, _ := newTestCacheService()
	svc := NewSeedService(repo, cache, validator.New(), zap.NewNop())

	_, err := svc.Seed(context.Background())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnavailable.Code, appErrors.FromError(err).Code)
}
