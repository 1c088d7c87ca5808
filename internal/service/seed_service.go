package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/careloop/advocates-api/internal/dto"
	"github.com/careloop/advocates-api/internal/models"
	"github.com/careloop/advocates-api/internal/seed"
	appErrors "github.com/careloop/advocates-api/pkg/errors"
)

type advocateSeeder interface {
	InsertBatch(ctx context.Context, advocates []models.Advocate) ([]models.Advocate, error)
}

// SeedService loads the fixed advocate dataset exactly once.
type SeedService struct {
	repo      advocateSeeder
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSeedService constructs the seed service.
func NewSeedService(repo advocateSeeder, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *SeedService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SeedService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// Seed inserts the fixed dataset inside one transaction. A rerun trips
// the phone number uniqueness constraint, rolls back, and surfaces as a
// conflict, leaving previously seeded rows untouched.
func (s *SeedService) Seed(ctx context.Context) (*dto.SeedResponse, error) {
	inserted, err := s.repo.InsertBatch(ctx, seed.Advocates())
	if err != nil {
		classified := classifyStorageError(err)
		if classified.Code == appErrors.ErrConflict.Code {
			return nil, appErrors.Clone(appErrors.ErrConflict, "Database already seeded")
		}
		return nil, classified
	}

	responses := make([]dto.AdvocateResponse, 0, len(inserted))
	for _, advocate := range inserted {
		resp := dto.NewAdvocateResponse(advocate)
		if err := s.validator.Struct(resp); err != nil {
			s.logger.Error("seeded advocate failed response contract", zap.Int64("id", advocate.ID), zap.Error(err))
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
		}
		responses = append(responses, resp)
	}

	if err := s.cache.Invalidate(ctx, advocateListKeyPrefix+"*"); err != nil {
		s.logger.Warn("invalidate advocate list cache failed", zap.Error(err))
	}

	s.logger.Info("database seeded", zap.Int("count", len(responses)))

	return &dto.SeedResponse{
		Message:   "Database seeded successfully",
		Count:     len(responses),
		Advocates: responses,
	}, nil
}
