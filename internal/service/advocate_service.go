package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/careloop/advocates-api/internal/dto"
	"github.com/careloop/advocates-api/internal/models"
	appErrors "github.com/careloop/advocates-api/pkg/errors"
)

type advocateRepository interface {
	List(ctx context.Context, filter models.AdvocateFilter) ([]models.Advocate, int, error)
	FindByID(ctx context.Context, id int64) (*models.Advocate, error)
	Ping(ctx context.Context) error
}

const advocateListKeyPrefix = "advocates:list:"

// advocateListPage is the cached representation of one directory page.
type advocateListPage struct {
	Advocates  []dto.AdvocateResponse `json:"advocates"`
	Pagination models.Pagination      `json:"pagination"`
}

// AdvocateService handles directory search use-cases.
type AdvocateService struct {
	repo      advocateRepository
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	listTTL   time.Duration
}

// NewAdvocateService constructs the advocate service.
func NewAdvocateService(repo advocateRepository, cache *CacheService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger, listTTL time.Duration) *AdvocateService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if listTTL <= 0 {
		listTTL = time.Minute
	}
	return &AdvocateService{repo: repo, cache: cache, metrics: metrics, validator: validate, logger: logger, listTTL: listTTL}
}

// List returns one page of advocates plus pagination metadata derived
// from the unwindowed match count. Pages are cached per filter so
// repeated searches within the TTL skip storage entirely.
func (s *AdvocateService) List(ctx context.Context, filter models.AdvocateFilter) ([]dto.AdvocateResponse, *models.Pagination, error) {
	if filter.Limit <= 0 {
		filter.Limit = dto.DefaultLimit
	}
	key := advocateListKeyPrefix + filter.CacheKey()

	var cached advocateListPage
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		pagination := cached.Pagination
		return cached.Advocates, &pagination, nil
	}

	start := time.Now()
	advocates, total, err := s.repo.List(ctx, filter)
	s.metrics.ObserveDBQuery("advocates_list", time.Since(start))
	if err != nil {
		return nil, nil, classifyStorageError(err)
	}

	responses, err := s.transform(advocates)
	if err != nil {
		return nil, nil, err
	}

	pagination := models.NewPagination(filter.Limit, filter.Offset, len(responses), total)

	if err := s.cache.Set(ctx, key, advocateListPage{Advocates: responses, Pagination: *pagination}, s.listTTL); err != nil {
		s.logger.Warn("cache advocate page failed", zap.String("key", key), zap.Error(err))
	}

	return responses, pagination, nil
}

// Get returns a single advocate by id.
func (s *AdvocateService) Get(ctx context.Context, id int64) (*dto.AdvocateResponse, error) {
	start := time.Now()
	advocate, err := s.repo.FindByID(ctx, id)
	s.metrics.ObserveDBQuery("advocates_find_by_id", time.Since(start))
	if err != nil {
		classified := classifyStorageError(err)
		if classified.Code == appErrors.ErrNotFound.Code {
			return nil, appErrors.ErrNotFound.WithDetail(fmt.Sprintf("Advocate with id %d not found", id))
		}
		return nil, classified
	}

	resp := dto.NewAdvocateResponse(*advocate)
	if err := s.validator.Struct(resp); err != nil {
		s.logger.Error("advocate failed response contract", zap.Int64("id", id), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return &resp, nil
}

// Ready reports whether storage answers a ping.
func (s *AdvocateService) Ready(ctx context.Context) error {
	if err := s.repo.Ping(ctx); err != nil {
		return classifyStorageError(err)
	}
	return nil
}

// transform maps rows to wire shapes and verifies each against the
// response contract so a mapping bug cannot leak a malformed record.
func (s *AdvocateService) transform(advocates []models.Advocate) ([]dto.AdvocateResponse, error) {
	responses := make([]dto.AdvocateResponse, 0, len(advocates))
	for _, advocate := range advocates {
		resp := dto.NewAdvocateResponse(advocate)
		if err := s.validator.Struct(resp); err != nil {
			s.logger.Error("advocate failed response contract", zap.Int64("id", advocate.ID), zap.Error(err))
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
		}
		responses = append(responses, resp)
	}
	return responses, nil
}
