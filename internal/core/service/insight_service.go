package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sustainlite/sustainlite-api/internal/core/domain"
	"github.com/sustainlite/sustainlite-api/internal/core/ports"
	"github.com/sustainlite/sustainlite-api/internal/metrics"
)

type insightService struct {
	repo  ports.ActivityRepository
	cache ports.DashboardCache // optional
	log   zerolog.Logger
}

// NewInsightService returns an InsightService implementation. cache may be nil.
func NewInsightService(repo ports.ActivityRepository, cache ports.DashboardCache, log zerolog.Logger) ports.InsightService {
	return &insightService{repo: repo, cache: cache, log: log}
}

// Dashboard computes the owner's summary, serving it from the cache when possible.
func (s *insightService) Dashboard(ctx context.Context, ownerID int64) (*domain.DashboardStats, error) {
	// 1. Cache lookup under the current generation: errors degrade to a
	// recomputation.
	var gen int64
	useCache := s.cache != nil
	if useCache {
		var err error
		if gen, err = s.cache.Generation(ctx, ownerID); err != nil {
			useCache = false
			s.cacheReadFailed(ownerID, err)
		} else if stats, ok, err := s.cache.Get(ctx, ownerID, gen); err != nil {
			s.cacheReadFailed(ownerID, err)
		} else if ok {
			metrics.DashboardCacheTotal.WithLabelValues("hit").Inc()
			return stats, nil
		} else {
			metrics.DashboardCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	// 2. Full scan of the owner's history.
	activities, err := s.repo.ListAll(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	stats := domain.Summarize(activities)

	// 3. Populate the cache under the generation read before the scan; a
	// write that landed meanwhile has already moved readers past it.
	if useCache {
		if err := s.cache.Set(ctx, ownerID, gen, stats); err != nil {
			s.log.Warn().Err(err).Int64("user_id", ownerID).Msg("failed to store dashboard in cache")
		}
	}

	return stats, nil
}

func (s *insightService) cacheReadFailed(ownerID int64, err error) {
	metrics.DashboardCacheTotal.WithLabelValues("error").Inc()
	s.log.Warn().Err(err).Int64("user_id", ownerID).Msg("dashboard cache read failed, recomputing")
}

// Recommendations evaluates the fixed rule set over the owner's history.
func (s *insightService) Recommendations(ctx context.Context, ownerID int64) ([]domain.Recommendation, error) {
	activities, err := s.repo.ListAll(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("recommendations: %w", err)
	}
	return domain.Recommend(activities), nil
}
