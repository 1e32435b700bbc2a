package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sustainlite/sustainlite-api/internal/core/domain"
	"github.com/sustainlite/sustainlite-api/internal/core/ports"
	"github.com/sustainlite/sustainlite-api/internal/metrics"
)

const (
	DefaultListLimit = 100
	DefaultMaxLimit  = 500
)

type ActivityService struct {
	repo     ports.ActivityRepository
	cache    ports.DashboardCache // optional
	maxLimit int
	now      func() time.Time
	logger   zerolog.Logger
}

// NewActivityService builds an ActivityService. cache may be nil; maxLimit <= 0
// selects DefaultMaxLimit.
func NewActivityService(repo ports.ActivityRepository, cache ports.DashboardCache, maxLimit int, logger zerolog.Logger) *ActivityService {
	if maxLimit <= 0 {
		maxLimit = DefaultMaxLimit
	}
	return &ActivityService{repo: repo, cache: cache, maxLimit: maxLimit, now: time.Now, logger: logger}
}

// Create stores a new activity for ownerID, dated now.
func (s *ActivityService) Create(ctx context.Context, ownerID int64, input ports.CreateActivityInput) (*domain.Activity, error) {
	verr := &domain.ValidationError{}
	if strings.TrimSpace(input.Category) == "" {
		verr.Add("category", "category is required")
	}
	if strings.TrimSpace(input.Action) == "" {
		verr.Add("action", "action is required")
	}
	if strings.TrimSpace(input.Unit) == "" {
		verr.Add("unit", "unit is required")
	}
	if len(verr.Fields) > 0 {
		return nil, verr
	}

	created, err := s.repo.Create(ctx, &domain.Activity{
		UserID:   ownerID,
		Category: input.Category,
		Action:   input.Action,
		Value:    input.Value,
		Unit:     input.Unit,
		Notes:    input.Notes,
		Date:     s.now().UTC(),
	})
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", ownerID).Msg("failed to create activity")
		return nil, err
	}

	s.invalidate(ctx, ownerID)
	metrics.ActivitiesCreatedTotal.WithLabelValues(metrics.CategoryLabel(created.Category)).Inc()
	s.logger.Info().Int64("activity_id", created.ID).Int64("user_id", ownerID).Str("category", created.Category).Msg("activity created")

	return created, nil
}

// List returns a page of the owner's activities, newest first. Skip is floored
// at zero; limit defaults to DefaultListLimit and is capped at the configured max.
func (s *ActivityService) List(ctx context.Context, ownerID int64, input ports.ListActivitiesInput) ([]*domain.Activity, error) {
	skip := input.Skip
	if skip < 0 {
		skip = 0
	}
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}

	return s.repo.List(ctx, ownerID, skip, limit)
}

func (s *ActivityService) Get(ctx context.Context, ownerID, id int64) (*domain.Activity, error) {
	return s.repo.FindByID(ctx, ownerID, id)
}

// Delete permanently removes an owned activity.
func (s *ActivityService) Delete(ctx context.Context, ownerID, id int64) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}

	s.invalidate(ctx, ownerID)
	metrics.ActivitiesDeletedTotal.Inc()
	s.logger.Info().Int64("activity_id", id).Int64("user_id", ownerID).Msg("activity deleted")
	return nil
}

// invalidate drops the cached dashboard. Failures are logged, not returned:
// the write has already been committed.
func (s *ActivityService) invalidate(ctx context.Context, ownerID int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, ownerID); err != nil {
		s.logger.Warn().Err(err).Int64("user_id", ownerID).Msg("failed to invalidate dashboard cache")
	}
}
