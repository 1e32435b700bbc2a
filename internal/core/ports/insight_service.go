package ports

import (
	"context"

	"github.com/sustainlite/sustainlite-api/internal/core/domain"
)

// InsightService derives read-only views from an owner's activity history.
type InsightService interface {
	Dashboard(ctx context.Context, ownerID int64) (*domain.DashboardStats, error)
	Recommendations(ctx context.Context, ownerID int64) ([]domain.Recommendation, error)
}
