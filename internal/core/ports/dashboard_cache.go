package ports

import (
	"context"

	"github.com/sustainlite/sustainlite-api/internal/core/domain"
)

// DashboardCache stores computed dashboard stats per owner and generation.
// Invalidate advances the owner's generation, so entries written under an
// older generation are never read again. Get reports a miss with
// (nil, false, nil).
type DashboardCache interface {
	Generation(ctx context.Context, ownerID int64) (int64, error)
	Get(ctx context.Context, ownerID, gen int64) (*domain.DashboardStats, bool, error)
	Set(ctx context.Context, ownerID, gen int64, stats *domain.DashboardStats) error
	Invalidate(ctx context.Context, ownerID int64) error
}
