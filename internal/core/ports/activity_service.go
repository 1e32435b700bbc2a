package ports

import (
	"context"

	"github.com/sustainlite/sustainlite-api/internal/core/domain"
)

// CreateActivityInput is the DTO passed from the transport layer to ActivityService.
type CreateActivityInput struct {
	Category string
	Action   string
	Value    float64
	Unit     string
	Notes    *string // optional
}

// ListActivitiesInput carries offset pagination. Zero values select the defaults.
type ListActivitiesInput struct {
	Skip  int
	Limit int
}

// ActivityService defines owner-scoped use cases for activities.
type ActivityService interface {
	Create(ctx context.Context, ownerID int64, input CreateActivityInput) (*domain.Activity, error)
	List(ctx context.Context, ownerID int64, input ListActivitiesInput) ([]*domain.Activity, error)
	Get(ctx context.Context, ownerID, id int64) (*domain.Activity, error)
	Delete(ctx context.Context, ownerID, id int64) error
}
