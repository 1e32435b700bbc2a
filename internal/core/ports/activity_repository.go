package ports

import (
	"context"

	"github.com/sustainlite/sustainlite-api/internal/core/domain"
)

// ActivityRepository persists activities. Every method is scoped to ownerID;
// rows belonging to another owner behave exactly like missing rows.
type ActivityRepository interface {
	Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error)
	// List returns a page of the owner's activities, newest first.
	List(ctx context.Context, ownerID int64, skip, limit int) ([]*domain.Activity, error)
	// ListAll returns every activity of the owner, newest first.
	ListAll(ctx context.Context, ownerID int64) ([]*domain.Activity, error)
	FindByID(ctx context.Context, ownerID, id int64) (*domain.Activity, error)
	// Delete removes the activity or returns domain.ErrActivityNotFound.
	Delete(ctx context.Context, ownerID, id int64) error
}
