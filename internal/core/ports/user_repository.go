package ports

import (
	"context"

	"github.com/sustainlite/sustainlite-api/internal/core/domain"
)

// UserRepository persists user accounts. Lookups return domain.ErrUserNotFound
// on a miss; Create maps unique-constraint violations to
// domain.ErrDuplicateUsername / domain.ErrDuplicateEmail.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
