package ports

import (
	"context"

	"github.com/sustainlite/sustainlite-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	IssueToken(user *domain.User) (*domain.Token, error)
	Login(ctx context.Context, username, password string) (*domain.Token, *domain.User, error)
	ResolveIdentity(ctx context.Context, token string) (*domain.User, error)
}
