package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sustainlite/sustainlite-api/internal/core/domain"
)

// UserContextKey is the echo.Context key holding the authenticated *domain.User.
const UserContextKey = "user"

// IdentityResolver turns a bearer token into the account it names.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, token string) (*domain.User, error)
}

// Auth validates the bearer token and injects the resolved user into context.
// Failures are returned as errors so the central error handler renders the
// 401 and its WWW-Authenticate challenge.
func Auth(resolver IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return domain.ErrUnauthorized
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				return domain.ErrUnauthorized
			}

			user, err := resolver.ResolveIdentity(c.Request().Context(), strings.TrimSpace(parts[1]))
			if err != nil {
				return err
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}
