package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/sustainlite/sustainlite-api/internal/api/middleware"
	"github.com/sustainlite/sustainlite-api/internal/core/domain"
)

// currentUser returns the account injected by the Auth middleware. A missing
// user means the route was mounted without the middleware; treat it as
// unauthenticated.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.UserContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}
