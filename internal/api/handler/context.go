package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/conneco/feed-api/internal/core/domain"
)

// currentUser extracts the identity injected by the Auth middleware. Absence
// means the route was wired without the middleware; fail closed with 401
// rather than proceed unauthenticated.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get("user").(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}
