package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/conneco/feed-api/internal/api/metrics"
	"github.com/conneco/feed-api/internal/core/domain"
	"github.com/conneco/feed-api/internal/core/ports"
)

// Auth gates protected routes. It extracts the bearer token, verifies its
// signature and expiry, then re-validates the embedded credential against the
// user store: the row must match both the subject id and the credential copied
// into the claim at issuance. A credential change therefore revokes every
// previously issued token on its next use.
//
// The store round trip is the only side effect; on success the matched user is
// injected into the context under "user".
func Auth(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "token required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			userID, err := strconv.ParseInt(claims.UserID, 10, 64)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			user, err := users.FindByIDAndPass(c.Request().Context(), userID, claims.UserPass)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.AuthRejectionsTotal.WithLabelValues("credential_mismatch").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "user not found or credential changed")
				}
				// Store failure is a fault, not an auth failure.
				return fmt.Errorf("auth revalidation: %w", err)
			}

			c.Set("user", user)
			return next(c)
		}
	}
}
