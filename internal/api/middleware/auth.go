package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/familyhub/dashboard/internal/core/domain"
)

// Context keys set by Auth.
const (
	ContextSession = "session"
	ContextRole    = "role"
)

// TokenVerifier resolves a bearer token to the live session.
type TokenVerifier interface {
	Verify(token string) (domain.Session, error)
}

// Auth validates the bearer token against the live session and injects the
// session and its role into the context.
func Auth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			session, err := verifier.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session")
			}

			c.Set(ContextSession, session)
			c.Set(ContextRole, session.Identity.Role)

			return next(c)
		}
	}
}
