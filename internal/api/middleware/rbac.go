package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/familyhub/dashboard/internal/core/domain"
)

func forbidden(c echo.Context) error {
	return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
}

// RequireView lets the request through when the role may open at least one
// of views.
func RequireView(views ...domain.ViewID) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextRole).(domain.Role)
			if !ok {
				return forbidden(c)
			}
			for _, v := range views {
				if domain.CanView(role, v) {
					return next(c)
				}
			}
			return forbidden(c)
		}
	}
}

// RequireAction enforces the action table: the role must hold the action's
// capability and must not be view-only.
func RequireAction(action domain.ActionID) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextRole).(domain.Role)
			if !ok || !domain.ActionAllowed(role, action) {
				return forbidden(c)
			}
			return next(c)
		}
	}
}
