package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
)

// Runner executes fn on a single serial loop.
type Runner interface {
	Do(ctx context.Context, fn func() error) error
}

// Serialize runs the rest of the chain on loop, so handlers and middleware
// after it never touch household state concurrently.
func Serialize(loop Runner) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return loop.Do(c.Request().Context(), func() error {
				return next(c)
			})
		}
	}
}
