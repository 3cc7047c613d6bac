package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/familyhub/dashboard/internal/api/middleware"
	"github.com/familyhub/dashboard/internal/core/domain"
)

// ctxSession extracts the session injected by the Auth middleware. Its
// absence means the route was mounted without Auth, so reject with 401.
func ctxSession(c echo.Context) (domain.Session, error) {
	session, ok := c.Get(middleware.ContextSession).(domain.Session)
	if !ok || session.ID == "" {
		return domain.Session{}, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return session, nil
}

// bind decodes the request body into req and runs the struct validator.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.Validate(req)
}
