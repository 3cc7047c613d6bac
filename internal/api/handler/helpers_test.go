package handler

import (
	"io"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/familyhub/dashboard/internal/api/middleware"
	"github.com/familyhub/dashboard/internal/core/domain"
)

// newTestContext builds an echo context carrying a JSON body. When role is
// non-empty a session for that role is injected the way Auth does it.
func newTestContext(method, target, body string, role domain.Role) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if role != "" {
		session := domain.Session{
			ID: "sess-1",
			Identity: domain.Identity{
				ID:   "user-1",
				Name: domain.DisplayNameFor(role),
				Role: role,
			},
			StartedAt: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		}
		c.Set(middleware.ContextSession, session)
		c.Set(middleware.ContextRole, role)
	}
	return c, rec
}
