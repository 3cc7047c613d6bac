package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/familyhub/dashboard/internal/core/domain"
)

type stubVerifier struct {
	token   string
	session domain.Session
}

func (v stubVerifier) Verify(token string) (domain.Session, error) {
	if token != v.token {
		return domain.Session{}, domain.ErrNotAuthenticated
	}
	return v.session, nil
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	verifier := stubVerifier{
		token:   "good",
		session: domain.Session{ID: "s1", Identity: domain.Identity{Role: domain.RoleDriver}},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(verifier)(func(c echo.Context) error {
		called = true
		if c.Get(ContextRole) != domain.RoleDriver {
			t.Fatalf("role not set")
		}
		if s, ok := c.Get(ContextSession).(domain.Session); !ok || s.ID != "s1" {
			t.Fatalf("session not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic good"},
		{"unknown token", "Bearer stale"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			handler := Auth(stubVerifier{token: "good"})(func(c echo.Context) error {
				t.Fatalf("should not reach next handler")
				return nil
			})

			err := handler(c)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401 HTTPError, got %v", err)
			}
		})
	}
}
