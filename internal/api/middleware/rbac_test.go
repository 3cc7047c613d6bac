package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/familyhub/dashboard/internal/core/domain"
)

func runGate(t *testing.T, mw echo.MiddlewareFunc, role any) (int, bool) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	if role != nil {
		c.Set(ContextRole, role)
	}

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec.Code, called
}

func TestRequireView(t *testing.T) {
	cases := []struct {
		name   string
		views  []domain.ViewID
		role   any
		status int
	}{
		{"cook opens meals", []domain.ViewID{domain.ViewMeals}, domain.RoleCook, http.StatusOK},
		{"child opens settings", []domain.ViewID{domain.ViewSettings}, domain.RoleChild, http.StatusForbidden},
		{"child opens activities or calendar", []domain.ViewID{domain.ViewCalendar, domain.ViewActivities}, domain.RoleChild, http.StatusOK},
		{"no role in context", []domain.ViewID{domain.ViewDashboard}, nil, http.StatusForbidden},
		{"role of wrong type", []domain.ViewID{domain.ViewDashboard}, "admin", http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, called := runGate(t, RequireView(tc.views...), tc.role)
			if code != tc.status {
				t.Errorf("expected %d, got %d", tc.status, code)
			}
			if called != (tc.status == http.StatusOK) {
				t.Errorf("next called = %v", called)
			}
		})
	}
}

func TestRequireAction(t *testing.T) {
	cases := []struct {
		name   string
		action domain.ActionID
		role   domain.Role
		status int
	}{
		{"admin saves settings", domain.ActionSettingsSave, domain.RoleAdmin, http.StatusOK},
		{"driver advances route", domain.ActionRouteAdvance, domain.RoleDriver, http.StatusOK},
		{"cook adds activity", domain.ActionActivitiesAdd, domain.RoleCook, http.StatusForbidden},
		{"view-only child adds activity", domain.ActionActivitiesAdd, domain.RoleChild, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, _ := runGate(t, RequireAction(tc.action), tc.role)
			if code != tc.status {
				t.Errorf("expected %d, got %d", tc.status, code)
			}
		})
	}
}
