package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/familyhub/dashboard/internal/core/domain"
	"github.com/familyhub/dashboard/internal/core/service"
	"github.com/familyhub/dashboard/internal/infrastructure/db/memory"
	"github.com/familyhub/dashboard/internal/infrastructure/http/handlers"
	"github.com/familyhub/dashboard/internal/infrastructure/queue"
)

const testPassword = "password123"

type household struct {
	e         *echo.Echo
	transport *service.TransportService
}

func newHousehold(t *testing.T) *household {
	t.Helper()
	log := zerolog.Nop()

	checker, err := service.NewSharedSecretChecker(testPassword)
	if err != nil {
		t.Fatalf("checker: %v", err)
	}
	store := memory.NewStore()
	sessions := service.NewSessionService(checker, "test-secret", time.Hour, log)
	settings := service.NewSettingsService(store, "", log)
	meals := service.NewMealPlanService(log)
	shopping := service.NewShoppingService(log)
	activities := service.NewActivityService(log)
	transport := service.NewTransportService(log)

	meals.Seed(domain.SeedMeals())
	shopping.Seed(domain.SeedShoppingItems())
	activities.Seed(domain.SeedActivities())
	transport.Seed(domain.SeedRoutes(), domain.SeedVehicles(), domain.SeedMaintenance())
	settings.Load(context.Background())

	composer := service.NewComposer(sessions, service.DashboardSources{
		Meals: meals, Shopping: shopping, Activities: activities, Transport: transport,
	}, settings, time.Now)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	loop := queue.NewLoop(0, log)
	loop.Start(ctx)

	e := NewRouter(Dependencies{
		Log:             log,
		Loop:            loop,
		Sessions:        sessions,
		Settings:        settings,
		Composer:        composer,
		Meals:           meals,
		Suggestions:     service.NewSuggestionGenerator(nil, domain.SuggestionPool()),
		Shopping:        shopping,
		Activities:      activities,
		Transport:       transport,
		Probes:          map[string]handlers.Pinger{"settings_store": store},
		SuggestionCount: 3,
		Registerer:      prometheus.NewRegistry(),
	})
	return &household{e: e, transport: transport}
}

func (h *household) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.e.ServeHTTP(rec, req)
	return rec
}

func (h *household) login(t *testing.T, role domain.Role) string {
	t.Helper()
	rec := h.do(t, http.MethodPost, "/auth/login", "",
		`{"email":"member@johnson.com","password":"`+testPassword+`","role":"`+string(role)+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login as %s: expected 200, got %d: %s", role, rec.Code, rec.Body.String())
	}
	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil || !resp.Success || resp.Token == "" {
		t.Fatalf("unexpected login response: %s", rec.Body.String())
	}
	return resp.Token
}

func TestRouter_HealthIsPublic(t *testing.T) {
	h := newHousehold(t)

	if rec := h.do(t, http.MethodGet, "/health", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("liveness: expected 200, got %d", rec.Code)
	}
	if rec := h.do(t, http.MethodGet, "/health/ready", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("readiness: expected 200, got %d", rec.Code)
	}
}

func TestRouter_LoginWrongPassword(t *testing.T) {
	h := newHousehold(t)

	rec := h.do(t, http.MethodPost, "/auth/login", "", `{"email":"a@b.c","password":"nope","role":"parent"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRouter_RequiresToken(t *testing.T) {
	h := newHousehold(t)

	if rec := h.do(t, http.MethodGet, "/v1/session", "", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRouter_NewLoginRevokesPreviousToken(t *testing.T) {
	h := newHousehold(t)

	first := h.login(t, domain.RoleParent)
	second := h.login(t, domain.RoleCook)

	if rec := h.do(t, http.MethodGet, "/v1/session", first, ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("old token: expected 401, got %d", rec.Code)
	}
	rec := h.do(t, http.MethodGet, "/v1/session", second, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("new token: expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"role":"cook"`) {
		t.Fatalf("expected cook identity, got %s", rec.Body.String())
	}
}

func TestRouter_ChildIsViewOnly(t *testing.T) {
	h := newHousehold(t)
	token := h.login(t, domain.RoleChild)

	if rec := h.do(t, http.MethodGet, "/v1/activities", token, ""); rec.Code != http.StatusOK {
		t.Fatalf("child activities: expected 200, got %d", rec.Code)
	}
	if rec := h.do(t, http.MethodPost, "/v1/activities", token, `{"day":"Monday","title":"Chess"}`); rec.Code != http.StatusForbidden {
		t.Fatalf("child add activity: expected 403, got %d", rec.Code)
	}
	if rec := h.do(t, http.MethodGet, "/v1/meals", token, ""); rec.Code != http.StatusForbidden {
		t.Fatalf("child meals: expected 403, got %d", rec.Code)
	}
}

func TestRouter_CookPlansMealsButNotTransport(t *testing.T) {
	h := newHousehold(t)
	token := h.login(t, domain.RoleCook)

	rec := h.do(t, http.MethodPut, "/v1/meals/monday/snack", token, `{"dish":"Fruit Cups","servings":3}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("assign: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = h.do(t, http.MethodGet, "/v1/meals/Monday/snack", token, "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Fruit Cups") {
		t.Fatalf("get: unexpected %d %s", rec.Code, rec.Body.String())
	}
	if rec := h.do(t, http.MethodGet, "/v1/transport", token, ""); rec.Code != http.StatusForbidden {
		t.Fatalf("cook transport: expected 403, got %d", rec.Code)
	}
}

func TestRouter_ForbiddenViewFallsBack(t *testing.T) {
	h := newHousehold(t)
	token := h.login(t, domain.RoleDriver)

	rec := h.do(t, http.MethodPut, "/v1/view", token, `{"view":"settings"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var target domain.RenderTarget
	_ = json.Unmarshal(rec.Body.Bytes(), &target)
	if target.View != domain.ViewDashboard || target.Dashboard == nil {
		t.Fatalf("expected driver dashboard, got %+v", target)
	}
}

func TestRouter_SaveRejectsBlankFamilyName(t *testing.T) {
	h := newHousehold(t)
	token := h.login(t, domain.RoleAdmin)

	if rec := h.do(t, http.MethodPatch, "/v1/settings/family", token, `{"familyName":"  "}`); rec.Code != http.StatusOK {
		t.Fatalf("patch: expected 200, got %d", rec.Code)
	}
	rec := h.do(t, http.MethodPost, "/v1/settings/save", token, "")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("save: expected 422, got %d", rec.Code)
	}
	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Fields["familyName"] == "" {
		t.Fatalf("expected familyName field error, got %s", rec.Body.String())
	}
}

func TestRouter_InvalidRouteTransition(t *testing.T) {
	h := newHousehold(t)
	token := h.login(t, domain.RoleDriver)

	var completed string
	for _, r := range h.transport.Routes() {
		if r.Status == domain.RouteCompleted {
			completed = r.ID
		}
	}
	if completed == "" {
		t.Fatal("seed should contain a completed route")
	}

	rec := h.do(t, http.MethodPost, "/v1/transport/routes/"+completed+"/status", token, `{"status":"en_route"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if rec := h.do(t, http.MethodPost, "/v1/transport/routes/missing/status", token, `{"status":"en_route"}`); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
