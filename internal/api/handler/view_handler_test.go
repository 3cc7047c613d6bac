package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/familyhub/dashboard/internal/api/metrics"
	"github.com/familyhub/dashboard/internal/core/domain"
)

type stubComposer struct {
	role   domain.Role
	active domain.ViewID
}

func (s *stubComposer) VisibleNavigation(role domain.Role) []domain.NavEntry {
	return domain.Navigation(role)
}

func (s *stubComposer) Resolve(role domain.Role, view domain.ViewID) domain.ViewID {
	if domain.CanView(role, view) {
		return view
	}
	return domain.DefaultView
}

func (s *stubComposer) SetActiveView(id string) (domain.ViewID, error) {
	view, _ := domain.ParseView(id)
	s.active = s.Resolve(s.role, view)
	return s.active, nil
}

func (s *stubComposer) ActiveView() domain.ViewID { return s.active }

func (s *stubComposer) Render() domain.RenderTarget {
	return domain.RenderTarget{
		View:       s.active,
		Navigation: domain.Navigation(s.role),
		Actions:    domain.ActionsFor(s.role, s.active),
	}
}

func (s *stubComposer) SettingsView(role domain.Role) domain.SettingsView {
	return domain.SettingsView{AccessLabel: string(role), Toggles: domain.NotificationToggles(role)}
}

func TestViewHandler_Navigation(t *testing.T) {
	h := NewViewHandler(&stubComposer{role: domain.RoleChild})

	c, rec := newTestContext(http.MethodGet, "/v1/navigation", "", domain.RoleChild)
	if err := h.Navigation(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		Items []domain.NavEntry `json:"items"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if len(resp.Items) != 2 || resp.Items[0].ID != domain.ViewDashboard || resp.Items[1].ID != domain.ViewActivities {
		t.Fatalf("unexpected child navigation: %+v", resp.Items)
	}
}

func TestViewHandler_Set_AllowedView(t *testing.T) {
	composer := &stubComposer{role: domain.RoleCook}
	h := NewViewHandler(composer)

	c, rec := newTestContext(http.MethodPut, "/v1/view", `{"view":"meals"}`, domain.RoleCook)
	if err := h.Set(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var target domain.RenderTarget
	_ = json.Unmarshal(rec.Body.Bytes(), &target)
	if target.View != domain.ViewMeals {
		t.Fatalf("expected meals, got %s", target.View)
	}
	if len(target.Actions) == 0 {
		t.Fatal("cook should see meal actions")
	}
}

func TestViewHandler_Set_ForbiddenFallsBackToDashboard(t *testing.T) {
	composer := &stubComposer{role: domain.RoleCook}
	h := NewViewHandler(composer)

	c, rec := newTestContext(http.MethodPut, "/v1/view", `{"view":"transport"}`, domain.RoleCook)
	if err := h.Set(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var target domain.RenderTarget
	_ = json.Unmarshal(rec.Body.Bytes(), &target)
	if target.View != domain.ViewDashboard {
		t.Fatalf("expected dashboard fallback, got %s", target.View)
	}
}

func TestViewHandler_Set_BlankViewRejected(t *testing.T) {
	h := NewViewHandler(&stubComposer{role: domain.RoleAdmin})

	c, _ := newTestContext(http.MethodPut, "/v1/view", `{"view":"  "}`, domain.RoleAdmin)
	if err := h.Set(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestViewHandler_Set_PaddedViewIsNotAFallback(t *testing.T) {
	composer := &stubComposer{role: domain.RoleCook}
	h := NewViewHandler(composer)
	before := testutil.ToFloat64(metrics.ViewFallbacksTotal.WithLabelValues("meals"))

	c, rec := newTestContext(http.MethodPut, "/v1/view", `{"view":" meals "}`, domain.RoleCook)
	if err := h.Set(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var target domain.RenderTarget
	_ = json.Unmarshal(rec.Body.Bytes(), &target)
	if target.View != domain.ViewMeals {
		t.Fatalf("expected meals, got %s", target.View)
	}
	if after := testutil.ToFloat64(metrics.ViewFallbacksTotal.WithLabelValues("meals")); after != before {
		t.Fatalf("fallback counted for a view that resolved as requested: %v -> %v", before, after)
	}
}

func TestViewHandler_Set_ForbiddenCountsFallback(t *testing.T) {
	h := NewViewHandler(&stubComposer{role: domain.RoleChild})
	before := testutil.ToFloat64(metrics.ViewFallbacksTotal.WithLabelValues("transport"))

	c, _ := newTestContext(http.MethodPut, "/v1/view", `{"view":"transport"}`, domain.RoleChild)
	if err := h.Set(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if after := testutil.ToFloat64(metrics.ViewFallbacksTotal.WithLabelValues("transport")); after != before+1 {
		t.Fatalf("expected one fallback, got %v -> %v", before, after)
	}
}
