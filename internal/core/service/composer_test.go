package service

import (
	"testing"
	"time"

	"github.com/familyhub/dashboard/internal/core/domain"
)

type stubSession struct {
	session *domain.Session
}

func (s *stubSession) Current() (domain.Session, bool) {
	if s.session == nil {
		return domain.Session{}, false
	}
	return *s.session, true
}

func (s *stubSession) login(id string, role domain.Role) {
	s.session = &domain.Session{ID: id, Identity: domain.Identity{Role: role, Name: domain.DisplayNameFor(role)}}
}

// monday is a fixed Monday so "today" cards are deterministic.
var monday = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

type composerFixture struct {
	session    *stubSession
	meals      *MealPlanService
	shopping   *ShoppingService
	activities *ActivityService
	transport  *TransportService
	settings   *SettingsService
	composer   *Composer
}

func newComposerFixture() *composerFixture {
	f := &composerFixture{
		session:    &stubSession{},
		meals:      NewMealPlanService(discardLogger),
		shopping:   NewShoppingService(discardLogger),
		activities: NewActivityService(discardLogger),
		transport:  NewTransportService(discardLogger),
		settings:   NewSettingsService(newStubStore(), "", discardLogger),
	}
	f.meals.Seed(domain.SeedMeals())
	f.shopping.Seed(domain.SeedShoppingItems())
	f.activities.Seed(domain.SeedActivities())
	f.transport.Seed(domain.SeedRoutes(), domain.SeedVehicles(), domain.SeedMaintenance())
	f.composer = NewComposer(f.session, DashboardSources{
		Meals:      f.meals,
		Shopping:   f.shopping,
		Activities: f.activities,
		Transport:  f.transport,
	}, f.settings, func() time.Time { return monday })
	return f
}

func navIDs(entries []domain.NavEntry) []domain.ViewID {
	out := make([]domain.ViewID, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestComposer_Unauthenticated_RendersLoginOnly(t *testing.T) {
	f := newComposerFixture()

	target := f.composer.Render()
	if target.View != domain.ViewLogin {
		t.Errorf("view = %q, want login", target.View)
	}
	if len(target.Navigation) != 0 || len(target.Actions) != 0 || target.Dashboard != nil || target.Settings != nil {
		t.Errorf("login surface must not expose anything else: %+v", target)
	}
	if _, err := f.composer.SetActiveView("meals"); err != domain.ErrNotAuthenticated {
		t.Errorf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestComposer_Child_NavigationAndFallback(t *testing.T) {
	f := newComposerFixture()
	f.session.login("s1", domain.RoleChild)

	ids := navIDs(f.composer.VisibleNavigation(domain.RoleChild))
	if len(ids) != 2 || ids[0] != domain.ViewDashboard || ids[1] != domain.ViewActivities {
		t.Errorf("child navigation = %v", ids)
	}

	got, err := f.composer.SetActiveView("settings")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != domain.ViewDashboard || f.composer.ActiveView() != domain.ViewDashboard {
		t.Errorf("forbidden view must fall back to dashboard, got %q", got)
	}
}

func TestComposer_UnknownViewFallsBack(t *testing.T) {
	f := newComposerFixture()
	f.session.login("s1", domain.RoleAdmin)

	if got, _ := f.composer.SetActiveView("reports"); got != domain.ViewDashboard {
		t.Errorf("unknown view resolved to %q", got)
	}
	if got, _ := f.composer.SetActiveView("login"); got != domain.ViewDashboard {
		t.Errorf("login is not navigable once authenticated, got %q", got)
	}
}

func TestComposer_RoleChangeRevokesActiveView(t *testing.T) {
	f := newComposerFixture()
	f.session.login("s1", domain.RoleParent)
	if got, _ := f.composer.SetActiveView("settings"); got != domain.ViewSettings {
		t.Fatalf("parent should open settings, got %q", got)
	}

	// same session, role downgraded underneath the composer
	f.session.session.Identity.Role = domain.RoleCook
	if got := f.composer.ActiveView(); got != domain.ViewDashboard {
		t.Errorf("expected dashboard after losing access, got %q", got)
	}
	if got := f.composer.Render().View; got != domain.ViewDashboard {
		t.Errorf("render must not show a forbidden view, got %q", got)
	}
}

func TestComposer_NewSessionStartsOnDashboard(t *testing.T) {
	f := newComposerFixture()
	f.session.login("s1", domain.RoleParent)
	_, _ = f.composer.SetActiveView("meals")

	f.session.login("s2", domain.RoleParent)
	if got := f.composer.ActiveView(); got != domain.ViewDashboard {
		t.Errorf("new session must start on dashboard, got %q", got)
	}
}

func TestComposer_Render_Actions(t *testing.T) {
	f := newComposerFixture()

	f.session.login("s1", domain.RoleCook)
	_, _ = f.composer.SetActiveView("shopping")
	target := f.composer.Render()
	if target.Component != "ShoppingList" {
		t.Errorf("component = %q", target.Component)
	}
	if len(target.Actions) != 4 {
		t.Errorf("cook shopping actions = %v", target.Actions)
	}

	f.session.login("s2", domain.RoleChild)
	_, _ = f.composer.SetActiveView("activities")
	if got := f.composer.Render().Actions; len(got) != 0 {
		t.Errorf("view-only child must get no mutating actions, got %v", got)
	}
}

func TestComposer_Dashboards_PerRole(t *testing.T) {
	f := newComposerFixture()

	titles := map[domain.Role]string{
		domain.RoleAdmin:  "Administrator Dashboard",
		domain.RoleParent: "Johnson Family Dashboard",
		domain.RoleCook:   "Kitchen Dashboard",
		domain.RoleDriver: "Transport Dashboard",
		domain.RoleChild:  "My Activities",
	}
	for role, want := range titles {
		if got := f.composer.Dashboard(role).Title; got != want {
			t.Errorf("%s dashboard title = %q, want %q", role, got, want)
		}
	}
	if got := f.composer.Dashboard(domain.Role("butler")).Title; got != "Johnson Family Dashboard" {
		t.Errorf("unknown role must get the parent dashboard, got %q", got)
	}
}

func TestComposer_Dashboard_LiveCounts(t *testing.T) {
	f := newComposerFixture()

	stat := func(d *domain.Dashboard, label string) int {
		for _, s := range d.Stats {
			if s.Label == label {
				return s.Value
			}
		}
		t.Fatalf("stat %q missing", label)
		return 0
	}

	before := stat(f.composer.Dashboard(domain.RoleAdmin), "Meals Planned")
	if before != f.meals.Count() {
		t.Errorf("meals planned = %d, live = %d", before, f.meals.Count())
	}
	f.meals.Remove(domain.Monday, domain.SlotDinner)
	after := stat(f.composer.Dashboard(domain.RoleAdmin), "Meals Planned")
	if after != before-1 {
		t.Errorf("dashboard did not follow the live collection: %d -> %d", before, after)
	}

	acts := stat(f.composer.Dashboard(domain.RoleAdmin), "Activities")
	f.activities.Remove(f.activities.Week()[0].Activities[0].ID)
	if got := stat(f.composer.Dashboard(domain.RoleAdmin), "Activities"); got != acts-1 {
		t.Errorf("activities = %d, want %d", got, acts-1)
	}
}

func TestComposer_CardLinksFollowViewAccess(t *testing.T) {
	f := newComposerFixture()

	cards := func(role domain.Role) map[string]domain.Card {
		out := make(map[string]domain.Card)
		for _, c := range f.composer.Dashboard(role).Cards {
			out[c.Kind] = c
		}
		return out
	}

	child := cards(domain.RoleChild)
	if child["meals"].Link != "" || child["activities"].Link != "" {
		t.Errorf("child cards must not link: %+v", child)
	}
	if len(child["meals"].Lines) != 3 {
		t.Errorf("expected Monday's three meals, got %+v", child["meals"].Lines)
	}
	parent := cards(domain.RoleParent)
	if parent["meals"].Link != domain.ViewMeals || parent["activities"].Link != domain.ViewCalendar {
		t.Errorf("parent cards must link: %+v", parent)
	}
	driver := cards(domain.RoleDriver)
	if driver["activities"].Link != domain.ViewCalendar || driver["routes"].Link != domain.ViewTransport {
		t.Errorf("driver cards = %+v", driver)
	}
	if len(driver["routes"].Lines) != 2 {
		t.Errorf("completed routes must be hidden: %+v", driver["routes"].Lines)
	}
}

func TestComposer_SettingsView_Sections(t *testing.T) {
	f := newComposerFixture()

	admin := f.composer.SettingsView(domain.RoleAdmin)
	if admin.Profile == nil || len(admin.Members) == 0 || len(admin.Toggles) != 4 {
		t.Errorf("admin sees every section: %+v", admin)
	}
	if admin.AccessLabel != "Admin Access" {
		t.Errorf("access label = %q", admin.AccessLabel)
	}

	parent := f.composer.SettingsView(domain.RoleParent)
	if parent.Profile == nil || parent.Members != nil {
		t.Errorf("parent sees profile but not roles: %+v", parent)
	}

	driver := f.composer.SettingsView(domain.RoleDriver)
	if driver.Profile != nil {
		t.Error("driver must not see the family profile")
	}
	want := []domain.NotificationToggle{domain.ToggleActivityAlerts, domain.ToggleWeeklyDigest}
	if len(driver.Toggles) != len(want) || driver.Toggles[0] != want[0] || driver.Toggles[1] != want[1] {
		t.Errorf("driver toggles = %v", driver.Toggles)
	}
}

func TestComposer_Render_Settings(t *testing.T) {
	f := newComposerFixture()
	f.session.login("s1", domain.RoleParent)
	_, _ = f.composer.SetActiveView("settings")

	target := f.composer.Render()
	if target.Settings == nil || target.Dashboard != nil {
		t.Fatalf("expected settings payload only: %+v", target)
	}
	if target.Settings.Profile.FamilyName != "Johnson Family" {
		t.Errorf("profile = %+v", target.Settings.Profile)
	}
}
