package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/familyhub/dashboard/internal/core/domain"
	"github.com/familyhub/dashboard/internal/core/ports"
)

// DashboardSources are the live collections the dashboards summarize.
type DashboardSources struct {
	Meals      ports.MealPlanService
	Shopping   ports.ShoppingService
	Activities ports.ActivityService
	Transport  ports.TransportService
}

type dashboardBuilder func(c *Composer, role domain.Role) *domain.Dashboard

// dashboards is the role → dashboard lookup table. Unknown roles use the
// parent dashboard.
var dashboards = map[domain.Role]dashboardBuilder{
	domain.RoleAdmin:  (*Composer).adminDashboard,
	domain.RoleParent: (*Composer).parentDashboard,
	domain.RoleCook:   (*Composer).cookDashboard,
	domain.RoleDriver: (*Composer).driverDashboard,
	domain.RoleChild:  (*Composer).childDashboard,
}

var dashboardComponents = map[domain.Role]string{
	domain.RoleAdmin:  "AdminDashboard",
	domain.RoleParent: "ParentDashboard",
	domain.RoleCook:   "CookDashboard",
	domain.RoleDriver: "DriverDashboard",
	domain.RoleChild:  "ChildDashboard",
}

var viewComponents = map[domain.ViewID]string{
	domain.ViewLogin:      "LoginScreen",
	domain.ViewMeals:      "MealPlanner",
	domain.ViewShopping:   "ShoppingList",
	domain.ViewCalendar:   "ActivityCalendar",
	domain.ViewTransport:  "TransportDashboard",
	domain.ViewActivities: "ActivityCalendar",
	domain.ViewSettings:   "Settings",
}

const cardLineLimit = 3

// Composer decides which screen is shown and which actions it enables.
// The active view is remembered per session, so a new login always starts
// on the dashboard.
type Composer struct {
	session  ports.SessionReader
	sources  DashboardSources
	settings ports.SettingsReader
	clock    func() time.Time

	active map[string]domain.ViewID
}

// NewComposer wires the composer to the live session, collections and settings.
// clock decides which day the dashboards treat as today.
func NewComposer(session ports.SessionReader, sources DashboardSources, settings ports.SettingsReader, clock func() time.Time) *Composer {
	if clock == nil {
		clock = time.Now
	}
	return &Composer{
		session:  session,
		sources:  sources,
		settings: settings,
		clock:    clock,
		active:   make(map[string]domain.ViewID),
	}
}

// VisibleNavigation returns the navigation entries role may open.
func (c *Composer) VisibleNavigation(role domain.Role) []domain.NavEntry {
	return domain.Navigation(role)
}

// Resolve returns view when role may open it and the default view otherwise.
func (c *Composer) Resolve(role domain.Role, view domain.ViewID) domain.ViewID {
	if domain.CanView(role, view) {
		return view
	}
	return domain.DefaultView
}

// SetActiveView records the requested view for the current session, after
// applying the forbidden-view fallback.
func (c *Composer) SetActiveView(id string) (domain.ViewID, error) {
	session, ok := c.session.Current()
	if !ok {
		return domain.ViewLogin, domain.ErrNotAuthenticated
	}
	view, _ := domain.ParseView(strings.TrimSpace(id))
	resolved := c.Resolve(session.Identity.Role, view)
	// one session at a time; drop views of earlier sessions
	c.active = map[string]domain.ViewID{session.ID: resolved}
	return resolved, nil
}

// ActiveView is re-resolved on every read so a role that lost access to the
// stored view lands on the dashboard.
func (c *Composer) ActiveView() domain.ViewID {
	session, ok := c.session.Current()
	if !ok {
		return domain.ViewLogin
	}
	view, ok := c.active[session.ID]
	if !ok {
		return domain.DefaultView
	}
	return c.Resolve(session.Identity.Role, view)
}

// Render builds the render target for the active view. Without a session only
// the login surface is produced.
func (c *Composer) Render() domain.RenderTarget {
	session, ok := c.session.Current()
	if !ok {
		return domain.RenderTarget{
			View:       domain.ViewLogin,
			Component:  viewComponents[domain.ViewLogin],
			Navigation: []domain.NavEntry{},
			Actions:    []domain.ActionID{},
		}
	}

	role := session.Identity.Role
	view := c.ActiveView()
	target := domain.RenderTarget{
		View:       view,
		Navigation: c.VisibleNavigation(role),
		Actions:    domain.ActionsFor(role, view),
	}

	switch view {
	case domain.ViewDashboard:
		target.Component = dashboardComponent(role)
		target.Dashboard = c.Dashboard(role)
	case domain.ViewSettings:
		target.Component = viewComponents[view]
		settings := c.SettingsView(role)
		target.Settings = &settings
	default:
		target.Component = viewComponents[view]
	}
	return target
}

func dashboardComponent(role domain.Role) string {
	if name, ok := dashboardComponents[role]; ok {
		return name
	}
	return dashboardComponents[domain.DefaultRole]
}

// Dashboard builds the landing screen for role from live counts.
func (c *Composer) Dashboard(role domain.Role) *domain.Dashboard {
	build, ok := dashboards[role]
	if !ok {
		build = dashboards[domain.DefaultRole]
	}
	return build(c, role)
}

// SettingsView lists the settings sections role may see, filled with the
// current values.
func (c *Composer) SettingsView(role domain.Role) domain.SettingsView {
	v := domain.SettingsView{
		AccessLabel:   accessLabel(role),
		Toggles:       domain.NotificationToggles(role),
		Notifications: c.settings.Notifications(),
		Capabilities:  domain.CapabilitiesFor(role),
	}
	if domain.HasCapability(role, domain.CapFamily) {
		family := c.settings.Family()
		v.Profile = &family
	}
	if domain.HasCapability(role, domain.CapAll) {
		v.Members = domain.FamilyRoster()
	}
	return v
}

func accessLabel(role domain.Role) string {
	if !role.Known() {
		role = domain.DefaultRole
	}
	s := string(role)
	return strings.ToUpper(s[:1]) + s[1:] + " Access"
}

func (c *Composer) adminDashboard(role domain.Role) *domain.Dashboard {
	return &domain.Dashboard{
		Title: "Administrator Dashboard",
		Stats: []domain.Stat{
			{Label: "Active Users", Value: len(domain.FamilyRoster())},
			{Label: "Meals Planned", Value: c.sources.Meals.Count()},
			{Label: "Shopping Items", Value: c.sources.Shopping.Counts().Total},
			{Label: "Activities", Value: c.sources.Activities.Count()},
		},
		Cards: []domain.Card{c.mealsCard(role), c.activitiesCard(role)},
	}
}

func (c *Composer) parentDashboard(role domain.Role) *domain.Dashboard {
	return &domain.Dashboard{
		Title:   fmt.Sprintf("%s Dashboard", c.settings.Family().FamilyName),
		Members: domain.FamilyRoster(),
		Stats: []domain.Stat{
			{Label: "Meals Planned", Value: c.sources.Meals.Count()},
			{Label: "Shopping Items", Value: c.sources.Shopping.Counts().Total},
			{Label: "Activities", Value: c.sources.Activities.Count()},
			{Label: "Trips Scheduled", Value: c.sources.Transport.Summary().Scheduled},
		},
		Cards: []domain.Card{c.mealsCard(role), c.activitiesCard(role)},
	}
}

func (c *Composer) cookDashboard(role domain.Role) *domain.Dashboard {
	counts := c.sources.Shopping.Counts()
	return &domain.Dashboard{
		Title: "Kitchen Dashboard",
		Stats: []domain.Stat{
			{Label: "Meals to Prepare", Value: c.sources.Meals.Count()},
			{Label: "Shopping Items", Value: counts.Pending},
			{Label: "Items Done", Value: counts.Completed},
		},
		Cards: []domain.Card{c.mealsCard(role), c.shoppingCard(role)},
	}
}

func (c *Composer) driverDashboard(role domain.Role) *domain.Dashboard {
	summary := c.sources.Transport.Summary()
	return &domain.Dashboard{
		Title: "Transport Dashboard",
		Stats: []domain.Stat{
			{Label: "Upcoming Trips", Value: summary.Scheduled},
			{Label: "Today's Routes", Value: summary.Routes},
			{Label: "Miles Today", Value: int(summary.TotalMiles + 0.5)},
		},
		Cards: []domain.Card{c.activitiesCard(role), c.routesCard(role)},
	}
}

func (c *Composer) childDashboard(role domain.Role) *domain.Dashboard {
	today := domain.DayOf(c.clock())
	return &domain.Dashboard{
		Title: "My Activities",
		Stats: []domain.Stat{
			{Label: "Today's Activities", Value: c.sources.Activities.CountForDay(today)},
			{Label: "Activities This Week", Value: c.sources.Activities.Count()},
			{Label: "Meals Today", Value: c.sources.Meals.CountForDay(today)},
		},
		Cards: []domain.Card{c.mealsCard(role), c.activitiesCard(role)},
	}
}

func (c *Composer) mealsCard(role domain.Role) domain.Card {
	today := domain.DayOf(c.clock())
	card := domain.Card{Kind: "meals", Title: "Today's Meals", Lines: []domain.CardLine{}}
	if domain.CanView(role, domain.ViewMeals) {
		card.Link = domain.ViewMeals
	}
	for _, slot := range domain.MealSlots() {
		if entry, ok := c.sources.Meals.Get(today, slot); ok {
			card.Lines = append(card.Lines, domain.CardLine{Title: string(slot), Subtitle: entry.Dish})
		}
	}
	return card
}

// activitiesCard lists the next entries starting from today, wrapping around
// the week.
func (c *Composer) activitiesCard(role domain.Role) domain.Card {
	card := domain.Card{Kind: "activities", Title: "Upcoming Activities", Lines: []domain.CardLine{}}
	if domain.CanView(role, domain.ViewCalendar) {
		card.Link = domain.ViewCalendar
	}
	week := c.sources.Activities.Week()
	start := 0
	today := domain.DayOf(c.clock())
	for i, d := range week {
		if d.Day == today {
			start = i
		}
	}
	for i := 0; i < len(week) && len(card.Lines) < cardLineLimit; i++ {
		day := week[(start+i)%len(week)]
		for _, a := range day.Activities {
			if len(card.Lines) == cardLineLimit {
				break
			}
			card.Lines = append(card.Lines, domain.CardLine{
				Title:    a.Title,
				Subtitle: fmt.Sprintf("%s at %s", day.Day, a.TimeRange),
				Badge:    string(a.Category),
			})
		}
	}
	return card
}

func (c *Composer) shoppingCard(role domain.Role) domain.Card {
	card := domain.Card{Kind: "shopping", Title: "Shopping List", Lines: []domain.CardLine{}}
	if domain.CanView(role, domain.ViewShopping) {
		card.Link = domain.ViewShopping
	}
	for _, item := range c.sources.Shopping.Pending() {
		if len(card.Lines) == cardLineLimit {
			break
		}
		card.Lines = append(card.Lines, domain.CardLine{Title: item.Name, Subtitle: item.Category, Badge: "Needed"})
	}
	return card
}

func (c *Composer) routesCard(role domain.Role) domain.Card {
	card := domain.Card{Kind: "routes", Title: "Today's Routes", Lines: []domain.CardLine{}}
	if domain.CanView(role, domain.ViewTransport) {
		card.Link = domain.ViewTransport
	}
	for _, r := range c.sources.Transport.Routes() {
		if r.Status == domain.RouteCompleted || r.Status == domain.RouteCancelled {
			continue
		}
		if len(card.Lines) == cardLineLimit {
			break
		}
		card.Lines = append(card.Lines, domain.CardLine{
			Title:    r.Title,
			Subtitle: fmt.Sprintf("%s - %s", r.Time, r.Passenger),
			Badge:    string(r.Status),
		})
	}
	return card
}
