package domain

// ViewID identifies a screen of the dashboard.
type ViewID string

const (
	ViewLogin      ViewID = "login"
	ViewDashboard  ViewID = "dashboard"
	ViewMeals      ViewID = "meals"
	ViewShopping   ViewID = "shopping"
	ViewCalendar   ViewID = "calendar"
	ViewTransport  ViewID = "transport"
	ViewActivities ViewID = "activities"
	ViewSettings   ViewID = "settings"
)

// DefaultView is where the composer lands after login or a forbidden request.
const DefaultView = ViewDashboard

// NavEntry is one item of the navigation bar.
type NavEntry struct {
	ID    ViewID `json:"id"`
	Label string `json:"label"`
	Roles []Role `json:"-"`
}

// navigationTable lists every navigation entry in display order. The first
// entry is the base entry visible to every role.
var navigationTable = []NavEntry{
	{ID: ViewDashboard, Label: "Dashboard", Roles: []Role{RoleAdmin, RoleParent, RoleCook, RoleDriver, RoleChild}},
	{ID: ViewMeals, Label: "Meal Planning", Roles: []Role{RoleAdmin, RoleParent, RoleCook}},
	{ID: ViewShopping, Label: "Shopping", Roles: []Role{RoleAdmin, RoleParent, RoleCook}},
	{ID: ViewCalendar, Label: "Calendar", Roles: []Role{RoleAdmin, RoleParent, RoleDriver}},
	{ID: ViewTransport, Label: "Transport", Roles: []Role{RoleAdmin, RoleParent, RoleDriver}},
	{ID: ViewActivities, Label: "My Activities", Roles: []Role{RoleAdmin, RoleChild}},
	{ID: ViewSettings, Label: "Settings", Roles: []Role{RoleAdmin, RoleParent}},
}

func (n NavEntry) allows(role Role) bool {
	for _, r := range n.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Navigation returns the entries visible to role, in declared order.
func Navigation(role Role) []NavEntry {
	role = role.normalize()
	out := make([]NavEntry, 0, len(navigationTable))
	for _, entry := range navigationTable {
		if entry.allows(role) {
			out = append(out, entry)
		}
	}
	return out
}

// ParseView maps a raw id onto a navigable view.
func ParseView(s string) (ViewID, bool) {
	for _, entry := range navigationTable {
		if string(entry.ID) == s {
			return entry.ID, true
		}
	}
	return "", false
}

// CanView reports whether role may open view.
func CanView(role Role, view ViewID) bool {
	role = role.normalize()
	for _, entry := range navigationTable {
		if entry.ID == view {
			return entry.allows(role)
		}
	}
	return false
}

// ActionID names a mutating operation a view can expose.
type ActionID string

const (
	ActionMealsAssign      ActionID = "meals.assign"
	ActionMealsRemove      ActionID = "meals.remove"
	ActionMealsSuggest     ActionID = "meals.suggest"
	ActionShoppingAdd      ActionID = "shopping.add"
	ActionShoppingToggle   ActionID = "shopping.toggle"
	ActionShoppingDelete   ActionID = "shopping.delete"
	ActionShoppingGenerate ActionID = "shopping.generate"
	ActionActivitiesAdd    ActionID = "activities.add"
	ActionActivitiesUpdate ActionID = "activities.update"
	ActionActivitiesRemove ActionID = "activities.remove"
	ActionRouteAdd         ActionID = "transport.route.add"
	ActionRouteAdvance     ActionID = "transport.route.advance"
	ActionSettingsEdit     ActionID = "settings.edit"
	ActionSettingsSave     ActionID = "settings.save"
)

// Action binds a mutating operation to the views that expose it and the
// capability it needs.
type Action struct {
	ID         ActionID   `json:"id"`
	Views      []ViewID   `json:"-"`
	Capability Capability `json:"-"`
}

var actionTable = []Action{
	{ID: ActionMealsAssign, Views: []ViewID{ViewMeals}, Capability: CapMeals},
	{ID: ActionMealsRemove, Views: []ViewID{ViewMeals}, Capability: CapMeals},
	{ID: ActionMealsSuggest, Views: []ViewID{ViewMeals}, Capability: CapMeals},
	{ID: ActionShoppingAdd, Views: []ViewID{ViewShopping}, Capability: CapShopping},
	{ID: ActionShoppingToggle, Views: []ViewID{ViewShopping}, Capability: CapShopping},
	{ID: ActionShoppingDelete, Views: []ViewID{ViewShopping}, Capability: CapShopping},
	{ID: ActionShoppingGenerate, Views: []ViewID{ViewShopping}, Capability: CapShopping},
	{ID: ActionActivitiesAdd, Views: []ViewID{ViewCalendar, ViewActivities}, Capability: CapActivities},
	{ID: ActionActivitiesUpdate, Views: []ViewID{ViewCalendar, ViewActivities}, Capability: CapActivities},
	{ID: ActionActivitiesRemove, Views: []ViewID{ViewCalendar, ViewActivities}, Capability: CapActivities},
	{ID: ActionRouteAdd, Views: []ViewID{ViewTransport}, Capability: CapTransport},
	{ID: ActionRouteAdvance, Views: []ViewID{ViewTransport}, Capability: CapTransport},
	{ID: ActionSettingsEdit, Views: []ViewID{ViewSettings}, Capability: CapFamily},
	{ID: ActionSettingsSave, Views: []ViewID{ViewSettings}, Capability: CapFamily},
}

func lookupAction(id ActionID) (Action, bool) {
	for _, a := range actionTable {
		if a.ID == id {
			return a, true
		}
	}
	return Action{}, false
}

// ActionAllowed reports whether role may perform action. Every action mutates
// state, so view-only roles are always denied.
func ActionAllowed(role Role, id ActionID) bool {
	action, ok := lookupAction(id)
	if !ok {
		return false
	}
	if ViewOnly(role) {
		return false
	}
	return HasCapability(role, action.Capability)
}

// ActionsFor returns the actions enabled for role on view, in declared order.
func ActionsFor(role Role, view ViewID) []ActionID {
	if !CanView(role, view) {
		return []ActionID{}
	}
	out := make([]ActionID, 0)
	for _, a := range actionTable {
		if !a.on(view) {
			continue
		}
		if ActionAllowed(role, a.ID) {
			out = append(out, a.ID)
		}
	}
	return out
}

func (a Action) on(view ViewID) bool {
	for _, v := range a.Views {
		if v == view {
			return true
		}
	}
	return false
}
