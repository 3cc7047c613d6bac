package domain

// NotificationSettings holds the four independent notification toggles.
type NotificationSettings struct {
	MealReminders   bool `json:"mealReminders"`
	ActivityAlerts  bool `json:"activityAlerts"`
	ShoppingUpdates bool `json:"shoppingUpdates"`
	WeeklyDigest    bool `json:"weeklyDigest"`
}

// FamilySettings is the household profile. FamilyName and Timezone must be
// non-blank before it can be saved.
type FamilySettings struct {
	FamilyName string `json:"familyName" validate:"notblank"`
	Timezone   string `json:"timezone"   validate:"notblank"`
	Currency   string `json:"currency"`
}

// DefaultNotificationSettings is used on a fresh install or after a failed load.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		MealReminders:   true,
		ActivityAlerts:  true,
		ShoppingUpdates: false,
		WeeklyDigest:    true,
	}
}

// DefaultFamilySettings is used on a fresh install or after a failed load.
func DefaultFamilySettings() FamilySettings {
	return FamilySettings{
		FamilyName: "Johnson Family",
		Timezone:   "America/New_York",
		Currency:   "USD",
	}
}

// NotificationPatch is a partial update; nil fields are left untouched.
type NotificationPatch struct {
	MealReminders   *bool `json:"mealReminders,omitempty"`
	ActivityAlerts  *bool `json:"activityAlerts,omitempty"`
	ShoppingUpdates *bool `json:"shoppingUpdates,omitempty"`
	WeeklyDigest    *bool `json:"weeklyDigest,omitempty"`
}

// Apply returns n with the patch applied.
func (p NotificationPatch) Apply(n NotificationSettings) NotificationSettings {
	if p.MealReminders != nil {
		n.MealReminders = *p.MealReminders
	}
	if p.ActivityAlerts != nil {
		n.ActivityAlerts = *p.ActivityAlerts
	}
	if p.ShoppingUpdates != nil {
		n.ShoppingUpdates = *p.ShoppingUpdates
	}
	if p.WeeklyDigest != nil {
		n.WeeklyDigest = *p.WeeklyDigest
	}
	return n
}

// Restrict drops the toggles role is not allowed to see.
func (p NotificationPatch) Restrict(role Role) NotificationPatch {
	allowed := make(map[NotificationToggle]bool)
	for _, t := range NotificationToggles(role) {
		allowed[t] = true
	}
	if !allowed[ToggleMealReminders] {
		p.MealReminders = nil
	}
	if !allowed[ToggleActivityAlerts] {
		p.ActivityAlerts = nil
	}
	if !allowed[ToggleShoppingUpdates] {
		p.ShoppingUpdates = nil
	}
	if !allowed[ToggleWeeklyDigest] {
		p.WeeklyDigest = nil
	}
	return p
}

// FamilyPatch is a partial update; nil fields are left untouched.
type FamilyPatch struct {
	FamilyName *string `json:"familyName,omitempty"`
	Timezone   *string `json:"timezone,omitempty"`
	Currency   *string `json:"currency,omitempty"`
}

// Apply returns f with the patch applied.
func (p FamilyPatch) Apply(f FamilySettings) FamilySettings {
	if p.FamilyName != nil {
		f.FamilyName = *p.FamilyName
	}
	if p.Timezone != nil {
		f.Timezone = *p.Timezone
	}
	if p.Currency != nil {
		f.Currency = *p.Currency
	}
	return f
}

// NotificationToggle names one notification switch.
type NotificationToggle string

const (
	ToggleMealReminders   NotificationToggle = "mealReminders"
	ToggleActivityAlerts  NotificationToggle = "activityAlerts"
	ToggleShoppingUpdates NotificationToggle = "shoppingUpdates"
	ToggleWeeklyDigest    NotificationToggle = "weeklyDigest"
)

// notificationGates maps each toggle to the capability it needs. An empty
// capability means every role sees the toggle.
var notificationGates = []struct {
	toggle NotificationToggle
	gate   Capability
}{
	{ToggleMealReminders, CapMeals},
	{ToggleActivityAlerts, CapActivities},
	{ToggleShoppingUpdates, CapShopping},
	{ToggleWeeklyDigest, ""},
}

// NotificationToggles returns the toggles that are meaningful for role.
func NotificationToggles(role Role) []NotificationToggle {
	out := make([]NotificationToggle, 0, len(notificationGates))
	for _, g := range notificationGates {
		if g.gate == "" || HasCapability(role, g.gate) {
			out = append(out, g.toggle)
		}
	}
	return out
}
