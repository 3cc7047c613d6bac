package domain

// Stat is one number on a dashboard header card.
type Stat struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// CardLine is one row of a dashboard card.
type CardLine struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Badge    string `json:"badge,omitempty"`
}

// Card is a dashboard panel. Link is set when the role may open the view the
// card summarizes.
type Card struct {
	Kind  string     `json:"kind"`
	Title string     `json:"title"`
	Link  ViewID     `json:"link,omitempty"`
	Lines []CardLine `json:"lines"`
}

// Dashboard is the role-specific landing screen.
type Dashboard struct {
	Title   string         `json:"title"`
	Stats   []Stat         `json:"stats"`
	Members []FamilyMember `json:"members,omitempty"`
	Cards   []Card         `json:"cards"`
}

// SettingsView describes which settings sections a role sees.
type SettingsView struct {
	AccessLabel   string               `json:"access_label"`
	Profile       *FamilySettings      `json:"profile,omitempty"`
	Toggles       []NotificationToggle `json:"toggles"`
	Notifications NotificationSettings `json:"notifications"`
	Members       []FamilyMember       `json:"members,omitempty"`
	Capabilities  []Capability         `json:"capabilities"`
}

// RenderTarget is what the presentation layer draws for the current state.
type RenderTarget struct {
	View       ViewID        `json:"view"`
	Component  string        `json:"component"`
	Navigation []NavEntry    `json:"navigation"`
	Actions    []ActionID    `json:"actions"`
	Dashboard  *Dashboard    `json:"dashboard,omitempty"`
	Settings   *SettingsView `json:"settings,omitempty"`
}
