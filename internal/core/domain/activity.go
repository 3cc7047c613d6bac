package domain

// ActivityCategory classifies a calendar entry.
type ActivityCategory string

const (
	CategoryMusic    ActivityCategory = "music"
	CategorySports   ActivityCategory = "sports"
	CategoryCreative ActivityCategory = "creative"
	CategoryAcademic ActivityCategory = "academic"
	CategorySocial   ActivityCategory = "social"
	CategoryFamily   ActivityCategory = "family"
)

var activityCategories = []ActivityCategory{
	CategoryMusic, CategorySports, CategoryCreative, CategoryAcademic, CategorySocial, CategoryFamily,
}

// ActivityCategories returns the categories in display order.
func ActivityCategories() []ActivityCategory {
	out := make([]ActivityCategory, len(activityCategories))
	copy(out, activityCategories)
	return out
}

// ActivityEntry is one scheduled family activity.
type ActivityEntry struct {
	ID         string           `json:"id"`
	Title      string           `json:"title"`
	TimeRange  string           `json:"time_range"`
	Location   string           `json:"location"`
	Category   ActivityCategory `json:"category"`
	AssignedTo string           `json:"assigned_to"`
	Driver     string           `json:"driver"`
}

// DayActivities groups the entries of one day in insertion order.
type DayActivities struct {
	Day        Day             `json:"day"`
	Activities []ActivityEntry `json:"activities"`
}

// ActivitySummary holds the calendar's headline counts.
type ActivitySummary struct {
	Total      int                      `json:"total"`
	ByCategory map[ActivityCategory]int `json:"by_category"`
}
