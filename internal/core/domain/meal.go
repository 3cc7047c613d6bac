package domain

import (
	"strings"
	"time"
)

// Day is a day of the planning week.
type Day string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
	Saturday  Day = "Saturday"
	Sunday    Day = "Sunday"
)

var weekDays = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// WeekDays returns the seven days in planning order.
func WeekDays() []Day {
	out := make([]Day, len(weekDays))
	copy(out, weekDays)
	return out
}

// ParseDay accepts a day name in any letter case.
func ParseDay(s string) (Day, bool) {
	s = strings.TrimSpace(s)
	for _, d := range weekDays {
		if strings.EqualFold(string(d), s) {
			return d, true
		}
	}
	return "", false
}

// DayOf returns the planning day t falls on.
func DayOf(t time.Time) Day {
	// time.Weekday starts the week on Sunday.
	return weekDays[(int(t.Weekday())+6)%7]
}

// MealSlot is a meal of the day.
type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
	SlotSnack     MealSlot = "snack"
)

var mealSlots = []MealSlot{SlotBreakfast, SlotLunch, SlotDinner, SlotSnack}

// MealSlots returns the slots in serving order.
func MealSlots() []MealSlot {
	out := make([]MealSlot, len(mealSlots))
	copy(out, mealSlots)
	return out
}

// ParseMealSlot accepts a slot name in any letter case.
func ParseMealSlot(s string) (MealSlot, bool) {
	s = strings.TrimSpace(s)
	for _, m := range mealSlots {
		if strings.EqualFold(string(m), s) {
			return m, true
		}
	}
	return "", false
}

// MealEntry is the dish planned for one (day, slot).
type MealEntry struct {
	Dish     string `json:"dish"`
	Cuisine  string `json:"cuisine"`
	Time     string `json:"time"`
	Servings int    `json:"servings"`
	Notes    string `json:"notes,omitempty"`
}

// PlannedMeal is a MealEntry together with its key.
type PlannedMeal struct {
	Slot  MealSlot  `json:"slot"`
	Entry MealEntry `json:"entry"`
}

// DayPlan is one day of the weekly plan, slots in serving order.
type DayPlan struct {
	Day   Day           `json:"day"`
	Meals []PlannedMeal `json:"meals"`
}

// Cuisines lists the family's preferred cuisines.
var Cuisines = []string{"Italian", "Mexican", "Asian", "Mediterranean", "American", "Indian"}

// Suggestion is a candidate meal that is not part of the plan until it is
// committed to a (day, slot).
type Suggestion struct {
	Dish     string   `json:"dish"     validate:"notblank"`
	Cuisine  string   `json:"cuisine"`
	Time     string   `json:"time"`
	Servings int      `json:"servings" validate:"gte=0"`
	Slot     MealSlot `json:"slot"`
}

// Entry converts the suggestion into a plan entry.
func (s Suggestion) Entry() MealEntry {
	return MealEntry{Dish: s.Dish, Cuisine: s.Cuisine, Time: s.Time, Servings: s.Servings}
}
