package ports

import (
	"context"

	"github.com/familyhub/dashboard/internal/core/domain"
)

// AssignMealInput carries a new-meal save.
type AssignMealInput struct {
	Day      string `json:"day"      validate:"notblank"`
	Slot     string `json:"slot"     validate:"notblank"`
	Dish     string `json:"dish"     validate:"notblank"`
	Cuisine  string `json:"cuisine"`
	Time     string `json:"time"`
	Servings int    `json:"servings" validate:"gte=0"`
	Notes    string `json:"notes"`
}

// CommitSuggestionInput commits a generated suggestion to the plan.
type CommitSuggestionInput struct {
	Day        string            `json:"day"  validate:"notblank"`
	Slot       string            `json:"slot" validate:"notblank"`
	Suggestion domain.Suggestion `json:"suggestion"`
}

// MealPlanService owns the weekly meal plan.
type MealPlanService interface {
	Week() []domain.DayPlan
	Get(day domain.Day, slot domain.MealSlot) (domain.MealEntry, bool)
	Assign(ctx context.Context, input AssignMealInput) (domain.MealEntry, error)
	CommitSuggestion(ctx context.Context, input CommitSuggestionInput) (domain.MealEntry, error)
	Remove(day domain.Day, slot domain.MealSlot)
	Count() int
	CountForDay(day domain.Day) int
}

// AddItemInput carries a shopping list addition.
type AddItemInput struct {
	Name     string `json:"name"     validate:"notblank"`
	Category string `json:"category"`
}

// ShoppingCounts holds the list's partition sizes.
type ShoppingCounts struct {
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// ShoppingService owns the shopping list.
type ShoppingService interface {
	Add(ctx context.Context, input AddItemInput, actor string) (domain.ShoppingItem, error)
	Toggle(id string) (domain.ShoppingItem, error)
	Delete(id string)
	GenerateFromMeals() []domain.ShoppingItem
	Items() []domain.ShoppingItem
	Pending() []domain.ShoppingItem
	Completed() []domain.ShoppingItem
	Counts() ShoppingCounts
}

// AddActivityInput carries a new calendar entry.
type AddActivityInput struct {
	Day        string `json:"day"        validate:"notblank"`
	Title      string `json:"title"      validate:"notblank"`
	TimeRange  string `json:"time_range"`
	Location   string `json:"location"`
	Category   string `json:"category"   validate:"omitempty,oneof=music sports creative academic social family"`
	AssignedTo string `json:"assigned_to"`
	Driver     string `json:"driver"`
}

// ActivityPatch is a partial update; nil fields are left untouched.
type ActivityPatch struct {
	Title      *string `json:"title,omitempty"    validate:"omitempty,notblank"`
	TimeRange  *string `json:"time_range,omitempty"`
	Location   *string `json:"location,omitempty"`
	Category   *string `json:"category,omitempty" validate:"omitempty,oneof=music sports creative academic social family"`
	AssignedTo *string `json:"assigned_to,omitempty"`
	Driver     *string `json:"driver,omitempty"`
}

// ActivityService owns the weekly activity calendar.
type ActivityService interface {
	Week() []domain.DayActivities
	Add(ctx context.Context, input AddActivityInput) (domain.ActivityEntry, error)
	Update(ctx context.Context, id string, patch ActivityPatch) (domain.ActivityEntry, error)
	Remove(id string)
	Count() int
	CountForDay(day domain.Day) int
	Summary() domain.ActivitySummary
}

// AddRouteInput carries a new transport route.
type AddRouteInput struct {
	Title         string  `json:"title"          validate:"notblank"`
	Passenger     string  `json:"passenger"      validate:"notblank"`
	Time          string  `json:"time"           validate:"notblank"`
	Destination   string  `json:"destination"    validate:"notblank"`
	DistanceMiles float64 `json:"distance_miles" validate:"gte=0"`
}

// TransportService owns the transport board.
type TransportService interface {
	Routes() []domain.Route
	AddRoute(ctx context.Context, input AddRouteInput) (domain.Route, error)
	Advance(ctx context.Context, id string, status domain.RouteStatus) (domain.Route, error)
	Vehicles() []domain.Vehicle
	Maintenance() []domain.MaintenanceReminder
	Summary() domain.TransportSummary
}

// SuggestionService produces candidate meals.
type SuggestionService interface {
	Generate(n int) []domain.Suggestion
}
