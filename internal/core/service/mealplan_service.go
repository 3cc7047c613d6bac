package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/familyhub/dashboard/internal/core/domain"
	"github.com/familyhub/dashboard/internal/core/ports"
	"github.com/familyhub/dashboard/internal/core/validation"
)

type mealKey struct {
	day  domain.Day
	slot domain.MealSlot
}

// MealPlanService owns the weekly meal plan: at most one entry per (day, slot).
type MealPlanService struct {
	plan map[mealKey]domain.MealEntry
	log  zerolog.Logger
}

// NewMealPlanService returns an empty weekly plan.
func NewMealPlanService(log zerolog.Logger) *MealPlanService {
	return &MealPlanService{plan: make(map[mealKey]domain.MealEntry), log: log}
}

// Seed loads entries without validation. Later entries win on the same key.
func (s *MealPlanService) Seed(meals []domain.SeededMeal) {
	for _, m := range meals {
		s.plan[mealKey{m.Day, m.Slot}] = m.Entry
	}
}

// Week returns every planned meal grouped by day, days and slots in fixed order.
// Days without meals are included with an empty list.
func (s *MealPlanService) Week() []domain.DayPlan {
	week := make([]domain.DayPlan, 0, 7)
	for _, day := range domain.WeekDays() {
		plan := domain.DayPlan{Day: day, Meals: []domain.PlannedMeal{}}
		for _, slot := range domain.MealSlots() {
			if entry, ok := s.plan[mealKey{day, slot}]; ok {
				plan.Meals = append(plan.Meals, domain.PlannedMeal{Slot: slot, Entry: entry})
			}
		}
		week = append(week, plan)
	}
	return week
}

// Get returns the entry planned for (day, slot), if any.
func (s *MealPlanService) Get(day domain.Day, slot domain.MealSlot) (domain.MealEntry, bool) {
	entry, ok := s.plan[mealKey{day, slot}]
	return entry, ok
}

// Assign stores the entry at (day, slot), replacing whatever was there.
func (s *MealPlanService) Assign(_ context.Context, input ports.AssignMealInput) (domain.MealEntry, error) {
	if err := validation.Struct(input); err != nil {
		return domain.MealEntry{}, err
	}
	key, err := parseMealKey(input.Day, input.Slot)
	if err != nil {
		return domain.MealEntry{}, err
	}
	entry := domain.MealEntry{
		Dish:     input.Dish,
		Cuisine:  input.Cuisine,
		Time:     input.Time,
		Servings: input.Servings,
		Notes:    input.Notes,
	}
	s.put(key, entry)
	return entry, nil
}

// CommitSuggestion writes a suggestion into the plan. Day and slot come from
// the caller; the suggestion's own slot is only a hint.
func (s *MealPlanService) CommitSuggestion(_ context.Context, input ports.CommitSuggestionInput) (domain.MealEntry, error) {
	if err := validation.Struct(input); err != nil {
		return domain.MealEntry{}, err
	}
	key, err := parseMealKey(input.Day, input.Slot)
	if err != nil {
		return domain.MealEntry{}, err
	}
	entry := input.Suggestion.Entry()
	s.put(key, entry)
	return entry, nil
}

func (s *MealPlanService) put(key mealKey, entry domain.MealEntry) {
	_, replaced := s.plan[key]
	s.plan[key] = entry
	s.log.Info().
		Str("day", string(key.day)).
		Str("slot", string(key.slot)).
		Str("dish", entry.Dish).
		Bool("replaced", replaced).
		Msg("meal assigned")
}

// Remove clears (day, slot). Removing an empty slot is a no-op.
func (s *MealPlanService) Remove(day domain.Day, slot domain.MealSlot) {
	delete(s.plan, mealKey{day, slot})
}

// Count returns the number of planned meals in the week.
func (s *MealPlanService) Count() int {
	return len(s.plan)
}

// CountForDay returns the number of planned meals on day.
func (s *MealPlanService) CountForDay(day domain.Day) int {
	n := 0
	for key := range s.plan {
		if key.day == day {
			n++
		}
	}
	return n
}

func parseMealKey(rawDay, rawSlot string) (mealKey, error) {
	fields := make(map[string]string)
	day, ok := domain.ParseDay(rawDay)
	if !ok {
		fields["day"] = "day must be a day of the week"
	}
	slot, ok := domain.ParseMealSlot(rawSlot)
	if !ok {
		fields["slot"] = "slot must be one of: breakfast lunch dinner snack"
	}
	if len(fields) > 0 {
		return mealKey{}, domain.NewValidationError(fields)
	}
	return mealKey{day, slot}, nil
}
