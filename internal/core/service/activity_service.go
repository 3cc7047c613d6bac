package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/familyhub/dashboard/internal/core/domain"
	"github.com/familyhub/dashboard/internal/core/ports"
	"github.com/familyhub/dashboard/internal/core/validation"
)

// ActivityService owns the weekly activity calendar. Entries are grouped by
// day and keep their insertion order within a day.
type ActivityService struct {
	days map[domain.Day][]domain.ActivityEntry
	log  zerolog.Logger
}

// NewActivityService returns an empty calendar.
func NewActivityService(log zerolog.Logger) *ActivityService {
	return &ActivityService{days: make(map[domain.Day][]domain.ActivityEntry), log: log}
}

// Seed appends entries, assigning ids to those without one.
func (s *ActivityService) Seed(entries []domain.SeededActivity) {
	for _, e := range entries {
		if e.Activity.ID == "" {
			e.Activity.ID = uuid.NewString()
		}
		s.days[e.Day] = append(s.days[e.Day], e.Activity)
	}
}

// Week returns all seven days in order, each with a copy of its entries.
func (s *ActivityService) Week() []domain.DayActivities {
	week := make([]domain.DayActivities, 0, 7)
	for _, day := range domain.WeekDays() {
		entries := make([]domain.ActivityEntry, len(s.days[day]))
		copy(entries, s.days[day])
		week = append(week, domain.DayActivities{Day: day, Activities: entries})
	}
	return week
}

// Add schedules an activity on a day; an empty category defaults to family.
func (s *ActivityService) Add(_ context.Context, input ports.AddActivityInput) (domain.ActivityEntry, error) {
	if err := validation.Struct(input); err != nil {
		return domain.ActivityEntry{}, err
	}
	day, ok := domain.ParseDay(input.Day)
	if !ok {
		return domain.ActivityEntry{}, domain.NewValidationError(map[string]string{
			"day": "day must be a day of the week",
		})
	}
	category := domain.ActivityCategory(input.Category)
	if category == "" {
		category = domain.CategoryFamily
	}
	entry := domain.ActivityEntry{
		ID:         uuid.NewString(),
		Title:      strings.TrimSpace(input.Title),
		TimeRange:  input.TimeRange,
		Location:   input.Location,
		Category:   category,
		AssignedTo: input.AssignedTo,
		Driver:     input.Driver,
	}
	s.days[day] = append(s.days[day], entry)
	s.log.Info().Str("activity_id", entry.ID).Str("day", string(day)).Str("title", entry.Title).Msg("activity added")
	return entry, nil
}

// Update edits the entry in place; it keeps its day and position.
func (s *ActivityService) Update(_ context.Context, id string, patch ports.ActivityPatch) (domain.ActivityEntry, error) {
	if err := validation.Struct(patch); err != nil {
		return domain.ActivityEntry{}, err
	}
	day, idx, ok := s.find(id)
	if !ok {
		return domain.ActivityEntry{}, domain.ErrNotFound
	}
	entry := &s.days[day][idx]
	if patch.Title != nil {
		entry.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.TimeRange != nil {
		entry.TimeRange = *patch.TimeRange
	}
	if patch.Location != nil {
		entry.Location = *patch.Location
	}
	if patch.Category != nil {
		entry.Category = domain.ActivityCategory(*patch.Category)
	}
	if patch.AssignedTo != nil {
		entry.AssignedTo = *patch.AssignedTo
	}
	if patch.Driver != nil {
		entry.Driver = *patch.Driver
	}
	return *entry, nil
}

// Remove deletes id. Unknown ids are ignored.
func (s *ActivityService) Remove(id string) {
	day, idx, ok := s.find(id)
	if !ok {
		return
	}
	entries := s.days[day]
	s.days[day] = append(entries[:idx:idx], entries[idx+1:]...)
}

func (s *ActivityService) find(id string) (domain.Day, int, bool) {
	for day, entries := range s.days {
		for i, e := range entries {
			if e.ID == id {
				return day, i, true
			}
		}
	}
	return "", 0, false
}

// Count returns the number of activities across the week.
func (s *ActivityService) Count() int {
	n := 0
	for _, entries := range s.days {
		n += len(entries)
	}
	return n
}

// CountForDay returns the number of activities on day.
func (s *ActivityService) CountForDay(day domain.Day) int {
	return len(s.days[day])
}

// Summary counts entries per category. Every category is present, even at zero.
func (s *ActivityService) Summary() domain.ActivitySummary {
	summary := domain.ActivitySummary{ByCategory: make(map[domain.ActivityCategory]int)}
	for _, c := range domain.ActivityCategories() {
		summary.ByCategory[c] = 0
	}
	for _, entries := range s.days {
		for _, e := range entries {
			summary.ByCategory[e.Category]++
			summary.Total++
		}
	}
	return summary
}
