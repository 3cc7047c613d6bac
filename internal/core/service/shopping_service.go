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

// ShoppingService owns the shopping list. Items keep their insertion order;
// the pending and completed partitions are filtered views of that order.
type ShoppingService struct {
	items []domain.ShoppingItem
	log   zerolog.Logger
}

// NewShoppingService returns an empty list.
func NewShoppingService(log zerolog.Logger) *ShoppingService {
	return &ShoppingService{log: log}
}

// Seed appends items, assigning ids to those without one.
func (s *ShoppingService) Seed(items []domain.ShoppingItem) {
	for _, item := range items {
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		s.items = append(s.items, item)
	}
}

// Add appends a pending item. A blank name is rejected and the list is left
// unchanged.
func (s *ShoppingService) Add(_ context.Context, input ports.AddItemInput, actor string) (domain.ShoppingItem, error) {
	if err := validation.Struct(input); err != nil {
		return domain.ShoppingItem{}, err
	}
	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = domain.DefaultCategory
	}
	item := domain.ShoppingItem{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(input.Name),
		Category: category,
		AddedBy:  actor,
	}
	s.items = append(s.items, item)
	s.log.Info().Str("item_id", item.ID).Str("name", item.Name).Str("added_by", actor).Msg("shopping item added")
	return item, nil
}

// Toggle flips the completed flag of id.
func (s *ShoppingService) Toggle(id string) (domain.ShoppingItem, error) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Completed = !s.items[i].Completed
			return s.items[i], nil
		}
	}
	return domain.ShoppingItem{}, domain.ErrNotFound
}

// Delete removes id. Unknown ids are ignored.
func (s *ShoppingService) Delete(id string) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// GenerateFromMeals appends the meal staples as pending suggested items and
// returns what was added.
func (s *ShoppingService) GenerateFromMeals() []domain.ShoppingItem {
	added := make([]domain.ShoppingItem, 0, len(domain.MealStaples))
	for _, staple := range domain.MealStaples {
		item := domain.ShoppingItem{
			ID:       uuid.NewString(),
			Name:     staple.Name,
			Category: staple.Category,
			AddedBy:  domain.SuggestionActor,
		}
		s.items = append(s.items, item)
		added = append(added, item)
	}
	s.log.Info().Int("added", len(added)).Msg("shopping list generated from meals")
	return added
}

// Items returns every item in insertion order.
func (s *ShoppingService) Items() []domain.ShoppingItem {
	return s.filter(func(domain.ShoppingItem) bool { return true })
}

// Pending returns the items not yet bought.
func (s *ShoppingService) Pending() []domain.ShoppingItem {
	return s.filter(func(i domain.ShoppingItem) bool { return !i.Completed })
}

// Completed returns the items already bought.
func (s *ShoppingService) Completed() []domain.ShoppingItem {
	return s.filter(func(i domain.ShoppingItem) bool { return i.Completed })
}

// Counts returns the sizes of the pending and completed partitions.
func (s *ShoppingService) Counts() ports.ShoppingCounts {
	var c ports.ShoppingCounts
	for _, item := range s.items {
		if item.Completed {
			c.Completed++
		} else {
			c.Pending++
		}
	}
	c.Total = len(s.items)
	return c
}

func (s *ShoppingService) filter(keep func(domain.ShoppingItem) bool) []domain.ShoppingItem {
	out := make([]domain.ShoppingItem, 0, len(s.items))
	for _, item := range s.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
