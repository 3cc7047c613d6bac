package service

import (
	"math/rand/v2"
	"testing"

	"github.com/familyhub/dashboard/internal/core/domain"
)

func TestSuggestionGenerator_DistinctDraws(t *testing.T) {
	gen := NewSuggestionGenerator(rand.NewPCG(1, 2), nil)
	pool := domain.SuggestionPool()

	for n := 1; n <= len(pool); n++ {
		got := gen.Generate(n)
		if len(got) != n {
			t.Fatalf("Generate(%d) returned %d", n, len(got))
		}
		seen := make(map[string]bool)
		for _, s := range got {
			if seen[s.Dish] {
				t.Fatalf("Generate(%d) repeated %q", n, s.Dish)
			}
			seen[s.Dish] = true
		}
	}
}

func TestSuggestionGenerator_Bounds(t *testing.T) {
	pool := []domain.Suggestion{{Dish: "a"}, {Dish: "b"}}
	gen := NewSuggestionGenerator(rand.NewPCG(7, 7), pool)

	if got := gen.Generate(0); len(got) != 0 {
		t.Errorf("Generate(0) = %v", got)
	}
	if got := gen.Generate(-3); len(got) != 0 {
		t.Errorf("Generate(-3) = %v", got)
	}
	if got := gen.Generate(5); len(got) != 2 {
		t.Errorf("Generate(5) over a pool of 2 = %d entries", len(got))
	}
}

func TestSuggestionGenerator_DeterministicWithSameSeed(t *testing.T) {
	a := NewSuggestionGenerator(rand.NewPCG(42, 99), nil).Generate(3)
	b := NewSuggestionGenerator(rand.NewPCG(42, 99), nil).Generate(3)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("draw %d differs: %q vs %q", i, a[i].Dish, b[i].Dish)
		}
	}
}

func TestSuggestionGenerator_DoesNotMutatePool(t *testing.T) {
	pool := domain.SuggestionPool()
	gen := NewSuggestionGenerator(rand.NewPCG(3, 4), pool)
	_ = gen.Generate(len(pool))

	want := domain.SuggestionPool()
	for i := range pool {
		if pool[i] != want[i] {
			t.Fatalf("pool reordered at %d", i)
		}
	}
}
