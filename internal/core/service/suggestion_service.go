package service

import (
	"math/rand/v2"

	"github.com/familyhub/dashboard/internal/core/domain"
)

// SuggestionGenerator draws meal suggestions from a fixed pool. The random
// source is injected so callers can make the draw deterministic.
type SuggestionGenerator struct {
	rng  *rand.Rand
	pool []domain.Suggestion
}

// NewSuggestionGenerator uses src for every draw. A nil src is seeded from
// the runtime; a nil pool falls back to domain.SuggestionPool.
func NewSuggestionGenerator(src rand.Source, pool []domain.Suggestion) *SuggestionGenerator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	if pool == nil {
		pool = domain.SuggestionPool()
	}
	return &SuggestionGenerator{rng: rand.New(src), pool: pool}
}

// Generate returns up to n distinct suggestions, without replacement.
func (g *SuggestionGenerator) Generate(n int) []domain.Suggestion {
	if n <= 0 || len(g.pool) == 0 {
		return []domain.Suggestion{}
	}
	if n > len(g.pool) {
		n = len(g.pool)
	}
	idx := make([]int, len(g.pool))
	for i := range idx {
		idx[i] = i
	}
	// partial Fisher-Yates: only the first n positions are settled
	for i := 0; i < n; i++ {
		j := i + g.rng.IntN(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	out := make([]domain.Suggestion, n)
	for i := 0; i < n; i++ {
		out[i] = g.pool[idx[i]]
	}
	return out
}
