// Package generator builds shuffled question queues and answer options.
package generator

import (
	"math/rand"
	"time"

	"github.com/notedthegoat/toeicword-practice-app/internal/model"
)

// Generator produces randomized question orders and choices.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Shuffle returns a uniformly permuted copy of entries (Fisher-Yates).
func (g *Generator) Shuffle(entries []model.WordEntry) []model.WordEntry {
	out := make([]model.WordEntry, len(entries))
	copy(out, entries)
	for i := len(out) - 1; i > 0; i-- {
		j := g.rnd.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Options returns up to n distinct meanings including correct, in random order.
// Distractors are drawn from pool entries with a non-empty meaning that differs
// from correct. When the pool cannot supply n-1 distinct distractors the result
// is shorter than n.
func (g *Generator) Options(pool []model.WordEntry, correct string, n int) []string {
	if n <= 0 {
		return nil
	}
	options := make([]string, 0, n)
	options = append(options, correct)
	seen := map[string]struct{}{correct: {}}
	for _, idx := range g.rnd.Perm(len(pool)) {
		if len(options) >= n {
			break
		}
		meaning := pool[idx].Meaning
		if meaning == "" {
			continue
		}
		if _, ok := seen[meaning]; ok {
			continue
		}
		seen[meaning] = struct{}{}
		options = append(options, meaning)
	}
	g.rnd.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}
