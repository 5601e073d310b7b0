package stats

import (
	"context"
	"sort"

	"github.com/notedthegoat/toeicword-practice-app/internal/model"
)

// HistorySource is the part of the store the summary reads from.
type HistorySource interface {
	ListSessions(ctx context.Context) ([]model.SessionAggregate, error)
	ListWordAggregates(ctx context.Context, window int) ([]model.WordAggregate, error)
}

// Summary condenses the practice history of the running process.
type Summary struct {
	Sessions     int
	Correct      int
	Wrong        int
	LastAccuracy float64
	Trend        string
	WeakWords    []string
}

// Accuracy returns the accuracy over every stored answer.
func (s Summary) Accuracy() float64 {
	return Accuracy(s.Correct, s.Wrong)
}

// BuildSummary loads the history and condenses it. window limits the weak-word
// calculation to the most recent sessions.
func BuildSummary(ctx context.Context, src HistorySource, window, weakTop int) (Summary, error) {
	sessions, err := src.ListSessions(ctx)
	if err != nil {
		return Summary{}, err
	}
	var sum Summary
	if len(sessions) == 0 {
		return sum, nil
	}
	accs := make([]float64, len(sessions))
	for i, s := range sessions {
		sum.Correct += s.Correct
		sum.Wrong += s.Wrong
		accs[i] = Accuracy(s.Correct, s.Wrong)
	}
	sum.Sessions = len(sessions)
	sum.LastAccuracy = accs[len(accs)-1]
	if len(accs) > 1 {
		sum.Trend = Sparkline(MovingAverage(accs, 3))
	}

	aggs, err := src.ListWordAggregates(ctx, window)
	if err != nil {
		return Summary{}, err
	}
	sum.WeakWords = SelectWeakWords(aggs, weakTop)
	return sum, nil
}

// SelectWeakWords returns up to top words with at least one wrong answer,
// lowest accuracy first.
func SelectWeakWords(aggs []model.WordAggregate, top int) []string {
	candidates := make([]model.WordAggregate, 0, len(aggs))
	for _, agg := range aggs {
		if agg.Wrong > 0 {
			candidates = append(candidates, agg)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		ai := Accuracy(candidates[i].Correct, candidates[i].Wrong)
		aj := Accuracy(candidates[j].Correct, candidates[j].Wrong)
		if ai != aj {
			return ai < aj
		}
		if candidates[i].Wrong != candidates[j].Wrong {
			return candidates[i].Wrong > candidates[j].Wrong
		}
		return candidates[i].Word < candidates[j].Word
	})
	if top <= 0 || top > len(candidates) {
		top = len(candidates)
	}
	out := make([]string, 0, top)
	for _, c := range candidates[:top] {
		out = append(out, c.Word)
	}
	return out
}
