package stats

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/notedthegoat/toeicword-practice-app/internal/model"
	"github.com/notedthegoat/toeicword-practice-app/internal/store"
)

func TestBuildSummary(t *testing.T) {
	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	sessions := []struct {
		correct, wrong int
		results        []model.WordResult
	}{
		{1, 1, []model.WordResult{{Word: "apple", Correct: false}, {Word: "banana", Correct: true}}},
		{2, 0, []model.WordResult{{Word: "apple", Correct: true}, {Word: "banana", Correct: true}}},
		{0, 2, []model.WordResult{{Word: "cherry", Correct: false}, {Word: "apple", Correct: false}}},
	}
	for i, s := range sessions {
		start := time.Unix(0, 0).Add(time.Duration(i) * time.Minute)
		rec := model.SessionRecord{
			StartedAt: start,
			EndedAt:   start.Add(time.Minute / 2),
			Mode:      model.ModeRandom,
			Total:     s.correct + s.wrong,
			Correct:   s.correct,
			Wrong:     s.wrong,
			Completed: true,
		}
		if _, err := st.InsertSession(ctx, rec, s.results); err != nil {
			t.Fatalf("insert session: %v", err)
		}
	}

	sum, err := BuildSummary(ctx, st, 0, 2)
	if err != nil {
		t.Fatalf("build summary: %v", err)
	}
	if sum.Sessions != 3 || sum.Correct != 3 || sum.Wrong != 3 {
		t.Fatalf("unexpected totals: %+v", sum)
	}
	if sum.LastAccuracy != 0 {
		t.Fatalf("expected last accuracy 0, got %v", sum.LastAccuracy)
	}
	if sum.Accuracy() != 0.5 {
		t.Fatalf("expected overall accuracy 0.5, got %v", sum.Accuracy())
	}
	if len(sum.Trend) != 3 {
		t.Fatalf("expected 3-point trend, got %q", sum.Trend)
	}
	if !reflect.DeepEqual(sum.WeakWords, []string{"cherry", "apple"}) {
		t.Fatalf("unexpected weak words: %v", sum.WeakWords)
	}
}

func TestBuildSummaryEmpty(t *testing.T) {
	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	sum, err := BuildSummary(context.Background(), st, 0, 3)
	if err != nil {
		t.Fatalf("build summary: %v", err)
	}
	if sum.Sessions != 0 || sum.Trend != "" || len(sum.WeakWords) != 0 {
		t.Fatalf("expected empty summary, got %+v", sum)
	}
}

func TestSelectWeakWords(t *testing.T) {
	aggs := []model.WordAggregate{
		{Word: "b", Correct: 3, Wrong: 1},
		{Word: "a", Correct: 1, Wrong: 1},
		{Word: "c", Correct: 4, Wrong: 0},
		{Word: "d", Correct: 2, Wrong: 2},
	}
	got := SelectWeakWords(aggs, 0)
	if !reflect.DeepEqual(got, []string{"d", "a", "b"}) {
		t.Fatalf("unexpected order: %v", got)
	}
	if got := SelectWeakWords(aggs, 1); !reflect.DeepEqual(got, []string{"d"}) {
		t.Fatalf("unexpected top-1: %v", got)
	}
}

func TestAccuracyAndSparkline(t *testing.T) {
	if Accuracy(0, 0) != 0 || Accuracy(3, 1) != 0.75 {
		t.Fatalf("unexpected accuracy")
	}
	if got := Sparkline([]float64{0, 1}); got != " @" {
		t.Fatalf("unexpected sparkline %q", got)
	}
	if got := Sparkline([]float64{0.5, 0.5}); got != "++" {
		t.Fatalf("unexpected flat sparkline %q", got)
	}
	if got := MovingAverage([]float64{1, 3, 5}, 2); !reflect.DeepEqual(got, []float64{1, 2, 4}) {
		t.Fatalf("unexpected moving average %v", got)
	}
}
