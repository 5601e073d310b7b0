package generator

import (
	"reflect"
	"sort"
	"testing"

	"github.com/notedthegoat/toeicword-practice-app/internal/model"
)

func pool() []model.WordEntry {
	return []model.WordEntry{
		{Day: "day1", Word: "apple", Meaning: "사과"},
		{Day: "day1", Word: "banana", Meaning: "바나나"},
		{Day: "day2", Word: "cherry", Meaning: "체리"},
		{Day: "day2", Word: "grape", Meaning: "포도"},
		{Day: "day3", Word: "melon", Meaning: "멜론"},
		{Day: "day3", Word: "fig", Meaning: ""},
		{Day: "day3", Word: "apple-2", Meaning: "사과"},
	}
}

func TestShufflePermutesCopy(t *testing.T) {
	entries := pool()
	g := NewSeeded(1)
	got := g.Shuffle(entries)
	if !reflect.DeepEqual(entries, pool()) {
		t.Fatalf("shuffle mutated input")
	}
	if len(got) != len(entries) {
		t.Fatalf("expected %d entries, got %d", len(entries), len(got))
	}
	words := func(es []model.WordEntry) []string {
		out := make([]string, 0, len(es))
		for _, e := range es {
			out = append(out, e.Word)
		}
		sort.Strings(out)
		return out
	}
	if !reflect.DeepEqual(words(got), words(entries)) {
		t.Fatalf("shuffle changed the multiset of entries")
	}
}

func TestShuffleDeterministicWithSeed(t *testing.T) {
	a := NewSeeded(42).Shuffle(pool())
	b := NewSeeded(42).Shuffle(pool())
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected identical order for identical seeds")
	}
}

func TestShuffleCoversAllPositions(t *testing.T) {
	entries := pool()[:3]
	g := NewSeeded(7)
	firsts := map[string]int{}
	for i := 0; i < 600; i++ {
		firsts[g.Shuffle(entries)[0].Word]++
	}
	for _, e := range entries {
		if firsts[e.Word] < 100 {
			t.Fatalf("word %q led only %d of 600 shuffles", e.Word, firsts[e.Word])
		}
	}
}

func TestOptionsDistinctAndContainCorrect(t *testing.T) {
	g := NewSeeded(3)
	for i := 0; i < 200; i++ {
		opts := g.Options(pool(), "사과", 4)
		if len(opts) != 4 {
			t.Fatalf("expected 4 options, got %v", opts)
		}
		seen := map[string]struct{}{}
		hasCorrect := false
		for _, o := range opts {
			if o == "" {
				t.Fatalf("empty option in %v", opts)
			}
			if _, ok := seen[o]; ok {
				t.Fatalf("duplicate option in %v", opts)
			}
			seen[o] = struct{}{}
			if o == "사과" {
				hasCorrect = true
			}
		}
		if !hasCorrect {
			t.Fatalf("correct meaning missing from %v", opts)
		}
	}
}

func TestOptionsSmallPoolTerminates(t *testing.T) {
	small := []model.WordEntry{
		{Word: "apple", Meaning: "사과"},
		{Word: "banana", Meaning: "바나나"},
		{Word: "kiwi", Meaning: "사과"},
	}
	opts := NewSeeded(1).Options(small, "사과", 4)
	sort.Strings(opts)
	if !reflect.DeepEqual(opts, []string{"바나나", "사과"}) {
		t.Fatalf("unexpected options: %v", opts)
	}
	if got := NewSeeded(1).Options(nil, "사과", 4); !reflect.DeepEqual(got, []string{"사과"}) {
		t.Fatalf("expected only the correct meaning, got %v", got)
	}
	if got := NewSeeded(1).Options(small, "사과", 0); got != nil {
		t.Fatalf("expected nil for n=0, got %v", got)
	}
}
