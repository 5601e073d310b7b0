package wordlist

import (
	"reflect"
	"testing"
)

func TestFilterByDayIgnoresCase(t *testing.T) {
	entries := sampleEntries()
	lower := FilterByDay(entries, "day10")
	upper := FilterByDay(entries, "DAY10")
	if len(lower) != 1 || lower[0].Word != "cherry" {
		t.Fatalf("unexpected filter result: %+v", lower)
	}
	if !reflect.DeepEqual(lower, upper) {
		t.Fatalf("expected identical sets, got %+v and %+v", lower, upper)
	}
	if got := FilterByDay(entries, "day30"); len(got) != 0 {
		t.Fatalf("expected no entries, got %+v", got)
	}
}

func TestDaysNaturalOrder(t *testing.T) {
	got := Days(sampleEntries())
	want := []DayCount{
		{Day: "day1", Count: 2},
		{Day: "day2", Count: 1},
		{Day: "day10", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected days: %+v", got)
	}
}

func TestDayLabel(t *testing.T) {
	if got := DayLabel(7); got != "day7" {
		t.Fatalf("unexpected label %q", got)
	}
}
