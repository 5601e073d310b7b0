package tui

import (
	"reflect"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestWrapTextFits(t *testing.T) {
	got := wrapText("수용하다", 20)
	if !reflect.DeepEqual(got, []string{"수용하다"}) {
		t.Fatalf("unexpected wrap: %q", got)
	}
}

func TestWrapTextBreaksAtSpaces(t *testing.T) {
	got := wrapText("상환하다, 환급하다 그리고 더", 10)
	want := []string{"상환하다,", "환급하다", "그리고 더"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected wrap: %q", got)
	}
	for _, line := range got {
		if w := runewidth.StringWidth(line); w > 10 {
			t.Fatalf("line %q is %d cells wide", line, w)
		}
	}
}

func TestWrapTextSplitsLongWords(t *testing.T) {
	got := wrapText("abcdefgh", 3)
	want := []string{"abc", "def", "gh"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected wrap: %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("기념품 가게", 5); runewidth.StringWidth(got) > 5 {
		t.Fatalf("truncated text too wide: %q", got)
	}
	if got := truncate("abc", 0); got != "abc" {
		t.Fatalf("expected untouched text, got %q", got)
	}
}
