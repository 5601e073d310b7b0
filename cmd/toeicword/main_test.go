package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/notedthegoat/toeicword-practice-app/internal/model"
	"github.com/notedthegoat/toeicword-practice-app/internal/wordlist"
)

func TestDaysTable(t *testing.T) {
	pool := []model.WordEntry{
		{Day: "day10", Word: "venue", Meaning: "장소"},
		{Day: "day2", Word: "attire", Meaning: "복장"},
		{Day: "DAY2", Word: "comply", Meaning: "준수하다"},
	}
	lines := daysTable(pool, 0)
	want := []string{
		"Day   Words Sample",
		"day2      2 attire, comply",
		"day10     1 venue",
	}
	if strings.Join(lines, "\n") != strings.Join(want, "\n") {
		t.Fatalf("unexpected table:\n%s", strings.Join(lines, "\n"))
	}
	for _, line := range daysTable(pool, 12) {
		if len([]rune(line)) > 12 {
			t.Fatalf("line not truncated: %q", line)
		}
	}
}

func TestValidateConfig(t *testing.T) {
	if err := validateConfig(model.Config{Days: 30}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, days := range []int{0, -1, maxDays + 1} {
		if err := validateConfig(model.Config{Days: days}); err == nil {
			t.Fatalf("expected error for days=%d", days)
		}
	}
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	tmpl := defaultConfigTemplate()
	if !strings.Contains(tmpl, "[practice]") || !strings.Contains(tmpl, "# days = 30") {
		t.Fatalf("unexpected template:\n%s", tmpl)
	}
}

func TestWordlistCommandExports(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	out := filepath.Join(t.TempDir(), "export.json")

	root := newRootCmd()
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetArgs([]string{"wordlist", out})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	exported, err := wordlist.LoadPool(out)
	if err != nil {
		t.Fatalf("load export: %v", err)
	}
	bundled, err := wordlist.LoadBundled()
	if err != nil {
		t.Fatalf("load bundled: %v", err)
	}
	if len(exported) != len(bundled) {
		t.Fatalf("expected %d entries, got %d", len(bundled), len(exported))
	}
}

func TestDaysCommandUsesWordsFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("day1\tapple\t사과\nday3\tcherry\t체리\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	root := newRootCmd()
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetArgs([]string{"days", "--words-file", path})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	out := stdout.String()
	if !strings.Contains(out, "day1") || !strings.Contains(out, "cherry") {
		t.Fatalf("unexpected output: %s", out)
	}
	practiceWordsFile = ""
}
