package wordlist

import (
	"sort"
	"strconv"
	"strings"

	"github.com/notedthegoat/toeicword-practice-app/internal/model"
)

// DayCount is the number of entries carrying a day label.
type DayCount struct {
	Day   string
	Count int
}

// FilterByDay returns the entries whose day matches, ignoring case.
func FilterByDay(entries []model.WordEntry, day string) []model.WordEntry {
	var out []model.WordEntry
	for _, e := range entries {
		if strings.EqualFold(e.Day, day) {
			out = append(out, e)
		}
	}
	return out
}

// DayLabel returns the canonical label for the n-th day, starting at 1.
func DayLabel(n int) string {
	return "day" + strconv.Itoa(n)
}

// Days counts entries per day label. Labels are compared case-insensitively and
// sorted so that day2 comes before day10.
func Days(entries []model.WordEntry) []DayCount {
	counts := map[string]int{}
	for _, e := range entries {
		counts[strings.ToLower(e.Day)]++
	}
	out := make([]DayCount, 0, len(counts))
	for day, n := range counts {
		out = append(out, DayCount{Day: day, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		pi, ni := splitDay(out[i].Day)
		pj, nj := splitDay(out[j].Day)
		if pi != pj {
			return pi < pj
		}
		if ni != nj {
			return ni < nj
		}
		return out[i].Day < out[j].Day
	})
	return out
}

// splitDay splits a label into its text prefix and trailing number (-1 if none).
func splitDay(day string) (string, int) {
	i := len(day)
	for i > 0 && day[i-1] >= '0' && day[i-1] <= '9' {
		i--
	}
	if i == len(day) {
		return day, -1
	}
	n, err := strconv.Atoi(day[i:])
	if err != nil {
		return day, -1
	}
	return day[:i], n
}
