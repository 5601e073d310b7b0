// Package model defines shared data structures.
package model

import "time"

// WordEntry is one vocabulary item from the word list.
type WordEntry struct {
	Day     string `json:"day" toml:"day"`
	Word    string `json:"word" toml:"word"`
	Meaning string `json:"meaning" toml:"meaning"`
}

// Screen identifies which screen the drill is on.
type Screen int

// Screens of the drill.
const (
	ScreenMenu Screen = iota
	ScreenDaySelection
	ScreenPractice
)

func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenDaySelection:
		return "day-selection"
	case ScreenPractice:
		return "practice"
	default:
		return "unknown"
	}
}

// Mode is the practice mode a session was started with.
type Mode string

// Practice modes.
const (
	ModeDay    Mode = "day"
	ModeRandom Mode = "random"
	ModeReview Mode = "review"
)

// Feedback is shown after each answer.
type Feedback struct {
	Correct bool
	Message string
}

// Config defines practice settings.
type Config struct {
	WordsFile string
	Days      int
	Seed      int64
	LogFile   string
}

// WordResult records how a word was answered within a session.
type WordResult struct {
	Word    string
	Correct bool
}

// SessionRecord captures a finished practice session.
type SessionRecord struct {
	StartedAt time.Time
	EndedAt   time.Time
	Mode      Mode
	Day       string
	Total     int
	Correct   int
	Wrong     int
	Completed bool
}

// SessionAggregate summarizes a stored session for reporting.
type SessionAggregate struct {
	SessionID string
	EndedAt   time.Time
	Mode      Mode
	Correct   int
	Wrong     int
}

// WordAggregate aggregates answers for a word across sessions.
type WordAggregate struct {
	Word    string
	Correct int
	Wrong   int
}
