package quiz

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/notedthegoat/toeicword-practice-app/internal/model"
)

// View is everything the presentation layer needs to draw the current state.
type View struct {
	Screen       model.Screen
	Mode         model.Mode
	Day          string
	Heading      string
	Question     *model.WordEntry
	Options      []string
	Correct      int
	Wrong        int
	Remaining    int
	Total        int
	Feedback     *model.Feedback
	Completed    bool
	WrongAnswers int
	PoolSize     int
}

// View derives the view model from the controller state. It has no side
// effects and may be called any number of times.
func (c *Controller) View() View {
	v := View{
		Screen:       c.screen,
		WrongAnswers: c.wrong.Len(),
		PoolSize:     len(c.pool),
	}
	s := c.sess
	if s == nil || c.screen != model.ScreenPractice {
		return v
	}
	v.Mode = s.mode
	v.Day = s.day
	v.Heading = Heading(s.day)
	v.Correct = s.correct
	v.Wrong = s.wrong
	v.Remaining = len(s.queue)
	v.Total = len(s.queue) + s.correct + s.wrong
	v.Completed = s.completed
	if s.feedback != nil {
		fb := *s.feedback
		v.Feedback = &fb
	}
	if len(s.queue) > 0 {
		q := s.queue[0]
		v.Question = &q
		v.Options = append([]string(nil), s.options...)
	}
	return v
}

// Heading returns the practice title for a by-day session, or "" without a day.
func Heading(day string) string {
	if day == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(day)
	return string(unicode.ToUpper(r)) + day[size:] + " 단어 문제 풀이"
}

// StatusLine formats the running counters.
func (v View) StatusLine() string {
	return fmt.Sprintf("총 문제 수: %d, 정답 수: %d, 틀린 수: %d", v.Total, v.Correct, v.Wrong)
}
