// Package quiz implements the vocabulary drill state machine.
package quiz

import (
	"time"

	"github.com/notedthegoat/toeicword-practice-app/internal/generator"
	"github.com/notedthegoat/toeicword-practice-app/internal/model"
	"github.com/notedthegoat/toeicword-practice-app/internal/wordlist"
)

// OptionCount is the number of choices offered per question.
const OptionCount = 4

// Controller owns the word pool, the wrong-answer set and the active session.
// It is not safe for concurrent use; all calls are expected to come from the
// UI event loop.
type Controller struct {
	pool   []model.WordEntry
	gen    *generator.Generator
	wrong  WrongSet
	screen model.Screen
	sess   *session
	now    func() time.Time
}

type session struct {
	mode      model.Mode
	day       string
	total     int
	queue     []model.WordEntry
	options   []string
	correct   int
	wrong     int
	feedback  *model.Feedback
	results   []model.WordResult
	startedAt time.Time
	completed bool
}

// Outcome describes the effect of an answer.
type Outcome struct {
	Applied   bool
	Correct   bool
	Feedback  model.Feedback
	Completed bool
}

// New creates a controller over pool, starting on the menu.
func New(pool []model.WordEntry, gen *generator.Generator) *Controller {
	p := make([]model.WordEntry, len(pool))
	copy(p, pool)
	return &Controller{
		pool:   p,
		gen:    gen,
		screen: model.ScreenMenu,
		now:    time.Now,
	}
}

// Screen returns the current screen.
func (c *Controller) Screen() model.Screen {
	return c.screen
}

// PoolSize returns the number of loaded entries.
func (c *Controller) PoolSize() int {
	return len(c.pool)
}

// WrongAnswers returns the words currently marked for review.
func (c *Controller) WrongAnswers() []model.WordEntry {
	return c.wrong.Entries()
}

// OpenDaySelection moves from the menu to the day list.
func (c *Controller) OpenDaySelection() error {
	if c.screen != model.ScreenMenu {
		return ErrInvalidTransition
	}
	c.screen = model.ScreenDaySelection
	return nil
}

// StartByDay starts a session over the entries of day, matched ignoring case.
func (c *Controller) StartByDay(day string) error {
	if c.screen != model.ScreenDaySelection {
		return ErrInvalidTransition
	}
	candidates := wordlist.FilterByDay(c.pool, day)
	if len(candidates) == 0 {
		return ErrNoDayData
	}
	c.start(model.ModeDay, day, candidates)
	return nil
}

// StartRandom starts a session over the whole pool.
func (c *Controller) StartRandom() error {
	if c.screen != model.ScreenMenu {
		return ErrInvalidTransition
	}
	if len(c.pool) == 0 {
		return ErrNoData
	}
	c.start(model.ModeRandom, "", c.pool)
	return nil
}

// StartReview starts a session over the wrong-answer set.
func (c *Controller) StartReview() error {
	if c.screen != model.ScreenMenu {
		return ErrInvalidTransition
	}
	if c.wrong.Len() == 0 {
		return ErrNoWrongAnswers
	}
	c.start(model.ModeReview, "", c.wrong.Entries())
	return nil
}

func (c *Controller) start(mode model.Mode, day string, candidates []model.WordEntry) {
	queue := c.gen.Shuffle(uniqueByWord(candidates))
	c.sess = &session{
		mode:      mode,
		day:       day,
		total:     len(queue),
		queue:     queue,
		startedAt: c.now(),
	}
	c.sess.options = c.BuildOptions(queue[0].Meaning)
	c.screen = model.ScreenPractice
}

// uniqueByWord keeps the first entry for each word.
func uniqueByWord(entries []model.WordEntry) []model.WordEntry {
	seen := make(map[string]struct{}, len(entries))
	out := make([]model.WordEntry, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.Word]; ok {
			continue
		}
		seen[e.Word] = struct{}{}
		out = append(out, e)
	}
	return out
}

// BuildOptions returns the choices for a question whose answer is correct.
// Distractors come from the full pool. A pool with fewer than three other
// distinct meanings yields fewer than OptionCount choices.
func (c *Controller) BuildOptions(correct string) []string {
	return c.gen.Options(c.pool, correct, OptionCount)
}

// Current returns the question being asked, if any.
func (c *Controller) Current() (model.WordEntry, bool) {
	if c.sess == nil || len(c.sess.queue) == 0 {
		return model.WordEntry{}, false
	}
	return c.sess.queue[0], true
}

// Choose answers the current question with the option at index.
func (c *Controller) Choose(index int) Outcome {
	q, ok := c.Current()
	if !ok || index < 0 || index >= len(c.sess.options) {
		return Outcome{}
	}
	return c.Answer(c.sess.options[index] == q.Meaning, q)
}

// Answer scores question. It is a no-op unless a session is active and
// question is still queued.
func (c *Controller) Answer(isCorrect bool, question model.WordEntry) Outcome {
	s := c.sess
	if s == nil || len(s.queue) == 0 {
		return Outcome{}
	}
	idx := -1
	for i, e := range s.queue {
		if e.Word == question.Word {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Outcome{}
	}

	var fb model.Feedback
	if isCorrect {
		s.correct++
		fb = model.Feedback{Correct: true, Message: MsgCorrect}
		c.wrong.Remove(question.Word)
	} else {
		s.wrong++
		fb = model.Feedback{Correct: false, Message: WrongMessage(question.Meaning)}
		c.wrong.Add(question)
	}
	s.feedback = &fb
	s.results = append(s.results, model.WordResult{Word: question.Word, Correct: isCorrect})

	s.queue = append(s.queue[:idx], s.queue[idx+1:]...)
	switch {
	case len(s.queue) == 0:
		s.options = nil
		s.completed = true
	case idx == 0:
		s.options = c.BuildOptions(s.queue[0].Meaning)
	}
	return Outcome{Applied: true, Correct: isCorrect, Feedback: fb, Completed: s.completed}
}

// Acknowledge dismisses the completion notification and returns to the menu.
func (c *Controller) Acknowledge() error {
	if c.sess == nil || !c.sess.completed {
		return ErrInvalidTransition
	}
	c.ReturnToMenu()
	return nil
}

// ReturnToMenu discards any session state and shows the menu.
func (c *Controller) ReturnToMenu() {
	c.sess = nil
	c.screen = model.ScreenMenu
}

// Reset returns the controller to its start-of-process state.
func (c *Controller) Reset() {
	c.ReturnToMenu()
	c.wrong.Clear()
}

// Record summarizes the active session. ok is false when no session is
// active or nothing has been answered yet.
func (c *Controller) Record() (rec model.SessionRecord, results []model.WordResult, ok bool) {
	s := c.sess
	if s == nil || len(s.results) == 0 {
		return model.SessionRecord{}, nil, false
	}
	rec = model.SessionRecord{
		StartedAt: s.startedAt,
		EndedAt:   c.now(),
		Mode:      s.mode,
		Day:       s.day,
		Total:     s.total,
		Correct:   s.correct,
		Wrong:     s.wrong,
		Completed: s.completed,
	}
	results = make([]model.WordResult, len(s.results))
	copy(results, s.results)
	return rec, results, true
}
