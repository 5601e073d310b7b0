// Package tui provides the Bubble Tea vocabulary drill interface.
package tui

import (
	"context"
	"errors"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/notedthegoat/toeicword-practice-app/internal/model"
	"github.com/notedthegoat/toeicword-practice-app/internal/quiz"
	"github.com/notedthegoat/toeicword-practice-app/internal/stats"
	"github.com/notedthegoat/toeicword-practice-app/internal/wordlist"
)

const (
	dayColumns    = 5
	weakWindow    = 10
	weakWordCount = 5
)

// History records finished sessions and summarizes them.
type History interface {
	stats.HistorySource
	InsertSession(ctx context.Context, rec model.SessionRecord, results []model.WordResult) (string, error)
}

type alert struct {
	title string
	body  string
}

// Model implements the Bubble Tea drill UI on top of a quiz controller.
type Model struct {
	ctrl    *quiz.Controller
	history History
	days    int

	width  int
	height int

	dayCursor    int
	optionCursor int
	alert        *alert

	summary stats.Summary
	keys    keyMap
	help    help.Model
}

// NewModel constructs the drill UI. history may be nil. An initial alert is
// shown when startupErr is set, e.g. when the word list failed to load.
func NewModel(ctrl *quiz.Controller, history History, days int, startupErr error) *Model {
	m := &Model{
		ctrl:    ctrl,
		history: history,
		days:    days,
		keys:    newKeyMap(),
		help:    help.New(),
	}
	if startupErr != nil {
		m.alert = &alert{title: quiz.MsgLoadFailedTitle, body: quiz.MsgLoadFailed}
	}
	m.loadSummary()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.recordSession()
			return m, tea.Quit
		}
		if m.alert != nil {
			m.alert = nil
			return m, nil
		}
		switch m.ctrl.Screen() {
		case model.ScreenMenu:
			return m.updateMenu(msg)
		case model.ScreenDaySelection:
			return m.updateDays(msg)
		case model.ScreenPractice:
			return m.updatePractice(msg)
		}
	}
	return m, nil
}

func (m *Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.ByDay):
		m.handleErr(m.ctrl.OpenDaySelection())
	case key.Matches(msg, m.keys.Random):
		m.startPractice(m.ctrl.StartRandom())
	case key.Matches(msg, m.keys.Review):
		m.startPractice(m.ctrl.StartReview())
	}
	return m, nil
}

func (m *Model) updateDays(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.ctrl.ReturnToMenu()
	case key.Matches(msg, m.keys.Left):
		m.moveDay(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveDay(1)
	case key.Matches(msg, m.keys.Up):
		m.moveDay(-dayColumns)
	case key.Matches(msg, m.keys.Down):
		m.moveDay(dayColumns)
	case key.Matches(msg, m.keys.Choose):
		m.startPractice(m.ctrl.StartByDay(wordlist.DayLabel(m.dayCursor + 1)))
	}
	return m, nil
}

func (m *Model) updatePractice(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	v := m.ctrl.View()
	if v.Completed {
		if key.Matches(msg, m.keys.Choose) || key.Matches(msg, m.keys.Back) {
			m.recordSession()
			m.handleErr(m.ctrl.Acknowledge())
		}
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Back):
		m.recordSession()
		m.ctrl.ReturnToMenu()
	case key.Matches(msg, m.keys.Up):
		m.moveOption(-1, len(v.Options))
	case key.Matches(msg, m.keys.Down):
		m.moveOption(1, len(v.Options))
	case key.Matches(msg, m.keys.Options):
		m.choose(int(msg.String()[0] - '1'))
	case key.Matches(msg, m.keys.Choose):
		m.choose(m.optionCursor)
	}
	return m, nil
}

func (m *Model) choose(index int) {
	if out := m.ctrl.Choose(index); out.Applied {
		m.optionCursor = 0
	}
}

func (m *Model) moveDay(delta int) {
	if m.days <= 0 {
		return
	}
	next := m.dayCursor + delta
	if next < 0 || next >= m.days {
		return
	}
	m.dayCursor = next
}

func (m *Model) moveOption(delta, count int) {
	if count == 0 {
		return
	}
	m.optionCursor = (m.optionCursor + delta + count) % count
}

func (m *Model) startPractice(err error) {
	if err != nil {
		m.handleErr(err)
		return
	}
	m.optionCursor = 0
}

func (m *Model) handleErr(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, quiz.ErrInvalidTransition) {
		log.Printf("ignored action on %s screen: %v", m.ctrl.Screen(), err)
		return
	}
	title, body := quiz.Alert(err)
	m.alert = &alert{title: title, body: body}
}

// recordSession stores the active session in the history, if any answers were given.
func (m *Model) recordSession() {
	if m.history == nil {
		return
	}
	rec, results, ok := m.ctrl.Record()
	if !ok {
		return
	}
	if _, err := m.history.InsertSession(context.Background(), rec, results); err != nil {
		log.Printf("failed to save session: %v", err)
		return
	}
	m.loadSummary()
}

func (m *Model) loadSummary() {
	if m.history == nil {
		return
	}
	sum, err := stats.BuildSummary(context.Background(), m.history, weakWindow, weakWordCount)
	if err != nil {
		log.Printf("failed to load session history: %v", err)
		return
	}
	m.summary = sum
}
