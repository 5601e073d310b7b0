package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/notedthegoat/toeicword-practice-app/internal/model"
	"github.com/notedthegoat/toeicword-practice-app/internal/quiz"
)

const appTitle = "토익 단어 훈련"

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true).MarginBottom(1)
	buttonStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#1E88E5")).Padding(0, 2)
	selectedStyle = buttonStyle.Background(lipgloss.Color("#FF7043")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	wordStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true).MarginBottom(1)
	correctBox    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#00C853")).Padding(0, 2)
	wrongBox      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#FF1744")).Padding(0, 2)
	modalStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 2)
)

// View implements tea.Model.
func (m *Model) View() string {
	v := m.ctrl.View()
	var body string
	keys := m.keys
	switch {
	case m.alert != nil:
		body = m.renderAlert()
		keys = keys.forScreen(keysModal)
	case v.Screen == model.ScreenPractice && v.Completed:
		body = m.renderCompletion(v)
		keys = keys.forScreen(keysModal)
	case v.Screen == model.ScreenPractice:
		body = m.renderPractice(v)
		keys = keys.forScreen(keysPractice)
	case v.Screen == model.ScreenDaySelection:
		body = m.renderDays()
		keys = keys.forScreen(keysDays)
	default:
		body = m.renderMenu(v)
		keys = keys.forScreen(keysMenu)
	}
	footer := mutedStyle.Render(m.help.View(keys))
	if m.width == 0 || m.height == 0 {
		return body + "\n\n" + footer
	}
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	bodyHeight := m.height - 1
	content := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return content + "\n" + footerLine
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 60
	}
	return max(int(float64(m.width)*0.70), 1)
}

func (m *Model) renderMenu(v quiz.View) string {
	lines := []string{
		titleStyle.Render(appTitle),
		buttonStyle.Render("d  날짜별 연습"),
		"",
		buttonStyle.Render("r  무작위 연습"),
		"",
		buttonStyle.Render(fmt.Sprintf("w  오답 연습 (%d)", v.WrongAnswers)),
		"",
	}
	if info := m.renderSummary(); info != "" {
		lines = append(lines, info)
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m *Model) renderSummary() string {
	sum := m.summary
	if sum.Sessions == 0 {
		return ""
	}
	segments := []string{
		fmt.Sprintf("연습 %d회", sum.Sessions),
		fmt.Sprintf("정확도 %.1f%%", sum.Accuracy()*100),
		fmt.Sprintf("최근 %.1f%%", sum.LastAccuracy*100),
	}
	if sum.Trend != "" {
		segments = append(segments, "["+sum.Trend+"]")
	}
	out := strings.Join(segments, "  ")
	if len(sum.WeakWords) > 0 {
		weak := "자주 틀린 단어: " + strings.Join(sum.WeakWords, ", ")
		out += "\n" + truncate(weak, m.contentWidth())
	}
	return mutedStyle.Render(out)
}

func (m *Model) renderDays() string {
	rows := make([]string, 0, m.days/dayColumns+2)
	rows = append(rows, titleStyle.Render("날짜 선택"))
	var row []string
	for i := 0; i < m.days; i++ {
		label := fmt.Sprintf("Day %2d", i+1)
		style := buttonStyle
		if i == m.dayCursor {
			style = selectedStyle
		}
		row = append(row, style.Render(label))
		if len(row) == dayColumns || i == m.days-1 {
			rows = append(rows, strings.Join(row, " "), "")
			row = nil
		}
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func (m *Model) renderPractice(v quiz.View) string {
	if v.Question == nil {
		return ""
	}
	width := m.contentWidth()
	lines := []string{}
	if v.Heading != "" {
		lines = append(lines, titleStyle.Render(v.Heading))
	}
	if v.Feedback != nil {
		box := wrongBox
		if v.Feedback.Correct {
			box = correctBox
		}
		lines = append(lines, box.Render(strings.Join(wrapText(v.Feedback.Message, width), "\n")), "")
	}
	lines = append(lines,
		mutedStyle.Render(v.StatusLine()),
		"",
		quiz.MsgQuestionPrompt,
		wordStyle.Render(v.Question.Word),
	)
	for i, opt := range v.Options {
		style := buttonStyle
		if i == m.optionCursor {
			style = selectedStyle
		}
		text := fmt.Sprintf("%d  %s", i+1, strings.Join(wrapText(opt, width-8), "\n   "))
		lines = append(lines, style.Render(text), "")
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m *Model) renderCompletion(v quiz.View) string {
	lines := []string{
		titleStyle.Render(quiz.MsgCompletedTitle),
		quiz.MsgCompleted,
		"",
		v.StatusLine(),
	}
	if v.Feedback != nil {
		lines = append(lines, mutedStyle.Render(v.Feedback.Message))
	}
	lines = append(lines, "", selectedStyle.Render(quiz.MsgBackToMenu))
	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func (m *Model) renderAlert() string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(m.alert.title),
		strings.Join(wrapText(m.alert.body, m.contentWidth()), "\n"),
		"",
		selectedStyle.Render("확인"),
	)
	return modalStyle.Render(content)
}
