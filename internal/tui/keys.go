package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	ByDay   key.Binding
	Random  key.Binding
	Review  key.Binding
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Choose  key.Binding
	Options key.Binding
	Back    key.Binding
	Quit    key.Binding

	screen screenKind
}

type screenKind int

const (
	keysMenu screenKind = iota
	keysDays
	keysPractice
	keysModal
)

func newKeyMap() keyMap {
	return keyMap{
		ByDay:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "날짜별 연습")),
		Random:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "무작위 연습")),
		Review:  key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "오답 연습")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "위")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "아래")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "왼쪽")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "오른쪽")),
		Choose:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "선택")),
		Options: key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "답 선택")),
		Back:    key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "메뉴로 돌아가기")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "종료")),
	}
}

// ShortHelp implements help.KeyMap for the screen the keys were bound to.
func (k keyMap) ShortHelp() []key.Binding {
	switch k.screen {
	case keysDays:
		return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Choose, k.Back}
	case keysPractice:
		return []key.Binding{k.Options, k.Up, k.Down, k.Choose, k.Back}
	case keysModal:
		return []key.Binding{k.Choose}
	default:
		return []key.Binding{k.ByDay, k.Random, k.Review, k.Quit}
	}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func (k keyMap) forScreen(s screenKind) keyMap {
	k.screen = s
	return k
}
