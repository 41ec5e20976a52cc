package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/jask/blogview/internal/shell"
)

type keyMap struct {
	Quit  key.Binding
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
	Open  key.Binding
	Back  key.Binding
	Retry key.Binding
	// Scroll is help-only; the viewport owns the actual scroll keys.
	Scroll key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Left:   key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←/h", "prev")),
		Right:  key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/l", "next")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "read")),
		Back:   key.NewBinding(key.WithKeys("esc", "backspace", "b"), key.WithHelp("esc", "back")),
		Retry:  key.NewBinding(key.WithKeys("r", "enter"), key.WithHelp("r", "retry")),
		Scroll: key.NewBinding(key.WithKeys("up", "down", "pgup", "pgdown"), key.WithHelp("↑/↓", "scroll")),
	}
}

// bindingsFor returns the help line for a view.
func (k keyMap) bindingsFor(kind shell.Kind) []key.Binding {
	switch kind {
	case shell.KindError:
		return []key.Binding{k.Retry, k.Quit}
	case shell.KindList:
		return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Open, k.Quit}
	case shell.KindDetail:
		return []key.Binding{k.Back, k.Scroll, k.Quit}
	default:
		return []key.Binding{k.Quit}
	}
}
