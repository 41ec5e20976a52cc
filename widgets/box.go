package widgets

import "github.com/charmbracelet/lipgloss"

type Box struct {
	Title   string
	Content string
	Border  lipgloss.TerminalColor
}

func (b Box) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	style := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(width - 2).Height(max(1, height-2))
	if b.Border != nil {
		style = style.BorderForeground(b.Border)
	}
	if b.Title == "" {
		return style.Render(b.Content)
	}
	return style.Render("[" + b.Title + "]\n" + b.Content)
}

// Text is styled text clipped to its area.
type Text struct {
	Content string
	Align   lipgloss.Position
}

func (t Text) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Width(width).MaxHeight(height).Align(t.Align).Render(t.Content)
}
