package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Card is a bordered summary tile: title, meta line, wrapped summary and a
// footer pinned to the bottom edge.
type Card struct {
	Title   string
	Meta    string
	Summary string
	Footer  string
	Focused bool

	TitleStyle  lipgloss.Style
	MetaStyle   lipgloss.Style
	FooterStyle lipgloss.Style
	Border      lipgloss.TerminalColor
	FocusBorder lipgloss.TerminalColor
}

// CardMinHeight fits border, title, meta, one summary line and the footer.
const CardMinHeight = 7

func (c Card) Render(width, height int) string {
	if width < 6 || height <= 0 {
		return ""
	}
	height = max(height, CardMinHeight)
	inner := width - 4 // border + padding
	rows := height - 2

	lines := []string{
		c.TitleStyle.Render(ansi.Truncate(c.Title, inner, "…")),
		c.MetaStyle.Render(ansi.Truncate(c.Meta, inner, "…")),
		"",
	}
	summaryRows := rows - len(lines) - 1
	lines = append(lines, wrapLines(c.Summary, inner, summaryRows)...)
	for len(lines) < rows-1 {
		lines = append(lines, "")
	}
	lines = append(lines, c.FooterStyle.Render(ansi.Truncate(c.Footer, inner, "…")))

	style := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(width - 2)
	switch {
	case c.Focused && c.FocusBorder != nil:
		style = style.BorderForeground(c.FocusBorder)
	case c.Border != nil:
		style = style.BorderForeground(c.Border)
	}
	return style.Render(joinLines(lines))
}

// wrapLines word-wraps s to width and keeps at most n lines, marking a cut
// with an ellipsis.
func wrapLines(s string, width, n int) []string {
	if n <= 0 || strings.TrimSpace(s) == "" {
		return nil
	}
	wrapped := strings.Split(ansi.Wordwrap(s, width, ""), "\n")
	if len(wrapped) <= n {
		return wrapped
	}
	out := wrapped[:n]
	last := strings.TrimRight(out[n-1], " ")
	out[n-1] = ansi.Truncate(last, width-1, "") + "…"
	return out
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
