package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorCrust    lipgloss.Color = "#11111b"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	colorAccent = colorPink
	colorBrand  = colorMauve
	colorFocus  = colorLavender
	colorError  = colorRed
	colorInfo   = colorTeal
	colorBorder = colorSurface1
	colorMuted  = colorOverlay1
)

var (
	headerStyle  = lipgloss.NewStyle().Foreground(colorBrand).Background(colorCrust).Bold(true).Padding(0, 2)
	taglineStyle = lipgloss.NewStyle().Foreground(colorSubtext0).Background(colorCrust)
	footerStyle  = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 2)

	cardTitleStyle  = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	cardMetaStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	cardFooterStyle = lipgloss.NewStyle().Foreground(colorInfo)

	postTitleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	postMetaStyle  = lipgloss.NewStyle().Foreground(colorSubtext0)
	postLinkStyle  = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)
	hintStyle      = lipgloss.NewStyle().Foreground(colorMuted)

	loadingStyle    = lipgloss.NewStyle().Foreground(colorSubtext0)
	spinnerStyle    = lipgloss.NewStyle().Foreground(colorAccent)
	errorTitleStyle = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	errorTextStyle  = lipgloss.NewStyle().Foreground(colorSubtext0)
	buttonStyle     = lipgloss.NewStyle().Foreground(colorBase).Background(colorPeach).Bold(true).Padding(0, 2)
)
