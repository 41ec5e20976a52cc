package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/blogview/internal/markdown"
	"github.com/jask/blogview/internal/post"
	"github.com/jask/blogview/internal/shell"
	"github.com/jask/blogview/widgets"
)

const tagline = "stories, notes and field reports"

func (a *App) View() string {
	body := ""
	switch a.state.Kind() {
	case shell.KindLoading:
		body = a.renderLoading()
	case shell.KindError:
		body = a.renderError()
	case shell.KindList:
		body = a.renderList()
	case shell.KindDetail:
		body = a.renderDetail()
	}
	body = lipgloss.NewStyle().Width(a.width).Height(a.bodyHeight()).MaxHeight(a.bodyHeight()).Render(body)
	return a.renderHeader() + "\n" + body + "\n" + a.renderFooter()
}

func (a *App) renderHeader() string {
	title := headerStyle.Render(a.title)
	rest := max(0, a.width-lipgloss.Width(title))
	line := title + taglineStyle.Width(rest).Render(ansi.Truncate(tagline, rest, "…"))
	return line + "\n"
}

func (a *App) renderFooter() string {
	help := a.help.ShortHelpView(a.keys.bindingsFor(a.state.Kind()))
	line := widgets.HStack{
		Widgets: []widgets.Widget{
			widgets.Text{Content: help},
			widgets.Text{Content: hintStyle.Render("© " + a.title), Align: lipgloss.Right},
		},
		Ratios: []float64{3, 1},
		Gap:    1,
	}.Render(max(1, a.width-4), 1)
	return "\n" + footerStyle.Render(line)
}

func (a *App) renderLoading() string {
	msg := a.spinner.View() + " " + loadingStyle.Render("Loading posts...")
	return lipgloss.Place(a.width, a.bodyHeight(), lipgloss.Center, lipgloss.Center, msg)
}

func (a *App) renderError() string {
	msg, _ := a.state.Message()
	popup := strings.Join([]string{
		errorTitleStyle.Render("An Error Occurred"),
		"",
		errorTextStyle.Render(msg),
		"",
		buttonStyle.Render("Retry"),
	}, "\n")
	return widgets.RenderPopup("", popup, a.width, a.bodyHeight(), colorError)
}

func (a *App) listGrid() widgets.Grid {
	return widgets.Grid{
		Cards:      cardsFor(a.state.Posts(), a.state.Cursor()),
		Columns:    a.gridColumns(),
		CardHeight: cardHeight,
		Gap:        1,
		FirstRow:   a.firstRow,
		Empty: widgets.Box{
			Title:   "No posts",
			Content: hintStyle.Render("There is nothing to read yet."),
			Border:  colorBorder,
		}.Render(max(1, a.width-2), 5),
	}
}

func (a *App) renderList() string {
	return lipgloss.NewStyle().Padding(0, listPadding).Render(a.listGrid().Render(a.listWidth(), a.bodyHeight()))
}

// cardsFor builds one card per post, focusing the one at cursor.
func cardsFor(posts []post.Post, cursor int) []widgets.Card {
	cards := make([]widgets.Card, 0, len(posts))
	for i, p := range posts {
		cards = append(cards, widgets.Card{
			Title:       p.Title,
			Meta:        byline(p),
			Summary:     p.Summary,
			Footer:      readingTime(p),
			Focused:     i == cursor,
			TitleStyle:  cardTitleStyle,
			MetaStyle:   cardMetaStyle,
			FooterStyle: cardFooterStyle,
			Border:      colorBorder,
			FocusBorder: colorFocus,
		})
	}
	return cards
}

func (a *App) renderDetail() string {
	p, ok := a.state.Selected()
	if !ok {
		return ""
	}
	width := a.contentWidth()
	lines := []string{
		postTitleStyle.Render(ansi.Truncate(p.Title, width, "…")),
		postMetaStyle.Render(byline(p) + " · " + readingTime(p)),
		cover(p, width),
		"",
		a.viewport.View(),
		hintStyle.Render(fmt.Sprintf("%3.0f%%", a.viewport.ScrollPercent()*100)),
	}
	return lipgloss.NewStyle().Padding(0, 2).Render(strings.Join(lines, "\n"))
}

func byline(p post.Post) string {
	switch {
	case p.Author != "" && p.Date != "":
		return "By " + p.Author + " · " + p.Date
	case p.Author != "":
		return "By " + p.Author
	default:
		return p.Date
	}
}

func readingTime(p post.Post) string {
	return fmt.Sprintf("%d min read", markdown.ReadingTime(p.Content))
}

func cover(p post.Post, width int) string {
	if p.ImageURL == "" {
		return hintStyle.Render("no cover image")
	}
	return hintStyle.Render("cover ") + postLinkStyle.Render(ansi.Truncate(p.ImageURL, max(1, width-6), "…"))
}
