// Package tui is the Bubble Tea front end of the blog viewer. It owns the
// terminal concerns (keys, layout, spinner, scrolling) and delegates every
// view change to the shell state machine.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/blogview/internal/config"
	"github.com/jask/blogview/internal/markdown"
	"github.com/jask/blogview/internal/post"
	"github.com/jask/blogview/internal/shell"
)

const (
	headerHeight = 2
	footerHeight = 2
	cardHeight   = 9
	listPadding  = 1
	// rows above the detail viewport (title, byline, cover, blank) plus the
	// scroll hint below it
	detailChrome = 5
)

type postsLoadedMsg shell.LoadResult

// App is the root Bubble Tea model.
type App struct {
	ctx      context.Context
	provider post.Provider
	log      *zap.Logger
	md       *markdown.Renderer

	title   string
	delay   time.Duration
	columns int

	state    shell.State
	firstRow int

	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	viewport viewport.Model

	width  int
	height int
}

// New builds the app. The first load starts from Init.
func New(ctx context.Context, ui config.UIConfig, provider post.Provider, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	state, _ := shell.Start()
	return &App{
		ctx:      ctx,
		provider: provider,
		log:      log,
		md:       markdown.NewRenderer(ui.GlamourStyle),
		title:    ui.Title,
		delay:    ui.LoadDelay,
		columns:  ui.Columns,
		state:    state,
		keys:     newKeyMap(),
		help:     help.New(),
		spinner:  sp,
		viewport: viewport.New(0, 0),
		width:    80,
		height:   24,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.loadPostsCmd(a.state.Attempt()))
}

// State returns the current view state.
func (a *App) State() shell.State { return a.state }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
		a.resizeViewport()
		if a.state.Kind() == shell.KindDetail {
			a.setDetailContent()
		}
		a.scrollToCursor()
		return a, nil
	case spinner.TickMsg:
		if a.state.Kind() != shell.KindLoading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(m)
		return a, cmd
	case postsLoadedMsg:
		res := shell.LoadResult(m)
		if res.Err != nil {
			a.log.Error("load posts failed", zap.Int("attempt", res.Attempt), zap.Error(res.Err))
		} else {
			a.log.Info("posts loaded", zap.Int("attempt", res.Attempt), zap.Int("count", len(res.Posts)))
		}
		return a.dispatch(res)
	case tea.KeyMsg:
		return a.handleKey(m)
	case tea.MouseMsg:
		return a.handleMouse(m)
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(m, a.keys.Quit) {
		return a, tea.Quit
	}
	switch a.state.Kind() {
	case shell.KindError:
		if key.Matches(m, a.keys.Retry) {
			return a.dispatch(shell.Retry{})
		}
	case shell.KindList:
		cols := a.gridColumns()
		switch {
		case key.Matches(m, a.keys.Left):
			return a.dispatch(shell.MoveCursor{Delta: -1})
		case key.Matches(m, a.keys.Right):
			return a.dispatch(shell.MoveCursor{Delta: 1})
		case key.Matches(m, a.keys.Up):
			return a.dispatch(shell.MoveCursor{Delta: -cols})
		case key.Matches(m, a.keys.Down):
			return a.dispatch(shell.MoveCursor{Delta: cols})
		case key.Matches(m, a.keys.Open):
			return a.dispatch(shell.SelectCurrent{})
		}
	case shell.KindDetail:
		if key.Matches(m, a.keys.Back) {
			return a.dispatch(shell.Back{})
		}
		var cmd tea.Cmd
		a.viewport, cmd = a.viewport.Update(m)
		return a, cmd
	}
	return a, nil
}

func (a *App) handleMouse(m tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch a.state.Kind() {
	case shell.KindList:
		if m.Action != tea.MouseActionPress || m.Button != tea.MouseButtonLeft {
			return a, nil
		}
		i, ok := a.listGrid().CardAt(m.X-listPadding, m.Y-headerHeight, a.listWidth(), a.bodyHeight())
		if !ok {
			return a, nil
		}
		return a.dispatch(shell.SelectPost{ID: a.state.Posts()[i].ID})
	case shell.KindDetail:
		var cmd tea.Cmd
		a.viewport, cmd = a.viewport.Update(m)
		return a, cmd
	}
	return a, nil
}

// dispatch feeds ev to the state machine and runs the resulting effect.
func (a *App) dispatch(ev shell.Event) (tea.Model, tea.Cmd) {
	prev := a.state.Kind()
	next, effect := shell.Transition(a.state, ev)
	a.state = next
	if next.Kind() != prev {
		a.log.Debug("view changed", zap.Stringer("from", prev), zap.Stringer("to", next.Kind()))
	}

	switch next.Kind() {
	case shell.KindDetail:
		if prev != shell.KindDetail {
			a.resizeViewport()
			a.setDetailContent()
			a.viewport.GotoTop()
		}
	case shell.KindList:
		a.scrollToCursor()
	}

	if effect == shell.EffectFetch {
		return a, tea.Batch(a.spinner.Tick, a.loadPostsCmd(next.Attempt()))
	}
	return a, nil
}

func (a *App) loadPostsCmd(attempt int) tea.Cmd {
	ctx, provider, delay := a.ctx, a.provider, a.delay
	return func() tea.Msg {
		return postsLoadedMsg(shell.Load(ctx, provider, delay, attempt))
	}
}

func (a *App) bodyHeight() int {
	return max(1, a.height-headerHeight-footerHeight)
}

func (a *App) resizeViewport() {
	a.viewport.Width = a.contentWidth()
	a.viewport.Height = max(3, a.bodyHeight()-detailChrome)
}

// setDetailContent renders the selected post at the current width. Posts
// that fail to render are shown as raw markdown.
func (a *App) setDetailContent() {
	p, ok := a.state.Selected()
	if !ok {
		return
	}
	body, err := a.md.Render(p.ID, p.Content, a.contentWidth())
	if err != nil {
		a.log.Warn("render post", zap.String("id", p.ID), zap.Error(err))
		body = p.Content
	}
	a.log.Debug("post rendered", zap.String("id", p.ID), zap.Int("cached", a.md.Cached()))
	a.viewport.SetContent(body)
}

func (a *App) contentWidth() int {
	return max(20, min(a.width-4, 100))
}

// gridColumns is ui.columns when set, otherwise as many as the width fits.
func (a *App) gridColumns() int {
	if a.columns > 0 {
		return a.columns
	}
	switch {
	case a.width < 72:
		return 1
	case a.width < 110:
		return 2
	default:
		return 3
	}
}

// scrollToCursor keeps the focused card's row on screen.
func (a *App) scrollToCursor() {
	if a.state.Kind() != shell.KindList {
		return
	}
	grid := a.listGrid()
	row := a.state.Cursor() / grid.Columns
	visible := grid.VisibleRows(a.bodyHeight())
	if row < a.firstRow {
		a.firstRow = row
	}
	if row >= a.firstRow+visible {
		a.firstRow = row - visible + 1
	}
	// no blank rows below the last card while earlier rows are hidden
	a.firstRow = max(0, min(a.firstRow, grid.Rows()-visible))
}

// listWidth is the width the card grid is rendered at.
func (a *App) listWidth() int {
	return max(1, a.width-2*listPadding)
}
