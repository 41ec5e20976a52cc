package tui

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jask/blogview/internal/config"
	"github.com/jask/blogview/internal/post"
	"github.com/jask/blogview/internal/shell"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func twoPosts() []post.Post {
	return []post.Post{
		{ID: "1", Title: "Alpha Post", Summary: "first summary", Content: "Hello from Alpha.", Author: "Ann", Date: "May 1, 2025"},
		{ID: "2", Title: "Bravo Post", Summary: "second summary", Content: "Hello from Bravo.", Author: "Bo", Date: "May 2, 2025",
			ImageURL: "https://picsum.photos/seed/bravo/800/600"},
	}
}

func testUI() config.UIConfig {
	return config.UIConfig{Title: "Test Journal", GlamourStyle: "notty"}
}

func newTestApp(t *testing.T, p post.Provider) (*App, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	a := New(context.Background(), testUI(), p, zap.New(core))
	a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return a, logs
}

// collect runs cmd and any batched commands, returning their messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// deliverLoad runs cmd and feeds the load result back into the app.
func deliverLoad(t *testing.T, a *App, cmd tea.Cmd) {
	t.Helper()
	for _, msg := range collect(cmd) {
		if res, ok := msg.(postsLoadedMsg); ok {
			a.Update(res)
			return
		}
	}
	t.Fatal("no load result produced")
}

func press(a *App, k tea.KeyMsg) tea.Cmd {
	_, cmd := a.Update(k)
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestStartsLoading(t *testing.T) {
	a, _ := newTestApp(t, post.ProviderFunc(func(context.Context) ([]post.Post, error) {
		return twoPosts(), nil
	}))

	require.Equal(t, shell.KindLoading, a.State().Kind())
	view := a.View()
	assert.Contains(t, view, "Loading posts...")
	assert.Contains(t, view, "Test Journal")
	assert.NotContains(t, view, "Alpha Post")
}

func TestLoadShowsCardsInOrder(t *testing.T) {
	a, logs := newTestApp(t, post.ProviderFunc(func(context.Context) ([]post.Post, error) {
		return twoPosts(), nil
	}))
	deliverLoad(t, a, a.Init())

	require.Equal(t, shell.KindList, a.State().Kind())
	view := a.View()
	first, second := strings.Index(view, "Alpha Post"), strings.Index(view, "Bravo Post")
	require.GreaterOrEqual(t, first, 0)
	require.Greater(t, second, first)
	assert.Contains(t, view, "1 min read")
	assert.Contains(t, view, "By Ann · May 1, 2025")
	assert.NotContains(t, view, "Loading posts...")
	assert.Equal(t, 1, logs.FilterMessage("posts loaded").Len())
}

func TestSelectOpensDetailAndBackReturnsToList(t *testing.T) {
	a, _ := newTestApp(t, post.ProviderFunc(func(context.Context) ([]post.Post, error) {
		return twoPosts(), nil
	}))
	deliverLoad(t, a, a.Init())

	press(a, tea.KeyMsg{Type: tea.KeyRight})
	press(a, tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, shell.KindDetail, a.State().Kind())
	selected, ok := a.State().Selected()
	require.True(t, ok)
	require.Equal(t, "2", selected.ID)
	view := a.View()
	assert.Contains(t, view, "Bravo Post")
	assert.Contains(t, view, "Hello from Bravo.")
	assert.Contains(t, view, "picsum.photos/seed/bravo")
	assert.NotContains(t, view, "Alpha Post")

	press(a, tea.KeyMsg{Type: tea.KeyEsc})

	require.Equal(t, shell.KindList, a.State().Kind())
	assert.Equal(t, 1, a.State().Cursor())
	assert.Len(t, a.State().Posts(), 2)
	view = a.View()
	assert.Contains(t, view, "Alpha Post")
	assert.Contains(t, view, "Bravo Post")
}

func TestDetailOpensAtTop(t *testing.T) {
	long := strings.Repeat("A line of prose in a long post.\n\n", 200)
	a, _ := newTestApp(t, post.ProviderFunc(func(context.Context) ([]post.Post, error) {
		return []post.Post{
			{ID: "long", Title: "Long", Content: long},
			{ID: "other", Title: "Other", Content: long},
		}, nil
	}))
	deliverLoad(t, a, a.Init())

	press(a, tea.KeyMsg{Type: tea.KeyEnter})
	press(a, tea.KeyMsg{Type: tea.KeyPgDown})
	require.Greater(t, a.viewport.YOffset, 0)

	press(a, tea.KeyMsg{Type: tea.KeyEsc})
	press(a, tea.KeyMsg{Type: tea.KeyRight})
	press(a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 0, a.viewport.YOffset)
}

func TestFailureShowsErrorAndLogs(t *testing.T) {
	boom := errors.New("disk on fire")
	a, logs := newTestApp(t, post.ProviderFunc(func(context.Context) ([]post.Post, error) {
		return nil, boom
	}))
	deliverLoad(t, a, a.Init())

	require.Equal(t, shell.KindError, a.State().Kind())
	view := a.View()
	assert.Contains(t, view, "An Error Occurred")
	assert.Contains(t, view, shell.FailureMessage)
	assert.Contains(t, view, "Retry")
	assert.NotContains(t, view, "disk on fire")

	entries := logs.FilterMessage("load posts failed").All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].ContextMap()["error"], "disk on fire")
}

func TestPanickingProviderShowsError(t *testing.T) {
	a, _ := newTestApp(t, post.ProviderFunc(func(context.Context) ([]post.Post, error) {
		panic("unexpected")
	}))
	deliverLoad(t, a, a.Init())

	require.Equal(t, shell.KindError, a.State().Kind())
	assert.Contains(t, a.View(), shell.FailureMessage)
}

func TestRetryReloads(t *testing.T) {
	calls := 0
	a, _ := newTestApp(t, post.ProviderFunc(func(context.Context) ([]post.Post, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("flaky")
		}
		return twoPosts(), nil
	}))
	deliverLoad(t, a, a.Init())
	require.Equal(t, shell.KindError, a.State().Kind())

	cmd := press(a, runes("r"))
	require.Equal(t, shell.KindLoading, a.State().Kind())
	assert.Equal(t, 2, a.State().Attempt())
	assert.Contains(t, a.View(), "Loading posts...")

	deliverLoad(t, a, cmd)
	require.Equal(t, shell.KindList, a.State().Kind())
	assert.Equal(t, 2, calls)
}

func TestStaleLoadIsIgnored(t *testing.T) {
	a, _ := newTestApp(t, post.ProviderFunc(func(context.Context) ([]post.Post, error) {
		return nil, errors.New("down")
	}))
	deliverLoad(t, a, a.Init())
	press(a, runes("r"))

	a.Update(postsLoadedMsg{Attempt: 1, Posts: twoPosts()})
	assert.Equal(t, shell.KindLoading, a.State().Kind())
}

func TestKeysOutsideTheirViewAreIgnored(t *testing.T) {
	a, _ := newTestApp(t, post.ProviderFunc(func(context.Context) ([]post.Post, error) {
		return twoPosts(), nil
	}))

	press(a, tea.KeyMsg{Type: tea.KeyEnter})
	press(a, runes("r"))
	require.Equal(t, shell.KindLoading, a.State().Kind())
	require.Equal(t, 1, a.State().Attempt())

	deliverLoad(t, a, a.Init())
	press(a, runes("r"))
	press(a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, shell.KindList, a.State().Kind())
}

func TestCursorMovesByRows(t *testing.T) {
	posts := make([]post.Post, 0, 5)
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		posts = append(posts, post.Post{ID: id, Title: "Post " + id})
	}
	a, _ := newTestApp(t, post.ProviderFunc(func(context.Context) ([]post.Post, error) {
		return posts, nil
	}))
	deliverLoad(t, a, a.Init())
	require.Equal(t, 2, a.gridColumns())

	press(a, runes("j"))
	assert.Equal(t, 2, a.State().Cursor())
	press(a, runes("j"))
	press(a, runes("j"))
	assert.Equal(t, 4, a.State().Cursor())
	press(a, runes("k"))
	assert.Equal(t, 2, a.State().Cursor())
	press(a, runes("h"))
	assert.Equal(t, 1, a.State().Cursor())
}

func TestGridColumns(t *testing.T) {
	a := New(context.Background(), testUI(), nil, nil)
	for _, tc := range []struct {
		width, want int
	}{{60, 1}, {100, 2}, {140, 3}} {
		a.Update(tea.WindowSizeMsg{Width: tc.width, Height: 30})
		assert.Equal(t, tc.want, a.gridColumns(), "width %d", tc.width)
	}

	ui := testUI()
	ui.Columns = 4
	fixed := New(context.Background(), ui, nil, nil)
	assert.Equal(t, 4, fixed.gridColumns())
}

func TestQuit(t *testing.T) {
	a, _ := newTestApp(t, nil)
	cmd := press(a, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCardsForFocusesCursor(t *testing.T) {
	cards := cardsFor(twoPosts(), 1)
	require.Len(t, cards, 2)
	assert.False(t, cards[0].Focused)
	assert.True(t, cards[1].Focused)
	assert.Equal(t, "Alpha Post", cards[0].Title)
	assert.Equal(t, "1 min read", cards[0].Footer)
}

func TestEmptyListShowsPlaceholder(t *testing.T) {
	a, _ := newTestApp(t, post.ProviderFunc(func(context.Context) ([]post.Post, error) {
		return nil, nil
	}))
	deliverLoad(t, a, a.Init())

	require.Equal(t, shell.KindList, a.State().Kind())
	assert.Contains(t, a.View(), "There is nothing to read yet.")

	press(a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, shell.KindList, a.State().Kind())
}

func TestFooterShowsNoticeAndHelp(t *testing.T) {
	a, _ := newTestApp(t, nil)
	view := a.View()
	assert.Contains(t, view, "© Test Journal")
	assert.Contains(t, view, "quit")
}

func numberedPosts(n int) []post.Post {
	posts := make([]post.Post, 0, n)
	for i := 1; i <= n; i++ {
		id := strconv.Itoa(i)
		posts = append(posts, post.Post{ID: id, Title: "Numbered Post " + id, Summary: "summary " + id})
	}
	return posts
}

func TestWideningShowsEveryCardAgain(t *testing.T) {
	posts := numberedPosts(6)
	core, _ := observer.New(zap.DebugLevel)
	a := New(context.Background(), testUI(), post.ProviderFunc(func(context.Context) ([]post.Post, error) {
		return posts, nil
	}), zap.New(core))
	a.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	deliverLoad(t, a, a.Init())
	require.Equal(t, 1, a.gridColumns())

	for range posts {
		press(a, runes("j"))
	}
	require.Equal(t, 5, a.State().Cursor())
	require.NotContains(t, a.View(), "Numbered Post 1")

	a.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	require.Equal(t, 3, a.gridColumns())
	assert.Equal(t, 0, a.firstRow)
	view := a.View()
	for _, p := range posts {
		assert.Contains(t, view, p.Title)
	}
}

func TestClickOpensCard(t *testing.T) {
	a, _ := newTestApp(t, post.ProviderFunc(func(context.Context) ([]post.Post, error) {
		return twoPosts(), nil
	}))
	deliverLoad(t, a, a.Init())

	click := func(x, y int) {
		a.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	}

	// 100 wide: the grid is 98 cells at x=1, two 48-cell cards 2 apart
	click(60, headerHeight+cardHeight)
	require.Equal(t, shell.KindList, a.State().Kind(), "gap between rows")
	click(60, 0)
	require.Equal(t, shell.KindList, a.State().Kind(), "header")

	click(60, headerHeight+2)
	require.Equal(t, shell.KindDetail, a.State().Kind())
	selected, ok := a.State().Selected()
	require.True(t, ok)
	assert.Equal(t, "2", selected.ID)
	assert.Equal(t, 1, a.State().Cursor())

	press(a, tea.KeyMsg{Type: tea.KeyEsc})
	click(5, headerHeight+2)
	selected, _ = a.State().Selected()
	assert.Equal(t, "1", selected.ID)
}
