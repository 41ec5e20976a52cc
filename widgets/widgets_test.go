package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type fixedWidget struct{ text string }

func (w fixedWidget) Render(width, height int) string {
	return w.text
}

func TestHStackRespectsRatios(t *testing.T) {
	h := HStack{Widgets: []Widget{fixedWidget{"A"}, fixedWidget{"B"}}, Ratios: []float64{0.75, 0.25}, Gap: 1}
	out := h.Render(20, 2)
	lines := strings.Split(out, "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d", len(lines))
	}
	if idx := strings.Index(lines[0], "B"); idx != 16 {
		t.Fatalf("B at column %d, want 16", idx)
	}
}

func TestCardRendersFixedHeight(t *testing.T) {
	c := Card{Title: "A title", Meta: "Ada · May 1", Summary: strings.Repeat("word ", 60), Footer: "3 min read"}
	out := c.Render(30, 9)
	lines := strings.Split(out, "\n")
	if len(lines) != 9 {
		t.Fatalf("line count = %d, want 9", len(lines))
	}
	for i, l := range lines {
		if w := ansi.StringWidth(l); w != 30 {
			t.Fatalf("line %d width = %d, want 30: %q", i, w, l)
		}
	}
	if !strings.Contains(out, "A title") || !strings.Contains(out, "3 min read") {
		t.Fatalf("missing title or footer:\n%s", out)
	}
	if !strings.Contains(lines[7], "3 min read") {
		t.Fatalf("footer not pinned to bottom: %q", lines[7])
	}
	if !strings.Contains(out, "…") {
		t.Fatalf("long summary should be cut with an ellipsis")
	}
}

func TestCardTooNarrow(t *testing.T) {
	if out := (Card{Title: "x"}).Render(4, 9); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}

func cards(titles ...string) []Card {
	out := make([]Card, len(titles))
	for i, title := range titles {
		out[i] = Card{Title: title, Summary: "summary"}
	}
	return out
}

func TestGridOneCardPerItemInOrder(t *testing.T) {
	g := Grid{Cards: cards("Alpha", "Bravo", "Charlie", "Delta", "Echo"), Columns: 2, CardHeight: 7, Gap: 1}
	out := g.Render(80, 100)

	if got := strings.Count(out, "╭"); got != 5 {
		t.Fatalf("card count = %d, want 5", got)
	}
	last := -1
	for _, title := range []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo"} {
		idx := strings.Index(out, title)
		if idx <= last {
			t.Fatalf("%s out of order (index %d after %d)", title, idx, last)
		}
		last = idx
	}
	if g.Rows() != 3 {
		t.Fatalf("rows = %d, want 3", g.Rows())
	}
}

func TestGridShowsOnlyVisibleRows(t *testing.T) {
	g := Grid{Cards: cards("Alpha", "Bravo", "Charlie", "Delta"), Columns: 1, CardHeight: 7, Gap: 1, FirstRow: 2}
	if rows := g.VisibleRows(15); rows != 2 {
		t.Fatalf("visible rows = %d, want 2", rows)
	}
	out := g.Render(40, 15)
	if strings.Contains(out, "Alpha") || strings.Contains(out, "Bravo") {
		t.Fatalf("rows before FirstRow rendered:\n%s", out)
	}
	if !strings.Contains(out, "Charlie") || !strings.Contains(out, "Delta") {
		t.Fatalf("expected Charlie and Delta:\n%s", out)
	}
}

func TestGridEmpty(t *testing.T) {
	g := Grid{Columns: 3, Empty: "No posts yet."}
	if out := g.Render(80, 20); out != "No posts yet." {
		t.Fatalf("got %q", out)
	}
}

func TestRenderPopupOverlaysWithoutDroppingBase(t *testing.T) {
	base := strings.Join([]string{
		"row-0................",
		"row-1................",
		"row-2................",
		"row-3................",
		"row-4................",
		"row-5................",
		"row-6................",
		"row-7................",
		"row-8................",
	}, "\n")
	out := RenderPopup(base, "Popup", 20, 9, nil)
	lines := strings.Split(out, "\n")
	if len(lines) != 9 {
		t.Fatalf("line count = %d, want 9", len(lines))
	}
	if !strings.Contains(out, "Popup") {
		t.Fatalf("expected popup content in output")
	}
	if !strings.Contains(lines[0], "row-0") {
		t.Fatalf("expected top base row preserved, got %q", lines[0])
	}
	if !strings.Contains(lines[8], "row-8") {
		t.Fatalf("expected bottom base row preserved, got %q", lines[8])
	}
}

func TestBoxAndBlank(t *testing.T) {
	out := Box{Title: "Error", Content: "boom"}.Render(20, 5)
	if !strings.Contains(out, "[Error]") || !strings.Contains(out, "boom") {
		t.Fatalf("unexpected box:\n%s", out)
	}
	if got := strings.Count(Blank{}.Render(10, 3), "\n"); got != 2 {
		t.Fatalf("blank newlines = %d, want 2", got)
	}
}

func TestSplitWidthsTreatsNonPositiveRatiosAsOne(t *testing.T) {
	got := splitWidths(30, 3, []float64{0, -2, 1})
	for i, w := range got {
		if w != 10 {
			t.Fatalf("width %d = %d, want 10 (all %v)", i, w, got)
		}
	}
}

func TestTextAlignsRight(t *testing.T) {
	out := Text{Content: "end", Align: lipgloss.Right}.Render(10, 1)
	if out != "       end" {
		t.Fatalf("got %q", out)
	}
}

func TestGridCardAt(t *testing.T) {
	cards := make([]Card, 5)
	g := Grid{Cards: cards, Columns: 2, CardHeight: 9, Gap: 1}
	// width 42: two 20-wide columns with a 2-cell gap; rows 9 tall, 1 apart
	for _, tc := range []struct {
		x, y int
		want int
		ok   bool
	}{
		{0, 0, 0, true},
		{19, 8, 0, true},
		{20, 4, 0, false}, // column gap
		{22, 4, 1, true},
		{5, 9, 0, false}, // row gap
		{5, 10, 2, true},
		{30, 25, 0, false}, // empty slot after the last card
		{5, 25, 4, true},
		{50, 0, 0, false},
	} {
		got, ok := g.CardAt(tc.x, tc.y, 42, 40)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Fatalf("CardAt(%d,%d) = %d,%v want %d,%v", tc.x, tc.y, got, ok, tc.want, tc.ok)
		}
	}

	g.FirstRow = 1
	if got, ok := g.CardAt(5, 0, 42, 40); !ok || got != 2 {
		t.Fatalf("scrolled CardAt = %d,%v want 2,true", got, ok)
	}
}
