package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type HStack struct {
	Widgets []Widget
	Ratios  []float64
	Gap     int
}

func (h HStack) Render(width, height int) string {
	if len(h.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gapTotal := max(0, h.Gap*(len(h.Widgets)-1))
	usable := max(1, width-gapTotal)
	widths := splitWidths(usable, len(h.Widgets), h.Ratios)
	rendered := make([][]string, len(h.Widgets))
	maxLines := 0
	for i, w := range h.Widgets {
		part := strings.Split(w.Render(max(1, widths[i]), height), "\n")
		rendered[i] = part
		if len(part) > maxLines {
			maxLines = len(part)
		}
	}
	out := make([]string, 0, maxLines)
	for line := 0; line < maxLines; line++ {
		cols := make([]string, len(rendered))
		for i := range rendered {
			if line < len(rendered[i]) {
				cols[i] = padRight(rendered[i][line], widths[i])
			} else {
				cols[i] = strings.Repeat(" ", widths[i])
			}
		}
		out = append(out, strings.Join(cols, strings.Repeat(" ", h.Gap)))
	}
	return strings.Join(out, "\n")
}

// Grid lays cards out row-major, Columns per row, starting at FirstRow and
// showing as many whole rows as fit.
type Grid struct {
	Cards      []Card
	Columns    int
	CardHeight int
	Gap        int
	FirstRow   int
	Empty      string
}

// Rows returns how many rows the grid's cards occupy.
func (g Grid) Rows() int {
	cols := max(1, g.Columns)
	return (len(g.Cards) + cols - 1) / cols
}

// VisibleRows returns how many whole rows fit in height.
func (g Grid) VisibleRows(height int) int {
	step := g.cardHeight() + g.Gap
	return max(1, (height+g.Gap)/step)
}

func (g Grid) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(g.Cards) == 0 {
		return g.Empty
	}
	cols := max(1, g.Columns)
	first := min(max(0, g.FirstRow), g.Rows()-1)
	last := min(g.Rows(), first+g.VisibleRows(height))

	rows := make([]string, 0, last-first)
	for r := first; r < last; r++ {
		row := make([]Widget, cols)
		for c := 0; c < cols; c++ {
			idx := r*cols + c
			if idx < len(g.Cards) {
				row[c] = g.Cards[idx]
			} else {
				row[c] = Blank{}
			}
		}
		rows = append(rows, HStack{Widgets: row, Gap: g.Gap * 2}.Render(width, g.cardHeight()))
	}
	return strings.Join(rows, strings.Repeat("\n", g.Gap+1))
}

// CardAt returns the index of the card drawn at cell (x, y) when the grid is
// rendered at width x height. Gaps and padding cells hit nothing.
func (g Grid) CardAt(x, y, width, height int) (int, bool) {
	if len(g.Cards) == 0 || x < 0 || y < 0 || x >= width || y >= height {
		return 0, false
	}
	step := g.cardHeight() + g.Gap
	if y%step >= g.cardHeight() || y/step >= g.VisibleRows(height) {
		return 0, false
	}
	row := min(max(0, g.FirstRow), g.Rows()-1) + y/step

	cols := max(1, g.Columns)
	gap := g.Gap * 2
	left := 0
	for c, w := range splitWidths(max(1, width-gap*(cols-1)), cols, nil) {
		if x >= left && x < left+w {
			if idx := row*cols + c; idx < len(g.Cards) {
				return idx, true
			}
			return 0, false
		}
		left += w + gap
	}
	return 0, false
}

func (g Grid) cardHeight() int {
	return max(CardMinHeight, g.CardHeight)
}

func splitWidths(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	if len(ratios) != n {
		width := total / n
		out := make([]int, n)
		for i := range out {
			out[i] = width
		}
		for i := 0; i < total%n; i++ {
			out[i]++
		}
		return out
	}
	weights := make([]float64, n)
	sum := 0.0
	for i, r := range ratios {
		if r <= 0 {
			r = 1
		}
		weights[i] = r
		sum += r
	}
	out := make([]int, n)
	used := 0
	for i := range out {
		w := int(math.Floor((weights[i] / sum) * float64(total)))
		out[i] = w
		used += w
	}
	for i := 0; used < total; i = (i + 1) % n {
		out[i]++
		used++
	}
	return out
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
