// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (cards, grids, stacks, popup overlay compositor)
//
// Not allowed here:
// - key handling, view state transitions, or anything that knows what a post is
package widgets

// Widget renders itself into a width x height cell block.
type Widget interface {
	Render(width, height int) string
}

// Blank fills its area with nothing; used to pad short grid rows.
type Blank struct{}

func (Blank) Render(width, height int) string {
	if height <= 0 {
		return ""
	}
	lines := make([]string, height)
	return joinLines(lines)
}
