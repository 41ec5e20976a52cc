// Package markdown renders post bodies for the terminal and measures them.
package markdown

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/patrickmn/go-cache"
)

const (
	defaultWidth = 80
	cacheTTL     = 30 * time.Minute
)

// Renderer turns markdown into styled terminal text. Output is cached per
// post id and wrap width. It is meant to be used from a single goroutine
// (the Bubble Tea update loop).
type Renderer struct {
	style string
	cache *cache.Cache

	term      *glamour.TermRenderer
	termWidth int
}

// NewRenderer creates a renderer for a glamour style name ("dark", "light",
// "notty", ...). "auto" or an empty style detects the terminal background.
func NewRenderer(style string) *Renderer {
	return &Renderer{
		style: strings.TrimSpace(style),
		// cleanup interval 0: no janitor goroutine, expired entries are
		// skipped on Get and overwritten on Set
		cache: cache.New(cacheTTL, 0),
	}
}

// Render returns the styled form of body wrapped to width.
func (r *Renderer) Render(id, body string, width int) (string, error) {
	if width <= 0 {
		width = defaultWidth
	}
	key := fmt.Sprintf("%s:%d", id, width)
	if id != "" {
		if out, ok := r.cache.Get(key); ok {
			return out.(string), nil
		}
	}

	term, err := r.termFor(width)
	if err != nil {
		return "", err
	}
	out, err := term.Render(body)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	if id != "" {
		r.cache.SetDefault(key, out)
	}
	return out, nil
}

// termFor keeps one glamour renderer for the current width and rebuilds it
// when the width changes.
func (r *Renderer) termFor(width int) (*glamour.TermRenderer, error) {
	if r.term != nil && r.termWidth == width {
		return r.term, nil
	}
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if r.style == "" || r.style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStylePath(r.style))
	}
	term, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("create markdown renderer: %w", err)
	}
	r.term = term
	r.termWidth = width
	return term, nil
}

// Cached reports how many rendered bodies are held.
func (r *Renderer) Cached() int {
	return r.cache.ItemCount()
}
