package post

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// StaticProvider serves the built-in catalogue. It never fails and returns the
// same posts, in the same order, on every call.
type StaticProvider struct{}

func (StaticProvider) InitialPosts(ctx context.Context) ([]Post, error) {
	return Catalog(), nil
}

// Catalog returns a fresh copy of the built-in posts.
func Catalog() []Post {
	out := make([]Post, 0, len(catalog))
	for _, e := range catalog {
		out = append(out, Post{
			ID:       IDFor(e.slug),
			Title:    e.title,
			Summary:  e.summary,
			Content:  strings.TrimSpace(e.content) + "\n",
			ImageURL: ImageURL(e.theme),
			Author:   e.author,
			Date:     e.date,
		})
	}
	return out
}

// IDFor derives a stable post id from a slug so the same post keeps its id
// across builds and stores.
func IDFor(slug string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("post:"+slug)).String()
}

type catalogEntry struct {
	slug    string
	title   string
	summary string
	theme   string
	author  string
	date    string
	content string
}

var catalog = []catalogEntry{
	{
		slug:    "quiet-terminal",
		title:   "In Praise of the Quiet Terminal",
		summary: "Why a blinking cursor on a dark screen is still the most focused place to think.",
		theme:   "terminal",
		author:  "Ada Lindqvist",
		date:    "March 3, 2025",
		content: `
# In Praise of the Quiet Terminal

There is a particular kind of calm that comes from a screen with **nothing on it
but text**. No notifications, no sidebars, no autoplaying anything.

## Fewer pixels, fewer decisions

Every element on a screen asks for a small slice of attention. The terminal asks
for almost none:

- a prompt
- a cursor
- whatever you typed last

## Tools that stay out of the way

The best command line tools do one thing and print *just enough* to tell you it
worked. Silence is a feature.

> The absence of output is itself a message.
`,
	},
	{
		slug:    "sourdough-season",
		title:   "Sourdough Season",
		summary: "Notes from a year of feeding a starter, burning loaves, and finally getting an open crumb.",
		theme:   "bread",
		author:  "Marco Bellini",
		date:    "February 17, 2025",
		content: `
# Sourdough Season

The starter lives on the counter next to the kettle. It has a name, which says
more about me than about the yeast.

## What finally worked

1. Feed at a 1:5:5 ratio the night before.
2. Keep the dough warm, around 26°C.
3. Stop poking it every twenty minutes.

## What never worked

Rushing. Every shortcut showed up in the crumb.
`,
	},
	{
		slug:    "mountain-weather",
		title:   "Reading Mountain Weather",
		summary: "Clouds, wind and the small signs that tell you to turn around before the summit.",
		theme:   "mountains",
		author:  "Ingrid Solberg",
		date:    "January 29, 2025",
		content: `
# Reading Mountain Weather

Forecasts are regional. Mountains are local. The gap between the two is where
people get into trouble.

## Signs worth heeding

- **Lenticular clouds** stacking over ridges mean strong winds aloft.
- A sudden drop in temperature in the afternoon often comes before a storm.
- Cumulus towers growing *vertically* before noon are a warning.

Turning around is always an option. The mountain will be there next year.
`,
	},
	{
		slug:    "small-libraries",
		title:   "The Case for Small Libraries",
		summary: "Dependencies you can read in an afternoon are dependencies you can trust.",
		theme:   "books",
		author:  "Ada Lindqvist",
		date:    "January 8, 2025",
		content: `
# The Case for Small Libraries

A library you can read end to end in one sitting is a library you actually
understand.

## Reading is reviewing

When a dependency fits on a few screens, reviewing an upgrade means reading the
diff. That is a habit worth keeping.

` + "```" + `
go doc ./... | wc -l
` + "```" + `

Small does not mean trivial. It means the boundaries are clear.
`,
	},
	{
		slug:    "night-trains",
		title:   "Night Trains Are Back",
		summary: "Sleeping across borders: a slow, comfortable and surprisingly social way to travel.",
		theme:   "train",
		author:  "Marco Bellini",
		date:    "December 12, 2024",
		content: `
# Night Trains Are Back

You board after dinner, read for an hour, and wake up in another country.

## Practical notes

- Book a couchette early; sleepers sell out first.
- Bring earplugs. The rails are not quiet.
- Breakfast is usually coffee and a croissant, and that is fine.

The journey *is* the holiday, if you let it be.
`,
	},
	{
		slug:    "garden-notebook",
		title:   "A Garden Notebook",
		summary: "Keeping a paper log of what grew, what failed, and what the slugs ate first.",
		theme:   "garden",
		author:  "Ingrid Solberg",
		date:    "November 20, 2024",
		content: `
# A Garden Notebook

Memory is a poor gardener. A notebook is a better one.

## What goes in it

| Date   | Bed | Note                       |
|--------|-----|----------------------------|
| Apr 02 | A   | Sowed peas, soil still cold |
| May 14 | B   | Tomatoes out, fleece on     |
| Jun 30 | A   | Peas done, slugs winning    |

Next year's garden starts with last year's handwriting.
`,
	},
}
