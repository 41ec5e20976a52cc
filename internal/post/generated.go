package post

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

// GeneratedPostData is what an authoring generator returns before the post
// gets an id, an image and a byline.
type GeneratedPostData struct {
	Title      string `json:"title" validate:"required"`
	Summary    string `json:"summary" validate:"required"`
	Content    string `json:"content" validate:"required"`
	ImageTheme string `json:"imageTheme"`
}

// Compose turns generated data into a Post. The id is derived from the title,
// so composing the same title twice yields the same id.
func Compose(data GeneratedPostData, author, date string) Post {
	theme := data.ImageTheme
	if strings.TrimSpace(theme) == "" {
		theme = data.Title
	}
	return Post{
		ID:       IDFor(Slug(data.Title)),
		Title:    strings.TrimSpace(data.Title),
		Summary:  strings.TrimSpace(data.Summary),
		Content:  data.Content,
		ImageURL: ImageURL(theme),
		Author:   author,
		Date:     date,
	}
}

// ImageURL returns a stable placeholder image for a theme.
func ImageURL(theme string) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/800/600", url.PathEscape(Slug(theme)))
}

// Slug lowercases s and joins its letter/digit runs with dashes.
func Slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return b.String()
}
