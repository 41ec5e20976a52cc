// Package post defines the blog post model and the providers that supply the
// initial post collection to the viewer.
package post

import "context"

// Post is a single blog entry. Content is markdown. Posts are values; nothing
// in the viewer mutates one after it has been created.
type Post struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
	Author   string `json:"author"`
	Date     string `json:"date"`
}

// Provider supplies the ordered post collection shown on start and on retry.
// Implementations may fail; callers must not assume they cannot.
type Provider interface {
	InitialPosts(ctx context.Context) ([]Post, error)
}

// ProviderFunc adapts a plain function to Provider.
type ProviderFunc func(ctx context.Context) ([]Post, error)

func (f ProviderFunc) InitialPosts(ctx context.Context) ([]Post, error) {
	return f(ctx)
}
