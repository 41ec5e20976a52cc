package service

import (
	"context"
	"fmt"

	"github.com/jask/blogview/internal/database/repository"
	"github.com/jask/blogview/internal/post"
)

// StoredProvider serves posts from the sqlite store in their stored order.
type StoredProvider struct {
	Posts *repository.PostRepo
}

func (p *StoredProvider) InitialPosts(ctx context.Context) ([]post.Post, error) {
	if p.Posts == nil {
		return nil, fmt.Errorf("stored provider: repo not configured")
	}
	posts, err := p.Posts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}
