package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jask/blogview/internal/database/repository"
	"github.com/jask/blogview/internal/llm"
	"github.com/jask/blogview/internal/post"
)

const dateLayout = "January 2, 2006"

// AuthorService asks a generator for new posts and appends them to the store.
type AuthorService struct {
	Posts     *repository.PostRepo
	Generator llm.Generator
	Author    string
	Now       func() time.Time
}

// GenerateResult summarises one generation run.
type GenerateResult struct {
	Stored []post.Post
}

// Generate requests req.Count posts and stores them after the existing ones.
// Post ids derive from titles, so a generated post titled like a stored one
// overwrites it.
func (s *AuthorService) Generate(ctx context.Context, req llm.GenerateRequest) (GenerateResult, error) {
	if s.Generator == nil || s.Posts == nil {
		return GenerateResult{}, fmt.Errorf("author: generator or repo not configured")
	}
	data, err := s.Generator.GeneratePosts(ctx, req)
	if err != nil {
		return GenerateResult{}, fmt.Errorf("generate posts: %w", err)
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	date := now().Format(dateLayout)

	order, err := s.Posts.NextOrder(ctx)
	if err != nil {
		return GenerateResult{}, fmt.Errorf("next order: %w", err)
	}

	var res GenerateResult
	for _, d := range data {
		p := post.Compose(d, s.Author, date)
		if err := s.Posts.Upsert(ctx, p, order); err != nil {
			return res, fmt.Errorf("store post %q: %w", p.Title, err)
		}
		order++
		res.Stored = append(res.Stored, p)
	}
	return res, nil
}
