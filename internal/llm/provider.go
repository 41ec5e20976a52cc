package llm

import (
	"context"

	"github.com/jask/blogview/internal/post"
)

// Generator writes new blog posts.
type Generator interface {
	GeneratePosts(ctx context.Context, req GenerateRequest) ([]post.GeneratedPostData, error)
}

// GenerateRequest asks for Count posts around Theme.
type GenerateRequest struct {
	Count int    `json:"count" validate:"gte=1,lte=10"`
	Theme string `json:"theme" validate:"required"`
}
