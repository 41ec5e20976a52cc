package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jask/blogview/internal/post"
)

// ErrEmptyResponse is returned when the model produced no usable posts.
var ErrEmptyResponse = errors.New("no posts in response")

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodePosts parses a model reply into at most limit posts. It accepts a bare
// JSON array or an object with a "posts" array, optionally inside a markdown
// code fence. Entries missing a title, summary or content are dropped.
func DecodePosts(raw string, limit int) ([]post.GeneratedPostData, error) {
	body := stripFence(raw)
	if body == "" {
		return nil, ErrEmptyResponse
	}

	var items []post.GeneratedPostData
	if strings.HasPrefix(body, "{") {
		var wrapped struct {
			Posts []post.GeneratedPostData `json:"posts"`
		}
		if err := json.Unmarshal([]byte(body), &wrapped); err != nil {
			return nil, fmt.Errorf("decode posts: %w", err)
		}
		items = wrapped.Posts
	} else if err := json.Unmarshal([]byte(body), &items); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}

	out := make([]post.GeneratedPostData, 0, len(items))
	for _, it := range items {
		if err := validate.Struct(it); err != nil {
			continue
		}
		out = append(out, it)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	if len(out) == 0 {
		return nil, ErrEmptyResponse
	}
	return out, nil
}

func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:] // language tag
	} else {
		s = ""
	}
	s = strings.TrimSpace(s)
	return strings.TrimSpace(strings.TrimSuffix(s, "```"))
}
