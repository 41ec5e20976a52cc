package shell

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jask/blogview/internal/post"
)

// FetchFailure wraps whatever went wrong while asking the provider for posts.
type FetchFailure struct {
	Cause error
}

func (f *FetchFailure) Error() string {
	if f.Cause == nil {
		return "fetch posts"
	}
	return "fetch posts: " + f.Cause.Error()
}

func (f *FetchFailure) Unwrap() error { return f.Cause }

var errNoProvider = errors.New("no post provider configured")

// Load waits for delay, then asks p for posts once. Provider errors and
// panics both come back as a *FetchFailure in LoadResult.Err.
func Load(ctx context.Context, p post.Provider, delay time.Duration, attempt int) (res LoadResult) {
	res.Attempt = attempt
	defer func() {
		if r := recover(); r != nil {
			res.Posts = nil
			res.Err = &FetchFailure{Cause: fmt.Errorf("provider panic: %v", r)}
		}
	}()

	if delay > 0 {
		t := time.NewTimer(delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			res.Err = &FetchFailure{Cause: ctx.Err()}
			return res
		case <-t.C:
		}
	}
	if p == nil {
		res.Err = &FetchFailure{Cause: errNoProvider}
		return res
	}

	posts, err := p.InitialPosts(ctx)
	if err != nil {
		res.Err = &FetchFailure{Cause: err}
		return res
	}
	res.Posts = posts
	return res
}
