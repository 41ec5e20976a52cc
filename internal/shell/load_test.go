package shell

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/blogview/internal/post"
)

func TestLoadReturnsPosts(t *testing.T) {
	t.Parallel()

	p := post.ProviderFunc(func(context.Context) ([]post.Post, error) { return samplePosts(), nil })
	res := Load(context.Background(), p, 0, 3)
	require.NoError(t, res.Err)
	require.Equal(t, 3, res.Attempt)
	require.Equal(t, samplePosts(), res.Posts)
}

func TestLoadWrapsProviderError(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk on fire")
	p := post.ProviderFunc(func(context.Context) ([]post.Post, error) { return nil, cause })
	res := Load(context.Background(), p, 0, 1)

	var ff *FetchFailure
	require.ErrorAs(t, res.Err, &ff)
	require.ErrorIs(t, res.Err, cause)
	require.Contains(t, res.Err.Error(), "disk on fire")
	require.Nil(t, res.Posts)
}

func TestLoadRecoversProviderPanic(t *testing.T) {
	t.Parallel()

	p := post.ProviderFunc(func(context.Context) ([]post.Post, error) { panic("bad data") })
	res := Load(context.Background(), p, 0, 7)

	var ff *FetchFailure
	require.ErrorAs(t, res.Err, &ff)
	require.Contains(t, ff.Error(), "bad data")
	require.Equal(t, 7, res.Attempt)

	s, _ := Start()
	for s.Attempt() < 7 {
		s, _ = Transition(s, LoadResult{Attempt: s.Attempt(), Err: errors.New("x")})
		s, _ = Transition(s, Retry{})
	}
	s, _ = Transition(s, res)
	require.Equal(t, KindError, s.Kind())
}

func TestLoadNilProvider(t *testing.T) {
	t.Parallel()

	res := Load(context.Background(), nil, 0, 1)
	require.ErrorIs(t, res.Err, errNoProvider)
}

func TestLoadWaitsForDelay(t *testing.T) {
	t.Parallel()

	called := time.Time{}
	p := post.ProviderFunc(func(context.Context) ([]post.Post, error) {
		called = time.Now()
		return samplePosts(), nil
	})
	start := time.Now()
	res := Load(context.Background(), p, 20*time.Millisecond, 1)
	require.NoError(t, res.Err)
	require.GreaterOrEqual(t, called.Sub(start), 20*time.Millisecond)
}

func TestLoadCancelledDuringDelay(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	p := post.ProviderFunc(func(context.Context) ([]post.Post, error) {
		called = true
		return samplePosts(), nil
	})
	res := Load(ctx, p, time.Hour, 1)
	require.ErrorIs(t, res.Err, context.Canceled)
	require.False(t, called)
}

func TestFetchFailureWithoutCause(t *testing.T) {
	t.Parallel()

	require.Equal(t, "fetch posts", (&FetchFailure{}).Error())
}
