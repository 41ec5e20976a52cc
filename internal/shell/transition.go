package shell

import "github.com/jask/blogview/internal/post"

// Event is an input to Transition.
type Event interface {
	isEvent()
}

// LoadResult reports the outcome of a load. Err is set on failure; results
// from a stale attempt are ignored.
type LoadResult struct {
	Attempt int
	Posts   []post.Post
	Err     error
}

// Retry asks for another load from the error panel.
type Retry struct{}

// MoveCursor moves the list focus by Delta cards, clamped to the list.
type MoveCursor struct{ Delta int }

// SelectCurrent opens the focused card.
type SelectCurrent struct{}

// SelectPost opens the post with the given id.
type SelectPost struct{ ID string }

// Back returns from a post to the list.
type Back struct{}

func (LoadResult) isEvent()    {}
func (Retry) isEvent()         {}
func (MoveCursor) isEvent()    {}
func (SelectCurrent) isEvent() {}
func (SelectPost) isEvent()    {}
func (Back) isEvent()          {}

// Transition applies e to s. Events that make no sense for the current view
// leave the state untouched.
func Transition(s State, e Event) (State, Effect) {
	switch s.kind {
	case KindLoading:
		if r, ok := e.(LoadResult); ok && r.Attempt == s.attempt {
			if r.Err != nil {
				return State{kind: KindError, attempt: s.attempt, message: FailureMessage}, EffectNone
			}
			posts := make([]post.Post, len(r.Posts))
			copy(posts, r.Posts)
			return State{kind: KindList, attempt: s.attempt, posts: posts}, EffectNone
		}
	case KindError:
		if _, ok := e.(Retry); ok {
			return State{kind: KindLoading, attempt: s.attempt + 1}, EffectFetch
		}
	case KindList:
		switch ev := e.(type) {
		case MoveCursor:
			s.cursor = clamp(s.cursor+ev.Delta, 0, len(s.posts)-1)
			return s, EffectNone
		case SelectCurrent:
			if len(s.posts) == 0 {
				return s, EffectNone
			}
			return s.open(s.cursor), EffectNone
		case SelectPost:
			for i := range s.posts {
				if s.posts[i].ID == ev.ID {
					return s.open(i), EffectNone
				}
			}
		}
	case KindDetail:
		if _, ok := e.(Back); ok {
			s.kind = KindList
			s.selected = post.Post{}
			return s, EffectNone
		}
	}
	return s, EffectNone
}

func (s State) open(i int) State {
	s.kind = KindDetail
	s.cursor = i
	s.selected = s.posts[i]
	return s
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
