// Package shell holds the viewer's state machine.
//
// The state is a tagged variant: exactly one of Loading, Error, List or
// Detail is active, and the payload for the other variants does not exist.
// State values only change through Transition, which is pure; the single side
// effect it can ask for (loading posts) is returned to the caller as an
// Effect.
package shell

import "github.com/jask/blogview/internal/post"

// Kind discriminates the active view.
type Kind int

const (
	KindLoading Kind = iota
	KindError
	KindList
	KindDetail
)

func (k Kind) String() string {
	switch k {
	case KindLoading:
		return "loading"
	case KindError:
		return "error"
	case KindList:
		return "list"
	case KindDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// FailureMessage is the only text a user ever sees for a failed load.
const FailureMessage = "Failed to load blog posts."

// State is the application view state. The zero value is not a valid state;
// use Start.
type State struct {
	kind    Kind
	attempt int

	// Error
	message string

	// List and Detail
	posts  []post.Post
	cursor int

	// Detail
	selected post.Post
}

// Effect is work Transition asks the caller to perform.
type Effect int

const (
	EffectNone Effect = iota
	// EffectFetch starts a load for State.Attempt().
	EffectFetch
)

// Start returns the initial Loading state and asks for the first load.
func Start() (State, Effect) {
	return State{kind: KindLoading, attempt: 1}, EffectFetch
}

func (s State) Kind() Kind { return s.kind }

// Attempt is the number of the most recent load, starting at 1.
func (s State) Attempt() int { return s.attempt }

// Message returns the user-facing error text while in Error.
func (s State) Message() (string, bool) {
	if s.kind != KindError {
		return "", false
	}
	return s.message, true
}

// Posts returns a copy of the loaded posts in List and Detail, nil otherwise.
func (s State) Posts() []post.Post {
	if s.kind != KindList && s.kind != KindDetail {
		return nil
	}
	out := make([]post.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// Cursor is the index of the focused card in List (and the card that was
// opened, in Detail).
func (s State) Cursor() int { return s.cursor }

// Selected returns the open post while in Detail.
func (s State) Selected() (post.Post, bool) {
	if s.kind != KindDetail {
		return post.Post{}, false
	}
	return s.selected, true
}
