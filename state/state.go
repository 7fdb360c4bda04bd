// Package state holds the client-facing generation state: the current
// brand identity, a loading flag, an error message, and the loading
// steps. Updates are modeled as events applied by a pure reducer, with
// a small concurrency-safe holder around the current snapshot.
package state

import "github.com/brandforge/brandforge/domain"

// State is one immutable snapshot of the client-facing state.
type State struct {
	Identity *domain.BrandIdentity `json:"identity"`
	Loading  bool                  `json:"loading"`
	Error    string                `json:"error,omitempty"`
	Steps    []domain.LoadingStep  `json:"steps,omitempty"`
}

// Event is a state transition. Exactly the operations the UI performs:
// publish an identity, patch image URLs in place, toggle loading, set
// an error, reset.
type Event interface {
	isEvent()
}

// SetIdentity publishes a full identity and clears any error.
type SetIdentity struct {
	Identity *domain.BrandIdentity
}

// SetLoading sets the loading flag.
type SetLoading struct {
	Loading bool
}

// SetError sets the error message and clears the loading flag.
type SetError struct {
	Message string
}

// UpdateLogo patches the identity's logo URL.
type UpdateLogo struct {
	URL string
}

// UpdateSocialImage patches one social post's image URL. An
// out-of-range index is a no-op.
type UpdateSocialImage struct {
	Index int
	URL   string
}

// SetSteps replaces the loading step snapshot.
type SetSteps struct {
	Steps []domain.LoadingStep
}

// Reset returns the state to empty.
type Reset struct{}

func (SetIdentity) isEvent()       {}
func (SetLoading) isEvent()        {}
func (SetError) isEvent()          {}
func (UpdateLogo) isEvent()        {}
func (UpdateSocialImage) isEvent() {}
func (SetSteps) isEvent()          {}
func (Reset) isEvent()             {}

// Apply is the pure reducer: it returns the next state and never
// mutates its input. Identity patches operate on a copy.
func Apply(s State, ev Event) State {
	switch e := ev.(type) {
	case SetIdentity:
		s.Identity = e.Identity.Clone()
		s.Error = ""
	case SetLoading:
		s.Loading = e.Loading
	case SetError:
		s.Error = e.Message
		s.Loading = false
	case UpdateLogo:
		if s.Identity == nil {
			return s
		}
		next := s.Identity.Clone()
		next.LogoURL = e.URL
		s.Identity = next
	case UpdateSocialImage:
		if s.Identity == nil || e.Index < 0 || e.Index >= len(s.Identity.SocialPosts) {
			return s
		}
		next := s.Identity.Clone()
		next.SocialPosts[e.Index].ImageURL = e.URL
		s.Identity = next
	case SetSteps:
		s.Steps = append([]domain.LoadingStep(nil), e.Steps...)
	case Reset:
		return State{}
	}
	return s
}
