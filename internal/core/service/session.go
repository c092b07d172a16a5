package service

import (
	"sync"

	"github.com/plantdesk/portalctl/internal/core/domain"
	"github.com/plantdesk/portalctl/internal/core/ports"
)

// SessionState is the replay-latest broadcast cell for the current
// authenticated user. It is constructed once at application start and
// injected into every consumer; there is no ambient global.
//
// Set fans out synchronously to all observers registered at the time of the
// call, in registration order, before returning. The design is single
// UI-thread; the mutex only protects against network-callback goroutines
// touching the cell concurrently.
type SessionState struct {
	mu        sync.Mutex
	current   *domain.User
	observers []sessionObserver
	nextID    int
}

type sessionObserver struct {
	id int
	fn ports.Observer
}

var _ ports.Session = (*SessionState)(nil)

// NewSessionState returns an empty session (no authenticated user known).
func NewSessionState() *SessionState {
	return &SessionState{}
}

// Current returns a synchronous snapshot of the latest value.
func (s *SessionState) Current() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Set publishes user to every currently-subscribed observer before
// returning. Emission order equals call order; no coalescing.
func (s *SessionState) Set(user *domain.User) {
	s.mu.Lock()
	s.current = user
	targets := make([]sessionObserver, len(s.observers))
	copy(targets, s.observers)
	s.mu.Unlock()

	for _, o := range targets {
		o.fn(user)
	}
}

// Subscribe registers fn and immediately delivers the current value
// (replay-latest). The returned function removes the observer; calling it
// more than once is harmless.
func (s *SessionState) Subscribe(fn ports.Observer) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers = append(s.observers, sessionObserver{id: id, fn: fn})
	current := s.current
	s.mu.Unlock()

	fn(current)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, o := range s.observers {
			if o.id == id {
				s.observers = append(s.observers[:i], s.observers[i+1:]...)
				return
			}
		}
	}
}
