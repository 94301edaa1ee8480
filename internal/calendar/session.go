package calendar

import (
	"sync"
	"time"
)

// Session is the per-portal-session view state: the displayed month and
// its event list. Every load takes a generation from Begin; only the load
// holding the latest generation may Commit.
type Session struct {
	mu         sync.Mutex
	generation uint64
	year       int
	month      time.Month
	events     []Event
	loaded     bool
}

func NewSession() *Session {
	return &Session{}
}

// Displayed returns the month currently shown, if any load has committed.
func (s *Session) Displayed() (int, time.Month, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.year, s.month, s.loaded
}

// Events returns a copy of the displayed month's events.
func (s *Session) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event(nil), s.events...)
}

// Generation returns the latest generation handed out.
func (s *Session) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Begin starts a new load and invalidates any load still in flight.
func (s *Session) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	return s.generation
}

// Commit stores the result of the load identified by gen. It returns
// ErrStaleResult and leaves the session untouched when a newer load began.
func (s *Session) Commit(gen uint64, year int, month time.Month, events []Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return ErrStaleResult
	}
	s.year, s.month = year, month
	s.events = append([]Event(nil), events...)
	s.loaded = true
	return nil
}

// Current reports whether gen is still the latest generation.
func (s *Session) Current(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gen == s.generation
}
