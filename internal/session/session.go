package session

import "sync"

// Session holds the opaque session credential and sign-in state. It is
// constructed once at startup from the persisted credential and injected
// into every component that makes account-scoped calls; nothing reads
// ambient global state.
type Session struct {
	mu       sync.RWMutex
	id       string
	username string
}

// New creates a session seeded with a persisted credential, if any.
// An empty id means signed out.
func New(id, username string) *Session {
	return &Session{id: id, username: username}
}

// ID returns the session credential ("" when signed out)
func (s *Session) ID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}

// Username returns the signed-in user's name ("" when signed out)
func (s *Session) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username
}

// SignedIn reports whether a session credential is held
func (s *Session) SignedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id != ""
}

// Establish records a freshly exchanged session credential
func (s *Session) Establish(id, username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = id
	s.username = username
}

// Clear drops the session credential on sign-out
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = ""
	s.username = ""
}
