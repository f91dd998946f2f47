// Package session owns the single current-user reference. At most one user
// is authenticated at a time, process-wide; the browser cookie carries the
// Credentials needed to rebuild it after a restart.
package session

import (
	"sync"

	"github.com/sidereusnuntius/snooze/internal/domain"
)

// Credentials is the record persisted across restarts: just enough to resume
// a session without a password. It is stored in the session cookie and
// nowhere else.
type Credentials struct {
	Token    string
	Username string
}

func (c Credentials) Empty() bool {
	return c.Token == "" || c.Username == ""
}

// Store holds the current user, or nil when logged out. Handlers run
// concurrently, so access is guarded.
type Store struct {
	mu      sync.RWMutex
	current *domain.User
}

func NewStore() *Store {
	return &Store{}
}

// Current returns the authenticated user, or nil when logged out.
func (s *Store) Current() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Login installs u as the current user, replacing any previous one.
func (s *Store) Login(u *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = u
}

// Logout clears the current user.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

func (s *Store) LoggedIn() bool {
	return s.Current() != nil
}
