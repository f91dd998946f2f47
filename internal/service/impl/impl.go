package core

import (
	"sync"

	"github.com/sidereusnuntius/snooze/internal/domain"
	"github.com/sidereusnuntius/snooze/internal/service"
	"github.com/sidereusnuntius/snooze/internal/state"
)

// AppService implements service.Service on top of the shared application
// state. Remote calls run outside the lock, so overlapping requests may have
// calls in flight concurrently; local mutation happens under it, after the
// call has succeeded, which keeps the collections consistent with each other
// no matter how responses interleave.
type AppService struct {
	mu    sync.Mutex
	state *state.State
}

func New(st *state.State) service.Service {
	return &AppService{state: st}
}

func (s *AppService) CurrentUser() *domain.User {
	return s.state.Session.Current()
}

func (s *AppService) Logout() {
	s.state.Session.Logout()
}
