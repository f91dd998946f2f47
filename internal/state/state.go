// Package state gathers the process-wide singletons into one explicit
// context object instead of ambient globals. Construction stays in main,
// and tests build a fresh context each time.
package state

import (
	"github.com/sidereusnuntius/snooze/internal/api"
	"github.com/sidereusnuntius/snooze/internal/config"
	"github.com/sidereusnuntius/snooze/internal/domain"
	"github.com/sidereusnuntius/snooze/internal/session"
)

type State struct {
	Config  config.Configuration
	API     api.Client
	Session *session.Store
	// Stories is the global story list, rebuilt wholesale on refresh and
	// mutated in place by submissions and deletions.
	Stories *domain.StoryList
}

func New(cfg config.Configuration, client api.Client) *State {
	return &State{
		Config:  cfg,
		API:     client,
		Session: session.NewStore(),
		Stories: domain.NewStoryList(nil),
	}
}
