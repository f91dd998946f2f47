package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/sidereusnuntius/snooze/internal/domain"
	"github.com/sidereusnuntius/snooze/internal/service"
)

func (s *AppService) AddFavorite(ctx context.Context, id string) error {
	user := s.state.Session.Current()
	if user == nil {
		return service.ErrNotLoggedIn
	}

	s.mu.Lock()
	already := user.IsFavorite(id)
	story, known := s.state.Stories.ByID(id)
	s.mu.Unlock()

	// Marking an existing favorite is a success, not a duplicate.
	if already {
		return nil
	}

	if !known {
		var err error
		if story, err = s.state.API.StoryByID(ctx, id); err != nil {
			return err
		}
	}

	if err := s.state.API.AddFavorite(ctx, user.Token, user.Username, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	user.Favorites.Add(story)

	log.Debug().Str("story", id).Str("user", user.Username).Msg("favorite added")
	return nil
}

// RemoveFavorite issues the remote delete first and drops the local entry
// only once it succeeds, same ordering as AddFavorite. Removing eagerly
// would leave the list out of step with the server on failure.
func (s *AppService) RemoveFavorite(ctx context.Context, id string) error {
	user := s.state.Session.Current()
	if user == nil {
		return service.ErrNotLoggedIn
	}

	if err := s.state.API.RemoveFavorite(ctx, user.Token, user.Username, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	user.Favorites.RemoveByID(id)

	log.Debug().Str("story", id).Str("user", user.Username).Msg("favorite removed")
	return nil
}

// Favorites copies the user's list under the same lock the mutators hold.
func (s *AppService) Favorites() []domain.Story {
	user := s.state.Session.Current()
	if user == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return user.Favorites.Stories()
}

func (s *AppService) IsFavorite(id string) bool {
	user := s.state.Session.Current()
	if user == nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return user.IsFavorite(id)
}
