package core

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/sidereusnuntius/snooze/internal/api"
	"github.com/sidereusnuntius/snooze/internal/domain"
	"github.com/sidereusnuntius/snooze/internal/service"
	"github.com/sidereusnuntius/snooze/internal/validate"
)

func (s *AppService) RefreshStories(ctx context.Context) error {
	stories, err := s.state.API.Stories(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Stories.Replace(stories)
	return nil
}

func (s *AppService) AllStories() []domain.Story {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Stories.Stories()
}

func (s *AppService) OwnStories() []domain.Story {
	user := s.state.Session.Current()
	if user == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return user.OwnStories.Stories()
}

func (s *AppService) StoryByID(ctx context.Context, id string) (domain.Story, error) {
	s.mu.Lock()
	story, ok := s.state.Stories.ByID(id)
	s.mu.Unlock()
	if ok {
		return story, nil
	}
	return s.state.API.StoryByID(ctx, id)
}

func (s *AppService) SubmitStory(ctx context.Context, draft api.NewStory) (domain.Story, error) {
	user := s.state.Session.Current()
	if user == nil {
		return domain.Story{}, service.ErrNotLoggedIn
	}

	if err := validate.StoryForm(draft.Author, draft.Title, draft.URL); err != nil {
		return domain.Story{}, fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
	}

	created, err := s.state.API.CreateStory(ctx, user.Token, draft)
	if err != nil {
		return domain.Story{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Stories.Add(created)
	user.OwnStories.Add(created)

	log.Debug().Str("story", created.ID).Str("user", user.Username).Msg("story submitted")
	return created, nil
}

func (s *AppService) DeleteStory(ctx context.Context, id string) error {
	user := s.state.Session.Current()
	if user == nil {
		return service.ErrNotLoggedIn
	}

	if err := s.state.API.DeleteStory(ctx, user.Token, id); err != nil {
		return err
	}

	// The story may appear in up to three collections; all of them are
	// updated before this returns.
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Stories.RemoveByID(id)
	user.OwnStories.RemoveByID(id)
	user.Favorites.RemoveByID(id)

	log.Debug().Str("story", id).Str("user", user.Username).Msg("story deleted")
	return nil
}
