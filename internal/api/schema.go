package api

import (
	"fmt"
	"time"

	"github.com/sidereusnuntius/snooze/internal/domain"
)

// Wire schemas for the story service. Field names follow the service's JSON,
// which differs from the client-side model in two places: stories carry a
// "storyId", and a user's own stories arrive under "stories" rather than
// "ownStories". Presence of the fields the client depends on is checked here,
// at the deserialization boundary, so a misshapen payload surfaces as
// ErrInvalidInput instead of propagating empty values.

type storyPayload struct {
	StoryID   string    `json:"storyId"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	URL       string    `json:"url"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

func (p storyPayload) toStory() (domain.Story, error) {
	if p.StoryID == "" {
		return domain.Story{}, fmt.Errorf("%w: story payload without storyId", ErrInvalidInput)
	}
	if p.URL == "" {
		return domain.Story{}, fmt.Errorf("%w: story %s has no url", ErrInvalidInput, p.StoryID)
	}
	return domain.Story{
		ID:        p.StoryID,
		Title:     p.Title,
		Author:    p.Author,
		URL:       p.URL,
		Username:  p.Username,
		CreatedAt: p.CreatedAt,
	}, nil
}

type userPayload struct {
	Username  string         `json:"username"`
	Name      string         `json:"name"`
	CreatedAt time.Time      `json:"createdAt"`
	Favorites []storyPayload `json:"favorites"`
	Stories   []storyPayload `json:"stories"`
}

func (p userPayload) toUser(token string) (*domain.User, error) {
	if p.Username == "" {
		return nil, fmt.Errorf("%w: user payload without username", ErrInvalidInput)
	}

	favorites, err := toStories(p.Favorites)
	if err != nil {
		return nil, err
	}
	own, err := toStories(p.Stories)
	if err != nil {
		return nil, err
	}
	return domain.NewUser(p.Username, p.Name, p.CreatedAt, favorites, own, token), nil
}

func toStories(payloads []storyPayload) ([]domain.Story, error) {
	stories := make([]domain.Story, 0, len(payloads))
	for _, p := range payloads {
		s, err := p.toStory()
		if err != nil {
			return nil, err
		}
		stories = append(stories, s)
	}
	return stories, nil
}

type storiesResponse struct {
	Stories []storyPayload `json:"stories"`
}

type storyResponse struct {
	Story storyPayload `json:"story"`
}

type userResponse struct {
	User userPayload `json:"user"`
}

type authResponse struct {
	User  userPayload `json:"user"`
	Token string      `json:"token"`
}

func (r authResponse) toUser() (*domain.User, error) {
	if r.Token == "" {
		return nil, fmt.Errorf("%w: auth response without token", ErrInvalidInput)
	}
	return r.User.toUser(r.Token)
}

type tokenBody struct {
	Token string `json:"token"`
}

type newStoryPayload struct {
	Author string `json:"author"`
	Title  string `json:"title"`
	URL    string `json:"url"`
}

type createStoryRequest struct {
	Token string          `json:"token"`
	Story newStoryPayload `json:"story"`
}

type signupPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type signupRequest struct {
	User signupPayload `json:"user"`
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginRequest struct {
	User loginPayload `json:"user"`
}
