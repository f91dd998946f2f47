// Package api speaks the story service's REST contract. It owns the wire
// schemas and translates HTTP failures into error kinds the rest of the
// client can match with errors.Is.
package api

import (
	"context"
	"errors"

	"github.com/sidereusnuntius/snooze/internal/domain"
)

var (
	// ErrUnauthorized means the service rejected the session credential.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound means the story or user identifier is unknown server-side.
	ErrNotFound = errors.New("not found")
	// ErrConflict means the username is already taken.
	ErrConflict = errors.New("conflict")
	// ErrInvalidInput means the service refused the payload, or the
	// response was missing a field the client requires.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnavailable wraps transport-level failures: the service could not
	// be reached at all.
	ErrUnavailable = errors.New("service unavailable")
)

// NewStory carries the fields of a story submission.
type NewStory struct {
	Author string
	Title  string
	URL    string
}

// Client is the remote story service. Users returned by Signup, Login and
// UserByUsername come back with their Token populated.
type Client interface {
	// Stories retrieves the full current collection, server order
	// preserved. No credential required.
	Stories(ctx context.Context) ([]domain.Story, error)
	// StoryByID retrieves a single story.
	StoryByID(ctx context.Context, id string) (domain.Story, error)
	// CreateStory submits a story and returns it as the server stored it.
	CreateStory(ctx context.Context, token string, story NewStory) (domain.Story, error)
	// DeleteStory removes a story the credential is allowed to delete.
	DeleteStory(ctx context.Context, token, id string) error

	// Signup creates an account and returns the fresh user.
	Signup(ctx context.Context, username, password, name string) (*domain.User, error)
	// Login authenticates with a password.
	Login(ctx context.Context, username, password string) (*domain.User, error)
	// UserByUsername re-fetches a user with a previously issued token,
	// used to resume a session without a password.
	UserByUsername(ctx context.Context, token, username string) (*domain.User, error)

	AddFavorite(ctx context.Context, token, username, storyID string) error
	RemoveFavorite(ctx context.Context, token, username, storyID string) error
}
