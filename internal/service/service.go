package service

import (
	"context"
	"errors"

	"github.com/sidereusnuntius/snooze/internal/api"
	"github.com/sidereusnuntius/snooze/internal/domain"
	"github.com/sidereusnuntius/snooze/internal/session"
)

var (
	// ErrNotLoggedIn is returned by operations that need a session
	// credential when nobody is logged in.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrInvalidInput wraps local form-validation failures, mirroring the
	// constraints the service would reject anyway.
	ErrInvalidInput = errors.New("invalid")
)

// Service coordinates the remote story service with the in-memory model.
// Every mutation follows the same discipline: the remote call first, local
// state only after it succeeds, so a failed call never loses or invents
// local data.
type Service interface {
	// RefreshStories rebuilds the global story list from a full fetch.
	RefreshStories(ctx context.Context) error
	// AllStories returns the global list in server order.
	AllStories() []domain.Story
	// StoryByID returns the story from the local list, falling back to a
	// fetch when it is not known yet.
	StoryByID(ctx context.Context, id string) (domain.Story, error)
	// SubmitStory creates a story on the service and, on success, adds it
	// to the global list and the current user's own stories.
	SubmitStory(ctx context.Context, draft api.NewStory) (domain.Story, error)
	// DeleteStory removes a story remotely and then from the global list,
	// the user's own stories and their favorites; a remote failure leaves
	// all three untouched.
	DeleteStory(ctx context.Context, id string) error

	// Signup creates an account and logs the new user in. The returned
	// credentials are what the caller should persist.
	Signup(ctx context.Context, username, password, name string) (session.Credentials, error)
	// Login authenticates and installs the user as current.
	Login(ctx context.Context, username, password string) (session.Credentials, error)
	// RestoreSession resumes a session from stored credentials. A stale or
	// rejected credential yields (nil, nil), never an error: the caller
	// treats absence as logged out.
	RestoreSession(ctx context.Context, creds session.Credentials) (*domain.User, error)
	// Logout clears the current user. The caller is responsible for
	// clearing the persisted credentials.
	Logout()
	// CurrentUser returns the logged-in user, or nil.
	CurrentUser() *domain.User
	// OwnStories returns the logged-in user's submissions, nil when
	// logged out. Reads of the user's lists go through the service so
	// they hold the same lock the mutators take.
	OwnStories() []domain.Story

	// AddFavorite marks a story as a favorite. Idempotent: marking an
	// existing favorite is a success and makes no remote call.
	AddFavorite(ctx context.Context, id string) error
	// RemoveFavorite unmarks a favorite, mutating locally only after the
	// remote delete succeeds.
	RemoveFavorite(ctx context.Context, id string) error
	// Favorites returns the logged-in user's favorites, nil when logged
	// out.
	Favorites() []domain.Story
	// IsFavorite is a local membership check. No network.
	IsFavorite(id string) bool
}
