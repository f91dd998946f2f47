package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/sidereusnuntius/snooze/internal/api"
	"github.com/sidereusnuntius/snooze/internal/domain"
	"github.com/sidereusnuntius/snooze/internal/service"
	"github.com/sidereusnuntius/snooze/internal/session"
	"github.com/sidereusnuntius/snooze/internal/validate"
)

func (s *AppService) Signup(ctx context.Context, username, password, name string) (session.Credentials, error) {
	username = strings.TrimSpace(username)
	name = strings.TrimSpace(name)

	if err := validate.SignUpForm(username, password); err != nil {
		return session.Credentials{}, fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
	}

	user, err := s.state.API.Signup(ctx, username, password, name)
	if err != nil {
		return session.Credentials{}, err
	}
	return s.install(user), nil
}

func (s *AppService) Login(ctx context.Context, username, password string) (session.Credentials, error) {
	username = strings.TrimSpace(username)

	if err := validate.LoginForm(username, password); err != nil {
		return session.Credentials{}, fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
	}

	user, err := s.state.API.Login(ctx, username, password)
	if err != nil {
		return session.Credentials{}, err
	}
	return s.install(user), nil
}

// RestoreSession converts every remote rejection into an absent result. A
// stale token on startup means "not logged in", never a crash; only the
// reason is worth logging.
func (s *AppService) RestoreSession(ctx context.Context, creds session.Credentials) (*domain.User, error) {
	if creds.Empty() {
		return nil, nil
	}

	user, err := s.state.API.UserByUsername(ctx, creds.Token, creds.Username)
	if err != nil {
		event := log.Debug()
		if errors.Is(err, api.ErrUnavailable) {
			event = log.Warn()
		}
		event.Err(err).Str("user", creds.Username).Msg("stored credentials rejected")
		return nil, nil
	}

	s.state.Session.Login(user)
	return user, nil
}

func (s *AppService) install(user *domain.User) session.Credentials {
	s.state.Session.Login(user)
	log.Info().Str("user", user.Username).Msg("logged in")
	return session.Credentials{Token: user.Token, Username: user.Username}
}
