package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sidereusnuntius/snooze/internal/domain"
)

// HTTPClient implements Client over plain JSON HTTP against a single base
// URL.
type HTTPClient struct {
	base    *url.URL
	client  *http.Client
	timeout time.Duration
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the service at serviceURL. A nil
// httpClient falls back to http.DefaultClient. A zero timeout disables
// per-call deadlines.
func NewHTTPClient(serviceURL string, httpClient *http.Client, timeout time.Duration) (*HTTPClient, error) {
	base, err := url.Parse(serviceURL)
	if err != nil {
		return nil, fmt.Errorf("parse service url: %w", err)
	}
	if !base.IsAbs() || base.Host == "" {
		return nil, fmt.Errorf("service url %q is not absolute", serviceURL)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPClient{
		base:    base,
		client:  httpClient,
		timeout: timeout,
	}, nil
}

func (c *HTTPClient) Stories(ctx context.Context) ([]domain.Story, error) {
	var res storiesResponse
	if err := c.do(ctx, http.MethodGet, c.base.JoinPath("stories"), nil, &res); err != nil {
		return nil, err
	}

	stories := make([]domain.Story, 0, len(res.Stories))
	for _, p := range res.Stories {
		s, err := p.toStory()
		if err != nil {
			return nil, err
		}
		stories = append(stories, s)
	}
	return stories, nil
}

func (c *HTTPClient) StoryByID(ctx context.Context, id string) (domain.Story, error) {
	var res storyResponse
	if err := c.do(ctx, http.MethodGet, c.base.JoinPath("stories", id), nil, &res); err != nil {
		return domain.Story{}, err
	}
	return res.Story.toStory()
}

func (c *HTTPClient) CreateStory(ctx context.Context, token string, story NewStory) (domain.Story, error) {
	req := createStoryRequest{
		Token: token,
		Story: newStoryPayload{
			Author: story.Author,
			Title:  story.Title,
			URL:    story.URL,
		},
	}

	var res storyResponse
	if err := c.do(ctx, http.MethodPost, c.base.JoinPath("stories"), req, &res); err != nil {
		return domain.Story{}, err
	}
	return res.Story.toStory()
}

func (c *HTTPClient) DeleteStory(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, c.base.JoinPath("stories", id), tokenBody{Token: token}, nil)
}

func (c *HTTPClient) Signup(ctx context.Context, username, password, name string) (*domain.User, error) {
	req := signupRequest{User: signupPayload{
		Username: username,
		Password: password,
		Name:     name,
	}}

	var res authResponse
	if err := c.do(ctx, http.MethodPost, c.base.JoinPath("signup"), req, &res); err != nil {
		return nil, err
	}
	return res.toUser()
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*domain.User, error) {
	req := loginRequest{User: loginPayload{
		Username: username,
		Password: password,
	}}

	var res authResponse
	if err := c.do(ctx, http.MethodPost, c.base.JoinPath("login"), req, &res); err != nil {
		return nil, err
	}
	return res.toUser()
}

func (c *HTTPClient) UserByUsername(ctx context.Context, token, username string) (*domain.User, error) {
	u := c.base.JoinPath("users", username)
	u.RawQuery = url.Values{"token": {token}}.Encode()

	var res userResponse
	if err := c.do(ctx, http.MethodGet, u, nil, &res); err != nil {
		return nil, err
	}
	// The payload carries no token; the caller's stored one stays valid.
	return res.User.toUser(token)
}

func (c *HTTPClient) AddFavorite(ctx context.Context, token, username, storyID string) error {
	u := c.base.JoinPath("users", username, "favorites", storyID)
	return c.do(ctx, http.MethodPost, u, tokenBody{Token: token}, nil)
}

func (c *HTTPClient) RemoveFavorite(ctx context.Context, token, username, storyID string) error {
	u := c.base.JoinPath("users", username, "favorites", storyID)
	return c.do(ctx, http.MethodDelete, u, tokenBody{Token: token}, nil)
}

// do sends one request and decodes the response into out, if out is non-nil.
// Any status >= 400 becomes one of the package's error kinds.
func (c *HTTPClient) do(ctx context.Context, method string, u *url.URL, body, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("url", u.String()).Msg("story service unreachable")
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return c.statusError(res, method, u)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: undecodable response body: %v", ErrInvalidInput, err)
	}
	return nil
}

func (c *HTTPClient) statusError(res *http.Response, method string, u *url.URL) error {
	// The service wraps failures as {"error": {"status", "title", "message"}}.
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	_ = json.NewDecoder(res.Body).Decode(&body)

	message := body.Error.Message
	if message == "" {
		message = res.Status
	}

	log.Error().
		Int("status", res.StatusCode).
		Str("method", method).
		Str("url", u.String()).
		Str("message", message).
		Msg("story service error")

	switch res.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, message)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrInvalidInput, message)
	default:
		return fmt.Errorf("%w: %d %s", ErrUnavailable, res.StatusCode, message)
	}
}
