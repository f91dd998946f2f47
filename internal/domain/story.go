package domain

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

var ErrMalformedURL = errors.New("malformed story url")

// Story is a single submitted link. The server assigns the ID; every field
// is immutable from the client's side, stories are only created and deleted.
type Story struct {
	ID        string
	Title     string
	Author    string
	URL       string
	Username  string
	CreatedAt time.Time
}

// Hostname parses the authority component out of the story's URL. Stories
// created through this client have their URL validated on submission, so an
// error here means the story came from the server in a shape the original
// submitter never checked.
func (s Story) Hostname() (string, error) {
	u, err := url.Parse(s.URL)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrMalformedURL, s.URL)
	}
	if !u.IsAbs() || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrMalformedURL, s.URL)
	}
	return u.Hostname(), nil
}
