// Package validate mirrors the story service's own input constraints so a
// doomed request can be refused before it goes over the wire. It deliberately
// checks nothing the service does not: the service stays the authority on
// what is acceptable.
package validate

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const MaxUsernameLen = 55

func Username(username string) error {
	switch {
	case username == "":
		return errors.New("empty username")
	case len(username) > MaxUsernameLen:
		return fmt.Errorf("username too long; max %d characters", MaxUsernameLen)
	case strings.ContainsAny(username, " \t\n"):
		return errors.New("username must not contain whitespace")
	}
	return nil
}

func Password(password string) error {
	if password == "" {
		return errors.New("empty password")
	}
	return nil
}

func StoryTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.New("empty title")
	}
	return nil
}

func StoryAuthor(author string) error {
	if strings.TrimSpace(author) == "" {
		return errors.New("empty author")
	}
	return nil
}

// StoryURL requires an absolute http or https URL with a host. Enforcing
// this on submission guarantees hostname parsing cannot fail later for
// stories created through this client.
func StoryURL(raw string) error {
	if raw == "" {
		return errors.New("empty url")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("url must start with http:// or https://")
	}
	if u.Host == "" {
		return errors.New("url has no host")
	}
	return nil
}

func SignUpForm(username, password string) error {
	return errors.Join(Username(username), Password(password))
}

func LoginForm(username, password string) error {
	return errors.Join(Username(username), Password(password))
}

func StoryForm(author, title, rawURL string) error {
	return errors.Join(StoryAuthor(author), StoryTitle(title), StoryURL(rawURL))
}
