package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const defaultServiceURL = "https://hack-or-snooze-v3.herokuapp.com"

// devSessionSecret keys the session cookie when no secret is configured.
// Fine on a personal machine, not for anything shared.
const devSessionSecret = "snooze-insecure-dev-secret-change-me"

type Configuration struct {
	// ServiceURL is the base URL of the hosted story service. All
	// persistence and business logic live there; this client only holds a
	// session credential locally.
	ServiceURL string
	// ListenAddr is the address the web UI is served on.
	ListenAddr string
	// SessionSecret keys the cookie that caches the login credential
	// between restarts.
	SessionSecret string
	// RequestTimeout bounds every call to the story service. Zero disables
	// the deadline.
	RequestTimeout time.Duration
	// SiteName is shown in the navigation bar and page titles.
	SiteName string
	// Debug lowers the log level to debug.
	Debug bool
}

// UsingDevSecret reports whether the cookie secret is the built-in default.
func (c Configuration) UsingDevSecret() bool {
	return c.SessionSecret == devSessionSecret
}

// ReadConfig loads the configuration from an optional snooze.yaml (working
// directory or ~/.config/snooze), with SNOOZE_* environment variables taking
// precedence and defaults filling the rest.
func ReadConfig() (Configuration, error) {
	v := viper.New()
	v.SetConfigName("snooze")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/snooze")

	v.SetEnvPrefix("snooze")
	v.AutomaticEnv()

	v.SetDefault("service_url", defaultServiceURL)
	v.SetDefault("listen_addr", "localhost:8080")
	v.SetDefault("session_secret", devSessionSecret)
	v.SetDefault("request_timeout", 15*time.Second)
	v.SetDefault("site_name", "Hack or Snooze")
	v.SetDefault("debug", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Configuration{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Configuration{
		ServiceURL:     v.GetString("service_url"),
		ListenAddr:     v.GetString("listen_addr"),
		SessionSecret:  v.GetString("session_secret"),
		RequestTimeout: v.GetDuration("request_timeout"),
		SiteName:       v.GetString("site_name"),
		Debug:          v.GetBool("debug"),
	}

	if cfg.ServiceURL == "" {
		return Configuration{}, errors.New("service_url must not be empty")
	}
	return cfg, nil
}
