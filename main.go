package main

import (
	"context"
	"encoding/gob"
	"net/http"
	"os"
	"time"

	"github.com/alexedwards/scs"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	zero "github.com/rs/zerolog/log"

	"github.com/sidereusnuntius/snooze/internal/api"
	"github.com/sidereusnuntius/snooze/internal/config"
	"github.com/sidereusnuntius/snooze/internal/service"
	core "github.com/sidereusnuntius/snooze/internal/service/impl"
	"github.com/sidereusnuntius/snooze/internal/session"
	"github.com/sidereusnuntius/snooze/internal/state"
	"github.com/sidereusnuntius/snooze/internal/web"
)

func main() {
	zero.Logger = zero.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.ReadConfig()
	if err != nil {
		zero.Fatal().Err(err).Msg("configuration error")
	}
	if !cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	if cfg.UsingDevSecret() {
		zero.Warn().Msg("using the built-in session secret; set session_secret for anything beyond local use")
	}

	client, err := api.NewHTTPClient(cfg.ServiceURL, &http.Client{}, cfg.RequestTimeout)
	if err != nil {
		zero.Fatal().Err(err).Str("url", cfg.ServiceURL).Msg("invalid service url")
	}

	st := state.New(cfg, client)
	svc := core.New(st)

	// The session cookie is the only place login credentials persist
	// across restarts.
	gob.Register(session.Credentials{})
	manager := scs.NewCookieManager(cfg.SessionSecret)
	manager.Lifetime(30 * 24 * time.Hour)
	manager.Persist(true)

	warmup(svc, cfg.RequestTimeout)

	handler := web.New(&cfg, svc, manager)
	router := chi.NewRouter()
	handler.Mount(router)

	zero.Info().Str("addr", cfg.ListenAddr).Str("service", cfg.ServiceURL).Msg("serving the story client")
	if err := http.ListenAndServe(cfg.ListenAddr, router); err != nil {
		zero.Fatal().Err(err).Msg("server stopped")
	}
}

// warmup loads the story list once before serving. A failure is only logged:
// the front page retries the fetch on every visit.
func warmup(svc service.Service, timeout time.Duration) {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := svc.RefreshStories(ctx); err != nil {
		zero.Warn().Err(err).Msg("initial story fetch failed")
	}
}
