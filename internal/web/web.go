// Package web is the view layer: it renders the story pages and forms and
// wires browser requests to the domain operations. It owns everything about
// presentation; the service layer never sees a form or a cookie.
package web

import (
	"github.com/alexedwards/scs"

	"github.com/sidereusnuntius/snooze/internal/config"
	"github.com/sidereusnuntius/snooze/internal/service"
)

const (
	LoginRoute  = "/login"
	SignUpRoute = "/signup"
	SubmitRoute = "/submit"
)

type Handler struct {
	Config         *config.Configuration
	service        service.Service
	SessionManager *scs.Manager
}

func New(config *config.Configuration, service service.Service, manager *scs.Manager) Handler {
	return Handler{
		Config:         config,
		service:        service,
		SessionManager: manager,
	}
}
