package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sidereusnuntius/snooze/internal/api"
	"github.com/sidereusnuntius/snooze/internal/domain"
	"github.com/sidereusnuntius/snooze/internal/service"
)

//go:embed templates
var templateFS embed.FS

var funcs = template.FuncMap{
	"reltime": relativeTime,
}

// Each page is parsed together with the layout so every one can define its
// own "content" block.
var pages = func() map[string]*template.Template {
	names := []string{"stories.html", "auth.html", "submit.html", "profile.html"}
	parsed := make(map[string]*template.Template, len(names))
	for _, name := range names {
		parsed[name] = template.Must(template.New("layout.html").
			Funcs(funcs).
			ParseFS(templateFS, "templates/layout.html", "templates/"+name))
	}
	return parsed
}()

type pageData struct {
	SiteName string
	User     *domain.User
	Title    string
	// Error, when set, is shown as a banner at the top of the page.
	Error string
}

type storyItem struct {
	domain.Story
	Hostname string
	Favorite bool
	// CanDelete shows the delete affordance, only offered on the
	// user's own submissions.
	CanDelete bool
}

type storiesData struct {
	pageData
	Stories []storyItem
	// Empty is the message shown when the list has nothing in it.
	Empty string
	// From is the path mutations should redirect back to.
	From string
}

type authData struct {
	pageData
	Username string
}

type submitData struct {
	pageData
	Draft api.NewStory
}

func (h *Handler) page(r *http.Request, title, message string) pageData {
	user, _ := CurrentUser(r.Context())
	return pageData{
		SiteName: h.Config.SiteName,
		User:     user,
		Title:    title,
		Error:    message,
	}
}

func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	tpl, ok := pages[name]
	if !ok {
		log.Error().Str("template", name).Msg("unknown template")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if err := tpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		log.Error().Err(err).Str("template", name).Msg("template execution failed")
	}
}

// GetCode maps a domain error onto the HTTP status of the page rendered in
// response.
func GetCode(err error) int {
	switch {
	case errors.Is(err, api.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, api.ErrUnauthorized), errors.Is(err, service.ErrNotLoggedIn):
		return http.StatusUnauthorized
	case errors.Is(err, api.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, api.ErrInvalidInput), errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, api.ErrUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// userMessage turns a domain error into the banner text shown on the page.
func userMessage(err error) string {
	switch {
	case errors.Is(err, api.ErrUnauthorized):
		return "Wrong username or password."
	case errors.Is(err, api.ErrConflict):
		return "That username is already taken."
	case errors.Is(err, api.ErrNotFound):
		return "That story does not exist anymore."
	case errors.Is(err, service.ErrNotLoggedIn):
		return "You need to log in first."
	case errors.Is(err, api.ErrInvalidInput), errors.Is(err, service.ErrInvalidInput):
		return fmt.Sprintf("The service rejected the input: %v", err)
	case errors.Is(err, api.ErrUnavailable):
		return "The story service cannot be reached right now."
	default:
		return "Something went wrong."
	}
}

func relativeTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
