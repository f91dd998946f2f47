package web

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/sidereusnuntius/snooze/internal/domain"
	"github.com/sidereusnuntius/snooze/internal/session"
)

// SessionKey names the cookie entry holding the persisted credentials.
const SessionKey = "credentials"

type key struct{}

// CurrentUser returns the logged-in user attached to the request context by
// SessionMiddleware, if any.
func CurrentUser(ctx context.Context) (*domain.User, bool) {
	u, ok := ctx.Value(key{}).(*domain.User)
	return u, ok && u != nil
}

// SessionMiddleware resumes a remembered session. When nobody is logged in
// but the cookie still carries credentials, it asks the service to restore
// them; a stale credential silently falls back to logged-out and the dead
// cookie is destroyed. The process holds a single session, but only
// requests whose cookie names that user act as them: another browser
// without the cookie stays anonymous.
func SessionMiddleware(handler *Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := handler.SessionManager.Load(r)
			var creds session.Credentials
			if err := sess.GetObject(SessionKey, &creds); err != nil {
				creds = session.Credentials{}
			}

			user := handler.service.CurrentUser()
			switch {
			case user != nil:
				if creds.Username != user.Username {
					user = nil
				}
			case !creds.Empty():
				user, _ = handler.service.RestoreSession(r.Context(), creds)
				if user == nil {
					if err := sess.Destroy(w); err != nil {
						log.Error().Err(err).Msg("failed to destroy stale session cookie")
					}
				}
			}

			if user != nil {
				r = r.WithContext(context.WithValue(r.Context(), key{}, user))
			}
			h.ServeHTTP(w, r)
		})
	}
}

// LoggedInMiddleware gates routes that need an authenticated user behind a
// redirect to the login page.
func LoggedInMiddleware() func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := CurrentUser(r.Context()); !ok {
				http.Redirect(w, r, LoginRoute, http.StatusSeeOther)
				return
			}
			h.ServeHTTP(w, r)
		})
	}
}

func Login(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			handler.renderAuth(w, r, "", "could not read the form")
			return
		}

		username := r.Form.Get("username")
		password := r.Form.Get("password")

		creds, err := handler.service.Login(r.Context(), username, password)
		if err != nil {
			w.WriteHeader(GetCode(err))
			handler.renderAuth(w, r, username, userMessage(err))
			return
		}

		handler.remember(w, r, creds)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func SignUp(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			handler.renderAuth(w, r, "", "could not read the form")
			return
		}

		username := r.Form.Get("username")
		password := r.Form.Get("password")
		name := r.Form.Get("name")

		creds, err := handler.service.Signup(r.Context(), username, password, name)
		if err != nil {
			w.WriteHeader(GetCode(err))
			handler.renderAuth(w, r, username, userMessage(err))
			return
		}

		handler.remember(w, r, creds)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func GetLogin(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r.Context()); ok {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		handler.renderAuth(w, r, "", "")
	}
}

func Logout(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handler.service.Logout()

		sess := handler.SessionManager.Load(r)
		if err := sess.Destroy(w); err != nil {
			log.Error().Err(err).Msg("failed to destroy session cookie")
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// remember persists the credentials in the session cookie so the session
// survives a restart of the browser or of this process.
func (h *Handler) remember(w http.ResponseWriter, r *http.Request, creds session.Credentials) {
	sess := h.SessionManager.Load(r)
	if err := sess.PutObject(w, SessionKey, creds); err != nil {
		// The login itself succeeded; only the remember-me part is lost.
		log.Error().Err(err).Str("user", creds.Username).Msg("failed to persist credentials")
	}
}

func (h *Handler) renderAuth(w http.ResponseWriter, r *http.Request, username, message string) {
	h.render(w, "auth.html", authData{
		pageData: h.page(r, "Login or sign up", message),
		Username: username,
	})
}
