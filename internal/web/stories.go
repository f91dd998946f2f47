package web

import (
	"net/http"
	"net/url"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/sidereusnuntius/snooze/internal/api"
	"github.com/sidereusnuntius/snooze/internal/domain"
)

const (
	AllStoriesRoute = "/"
	FavoritesRoute  = "/favorites"
	MyStoriesRoute  = "/stories/mine"
)

// AllStories fetches the current collection and renders the front page.
// When the fetch fails, whatever was loaded before is shown with a banner
// rather than an empty page.
func AllStories(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		message := r.URL.Query().Get("error")
		if err := handler.service.RefreshStories(r.Context()); err != nil {
			log.Error().Err(err).Msg("story refresh failed")
			message = userMessage(err)
		}

		stories := handler.service.AllStories()
		handler.renderStories(w, r, stories, storiesData{
			pageData: handler.page(r, "All stories", message),
			Empty:    "No stories yet. Submit the first one!",
			From:     AllStoriesRoute,
		})
	}
}

func Favorites(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handler.renderStories(w, r, handler.service.Favorites(), storiesData{
			pageData: handler.page(r, "Favorites", r.URL.Query().Get("error")),
			Empty:    "No favorites added!",
			From:     FavoritesRoute,
		})
	}
}

func MyStories(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handler.renderStories(w, r, handler.service.OwnStories(), storiesData{
			pageData: handler.page(r, "My stories", r.URL.Query().Get("error")),
			Empty:    "No stories added by user yet!",
			From:     MyStoriesRoute,
		})
	}
}

// Story is the permalink for a single story, looked up locally first and
// fetched from the service when this client has not seen it yet.
func Story(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		story, err := handler.service.StoryByID(r.Context(), id)
		if err != nil {
			w.WriteHeader(GetCode(err))
			handler.renderStories(w, r, nil, storiesData{
				pageData: handler.page(r, "Story", userMessage(err)),
				Empty:    "No such story.",
				From:     AllStoriesRoute,
			})
			return
		}

		handler.renderStories(w, r, []domain.Story{story}, storiesData{
			pageData: handler.page(r, story.Title, ""),
			From:     AllStoriesRoute,
		})
	}
}

func GetSubmit(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handler.render(w, "submit.html", submitData{
			pageData: handler.page(r, "Submit a story", ""),
		})
	}
}

func Submit(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			handler.render(w, "submit.html", submitData{
				pageData: handler.page(r, "Submit a story", "could not read the form"),
			})
			return
		}

		draft := api.NewStory{
			Author: r.Form.Get("author"),
			Title:  r.Form.Get("title"),
			URL:    r.Form.Get("url"),
		}

		if _, err := handler.service.SubmitStory(r.Context(), draft); err != nil {
			w.WriteHeader(GetCode(err))
			handler.render(w, "submit.html", submitData{
				pageData: handler.page(r, "Submit a story", userMessage(err)),
				Draft:    draft,
			})
			return
		}
		http.Redirect(w, r, AllStoriesRoute, http.StatusSeeOther)
	}
}

// DeleteStory, Favorite and Unfavorite receive the story identity as an
// explicit route parameter and the originating list as a form value; nothing
// is derived from page structure.
func DeleteStory(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		err := handler.service.DeleteStory(r.Context(), id)
		redirectBack(w, r, err)
	}
}

func Favorite(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		err := handler.service.AddFavorite(r.Context(), id)
		redirectBack(w, r, err)
	}
}

func Unfavorite(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		err := handler.service.RemoveFavorite(r.Context(), id)
		redirectBack(w, r, err)
	}
}

// redirectBack returns the browser to the list the action came from. On
// failure the local model was left untouched, so re-rendering it is safe;
// the error only becomes a banner.
func redirectBack(w http.ResponseWriter, r *http.Request, err error) {
	target := returnPath(r.FormValue("from"))
	if err != nil {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("story mutation failed")
		target += "?error=" + url.QueryEscape(userMessage(err))
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// returnPath accepts only the known list pages, so the redirect target can
// never leave the site.
func returnPath(from string) string {
	switch from {
	case FavoritesRoute, MyStoriesRoute:
		return from
	default:
		return AllStoriesRoute
	}
}

func (h *Handler) renderStories(w http.ResponseWriter, r *http.Request, stories []domain.Story, data storiesData) {
	// Server order is recency order; rendering keeps the freshest
	// submissions on top even right after a local add appended one.
	sort.SliceStable(stories, func(i, j int) bool {
		return stories[i].CreatedAt.After(stories[j].CreatedAt)
	})

	items := make([]storyItem, 0, len(stories))
	for _, s := range stories {
		host, err := s.Hostname()
		if err != nil {
			log.Debug().Str("story", s.ID).Str("url", s.URL).Msg("story with unparseable url")
		}
		item := storyItem{Story: s, Hostname: host}
		if data.User != nil {
			// Favorite membership goes through the service, under its
			// lock; Username is immutable and safe to read directly.
			item.Favorite = h.service.IsFavorite(s.ID)
			item.CanDelete = data.User.Username == s.Username
		}
		items = append(items, item)
	}

	data.Stories = items
	h.render(w, "stories.html", data)
}
