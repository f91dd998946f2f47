package web

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) Mount(r chi.Router) {
	loggedIn := LoggedInMiddleware()
	r.Use(SessionMiddleware(h))

	r.Get(AllStoriesRoute, AllStories(h))
	r.Get("/stories/{id}", Story(h))

	r.Get(LoginRoute, GetLogin(h))
	r.Post(LoginRoute, Login(h))
	// Login and signup share one page, so a GET on either path serves it.
	r.Get(SignUpRoute, GetLogin(h))
	r.Post(SignUpRoute, SignUp(h))
	r.Get("/logout", Logout(h))

	r.Group(func(r chi.Router) {
		r.Use(loggedIn)

		r.Get(SubmitRoute, GetSubmit(h))
		r.Post(SubmitRoute, Submit(h))

		r.Get(FavoritesRoute, Favorites(h))
		r.Get(MyStoriesRoute, MyStories(h))
		r.Get("/profile", Profile(h))

		r.Post("/stories/{id}/delete", DeleteStory(h))
		r.Post("/stories/{id}/favorite", Favorite(h))
		r.Post("/stories/{id}/unfavorite", Unfavorite(h))
	})
}
