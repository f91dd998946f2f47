package web

import "net/http"

// Profile shows the logged-in user's account details: username, display
// name, member-since date and how much they have marked and submitted.
func Profile(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, _ := CurrentUser(r.Context())
		handler.render(w, "profile.html", struct {
			pageData
			FavoriteCount int
			StoryCount    int
		}{
			pageData:      handler.page(r, user.DisplayName(), ""),
			FavoriteCount: len(handler.service.Favorites()),
			StoryCount:    len(handler.service.OwnStories()),
		})
	}
}
