package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/sidereusnuntius/snooze/internal/domain"
)

var ctx = context.Background()

func newTestClient(t *testing.T, handler http.Handler) (*HTTPClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewHTTPClient(server.URL, server.Client(), 5*time.Second)
	if err != nil {
		t.Fatal(err)
	}
	return client, server
}

func serveJSON(t *testing.T, w http.ResponseWriter, status int, body string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		t.Error(err)
	}
}

func TestStories(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/stories" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		serveJSON(t, w, http.StatusOK, `{"stories": [
			{"storyId": "s1", "title": "First", "author": "Ann", "url": "http://example.com/1", "username": "ann", "createdAt": "2024-03-01T12:00:00.000Z"},
			{"storyId": "s2", "title": "Second", "author": "Ben", "url": "http://example.com/2", "username": "ben", "createdAt": "2024-03-02T08:30:00.000Z"}
		]}`)
	}))

	stories, err := client.Stories(ctx)
	if err != nil {
		t.Fatal(err)
	}

	want := []domain.Story{
		{ID: "s1", Title: "First", Author: "Ann", URL: "http://example.com/1", Username: "ann",
			CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
		{ID: "s2", Title: "Second", Author: "Ben", URL: "http://example.com/2", Username: "ben",
			CreatedAt: time.Date(2024, 3, 2, 8, 30, 0, 0, time.UTC)},
	}
	if diff := cmp.Diff(want, stories); diff != "" {
		t.Errorf("unexpected stories (-want +got):\n%s", diff)
	}
}

func TestStoryByIDNotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serveJSON(t, w, http.StatusNotFound, `{"error": {"status": 404, "title": "Not Found", "message": "No story found with ID nope"}}`)
	}))

	_, err := client.StoryByID(ctx, "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got err %v, want ErrNotFound", err)
	}
}

func TestCreateStory(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/stories" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}

		var req struct {
			Token string `json:"token"`
			Story struct {
				Author string `json:"author"`
				Title  string `json:"title"`
				URL    string `json:"url"`
			} `json:"story"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatal(err)
		}
		if req.Token != "tok-123" {
			t.Errorf("token = %q, want tok-123", req.Token)
		}
		if req.Story.Title != "The best story ever" || req.Story.URL != "http://google.com" {
			t.Errorf("unexpected story payload: %+v", req.Story)
		}

		serveJSON(t, w, http.StatusCreated, `{"story": {"storyId": "new-id", "title": "The best story ever",
			"author": "Matt Lane", "url": "http://google.com", "username": "matt", "createdAt": "2024-03-03T00:00:00.000Z"}}`)
	}))

	created, err := client.CreateStory(ctx, "tok-123", NewStory{
		Author: "Matt Lane",
		Title:  "The best story ever",
		URL:    "http://google.com",
	})
	if err != nil {
		t.Fatal(err)
	}
	if created.ID != "new-id" || created.Username != "matt" {
		t.Errorf("unexpected created story: %+v", created)
	}
}

func TestCreateStoryUnauthorized(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serveJSON(t, w, http.StatusUnauthorized, `{"error": {"status": 401, "title": "Unauthorized", "message": "Invalid token"}}`)
	}))

	_, err := client.CreateStory(ctx, "stale", NewStory{Author: "a", Title: "t", URL: "http://x.test"})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("got err %v, want ErrUnauthorized", err)
	}
}

func TestDeleteStory(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/stories/s1" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req struct {
			Token string `json:"token"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatal(err)
		}
		if req.Token != "tok-123" {
			t.Errorf("token = %q, want tok-123", req.Token)
		}
		serveJSON(t, w, http.StatusOK, `{"story": {"storyId": "s1"}}`)
	}))

	if err := client.DeleteStory(ctx, "tok-123", "s1"); err != nil {
		t.Fatal(err)
	}
}

func TestSignup(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/signup" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req struct {
			User struct {
				Username string `json:"username"`
				Password string `json:"password"`
				Name     string `json:"name"`
			} `json:"user"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatal(err)
		}
		if req.User.Username != "alice" || req.User.Password != "pw123" || req.User.Name != "Alice A" {
			t.Errorf("unexpected signup payload: %+v", req.User)
		}
		serveJSON(t, w, http.StatusCreated, `{"token": "fresh-token", "user": {"username": "alice",
			"name": "Alice A", "createdAt": "2024-03-01T12:00:00.000Z", "favorites": [], "stories": []}}`)
	}))

	user, err := client.Signup(ctx, "alice", "pw123", "Alice A")
	if err != nil {
		t.Fatal(err)
	}
	if user.Username != "alice" || user.Token != "fresh-token" {
		t.Errorf("unexpected user: %+v", user)
	}
	if user.Favorites.Len() != 0 || user.OwnStories.Len() != 0 {
		t.Error("fresh user should have empty favorites and own stories")
	}
}

func TestSignupConflict(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serveJSON(t, w, http.StatusConflict, `{"error": {"status": 409, "title": "Conflict", "message": "Username already taken"}}`)
	}))

	_, err := client.Signup(ctx, "alice", "pw123", "")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("got err %v, want ErrConflict", err)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serveJSON(t, w, http.StatusUnauthorized, `{"error": {"status": 401, "title": "Unauthorized", "message": "Invalid credentials"}}`)
	}))

	user, err := client.Login(ctx, "alice", "wrongpw")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("got err %v, want ErrUnauthorized", err)
	}
	if user != nil {
		t.Error("no user should be constructed on a failed login")
	}
}

func TestUserByUsername(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/users/alice" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.URL.Query().Get("token"); got != "stored-token" {
			t.Errorf("token query = %q, want stored-token", got)
		}
		serveJSON(t, w, http.StatusOK, `{"user": {"username": "alice", "name": "Alice A",
			"createdAt": "2024-03-01T12:00:00.000Z",
			"favorites": [{"storyId": "s2", "title": "Second", "author": "Ben", "url": "http://example.com/2", "username": "ben", "createdAt": "2024-03-02T08:30:00.000Z"}],
			"stories": [{"storyId": "s1", "title": "First", "author": "Alice", "url": "http://example.com/1", "username": "alice", "createdAt": "2024-03-01T13:00:00.000Z"}]}}`)
	}))

	user, err := client.UserByUsername(ctx, "stored-token", "alice")
	if err != nil {
		t.Fatal(err)
	}
	if user.Token != "stored-token" {
		t.Errorf("token = %q, want the stored one preserved", user.Token)
	}
	if !user.IsFavorite("s2") {
		t.Error("favorites not populated from the payload")
	}
	if !user.OwnStories.Contains("s1") {
		t.Error("own stories not populated from the payload")
	}
}

func TestFavoriteEndpoints(t *testing.T) {
	var gotMethod, gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		serveJSON(t, w, http.StatusOK, `{"message": "ok"}`)
	}))

	if err := client.AddFavorite(ctx, "tok", "alice", "s1"); err != nil {
		t.Fatal(err)
	}
	if gotMethod != http.MethodPost || gotPath != "/users/alice/favorites/s1" {
		t.Errorf("AddFavorite sent %s %s", gotMethod, gotPath)
	}

	if err := client.RemoveFavorite(ctx, "tok", "alice", "s1"); err != nil {
		t.Fatal(err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/users/alice/favorites/s1" {
		t.Errorf("RemoveFavorite sent %s %s", gotMethod, gotPath)
	}
}

func TestStoryPayloadValidation(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serveJSON(t, w, http.StatusOK, `{"stories": [{"title": "no id at all"}]}`)
	}))

	_, err := client.Stories(ctx)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("got err %v, want ErrInvalidInput for a story without storyId", err)
	}
}

func TestAuthResponseWithoutToken(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serveJSON(t, w, http.StatusOK, `{"user": {"username": "alice"}}`)
	}))

	_, err := client.Login(ctx, "alice", "pw123")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("got err %v, want ErrInvalidInput for an auth response without token", err)
	}
}

func TestServiceUnreachable(t *testing.T) {
	client, server := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := client.Stories(ctx)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("got err %v, want ErrUnavailable", err)
	}
}

func TestNewHTTPClientRejectsRelativeURL(t *testing.T) {
	if _, err := NewHTTPClient("not-a-url", nil, 0); err == nil {
		t.Fatal("expected an error for a relative service url")
	}
}
