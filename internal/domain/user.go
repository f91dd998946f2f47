package domain

import "time"

// User represents the authenticated user. The client only ever materializes
// one: the account currently logged in. Favorites and OwnStories may overlap
// in membership with the global story list; all three are kept in sync when a
// story is deleted.
type User struct {
	Username  string
	Name      string
	CreatedAt time.Time
	// Favorites holds the stories this user has marked.
	Favorites *StoryList
	// OwnStories holds the stories this user submitted. The server calls
	// this field "stories" on the wire.
	OwnStories *StoryList
	// Token is the opaque session credential issued on signup or login,
	// required on every mutating call.
	Token string
}

func NewUser(username, name string, createdAt time.Time, favorites, ownStories []Story, token string) *User {
	return &User{
		Username:   username,
		Name:       name,
		CreatedAt:  createdAt,
		Favorites:  NewStoryList(favorites),
		OwnStories: NewStoryList(ownStories),
		Token:      token,
	}
}

// DisplayName is the name shown in the UI, falling back to the username when
// the account has no display name set.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}

// IsFavorite is a pure membership test over the favorites list. No network.
func (u *User) IsFavorite(storyID string) bool {
	return u.Favorites.Contains(storyID)
}
