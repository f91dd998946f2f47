package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func fixedTime(t *testing.T) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, "2024-03-01T12:00:00Z")
	if err != nil {
		t.Fatal(err)
	}
	return ts
}

func story(id string) Story {
	return Story{
		ID:       id,
		Title:    "title " + id,
		Author:   "author",
		URL:      fmt.Sprintf("http://example.com/%s", id),
		Username: "poster",
	}
}

func ids(l *StoryList) []string {
	var out []string
	for _, s := range l.Stories() {
		out = append(out, s.ID)
	}
	return out
}

func TestStoryListAddRejectsDuplicates(t *testing.T) {
	l := NewStoryList(nil)

	if !l.Add(story("s1")) {
		t.Error("first Add(s1) = false, want true")
	}
	if l.Add(story("s1")) {
		t.Error("second Add(s1) = true, want false")
	}
	l.Add(story("s2"))

	if diff := cmp.Diff([]string{"s1", "s2"}, ids(l)); diff != "" {
		t.Errorf("unexpected ids (-want +got):\n%s", diff)
	}
}

func TestStoryListUniquenessAfterMixedOperations(t *testing.T) {
	l := NewStoryList([]Story{story("s1"), story("s2"), story("s1")})
	l.Add(story("s3"))
	l.RemoveByID("s2")
	l.Add(story("s2"))
	l.Add(story("s3"))
	l.Replace([]Story{story("a"), story("b"), story("a"), story("c")})
	l.Add(story("b"))

	seen := map[string]bool{}
	for _, s := range l.Stories() {
		if seen[s.ID] {
			t.Fatalf("duplicate id %q in list", s.ID)
		}
		seen[s.ID] = true
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, ids(l)); diff != "" {
		t.Errorf("unexpected ids (-want +got):\n%s", diff)
	}
}

func TestStoryListRemoveByID(t *testing.T) {
	l := NewStoryList([]Story{story("s1"), story("s2")})

	if !l.RemoveByID("s1") {
		t.Error("RemoveByID(s1) = false, want true")
	}
	if l.RemoveByID("s1") {
		t.Error("second RemoveByID(s1) = true, want false")
	}
	if diff := cmp.Diff([]string{"s2"}, ids(l)); diff != "" {
		t.Errorf("unexpected ids (-want +got):\n%s", diff)
	}
}

func TestStoryListOrderPreserved(t *testing.T) {
	in := []Story{story("c"), story("a"), story("b")}
	l := NewStoryList(in)

	if diff := cmp.Diff([]string{"c", "a", "b"}, ids(l)); diff != "" {
		t.Errorf("server order not preserved (-want +got):\n%s", diff)
	}
}

func TestStoriesReturnsCopy(t *testing.T) {
	l := NewStoryList([]Story{story("s1"), story("s2")})
	out := l.Stories()
	out[0] = story("mutated")

	if got, _ := l.ByID("s1"); got.ID != "s1" {
		t.Error("mutating the returned slice changed the list")
	}
}

func TestUserIsFavorite(t *testing.T) {
	u := NewUser("alice", "Alice A", fixedTime(t), nil, nil, "token")

	if u.IsFavorite("s1") {
		t.Error("fresh user already has favorite s1")
	}
	u.Favorites.Add(story("s1"))
	if !u.IsFavorite("s1") {
		t.Error("IsFavorite(s1) = false after add")
	}
	u.Favorites.RemoveByID("s1")
	if u.IsFavorite("s1") {
		t.Error("IsFavorite(s1) = true after remove")
	}
}

func TestUserDisplayName(t *testing.T) {
	withName := NewUser("alice", "Alice A", fixedTime(t), nil, nil, "t")
	if got := withName.DisplayName(); got != "Alice A" {
		t.Errorf("DisplayName() = %q, want %q", got, "Alice A")
	}
	without := NewUser("bob", "", fixedTime(t), nil, nil, "t")
	if got := without.DisplayName(); got != "bob" {
		t.Errorf("DisplayName() = %q, want %q", got, "bob")
	}
}
