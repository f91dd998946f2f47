package validate

import "testing"

func TestUsername(t *testing.T) {
	if err := Username("alice"); err != nil {
		t.Errorf("Username(alice) = %v, want nil", err)
	}
	for _, bad := range []string{"", "has space", "tabbed\tname"} {
		if err := Username(bad); err == nil {
			t.Errorf("Username(%q) = nil, want error", bad)
		}
	}
}

func TestStoryURL(t *testing.T) {
	for _, ok := range []string{"http://example.com/x", "https://example.com"} {
		if err := StoryURL(ok); err != nil {
			t.Errorf("StoryURL(%q) = %v, want nil", ok, err)
		}
	}
	for _, bad := range []string{"", "example.com/x", "ftp://example.com", "http://"} {
		if err := StoryURL(bad); err == nil {
			t.Errorf("StoryURL(%q) = nil, want error", bad)
		}
	}
}

func TestStoryForm(t *testing.T) {
	if err := StoryForm("Ann", "A title", "http://example.com"); err != nil {
		t.Errorf("valid form rejected: %v", err)
	}
	if err := StoryForm("", "  ", "nope"); err == nil {
		t.Error("invalid form accepted")
	}
}

func TestSignUpForm(t *testing.T) {
	if err := SignUpForm("alice", "pw123"); err != nil {
		t.Errorf("valid form rejected: %v", err)
	}
	if err := SignUpForm("", ""); err == nil {
		t.Error("empty form accepted")
	}
}
