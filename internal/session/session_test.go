package session

import (
	"testing"
	"time"

	"github.com/sidereusnuntius/snooze/internal/domain"
)

func TestStoreHoldsSingleUser(t *testing.T) {
	s := NewStore()
	if s.LoggedIn() {
		t.Fatal("fresh store reports a logged-in user")
	}

	alice := domain.NewUser("alice", "", time.Now(), nil, nil, "t1")
	bob := domain.NewUser("bob", "", time.Now(), nil, nil, "t2")

	s.Login(alice)
	if got := s.Current(); got != alice {
		t.Error("current user is not the one logged in")
	}

	// A later login replaces the previous user outright.
	s.Login(bob)
	if got := s.Current(); got != bob {
		t.Error("second login did not replace the current user")
	}

	s.Logout()
	if s.LoggedIn() {
		t.Error("still logged in after Logout")
	}
}

func TestCredentialsEmpty(t *testing.T) {
	if !(Credentials{}).Empty() {
		t.Error("zero credentials should be empty")
	}
	if !(Credentials{Token: "t"}).Empty() {
		t.Error("credentials without a username should be empty")
	}
	if (Credentials{Token: "t", Username: "alice"}).Empty() {
		t.Error("complete credentials reported empty")
	}
}
