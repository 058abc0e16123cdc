package state

import "testing"

func TestLoginLogout(t *testing.T) {
	s := newTestStore(t)

	user := s.Login("  maria@moodfood.example ")
	if user.ID != "u-4132" {
		t.Fatalf("login user = %s, want the catalog staff user", user.ID)
	}
	sess := s.Session()
	if !sess.Authenticated || sess.User == nil || sess.User.ID != "u-4132" {
		t.Fatalf("session after login = %+v", sess)
	}
	if sess.LastLoginEmail != "maria@moodfood.example" {
		t.Errorf("last login email = %q, want trimmed", sess.LastLoginEmail)
	}

	s.Logout()
	sess = s.Session()
	if sess.Authenticated || sess.User != nil {
		t.Errorf("session after logout = %+v, want signed out", sess)
	}
	if sess.LastLoginEmail != "maria@moodfood.example" {
		t.Error("logout must keep the remembered email")
	}
}

func TestRequestReset(t *testing.T) {
	s := newTestStore(t)
	s.RequestReset("maria@moodfood.example", "$2a$10$fakehash")

	sess := s.Session()
	if sess.ResetSentTo != "maria@moodfood.example" {
		t.Errorf("resetSentTo = %q", sess.ResetSentTo)
	}
	if sess.TempPasswordHash != "$2a$10$fakehash" {
		t.Errorf("tempPasswordHash = %q, want stored as given", sess.TempPasswordHash)
	}
}
