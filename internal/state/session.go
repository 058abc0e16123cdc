package state

import (
	"strings"

	"github.com/moodfood/restaurant-floor/internal/model"
)

// Session operations mirror the staff login flow of the floor tool. Login
// is a deterministic mock: no password is checked, the signed-in user
// always comes from the catalog. Nothing here gates any other operation;
// the floor tool stays usable without signing in.

// Login marks the session authenticated as the catalog staff user and
// remembers the email for the next login form.
func (s *Store) Login(email string) model.StaffUser {
	user := s.catalog.User
	_ = s.mutate(func(st *model.State) error {
		st.Session.Authenticated = true
		u := user
		st.Session.User = &u
		st.Session.LastLoginEmail = strings.TrimSpace(email)
		st.Session.ResetSentTo = ""
		return nil
	})
	return user
}

// RequestReset records that a temporary password was "sent" to the email.
// The caller generates the password and hands in only its bcrypt hash; the
// plain value never touches the aggregate.
func (s *Store) RequestReset(email, tempPasswordHash string) {
	_ = s.mutate(func(st *model.State) error {
		st.Session.LastLoginEmail = strings.TrimSpace(email)
		st.Session.ResetSentTo = strings.TrimSpace(email)
		st.Session.TempPasswordHash = tempPasswordHash
		return nil
	})
}

// Logout clears the authenticated session.
func (s *Store) Logout() {
	_ = s.mutate(func(st *model.State) error {
		st.Session.Authenticated = false
		st.Session.User = nil
		return nil
	})
}

// Session returns a copy of the current session state.
func (s *Store) Session() model.Session {
	var out model.Session
	s.view(func(st *model.State) {
		out = st.Session
		if st.Session.User != nil {
			u := *st.Session.User
			out.User = &u
		}
	})
	return out
}
