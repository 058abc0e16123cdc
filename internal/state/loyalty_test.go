package state

import (
	"errors"
	"testing"
)

func TestRegisterMember(t *testing.T) {
	s := newTestStore(t)

	m := s.RegisterMember(RegisterMemberInput{
		FullName: "  Ivan Orlov ",
		Phone:    "+7 900 000-00-01",
		Email:    "orlov@example.com",
		City:     "Kazan",
	})
	if m.ID == "" || m.FullName != "Ivan Orlov" {
		t.Fatalf("registered = %+v, want trimmed name and an id", m)
	}
	members := s.Snapshot().LoyaltyMembers
	if members[0].ID != m.ID {
		t.Error("fresh registration must be first in the member list")
	}
	if len(members) != 3 {
		t.Errorf("members = %d, want 3 (2 seeded + 1 new)", len(members))
	}
}

func TestRegisterMemberAttachesToGuest(t *testing.T) {
	s := newTestStore(t)
	g, _ := s.SeatGuest("t-1")

	m := s.RegisterMember(RegisterMemberInput{
		FullName: "Ivan Orlov",
		Phone:    "+7 900 000-00-01",
		Email:    "orlov@example.com",
		TableID:  "t-1",
		GuestID:  g.ID,
	})
	st := s.Snapshot()
	if got := st.TableByID("t-1").GuestByID(g.ID).LoyaltyMemberID; got != m.ID {
		t.Errorf("guest member id = %s, want %s", got, m.ID)
	}
	if got := st.Orders["t-1"].LoyaltyMemberID; got != m.ID {
		t.Errorf("order member id = %s, want %s", got, m.ID)
	}
}

func TestAttachMember(t *testing.T) {
	s := newTestStore(t)
	g, _ := s.SeatGuest("t-2")

	if err := s.AttachMember("t-2", g.ID, "pl-100023"); err != nil {
		t.Fatalf("AttachMember: %v", err)
	}
	if got := s.Snapshot().TableByID("t-2").GuestByID(g.ID).LoyaltyMemberID; got != "pl-100023" {
		t.Errorf("guest member id = %s, want pl-100023", got)
	}
	if err := s.AttachMember("t-2", g.ID, "pl-404"); !errors.Is(err, ErrMemberNotFound) {
		t.Errorf("unknown member: err = %v, want ErrMemberNotFound", err)
	}
	// Unknown table or guest with a known member is a silent no-op.
	if err := s.AttachMember("t-404", g.ID, "pl-100023"); err != nil {
		t.Errorf("unknown table: %v", err)
	}
}

func TestFindMembers(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		query string
		want  int
	}{
		{"", 2},          // empty query returns everyone
		{"pl-100023", 1}, // exact id
		{"PETROV", 1},    // name match, case-insensitive
		{"+7 999", 2},    // phone prefix shared by both seeds
		{"nothing", 0},
	}
	for _, tt := range tests {
		if got := len(s.FindMembers(tt.query)); got != tt.want {
			t.Errorf("FindMembers(%q) = %d, want %d", tt.query, got, tt.want)
		}
	}
}

func TestMemberLookup(t *testing.T) {
	s := newTestStore(t)
	if _, found := s.Member("pl-100071"); !found {
		t.Error("seeded member must be found")
	}
	if _, found := s.Member("pl-404"); found {
		t.Error("unknown member must not be found")
	}
}
