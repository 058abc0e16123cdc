package state

import (
	"strings"

	"github.com/moodfood/restaurant-floor/internal/model"
)

// RegisterMemberInput carries the registration form fields. TableID and
// GuestID are optional: when both are set the new member is attached to
// that guest in the same mutation, the way the floor UI registers a guest
// mid-visit.
type RegisterMemberInput struct {
	FullName           string `json:"fullName"`
	Phone              string `json:"phone"`
	Email              string `json:"email"`
	City               string `json:"city"`
	FavoriteRestaurant string `json:"favoriteRestaurant"`
	AgeGroup           string `json:"ageGroup"`
	Delivery           string `json:"delivery"`
	TableID            string `json:"tableId,omitempty"`
	GuestID            string `json:"guestId,omitempty"`
}

// RegisterMember creates a loyalty member and prepends it to the member
// list, so the freshest registrations surface first in search results.
func (s *Store) RegisterMember(in RegisterMemberInput) model.LoyaltyMember {
	member := model.LoyaltyMember{
		ID:                 s.newID("pl"),
		FullName:           strings.TrimSpace(in.FullName),
		Phone:              strings.TrimSpace(in.Phone),
		Email:              strings.TrimSpace(in.Email),
		City:               strings.TrimSpace(in.City),
		FavoriteRestaurant: strings.TrimSpace(in.FavoriteRestaurant),
		AgeGroup:           in.AgeGroup,
		Delivery:           in.Delivery,
	}
	_ = s.mutate(func(st *model.State) error {
		m := member
		st.LoyaltyMembers = append([]*model.LoyaltyMember{&m}, st.LoyaltyMembers...)
		if in.TableID != "" && in.GuestID != "" {
			attachLocked(st, in.TableID, in.GuestID, m.ID)
		}
		return nil
	})
	return member
}

// AttachMember links an existing member to a seated guest, and to the
// table's order when one is open. An unknown member is reported; an
// unknown table or guest is a silent no-op.
func (s *Store) AttachMember(tableID, guestID, memberID string) error {
	return s.mutate(func(st *model.State) error {
		if st.MemberByID(memberID) == nil {
			return ErrMemberNotFound
		}
		attachLocked(st, tableID, guestID, memberID)
		return nil
	})
}

func attachLocked(st *model.State, tableID, guestID, memberID string) {
	table := st.TableByID(tableID)
	if table == nil {
		return
	}
	if g := table.GuestByID(guestID); g != nil {
		g.LoyaltyMemberID = memberID
	}
	if o, exists := st.Orders[tableID]; exists {
		o.LoyaltyMemberID = memberID
	}
}

// FindMembers searches members by phone, id or name substring,
// case-insensitively. An empty query returns every member.
func (s *Store) FindMembers(query string) []model.LoyaltyMember {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []model.LoyaltyMember
	s.view(func(st *model.State) {
		for _, m := range st.LoyaltyMembers {
			if q == "" ||
				strings.Contains(strings.ToLower(m.Phone), q) ||
				strings.Contains(strings.ToLower(m.ID), q) ||
				strings.Contains(strings.ToLower(m.FullName), q) {
				out = append(out, *m)
			}
		}
	})
	return out
}

// Member returns a member by id.
func (s *Store) Member(memberID string) (model.LoyaltyMember, bool) {
	var out model.LoyaltyMember
	var found bool
	s.view(func(st *model.State) {
		if m := st.MemberByID(memberID); m != nil {
			out, found = *m, true
		}
	})
	return out, found
}
