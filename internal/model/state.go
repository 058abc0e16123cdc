// Package model defines the persisted aggregate for one floor-staff session:
// tables with their seated guests, the open order per table, reservations,
// loyalty members and the shift schedule. The whole tree is serialized as a
// single JSON blob; see internal/snapshot for the storage boundary and
// internal/state for the normalizer that upgrades older blobs.
package model

// SchemaVersion is the current snapshot schema version. The normalizer
// accepts any older or malformed blob and produces a tree at this version.
const SchemaVersion = 1

// State is the root of the aggregate. Exactly one Order may exist per table
// at any time, keyed by table id in Orders. Reservations and LoyaltyMembers
// are independent top-level collections; Schedule is reference data copied
// from the catalog at bootstrap.
type State struct {
	Version        int               `json:"version"`
	Session        Session           `json:"session"`
	Tables         []*Table          `json:"tables"`
	Orders         map[string]*Order `json:"orders"`
	Reservations   []*Reservation    `json:"reservations"`
	LoyaltyMembers []*LoyaltyMember  `json:"loyaltyMembers"`
	Schedule       Schedule          `json:"schedule"`
}

// Session mirrors the staff login state the UI drives. Login is a mock:
// no password is verified, the user comes from the catalog. Only the bcrypt
// hash of a requested temporary password is ever stored.
type Session struct {
	Authenticated    bool       `json:"authenticated"`
	User             *StaffUser `json:"user,omitempty"`
	LastLoginEmail   string     `json:"lastLoginEmail"`
	ResetSentTo      string     `json:"resetSentTo"`
	TempPasswordHash string     `json:"tempPasswordHash,omitempty"`
}

// StaffUser is the signed-in employee operating the floor tool.
type StaffUser struct {
	ID             string `json:"id"`
	FullName       string `json:"fullName"`
	Role           string `json:"role"`
	RestaurantID   string `json:"restaurantId"`
	RestaurantCode string `json:"restaurantCode"`
}

// TableByID returns the table with the given id, or nil.
func (s *State) TableByID(tableID string) *Table {
	for _, t := range s.Tables {
		if t.ID == tableID {
			return t
		}
	}
	return nil
}

// MemberByID returns the loyalty member with the given id, or nil.
func (s *State) MemberByID(memberID string) *LoyaltyMember {
	for _, m := range s.LoyaltyMembers {
		if m.ID == memberID {
			return m
		}
	}
	return nil
}

// ReservationByID returns the reservation with the given id, or nil.
func (s *State) ReservationByID(id string) *Reservation {
	for _, r := range s.Reservations {
		if r.ID == id {
			return r
		}
	}
	return nil
}
