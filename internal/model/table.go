package model

// Table is one physical seat group on the floor, created at bootstrap from
// the catalog. Guests grows monotonically during a dining cycle and is
// cleared only by a table reset; guest numbers are never reused within a
// cycle because the reset empties the list instead of renumbering.
type Table struct {
	ID     string   `json:"id"`
	Number int      `json:"number"`
	Guests []*Guest `json:"guests"`
}

// Guest is one seat-holder at a table. Number is the 1-based position within
// the table at the moment of seating and is never renumbered afterwards.
// LoyaltyMemberID is a non-owning reference, empty when not attached.
type Guest struct {
	ID              string `json:"id"`
	Number          int    `json:"number"`
	LoyaltyMemberID string `json:"loyaltyMemberId,omitempty"`
}

// GuestByID returns the guest seated at this table with the given id, or nil.
func (t *Table) GuestByID(guestID string) *Guest {
	for _, g := range t.Guests {
		if g.ID == guestID {
			return g
		}
	}
	return nil
}
