package model

import (
	"testing"
	"time"
)

func sampleState() *State {
	opened := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	return &State{
		Version: SchemaVersion,
		Session: Session{Authenticated: true, User: &StaffUser{ID: "u-1"}},
		Tables: []*Table{
			{ID: "t-1", Number: 1, Guests: []*Guest{{ID: "g-1", Number: 1}}},
		},
		Orders: map[string]*Order{
			"t-1": {
				OpenedAt:    opened,
				TableNumber: 1,
				Payment:     NewPayment(),
				Guests: map[string]*GuestOrder{
					"g-1": {Items: []*OrderItem{
						{ID: "it-1", DishID: "d1", Qty: 1, Course: 1, Status: ItemStatusNew, CreatedAt: opened},
					}},
				},
			},
		},
		Reservations: []*Reservation{
			{ID: "rsv-1", TableID: "t-1", Date: "2026-02-10", Time: "19:00", Status: ReservationActive},
		},
		LoyaltyMembers: []*LoyaltyMember{{ID: "pl-1", FullName: "Ivan"}},
		Schedule: Schedule{
			Employees: []*Employee{{ID: "u-1", FullName: "Maria"}},
			Shifts:    []*Shift{{ID: "s-1", EmployeeID: "u-1", Date: "2026-02-01", Start: "12:00", End: "20:00"}},
		},
	}
}

func TestCloneSharesNothing(t *testing.T) {
	orig := sampleState()
	c := orig.Clone()

	c.Session.User.ID = "other"
	c.Tables[0].Guests[0].Number = 99
	c.Tables[0].Guests = append(c.Tables[0].Guests, &Guest{ID: "g-2", Number: 2})
	c.Orders["t-1"].Guests["g-1"].Items[0].Status = ItemStatusServed
	c.Orders["t-1"].Payment.Status = PaymentStatusPaid
	c.Orders["t-2"] = &Order{Payment: NewPayment(), Guests: map[string]*GuestOrder{}}
	c.Reservations[0].Status = ReservationCancelled
	c.LoyaltyMembers[0].FullName = "Changed"
	c.Schedule.Shifts[0].End = "23:00"

	if orig.Session.User.ID != "u-1" {
		t.Error("session user leaked into the original")
	}
	if orig.Tables[0].Guests[0].Number != 1 || len(orig.Tables[0].Guests) != 1 {
		t.Error("guests leaked into the original")
	}
	if orig.Orders["t-1"].Guests["g-1"].Items[0].Status != ItemStatusNew {
		t.Error("item status leaked into the original")
	}
	if orig.Orders["t-1"].Payment.Status != PaymentStatusNone {
		t.Error("payment leaked into the original")
	}
	if len(orig.Orders) != 1 {
		t.Error("orders map leaked into the original")
	}
	if orig.Reservations[0].Status != ReservationActive {
		t.Error("reservation leaked into the original")
	}
	if orig.LoyaltyMembers[0].FullName != "Ivan" {
		t.Error("member leaked into the original")
	}
	if orig.Schedule.Shifts[0].End != "20:00" {
		t.Error("schedule leaked into the original")
	}
}

func TestCloneNil(t *testing.T) {
	var s *State
	if s.Clone() != nil {
		t.Error("cloning a nil state must return nil")
	}
}
