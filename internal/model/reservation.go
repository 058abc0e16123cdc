package model

import "time"

// Reservation status values. Cancelled reservations are kept for history
// but are excluded from conflict checks and table status resolution.
const (
	ReservationActive    = "active"
	ReservationCancelled = "cancelled"
)

// Reservation books a table for a named party at a date and time. It is
// never tied to a specific order. Date is YYYY-MM-DD, Time is HH:MM, both
// in restaurant-local time. No two active reservations may share the same
// (TableID, Date, Time) triple.
type Reservation struct {
	ID          string    `json:"id"`
	TableID     string    `json:"tableId"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	GuestsCount int       `json:"guestsCount"`
	Name        string    `json:"name"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Active reports whether the reservation still participates in conflict
// checks and status resolution.
func (r *Reservation) Active() bool { return r.Status == ReservationActive }
