package state

import "github.com/moodfood/restaurant-floor/internal/model"

// CreateReservation books a table for a party. It fails with
// ErrReservationConflict when an active reservation already occupies the
// same table, date and time, and with ErrTableNotFound for an unknown
// table. Cancelled reservations never conflict.
func (s *Store) CreateReservation(tableID, date, timeOfDay string, guestsCount int, name string) (model.Reservation, error) {
	var created model.Reservation
	err := s.mutate(func(st *model.State) error {
		if st.TableByID(tableID) == nil {
			return ErrTableNotFound
		}
		for _, r := range st.Reservations {
			if r.Active() && r.TableID == tableID && r.Date == date && r.Time == timeOfDay {
				return ErrReservationConflict
			}
		}
		r := &model.Reservation{
			ID:          s.newID("rsv"),
			TableID:     tableID,
			Date:        date,
			Time:        timeOfDay,
			GuestsCount: guestsCount,
			Name:        name,
			Status:      model.ReservationActive,
			CreatedAt:   s.now(),
		}
		st.Reservations = append(st.Reservations, r)
		created = *r
		return nil
	})
	return created, err
}

// CancelReservation soft-cancels a reservation: it stays in the history but
// stops participating in conflict checks and status resolution. An unknown
// id is a silent no-op.
func (s *Store) CancelReservation(id string) error {
	return s.mutate(func(st *model.State) error {
		if r := st.ReservationByID(id); r != nil {
			r.Status = model.ReservationCancelled
		}
		return nil
	})
}

// Reservations lists reservations, optionally filtered by date
// (YYYY-MM-DD). Cancelled reservations are included; the UI renders them
// greyed out.
func (s *Store) Reservations(date string) []model.Reservation {
	var out []model.Reservation
	s.view(func(st *model.State) {
		for _, r := range st.Reservations {
			if date != "" && r.Date != date {
				continue
			}
			out = append(out, *r)
		}
	})
	return out
}
