package state

import "github.com/moodfood/restaurant-floor/internal/model"

// MakeBill moves the table's payment to awaiting and stamps its creation
// time. It requires a non-zero total: a table without an order, or with an
// empty one, fails with ErrEmptyBill.
func (s *Store) MakeBill(tableID string) error {
	return s.mutate(func(st *model.State) error {
		o, exists := st.Orders[tableID]
		if !exists || totalsLocked(s, st, tableID).Sum <= 0 {
			return ErrEmptyBill
		}
		createdAt := s.now()
		o.Payment.Status = model.PaymentStatusAwaiting
		o.Payment.CreatedAt = &createdAt
		return nil
	})
}

// MarkPaid settles an awaiting bill. Any other payment status fails with
// ErrNotAwaiting; a table without an order does too, since its bill was
// never made.
func (s *Store) MarkPaid(tableID string) error {
	return s.mutate(func(st *model.State) error {
		o, exists := st.Orders[tableID]
		if !exists || o.Payment.Status != model.PaymentStatusAwaiting {
			return ErrNotAwaiting
		}
		paidAt := s.now()
		o.Payment.Status = model.PaymentStatusPaid
		o.Payment.PaidAt = &paidAt
		return nil
	})
}

// SetSplitMode selects how the bill is divided. There is no precondition;
// a table without an order is a silent no-op. The caller validates the
// mode string.
func (s *Store) SetSplitMode(tableID, mode string) error {
	if mode != model.SplitByGuests && mode != model.SplitEvenly {
		return nil
	}
	return s.mutate(func(st *model.State) error {
		if o, exists := st.Orders[tableID]; exists {
			o.Payment.SplitMode = mode
		}
		return nil
	})
}
