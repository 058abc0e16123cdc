// Package state owns the in-memory aggregate for one staff session: the
// canonical tree of tables, orders, reservations, loyalty members and the
// schedule, the normalizer that upgrades persisted snapshots, the mutation
// operations the UI may invoke, and the pure derivations computed from the
// tree. Every mutation works on a deep copy which atomically replaces the
// live tree and is then persisted best-effort.
package state

import "errors"

// Sentinel errors exposed to the operation surface. Handlers distinguish
// them with errors.Is and translate them into user-facing messages; none of
// them is ever fatal to the session.
var (
	// ErrTableNotFound is returned by operations that must hand a result
	// back and therefore cannot degrade to a silent no-op.
	ErrTableNotFound = errors.New("table not found")

	// ErrDishNotFound is returned by AddItem when the catalog has no such
	// dish.
	ErrDishNotFound = errors.New("dish not found")

	// ErrDishUnavailable is returned by AddItem for a stop-listed dish.
	ErrDishUnavailable = errors.New("dish is stop-listed")

	// ErrReservationConflict is returned when an active reservation already
	// occupies the same table, date and time.
	ErrReservationConflict = errors.New("reservation conflict")

	// ErrEmptyBill is returned by MakeBill when the table total is zero.
	ErrEmptyBill = errors.New("order total is zero")

	// ErrNotAwaiting is returned by MarkPaid when the bill is not awaiting
	// payment.
	ErrNotAwaiting = errors.New("bill is not awaiting payment")

	// ErrBadStatusChange is returned by SetItemStatus for a backward or
	// unknown item status transition.
	ErrBadStatusChange = errors.New("invalid item status change")

	// ErrMemberNotFound is returned when a loyalty member id does not
	// resolve.
	ErrMemberNotFound = errors.New("loyalty member not found")
)
