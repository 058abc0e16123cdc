package state

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/moodfood/restaurant-floor/internal/model"
)

// Derivations are pure reads: they never mutate the tree and are always
// recomputed from the current aggregate on demand.

// Table status values, in resolution precedence order: a pending bill
// outranks an open or sent order, which outranks a same-day reservation.
const (
	TableAwaitingPayment = "awaiting_payment"
	TableOrderSent       = "order_sent"
	TableOrderOpen       = "order_open"
	TableReserved        = "reserved"
	TableFree            = "free"
)

// Totals is the table-level order summary.
type Totals struct {
	Sum        int64 `json:"sum"`
	ItemsCount int   `json:"itemsCount"`
}

// GuestTotal is one guest's subtotal.
type GuestTotal struct {
	Guest model.Guest `json:"guest"`
	Sum   int64       `json:"sum"`
}

// Split is the bill division for a table under its current split mode.
// EvenAmount is set only for the evenly mode; PerGuest only for byGuests.
type Split struct {
	Mode       string       `json:"mode"`
	EvenAmount float64      `json:"evenAmount,omitempty"`
	PerGuest   []GuestTotal `json:"perGuest,omitempty"`
}

// TableSummary is the floor-list view of one table.
type TableSummary struct {
	ID          string `json:"id"`
	Number      int    `json:"number"`
	GuestsCount int    `json:"guestsCount"`
	Status      string `json:"status"`
	Totals      Totals `json:"totals"`
}

// EmployeeHours is one line of a day's shift report.
type EmployeeHours struct {
	Employee model.Employee `json:"employee"`
	Hours    float64        `json:"hours"`
}

func (s *Store) priceOf(dishID string) int64 {
	// A dish deleted from the catalog prices at zero instead of failing.
	if d := s.catalog.DishByID(dishID); d != nil {
		return d.Price
	}
	return 0
}

func totalsLocked(s *Store, st *model.State, tableID string) Totals {
	var t Totals
	o, exists := st.Orders[tableID]
	if !exists {
		return t
	}
	for _, g := range o.Guests {
		for _, it := range g.Items {
			t.Sum += s.priceOf(it.DishID) * int64(it.Qty)
			t.ItemsCount += it.Qty
		}
	}
	return t
}

// ComputeTotals sums price x qty over every guest's items. A table without
// an order totals to zero.
func (s *Store) ComputeTotals(tableID string) Totals {
	var t Totals
	s.view(func(st *model.State) { t = totalsLocked(s, st, tableID) })
	return t
}

// ComputeGuestTotals returns per-guest subtotals in seating order. The sum
// of the subtotals always equals ComputeTotals for the same table.
func (s *Store) ComputeGuestTotals(tableID string) []GuestTotal {
	var out []GuestTotal
	s.view(func(st *model.State) { out = guestTotalsLocked(s, st, tableID) })
	return out
}

func guestTotalsLocked(s *Store, st *model.State, tableID string) []GuestTotal {
	table := st.TableByID(tableID)
	if table == nil {
		return nil
	}
	o := st.Orders[tableID]
	out := make([]GuestTotal, 0, len(table.Guests))
	for _, g := range table.Guests {
		gt := GuestTotal{Guest: *g}
		if o != nil {
			if go2, exists := o.Guests[g.ID]; exists {
				for _, it := range go2.Items {
					gt.Sum += s.priceOf(it.DishID) * int64(it.Qty)
				}
			}
		}
		out = append(out, gt)
	}
	return out
}

// ResolveTableStatus resolves the floor status of a table in strict
// precedence order: awaiting payment with a non-zero bill, then sent or
// open order, then an active reservation for today, then free.
func (s *Store) ResolveTableStatus(tableID string) string {
	status := TableFree
	s.view(func(st *model.State) { status = s.statusLocked(st, tableID) })
	return status
}

func (s *Store) statusLocked(st *model.State, tableID string) string {
	if o, exists := st.Orders[tableID]; exists {
		if o.Payment.Status == model.PaymentStatusAwaiting && totalsLocked(s, st, tableID).Sum > 0 {
			return TableAwaitingPayment
		}
		if o.Sent() {
			return TableOrderSent
		}
		return TableOrderOpen
	}
	today := s.today()
	for _, r := range st.Reservations {
		if r.Active() && r.TableID == tableID && r.Date == today {
			return TableReserved
		}
	}
	return TableFree
}

// ComputeSplit divides the table's bill under its current split mode:
// evenly divides the total by the guest count (minimum one share) rounded
// to 2 decimal places, byGuests returns the per-guest subtotals unchanged.
func (s *Store) ComputeSplit(tableID string) Split {
	var split Split
	s.view(func(st *model.State) {
		split.Mode = model.SplitByGuests
		if o, exists := st.Orders[tableID]; exists {
			split.Mode = o.Payment.SplitMode
		}
		if split.Mode == model.SplitEvenly {
			total := totalsLocked(s, st, tableID).Sum
			guests := 1
			if table := st.TableByID(tableID); table != nil && len(table.Guests) > 1 {
				guests = len(table.Guests)
			}
			split.EvenAmount = decimal.NewFromInt(total).
				Div(decimal.NewFromInt(int64(guests))).
				Round(2).
				InexactFloat64()
			return
		}
		split.PerGuest = guestTotalsLocked(s, st, tableID)
	})
	return split
}

// TableSummaries renders the floor list: every table with its guest count,
// resolved status and totals.
func (s *Store) TableSummaries() []TableSummary {
	var out []TableSummary
	s.view(func(st *model.State) {
		out = make([]TableSummary, 0, len(st.Tables))
		for _, t := range st.Tables {
			out = append(out, TableSummary{
				ID:          t.ID,
				Number:      t.Number,
				GuestsCount: len(t.Guests),
				Status:      s.statusLocked(st, t.ID),
				Totals:      totalsLocked(s, st, t.ID),
			})
		}
	})
	return out
}

// ShiftHours computes the length of a shift in hours, rounded to one
// decimal place and floored at zero when the end precedes the start.
func ShiftHours(sh *model.Shift) float64 {
	start, okStart := parseMinutes(sh.Start)
	end, okEnd := parseMinutes(sh.End)
	if !okStart || !okEnd || end <= start {
		return 0
	}
	hours := float64(end-start) / 60
	return float64(int(hours*10+0.5)) / 10
}

func parseMinutes(hhmm string) (int, bool) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return h*60 + m, true
}

// ShiftReport sums the scheduled hours per employee for one date.
func (s *Store) ShiftReport(date string) []EmployeeHours {
	var out []EmployeeHours
	s.view(func(st *model.State) {
		byEmployee := map[string]float64{}
		for _, sh := range st.Schedule.Shifts {
			if sh.Date == date {
				byEmployee[sh.EmployeeID] += ShiftHours(sh)
			}
		}
		for _, e := range st.Schedule.Employees {
			hours, worked := byEmployee[e.ID]
			if !worked {
				continue
			}
			out = append(out, EmployeeHours{Employee: *e, Hours: hours})
		}
	})
	return out
}
