package state

import (
	"encoding/json"
	"time"

	"github.com/moodfood/restaurant-floor/internal/catalog"
	"github.com/moodfood/restaurant-floor/internal/model"
)

// The normalizer turns whatever was persisted (nothing, a truncated write,
// a blob from an older schema) into a fully shaped current-version tree.
// Decoding is field-by-field: each top-level field is accepted only when it
// unmarshals into the expected shape, otherwise the default built from the
// catalog is used. It never fails and is idempotent: normalizing an
// already-normalized tree leaves it unchanged.

// rawSnapshot splits the blob into independently decodable fields so one
// malformed field cannot poison its siblings.
type rawSnapshot struct {
	Session        json.RawMessage `json:"session"`
	Tables         json.RawMessage `json:"tables"`
	Orders         json.RawMessage `json:"orders"`
	Reservations   json.RawMessage `json:"reservations"`
	LoyaltyMembers json.RawMessage `json:"loyaltyMembers"`
	Schedule       json.RawMessage `json:"schedule"`
}

// DefaultState builds the tree a brand new session starts with: the
// catalog's tables with no guests, no orders, no reservations, the seed
// loyalty members and the reference schedule.
func DefaultState(cat *catalog.Catalog) *model.State {
	st := &model.State{
		Version:      model.SchemaVersion,
		Tables:       make([]*model.Table, 0, len(cat.Tables)),
		Orders:       map[string]*model.Order{},
		Reservations: []*model.Reservation{},
	}
	for _, seed := range cat.Tables {
		st.Tables = append(st.Tables, &model.Table{ID: seed.ID, Number: seed.Number, Guests: []*model.Guest{}})
	}
	for _, m := range cat.LoyaltyMembers {
		c := *m
		st.LoyaltyMembers = append(st.LoyaltyMembers, &c)
	}
	st.Schedule = defaultSchedule(cat)
	return st
}

func defaultSchedule(cat *catalog.Catalog) model.Schedule {
	sch := model.Schedule{Employees: []*model.Employee{}, Shifts: []*model.Shift{}}
	for _, e := range cat.Employees {
		c := *e
		sch.Employees = append(sch.Employees, &c)
	}
	for _, sh := range cat.Shifts {
		c := *sh
		sch.Shifts = append(sch.Shifts, &c)
	}
	return sch
}

// Normalize decodes blob into a current-version tree, falling back to
// defaults wherever the blob is absent or malformed. now stamps fields the
// blob is missing; newID backfills missing item ids.
func Normalize(blob []byte, cat *catalog.Catalog, now time.Time, newID func(prefix string) string) *model.State {
	def := DefaultState(cat)
	if len(blob) == 0 {
		return def
	}
	var raw rawSnapshot
	if err := json.Unmarshal(blob, &raw); err != nil {
		return def
	}

	st := &model.State{Version: model.SchemaVersion}
	st.Session = normalizeSession(raw.Session, cat)
	st.Tables = normalizeTables(raw.Tables, def)
	st.Orders = normalizeOrders(raw.Orders, st, cat, now, newID)
	st.Reservations = normalizeReservations(raw.Reservations)
	st.LoyaltyMembers = normalizeMembers(raw.LoyaltyMembers, def)
	st.Schedule = normalizeSchedule(raw.Schedule, cat)
	return st
}

func normalizeSession(raw json.RawMessage, cat *catalog.Catalog) model.Session {
	var s model.Session
	if len(raw) > 0 {
		// Partial decodes are fine: fields that fail keep their zero value.
		_ = json.Unmarshal(raw, &s)
	}
	if s.Authenticated && s.User == nil {
		u := cat.User
		s.User = &u
	}
	if !s.Authenticated {
		s.User = nil
	}
	return s
}

func normalizeTables(raw json.RawMessage, def *model.State) []*model.Table {
	var entries []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &entries) != nil || len(entries) == 0 {
		return def.Tables
	}
	tables := make([]*model.Table, 0, len(entries))
	for _, entry := range entries {
		var t model.Table
		_ = json.Unmarshal(entry, &t)
		if t.ID == "" {
			continue
		}
		guests := make([]*model.Guest, 0, len(t.Guests))
		for _, g := range t.Guests {
			if g == nil || g.ID == "" {
				continue
			}
			guests = append(guests, g)
		}
		t.Guests = guests
		tables = append(tables, &t)
	}
	if len(tables) == 0 {
		return def.Tables
	}
	return tables
}

func normalizeOrders(raw json.RawMessage, st *model.State, cat *catalog.Catalog, now time.Time, newID func(string) string) map[string]*model.Order {
	orders := map[string]*model.Order{}
	var entries map[string]json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &entries) != nil {
		return orders
	}
	for tableID, entry := range entries {
		table := st.TableByID(tableID)
		if table == nil {
			// An order may only exist for a valid table.
			continue
		}
		orders[tableID] = normalizeOrder(entry, table, cat, now, newID)
	}
	return orders
}

func normalizeOrder(entry json.RawMessage, table *model.Table, cat *catalog.Catalog, now time.Time, newID func(string) string) *model.Order {
	var ow struct {
		OpenedAt        *time.Time                 `json:"openedAt"`
		SentAt          *time.Time                 `json:"sentAt"`
		RestaurantID    string                     `json:"restaurantId"`
		UserID          string                     `json:"userId"`
		LoyaltyMemberID string                     `json:"loyaltyMemberId"`
		Payment         json.RawMessage            `json:"payment"`
		Guests          map[string]json.RawMessage `json:"guests"`
	}
	_ = json.Unmarshal(entry, &ow)

	o := &model.Order{
		SentAt:          ow.SentAt,
		RestaurantID:    ow.RestaurantID,
		TableNumber:     table.Number,
		UserID:          ow.UserID,
		LoyaltyMemberID: ow.LoyaltyMemberID,
		Guests:          map[string]*model.GuestOrder{},
	}
	if ow.OpenedAt != nil {
		o.OpenedAt = *ow.OpenedAt
	} else {
		o.OpenedAt = now
	}
	if o.RestaurantID == "" {
		o.RestaurantID = cat.User.RestaurantID
	}
	if o.UserID == "" {
		o.UserID = cat.User.ID
	}
	o.Payment = normalizePayment(ow.Payment)

	for guestID, rawGO := range ow.Guests {
		if table.GuestByID(guestID) == nil {
			// Guest order keys must reference guests seated at the table.
			continue
		}
		o.Guests[guestID] = normalizeGuestOrder(rawGO, o, newID)
	}
	return o
}

func normalizePayment(raw json.RawMessage) *model.Payment {
	p := model.NewPayment()
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, p)
	}
	switch p.Status {
	case model.PaymentStatusNone, model.PaymentStatusAwaiting, model.PaymentStatusPaid:
	default:
		p.Status = model.PaymentStatusNone
	}
	switch p.SplitMode {
	case model.SplitByGuests, model.SplitEvenly:
	default:
		p.SplitMode = model.SplitByGuests
	}
	return p
}

func normalizeGuestOrder(raw json.RawMessage, o *model.Order, newID func(string) string) *model.GuestOrder {
	g := &model.GuestOrder{Items: []*model.OrderItem{}}
	var gw struct {
		Items []json.RawMessage `json:"items"`
	}
	if json.Unmarshal(raw, &gw) != nil {
		return g
	}
	for _, rawItem := range gw.Items {
		var it model.OrderItem
		_ = json.Unmarshal(rawItem, &it)
		if it.ID == "" {
			it.ID = newID("it")
		}
		if it.Qty < 1 {
			it.Qty = 1
		}
		if it.Course < 1 {
			it.Course = 1
		}
		if !model.ValidItemStatus(it.Status) {
			if o.Sent() {
				it.Status = model.ItemStatusCooking
			} else {
				it.Status = model.ItemStatusNew
			}
		}
		if it.CreatedAt.IsZero() {
			it.CreatedAt = o.OpenedAt
		}
		g.Items = append(g.Items, &it)
	}
	return g
}

func normalizeReservations(raw json.RawMessage) []*model.Reservation {
	out := []*model.Reservation{}
	var entries []*model.Reservation
	if len(raw) == 0 || json.Unmarshal(raw, &entries) != nil {
		return out
	}
	for _, r := range entries {
		if r == nil || r.ID == "" || r.TableID == "" {
			continue
		}
		if r.Status != model.ReservationActive && r.Status != model.ReservationCancelled {
			// Unrecognized status stays in history but never conflicts.
			r.Status = model.ReservationCancelled
		}
		out = append(out, r)
	}
	return out
}

func normalizeMembers(raw json.RawMessage, def *model.State) []*model.LoyaltyMember {
	var entries []*model.LoyaltyMember
	if len(raw) == 0 || json.Unmarshal(raw, &entries) != nil {
		return def.LoyaltyMembers
	}
	out := make([]*model.LoyaltyMember, 0, len(entries))
	for _, m := range entries {
		if m == nil || m.ID == "" {
			continue
		}
		out = append(out, m)
	}
	if len(out) == 0 {
		return def.LoyaltyMembers
	}
	return out
}

func normalizeSchedule(raw json.RawMessage, cat *catalog.Catalog) model.Schedule {
	def := defaultSchedule(cat)
	var sw struct {
		Employees json.RawMessage `json:"employees"`
		Shifts    json.RawMessage `json:"shifts"`
	}
	if len(raw) == 0 || json.Unmarshal(raw, &sw) != nil {
		return def
	}
	sch := model.Schedule{}
	if json.Unmarshal(sw.Employees, &sch.Employees) != nil || len(sch.Employees) == 0 {
		sch.Employees = def.Employees
	}
	if json.Unmarshal(sw.Shifts, &sch.Shifts) != nil || len(sch.Shifts) == 0 {
		sch.Shifts = def.Shifts
	}
	return sch
}
