package model

// Deep copies for the clone-then-replace mutation discipline: every state
// mutation works on a full copy which atomically replaces the live tree.
// The copies share nothing with the originals, so readers holding the old
// tree never observe a partial mutation.

// Clone returns a deep copy of the whole aggregate.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	out := &State{
		Version:        s.Version,
		Session:        s.Session,
		Tables:         make([]*Table, 0, len(s.Tables)),
		Orders:         make(map[string]*Order, len(s.Orders)),
		Reservations:   make([]*Reservation, 0, len(s.Reservations)),
		LoyaltyMembers: make([]*LoyaltyMember, 0, len(s.LoyaltyMembers)),
		Schedule:       s.Schedule.Clone(),
	}
	if s.Session.User != nil {
		u := *s.Session.User
		out.Session.User = &u
	}
	for _, t := range s.Tables {
		out.Tables = append(out.Tables, t.Clone())
	}
	for tableID, o := range s.Orders {
		out.Orders[tableID] = o.Clone()
	}
	for _, r := range s.Reservations {
		c := *r
		out.Reservations = append(out.Reservations, &c)
	}
	for _, m := range s.LoyaltyMembers {
		c := *m
		out.LoyaltyMembers = append(out.LoyaltyMembers, &c)
	}
	return out
}

// Clone returns a deep copy of the table and its guests.
func (t *Table) Clone() *Table {
	out := &Table{ID: t.ID, Number: t.Number, Guests: make([]*Guest, 0, len(t.Guests))}
	for _, g := range t.Guests {
		c := *g
		out.Guests = append(out.Guests, &c)
	}
	return out
}

// Clone returns a deep copy of the order, its payment and every guest order.
func (o *Order) Clone() *Order {
	out := *o
	if o.SentAt != nil {
		ts := *o.SentAt
		out.SentAt = &ts
	}
	out.Payment = o.Payment.Clone()
	out.Guests = make(map[string]*GuestOrder, len(o.Guests))
	for guestID, g := range o.Guests {
		out.Guests[guestID] = g.Clone()
	}
	return &out
}

// Clone returns a deep copy of the guest order and its items.
func (g *GuestOrder) Clone() *GuestOrder {
	out := &GuestOrder{Items: make([]*OrderItem, 0, len(g.Items))}
	for _, it := range g.Items {
		c := *it
		out.Items = append(out.Items, &c)
	}
	return out
}

// Clone returns a deep copy of the payment.
func (p *Payment) Clone() *Payment {
	if p == nil {
		return nil
	}
	out := *p
	if p.CreatedAt != nil {
		ts := *p.CreatedAt
		out.CreatedAt = &ts
	}
	if p.PaidAt != nil {
		ts := *p.PaidAt
		out.PaidAt = &ts
	}
	return &out
}

// Clone returns a deep copy of the schedule.
func (s Schedule) Clone() Schedule {
	out := Schedule{
		Employees: make([]*Employee, 0, len(s.Employees)),
		Shifts:    make([]*Shift, 0, len(s.Shifts)),
	}
	for _, e := range s.Employees {
		c := *e
		out.Employees = append(out.Employees, &c)
	}
	for _, sh := range s.Shifts {
		c := *sh
		out.Shifts = append(out.Shifts, &c)
	}
	return out
}
