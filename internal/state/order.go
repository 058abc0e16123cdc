package state

import (
	"time"

	"github.com/moodfood/restaurant-floor/internal/model"
	"github.com/moodfood/restaurant-floor/internal/queue"
)

// ensureOrder returns the table's order, creating it lazily. Repeated calls
// return the same order without touching openedAt. Returns nil when the
// table does not exist: an order may only exist for a valid table.
func (s *Store) ensureOrder(st *model.State, tableID string) *model.Order {
	table := st.TableByID(tableID)
	if table == nil {
		return nil
	}
	if o, ok := st.Orders[tableID]; ok {
		return o
	}
	o := &model.Order{
		OpenedAt:     s.now(),
		RestaurantID: s.catalog.User.RestaurantID,
		TableNumber:  table.Number,
		UserID:       s.catalog.User.ID,
		Payment:      model.NewPayment(),
		Guests:       map[string]*model.GuestOrder{},
	}
	st.Orders[tableID] = o
	return o
}

// EnsureOrder opens an order for the table if none exists. A missing table
// is a silent no-op.
func (s *Store) EnsureOrder(tableID string) error {
	return s.mutate(func(st *model.State) error {
		s.ensureOrder(st, tableID)
		return nil
	})
}

// SeatGuest appends a guest with the next sequential number, opens the
// order if needed and initializes the guest's empty sub-order. The second
// return is false when the table does not exist.
func (s *Store) SeatGuest(tableID string) (model.Guest, bool) {
	var seated model.Guest
	var ok bool
	_ = s.mutate(func(st *model.State) error {
		table := st.TableByID(tableID)
		if table == nil {
			return nil
		}
		g := &model.Guest{ID: s.newID("g"), Number: len(table.Guests) + 1}
		table.Guests = append(table.Guests, g)
		o := s.ensureOrder(st, tableID)
		if _, exists := o.Guests[g.ID]; !exists {
			o.Guests[g.ID] = &model.GuestOrder{Items: []*model.OrderItem{}}
		}
		seated, ok = *g, true
		return nil
	})
	return seated, ok
}

// AddItem appends one unit of a dish to the guest's item list. The item
// starts in status new, or cooking when the order was already sent. A
// missing table or guest is a silent no-op; an unknown or stop-listed dish
// is reported so the UI can tell the waiter.
func (s *Store) AddItem(tableID, guestID, dishID string) error {
	dish := s.catalog.DishByID(dishID)
	if dish == nil {
		return ErrDishNotFound
	}
	if dish.IsStopped {
		return ErrDishUnavailable
	}
	return s.mutate(func(st *model.State) error {
		table := st.TableByID(tableID)
		if table == nil || table.GuestByID(guestID) == nil {
			return nil
		}
		o := s.ensureOrder(st, tableID)
		g, exists := o.Guests[guestID]
		if !exists {
			g = &model.GuestOrder{Items: []*model.OrderItem{}}
			o.Guests[guestID] = g
		}
		status := model.ItemStatusNew
		if o.Sent() {
			status = model.ItemStatusCooking
		}
		g.Items = append(g.Items, &model.OrderItem{
			ID:        s.newID("it"),
			DishID:    dishID,
			Qty:       1,
			Course:    1,
			Status:    status,
			CreatedAt: s.now(),
		})
		return nil
	})
}

// RemoveItem deletes the identified item from the guest's list. Unknown
// table, guest or item is a silent no-op.
func (s *Store) RemoveItem(tableID, guestID, itemID string) error {
	return s.mutate(func(st *model.State) error {
		g := guestOrderOf(st, tableID, guestID)
		if g == nil {
			return nil
		}
		for i, it := range g.Items {
			if it.ID == itemID {
				g.Items = append(g.Items[:i], g.Items[i+1:]...)
				return nil
			}
		}
		return nil
	})
}

// UpdateNote replaces the kitchen note of an item.
func (s *Store) UpdateNote(tableID, guestID, itemID, note string) error {
	return s.mutate(func(st *model.State) error {
		if it := itemOf(st, tableID, guestID, itemID); it != nil {
			it.Note = note
		}
		return nil
	})
}

// SetCourse changes the serving course (1-3) of an item. Values outside
// the range are ignored.
func (s *Store) SetCourse(tableID, guestID, itemID string, course int) error {
	if course < 1 || course > 3 {
		return nil
	}
	return s.mutate(func(st *model.State) error {
		if it := itemOf(st, tableID, guestID, itemID); it != nil {
			it.Course = course
		}
		return nil
	})
}

// SetItemStatus moves an item along the kitchen progression. Backward or
// unknown moves fail with ErrBadStatusChange; the rest of the aggregate is
// untouched in that case.
func (s *Store) SetItemStatus(tableID, guestID, itemID, status string) error {
	return s.mutate(func(st *model.State) error {
		it := itemOf(st, tableID, guestID, itemID)
		if it == nil {
			return nil
		}
		if !model.CanAdvance(it.Status, status) {
			return ErrBadStatusChange
		}
		it.Status = status
		return nil
	})
}

// SendOrder stamps the order as sent and moves every new or sent item to
// cooking, representing the kitchen accepting the ticket. It returns the
// event describing the ticket so the caller can publish it; ok is false
// when the table does not exist.
func (s *Store) SendOrder(tableID string) (queue.OrderSentEvent, bool) {
	var evt queue.OrderSentEvent
	var ok bool
	_ = s.mutate(func(st *model.State) error {
		table := st.TableByID(tableID)
		if table == nil {
			return nil
		}
		o := s.ensureOrder(st, tableID)
		sentAt := s.now()
		o.SentAt = &sentAt
		for _, g := range table.Guests {
			go2, exists := o.Guests[g.ID]
			if !exists {
				continue
			}
			for _, it := range go2.Items {
				if it.Status == model.ItemStatusNew || it.Status == model.ItemStatusSent {
					it.Status = model.ItemStatusCooking
				}
				line := queue.TicketLine{
					GuestNumber: g.Number,
					DishID:      it.DishID,
					Qty:         it.Qty,
					Note:        it.Note,
					Course:      it.Course,
				}
				if dish := s.catalog.DishByID(it.DishID); dish != nil {
					line.Title = dish.Title
				}
				evt.Items = append(evt.Items, line)
			}
		}
		evt.RestaurantID = o.RestaurantID
		evt.TableID = tableID
		evt.TableNumber = o.TableNumber
		evt.UserID = o.UserID
		evt.SentAt = sentAt.UTC().Format(time.RFC3339)
		ok = true
		return nil
	})
	return evt, ok
}

// ResetTable clears the table's guests and deletes its order entirely.
// This is the only way an order or a guest order is ever removed.
func (s *Store) ResetTable(tableID string) error {
	return s.mutate(func(st *model.State) error {
		if table := st.TableByID(tableID); table != nil {
			table.Guests = []*model.Guest{}
		}
		delete(st.Orders, tableID)
		return nil
	})
}

func guestOrderOf(st *model.State, tableID, guestID string) *model.GuestOrder {
	o, exists := st.Orders[tableID]
	if !exists {
		return nil
	}
	return o.Guests[guestID]
}

func itemOf(st *model.State, tableID, guestID, itemID string) *model.OrderItem {
	g := guestOrderOf(st, tableID, guestID)
	if g == nil {
		return nil
	}
	return g.ItemByID(itemID)
}
