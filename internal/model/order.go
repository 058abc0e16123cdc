package model

import "time"

// Item status values. A dish moves forward through
// new -> sent -> cooking -> ready -> served; skipping ahead is allowed
// (sending an order jumps new items straight to cooking) but moving
// backwards is not. See CanAdvance.
const (
	ItemStatusNew     = "new"
	ItemStatusSent    = "sent"
	ItemStatusCooking = "cooking"
	ItemStatusReady   = "ready"
	ItemStatusServed  = "served"
)

// Payment status values for a table's bill.
const (
	PaymentStatusNone     = "none"
	PaymentStatusAwaiting = "awaiting"
	PaymentStatusPaid     = "paid"
)

// Split modes for dividing a table's bill among its guests.
const (
	SplitByGuests = "byGuests"
	SplitEvenly   = "evenly"
)

// Order is the open tab for one table, covering every guest seated there in
// the current dining cycle. It is created lazily the first time the table
// needs one and removed only by an explicit table reset. Payment is always
// present once the order exists.
type Order struct {
	OpenedAt        time.Time              `json:"openedAt"`
	SentAt          *time.Time             `json:"sentAt,omitempty"`
	RestaurantID    string                 `json:"restaurantId"`
	TableNumber     int                    `json:"tableNumber"`
	UserID          string                 `json:"userId"`
	LoyaltyMemberID string                 `json:"loyaltyMemberId,omitempty"`
	Payment         *Payment               `json:"payment"`
	Guests          map[string]*GuestOrder `json:"guests"`
}

// GuestOrder holds the line items of a single guest. One per guest per
// order, created lazily; deleted only when the whole order goes away.
type GuestOrder struct {
	Items []*OrderItem `json:"items"`
}

// OrderItem is one ordered dish instance. ID is a generated identifier that
// stays stable across removals of neighbouring items, so it is the handle
// the operation surface uses. Course is the serving sequence (1-3).
type OrderItem struct {
	ID        string    `json:"id"`
	DishID    string    `json:"dishId"`
	Qty       int       `json:"qty"`
	Note      string    `json:"note"`
	Course    int       `json:"course"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Payment tracks the bill lifecycle for an order: none until a bill is
// made, awaiting until it is paid.
type Payment struct {
	Status    string     `json:"status"`
	SplitMode string     `json:"splitMode"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	PaidAt    *time.Time `json:"paidAt,omitempty"`
}

// NewPayment returns the payment every fresh order starts with.
func NewPayment() *Payment {
	return &Payment{Status: PaymentStatusNone, SplitMode: SplitByGuests}
}

// Sent reports whether the order has been sent to the kitchen.
func (o *Order) Sent() bool { return o.SentAt != nil }

// ItemByID returns the item with the given id, or nil.
func (g *GuestOrder) ItemByID(itemID string) *OrderItem {
	for _, it := range g.Items {
		if it.ID == itemID {
			return it
		}
	}
	return nil
}

// itemStatusRank orders the item statuses along the kitchen progression.
var itemStatusRank = map[string]int{
	ItemStatusNew:     0,
	ItemStatusSent:    1,
	ItemStatusCooking: 2,
	ItemStatusReady:   3,
	ItemStatusServed:  4,
}

// ValidItemStatus reports whether s is one of the known item statuses.
func ValidItemStatus(s string) bool {
	_, ok := itemStatusRank[s]
	return ok
}

// CanAdvance reports whether an item may move from status from to status to.
// Any forward move is allowed, backward moves and unknown statuses are not.
// Setting the same status again is permitted and is a no-op for callers.
func CanAdvance(from, to string) bool {
	a, ok := itemStatusRank[from]
	if !ok {
		return false
	}
	b, ok := itemStatusRank[to]
	if !ok {
		return false
	}
	return b >= a
}
