// Package queue defines message payloads exchanged over the message broker.
package queue

// KitchenQueueName is the durable queue kitchen tickets are published to.
const KitchenQueueName = "kitchen.order.sent"

// TicketLine is one dish on a kitchen ticket, carrying everything the
// kitchen needs without querying the floor service back.
type TicketLine struct {
	GuestNumber int    `json:"guest_number"`
	DishID      string `json:"dish_id"`
	Title       string `json:"title,omitempty"`
	Qty         int    `json:"qty"`
	Note        string `json:"note,omitempty"`
	Course      int    `json:"course"`
}

// OrderSentEvent is published when a waiter sends a table's order to the
// kitchen. The kitchen side of this system is a mock, so delivery is
// best-effort: a lost event never blocks or rolls back the floor state.
type OrderSentEvent struct {
	RestaurantID string       `json:"restaurant_id"`
	TableID      string       `json:"table_id"`
	TableNumber  int          `json:"table_number"`
	UserID       string       `json:"user_id"`
	Items        []TicketLine `json:"items"`
	SentAt       string       `json:"sent_at"`
}
