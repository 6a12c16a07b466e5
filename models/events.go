package models

import "time"

// CartEvent is published whenever a session's cart changes, so badge
// counters and dashboards can re-read instead of being called directly.
type CartEvent struct {
	Event     string    `json:"event"`
	SessionID string    `json:"session_id"`
	ItemCount int       `json:"item_count"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderEvent is published after an order is persisted.
type OrderEvent struct {
	Event       string    `json:"event"`
	OrderID     string    `json:"order_id"`
	TotalAmount float64   `json:"total_amount"`
	Timestamp   time.Time `json:"timestamp"`
}
