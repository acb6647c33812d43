package model

import "time"

type OrderEventType string

const (
	OrderEventCreated       OrderEventType = "order.created"
	OrderEventStatusChanged OrderEventType = "order.status_changed"
)

// OrderEvent notifies staff of lifecycle changes. Listings are reconciled by
// hand from this stream.
type OrderEvent struct {
	Type           OrderEventType `json:"type"`
	OrderID        string         `json:"order_id"`
	SimID          string         `json:"sim_id"`
	PhoneNumber    string         `json:"phone_number"`
	Price          int64          `json:"price"`
	Status         OrderStatus    `json:"status"`
	PreviousStatus OrderStatus    `json:"previous_status,omitempty"`
	OccurredAt     time.Time      `json:"occurred_at"`
}
