package service

import (
	"context"
	"time"
)

// Order event types
const (
	OrderEventCreated  = "order.created"
	OrderEventPaid     = "order.paid"
	OrderEventCanceled = "order.canceled"
	OrderEventStatus   = "order.status_changed"
)

// OrderEvent is published after an order changes state.
type OrderEvent struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	OrderID    int64     `json:"order_id"`
	UserID     string    `json:"user_id"`
	Status     string    `json:"status"`
	Total      string    `json:"total"`
	ItemCount  int       `json:"item_count"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for downstream consumers
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
