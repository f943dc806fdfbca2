package service

import (
	"context"
	"time"
)

// OrderEventType names what happened to an order.
type OrderEventType string

const (
	OrderEventPlaced           OrderEventType = "order.placed"
	OrderEventStatusChanged    OrderEventType = "order.status_changed"
	OrderEventPaymentCompleted OrderEventType = "payment.completed"
	OrderEventPaymentFailed    OrderEventType = "payment.failed"
	OrderEventPaymentRefunded  OrderEventType = "payment.refunded"
)

// OrderEvent is published after an order change has been committed.
type OrderEvent struct {
	RequestID   string         `json:"request_id,omitempty"` // For distributed tracing
	EventID     string         `json:"event_id"`
	Type        OrderEventType `json:"type"`
	OrderID     int64          `json:"order_id"`
	CustomerID  int64          `json:"customer_id"`
	Status      string         `json:"status"`
	ServiceType string         `json:"service_type"`
	TableNumber int            `json:"table_number,omitempty"`
	Total       float64        `json:"total"`
	PaymentID   int64          `json:"payment_id,omitempty"`
	OccurredAt  time.Time      `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing order events to a message broker
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for downstream consumers such as kitchen displays
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
