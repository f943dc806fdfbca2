package usecase

import (
	"context"
	"time"

	"coffeeshop/internal/domain/entity"
	"coffeeshop/internal/domain/service"
)

// KitchenTicket is an open order as the bar sees it.
type KitchenTicket struct {
	OrderID     int64              `json:"order_id"`
	CustomerID  int64              `json:"customer_id"`
	ServiceType entity.ServiceType `json:"service_type"`
	TableNumber int                `json:"table_number,omitempty"`
	Status      entity.OrderStatus `json:"status"`
	Total       float64            `json:"total"`
	PlacedAt    time.Time          `json:"placed_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// KitchenUsecase keeps the board of open orders fed by order events.
type KitchenUsecase interface {
	// HandleOrderEvent applies an event. Redelivered events and events older than the ticket are ignored.
	HandleOrderEvent(ctx context.Context, event *service.OrderEvent) error

	// Board lists open tickets, oldest first.
	Board(ctx context.Context) []KitchenTicket
}
