// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "coffeeshop/internal/delivery/context"
	"coffeeshop/internal/domain/entity"
	"coffeeshop/internal/domain/service"

	"github.com/google/uuid"
)

// newOrderEvent snapshots order for downstream consumers. paymentID is zero for non-payment events.
func newOrderEvent(ctx context.Context, eventType service.OrderEventType, order *entity.Order, paymentID int64, now time.Time) *service.OrderEvent {
	event := &service.OrderEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		EventID:     uuid.New().String(),
		Type:        eventType,
		OrderID:     order.ID,
		CustomerID:  order.CustomerID,
		Status:      string(order.Status),
		ServiceType: string(order.ServiceType),
		Total:       order.Total,
		PaymentID:   paymentID,
		OccurredAt:  now,
	}
	if order.HasTable() {
		event.TableNumber = order.TableNumber
	}

	return event
}

// publishOrderEvent sends an event after commit. A failure is logged and never reaches the caller.
func publishOrderEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.OrderEvent) {
	if publisher == nil {
		return
	}

	if err := publisher.PublishOrderEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish order event",
			slog.String("eventType", string(event.Type)),
			slog.Int64("orderID", event.OrderID),
			slog.Any("error", err),
		)
	}
}
