package impl

import (
	"context"
	"strconv"
	"testing"
	"time"

	"coffeeshop/internal/domain/entity"
	domainerrors "coffeeshop/internal/domain/errors"
	"coffeeshop/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kitchenEvent(id string, eventType service.OrderEventType, orderID int64, status entity.OrderStatus, at time.Time) *service.OrderEvent {
	return &service.OrderEvent{
		EventID:     id,
		Type:        eventType,
		OrderID:     orderID,
		CustomerID:  1,
		Status:      string(status),
		ServiceType: string(entity.ServiceTypeDineIn),
		TableNumber: 4,
		Total:       16.96,
		OccurredAt:  at,
	}
}

func TestKitchenService_TicketLifecycle(t *testing.T) {
	srv := NewKitchenService(KitchenServiceParams{Logger: newDiscardLogger()})
	ctx := context.Background()

	require.NoError(t, srv.HandleOrderEvent(ctx, kitchenEvent("e1", service.OrderEventPlaced, 7, entity.OrderStatusPending, testNow)))
	require.NoError(t, srv.HandleOrderEvent(ctx, kitchenEvent("e2", service.OrderEventPlaced, 3, entity.OrderStatusPending, testNow.Add(time.Minute))))
	require.NoError(t, srv.HandleOrderEvent(ctx, kitchenEvent("e3", service.OrderEventPaymentCompleted, 7, entity.OrderStatusConfirmed, testNow.Add(2*time.Minute))))

	board := srv.Board(ctx)
	require.Len(t, board, 2)
	assert.Equal(t, int64(7), board[0].OrderID)
	assert.Equal(t, entity.OrderStatusConfirmed, board[0].Status)
	assert.Equal(t, testNow, board[0].PlacedAt)
	assert.Equal(t, 4, board[0].TableNumber)
	assert.Equal(t, int64(3), board[1].OrderID)

	require.NoError(t, srv.HandleOrderEvent(ctx, kitchenEvent("e4", service.OrderEventStatusChanged, 7, entity.OrderStatusCompleted, testNow.Add(3*time.Minute))))

	board = srv.Board(ctx)
	require.Len(t, board, 1)
	assert.Equal(t, int64(3), board[0].OrderID)
}

func TestKitchenService_IgnoresDuplicateAndStaleEvents(t *testing.T) {
	srv := NewKitchenService(KitchenServiceParams{Logger: newDiscardLogger()})
	ctx := context.Background()

	require.NoError(t, srv.HandleOrderEvent(ctx, kitchenEvent("e1", service.OrderEventPlaced, 7, entity.OrderStatusPending, testNow)))
	require.NoError(t, srv.HandleOrderEvent(ctx, kitchenEvent("e2", service.OrderEventStatusChanged, 7, entity.OrderStatusPreparing, testNow.Add(2*time.Minute))))

	// Late confirmation arrives after PREPARING.
	require.NoError(t, srv.HandleOrderEvent(ctx, kitchenEvent("e3", service.OrderEventPaymentCompleted, 7, entity.OrderStatusConfirmed, testNow.Add(time.Minute))))
	// Redelivery of a cancellation already applied would otherwise be replayed.
	require.NoError(t, srv.HandleOrderEvent(ctx, kitchenEvent("e2", service.OrderEventStatusChanged, 7, entity.OrderStatusCancelled, testNow.Add(5*time.Minute))))

	board := srv.Board(ctx)
	require.Len(t, board, 1)
	assert.Equal(t, entity.OrderStatusPreparing, board[0].Status)
}

func TestKitchenService_RejectsMalformedEvents(t *testing.T) {
	srv := NewKitchenService(KitchenServiceParams{Logger: newDiscardLogger()})
	ctx := context.Background()

	tests := []struct {
		name  string
		event *service.OrderEvent
	}{
		{"nil", nil},
		{"missing id", kitchenEvent("", service.OrderEventPlaced, 7, entity.OrderStatusPending, testNow)},
		{"missing order", kitchenEvent("e1", service.OrderEventPlaced, 0, entity.OrderStatusPending, testNow)},
		{"unknown status", kitchenEvent("e1", service.OrderEventPlaced, 7, "SHIPPED", testNow)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := srv.HandleOrderEvent(ctx, tt.event)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "got %v", err)
		})
	}

	assert.Empty(t, srv.Board(ctx))
}

func TestKitchenService_CancellationOvertakesPlacement(t *testing.T) {
	srv := NewKitchenService(KitchenServiceParams{Logger: newDiscardLogger()})
	ctx := context.Background()

	require.NoError(t, srv.HandleOrderEvent(ctx, kitchenEvent("e2", service.OrderEventStatusChanged, 7, entity.OrderStatusCancelled, testNow.Add(time.Minute))))
	require.NoError(t, srv.HandleOrderEvent(ctx, kitchenEvent("e1", service.OrderEventPlaced, 7, entity.OrderStatusPending, testNow)))

	assert.Empty(t, srv.Board(ctx))
}

func TestKitchenService_ClosedOrderStaysClosed(t *testing.T) {
	srv := NewKitchenService(KitchenServiceParams{Logger: newDiscardLogger()})
	ctx := context.Background()

	require.NoError(t, srv.HandleOrderEvent(ctx, kitchenEvent("e1", service.OrderEventPlaced, 7, entity.OrderStatusPending, testNow)))
	require.NoError(t, srv.HandleOrderEvent(ctx, kitchenEvent("e2", service.OrderEventStatusChanged, 7, entity.OrderStatusCompleted, testNow.Add(2*time.Minute))))
	// A PREPARING event stamped after completion still cannot reopen the ticket.
	require.NoError(t, srv.HandleOrderEvent(ctx, kitchenEvent("e3", service.OrderEventStatusChanged, 7, entity.OrderStatusPreparing, testNow.Add(3*time.Minute))))

	assert.Empty(t, srv.Board(ctx))
}

func TestKitchenService_ForgetsOldestEventIDs(t *testing.T) {
	srv := NewKitchenService(KitchenServiceParams{Logger: newDiscardLogger()}).(*kitchenService)

	for i := range seenEventCapacity + 1 {
		assert.False(t, srv.seen.Add("evt-"+strconv.Itoa(i)))
	}

	assert.Len(t, srv.seen.keys, seenEventCapacity)
	assert.Len(t, srv.seen.order, seenEventCapacity)
	assert.False(t, srv.seen.Add("evt-0"), "the oldest id was evicted")
	assert.True(t, srv.seen.Add("evt-0"))
}

func TestKitchenService_ForgetsOldestClosedOrders(t *testing.T) {
	srv := NewKitchenService(KitchenServiceParams{Logger: newDiscardLogger()}).(*kitchenService)
	ctx := context.Background()

	for i := range closedOrderCapacity + 1 {
		id := int64(i + 1)
		event := kitchenEvent("cancel-"+strconv.Itoa(i), service.OrderEventStatusChanged, id, entity.OrderStatusCancelled, testNow)
		require.NoError(t, srv.HandleOrderEvent(ctx, event))
	}

	assert.Len(t, srv.closed.keys, closedOrderCapacity)
	assert.False(t, srv.closed.Contains(1))
	assert.True(t, srv.closed.Contains(int64(closedOrderCapacity+1)))
}
