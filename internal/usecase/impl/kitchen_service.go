package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"sync"

	deliverycontext "coffeeshop/internal/delivery/context"
	"coffeeshop/internal/domain/entity"
	domainerrors "coffeeshop/internal/domain/errors"
	"coffeeshop/internal/domain/service"
	"coffeeshop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// seenEventCapacity bounds the redelivery window.
	seenEventCapacity = 1024
	// closedOrderCapacity bounds how many finished orders are remembered against late events.
	closedOrderCapacity = 1024
)

// kitchenService implements the KitchenUsecase interface in memory.
type kitchenService struct {
	logger *slog.Logger

	mu      sync.Mutex
	tickets map[int64]*usecase.KitchenTicket
	seen    *recentSet[string]
	closed  *recentSet[int64]
}

// KitchenServiceParams holds dependencies for KitchenService, injected by Fx.
type KitchenServiceParams struct {
	fx.In

	Logger *slog.Logger
}

// NewKitchenService is the constructor for kitchenService.
func NewKitchenService(params KitchenServiceParams) usecase.KitchenUsecase {
	return &kitchenService{
		logger:  params.Logger,
		tickets: make(map[int64]*usecase.KitchenTicket),
		seen:    newRecentSet[string](seenEventCapacity),
		closed:  newRecentSet[int64](closedOrderCapacity),
	}
}

func (srv *kitchenService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleOrderEvent mirrors the order snapshot carried by event onto the board.
func (srv *kitchenService) HandleOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	if err := validateOrderEvent(event); err != nil {
		return err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.seen.Add(event.EventID) {
		srv.log(ctx).Debug("Duplicate order event ignored", slog.String("eventID", event.EventID))

		return nil
	}

	// Delivery order is not guaranteed: a terminal status may overtake the events before it.
	if srv.closed.Contains(event.OrderID) {
		srv.log(ctx).Debug("Event for closed order ignored",
			slog.String("eventID", event.EventID),
			slog.Int64("orderID", event.OrderID),
		)

		return nil
	}

	status := entity.OrderStatus(event.Status)
	ticket, exists := srv.tickets[event.OrderID]

	if exists && event.OccurredAt.Before(ticket.UpdatedAt) {
		srv.log(ctx).Debug("Stale order event ignored",
			slog.String("eventID", event.EventID),
			slog.Int64("orderID", event.OrderID),
		)

		return nil
	}

	if status.IsTerminal() {
		srv.closed.Add(event.OrderID)
		if exists {
			delete(srv.tickets, event.OrderID)
			srv.log(ctx).Info("Ticket closed", slog.Int64("orderID", event.OrderID), slog.String("status", event.Status))
		}

		return nil
	}

	if !exists {
		ticket = &usecase.KitchenTicket{
			OrderID:  event.OrderID,
			PlacedAt: event.OccurredAt,
		}
		srv.tickets[event.OrderID] = ticket
	}
	ticket.CustomerID = event.CustomerID
	ticket.ServiceType = entity.ServiceType(event.ServiceType)
	ticket.TableNumber = event.TableNumber
	ticket.Status = status
	ticket.Total = event.Total
	ticket.UpdatedAt = event.OccurredAt

	srv.log(ctx).Info("Ticket updated",
		slog.Int64("orderID", event.OrderID),
		slog.String("eventType", string(event.Type)),
		slog.String("status", event.Status),
	)

	return nil
}

// Board returns copies of the open tickets, oldest first.
func (srv *kitchenService) Board(_ context.Context) []usecase.KitchenTicket {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	board := make([]usecase.KitchenTicket, 0, len(srv.tickets))
	for _, ticket := range srv.tickets {
		board = append(board, *ticket)
	}

	slices.SortFunc(board, func(a, b usecase.KitchenTicket) int {
		if c := a.PlacedAt.Compare(b.PlacedAt); c != 0 {
			return c
		}

		return cmp.Compare(a.OrderID, b.OrderID)
	})

	return board
}

// recentSet remembers the most recent keys up to a fixed capacity, forgetting the oldest first.
type recentSet[K comparable] struct {
	capacity int
	keys     map[K]struct{}
	order    []K
}

func newRecentSet[K comparable](capacity int) *recentSet[K] {
	return &recentSet[K]{
		capacity: capacity,
		keys:     make(map[K]struct{}, capacity),
	}
}

func (s *recentSet[K]) Contains(key K) bool {
	_, ok := s.keys[key]

	return ok
}

// Add records key and reports whether it was already present.
func (s *recentSet[K]) Add(key K) bool {
	if s.Contains(key) {
		return true
	}

	s.keys[key] = struct{}{}
	s.order = append(s.order, key)
	if len(s.order) > s.capacity {
		delete(s.keys, s.order[0])
		s.order = s.order[1:]
	}

	return false
}

func validateOrderEvent(event *service.OrderEvent) error {
	switch {
	case event == nil:
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("event is required"))
	case event.EventID == "":
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("event_id is required"))
	case event.OrderID <= 0:
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("order_id must be positive"))
	case !entity.OrderStatus(event.Status).IsValid():
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown order status " + event.Status))
	}

	return nil
}
