package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "coffeeshop/internal/delivery/context"
	"coffeeshop/internal/domain/entity"
	domainerrors "coffeeshop/internal/domain/errors"
	"coffeeshop/internal/domain/repository"
	"coffeeshop/internal/domain/service"
	"coffeeshop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// GuestCustomerID places an order without a customer account. Guests earn no loyalty points.
const GuestCustomerID int64 = 0

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder validates the customer, the menu items and the table, then stores the order with its lines
// in one transaction.
func (srv *orderService) PlaceOrder(ctx context.Context, input usecase.PlaceOrderInput) (*entity.Order, error) {
	if err := validatePlaceOrderInput(input); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Placing order",
		slog.Int64("customerID", input.CustomerID),
		slog.String("serviceType", string(input.ServiceType)),
		slog.Int("lines", len(input.Items)),
	)

	now := srv.now()
	var placed *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if input.CustomerID != GuestCustomerID {
			if _, err := repoFactory.NewCustomerRepository().FindByID(ctx, input.CustomerID); err != nil {
				return mapCustomerError(err)
			}
		}

		order := entity.NewOrder(input.CustomerID, input.ServiceType, now)
		order.SpecialInstructions = strings.TrimSpace(input.SpecialInstructions)
		if input.ServiceType == entity.ServiceTypeDineIn {
			order.SetTableNumber(input.TableNumber)
		}

		if err := addOrderLines(ctx, repoFactory.NewMenuItemRepository(), order, input.Items); err != nil {
			return err
		}
		order.SetDiscount(input.Discount)

		if order.HasTable() {
			if err := ensureTableUsable(ctx, repoFactory.NewTableRepository(), order, now); err != nil {
				return err
			}
		}

		if err := repoFactory.NewOrderRepository().Create(ctx, order); err != nil {
			return errors.Wrap(domainerrors.ErrOrderCreationFailed, err.Error())
		}
		placed = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to place order", slog.Int64("customerID", input.CustomerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to place order")
	}

	srv.log(ctx).Info("Order placed",
		slog.Int64("orderID", placed.ID),
		slog.Float64("total", placed.Total),
	)
	publishOrderEvent(ctx, srv.publisher, srv.log(ctx), newOrderEvent(ctx, service.OrderEventPlaced, placed, 0, now))

	return placed, nil
}

func validatePlaceOrderInput(input usecase.PlaceOrderInput) error {
	if !input.ServiceType.IsValid() {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown service type %q", input.ServiceType)
	}
	if len(input.Items) == 0 {
		return errors.WithStack(domainerrors.ErrEmptyOrder)
	}
	for _, line := range input.Items {
		if line.Quantity <= 0 {
			return errors.Wrapf(domainerrors.ErrInvalidQuantity, "menu item %d", line.MenuItemID)
		}
	}
	if input.Discount < 0 {
		return errors.WithStack(domainerrors.ErrInvalidDiscount)
	}
	if input.ServiceType == entity.ServiceTypeDineIn && input.TableNumber <= 0 {
		return errors.WithStack(domainerrors.ErrTableRequired)
	}

	return nil
}

// addOrderLines resolves every requested menu item in one query and appends the configured lines.
func addOrderLines(ctx context.Context, menuRepo repository.MenuItemRepository, order *entity.Order, lines []usecase.OrderLineInput) error {
	ids := make([]int64, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.MenuItemID)
	}

	items, err := menuRepo.FindByIDs(ctx, ids)
	if err != nil {
		return errors.Wrap(err, "failed to load menu items")
	}

	for _, line := range lines {
		item, ok := items[line.MenuItemID]
		if !ok {
			return errors.Wrapf(domainerrors.ErrMenuItemNotFound, "menu item %d", line.MenuItemID)
		}
		if err := addOrderLine(order, item, line); err != nil {
			return err
		}
	}

	return nil
}

func addOrderLine(order *entity.Order, item *entity.MenuItem, line usecase.OrderLineInput) error {
	if !item.Available {
		return errors.Wrapf(domainerrors.ErrMenuItemUnavailable, "%s", item.Name)
	}

	configured := configureLine(item, line)
	if existing := order.FindItem(item.ID); existing != nil && !existing.MenuItem.SameConfiguration(configured) {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("%s is already on the order with different options", item.Name)))
	}

	if !order.AddLine(configured, line.Quantity, strings.TrimSpace(line.Notes)) {
		return errors.Wrapf(domainerrors.ErrInvalidQuantity, "menu item %d", line.MenuItemID)
	}

	return nil
}

// configureLine applies the per-line coffee options. Omitted options keep the catalog defaults.
func configureLine(item *entity.MenuItem, line usecase.OrderLineInput) *entity.MenuItem {
	if !item.IsCoffee() {
		return item
	}

	size := item.Coffee.Size
	if line.Size != "" {
		size = line.Size
	}
	hot := item.Coffee.Hot
	if line.Hot != nil {
		hot = *line.Hot
	}
	customizations := item.Customizations()
	if line.Customizations != nil {
		customizations = line.Customizations
	}

	return item.Configure(size, hot, customizations)
}

// ensureTableUsable accepts a free table, a reserved one, or one already seated by the same customer.
func ensureTableUsable(ctx context.Context, tableRepo repository.TableRepository, order *entity.Order, now time.Time) error {
	table, err := tableRepo.FindByNumber(ctx, order.TableNumber)
	if err != nil {
		return mapTableError(err)
	}

	switch table.CurrentStatus(now) {
	case entity.TableStatusAvailable, entity.TableStatusReserved:
		return nil
	case entity.TableStatusOccupied:
		if order.CustomerID != GuestCustomerID && table.CustomerID == order.CustomerID {
			return nil
		}
	}

	return errors.Wrapf(domainerrors.ErrTableUnavailable, "table %d is %s", table.Number, table.Status)
}

// GetOrder returns an order with its lines.
func (srv *orderService) GetOrder(ctx context.Context, id int64) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapOrderError(err)
	}

	return order, nil
}

// ListOrders lists orders narrowed by filter.
func (srv *orderService) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown order status %q", *filter.Status)
	}

	orders, err := srv.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// AddItem appends a line to a pending order.
func (srv *orderService) AddItem(ctx context.Context, orderID int64, line usecase.OrderLineInput) (*entity.Order, error) {
	if line.Quantity <= 0 {
		return nil, errors.WithStack(domainerrors.ErrInvalidQuantity)
	}

	return srv.editOrder(ctx, orderID, func(repoFactory repository.RepositoryFactory, order *entity.Order) error {
		item, err := repoFactory.NewMenuItemRepository().FindByID(ctx, line.MenuItemID)
		if err != nil {
			return mapMenuItemError(err)
		}

		return addOrderLine(order, item, line)
	})
}

// UpdateItemQuantity sets the quantity of a line. Zero or less removes the line.
func (srv *orderService) UpdateItemQuantity(ctx context.Context, orderID, menuItemID int64, quantity int) (*entity.Order, error) {
	return srv.editOrder(ctx, orderID, func(_ repository.RepositoryFactory, order *entity.Order) error {
		if !order.UpdateItemQuantity(menuItemID, quantity) {
			return errors.Wrapf(domainerrors.ErrMenuItemNotFound, "menu item %d is not on order %d", menuItemID, orderID)
		}

		return nil
	})
}

// RemoveItem drops a line from a pending order.
func (srv *orderService) RemoveItem(ctx context.Context, orderID, menuItemID int64) (*entity.Order, error) {
	return srv.editOrder(ctx, orderID, func(_ repository.RepositoryFactory, order *entity.Order) error {
		if !order.RemoveItem(menuItemID) {
			return errors.Wrapf(domainerrors.ErrMenuItemNotFound, "menu item %d is not on order %d", menuItemID, orderID)
		}

		return nil
	})
}

// ApplyDiscount sets the absolute discount of a pending order.
func (srv *orderService) ApplyDiscount(ctx context.Context, orderID int64, amount float64) (*entity.Order, error) {
	return srv.editOrder(ctx, orderID, func(_ repository.RepositoryFactory, order *entity.Order) error {
		if !order.SetDiscount(amount) {
			return errors.WithStack(domainerrors.ErrInvalidDiscount)
		}

		return nil
	})
}

// editOrder locks a pending order, applies edit and saves the header and lines.
// An edit that leaves the order without lines is rejected.
func (srv *orderService) editOrder(
	ctx context.Context,
	orderID int64,
	edit func(repoFactory repository.RepositoryFactory, order *entity.Order) error,
) (*entity.Order, error) {
	var edited *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		order, err := orderRepo.FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return mapOrderError(err)
		}
		if order.Status != entity.OrderStatusPending {
			return errors.Wrapf(domainerrors.ErrOrderNotEditable, "order %d is %s", orderID, order.Status)
		}

		if err := edit(repoFactory, order); err != nil {
			return err
		}
		if order.IsEmpty() {
			return errors.Wrap(domainerrors.ErrEmptyOrder, "remove the order instead")
		}
		order.UpdatedAt = srv.now()

		if err := orderRepo.Update(ctx, order); err != nil {
			return mapOrderError(err)
		}
		edited = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to edit order", slog.Int64("orderID", orderID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to edit order")
	}

	return edited, nil
}

// UpdateStatus moves the order along the status machine. Completing or cancelling a dine-in order
// frees its table in the same transaction.
func (srv *orderService) UpdateStatus(ctx context.Context, orderID int64, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown order status %q", status)
	}

	now := srv.now()
	var updated *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		order, err := orderRepo.FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return mapOrderError(err)
		}

		previous := order.Status
		if !order.SetStatus(status, now) {
			return errors.Wrapf(domainerrors.ErrInvalidStatusTransition, "%s -> %s", previous, status)
		}

		if err := orderRepo.UpdateStatus(ctx, order); err != nil {
			return mapOrderError(err)
		}

		if order.ReleasesTable(previous) {
			if err := releaseOrderTable(ctx, repoFactory.NewTableRepository(), order); err != nil {
				return err
			}
		}
		updated = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update order status",
			slog.Int64("orderID", orderID),
			slog.String("status", string(status)),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to update order status")
	}

	srv.log(ctx).Info("Order status changed", slog.Int64("orderID", orderID), slog.String("status", string(status)))
	publishOrderEvent(ctx, srv.publisher, srv.log(ctx), newOrderEvent(ctx, service.OrderEventStatusChanged, updated, 0, now))

	return updated, nil
}

// releaseOrderTable frees the table of a finished order when the order's customer is still seated there.
// Reserved, out-of-service and re-seated tables are left alone.
func releaseOrderTable(ctx context.Context, tableRepo repository.TableRepository, order *entity.Order) error {
	table, err := tableRepo.FindByNumberForUpdate(ctx, order.TableNumber)
	if errors.Is(err, repository.ErrTableNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to load table")
	}

	if !table.IsOccupiedBy(order.CustomerID) {
		return nil
	}
	table.MakeAvailable()

	if err := tableRepo.Update(ctx, table); err != nil {
		return mapTableError(err)
	}

	return nil
}

// DeleteOrder removes a pending or cancelled order.
func (srv *orderService) DeleteOrder(ctx context.Context, id int64) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		order, err := orderRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return mapOrderError(err)
		}
		if order.Status != entity.OrderStatusPending && order.Status != entity.OrderStatusCancelled {
			return errors.Wrapf(domainerrors.ErrOrderNotEditable, "order %d is %s", id, order.Status)
		}

		if err := orderRepo.Delete(ctx, id); err != nil {
			return mapOrderError(err)
		}

		return nil
	})
}

// Stats summarizes orders placed in the optional period.
func (srv *orderService) Stats(ctx context.Context, from, to *time.Time) (*entity.OrderStats, error) {
	stats, err := srv.orderRepo.Stats(ctx, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute order stats")
	}

	return stats, nil
}

func mapOrderError(err error) error {
	if errors.Is(err, repository.ErrOrderNotFound) {
		return errors.WithStack(domainerrors.ErrOrderNotFound)
	}

	return errors.Wrap(err, "order repository")
}
