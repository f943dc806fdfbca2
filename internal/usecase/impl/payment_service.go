package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"coffeeshop/config"
	deliverycontext "coffeeshop/internal/delivery/context"
	"coffeeshop/internal/domain/entity"
	domainerrors "coffeeshop/internal/domain/errors"
	"coffeeshop/internal/domain/repository"
	"coffeeshop/internal/domain/service"
	"coffeeshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const cardReferencePrefix = "TXN-"

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager    repository.TransactionManager
	orderRepo    repository.OrderRepository
	paymentRepo  repository.PaymentRepository
	customerRepo repository.CustomerRepository
	gateway      service.PaymentGateway
	publisher    service.EventPublisher
	policy       entity.LoyaltyPolicy
	logger       *slog.Logger
	now          func() time.Time
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	OrderRepo    repository.OrderRepository
	PaymentRepo  repository.PaymentRepository
	CustomerRepo repository.CustomerRepository
	Gateway      service.PaymentGateway
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		txManager:    params.TxManager,
		orderRepo:    params.OrderRepo,
		paymentRepo:  params.PaymentRepo,
		customerRepo: params.CustomerRepo,
		gateway:      params.Gateway,
		publisher:    params.Publisher,
		policy:       loyaltyPolicy(params.Config),
		logger:       params.Logger,
		now:          time.Now,
	}
}

// loyaltyPolicy reads the accrual and redemption rates. Missing values fall back to the shipped defaults.
func loyaltyPolicy(cfg *config.Config) entity.LoyaltyPolicy {
	policy := entity.LoyaltyPolicy{PointsPerDollar: 10, PointValue: 0.01}
	if cfg == nil || cfg.Loyalty == nil {
		return policy
	}
	if cfg.Loyalty.PointsPerDollar > 0 {
		policy.PointsPerDollar = cfg.Loyalty.PointsPerDollar
	}
	if cfg.Loyalty.PointValue > 0 {
		policy.PointValue = cfg.Loyalty.PointValue
	}

	return policy
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ProcessPayment validates the method details, asks the gateway for a verdict and records the attempt.
// A completed payment confirms the order, seats a dine-in table and settles loyalty in one transaction.
func (srv *paymentService) ProcessPayment(ctx context.Context, input usecase.ProcessPaymentInput) (*entity.Payment, error) {
	if !input.Method.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidPaymentMethod, "%q", input.Method)
	}

	order, err := srv.orderRepo.FindByID(ctx, input.OrderID)
	if err != nil {
		return nil, mapOrderError(err)
	}
	if err := ensurePayable(ctx, srv.paymentRepo, order); err != nil {
		return nil, err
	}

	now := srv.now()
	payment := entity.NewPayment(order.ID, order.Total, input.Method, now)
	if err := srv.validateMethod(ctx, payment, order, input); err != nil {
		return nil, err
	}
	if payment.Status == entity.PaymentStatusProcessing {
		payment.Settle(srv.authorize(ctx, payment), now)
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return srv.recordPayment(ctx, repoFactory, payment, now)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to record payment", slog.Int64("orderID", input.OrderID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to record payment")
	}

	eventType := service.OrderEventPaymentFailed
	if payment.IsCompleted() {
		eventType = service.OrderEventPaymentCompleted
		order.SetStatus(entity.OrderStatusConfirmed, now)
	}
	srv.log(ctx).Info("Payment processed",
		slog.Int64("paymentID", payment.ID),
		slog.Int64("orderID", order.ID),
		slog.String("method", string(payment.Method)),
		slog.String("status", string(payment.Status)),
	)
	publishOrderEvent(ctx, srv.publisher, srv.log(ctx), newOrderEvent(ctx, eventType, order, payment.ID, now))

	return payment, nil
}

func ensurePayable(ctx context.Context, paymentRepo repository.PaymentRepository, order *entity.Order) error {
	if order.Status != entity.OrderStatusPending {
		return errors.Wrapf(domainerrors.ErrOrderNotPayable, "order %d is %s", order.ID, order.Status)
	}

	paid, err := paymentRepo.HasCompletedPayment(ctx, order.ID)
	if err != nil {
		return errors.Wrap(err, "failed to check existing payments")
	}
	if paid {
		return errors.WithStack(domainerrors.ErrOrderAlreadyPaid)
	}

	return nil
}

// validateMethod applies exactly one method validator. Invalid details leave the payment FAILED.
func (srv *paymentService) validateMethod(ctx context.Context, payment *entity.Payment, order *entity.Order, input usecase.ProcessPaymentInput) error {
	switch {
	case input.Method == entity.PaymentMethodCash:
		payment.AcceptCash(input.CashTendered)
	case input.Method.IsCard():
		payment.AcceptCard(input.CardNumber, input.CardExpiry, input.CardCVV, newCardReference())
	case input.Method == entity.PaymentMethodMobilePayment:
		payment.AcceptMobile(input.MobilePaymentID)
	case input.Method == entity.PaymentMethodLoyaltyPoints:
		if order.CustomerID == GuestCustomerID {
			payment.Decline(entity.FailureInsufficientPoints)

			return nil
		}

		customer, err := srv.customerRepo.FindByID(ctx, order.CustomerID)
		if err != nil {
			return mapCustomerError(err)
		}
		if customer.LoyaltyPoints < input.LoyaltyPoints {
			payment.Decline(entity.FailureInsufficientPoints)

			return nil
		}
		payment.AcceptLoyaltyPoints(input.LoyaltyPoints, srv.policy.PointValue)
	}

	return nil
}

func newCardReference() string {
	return cardReferencePrefix + strings.ToUpper(uuid.New().String()[:8])
}

// authorize asks the gateway for a verdict. A gateway error counts as a decline.
func (srv *paymentService) authorize(ctx context.Context, payment *entity.Payment) entity.ProcessorOutcome {
	outcome, err := srv.gateway.Authorize(ctx, payment)
	if err != nil {
		srv.log(ctx).Warn("Payment gateway error",
			slog.Int64("orderID", payment.OrderID),
			slog.String("method", string(payment.Method)),
			slog.Any("error", err),
		)

		return entity.ProcessorOutcome{Approved: false, DeclineReason: entity.FailureProcessingDeclined}
	}

	return outcome
}

// recordPayment persists the attempt and, when it completed, applies its effects on the order, table and customer.
func (srv *paymentService) recordPayment(ctx context.Context, repoFactory repository.RepositoryFactory, payment *entity.Payment, now time.Time) error {
	orderRepo := repoFactory.NewOrderRepository()
	paymentRepo := repoFactory.NewPaymentRepository()

	order, err := orderRepo.FindByIDForUpdate(ctx, payment.OrderID)
	if err != nil {
		return mapOrderError(err)
	}
	if payment.IsCompleted() {
		if err := ensurePayable(ctx, paymentRepo, order); err != nil {
			return err
		}
	}

	if err := paymentRepo.Create(ctx, payment); err != nil {
		return errors.Wrap(err, "failed to save payment")
	}
	if !payment.IsCompleted() {
		return nil
	}

	order.SetStatus(entity.OrderStatusConfirmed, now)
	if err := orderRepo.UpdateStatus(ctx, order); err != nil {
		return mapOrderError(err)
	}

	if order.HasTable() {
		if err := srv.seatCustomer(ctx, repoFactory.NewTableRepository(), order, now); err != nil {
			return err
		}
	}

	if order.CustomerID == GuestCustomerID {
		return nil
	}

	return srv.settleLoyalty(ctx, repoFactory.NewCustomerRepository(), order, payment)
}

// seatCustomer occupies the order's table. A table that cannot be occupied is logged, not fatal.
func (srv *paymentService) seatCustomer(ctx context.Context, tableRepo repository.TableRepository, order *entity.Order, now time.Time) error {
	table, err := tableRepo.FindByNumberForUpdate(ctx, order.TableNumber)
	if errors.Is(err, repository.ErrTableNotFound) {
		srv.log(ctx).Warn("Order table no longer exists", slog.Int64("orderID", order.ID), slog.Int("tableNumber", order.TableNumber))

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to load table")
	}

	if table.Status == entity.TableStatusOccupied && table.CustomerID == order.CustomerID {
		return nil
	}
	if !table.Occupy(order.CustomerID, now) {
		srv.log(ctx).Warn("Could not occupy table",
			slog.Int64("orderID", order.ID),
			slog.Int("tableNumber", table.Number),
			slog.String("tableStatus", string(table.Status)),
		)

		return nil
	}
	table.UpdatedAt = now

	if err := tableRepo.Update(ctx, table); err != nil {
		return mapTableError(err)
	}

	return nil
}

// settleLoyalty debits redeemed points or credits points earned by the order.
func (srv *paymentService) settleLoyalty(ctx context.Context, customerRepo repository.CustomerRepository, order *entity.Order, payment *entity.Payment) error {
	customer, err := customerRepo.FindByIDForUpdate(ctx, order.CustomerID)
	if errors.Is(err, repository.ErrCustomerNotFound) && payment.Method != entity.PaymentMethodLoyaltyPoints {
		return nil
	}
	if err != nil {
		return mapCustomerError(err)
	}

	if payment.Method == entity.PaymentMethodLoyaltyPoints {
		if !customer.RedeemLoyaltyPoints(payment.PointsUsed) {
			return errors.WithStack(domainerrors.ErrInsufficientLoyaltyPoints)
		}
	} else {
		earned := customer.AddOrder(order, srv.policy)
		srv.log(ctx).Debug("Loyalty points earned", slog.Int64("customerID", customer.ID), slog.Float64("points", earned))
	}

	if err := customerRepo.UpdateLoyaltyPoints(ctx, customer.ID, customer.LoyaltyPoints); err != nil {
		return mapCustomerError(err)
	}

	return nil
}

// GetPayment returns one payment.
func (srv *paymentService) GetPayment(ctx context.Context, id int64) (*entity.Payment, error) {
	payment, err := srv.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapPaymentError(err)
	}

	return payment, nil
}

// FindByReference looks a payment up by its processor or wallet reference.
func (srv *paymentService) FindByReference(ctx context.Context, reference string) (*entity.Payment, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "reference is required")
	}

	payment, err := srv.paymentRepo.FindByReference(ctx, reference)
	if err != nil {
		return nil, mapPaymentError(err)
	}

	return payment, nil
}

// ListPayments lists payments narrowed by filter.
func (srv *paymentService) ListPayments(ctx context.Context, filter repository.PaymentFilter) ([]*entity.Payment, error) {
	if filter.Method != nil && !filter.Method.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidPaymentMethod, "%q", *filter.Method)
	}

	payments, err := srv.paymentRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return payments, nil
}

// Refund reverses a completed payment. Points spent on a loyalty payment go back to the customer.
func (srv *paymentService) Refund(ctx context.Context, paymentID int64) (*entity.Payment, error) {
	now := srv.now()
	var (
		refunded *entity.Payment
		order    *entity.Order
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		paymentRepo := repoFactory.NewPaymentRepository()

		payment, err := paymentRepo.FindByIDForUpdate(ctx, paymentID)
		if err != nil {
			return mapPaymentError(err)
		}
		if !payment.Refund() {
			return errors.Wrapf(domainerrors.ErrRefundNotAllowed, "payment %d is %s", paymentID, payment.Status)
		}
		if err := paymentRepo.UpdateStatus(ctx, payment); err != nil {
			return mapPaymentError(err)
		}

		order, err = repoFactory.NewOrderRepository().FindByID(ctx, payment.OrderID)
		if err != nil {
			return mapOrderError(err)
		}

		if payment.Method == entity.PaymentMethodLoyaltyPoints && order.CustomerID != GuestCustomerID {
			if err := restorePoints(ctx, repoFactory.NewCustomerRepository(), order.CustomerID, payment.PointsUsed); err != nil {
				return err
			}
		}
		refunded = payment

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to refund payment", slog.Int64("paymentID", paymentID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to refund payment")
	}

	srv.log(ctx).Info("Payment refunded", slog.Int64("paymentID", paymentID), slog.Float64("amount", refunded.Amount))
	publishOrderEvent(ctx, srv.publisher, srv.log(ctx), newOrderEvent(ctx, service.OrderEventPaymentRefunded, order, refunded.ID, now))

	return refunded, nil
}

func restorePoints(ctx context.Context, customerRepo repository.CustomerRepository, customerID int64, points float64) error {
	customer, err := customerRepo.FindByIDForUpdate(ctx, customerID)
	if err != nil {
		return mapCustomerError(err)
	}
	if !customer.AddLoyaltyPoints(points) {
		return nil
	}

	if err := customerRepo.UpdateLoyaltyPoints(ctx, customer.ID, customer.LoyaltyPoints); err != nil {
		return mapCustomerError(err)
	}

	return nil
}

// TotalPaid sums the completed payments of an order.
func (srv *paymentService) TotalPaid(ctx context.Context, orderID int64) (float64, error) {
	total, err := srv.paymentRepo.TotalPaid(ctx, orderID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to sum payments")
	}

	return total, nil
}

// Stats summarizes payments made in the optional period.
func (srv *paymentService) Stats(ctx context.Context, from, to *time.Time) (*entity.PaymentStats, error) {
	stats, err := srv.paymentRepo.Stats(ctx, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute payment stats")
	}

	return stats, nil
}

func mapPaymentError(err error) error {
	if errors.Is(err, repository.ErrPaymentNotFound) {
		return errors.WithStack(domainerrors.ErrPaymentNotFound)
	}

	return errors.Wrap(err, "payment repository")
}
