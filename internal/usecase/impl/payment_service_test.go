package impl

import (
	"context"
	"strings"
	"testing"

	"coffeeshop/internal/domain/entity"
	domainerrors "coffeeshop/internal/domain/errors"
	"coffeeshop/internal/domain/repository"
	"coffeeshop/internal/domain/service"
	mockRepo "coffeeshop/internal/mocks/repository"
	mockSvc "coffeeshop/internal/mocks/service"
	"coffeeshop/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// paymentServiceFixtures holds all test dependencies for payment service tests.
type paymentServiceFixtures struct {
	service      usecase.PaymentUsecase
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	orderRepo    *mockRepo.MockOrderRepository
	paymentRepo  *mockRepo.MockPaymentRepository
	customerRepo *mockRepo.MockCustomerRepository
	tableRepo    *mockRepo.MockTableRepository
	gateway      *mockSvc.MockPaymentGateway
	publisher    *mockSvc.MockEventPublisher
}

func createTestPaymentService(t *testing.T) paymentServiceFixtures {
	fx := paymentServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		orderRepo:    mockRepo.NewMockOrderRepository(t),
		paymentRepo:  mockRepo.NewMockPaymentRepository(t),
		customerRepo: mockRepo.NewMockCustomerRepository(t),
		tableRepo:    mockRepo.NewMockTableRepository(t),
		gateway:      mockSvc.NewMockPaymentGateway(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}

	srv := NewPaymentService(PaymentServiceParams{
		TxManager:    fx.txManager,
		OrderRepo:    fx.orderRepo,
		PaymentRepo:  fx.paymentRepo,
		CustomerRepo: fx.customerRepo,
		Gateway:      fx.gateway,
		Publisher:    fx.publisher,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})
	srv.(*paymentService).now = fixedNow
	fx.service = srv

	return fx
}

// expectRecordTx wires the transaction used to record an attempt for order.
func (fx paymentServiceFixtures) expectRecordTx(ctx context.Context, locked *entity.Order) {
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)
	fx.factory.EXPECT().NewPaymentRepository().Return(fx.paymentRepo)
	fx.orderRepo.EXPECT().FindByIDForUpdate(ctx, locked.ID).Return(locked, nil)
}

func approved(reference string) entity.ProcessorOutcome {
	return entity.ProcessorOutcome{Approved: true, Reference: reference}
}

func TestPaymentService_ProcessPayment_CashDineIn(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	locked := testOrder(5, 1, entity.ServiceTypeDineIn, 4)
	customer := testCustomer(1, 5)
	table, _ := entity.NewTable(4, 4)

	fx.orderRepo.EXPECT().FindByID(ctx, int64(5)).Return(testOrder(5, 1, entity.ServiceTypeDineIn, 4), nil)
	fx.paymentRepo.EXPECT().HasCompletedPayment(ctx, int64(5)).Return(false, nil)
	fx.gateway.EXPECT().Authorize(ctx, mock.AnythingOfType("*entity.Payment")).Return(approved("GW-1"), nil)

	fx.expectRecordTx(ctx, locked)
	fx.factory.EXPECT().NewTableRepository().Return(fx.tableRepo)
	fx.factory.EXPECT().NewCustomerRepository().Return(fx.customerRepo)
	fx.paymentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Payment")).
		RunAndReturn(func(_ context.Context, payment *entity.Payment) error {
			payment.ID = 77

			return nil
		})
	fx.orderRepo.EXPECT().UpdateStatus(ctx, locked).Return(nil)
	fx.tableRepo.EXPECT().FindByNumberForUpdate(ctx, 4).Return(table, nil)
	fx.tableRepo.EXPECT().Update(ctx, table).Return(nil)
	fx.customerRepo.EXPECT().FindByIDForUpdate(ctx, int64(1)).Return(customer, nil)
	fx.customerRepo.EXPECT().UpdateLoyaltyPoints(ctx, int64(1), mock.AnythingOfType("float64")).Return(nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(event *service.OrderEvent) bool {
			return event.Type == service.OrderEventPaymentCompleted &&
				event.PaymentID == 77 &&
				event.Status == string(entity.OrderStatusConfirmed)
		})).
		Return(nil)

	payment, err := fx.service.ProcessPayment(ctx, usecase.ProcessPaymentInput{
		OrderID:      5,
		Method:       entity.PaymentMethodCash,
		CashTendered: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusCompleted, payment.Status)
	assert.InDelta(t, 6.48, payment.Amount, 1e-9)
	assert.InDelta(t, 3.52, payment.ChangeGiven, 1e-9)
	assert.Equal(t, "GW-1", payment.TransactionReference)
	require.NotNil(t, payment.ProcessedAt)

	assert.Equal(t, entity.OrderStatusConfirmed, locked.Status)
	assert.Equal(t, entity.TableStatusOccupied, table.Status)
	assert.Equal(t, int64(1), table.CustomerID)
	assert.InDelta(t, 5+6.48*10, customer.LoyaltyPoints, 1e-9)
}

func TestPaymentService_ProcessPayment_InsufficientCash(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	locked := testOrder(5, GuestCustomerID, entity.ServiceTypeTakeaway, 0)

	fx.orderRepo.EXPECT().FindByID(ctx, int64(5)).Return(testOrder(5, GuestCustomerID, entity.ServiceTypeTakeaway, 0), nil)
	fx.paymentRepo.EXPECT().HasCompletedPayment(ctx, int64(5)).Return(false, nil)
	fx.expectRecordTx(ctx, locked)
	fx.paymentRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Payment")).Return(nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, eventOfType(service.OrderEventPaymentFailed)).Return(nil)

	payment, err := fx.service.ProcessPayment(ctx, usecase.ProcessPaymentInput{
		OrderID:      5,
		Method:       entity.PaymentMethodCash,
		CashTendered: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusFailed, payment.Status)
	assert.Equal(t, entity.FailureInsufficientCash, payment.FailureReason)
	assert.Equal(t, entity.OrderStatusPending, locked.Status)
}

func TestPaymentService_ProcessPayment_GatewayErrorDeclines(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	locked := testOrder(5, GuestCustomerID, entity.ServiceTypeTakeaway, 0)

	fx.orderRepo.EXPECT().FindByID(ctx, int64(5)).Return(testOrder(5, GuestCustomerID, entity.ServiceTypeTakeaway, 0), nil)
	fx.paymentRepo.EXPECT().HasCompletedPayment(ctx, int64(5)).Return(false, nil)
	fx.gateway.EXPECT().
		Authorize(ctx, mock.AnythingOfType("*entity.Payment")).
		Return(entity.ProcessorOutcome{}, errors.New("gateway timeout"))
	fx.expectRecordTx(ctx, locked)
	fx.paymentRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Payment")).Return(nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, eventOfType(service.OrderEventPaymentFailed)).Return(nil)

	payment, err := fx.service.ProcessPayment(ctx, usecase.ProcessPaymentInput{
		OrderID:    5,
		Method:     entity.PaymentMethodCreditCard,
		CardNumber: "4111 1111 1111 1111",
		CardExpiry: "12/28",
		CardCVV:    "123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusFailed, payment.Status)
	assert.Equal(t, entity.FailureProcessingDeclined, payment.FailureReason)
	assert.Equal(t, "1111", payment.CardLastFour)
	assert.True(t, strings.HasPrefix(payment.TransactionReference, cardReferencePrefix))
}

func TestPaymentService_ProcessPayment_LoyaltyPoints(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	locked := testOrder(5, 1, entity.ServiceTypeTakeaway, 0)
	balance := testCustomer(1, 1000)

	fx.orderRepo.EXPECT().FindByID(ctx, int64(5)).Return(testOrder(5, 1, entity.ServiceTypeTakeaway, 0), nil)
	fx.paymentRepo.EXPECT().HasCompletedPayment(ctx, int64(5)).Return(false, nil)
	fx.customerRepo.EXPECT().FindByID(ctx, int64(1)).Return(testCustomer(1, 1000), nil)
	fx.gateway.EXPECT().Authorize(ctx, mock.AnythingOfType("*entity.Payment")).Return(approved(""), nil)

	fx.expectRecordTx(ctx, locked)
	fx.factory.EXPECT().NewCustomerRepository().Return(fx.customerRepo)
	fx.paymentRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Payment")).Return(nil)
	fx.orderRepo.EXPECT().UpdateStatus(ctx, locked).Return(nil)
	fx.customerRepo.EXPECT().FindByIDForUpdate(ctx, int64(1)).Return(balance, nil)
	fx.customerRepo.EXPECT().UpdateLoyaltyPoints(ctx, int64(1), mock.AnythingOfType("float64")).Return(nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, eventOfType(service.OrderEventPaymentCompleted)).Return(nil)

	payment, err := fx.service.ProcessPayment(ctx, usecase.ProcessPaymentInput{
		OrderID:       5,
		Method:        entity.PaymentMethodLoyaltyPoints,
		LoyaltyPoints: 648,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusCompleted, payment.Status)
	assert.Equal(t, "LOYALTY_648", payment.TransactionReference)
	assert.InDelta(t, 352, balance.LoyaltyPoints, 1e-9, "redeemed points are not credited back as earned points")
}

func TestPaymentService_ProcessPayment_LoyaltyDeclines(t *testing.T) {
	tests := []struct {
		name       string
		customerID int64
		balance    float64
	}{
		{"guest order", GuestCustomerID, 0},
		{"balance too small", 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPaymentService(t)
			ctx := context.Background()
			locked := testOrder(5, tt.customerID, entity.ServiceTypeTakeaway, 0)

			fx.orderRepo.EXPECT().FindByID(ctx, int64(5)).Return(testOrder(5, tt.customerID, entity.ServiceTypeTakeaway, 0), nil)
			fx.paymentRepo.EXPECT().HasCompletedPayment(ctx, int64(5)).Return(false, nil)
			if tt.customerID != GuestCustomerID {
				fx.customerRepo.EXPECT().FindByID(ctx, tt.customerID).Return(testCustomer(tt.customerID, tt.balance), nil)
			}
			fx.expectRecordTx(ctx, locked)
			fx.paymentRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Payment")).Return(nil)
			fx.publisher.EXPECT().PublishOrderEvent(ctx, eventOfType(service.OrderEventPaymentFailed)).Return(nil)

			payment, err := fx.service.ProcessPayment(ctx, usecase.ProcessPaymentInput{
				OrderID:       5,
				Method:        entity.PaymentMethodLoyaltyPoints,
				LoyaltyPoints: 648,
			})
			require.NoError(t, err)
			assert.Equal(t, entity.PaymentStatusFailed, payment.Status)
			assert.Equal(t, entity.FailureInsufficientPoints, payment.FailureReason)
		})
	}
}

func TestPaymentService_ProcessPayment_Rejections(t *testing.T) {
	confirmed := testOrder(5, 1, entity.ServiceTypeTakeaway, 0)
	confirmed.Status = entity.OrderStatusConfirmed

	t.Run("unknown method", func(t *testing.T) {
		fx := createTestPaymentService(t)

		_, err := fx.service.ProcessPayment(context.Background(), usecase.ProcessPaymentInput{OrderID: 5, Method: "CHEQUE"})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidPaymentMethod))
	})

	t.Run("order not pending", func(t *testing.T) {
		fx := createTestPaymentService(t)
		ctx := context.Background()

		fx.orderRepo.EXPECT().FindByID(ctx, int64(5)).Return(confirmed, nil)

		_, err := fx.service.ProcessPayment(ctx, usecase.ProcessPaymentInput{OrderID: 5, Method: entity.PaymentMethodCash, CashTendered: 10})
		assert.True(t, errors.Is(err, domainerrors.ErrOrderNotPayable))
	})

	t.Run("already paid", func(t *testing.T) {
		fx := createTestPaymentService(t)
		ctx := context.Background()

		fx.orderRepo.EXPECT().FindByID(ctx, int64(5)).Return(testOrder(5, 1, entity.ServiceTypeTakeaway, 0), nil)
		fx.paymentRepo.EXPECT().HasCompletedPayment(ctx, int64(5)).Return(true, nil)

		_, err := fx.service.ProcessPayment(ctx, usecase.ProcessPaymentInput{OrderID: 5, Method: entity.PaymentMethodCash, CashTendered: 10})
		assert.True(t, errors.Is(err, domainerrors.ErrOrderAlreadyPaid))
	})

	t.Run("unknown order", func(t *testing.T) {
		fx := createTestPaymentService(t)
		ctx := context.Background()

		fx.orderRepo.EXPECT().FindByID(ctx, int64(5)).Return(nil, repository.ErrOrderNotFound)

		_, err := fx.service.ProcessPayment(ctx, usecase.ProcessPaymentInput{OrderID: 5, Method: entity.PaymentMethodCash, CashTendered: 10})
		assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
	})
}

func TestPaymentService_Refund_RestoresLoyaltyPoints(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	customer := testCustomer(1, 10)
	payment := entity.NewPayment(5, 6.48, entity.PaymentMethodLoyaltyPoints, testNow)
	payment.ID = 77
	payment.AcceptLoyaltyPoints(648, 0.01)
	payment.Settle(approved(""), testNow)

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewPaymentRepository().Return(fx.paymentRepo)
	fx.factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)
	fx.factory.EXPECT().NewCustomerRepository().Return(fx.customerRepo)
	fx.paymentRepo.EXPECT().FindByIDForUpdate(ctx, int64(77)).Return(payment, nil)
	fx.paymentRepo.EXPECT().UpdateStatus(ctx, payment).Return(nil)
	fx.orderRepo.EXPECT().FindByID(ctx, int64(5)).Return(testOrder(5, 1, entity.ServiceTypeTakeaway, 0), nil)
	fx.customerRepo.EXPECT().FindByIDForUpdate(ctx, int64(1)).Return(customer, nil)
	fx.customerRepo.EXPECT().UpdateLoyaltyPoints(ctx, int64(1), float64(658)).Return(nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, eventOfType(service.OrderEventPaymentRefunded)).Return(nil)

	refunded, err := fx.service.Refund(ctx, 77)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusRefunded, refunded.Status)
	assert.InDelta(t, 658, customer.LoyaltyPoints, 1e-9)
}

func TestPaymentService_Refund_OnlyCompleted(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	payment := entity.NewPayment(5, 6.48, entity.PaymentMethodCash, testNow)
	payment.AcceptCash(1)

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewPaymentRepository().Return(fx.paymentRepo)
	fx.paymentRepo.EXPECT().FindByIDForUpdate(ctx, int64(77)).Return(payment, nil)

	_, err := fx.service.Refund(ctx, 77)
	assert.True(t, errors.Is(err, domainerrors.ErrRefundNotAllowed))
	assert.Equal(t, entity.PaymentStatusFailed, payment.Status)
}

func TestPaymentService_FindByReference(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()

	fx.paymentRepo.EXPECT().FindByReference(ctx, "TXN-ABC").Return(nil, repository.ErrPaymentNotFound)

	_, err := fx.service.FindByReference(ctx, "  ")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = fx.service.FindByReference(ctx, " TXN-ABC ")
	assert.True(t, errors.Is(err, domainerrors.ErrPaymentNotFound))
}

func TestPaymentService_ListPayments_RejectsUnknownMethod(t *testing.T) {
	fx := createTestPaymentService(t)
	method := entity.PaymentMethod("BARTER")

	_, err := fx.service.ListPayments(context.Background(), repository.PaymentFilter{Method: &method})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPaymentMethod))
}
