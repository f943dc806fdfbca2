package impl

import (
	"context"
	"testing"

	"coffeeshop/internal/domain/entity"
	domainerrors "coffeeshop/internal/domain/errors"
	"coffeeshop/internal/domain/repository"
	mockRepo "coffeeshop/internal/mocks/repository"
	"coffeeshop/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// customerServiceFixtures holds all test dependencies for customer service tests.
type customerServiceFixtures struct {
	service      usecase.CustomerUsecase
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	customerRepo *mockRepo.MockCustomerRepository
	orderRepo    *mockRepo.MockOrderRepository
}

func createTestCustomerService(t *testing.T) customerServiceFixtures {
	fx := customerServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		customerRepo: mockRepo.NewMockCustomerRepository(t),
		orderRepo:    mockRepo.NewMockOrderRepository(t),
	}

	srv := NewCustomerService(CustomerServiceParams{
		TxManager:    fx.txManager,
		CustomerRepo: fx.customerRepo,
		OrderRepo:    fx.orderRepo,
		Logger:       newDiscardLogger(),
	})
	srv.(*customerService).now = fixedNow
	fx.service = srv

	return fx
}

func (fx customerServiceFixtures) expectLockedCustomer(ctx context.Context, customer *entity.Customer) {
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewCustomerRepository().Return(fx.customerRepo)
	fx.customerRepo.EXPECT().FindByIDForUpdate(ctx, customer.ID).Return(customer, nil)
}

func TestCustomerService_RegisterCustomer(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()

	fx.customerRepo.EXPECT().EmailExists(ctx, "jane@email.com").Return(false, nil)
	fx.customerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Customer")).
		RunAndReturn(func(_ context.Context, customer *entity.Customer) error {
			customer.ID = 3

			return nil
		})

	customer, err := fx.service.RegisterCustomer(ctx, usecase.RegisterCustomerInput{
		Name:  " Jane Smith ",
		Email: "jane@email.com",
		Phone: "555-0102",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), customer.ID)
	assert.Equal(t, "Jane Smith", customer.Name)
	assert.Zero(t, customer.LoyaltyPoints)
	assert.Equal(t, testNow, customer.RegisteredAt)
}

func TestCustomerService_RegisterCustomer_Rejections(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		fx := createTestCustomerService(t)

		_, err := fx.service.RegisterCustomer(context.Background(), usecase.RegisterCustomerInput{
			Name: "Jane", Email: "jane.email.com", Phone: "555-0102",
		})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCustomer))
	})

	t.Run("duplicate email", func(t *testing.T) {
		fx := createTestCustomerService(t)
		ctx := context.Background()

		fx.customerRepo.EXPECT().EmailExists(ctx, "john.doe@email.com").Return(true, nil)

		_, err := fx.service.RegisterCustomer(ctx, usecase.RegisterCustomerInput{
			Name: "John", Email: "john.doe@email.com", Phone: "555-0101",
		})
		assert.True(t, errors.Is(err, domainerrors.ErrCustomerAlreadyExists))
	})

	t.Run("duplicate detected on insert", func(t *testing.T) {
		fx := createTestCustomerService(t)
		ctx := context.Background()

		fx.customerRepo.EXPECT().EmailExists(ctx, "john.doe@email.com").Return(false, nil)
		fx.customerRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Customer")).Return(repository.ErrDuplicateEmail)

		_, err := fx.service.RegisterCustomer(ctx, usecase.RegisterCustomerInput{
			Name: "John", Email: "john.doe@email.com", Phone: "555-0101",
		})
		assert.True(t, errors.Is(err, domainerrors.ErrCustomerAlreadyExists))
	})
}

func TestCustomerService_UpdateCustomer_SameEmailDifferentCase(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()
	customer := testCustomer(1, 0)
	email := "JOHN.DOE@email.com"
	phone := "555-9999"

	fx.customerRepo.EXPECT().FindByID(ctx, int64(1)).Return(customer, nil)
	fx.customerRepo.EXPECT().Update(ctx, customer).Return(nil)

	updated, err := fx.service.UpdateCustomer(ctx, 1, usecase.UpdateCustomerInput{Email: &email, Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "john.doe@email.com", updated.Email)
	assert.Equal(t, "555-9999", updated.Phone)
}

func TestCustomerService_UpdateCustomer_EmailTaken(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()
	email := "jane@email.com"

	fx.customerRepo.EXPECT().FindByID(ctx, int64(1)).Return(testCustomer(1, 0), nil)
	fx.customerRepo.EXPECT().EmailExists(ctx, email).Return(true, nil)

	_, err := fx.service.UpdateCustomer(ctx, 1, usecase.UpdateCustomerInput{Email: &email})
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerAlreadyExists))
}

func TestCustomerService_FindByEmail(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()

	fx.customerRepo.EXPECT().FindByEmail(ctx, "nobody@email.com").Return(nil, repository.ErrCustomerNotFound)

	_, err := fx.service.FindByEmail(ctx, "")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = fx.service.FindByEmail(ctx, " nobody@email.com ")
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
}

func TestCustomerService_OrderHistory(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()
	completed := testOrder(1, 1, entity.ServiceTypeTakeaway, 0)
	completed.Status = entity.OrderStatusCompleted
	confirmed := testOrder(2, 1, entity.ServiceTypeTakeaway, 0)
	confirmed.Status = entity.OrderStatusConfirmed
	cancelled := testOrder(3, 1, entity.ServiceTypeTakeaway, 0)
	cancelled.Status = entity.OrderStatusCancelled
	pending := testOrder(4, 1, entity.ServiceTypeTakeaway, 0)
	orders := []*entity.Order{pending, cancelled, confirmed, completed}
	customerID := int64(1)

	fx.customerRepo.EXPECT().FindByID(ctx, customerID).Return(testCustomer(1, 0), nil)
	fx.orderRepo.EXPECT().
		List(ctx, repository.OrderFilter{CustomerID: &customerID}).
		Return(orders, nil)

	history, err := fx.service.OrderHistory(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, history.TotalOrders)
	// Only the confirmed and completed orders were paid for.
	assert.InDelta(t, 2*6.48, history.TotalSpent, 1e-9)
	assert.Equal(t, orders, history.Customer.Orders)
}

func TestCustomerService_LoyaltyPoints(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()
	customer := testCustomer(1, 50)

	fx.expectLockedCustomer(ctx, customer)
	fx.customerRepo.EXPECT().UpdateLoyaltyPoints(ctx, int64(1), float64(75)).Return(nil).Once()
	fx.customerRepo.EXPECT().UpdateLoyaltyPoints(ctx, int64(1), float64(15)).Return(nil).Once()

	got, err := fx.service.AddLoyaltyPoints(ctx, 1, 25)
	require.NoError(t, err)
	assert.InDelta(t, 75, got.LoyaltyPoints, 1e-9)

	got, err = fx.service.RedeemLoyaltyPoints(ctx, 1, 60)
	require.NoError(t, err)
	assert.InDelta(t, 15, got.LoyaltyPoints, 1e-9)

	_, err = fx.service.RedeemLoyaltyPoints(ctx, 1, 20)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientLoyaltyPoints))
	assert.InDelta(t, 15, customer.LoyaltyPoints, 1e-9)

	_, err = fx.service.AddLoyaltyPoints(ctx, 1, 0)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidLoyaltyPoints))
}

func TestCustomerService_TopLoyaltyCustomers_DefaultLimit(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()

	fx.customerRepo.EXPECT().TopByLoyalty(ctx, defaultTopLoyaltyLimit).Return([]*entity.Customer{testCustomer(1, 900)}, nil)

	top, err := fx.service.TopLoyaltyCustomers(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, top, 1)
}

func TestCustomerService_DeleteCustomer_NotFound(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()

	fx.customerRepo.EXPECT().Delete(ctx, int64(8)).Return(repository.ErrCustomerNotFound)

	assert.True(t, errors.Is(fx.service.DeleteCustomer(ctx, 8), domainerrors.ErrCustomerNotFound))
}
