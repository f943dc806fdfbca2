package impl

import (
	"context"
	"testing"
	"time"

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

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service      usecase.OrderUsecase
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	orderRepo    *mockRepo.MockOrderRepository
	menuRepo     *mockRepo.MockMenuItemRepository
	customerRepo *mockRepo.MockCustomerRepository
	tableRepo    *mockRepo.MockTableRepository
	publisher    *mockSvc.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	fx := orderServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		orderRepo:    mockRepo.NewMockOrderRepository(t),
		menuRepo:     mockRepo.NewMockMenuItemRepository(t),
		customerRepo: mockRepo.NewMockCustomerRepository(t),
		tableRepo:    mockRepo.NewMockTableRepository(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}

	srv := NewOrderService(OrderServiceParams{
		TxManager: fx.txManager,
		OrderRepo: fx.orderRepo,
		Publisher: fx.publisher,
		Logger:    newDiscardLogger(),
	})
	srv.(*orderService).now = fixedNow
	fx.service = srv

	return fx
}

func eventOfType(eventType service.OrderEventType) any {
	return mock.MatchedBy(func(event *service.OrderEvent) bool {
		return event.Type == eventType && event.EventID != ""
	})
}

func TestOrderService_PlaceOrder_DineIn(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	table, _ := entity.NewTable(4, 4)

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewCustomerRepository().Return(fx.customerRepo)
	fx.factory.EXPECT().NewMenuItemRepository().Return(fx.menuRepo)
	fx.factory.EXPECT().NewTableRepository().Return(fx.tableRepo)
	fx.factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)

	fx.customerRepo.EXPECT().FindByID(ctx, int64(1)).Return(testCustomer(1, 0), nil)
	fx.menuRepo.EXPECT().
		FindByIDs(ctx, []int64{3, 2}).
		Return(map[int64]*entity.MenuItem{3: testLatte(3), 2: testMuffin(2)}, nil)
	fx.tableRepo.EXPECT().FindByNumber(ctx, 4).Return(table, nil)
	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		RunAndReturn(func(_ context.Context, order *entity.Order) error {
			order.ID = 100

			return nil
		})
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(event *service.OrderEvent) bool {
			return event.Type == service.OrderEventPlaced && event.OrderID == 100 && event.TableNumber == 4
		})).
		Return(nil)

	order, err := fx.service.PlaceOrder(ctx, usecase.PlaceOrderInput{
		CustomerID:  1,
		ServiceType: entity.ServiceTypeDineIn,
		TableNumber: 4,
		Items: []usecase.OrderLineInput{
			{MenuItemID: 3, Quantity: 2, Size: entity.CoffeeSizeMedium, Customizations: []string{"Vanilla"}},
			{MenuItemID: 2, Quantity: 1, Notes: " warmed "},
		},
		Discount:            1.00,
		SpecialInstructions: "window seat",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(100), order.ID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, 4, order.TableNumber)
	assert.Equal(t, 3, order.TotalItems())
	assert.Equal(t, "warmed", order.FindItem(2).Notes)

	// latte: 4.50 * 1.3 + 0.50 = 6.35 each
	assert.InDelta(t, 15.70, order.Subtotal, 1e-9)
	assert.InDelta(t, 15.70*entity.TaxRate, order.Tax, 1e-9)
	assert.InDelta(t, 15.70*(1+entity.TaxRate)-1.00, order.Total, 1e-9)
}

func TestOrderService_PlaceOrder_GuestTakeawayIgnoresPublishFailure(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewMenuItemRepository().Return(fx.menuRepo)
	fx.factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)

	fx.menuRepo.EXPECT().FindByIDs(ctx, []int64{2}).Return(map[int64]*entity.MenuItem{2: testMuffin(2)}, nil)
	fx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, eventOfType(service.OrderEventPlaced)).Return(errors.New("broker down"))

	order, err := fx.service.PlaceOrder(ctx, usecase.PlaceOrderInput{
		CustomerID:  GuestCustomerID,
		ServiceType: entity.ServiceTypeTakeaway,
		TableNumber: 7,
		Items:       []usecase.OrderLineInput{{MenuItemID: 2, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.NoTable, order.TableNumber, "takeaway orders never take a table")
}

func TestOrderService_PlaceOrder_Validation(t *testing.T) {
	line := []usecase.OrderLineInput{{MenuItemID: 1, Quantity: 1}}

	tests := []struct {
		name     string
		input    usecase.PlaceOrderInput
		expected error
	}{
		{"unknown service type", usecase.PlaceOrderInput{ServiceType: "DRIVE_THRU", Items: line}, domainerrors.ErrValidationFailed},
		{"no items", usecase.PlaceOrderInput{ServiceType: entity.ServiceTypeTakeaway}, domainerrors.ErrEmptyOrder},
		{"zero quantity", usecase.PlaceOrderInput{ServiceType: entity.ServiceTypeTakeaway, Items: []usecase.OrderLineInput{{MenuItemID: 1}}}, domainerrors.ErrInvalidQuantity},
		{"negative discount", usecase.PlaceOrderInput{ServiceType: entity.ServiceTypeTakeaway, Items: line, Discount: -1}, domainerrors.ErrInvalidDiscount},
		{"dine-in without table", usecase.PlaceOrderInput{ServiceType: entity.ServiceTypeDineIn, Items: line}, domainerrors.ErrTableRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)

			order, err := fx.service.PlaceOrder(context.Background(), tt.input)
			assert.Nil(t, order)
			assert.True(t, errors.Is(err, tt.expected), "got %v", err)
		})
	}
}

func TestOrderService_PlaceOrder_UnknownCustomer(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewCustomerRepository().Return(fx.customerRepo)
	fx.customerRepo.EXPECT().FindByID(ctx, int64(42)).Return(nil, repository.ErrCustomerNotFound)

	_, err := fx.service.PlaceOrder(ctx, usecase.PlaceOrderInput{
		CustomerID:  42,
		ServiceType: entity.ServiceTypeTakeaway,
		Items:       []usecase.OrderLineInput{{MenuItemID: 2, Quantity: 1}},
	})
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
}

func TestOrderService_PlaceOrder_MenuItemProblems(t *testing.T) {
	soldOut := testMuffin(2)
	soldOut.Available = false

	tests := []struct {
		name     string
		found    map[int64]*entity.MenuItem
		expected error
	}{
		{"missing item", map[int64]*entity.MenuItem{}, domainerrors.ErrMenuItemNotFound},
		{"unavailable item", map[int64]*entity.MenuItem{2: soldOut}, domainerrors.ErrMenuItemUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			ctx := context.Background()

			expectTx(fx.txManager, fx.factory)
			fx.factory.EXPECT().NewMenuItemRepository().Return(fx.menuRepo)
			fx.menuRepo.EXPECT().FindByIDs(ctx, []int64{2}).Return(tt.found, nil)

			_, err := fx.service.PlaceOrder(ctx, usecase.PlaceOrderInput{
				ServiceType: entity.ServiceTypeTakeaway,
				Items:       []usecase.OrderLineInput{{MenuItemID: 2, Quantity: 1}},
			})
			assert.True(t, errors.Is(err, tt.expected), "got %v", err)
		})
	}
}

func TestOrderService_PlaceOrder_SameCoffeeDifferentSizeRejected(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewMenuItemRepository().Return(fx.menuRepo)
	fx.menuRepo.EXPECT().FindByIDs(ctx, []int64{3, 3}).Return(map[int64]*entity.MenuItem{3: testLatte(3)}, nil)

	_, err := fx.service.PlaceOrder(ctx, usecase.PlaceOrderInput{
		ServiceType: entity.ServiceTypeTakeaway,
		Items: []usecase.OrderLineInput{
			{MenuItemID: 3, Quantity: 1, Size: entity.CoffeeSizeLarge},
			{MenuItemID: 3, Quantity: 1, Size: entity.CoffeeSizeSmall},
		},
	})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "got %v", err)
}

func TestOrderService_PlaceOrder_SameCoffeeSameOptionsMerged(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewMenuItemRepository().Return(fx.menuRepo)
	fx.factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)
	fx.menuRepo.EXPECT().FindByIDs(ctx, []int64{3, 3}).Return(map[int64]*entity.MenuItem{3: testLatte(3)}, nil)
	fx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, eventOfType(service.OrderEventPlaced)).Return(nil)

	order, err := fx.service.PlaceOrder(ctx, usecase.PlaceOrderInput{
		ServiceType: entity.ServiceTypeTakeaway,
		Items: []usecase.OrderLineInput{
			{MenuItemID: 3, Quantity: 1, Size: entity.CoffeeSizeLarge},
			{MenuItemID: 3, Quantity: 2, Size: entity.CoffeeSizeLarge},
		},
	})
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.InDelta(t, 3*4.50*1.6, order.Subtotal, 1e-9)
}

func TestOrderService_PlaceOrder_TableTakenByAnotherCustomer(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	table, _ := entity.NewTable(4, 2)
	table.Occupy(9, testNow.Add(-time.Hour))

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewCustomerRepository().Return(fx.customerRepo)
	fx.factory.EXPECT().NewMenuItemRepository().Return(fx.menuRepo)
	fx.factory.EXPECT().NewTableRepository().Return(fx.tableRepo)

	fx.customerRepo.EXPECT().FindByID(ctx, int64(1)).Return(testCustomer(1, 0), nil)
	fx.menuRepo.EXPECT().FindByIDs(ctx, []int64{2}).Return(map[int64]*entity.MenuItem{2: testMuffin(2)}, nil)
	fx.tableRepo.EXPECT().FindByNumber(ctx, 4).Return(table, nil)

	_, err := fx.service.PlaceOrder(ctx, usecase.PlaceOrderInput{
		CustomerID:  1,
		ServiceType: entity.ServiceTypeDineIn,
		TableNumber: 4,
		Items:       []usecase.OrderLineInput{{MenuItemID: 2, Quantity: 1}},
	})
	assert.True(t, errors.Is(err, domainerrors.ErrTableUnavailable))
}

func TestOrderService_UpdateStatus_CompletingReleasesTable(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := testOrder(5, 1, entity.ServiceTypeDineIn, 4)
	order.Status = entity.OrderStatusReady
	table, _ := entity.NewTable(4, 4)
	table.Occupy(1, testNow.Add(-time.Hour))

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)
	fx.factory.EXPECT().NewTableRepository().Return(fx.tableRepo)
	fx.orderRepo.EXPECT().FindByIDForUpdate(ctx, int64(5)).Return(order, nil)
	fx.orderRepo.EXPECT().UpdateStatus(ctx, order).Return(nil)
	fx.tableRepo.EXPECT().FindByNumberForUpdate(ctx, 4).Return(table, nil)
	fx.tableRepo.EXPECT().Update(ctx, table).Return(nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, eventOfType(service.OrderEventStatusChanged)).Return(nil)

	updated, err := fx.service.UpdateStatus(ctx, 5, entity.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, updated.Status)
	require.NotNil(t, updated.CompletedAt)
	assert.Equal(t, testNow, *updated.CompletedAt)
	assert.Equal(t, entity.TableStatusAvailable, table.Status)
	assert.Zero(t, table.CustomerID)
}

func TestOrderService_UpdateStatus_CancelKeepsOutOfServiceTable(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := testOrder(5, 1, entity.ServiceTypeDineIn, 4)
	order.Status = entity.OrderStatusConfirmed
	table, _ := entity.NewTable(4, 4)
	table.SetOutOfService("wobbly")

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)
	fx.factory.EXPECT().NewTableRepository().Return(fx.tableRepo)
	fx.orderRepo.EXPECT().FindByIDForUpdate(ctx, int64(5)).Return(order, nil)
	fx.orderRepo.EXPECT().UpdateStatus(ctx, order).Return(nil)
	fx.tableRepo.EXPECT().FindByNumberForUpdate(ctx, 4).Return(table, nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, eventOfType(service.OrderEventStatusChanged)).Return(nil)

	_, err := fx.service.UpdateStatus(ctx, 5, entity.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, entity.TableStatusOutOfService, table.Status)
}

func TestOrderService_UpdateStatus_CompletingKeepsOtherCustomersTable(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := testOrder(5, 1, entity.ServiceTypeDineIn, 4)
	order.Status = entity.OrderStatusReady
	table, _ := entity.NewTable(4, 4)
	table.Occupy(2, testNow.Add(-time.Hour))

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)
	fx.factory.EXPECT().NewTableRepository().Return(fx.tableRepo)
	fx.orderRepo.EXPECT().FindByIDForUpdate(ctx, int64(5)).Return(order, nil)
	fx.orderRepo.EXPECT().UpdateStatus(ctx, order).Return(nil)
	fx.tableRepo.EXPECT().FindByNumberForUpdate(ctx, 4).Return(table, nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, eventOfType(service.OrderEventStatusChanged)).Return(nil)

	_, err := fx.service.UpdateStatus(ctx, 5, entity.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, entity.TableStatusOccupied, table.Status)
	assert.Equal(t, int64(2), table.CustomerID)
}

func TestOrderService_UpdateStatus_CancelPendingOrderLeavesTableAlone(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := testOrder(5, 1, entity.ServiceTypeDineIn, 4)

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)
	fx.orderRepo.EXPECT().FindByIDForUpdate(ctx, int64(5)).Return(order, nil)
	fx.orderRepo.EXPECT().UpdateStatus(ctx, order).Return(nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, eventOfType(service.OrderEventStatusChanged)).Return(nil)

	updated, err := fx.service.UpdateStatus(ctx, 5, entity.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, updated.Status)
	fx.tableRepo.AssertNotCalled(t, "FindByNumberForUpdate", mock.Anything, mock.Anything)
}

func TestOrderService_UpdateStatus_RejectsSkippingStates(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := testOrder(5, 1, entity.ServiceTypeTakeaway, 0)

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)
	fx.orderRepo.EXPECT().FindByIDForUpdate(ctx, int64(5)).Return(order, nil)

	_, err := fx.service.UpdateStatus(ctx, 5, entity.OrderStatusReady)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
	assert.Equal(t, entity.OrderStatusPending, order.Status)
}

func TestOrderService_UpdateStatus_UnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.UpdateStatus(context.Background(), 5, "SHIPPED")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_UpdateItemQuantity_Recalculates(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := testOrder(5, 1, entity.ServiceTypeTakeaway, 0)

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)
	fx.orderRepo.EXPECT().FindByIDForUpdate(ctx, int64(5)).Return(order, nil)
	fx.orderRepo.EXPECT().Update(ctx, order).Return(nil)

	updated, err := fx.service.UpdateItemQuantity(ctx, 5, 2, 4)
	require.NoError(t, err)
	assert.InDelta(t, 12.00, updated.Subtotal, 1e-9)
	assert.InDelta(t, 12.96, updated.Total, 1e-9)
}

func TestOrderService_AddItem_MergesExistingLine(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := testOrder(5, 1, entity.ServiceTypeTakeaway, 0)

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)
	fx.factory.EXPECT().NewMenuItemRepository().Return(fx.menuRepo)
	fx.orderRepo.EXPECT().FindByIDForUpdate(ctx, int64(5)).Return(order, nil)
	fx.menuRepo.EXPECT().FindByID(ctx, int64(2)).Return(testMuffin(2), nil)
	fx.orderRepo.EXPECT().Update(ctx, order).Return(nil)

	updated, err := fx.service.AddItem(ctx, 5, usecase.OrderLineInput{MenuItemID: 2, Quantity: 1})
	require.NoError(t, err)
	assert.Len(t, updated.Items, 1)
	assert.Equal(t, 3, updated.TotalItems())
}

func TestOrderService_RemoveItem_LastLineRejected(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := testOrder(5, 1, entity.ServiceTypeTakeaway, 0)

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)
	fx.orderRepo.EXPECT().FindByIDForUpdate(ctx, int64(5)).Return(order, nil)

	_, err := fx.service.RemoveItem(ctx, 5, 2)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyOrder))
}

func TestOrderService_ApplyDiscount_OnlyPending(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := testOrder(5, 1, entity.ServiceTypeTakeaway, 0)
	order.Status = entity.OrderStatusConfirmed

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)
	fx.orderRepo.EXPECT().FindByIDForUpdate(ctx, int64(5)).Return(order, nil)

	_, err := fx.service.ApplyDiscount(ctx, 5, 1)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotEditable))
}

func TestOrderService_ApplyDiscount_ClampsTotalAtZero(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := testOrder(5, 1, entity.ServiceTypeTakeaway, 0)

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)
	fx.orderRepo.EXPECT().FindByIDForUpdate(ctx, int64(5)).Return(order, nil)
	fx.orderRepo.EXPECT().Update(ctx, order).Return(nil)

	updated, err := fx.service.ApplyDiscount(ctx, 5, 50)
	require.NoError(t, err)
	assert.Zero(t, updated.Total)
	assert.InDelta(t, 50, updated.Discount, 1e-9)
}

func TestOrderService_DeleteOrder(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	pending := testOrder(5, 1, entity.ServiceTypeTakeaway, 0)
	completed := testOrder(6, 1, entity.ServiceTypeTakeaway, 0)
	completed.Status = entity.OrderStatusCompleted

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)
	fx.orderRepo.EXPECT().FindByIDForUpdate(ctx, int64(5)).Return(pending, nil)
	fx.orderRepo.EXPECT().Delete(ctx, int64(5)).Return(nil)
	fx.orderRepo.EXPECT().FindByIDForUpdate(ctx, int64(6)).Return(completed, nil)

	require.NoError(t, fx.service.DeleteOrder(ctx, 5))
	assert.True(t, errors.Is(fx.service.DeleteOrder(ctx, 6), domainerrors.ErrOrderNotEditable))
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().FindByID(ctx, int64(8)).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.GetOrder(ctx, 8)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}
