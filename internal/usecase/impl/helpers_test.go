package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"coffeeshop/config"
	"coffeeshop/internal/domain/entity"
	"coffeeshop/internal/domain/repository"
	mockRepo "coffeeshop/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func fixedNow() time.Time {
	return testNow
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	return cfg
}

// expectTx makes txManager run the transaction body against factory and return its error.
func expectTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func testLatte(id int64) *entity.MenuItem {
	item := entity.NewCoffee("Latte", "Espresso with steamed milk", 4.50, entity.CoffeeTypeLatte, entity.CoffeeSizeSmall, true)
	item.ID = id

	return item
}

func testMuffin(id int64) *entity.MenuItem {
	item := entity.NewPlainItem("Blueberry Muffin", "", 3.00, "Bakery")
	item.ID = id

	return item
}

func testCustomer(id int64, points float64) *entity.Customer {
	customer, _ := entity.NewCustomer("John Doe", "john.doe@email.com", "555-0101", testNow)
	customer.ID = id
	customer.LoyaltyPoints = points

	return customer
}

func testOrder(id int64, customerID int64, serviceType entity.ServiceType, table int) *entity.Order {
	order := entity.NewOrder(customerID, serviceType, testNow)
	order.ID = id
	order.SetTableNumber(table)
	order.AddItem(testMuffin(2), 2)

	return order
}
