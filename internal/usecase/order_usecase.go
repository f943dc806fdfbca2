package usecase

import (
	"context"
	"time"

	"coffeeshop/internal/domain/entity"
	"coffeeshop/internal/domain/repository"
)

// OrderLineInput describes one requested line. Size, Hot and Customizations only apply to coffee.
type OrderLineInput struct {
	MenuItemID     int64
	Quantity       int
	Size           entity.CoffeeSize
	Hot            *bool
	Customizations []string
	Notes          string
}

// PlaceOrderInput defines the data required to place an order.
type PlaceOrderInput struct {
	CustomerID          int64
	ServiceType         entity.ServiceType
	TableNumber         int
	Items               []OrderLineInput
	Discount            float64
	SpecialInstructions string
}

// OrderUsecase defines order placement and the order lifecycle.
type OrderUsecase interface {
	// PlaceOrder validates the request and stores the header and its lines atomically.
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*entity.Order, error)

	GetOrder(ctx context.Context, id int64) (*entity.Order, error)
	ListOrders(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error)

	// AddItem, UpdateItemQuantity, RemoveItem and ApplyDiscount only change PENDING orders.
	AddItem(ctx context.Context, orderID int64, line OrderLineInput) (*entity.Order, error)
	UpdateItemQuantity(ctx context.Context, orderID, menuItemID int64, quantity int) (*entity.Order, error)
	RemoveItem(ctx context.Context, orderID, menuItemID int64) (*entity.Order, error)
	ApplyDiscount(ctx context.Context, orderID int64, amount float64) (*entity.Order, error)

	// UpdateStatus enforces the status machine. A finished dine-in order frees its table.
	UpdateStatus(ctx context.Context, orderID int64, status entity.OrderStatus) (*entity.Order, error)

	DeleteOrder(ctx context.Context, id int64) error
	Stats(ctx context.Context, from, to *time.Time) (*entity.OrderStats, error)
}
