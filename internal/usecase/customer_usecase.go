package usecase

import (
	"context"

	"coffeeshop/internal/domain/entity"
)

// RegisterCustomerInput defines the data required to register a customer.
type RegisterCustomerInput struct {
	Name  string
	Email string
	Phone string
}

// UpdateCustomerInput carries the fields to change. Nil fields are left untouched.
type UpdateCustomerInput struct {
	Name  *string
	Email *string
	Phone *string
}

// CustomerHistory is a customer with their orders and the totals derived from them.
type CustomerHistory struct {
	Customer    *entity.Customer `json:"customer"`
	Orders      []*entity.Order  `json:"orders"`
	TotalOrders int              `json:"total_orders"`
	TotalSpent  float64          `json:"total_spent"` // paid orders only
}

// CustomerUsecase defines customer accounts and the loyalty ledger.
type CustomerUsecase interface {
	RegisterCustomer(ctx context.Context, input RegisterCustomerInput) (*entity.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*entity.Customer, error)
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)
	FindByPhone(ctx context.Context, phone string) (*entity.Customer, error)

	// SearchCustomers matches name, email or phone. An empty query lists every customer.
	SearchCustomers(ctx context.Context, query string) ([]*entity.Customer, error)

	UpdateCustomer(ctx context.Context, id int64, input UpdateCustomerInput) (*entity.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
	OrderHistory(ctx context.Context, id int64) (*CustomerHistory, error)
	AddLoyaltyPoints(ctx context.Context, id int64, points float64) (*entity.Customer, error)
	RedeemLoyaltyPoints(ctx context.Context, id int64, points float64) (*entity.Customer, error)
	TopLoyaltyCustomers(ctx context.Context, limit int) ([]*entity.Customer, error)
	Stats(ctx context.Context) (*entity.CustomerStats, error)
}
