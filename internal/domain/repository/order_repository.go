package repository

import (
	"context"
	"time"

	"coffeeshop/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrOrderNotFound is returned when an order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter narrows an order listing. Nil fields are ignored.
type OrderFilter struct {
	CustomerID  *int64
	Status      *entity.OrderStatus
	TableNumber *int
	From        *time.Time
	To          *time.Time
}

// OrderRepository defines order persistence. Orders are stored as a header plus line items.
type OrderRepository interface {
	// Create inserts the header and its lines. Run it inside a transaction for atomicity.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID loads the order with its lines and their menu items.
	FindByID(ctx context.Context, id int64) (*entity.Order, error)

	// FindByIDForUpdate is FindByID with a row lock on the header.
	FindByIDForUpdate(ctx context.Context, id int64) (*entity.Order, error)

	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)

	// Update saves the header and replaces the lines.
	Update(ctx context.Context, order *entity.Order) error

	UpdateStatus(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context, from, to *time.Time) (*entity.OrderStats, error)
}
