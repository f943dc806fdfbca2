package repository

import (
	"context"

	"coffeeshop/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrCustomerNotFound is returned when a customer does not exist.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrDuplicateEmail is returned when an email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// CustomerRepository defines customer persistence.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	FindByID(ctx context.Context, id int64) (*entity.Customer, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*entity.Customer, error)
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)
	FindByPhone(ctx context.Context, phone string) (*entity.Customer, error)

	// Search matches name, email or phone; an empty query lists everyone.
	Search(ctx context.Context, query string) ([]*entity.Customer, error)

	TopByLoyalty(ctx context.Context, limit int) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	UpdateLoyaltyPoints(ctx context.Context, id int64, points float64) error
	Delete(ctx context.Context, id int64) error
	EmailExists(ctx context.Context, email string) (bool, error)
	Stats(ctx context.Context) (*entity.CustomerStats, error)
}
