package repository

import (
	"context"
	"time"

	"coffeeshop/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrPaymentNotFound is returned when a payment does not exist.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentFilter narrows a payment listing. Nil fields are ignored.
type PaymentFilter struct {
	OrderID *int64
	Status  *entity.PaymentStatus
	Method  *entity.PaymentMethod
	From    *time.Time
	To      *time.Time
}

// PaymentRepository defines payment persistence.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByID(ctx context.Context, id int64) (*entity.Payment, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*entity.Payment, error)
	FindByReference(ctx context.Context, reference string) (*entity.Payment, error)
	List(ctx context.Context, filter PaymentFilter) ([]*entity.Payment, error)
	UpdateStatus(ctx context.Context, payment *entity.Payment) error

	// HasCompletedPayment reports whether the order already has a COMPLETED payment.
	HasCompletedPayment(ctx context.Context, orderID int64) (bool, error)

	// TotalPaid sums the COMPLETED payments of an order.
	TotalPaid(ctx context.Context, orderID int64) (float64, error)

	Stats(ctx context.Context, from, to *time.Time) (*entity.PaymentStats, error)
}
