package usecase

import (
	"context"
	"time"

	"coffeeshop/internal/domain/entity"
	"coffeeshop/internal/domain/repository"
)

// ProcessPaymentInput defines a payment attempt. Only the fields of the chosen method are read.
type ProcessPaymentInput struct {
	OrderID         int64
	Method          entity.PaymentMethod
	CashTendered    float64
	CardNumber      string
	CardExpiry      string
	CardCVV         string
	MobilePaymentID string
	LoyaltyPoints   float64
}

// PaymentUsecase defines payment processing.
type PaymentUsecase interface {
	// ProcessPayment records an attempt. A declined attempt is returned with status FAILED and no error.
	// A completed one confirms the order, seats a dine-in table and updates the loyalty balance.
	ProcessPayment(ctx context.Context, input ProcessPaymentInput) (*entity.Payment, error)

	GetPayment(ctx context.Context, id int64) (*entity.Payment, error)
	FindByReference(ctx context.Context, reference string) (*entity.Payment, error)
	ListPayments(ctx context.Context, filter repository.PaymentFilter) ([]*entity.Payment, error)
	Refund(ctx context.Context, paymentID int64) (*entity.Payment, error)
	TotalPaid(ctx context.Context, orderID int64) (float64, error)
	Stats(ctx context.Context, from, to *time.Time) (*entity.PaymentStats, error)
}
