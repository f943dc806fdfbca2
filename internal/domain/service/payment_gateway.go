package service

import (
	"context"

	"coffeeshop/internal/domain/entity"
)

// PaymentGateway is the external payment processor. It decides the outcome of a payment
// that passed method validation.
type PaymentGateway interface {
	Authorize(ctx context.Context, payment *entity.Payment) (entity.ProcessorOutcome, error)
}
