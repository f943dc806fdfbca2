// Package payment provides payment processor implementations.
package payment

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"coffeeshop/config"
	"coffeeshop/internal/domain/constants"
	"coffeeshop/internal/domain/entity"
	"coffeeshop/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	referencePrefix    = "TXN-"
	declinedCardSuffix = "0000"
	DeclineCardRefused = "Card declined by issuer"
)

func newReference() string {
	return referencePrefix + strings.ToUpper(uuid.NewString()[:8])
}

// approveGateway approves every validated payment
type approveGateway struct{}

// NewApproveGateway returns a gateway that always approves
func NewApproveGateway() service.PaymentGateway {
	return approveGateway{}
}

func (approveGateway) Authorize(ctx context.Context, _ *entity.Payment) (entity.ProcessorOutcome, error) {
	if err := ctx.Err(); err != nil {
		return entity.ProcessorOutcome{}, errors.WithStack(err)
	}

	return entity.ProcessorOutcome{Approved: true, Reference: newReference()}, nil
}

// simulatedGateway approves with a fixed probability and always declines
// cards whose last four digits are 0000.
type simulatedGateway struct {
	mu          sync.Mutex
	rng         *rand.Rand
	successRate float64
}

// NewSimulatedGateway builds a random gateway. A zero seed seeds from the clock.
func NewSimulatedGateway(successRate float64, seed uint64) service.PaymentGateway {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &simulatedGateway{
		rng:         rand.New(rand.NewPCG(seed, seed>>1|1)),
		successRate: successRate,
	}
}

func (g *simulatedGateway) Authorize(ctx context.Context, payment *entity.Payment) (entity.ProcessorOutcome, error) {
	if err := ctx.Err(); err != nil {
		return entity.ProcessorOutcome{}, errors.WithStack(err)
	}

	outcome := entity.ProcessorOutcome{Reference: newReference()}

	if payment.Method.IsCard() && payment.CardLastFour == declinedCardSuffix {
		outcome.DeclineReason = DeclineCardRefused

		return outcome, nil
	}

	g.mu.Lock()
	roll := g.rng.Float64()
	g.mu.Unlock()

	outcome.Approved = roll < g.successRate

	return outcome, nil
}

// GatewayParams holds dependencies for PaymentGateway, injected by Fx
type GatewayParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewPaymentGateway selects the gateway named in configuration
func NewPaymentGateway(params GatewayParams) (service.PaymentGateway, error) {
	cfg := params.Config.Payment
	if cfg == nil {
		return NewApproveGateway(), nil
	}

	switch cfg.Gateway {
	case "", constants.PaymentGatewayApprove:
		params.Logger.Info("Using approving payment gateway")

		return NewApproveGateway(), nil
	case constants.PaymentGatewaySimulated:
		params.Logger.Info("Using simulated payment gateway",
			slog.Float64("success_rate", cfg.SuccessRate),
		)

		return NewSimulatedGateway(cfg.SuccessRate, cfg.Seed), nil
	default:
		return nil, errors.Errorf("unknown payment gateway: %s", cfg.Gateway)
	}
}

// Module provides the payment gateway FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPaymentGateway),
)
