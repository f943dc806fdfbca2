package payment

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"coffeeshop/config"
	"coffeeshop/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func cardPayment(t *testing.T, number string) *entity.Payment {
	t.Helper()

	p := entity.NewPayment(1, 10, entity.PaymentMethodCreditCard, now)
	require.True(t, p.AcceptCard(number, "12/29", "123", ""))

	return p
}

func TestApproveGateway(t *testing.T) {
	outcome, err := NewApproveGateway().Authorize(context.Background(), cardPayment(t, "4111111111111111"))
	require.NoError(t, err)

	assert.True(t, outcome.Approved)
	assert.True(t, strings.HasPrefix(outcome.Reference, referencePrefix))
}

func TestApproveGateway_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewApproveGateway().Authorize(ctx, cardPayment(t, "4111111111111111"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSimulatedGateway_DeclinesZeroCards(t *testing.T) {
	gateway := NewSimulatedGateway(1, 42)

	outcome, err := gateway.Authorize(context.Background(), cardPayment(t, "4111 1111 1111 0000"))
	require.NoError(t, err)

	assert.False(t, outcome.Approved)
	assert.Equal(t, DeclineCardRefused, outcome.DeclineReason)
}

func TestSimulatedGateway_SuccessRateBounds(t *testing.T) {
	payment := entity.NewPayment(1, 5, entity.PaymentMethodCash, now)

	always := NewSimulatedGateway(1, 7)
	never := NewSimulatedGateway(0, 7)

	for range 20 {
		outcome, err := always.Authorize(context.Background(), payment)
		require.NoError(t, err)
		assert.True(t, outcome.Approved)

		outcome, err = never.Authorize(context.Background(), payment)
		require.NoError(t, err)
		assert.False(t, outcome.Approved)
	}
}

func TestSimulatedGateway_SeedIsDeterministic(t *testing.T) {
	payment := entity.NewPayment(1, 5, entity.PaymentMethodCash, now)
	first := NewSimulatedGateway(0.5, 99)
	second := NewSimulatedGateway(0.5, 99)

	for range 10 {
		a, _ := first.Authorize(context.Background(), payment)
		b, _ := second.Authorize(context.Background(), payment)
		assert.Equal(t, a.Approved, b.Approved)
	}
}

func TestNewPaymentGateway(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	gateway, err := NewPaymentGateway(GatewayParams{Config: &config.Config{}, Logger: logger})
	require.NoError(t, err)
	assert.IsType(t, approveGateway{}, gateway)

	gateway, err = NewPaymentGateway(GatewayParams{
		Config: &config.Config{Payment: &config.PaymentConfig{Gateway: "simulated", SuccessRate: 0.9}},
		Logger: logger,
	})
	require.NoError(t, err)
	assert.IsType(t, &simulatedGateway{}, gateway)

	_, err = NewPaymentGateway(GatewayParams{
		Config: &config.Config{Payment: &config.PaymentConfig{Gateway: "stripe"}},
		Logger: logger,
	})
	assert.Error(t, err)
}
