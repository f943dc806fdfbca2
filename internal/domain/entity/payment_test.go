package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var approved = ProcessorOutcome{Approved: true, Reference: "GW-1"}

func TestPayment_CashInsufficient(t *testing.T) {
	p := NewPayment(1, 10.00, PaymentMethodCash, testNow)

	assert.False(t, p.AcceptCash(8.00))
	assert.Equal(t, PaymentStatusFailed, p.Status)
	assert.NotEmpty(t, p.FailureReason)
	assert.Equal(t, FailureInsufficientCash, p.FailureReason)
	assert.Zero(t, p.ChangeGiven)
}

func TestPayment_CashWithChange(t *testing.T) {
	p := NewPayment(1, 7.80, PaymentMethodCash, testNow)

	require.True(t, p.AcceptCash(10.00))
	assert.Equal(t, PaymentStatusProcessing, p.Status)
	assert.InDelta(t, 2.20, p.ChangeGiven, 1e-9)
	assert.True(t, p.RequiresChange())

	require.True(t, p.Settle(approved, testNow))
	assert.Equal(t, PaymentStatusCompleted, p.Status)
	assert.Equal(t, "GW-1", p.TransactionReference)
	require.NotNil(t, p.ProcessedAt)
}

func TestPayment_CashExactAmount(t *testing.T) {
	p := NewPayment(1, 0.30, PaymentMethodCash, testNow)

	require.True(t, p.AcceptCash(0.1+0.2))
	assert.Zero(t, p.ChangeGiven)
	assert.False(t, p.RequiresChange())
}

func TestPayment_Card(t *testing.T) {
	tests := []struct {
		name    string
		number  string
		expiry  string
		cvv     string
		success bool
	}{
		{"valid", "4111 1111 1111 1234", "12/28", "123", true},
		{"short number", "4111111111", "12/28", "123", false},
		{"missing expiry", "4111111111111234", "", "123", false},
		{"cvv too long", "4111111111111234", "12/28", "1234", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPayment(1, 5.00, PaymentMethodCreditCard, testNow)

			ok := p.AcceptCard(tt.number, tt.expiry, tt.cvv, "TXN-1")
			assert.Equal(t, tt.success, ok)
			if tt.success {
				assert.Equal(t, PaymentStatusProcessing, p.Status)
				assert.Equal(t, "1234", p.CardLastFour)
				assert.Equal(t, "TXN-1", p.TransactionReference)
			} else {
				assert.Equal(t, PaymentStatusFailed, p.Status)
				assert.Equal(t, FailureInvalidCard, p.FailureReason)
				assert.Empty(t, p.CardLastFour)
			}
		})
	}
}

func TestPayment_Mobile(t *testing.T) {
	ok := NewPayment(1, 5.00, PaymentMethodMobilePayment, testNow)
	require.True(t, ok.AcceptMobile("wallet-42"))
	assert.Equal(t, "wallet-42", ok.TransactionReference)

	bad := NewPayment(1, 5.00, PaymentMethodMobilePayment, testNow)
	assert.False(t, bad.AcceptMobile("  "))
	assert.Equal(t, FailureInvalidMobileID, bad.FailureReason)
}

func TestPayment_LoyaltyPoints(t *testing.T) {
	ok := NewPayment(1, 5.00, PaymentMethodLoyaltyPoints, testNow)
	require.True(t, ok.AcceptLoyaltyPoints(500, 0.01))
	assert.Equal(t, "LOYALTY_500", ok.TransactionReference)

	short := NewPayment(1, 5.00, PaymentMethodLoyaltyPoints, testNow)
	assert.False(t, short.AcceptLoyaltyPoints(499, 0.01))
	assert.Equal(t, FailureInsufficientPoints, short.FailureReason)
}

func TestPayment_OnlyOneValidation(t *testing.T) {
	p := NewPayment(1, 5.00, PaymentMethodCash, testNow)
	require.True(t, p.AcceptCash(5.00))

	assert.False(t, p.AcceptCash(50.00), "second validation is ignored")
	assert.InDelta(t, 5.00, p.AmountPaid, 1e-9)
}

func TestPayment_MethodMismatchIsIgnored(t *testing.T) {
	p := NewPayment(1, 5.00, PaymentMethodCash, testNow)

	assert.False(t, p.AcceptCard("4111111111111234", "12/28", "123", "TXN"))
	assert.Equal(t, PaymentStatusPending, p.Status)
}

func TestPayment_SettleDeclined(t *testing.T) {
	p := NewPayment(1, 5.00, PaymentMethodMobilePayment, testNow)
	require.True(t, p.AcceptMobile("wallet"))

	require.True(t, p.Settle(ProcessorOutcome{Approved: false}, testNow))
	assert.Equal(t, PaymentStatusFailed, p.Status)
	assert.Equal(t, FailureProcessingDeclined, p.FailureReason)
	assert.Equal(t, "wallet", p.TransactionReference)
}

func TestPayment_SettleDeclinedCashGivesNoChange(t *testing.T) {
	p := NewPayment(1, 7.80, PaymentMethodCash, testNow)
	require.True(t, p.AcceptCash(20.00))
	require.True(t, p.RequiresChange())

	require.True(t, p.Settle(ProcessorOutcome{Approved: false, DeclineReason: "drawer locked"}, testNow))
	assert.Equal(t, PaymentStatusFailed, p.Status)
	assert.Equal(t, "drawer locked", p.FailureReason)
	assert.Zero(t, p.ChangeGiven)
	assert.False(t, p.RequiresChange())
}

func TestPayment_SettleRequiresProcessing(t *testing.T) {
	p := NewPayment(1, 5.00, PaymentMethodCash, testNow)
	assert.False(t, p.Settle(approved, testNow))
	assert.Equal(t, PaymentStatusPending, p.Status)
}

func TestPayment_Refund(t *testing.T) {
	p := NewPayment(1, 5.00, PaymentMethodCash, testNow)
	assert.False(t, p.Refund())

	p.AcceptCash(5)
	p.Settle(approved, testNow.Add(time.Second))
	assert.True(t, p.Refund())
	assert.Equal(t, PaymentStatusRefunded, p.Status)
	assert.False(t, p.Refund())
}

func TestPayment_Decline(t *testing.T) {
	p := NewPayment(1, 5.00, PaymentMethodLoyaltyPoints, testNow)
	require.True(t, p.Decline(FailureInsufficientPoints))
	assert.True(t, p.IsFailed())
	assert.Equal(t, FailureInsufficientPoints, p.FailureReason)

	assert.False(t, p.Decline("again"), "already settled")
}
