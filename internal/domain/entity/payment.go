package entity

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// PaymentMethod is how the customer pays.
type PaymentMethod string

const (
	PaymentMethodCash          PaymentMethod = "CASH"
	PaymentMethodCreditCard    PaymentMethod = "CREDIT_CARD"
	PaymentMethodDebitCard     PaymentMethod = "DEBIT_CARD"
	PaymentMethodMobilePayment PaymentMethod = "MOBILE_PAYMENT"
	PaymentMethodLoyaltyPoints PaymentMethod = "LOYALTY_POINTS"
)

// IsValid reports whether m is a known payment method.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCreditCard, PaymentMethodDebitCard,
		PaymentMethodMobilePayment, PaymentMethodLoyaltyPoints:
		return true
	}

	return false
}

// IsCard reports whether m is a credit or debit card.
func (m PaymentMethod) IsCard() bool {
	return m == PaymentMethodCreditCard || m == PaymentMethodDebitCard
}

// PaymentStatus is the lifecycle state of a payment attempt.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "PENDING"
	PaymentStatusProcessing PaymentStatus = "PROCESSING"
	PaymentStatusCompleted  PaymentStatus = "COMPLETED"
	PaymentStatusFailed     PaymentStatus = "FAILED"
	PaymentStatusRefunded   PaymentStatus = "REFUNDED"
)

// Failure reasons recorded on a FAILED payment.
const (
	FailureInsufficientCash   = "Insufficient cash provided"
	FailureInvalidCard        = "Invalid card details"
	FailureInvalidMobileID    = "Invalid mobile payment ID"
	FailureInsufficientPoints = "Insufficient loyalty points"
	FailureProcessingDeclined = "Payment processing failed"
)

const (
	minCardNumberLength        = 16
	cardVerificationCodeLength = 3
	loyaltyReferencePrefix     = "LOYALTY_"
)

// ProcessorOutcome is the verdict of the payment processor for a validated payment.
type ProcessorOutcome struct {
	Approved      bool
	Reference     string
	DeclineReason string
}

// Payment records one attempt to settle an order. Amount is fixed at creation.
type Payment struct {
	ID                   int64         `json:"id"`
	OrderID              int64         `json:"order_id"`
	Method               PaymentMethod `json:"method"`
	Status               PaymentStatus `json:"status"`
	Amount               float64       `json:"amount"`
	AmountPaid           float64       `json:"amount_paid"`
	ChangeGiven          float64       `json:"change_given"`
	PointsUsed           float64       `json:"points_used,omitempty"`
	TransactionReference string        `json:"transaction_reference,omitempty"`
	CardLastFour         string        `json:"card_last_four,omitempty"`
	FailureReason        string        `json:"failure_reason,omitempty"`
	PaymentDate          time.Time     `json:"payment_date"`
	ProcessedAt          *time.Time    `json:"processed_at,omitempty"`
}

// NewPayment starts a PENDING payment for amount.
func NewPayment(orderID int64, amount float64, method PaymentMethod, now time.Time) *Payment {
	return &Payment{
		OrderID:     orderID,
		Method:      method,
		Status:      PaymentStatusPending,
		Amount:      amount,
		PaymentDate: now,
	}
}

func toCents(v float64) int64 {
	return int64(math.Round(v * 100))
}

// fail marks the payment FAILED. No change is handed back on a failed payment.
func (p *Payment) fail(reason string) bool {
	p.Status = PaymentStatusFailed
	p.FailureReason = reason
	p.ChangeGiven = 0

	return false
}

func (p *Payment) accepts(method func(PaymentMethod) bool) bool {
	return p.Status == PaymentStatusPending && method(p.Method)
}

// AcceptCash validates tendered cash and computes the change.
func (p *Payment) AcceptCash(tendered float64) bool {
	if !p.accepts(func(m PaymentMethod) bool { return m == PaymentMethodCash }) {
		return false
	}

	p.AmountPaid = tendered
	if toCents(tendered) < toCents(p.Amount) {
		return p.fail(FailureInsufficientCash)
	}
	p.ChangeGiven = float64(toCents(tendered)-toCents(p.Amount)) / 100
	p.Status = PaymentStatusProcessing

	return true
}

// AcceptCard validates card details. Only the last four digits of the number are kept.
func (p *Payment) AcceptCard(number, expiry, cvv, reference string) bool {
	if !p.accepts(PaymentMethod.IsCard) {
		return false
	}

	number = strings.ReplaceAll(strings.TrimSpace(number), " ", "")
	if len(number) < minCardNumberLength || strings.TrimSpace(expiry) == "" || len(strings.TrimSpace(cvv)) != cardVerificationCodeLength {
		return p.fail(FailureInvalidCard)
	}

	p.AmountPaid = p.Amount
	p.CardLastFour = number[len(number)-4:]
	p.TransactionReference = reference
	p.Status = PaymentStatusProcessing

	return true
}

// AcceptMobile validates the mobile wallet identifier, which becomes the transaction reference.
func (p *Payment) AcceptMobile(paymentID string) bool {
	if !p.accepts(func(m PaymentMethod) bool { return m == PaymentMethodMobilePayment }) {
		return false
	}

	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return p.fail(FailureInvalidMobileID)
	}

	p.AmountPaid = p.Amount
	p.TransactionReference = paymentID
	p.Status = PaymentStatusProcessing

	return true
}

// AcceptLoyaltyPoints validates that points are worth at least the amount at pointValue each.
func (p *Payment) AcceptLoyaltyPoints(points, pointValue float64) bool {
	if !p.accepts(func(m PaymentMethod) bool { return m == PaymentMethodLoyaltyPoints }) {
		return false
	}

	p.PointsUsed = points
	if points <= 0 || toCents(points*pointValue) < toCents(p.Amount) {
		return p.fail(FailureInsufficientPoints)
	}

	p.AmountPaid = p.Amount
	p.TransactionReference = loyaltyReferencePrefix + strconv.FormatFloat(points, 'f', -1, 64)
	p.Status = PaymentStatusProcessing

	return true
}

// Settle applies the processor verdict to a PROCESSING payment.
func (p *Payment) Settle(outcome ProcessorOutcome, now time.Time) bool {
	if p.Status != PaymentStatusProcessing {
		return false
	}

	processedAt := now
	p.ProcessedAt = &processedAt
	if p.TransactionReference == "" {
		p.TransactionReference = outcome.Reference
	}

	if !outcome.Approved {
		reason := outcome.DeclineReason
		if reason == "" {
			reason = FailureProcessingDeclined
		}
		p.fail(reason)

		return true
	}
	p.Status = PaymentStatusCompleted

	return true
}

// Decline fails a payment that has not been settled yet, for checks made outside the entity.
func (p *Payment) Decline(reason string) bool {
	if p.Status != PaymentStatusPending && p.Status != PaymentStatusProcessing {
		return false
	}
	p.fail(reason)

	return true
}

// Refund moves a COMPLETED payment to REFUNDED.
func (p *Payment) Refund() bool {
	if p.Status != PaymentStatusCompleted {
		return false
	}
	p.Status = PaymentStatusRefunded

	return true
}

// IsCompleted reports whether the payment went through.
func (p *Payment) IsCompleted() bool {
	return p.Status == PaymentStatusCompleted
}

// IsFailed reports whether validation or the processor rejected the payment.
func (p *Payment) IsFailed() bool {
	return p.Status == PaymentStatusFailed
}

// RequiresChange reports whether cash change must be handed back.
func (p *Payment) RequiresChange() bool {
	return p.Method == PaymentMethodCash && p.ChangeGiven > 0
}
