package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"coffeeshop/internal/delivery/http/response"
	"coffeeshop/internal/domain/entity"
	"coffeeshop/internal/domain/repository"
	"coffeeshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler serves payments and refunds.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler.
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// ProcessPaymentRequest is the body of POST /api/v1/payments. Only the fields of the chosen method are read.
type ProcessPaymentRequest struct {
	OrderID         int64   `json:"order_id" validate:"required,gt=0"`
	Method          string  `json:"method" validate:"required"`
	CashTendered    float64 `json:"cash_tendered" validate:"gte=0"`
	CardNumber      string  `json:"card_number"`
	CardExpiry      string  `json:"card_expiry"`
	CardCVV         string  `json:"card_cvv"`
	MobilePaymentID string  `json:"mobile_payment_id"`
	LoyaltyPoints   float64 `json:"loyalty_points" validate:"gte=0"`
}

// TotalPaidResponse reports the completed payments of an order.
type TotalPaidResponse struct {
	OrderID   int64   `json:"order_id"`
	TotalPaid float64 `json:"total_paid"`
}

// ProcessPayment records a payment attempt. A declined attempt is still created, with status FAILED.
func (h *PaymentHandler) ProcessPayment(c echo.Context) error {
	var req ProcessPaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	payment, err := h.paymentUC.ProcessPayment(c.Request().Context(), usecase.ProcessPaymentInput{
		OrderID:         req.OrderID,
		Method:          entity.PaymentMethod(strings.ToUpper(req.Method)),
		CashTendered:    req.CashTendered,
		CardNumber:      req.CardNumber,
		CardExpiry:      req.CardExpiry,
		CardCVV:         req.CardCVV,
		MobilePaymentID: req.MobilePaymentID,
		LoyaltyPoints:   req.LoyaltyPoints,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, payment)
}

// GetPayment returns one payment.
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	payment, err := h.paymentUC.GetPayment(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, payment)
}

// FindByReference looks a payment up by its processor reference.
func (h *PaymentHandler) FindByReference(c echo.Context) error {
	payment, err := h.paymentUC.FindByReference(c.Request().Context(), c.Param("reference"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, payment)
}

// ListPayments lists payments. Query parameters: order_id, status, method, from, to.
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	var filter repository.PaymentFilter

	orderID, err := queryInt64(c, "order_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	filter.OrderID = orderID

	if raw := strings.TrimSpace(c.QueryParam("status")); raw != "" {
		status := entity.PaymentStatus(strings.ToUpper(raw))
		filter.Status = &status
	}
	if raw := strings.TrimSpace(c.QueryParam("method")); raw != "" {
		method := entity.PaymentMethod(strings.ToUpper(raw))
		filter.Method = &method
	}

	if filter.From, filter.To, err = queryRange(c); err != nil {
		return response.HandleAppError(c, err)
	}

	payments, err := h.paymentUC.ListPayments(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, payments)
}

// TotalPaid sums the completed payments of an order.
func (h *PaymentHandler) TotalPaid(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	total, err := h.paymentUC.TotalPaid(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, TotalPaidResponse{OrderID: orderID, TotalPaid: total})
}

// Refund reverses a completed payment.
func (h *PaymentHandler) Refund(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	payment, err := h.paymentUC.Refund(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, payment)
}

// Stats reports payment totals for an optional from/to window.
func (h *PaymentHandler) Stats(c echo.Context) error {
	from, to, err := queryRange(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	stats, err := h.paymentUC.Stats(c.Request().Context(), from, to)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}
