package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"coffeeshop/internal/delivery/http/response"
	domainerrors "coffeeshop/internal/domain/errors"
	"coffeeshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC usecase.CustomerUsecase
	Logger     *slog.Logger
}

// CustomerHandler serves customer accounts and loyalty.
type CustomerHandler struct {
	customerUC usecase.CustomerUsecase
	logger     *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler.
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{
		customerUC: params.CustomerUC,
		logger:     params.Logger,
	}
}

// RegisterCustomerRequest is the body of POST /api/v1/customers.
type RegisterCustomerRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,max=20"`
}

// UpdateCustomerRequest is the body of PUT /api/v1/customers/:id. Omitted fields are kept.
type UpdateCustomerRequest struct {
	Name  *string `json:"name" validate:"omitempty,max=100"`
	Email *string `json:"email" validate:"omitempty,email"`
	Phone *string `json:"phone" validate:"omitempty,max=20"`
}

// LoyaltyPointsRequest is the body of the loyalty endpoints.
type LoyaltyPointsRequest struct {
	Points float64 `json:"points"`
}

// RegisterCustomer creates a customer account.
func (h *CustomerHandler) RegisterCustomer(c echo.Context) error {
	var req RegisterCustomerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	customer, err := h.customerUC.RegisterCustomer(c.Request().Context(), usecase.RegisterCustomerInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, customer)
}

// GetCustomer returns one customer.
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	customer, err := h.customerUC.GetCustomer(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customer)
}

// Lookup finds a customer by the email or phone query parameter.
func (h *CustomerHandler) Lookup(c echo.Context) error {
	ctx := c.Request().Context()

	if email := strings.TrimSpace(c.QueryParam("email")); email != "" {
		customer, err := h.customerUC.FindByEmail(ctx, email)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, customer)
	}

	if phone := strings.TrimSpace(c.QueryParam("phone")); phone != "" {
		customer, err := h.customerUC.FindByPhone(ctx, phone)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, customer)
	}

	return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("email or phone is required"))
}

// SearchCustomers matches the q query parameter against name, email and phone.
func (h *CustomerHandler) SearchCustomers(c echo.Context) error {
	customers, err := h.customerUC.SearchCustomers(c.Request().Context(), strings.TrimSpace(c.QueryParam("q")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customers)
}

// UpdateCustomer changes contact details.
func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateCustomerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	customer, err := h.customerUC.UpdateCustomer(c.Request().Context(), id, usecase.UpdateCustomerInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customer)
}

// DeleteCustomer removes a customer account.
func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.customerUC.DeleteCustomer(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messageResponse{Message: "Customer deleted"})
}

// OrderHistory returns the customer's orders with totals.
func (h *CustomerHandler) OrderHistory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	history, err := h.customerUC.OrderHistory(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, history)
}

// AddLoyaltyPoints credits points by hand.
func (h *CustomerHandler) AddLoyaltyPoints(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req LoyaltyPointsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	customer, err := h.customerUC.AddLoyaltyPoints(c.Request().Context(), id, req.Points)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customer)
}

// RedeemLoyaltyPoints debits points.
func (h *CustomerHandler) RedeemLoyaltyPoints(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req LoyaltyPointsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	customer, err := h.customerUC.RedeemLoyaltyPoints(c.Request().Context(), id, req.Points)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customer)
}

// TopLoyaltyCustomers lists the customers with the most points. Query parameter: limit.
func (h *CustomerHandler) TopLoyaltyCustomers(c echo.Context) error {
	limit := 0
	if raw := strings.TrimSpace(c.QueryParam("limit")); raw != "" {
		var err error
		if limit, err = strconv.Atoi(raw); err != nil {
			return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("limit must be an integer"))
		}
	}

	customers, err := h.customerUC.TopLoyaltyCustomers(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customers)
}

// Stats reports customer counts and the points outstanding.
func (h *CustomerHandler) Stats(c echo.Context) error {
	stats, err := h.customerUC.Stats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}
