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

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves order placement and the order lifecycle.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// OrderLineRequest is one requested line.
type OrderLineRequest struct {
	MenuItemID     int64    `json:"menu_item_id" validate:"required,gt=0"`
	Quantity       int      `json:"quantity"`
	Size           string   `json:"size" validate:"omitempty,oneof=SMALL MEDIUM LARGE"`
	Hot            *bool    `json:"hot"`
	Customizations []string `json:"customizations"`
	Notes          string   `json:"notes" validate:"max=200"`
}

func (r OrderLineRequest) toInput() usecase.OrderLineInput {
	return usecase.OrderLineInput{
		MenuItemID:     r.MenuItemID,
		Quantity:       r.Quantity,
		Size:           entity.CoffeeSize(r.Size),
		Hot:            r.Hot,
		Customizations: r.Customizations,
		Notes:          r.Notes,
	}
}

// PlaceOrderRequest is the body of POST /api/v1/orders. customer_id 0 places a guest order.
type PlaceOrderRequest struct {
	CustomerID          int64              `json:"customer_id" validate:"gte=0"`
	ServiceType         string             `json:"service_type" validate:"required,oneof=DINE_IN TAKEAWAY"`
	TableNumber         int                `json:"table_number" validate:"gte=0"`
	Items               []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
	Discount            float64            `json:"discount"`
	SpecialInstructions string             `json:"special_instructions" validate:"max=500"`
}

// UpdateQuantityRequest is the body of PUT /api/v1/orders/:id/items/:menuItemId.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// ApplyDiscountRequest is the body of PUT /api/v1/orders/:id/discount.
type ApplyDiscountRequest struct {
	Amount float64 `json:"amount"`
}

// UpdateStatusRequest is the body of PATCH /api/v1/orders/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// PlaceOrder handles a new order.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	var req PlaceOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	lines := make([]usecase.OrderLineInput, len(req.Items))
	for i, item := range req.Items {
		lines[i] = item.toInput()
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), usecase.PlaceOrderInput{
		CustomerID:          req.CustomerID,
		ServiceType:         entity.ServiceType(req.ServiceType),
		TableNumber:         req.TableNumber,
		Items:               lines,
		Discount:            req.Discount,
		SpecialInstructions: req.SpecialInstructions,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// GetOrder returns one order with its lines.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// ListOrders lists orders. Query parameters: customer_id, status, table, from, to.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	var filter repository.OrderFilter

	customerID, err := queryInt64(c, "customer_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	filter.CustomerID = customerID

	table, err := queryInt64(c, "table")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if table != nil {
		number := int(*table)
		filter.TableNumber = &number
	}

	if raw := strings.TrimSpace(c.QueryParam("status")); raw != "" {
		status := entity.OrderStatus(strings.ToUpper(raw))
		filter.Status = &status
	}

	if filter.From, filter.To, err = queryRange(c); err != nil {
		return response.HandleAppError(c, err)
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// AddItem adds a line to a pending order.
func (h *OrderHandler) AddItem(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req OrderLineRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.AddItem(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// UpdateItemQuantity changes the quantity of a line.
func (h *OrderHandler) UpdateItemQuantity(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	menuItemID, err := pathID(c, "menuItemId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateQuantityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.UpdateItemQuantity(c.Request().Context(), id, menuItemID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// RemoveItem drops a line from a pending order.
func (h *OrderHandler) RemoveItem(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	menuItemID, err := pathID(c, "menuItemId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.RemoveItem(c.Request().Context(), id, menuItemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// ApplyDiscount sets the discount of a pending order.
func (h *OrderHandler) ApplyDiscount(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ApplyDiscountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.ApplyDiscount(c.Request().Context(), id, req.Amount)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// UpdateStatus moves an order through its lifecycle.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), id, entity.OrderStatus(strings.ToUpper(req.Status)))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// DeleteOrder removes an order and its lines.
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.orderUC.DeleteOrder(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messageResponse{Message: "Order deleted"})
}

// Stats reports order counts and revenue for an optional from/to window.
func (h *OrderHandler) Stats(c echo.Context) error {
	from, to, err := queryRange(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	stats, err := h.orderUC.Stats(c.Request().Context(), from, to)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}
