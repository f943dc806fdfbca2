package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"coffeeshop/internal/delivery/http/response"
	"coffeeshop/internal/domain/entity"
	domainerrors "coffeeshop/internal/domain/errors"
	"coffeeshop/internal/domain/repository"
	"coffeeshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// InventoryHandlerParams holds dependencies for InventoryHandler, injected by Fx.
type InventoryHandlerParams struct {
	fx.In

	InventoryUC usecase.InventoryUsecase
	Logger      *slog.Logger
}

// InventoryHandler serves the ingredient stock ledger.
type InventoryHandler struct {
	inventoryUC usecase.InventoryUsecase
	logger      *slog.Logger
}

// NewInventoryHandler is the constructor for InventoryHandler.
func NewInventoryHandler(params InventoryHandlerParams) *InventoryHandler {
	return &InventoryHandler{
		inventoryUC: params.InventoryUC,
		logger:      params.Logger,
	}
}

// CreateIngredientRequest is the body of POST /api/v1/inventory.
type CreateIngredientRequest struct {
	Name           string  `json:"name" validate:"required,max=100"`
	Unit           string  `json:"unit" validate:"required"`
	CurrentStock   float64 `json:"current_stock" validate:"gte=0"`
	MinimumStock   float64 `json:"minimum_stock" validate:"gte=0"`
	MaximumStock   float64 `json:"maximum_stock" validate:"gte=0"`
	CostPerUnit    float64 `json:"cost_per_unit" validate:"gte=0"`
	ExpirationDate string  `json:"expiration_date"` // YYYY-MM-DD
	Supplier       string  `json:"supplier" validate:"max=100"`
}

// UpdateIngredientRequest is the body of PUT /api/v1/inventory/:id. Omitted fields are kept.
type UpdateIngredientRequest struct {
	Name           *string  `json:"name" validate:"omitempty,max=100"`
	Unit           *string  `json:"unit"`
	MinimumStock   *float64 `json:"minimum_stock" validate:"omitempty,gte=0"`
	MaximumStock   *float64 `json:"maximum_stock" validate:"omitempty,gte=0"`
	CostPerUnit    *float64 `json:"cost_per_unit" validate:"omitempty,gte=0"`
	ExpirationDate *string  `json:"expiration_date"`
	Supplier       *string  `json:"supplier" validate:"omitempty,max=100"`
	Active         *bool    `json:"active"`
}

// StockChangeRequest is the body of the add and remove stock endpoints.
type StockChangeRequest struct {
	Quantity float64 `json:"quantity"`
}

func parseExpiration(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("expiration_date must be YYYY-MM-DD"))
	}

	return &date, nil
}

// CreateIngredient stocks a new ingredient.
func (h *InventoryHandler) CreateIngredient(c echo.Context) error {
	var req CreateIngredientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	expiration, err := parseExpiration(req.ExpirationDate)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ingredient, err := h.inventoryUC.CreateIngredient(c.Request().Context(), usecase.CreateIngredientInput{
		Name:           req.Name,
		Unit:           entity.Unit(strings.ToUpper(req.Unit)),
		CurrentStock:   req.CurrentStock,
		MinimumStock:   req.MinimumStock,
		MaximumStock:   req.MaximumStock,
		CostPerUnit:    req.CostPerUnit,
		ExpirationDate: expiration,
		Supplier:       req.Supplier,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, ingredient)
}

// GetIngredient returns one ingredient.
func (h *InventoryHandler) GetIngredient(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ingredient, err := h.inventoryUC.GetIngredient(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ingredient)
}

// ListIngredients lists ingredients. Query parameters: active, supplier, q.
func (h *InventoryHandler) ListIngredients(c echo.Context) error {
	activeOnly, err := queryBool(c, "active", false)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ingredients, err := h.inventoryUC.ListIngredients(c.Request().Context(), repository.IngredientFilter{
		ActiveOnly: activeOnly,
		Supplier:   strings.TrimSpace(c.QueryParam("supplier")),
		NameQuery:  strings.TrimSpace(c.QueryParam("q")),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ingredients)
}

// UpdateIngredient changes thresholds, cost or metadata of an ingredient.
func (h *InventoryHandler) UpdateIngredient(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateIngredientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := usecase.UpdateIngredientInput{
		Name:         req.Name,
		MinimumStock: req.MinimumStock,
		MaximumStock: req.MaximumStock,
		CostPerUnit:  req.CostPerUnit,
		Supplier:     req.Supplier,
		Active:       req.Active,
	}
	if req.Unit != nil {
		unit := entity.Unit(strings.ToUpper(*req.Unit))
		input.Unit = &unit
	}
	if req.ExpirationDate != nil {
		if input.ExpirationDate, err = parseExpiration(*req.ExpirationDate); err != nil {
			return response.HandleAppError(c, err)
		}
	}

	ingredient, err := h.inventoryUC.UpdateIngredient(c.Request().Context(), id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ingredient)
}

// DeleteIngredient removes an ingredient.
func (h *InventoryHandler) DeleteIngredient(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.inventoryUC.DeleteIngredient(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messageResponse{Message: "Ingredient deleted"})
}

// AddStock receives a delivery.
func (h *InventoryHandler) AddStock(c echo.Context) error {
	return h.changeStock(c, h.inventoryUC.AddStock)
}

// RemoveStock consumes stock.
func (h *InventoryHandler) RemoveStock(c echo.Context) error {
	return h.changeStock(c, h.inventoryUC.RemoveStock)
}

func (h *InventoryHandler) changeStock(c echo.Context, change func(ctx context.Context, id int64, quantity float64) (*entity.Ingredient, error)) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req StockChangeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	ingredient, err := change(c.Request().Context(), id, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ingredient)
}

// LowStock lists ingredients at or below their minimum.
func (h *InventoryHandler) LowStock(c echo.Context) error {
	return h.list(c, h.inventoryUC.LowStock)
}

// OutOfStock lists ingredients with nothing left.
func (h *InventoryHandler) OutOfStock(c echo.Context) error {
	return h.list(c, h.inventoryUC.OutOfStock)
}

// Expired lists ingredients past their expiration date.
func (h *InventoryHandler) Expired(c echo.Context) error {
	return h.list(c, h.inventoryUC.Expired)
}

// ExpiringSoon lists ingredients expiring within the days query parameter.
func (h *InventoryHandler) ExpiringSoon(c echo.Context) error {
	days := 0
	if raw := strings.TrimSpace(c.QueryParam("days")); raw != "" {
		var err error
		if days, err = strconv.Atoi(raw); err != nil {
			return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("days must be an integer"))
		}
	}

	ingredients, err := h.inventoryUC.ExpiringSoon(c.Request().Context(), days)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ingredients)
}

func (h *InventoryHandler) list(c echo.Context, query func(ctx context.Context) ([]*entity.Ingredient, error)) error {
	ingredients, err := query(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ingredients)
}

// Suppliers lists the distinct suppliers.
func (h *InventoryHandler) Suppliers(c echo.Context) error {
	suppliers, err := h.inventoryUC.Suppliers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, suppliers)
}

// Stats reports stock counts and the value on hand.
func (h *InventoryHandler) Stats(c echo.Context) error {
	stats, err := h.inventoryUC.Stats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}
