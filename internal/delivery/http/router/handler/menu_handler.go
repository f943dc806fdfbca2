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

// MenuHandlerParams holds dependencies for MenuHandler, injected by Fx.
type MenuHandlerParams struct {
	fx.In

	MenuUC usecase.MenuUsecase
	Logger *slog.Logger
}

// MenuHandler serves the catalog.
type MenuHandler struct {
	menuUC usecase.MenuUsecase
	logger *slog.Logger
}

// NewMenuHandler is the constructor for MenuHandler.
func NewMenuHandler(params MenuHandlerParams) *MenuHandler {
	return &MenuHandler{
		menuUC: params.MenuUC,
		logger: params.Logger,
	}
}

// CreateMenuItemRequest is the body of POST /api/v1/menu.
type CreateMenuItemRequest struct {
	Name           string   `json:"name" validate:"required,max=100"`
	Description    string   `json:"description" validate:"max=500"`
	Price          float64  `json:"price" validate:"gte=0"`
	Category       string   `json:"category" validate:"max=50"`
	Kind           string   `json:"kind" validate:"omitempty,oneof=PLAIN COFFEE"`
	CoffeeType     string   `json:"coffee_type" validate:"omitempty,oneof=ESPRESSO AMERICANO LATTE CAPPUCCINO MACCHIATO MOCHA FRAPPUCCINO"`
	Size           string   `json:"size" validate:"omitempty,oneof=SMALL MEDIUM LARGE"`
	Hot            bool     `json:"hot"`
	Customizations []string `json:"customizations"`
	Available      *bool    `json:"available"`
}

// UpdateMenuItemRequest is the body of PUT /api/v1/menu/:id. Omitted fields are kept.
type UpdateMenuItemRequest struct {
	Name           *string  `json:"name" validate:"omitempty,max=100"`
	Description    *string  `json:"description" validate:"omitempty,max=500"`
	Price          *float64 `json:"price" validate:"omitempty,gte=0"`
	Category       *string  `json:"category" validate:"omitempty,max=50"`
	Size           *string  `json:"size" validate:"omitempty,oneof=SMALL MEDIUM LARGE"`
	Hot            *bool    `json:"hot"`
	Customizations []string `json:"customizations"`
	Available      *bool    `json:"available"`
}

// SetAvailabilityRequest is the body of PATCH /api/v1/menu/:id/availability.
type SetAvailabilityRequest struct {
	Available *bool `json:"available" validate:"required"`
}

// CreateItem adds a catalog item.
func (h *MenuHandler) CreateItem(c echo.Context) error {
	var req CreateMenuItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	kind := entity.MenuItemKind(req.Kind)
	if kind == "" {
		kind = entity.MenuItemKindPlain
		if req.CoffeeType != "" {
			kind = entity.MenuItemKindCoffee
		}
	}

	item, err := h.menuUC.CreateItem(c.Request().Context(), usecase.CreateMenuItemInput{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Category:       req.Category,
		Kind:           kind,
		CoffeeType:     entity.CoffeeType(req.CoffeeType),
		Size:           entity.CoffeeSize(req.Size),
		Hot:            req.Hot,
		Customizations: req.Customizations,
		Available:      req.Available,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item)
}

// GetItem returns one catalog item.
func (h *MenuHandler) GetItem(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.menuUC.GetItem(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

// ListItems lists the catalog. Query parameters: available, category, q, min_price, max_price.
func (h *MenuHandler) ListItems(c echo.Context) error {
	availableOnly, err := queryBool(c, "available", false)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	minPrice, err := queryFloat(c, "min_price")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	maxPrice, err := queryFloat(c, "max_price")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	items, err := h.menuUC.ListItems(c.Request().Context(), repository.MenuFilter{
		AvailableOnly: availableOnly,
		Category:      strings.TrimSpace(c.QueryParam("category")),
		NameQuery:     strings.TrimSpace(c.QueryParam("q")),
		MinPrice:      minPrice,
		MaxPrice:      maxPrice,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

// Categories lists the distinct categories.
func (h *MenuHandler) Categories(c echo.Context) error {
	categories, err := h.menuUC.Categories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories)
}

// CountItems counts catalog items, optionally only the available ones.
func (h *MenuHandler) CountItems(c echo.Context) error {
	availableOnly, err := queryBool(c, "available", false)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	count, err := h.menuUC.CountItems(c.Request().Context(), availableOnly)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"count": count})
}

// UpdateItem changes a catalog item.
func (h *MenuHandler) UpdateItem(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateMenuItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := usecase.UpdateMenuItemInput{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Category:       req.Category,
		Hot:            req.Hot,
		Customizations: req.Customizations,
		Available:      req.Available,
	}
	if req.Size != nil {
		size := entity.CoffeeSize(*req.Size)
		input.Size = &size
	}

	item, err := h.menuUC.UpdateItem(c.Request().Context(), id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

// SetAvailability toggles whether an item can be ordered.
func (h *MenuHandler) SetAvailability(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SetAvailabilityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.menuUC.SetAvailability(c.Request().Context(), id, *req.Available); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messageResponse{Message: "Availability updated"})
}

// DeleteItem removes a catalog item.
func (h *MenuHandler) DeleteItem(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.menuUC.DeleteItem(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messageResponse{Message: "Menu item deleted"})
}
