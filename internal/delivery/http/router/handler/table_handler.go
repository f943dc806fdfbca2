package handler

import (
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
	"go.uber.org/fx"
)

// TableHandlerParams holds dependencies for TableHandler, injected by Fx.
type TableHandlerParams struct {
	fx.In

	TableUC usecase.TableUsecase
	Logger  *slog.Logger
}

// TableHandler serves seating management.
type TableHandler struct {
	tableUC usecase.TableUsecase
	logger  *slog.Logger
}

// NewTableHandler is the constructor for TableHandler.
func NewTableHandler(params TableHandlerParams) *TableHandler {
	return &TableHandler{
		tableUC: params.TableUC,
		logger:  params.Logger,
	}
}

// CreateTableRequest is the body of POST /api/v1/tables.
type CreateTableRequest struct {
	Number   int `json:"table_number" validate:"required,gt=0"`
	Capacity int `json:"capacity" validate:"required,gt=0"`
}

// UpdateTableRequest is the body of PUT /api/v1/tables/:number. Omitted fields are kept.
type UpdateTableRequest struct {
	Capacity *int    `json:"capacity"`
	Notes    *string `json:"notes" validate:"omitempty,max=200"`
}

// OccupyTableRequest seats a customer. customer_id 0 seats a walk-in guest.
type OccupyTableRequest struct {
	CustomerID int64 `json:"customer_id" validate:"gte=0"`
}

// ReserveTableRequest holds a table until the given time.
type ReserveTableRequest struct {
	Until time.Time `json:"until" validate:"required"`
}

// OutOfServiceRequest takes a table out of service.
type OutOfServiceRequest struct {
	Reason string `json:"reason" validate:"max=200"`
}

// ResolveQRRequest carries the data read from a table's QR code.
type ResolveQRRequest struct {
	Data string `json:"data" validate:"required"`
}

// CreateTable adds a table.
func (h *TableHandler) CreateTable(c echo.Context) error {
	var req CreateTableRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	table, err := h.tableUC.CreateTable(c.Request().Context(), req.Number, req.Capacity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, table)
}

// GetTable returns one table.
func (h *TableHandler) GetTable(c echo.Context) error {
	number, err := pathInt(c, "number")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	table, err := h.tableUC.GetTable(c.Request().Context(), number)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, table)
}

// ListTables lists tables. Query parameters: status, min_capacity.
func (h *TableHandler) ListTables(c echo.Context) error {
	var filter repository.TableFilter

	if raw := strings.TrimSpace(c.QueryParam("status")); raw != "" {
		status := entity.TableStatus(strings.ToUpper(raw))
		filter.Status = &status
	}

	minCapacity, err := queryInt64(c, "min_capacity")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if minCapacity != nil {
		filter.MinCapacity = int(*minCapacity)
	}

	tables, err := h.tableUC.ListTables(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tables)
}

// FindBestTable picks the smallest available table for party_size guests.
func (h *TableHandler) FindBestTable(c echo.Context) error {
	partySize, err := strconv.Atoi(strings.TrimSpace(c.QueryParam("party_size")))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("party_size must be an integer"))
	}

	table, err := h.tableUC.FindBestTable(c.Request().Context(), partySize)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, table)
}

// OccupyTable seats a customer.
func (h *TableHandler) OccupyTable(c echo.Context) error {
	number, err := pathInt(c, "number")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req OccupyTableRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	table, err := h.tableUC.OccupyTable(c.Request().Context(), number, req.CustomerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, table)
}

// ReserveTable holds a table.
func (h *TableHandler) ReserveTable(c echo.Context) error {
	number, err := pathInt(c, "number")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ReserveTableRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	table, err := h.tableUC.ReserveTable(c.Request().Context(), number, req.Until)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, table)
}

// ReleaseTable frees a table.
func (h *TableHandler) ReleaseTable(c echo.Context) error {
	number, err := pathInt(c, "number")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	table, err := h.tableUC.ReleaseTable(c.Request().Context(), number)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, table)
}

// SetOutOfService takes a table out of service.
func (h *TableHandler) SetOutOfService(c echo.Context) error {
	number, err := pathInt(c, "number")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req OutOfServiceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	table, err := h.tableUC.SetOutOfService(c.Request().Context(), number, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, table)
}

// PutBackInService returns an out-of-service table to the floor.
func (h *TableHandler) PutBackInService(c echo.Context) error {
	number, err := pathInt(c, "number")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	table, err := h.tableUC.PutBackInService(c.Request().Context(), number)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, table)
}

// UpdateTable changes capacity or notes.
func (h *TableHandler) UpdateTable(c echo.Context) error {
	number, err := pathInt(c, "number")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateTableRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	table, err := h.tableUC.UpdateTable(c.Request().Context(), number, usecase.UpdateTableInput{
		Capacity: req.Capacity,
		Notes:    req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, table)
}

// DeleteTable removes a table.
func (h *TableHandler) DeleteTable(c echo.Context) error {
	number, err := pathInt(c, "number")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.tableUC.DeleteTable(c.Request().Context(), number); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messageResponse{Message: "Table deleted"})
}

// Stats reports table counts by status.
func (h *TableHandler) Stats(c echo.Context) error {
	stats, err := h.tableUC.Stats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// QRCode renders the table's QR code as a PNG.
func (h *TableHandler) QRCode(c echo.Context) error {
	number, err := pathInt(c, "number")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.tableUC.TableQRCode(c.Request().Context(), number)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ResolveQR returns the table encoded in scanned QR data.
func (h *TableHandler) ResolveQR(c echo.Context) error {
	var req ResolveQRRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	table, err := h.tableUC.ResolveTableQR(c.Request().Context(), req.Data)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, table)
}
