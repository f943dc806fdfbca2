package handler

import (
	"log/slog"
	"net/http"

	"coffeeshop/internal/delivery/http/response"
	"coffeeshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler exchanges the manager secret for an access token.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// ManagerLoginRequest is the body of POST /auth/manager/login.
type ManagerLoginRequest struct {
	Secret string `json:"secret" validate:"required"`
}

// ManagerLogin handles the manager login request.
func (h *AuthHandler) ManagerLogin(c echo.Context) error {
	var req ManagerLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.authUC.ManagerLogin(c.Request().Context(), req.Secret)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}
