package handler

import (
	"net/http"

	"coffeeshop/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the API process is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
