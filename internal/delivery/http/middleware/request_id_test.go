package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "coffeeshop/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.GET("/", func(c echo.Context) error {
		ctx := c.Request().Context()
		assert.NotNil(t, deliverycontext.GetLogger(ctx))

		return c.String(http.StatusOK, deliverycontext.GetRequestIDFromContext(ctx))
	})

	t.Run("keeps client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "client-42")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "client-42", rec.Body.String())
		assert.Equal(t, "client-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("generates id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, rec.Body.String())
		assert.Equal(t, rec.Body.String(), rec.Header().Get(deliverycontext.HeaderXRequestID))
	})
}
