package worker

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"coffeeshop/config"
	"coffeeshop/internal/delivery/worker/handler"
	"coffeeshop/internal/domain/constants"
	mockUC "coffeeshop/internal/mocks/usecase"
	"coffeeshop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWorkerRoutes(t *testing.T) {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.Env.Env = constants.EnvLocal
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	kitchenUC := mockUC.NewMockKitchenUsecase(t)
	kitchenUC.EXPECT().Board(mock.Anything).Return([]usecase.KitchenTicket{})

	e := newEcho(cfg, logger, handler.NewPushHandler(handler.PushHandlerParams{
		Config:    cfg,
		Logger:    logger,
		KitchenUC: kitchenUC,
	}))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/board", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var tickets []usecase.KitchenTicket
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tickets))
	assert.Empty(t, tickets)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, PushPath, nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
