package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"coffeeshop/config"
	deliverycontext "coffeeshop/internal/delivery/context"
	"coffeeshop/internal/domain/constants"
	"coffeeshop/internal/domain/entity"
	domainerrors "coffeeshop/internal/domain/errors"
	"coffeeshop/internal/domain/service"
	mockUC "coffeeshop/internal/mocks/usecase"
	"coffeeshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

var placedAt = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestHandler(t *testing.T, provider, env string) (*PushHandler, *mockUC.MockKitchenUsecase) {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.PubSub.Provider = provider
	cfg.Env.Env = env

	kitchenUC := mockUC.NewMockKitchenUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		KitchenUC: kitchenUC,
	})

	return h, kitchenUC
}

func pushBody(t *testing.T, event service.OrderEvent, attributes map[string]string) string {
	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/demo/subscriptions/kitchen"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func placedEvent() service.OrderEvent {
	return service.OrderEvent{
		RequestID:   "req-from-event",
		EventID:     "evt-1",
		Type:        service.OrderEventPlaced,
		OrderID:     42,
		CustomerID:  7,
		Status:      "PENDING",
		ServiceType: "DINE_IN",
		TableNumber: 3,
		Total:       6.48,
		OccurredAt:  placedAt,
	}
}

func doPush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = h.HandlePush(c)

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	h, kitchenUC := newTestHandler(t, constants.PubSubProviderLocal, constants.EnvLocal)

	kitchenUC.EXPECT().
		HandleOrderEvent(mock.Anything, mock.AnythingOfType("*service.OrderEvent")).
		RunAndReturn(func(ctx context.Context, event *service.OrderEvent) error {
			assert.Equal(t, "req-from-attrs", deliverycontext.GetRequestIDFromContext(ctx))
			assert.Equal(t, int64(42), event.OrderID)
			assert.Equal(t, service.OrderEventPlaced, event.Type)
			assert.True(t, placedAt.Equal(event.OccurredAt))

			return nil
		})

	rec := doPush(h, pushBody(t, placedEvent(), map[string]string{"request_id": "req-from-attrs"}), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_FallsBackToMessageID(t *testing.T) {
	h, kitchenUC := newTestHandler(t, constants.PubSubProviderLocal, constants.EnvLocal)
	event := placedEvent()
	event.EventID = ""

	kitchenUC.EXPECT().
		HandleOrderEvent(mock.Anything, mock.MatchedBy(func(e *service.OrderEvent) bool {
			return e.EventID == "msg-1"
		})).
		Return(nil)

	rec := doPush(h, pushBody(t, event, nil), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_Errors(t *testing.T) {
	tests := []struct {
		name       string
		useCaseErr error
		expected   int
	}{
		{"malformed event is acked", domainerrors.ErrValidationFailed.WithDetails("order_id is required"), http.StatusOK},
		{"unexpected failure is retried", errors.New("board unavailable"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, kitchenUC := newTestHandler(t, constants.PubSubProviderLocal, constants.EnvLocal)
			kitchenUC.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).Return(tt.useCaseErr)

			rec := doPush(h, pushBody(t, placedEvent(), nil), nil)
			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}

func TestPushHandler_HandlePush_BadPayload(t *testing.T) {
	h, _ := newTestHandler(t, constants.PubSubProviderLocal, constants.EnvLocal)

	rec := doPush(h, `{"message":{"data":"not base64!"}}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	notJSON := base64.StdEncoding.EncodeToString([]byte("plain text"))
	rec = doPush(h, `{"message":{"data":"`+notJSON+`"}}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_VerifiesGoogleToken(t *testing.T) {
	h, kitchenUC := newTestHandler(t, constants.PubSubProviderGoogle, "production")
	require.True(t, h.verifyPushAuth)

	var gotAudience string
	h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		gotAudience = audience
		if token != "good" {
			return nil, errors.New("bad signature")
		}

		return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
	}

	rec := doPush(h, pushBody(t, placedEvent(), nil), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "missing header")

	rec = doPush(h, pushBody(t, placedEvent(), nil), http.Header{echo.HeaderAuthorization: {"Bearer forged"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	kitchenUC.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).Return(nil).Once()
	rec = doPush(h, pushBody(t, placedEvent(), nil), http.Header{echo.HeaderAuthorization: {"Bearer good"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://example.com/push/orders", gotAudience)
}

func TestPushHandler_RejectsForeignIssuer(t *testing.T) {
	h, _ := newTestHandler(t, constants.PubSubProviderGoogle, "production")
	h.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
		return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
	}

	rec := doPush(h, pushBody(t, placedEvent(), nil), http.Header{echo.HeaderAuthorization: {"Bearer token"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewPushHandler_SkipsVerificationLocally(t *testing.T) {
	h, _ := newTestHandler(t, constants.PubSubProviderGoogle, constants.EnvLocal)
	assert.False(t, h.verifyPushAuth)

	h, _ = newTestHandler(t, constants.PubSubProviderLocal, "production")
	assert.False(t, h.verifyPushAuth)
}

func TestExtractRequestID(t *testing.T) {
	event := placedEvent()
	var msg PubSubMessage

	assert.Equal(t, "req-from-event", extractRequestID(context.Background(), &msg, &event))

	event.RequestID = ""
	ctx := deliverycontext.WithRequestID(context.Background(), "req-from-ctx")
	assert.Equal(t, "req-from-ctx", extractRequestID(ctx, &msg, &event))

	assert.NotEmpty(t, extractRequestID(context.Background(), &msg, &event))
}

func TestPushHandler_Board(t *testing.T) {
	h, kitchenUC := newTestHandler(t, constants.PubSubProviderLocal, constants.EnvLocal)
	kitchenUC.EXPECT().Board(mock.Anything).Return([]usecase.KitchenTicket{
		{OrderID: 42, ServiceType: "DINE_IN", TableNumber: 3, Status: entity.OrderStatusPreparing, PlacedAt: placedAt, UpdatedAt: placedAt},
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/board", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Board(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	var tickets []usecase.KitchenTicket
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tickets))
	require.Len(t, tickets, 1)
	assert.Equal(t, int64(42), tickets[0].OrderID)
	assert.Equal(t, entity.OrderStatusPreparing, tickets[0].Status)
}
