package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"coffeeshop/config"
	"coffeeshop/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.DiscardHandler)

func testEvent() *service.OrderEvent {
	return &service.OrderEvent{
		RequestID:   "req-1",
		EventID:     "evt-1",
		Type:        service.OrderEventPlaced,
		OrderID:     42,
		CustomerID:  7,
		Status:      "PENDING",
		ServiceType: "DINE_IN",
		TableNumber: 3,
		Total:       22.20,
		OccurredAt:  time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var received PubSubPushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger)
	require.NoError(t, publisher.PublishOrderEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "order.placed", received.Message.Attributes["event_type"])
	assert.Equal(t, "42", received.Message.Attributes["order_id"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event service.OrderEvent
	require.NoError(t, json.Unmarshal(raw, &event))
	assert.Equal(t, int64(42), event.OrderID)
	assert.Equal(t, 3, event.TableNumber)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	err := NewLocalHTTPPublisher(server.URL, testLogger).PublishOrderEvent(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

type fakeChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	err      error
	closed   bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.exchange = exchange
	f.key = key
	f.msg = msg

	return f.err
}

func (f *fakeChannel) Close() error {
	f.closed = true

	return nil
}

func TestAMQPPublisher_PublishesPersistentJSON(t *testing.T) {
	channel := &fakeChannel{}
	publisher := &amqpPublisher{channel: channel, exchange: "orders_topic", logger: testLogger}

	require.NoError(t, publisher.PublishOrderEvent(context.Background(), testEvent()))

	assert.Equal(t, "orders_topic", channel.exchange)
	assert.Equal(t, "order.placed", channel.key)
	assert.Equal(t, amqp.Persistent, channel.msg.DeliveryMode)
	assert.Equal(t, "application/json", channel.msg.ContentType)
	assert.Equal(t, "req-1", channel.msg.CorrelationId)
	assert.Equal(t, "DINE_IN", channel.msg.Headers["service_type"])

	var event service.OrderEvent
	require.NoError(t, json.Unmarshal(channel.msg.Body, &event))
	assert.InDelta(t, 22.20, event.Total, 1e-9)

	require.NoError(t, publisher.Close())
	assert.True(t, channel.closed)
}

func TestAMQPPublisher_PublishError(t *testing.T) {
	channel := &fakeChannel{err: errors.New("channel closed")}
	publisher := &amqpPublisher{channel: channel, exchange: "orders_topic", logger: testLogger}

	err := publisher.PublishOrderEvent(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "orders_topic")
}

func TestNewPublisher_SelectsProvider(t *testing.T) {
	ctx := context.Background()

	publisher, err := newPublisher(ctx, nil, testLogger)
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)
	assert.NoError(t, publisher.PublishOrderEvent(ctx, testEvent()))

	publisher, err = newPublisher(ctx, &config.PubSubConfig{Provider: "none"}, testLogger)
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)

	publisher, err = newPublisher(ctx, &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:1"}, testLogger)
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)
}

func TestNewPublisher_ConfigErrors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		cfg  *config.PubSubConfig
	}{
		{"local without endpoint", &config.PubSubConfig{Provider: "local"}},
		{"google without project", &config.PubSubConfig{Provider: "google", TopicID: "orders"}},
		{"google without topic", &config.PubSubConfig{Provider: "google", ProjectID: "shop"}},
		{"amqp without url", &config.PubSubConfig{Provider: "amqp"}},
		{"unknown provider", &config.PubSubConfig{Provider: "kafka"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newPublisher(ctx, tt.cfg, testLogger)
			assert.Error(t, err)
		})
	}
}
