package pubsub

import (
	"context"
	"encoding/json"
	"testing"

	"coffeeshop/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"cloud.google.com/go/pubsub/v2/pstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	testProjectID = "coffeeshop-test"
	testTopicID   = "order-events"
)

// dialFake opens a connection of its own to the in-process server, since closing a client may close its connection.
func dialFake(t *testing.T, srv *pstest.Server) []option.ClientOption {
	t.Helper()

	conn, err := grpc.NewClient(srv.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return []option.ClientOption{option.WithGRPCConn(conn)}
}

func fakePubSub(t *testing.T) *pstest.Server {
	t.Helper()

	srv := pstest.NewServer()
	t.Cleanup(func() { _ = srv.Close() })

	return srv
}

func createTopic(t *testing.T, srv *pstest.Server) {
	t.Helper()
	ctx := context.Background()

	client, err := pubsub.NewClient(ctx, testProjectID, dialFake(t, srv)...)
	require.NoError(t, err)
	defer client.Close()

	_, err = client.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{
		Name: "projects/" + testProjectID + "/topics/" + testTopicID,
	})
	require.NoError(t, err)
}

func TestGooglePubSubPublisher_PublishesEventWithAttributes(t *testing.T) {
	ctx := context.Background()
	srv := fakePubSub(t)
	createTopic(t, srv)

	publisher, err := NewGooglePubSubPublisher(ctx, testProjectID, testTopicID, testLogger, dialFake(t, srv)...)
	require.NoError(t, err)
	defer publisher.Close()

	require.NoError(t, publisher.PublishOrderEvent(ctx, testEvent()))

	messages := srv.Messages()
	require.Len(t, messages, 1)

	var got service.OrderEvent
	require.NoError(t, json.Unmarshal(messages[0].Data, &got))
	assert.Equal(t, "evt-1", got.EventID)
	assert.Equal(t, int64(42), got.OrderID)
	assert.Equal(t, "PENDING", got.Status)

	attrs := messages[0].Attributes
	assert.Equal(t, "evt-1", attrs["event_id"])
	assert.Equal(t, string(service.OrderEventPlaced), attrs["event_type"])
	assert.Equal(t, "42", attrs["order_id"])
	assert.Equal(t, "req-1", attrs["request_id"])
	assert.Equal(t, "DINE_IN", attrs["service_type"])
}

func TestGooglePubSubPublisher_MissingTopic(t *testing.T) {
	ctx := context.Background()
	srv := fakePubSub(t)

	_, err := NewGooglePubSubPublisher(ctx, testProjectID, "no-such-topic", testLogger, dialFake(t, srv)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-topic")
}
