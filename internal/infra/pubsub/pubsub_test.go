package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"cloud.google.com/go/pubsub/v2/pstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.OrderEvent {
	return &service.OrderEvent{
		EventID:    "evt-1",
		Type:       service.OrderEventCreated,
		RequestID:  "req-1",
		OrderID:    7,
		UserID:     "user-1",
		Status:     "pending",
		Total:      "569999",
		ItemCount:  2,
		OccurredAt: time.Now().UTC(),
	}
}

func TestLocalHTTPPublisher_PublishOrderEvent(t *testing.T) {
	var pushed service.PushEnvelope
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&pushed))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, testLogger())
	require.NoError(t, publisher.PublishOrderEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", pushed.Message.MessageID)
	assert.Equal(t, "7", pushed.Message.Attributes["order_id"])
	assert.Equal(t, service.OrderEventCreated, pushed.Message.Attributes["event_type"])

	assert.Equal(t, localSubscription, pushed.Subscription)

	decoded, err := pushed.OrderEvent()
	require.NoError(t, err)
	assert.Equal(t, int64(7), decoded.OrderID)
	assert.Equal(t, "569999", decoded.Total)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, testLogger())
	err := publisher.PublishOrderEvent(context.Background(), testEvent())
	assert.Error(t, err)
}

func newFakePubSubClient(t *testing.T, projectID string) (*pstest.Server, *pubsub.Client) {
	t.Helper()

	srv := pstest.NewServer()
	t.Cleanup(func() { _ = srv.Close() })

	conn, err := grpc.NewClient(srv.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	client, err := pubsub.NewClient(context.Background(), projectID, option.WithGRPCConn(conn))
	require.NoError(t, err)

	return srv, client
}

func TestGooglePublisher_PublishOrderEvent(t *testing.T) {
	ctx := context.Background()
	srv, client := newFakePubSubClient(t, "shop")

	_, err := srv.GServer.CreateTopic(ctx, &pubsubpb.Topic{Name: "projects/shop/topics/orders"})
	require.NoError(t, err)

	publisher, err := newGooglePublisher(ctx, client, "shop", "orders", testLogger())
	require.NoError(t, err)
	defer publisher.Close()

	require.NoError(t, publisher.PublishOrderEvent(ctx, testEvent()))

	msgs := srv.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "7", msgs[0].OrderingKey)
	assert.Equal(t, "evt-1", msgs[0].Attributes["event_id"])
	assert.Equal(t, "req-1", msgs[0].Attributes["request_id"])

	var decoded service.OrderEvent
	require.NoError(t, json.Unmarshal(msgs[0].Data, &decoded))
	assert.Equal(t, service.OrderEventCreated, decoded.Type)
	assert.Equal(t, 2, decoded.ItemCount)
}

func TestGooglePublisher_MissingTopic(t *testing.T) {
	_, client := newFakePubSubClient(t, "shop")
	defer client.Close()

	_, err := newGooglePublisher(context.Background(), client, "shop", "missing", testLogger())
	assert.Error(t, err)
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{name: "not configured", cfg: nil},
		{name: "empty provider", cfg: &config.PubSubConfig{}},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://127.0.0.1:1"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}, wantErr: true},
		{name: "rabbitmq without url", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderRabbitMQ, Exchange: "x"}, wantErr: true},
		{name: "rabbitmq without exchange", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderRabbitMQ, RabbitMQURL: "amqp://"}, wantErr: true},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: testLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.NotNil(t, publisher)
			if _, ok := publisher.(*noopPublisher); ok {
				assert.NoError(t, publisher.PublishOrderEvent(context.Background(), testEvent()))
			}
		})
	}
}
