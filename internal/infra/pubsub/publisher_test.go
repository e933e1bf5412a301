package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"authgate/config"
	"authgate/internal/domain/constants"
	"authgate/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/pubsub"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEvent() *service.MailEvent {
	return &service.MailEvent{
		RequestID: "req-1",
		MessageID: "msg-1",
		To:        "alice@example.com",
		Subject:   "Verify your Account",
		HTMLBody:  "<p>123456</p>",
	}
}

func TestNewPublisher_SelectsProvider(t *testing.T) {
	ctx := context.Background()
	logger := newTestLogger()

	publisher, err := newPublisher(ctx, nil, logger)
	require.NoError(t, err)
	assert.IsType(t, &logPublisher{}, publisher)

	publisher, err = newPublisher(ctx, &config.PubSubConfig{}, logger)
	require.NoError(t, err)
	assert.IsType(t, &logPublisher{}, publisher)

	publisher, err = newPublisher(ctx, &config.PubSubConfig{
		Provider:      constants.PubSubProviderLocal,
		LocalEndpoint: "http://localhost:8081/push",
	}, logger)
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)

	publisher, err = newPublisher(ctx, &config.PubSubConfig{
		Provider: constants.PubSubProviderGoCloud,
		TopicURL: "mem://provider-select",
	}, logger)
	require.NoError(t, err)
	assert.IsType(t, &goCloudPublisher{}, publisher)
	require.NoError(t, publisher.Close())
}

func TestNewPublisher_RejectsIncompleteConfig(t *testing.T) {
	ctx := context.Background()
	logger := newTestLogger()

	tests := []struct {
		name string
		cfg  *config.PubSubConfig
		msg  string
	}{
		{
			name: "local without endpoint",
			cfg:  &config.PubSubConfig{Provider: constants.PubSubProviderLocal},
			msg:  "local endpoint is required",
		},
		{
			name: "google without project",
			cfg:  &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "mail"},
			msg:  "project ID is required",
		},
		{
			name: "google without topic",
			cfg:  &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"},
			msg:  "topic ID is required",
		},
		{
			name: "gocloud without url",
			cfg:  &config.PubSubConfig{Provider: constants.PubSubProviderGoCloud},
			msg:  "topic URL is required",
		},
		{
			name: "unknown provider",
			cfg:  &config.PubSubConfig{Provider: "kafka"},
			msg:  "unknown pubsub provider: kafka",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newPublisher(ctx, tt.cfg, logger)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLocalHTTPPublisher_PostsPushMessage(t *testing.T) {
	var (
		received  PushMessage
		requestID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newTestLogger())
	require.NoError(t, publisher.PublishMailEvent(context.Background(), newTestEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "msg-1", received.Message.MessageID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, map[string]string{
		constants.AttributeMessageID: "msg-1",
		constants.AttributeRequestID: "req-1",
	}, received.Message.Attributes)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event service.MailEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, *newTestEvent(), event)
}

func TestLocalHTTPPublisher_FailsOnWorkerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newTestLogger())
	err := publisher.PublishMailEvent(context.Background(), newTestEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestGoCloudPublisher_SendsToSubscription(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	publisher, err := NewGoCloudPublisher(ctx, "mem://gocloud-send", newTestLogger())
	require.NoError(t, err)
	defer func() { assert.NoError(t, publisher.Close()) }()

	subscription, err := pubsub.OpenSubscription(ctx, "mem://gocloud-send")
	require.NoError(t, err)
	defer func() { assert.NoError(t, subscription.Shutdown(context.Background())) }()

	require.NoError(t, publisher.PublishMailEvent(ctx, newTestEvent()))

	msg, err := subscription.Receive(ctx)
	require.NoError(t, err)
	msg.Ack()

	assert.Equal(t, "msg-1", msg.Metadata[constants.AttributeMessageID])
	assert.Equal(t, "req-1", msg.Metadata[constants.AttributeRequestID])

	var event service.MailEvent
	require.NoError(t, json.Unmarshal(msg.Body, &event))
	assert.Equal(t, "alice@example.com", event.To)
}

func TestLogPublisher_NeverFails(t *testing.T) {
	publisher := &logPublisher{logger: newTestLogger()}

	require.NoError(t, publisher.PublishMailEvent(context.Background(), newTestEvent()))
	require.NoError(t, publisher.Close())
}

func TestEventAttributes_OmitsEmptyRequestID(t *testing.T) {
	attributes := eventAttributes(&service.MailEvent{MessageID: "m"})

	assert.Equal(t, map[string]string{constants.AttributeMessageID: "m"}, attributes)
}
