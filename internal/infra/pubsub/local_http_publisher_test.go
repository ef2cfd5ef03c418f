package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafemeetup/internal/domain/service"
)

func TestLocalHTTPPublisher_PublishMeetupEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestIDHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))
		requestIDHeader = r.Header.Get("X-Request-Id")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	event := &service.MeetupEvent{
		RequestID: "req-123",
		EventType: service.EventMatchCreated,
		UserID:    uuid.New().String(),
		OtherID:   uuid.New().String(),
		MatchID:   uuid.New().String(),
	}
	require.NoError(t, publisher.PublishMeetupEvent(t.Context(), event))

	assert.Equal(t, "req-123", requestIDHeader)
	assert.Equal(t, service.EventMatchCreated, received.Message.Attributes["event_type"])
	assert.Equal(t, event.MatchID, received.Message.Attributes["match_id"])

	decoded, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var payload service.MeetupEvent
	require.NoError(t, json.Unmarshal(decoded, &payload))
	assert.Equal(t, event.UserID, payload.UserID)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := publisher.PublishMeetupEvent(t.Context(), &service.MeetupEvent{EventType: service.EventMeetupClosed})
	assert.Error(t, err)
}

func TestNewEventPublisher_DefaultsToNoop(t *testing.T) {
	publisher := &noopPublisher{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	require.NoError(t, publisher.PublishMeetupEvent(t.Context(), &service.MeetupEvent{EventType: service.EventMeetupClosed}))
	require.NoError(t, publisher.Close())
}
