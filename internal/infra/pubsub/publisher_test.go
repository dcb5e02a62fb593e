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

	"insureflow/config"
	"insureflow/internal/domain/constants"
	"insureflow/internal/domain/entity"
	"insureflow/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PushEnvelope(t *testing.T) {
	event := &service.PurchaseRetryEvent{
		RequestID:  "req-1",
		LedgerID:   "0199a0b2-7c3e-7d41-9a55-3f1e2d4c5b6a",
		ContractID: "BH00000123",
		SessionID:  "s1",
		Reason:     "backend down",
		Record:     &entity.PurchaseRecord{ContractID: "BH00000123", Price: 480_000},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-1", r.Header.Get("X-Request-Id"))

		var pushMsg PushMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&pushMsg))
		assert.Equal(t, localSubscription, pushMsg.Subscription)
		assert.Equal(t, "2026-03-01T08:00:00Z", pushMsg.Message.PublishTime)
		assert.NotEmpty(t, pushMsg.Message.MessageID)
		assert.Equal(t, map[string]string{
			"ledger_id":   "0199a0b2-7c3e-7d41-9a55-3f1e2d4c5b6a",
			"contract_id": "BH00000123",
			"session_id":  "s1",
			"request_id":  "req-1",
		}, pushMsg.Message.Attributes)

		data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
		require.NoError(t, err)

		var got service.PurchaseRetryEvent
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, event, &got)

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger()).(*localHTTPPublisher)
	publisher.now = func() time.Time { return time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC) }

	require.NoError(t, publisher.PublishPurchaseRetryEvent(context.Background(), event))
}

func TestLocalHTTPPublisher_StatusHandling(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "accepted", status: http.StatusOK},
		{name: "worker asks for redelivery", status: http.StatusServiceUnavailable},
		{name: "worker failure", status: http.StatusInternalServerError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			err := NewLocalHTTPPublisher(server.URL, discardLogger()).
				PublishPurchaseRetryEvent(context.Background(), &service.PurchaseRetryEvent{ContractID: "BH1"})

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.PubSubConfig
		wantErr  bool
		wantNoop bool
	}{
		{name: "not configured", cfg: nil, wantNoop: true},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}, wantErr: true},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})

			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			_, isNoop := publisher.(*noopPublisher)
			assert.Equal(t, tt.wantNoop, isNoop)
			err = publisher.PublishPurchaseRetryEvent(context.Background(), &service.PurchaseRetryEvent{ContractID: "BH1"})
			assert.ErrorIs(t, err, ErrPublishingDisabled)
		})
	}
}
