package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"insureflow/config"
	deliverycontext "insureflow/internal/delivery/context"
	"insureflow/internal/domain/constants"
	"insureflow/internal/domain/entity"
	"insureflow/internal/domain/service"
	mockusecase "insureflow/internal/mocks/usecase"
	"insureflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

const testLedgerID = "0199a0b2-7c3e-7d41-9a55-3f1e2d4c5b6a"

func pushBody(t *testing.T, data string, attributes map[string]string) []byte {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = data
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "m-1"
	msg.Subscription = "projects/p/subscriptions/purchase-retry"

	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	return raw
}

func encodeEvent(t *testing.T, event *service.PurchaseRetryEvent) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func servePush(h *PushHandler, body []byte) *httptest.ResponseRecorder {
	e := echo.New()
	e.POST("/push", h.HandlePush)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func newTestPushHandler(t *testing.T) (*PushHandler, *mockusecase.MockPurchaseUsecase) {
	t.Helper()

	uc := mockusecase.NewMockPurchaseUsecase(t)
	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvDevelop

	return NewPushHandler(PushHandlerParams{Config: cfg, Logger: discardLogger, PurchaseUC: uc}), uc
}

func TestPushHandler_HandlePush_Outcomes(t *testing.T) {
	tests := []struct {
		name       string
		outcome    usecase.RetryOutcome
		err        error
		wantStatus int
	}{
		{name: "synced acknowledges", outcome: usecase.RetryOutcomeSynced, wantStatus: http.StatusOK},
		{name: "skipped acknowledges", outcome: usecase.RetryOutcomeSkipped, wantStatus: http.StatusOK},
		{name: "gave up acknowledges", outcome: usecase.RetryOutcomeGaveUp, wantStatus: http.StatusOK},
		{name: "retry asks for redelivery", outcome: usecase.RetryOutcomeRetry, wantStatus: http.StatusServiceUnavailable},
		{name: "usecase error asks for redelivery", err: errors.New("db down"), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := newTestPushHandler(t)

			event := &service.PurchaseRetryEvent{
				RequestID:  "req-7",
				LedgerID:   testLedgerID,
				ContractID: "BH00000001",
				SessionID:  "sid-1",
				Record:     &entity.PurchaseRecord{ContractID: "BH00000001", CustomerName: "Nguyễn Văn A"},
			}
			uc.EXPECT().RetryPurchase(mock.Anything, event).Return(tt.outcome, tt.err)

			rec := servePush(h, pushBody(t, encodeEvent(t, event), nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_HandlePush_RequestIDFromAttributes(t *testing.T) {
	h, uc := newTestPushHandler(t)

	var gotRequestID string
	event := &service.PurchaseRetryEvent{RequestID: "from-event", LedgerID: testLedgerID, ContractID: "BH00000001"}
	uc.EXPECT().RetryPurchase(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *service.PurchaseRetryEvent) (usecase.RetryOutcome, error) {
			gotRequestID = deliverycontext.GetRequestIDFromContext(ctx)

			return usecase.RetryOutcomeSynced, nil
		})

	rec := servePush(h, pushBody(t, encodeEvent(t, event), map[string]string{"request_id": "from-attr"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "from-attr", gotRequestID)
}

func TestPushHandler_HandlePush_BadPayloads(t *testing.T) {
	tests := []struct {
		name string
		body []byte
	}{
		{name: "not json", body: []byte("{")},
		{name: "not base64", body: pushBody(t, "%%%", nil)},
		{name: "not an event", body: pushBody(t, base64.StdEncoding.EncodeToString([]byte("[1,2]")), nil)},
		{name: "no ledger id", body: pushBody(t, encodeEvent(t, &service.PurchaseRetryEvent{ContractID: "BH00000001", SessionID: "sid"}), nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t)

			rec := servePush(h, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_HandlePush_IDsFromAttributes(t *testing.T) {
	h, uc := newTestPushHandler(t)

	uc.EXPECT().RetryPurchase(mock.Anything, mock.MatchedBy(func(e *service.PurchaseRetryEvent) bool {
		return e.LedgerID == testLedgerID && e.ContractID == "BH00000009"
	})).Return(usecase.RetryOutcomeSynced, nil)

	body := pushBody(t, encodeEvent(t, &service.PurchaseRetryEvent{SessionID: "sid"}), map[string]string{
		"ledger_id":   testLedgerID,
		"contract_id": "BH00000009",
	})
	rec := servePush(h, body)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_VerifiesTokenOutsideDevelop(t *testing.T) {
	uc := mockusecase.NewMockPurchaseUsecase(t)
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = "production"

	h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: discardLogger, PurchaseUC: uc})
	require.True(t, h.verifyPushAuth)
	h.verify = func(*http.Request) error { return errors.New("bad token") }

	rec := servePush(h, pushBody(t, encodeEvent(t, &service.PurchaseRetryEvent{LedgerID: testLedgerID}), nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
