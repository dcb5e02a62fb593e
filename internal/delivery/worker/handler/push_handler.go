package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"insureflow/config"
	deliverycontext "insureflow/internal/delivery/context"
	"insureflow/internal/domain/constants"
	"insureflow/internal/domain/service"
	"insureflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// PushHandler redelivers queued purchase records from Pub/Sub push messages.
//
// Responses drive Pub/Sub: 503 asks for redelivery, 200 acknowledges, 400 drops
// a message that can never be processed.
type PushHandler struct {
	verifyPushAuth bool
	verify         func(req *http.Request) error
	logger         *slog.Logger
	purchaseUC     usecase.PurchaseUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	PurchaseUC usecase.PurchaseUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only real Pub/Sub push requests carry a Google-signed token
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verify:         verifyPubSubToken,
		logger:         params.Logger,
		purchaseUC:     params.PurchaseUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := decodeRetryEvent(&pushMsg)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode purchase retry event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, event)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("contract_id", event.ContractID),
		slog.String("ledger_id", event.LedgerID),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing purchase retry",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("reason", event.Reason),
	)

	outcome, err := h.purchaseUC.RetryPurchase(ctx, event)
	if err != nil {
		reqLogger.Error("[Worker] Purchase retry failed", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	}

	switch outcome {
	case usecase.RetryOutcomeRetry:
		reqLogger.Warn("[Worker] Backend still rejecting purchase, requesting redelivery")

		return c.NoContent(http.StatusServiceUnavailable)
	case usecase.RetryOutcomeGaveUp:
		reqLogger.Error("[Worker] Giving up on purchase delivery")
	default:
		reqLogger.Info("[Worker] Purchase retry finished", slog.String("outcome", string(outcome)))
	}

	return c.NoContent(http.StatusOK)
}

func decodeRetryEvent(pushMsg *PubSubMessage) (*service.PurchaseRetryEvent, error) {
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "message data is not base64")
	}

	var event service.PurchaseRetryEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "message data is not a purchase retry event")
	}
	if event.LedgerID == "" {
		event.LedgerID = pushMsg.Message.Attributes["ledger_id"]
	}
	if event.ContractID == "" {
		event.ContractID = pushMsg.Message.Attributes["contract_id"]
	}
	if event.LedgerID == "" {
		return nil, errors.New("purchase retry event has no ledger id")
	}

	return &event, nil
}

// extractRequestID prefers message attributes, then the event, then the incoming request.
func extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.PurchaseRetryEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return deliverycontext.NewRequestID()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return errors.New("invalid authorization header format")
	}

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
