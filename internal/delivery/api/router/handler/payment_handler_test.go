package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"insureflow/internal/domain/entity"
	domainerrors "insureflow/internal/domain/errors"
	mockusecase "insureflow/internal/mocks/usecase"
	"insureflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPaymentTestEcho(t *testing.T) (*echo.Echo, *mockusecase.MockPaymentUsecase) {
	t.Helper()

	uc := mockusecase.NewMockPaymentUsecase(t)
	h := NewPaymentHandler(uc, discardLogger)

	e := newTestEcho()
	g := e.Group("/flow", withSession)
	g.GET("/payment", h.GetSummary)
	g.GET("/payment/qr", h.GetQRCode)
	g.POST("/payment/confirm", h.ConfirmPayment)
	g.GET("/contract", h.GetContract)

	return e, uc
}

func TestPaymentHandler_GetSummary_WithoutApplication(t *testing.T) {
	e, uc := newPaymentTestEcho(t)

	uc.EXPECT().GetSummary(mock.Anything, testSessionID).Return(nil, domainerrors.ErrApplicationMissing)

	rec := doJSON(t, e, http.MethodGet, "/flow/payment", nil)

	env := requireErrorCode(t, rec, http.StatusConflict, domainerrors.ErrApplicationMissing.ErrorCode())
	assert.JSONEq(t, `{"redirect":"/form"}`, string(env.Error.Details))
}

func TestPaymentHandler_GetQRCode(t *testing.T) {
	e, uc := newPaymentTestEcho(t)

	png := []byte{0x89, 'P', 'N', 'G'}
	uc.EXPECT().GeneratePaymentQR(mock.Anything, testSessionID).Return(png, nil)

	rec := doJSON(t, e, http.MethodGet, "/flow/payment/qr", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "no-store", rec.Header().Get(echo.HeaderCacheControl))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestPaymentHandler_ConfirmPayment(t *testing.T) {
	t.Run("creates the contract", func(t *testing.T) {
		e, uc := newPaymentTestEcho(t)

		uc.EXPECT().ConfirmPayment(mock.Anything, testSessionID, entity.PaymentMethodCard).Return(&usecase.PaymentResult{
			Contract:    &entity.Contract{ID: "BH12345678"},
			SyncStatus:  entity.SyncStatusPending,
			CurrentStep: entity.FlowStepSuccess,
		}, nil)

		rec := doJSON(t, e, http.MethodPost, "/flow/payment/confirm", map[string]string{"method": "card"})

		require.Equal(t, http.StatusCreated, rec.Code)
		var result usecase.PaymentResult
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &result))
		assert.Equal(t, "BH12345678", result.Contract.ID)
		assert.Equal(t, entity.SyncStatusPending, result.SyncStatus)
	})

	t.Run("unknown method fails validation", func(t *testing.T) {
		e, _ := newPaymentTestEcho(t)

		rec := doJSON(t, e, http.MethodPost, "/flow/payment/confirm", map[string]string{"method": "cash"})

		requireErrorCode(t, rec, http.StatusUnprocessableEntity, "VALIDATION_FAILED")
	})
}

func TestPaymentHandler_GetContract_None(t *testing.T) {
	e, uc := newPaymentTestEcho(t)

	uc.EXPECT().GetContract(mock.Anything, testSessionID).Return(nil, domainerrors.ErrContractNotFound)

	rec := doJSON(t, e, http.MethodGet, "/flow/contract", nil)

	requireErrorCode(t, rec, http.StatusNotFound, "CONTRACT_NOT_FOUND")
}
