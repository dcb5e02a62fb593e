package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"insureflow/internal/delivery/api/middleware"
	"insureflow/internal/delivery/api/router/handler"
	"insureflow/internal/domain/entity"
	"insureflow/internal/domain/service"
	mockservice "insureflow/internal/mocks/service"
	mockusecase "insureflow/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestRouter(t *testing.T) (*echo.Echo, *mockservice.MockTokenService, *mockusecase.MockFlowUsecase) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokenSvc := mockservice.NewMockTokenService(t)
	flowUC := mockusecase.NewMockFlowUsecase(t)

	r := NewRouter(RouterParams{
		AuthHandler:     handler.NewAuthHandler(mockusecase.NewMockAccountUsecase(t), logger),
		CatalogHandler:  handler.NewCatalogHandler(mockusecase.NewMockCatalogUsecase(t), logger),
		ChatHandler:     handler.NewChatHandler(mockusecase.NewMockChatUsecase(t), logger),
		DocumentHandler: handler.NewDocumentHandler(mockusecase.NewMockExtractionUsecase(t), mockusecase.NewMockDocumentUsecase(t), logger),
		FlowHandler:     handler.NewFlowHandler(flowUC, logger),
		FormHandler:     handler.NewFormHandler(mockusecase.NewMockFormUsecase(t), logger),
		PaymentHandler:  handler.NewPaymentHandler(mockusecase.NewMockPaymentUsecase(t), logger),
		PurchaseHandler: handler.NewPurchaseHandler(mockusecase.NewMockPurchaseUsecase(t), mockusecase.NewMockAccountUsecase(t), logger),
		SessionAuth:     middleware.NewSessionAuthMiddleware(tokenSvc, logger),
	})

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	r.RegisterRoutes(e)

	return e, tokenSvc, flowUC
}

func TestRouter_RegistersFlowRoutes(t *testing.T) {
	e, _, _ := newTestRouter(t)

	routes := make(map[string]bool)
	for _, route := range e.Routes() {
		routes[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"POST /sessions",
		"GET /packages/:id",
		"PUT /flow/package",
		"POST /flow/documents",
		"POST /flow/form/enter",
		"DELETE /flow/form/family-members/:index",
		"GET /flow/payment/qr",
		"POST /flow/payment/confirm",
		"GET /flow/contract",
		"GET /purchases/:contractId",
		"GET /jobs/:id",
		"POST /chat",
	} {
		assert.True(t, routes[want], "missing route %s", want)
	}
}

func TestRouter_FlowRequiresSession(t *testing.T) {
	e, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/flow", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "SESSION_TOKEN_INVALID")
}

func TestRouter_PurchaseLookupsRequireSession(t *testing.T) {
	e, _, _ := newTestRouter(t)

	for _, path := range []string{
		"/purchases/BH00000123",
		"/users/u-1/insurance-purchases",
	} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "SESSION_TOKEN_INVALID", path)
		assert.NotContains(t, rec.Body.String(), "BH00000123", path)
	}
}

func TestRouter_FlowWithSession(t *testing.T) {
	e, tokenSvc, flowUC := newTestRouter(t)

	tokenSvc.EXPECT().ValidateToken("tok").Return(&service.SessionClaims{SessionID: "sid-1"}, nil)
	flowUC.EXPECT().GetState(mock.Anything, "sid-1").Return(&entity.FlowState{CurrentStep: entity.FlowStepSelect}, nil)

	req := httptest.NewRequest(http.MethodGet, "/flow", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"current_step":"select"`)
}

func TestRouter_HealthIsPublic(t *testing.T) {
	e, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
