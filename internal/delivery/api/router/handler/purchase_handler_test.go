package handler

import (
	"net/http"
	"testing"

	"insureflow/internal/domain/entity"
	domainerrors "insureflow/internal/domain/errors"
	mockusecase "insureflow/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPurchaseHandler(t *testing.T) {
	t.Run("user history", func(t *testing.T) {
		uc := mockusecase.NewMockPurchaseUsecase(t)
		accountUC := mockusecase.NewMockAccountUsecase(t)
		h := NewPurchaseHandler(uc, accountUC, discardLogger)
		e := newTestEcho()
		e.GET("/users/:id/insurance-purchases", h.ListUserPurchases, withSession)

		accountUC.EXPECT().CurrentUser(mock.Anything, testSessionID).Return(&entity.AuthUser{ID: "u-1"}, nil)
		uc.EXPECT().ListUserPurchases(mock.Anything, "u-1").Return([]*entity.PurchaseRecord{{ContractID: "BH00000001"}}, nil)

		rec := doJSON(t, e, http.MethodGet, "/users/u-1/insurance-purchases", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "BH00000001")
	})

	t.Run("user history of someone else", func(t *testing.T) {
		uc := mockusecase.NewMockPurchaseUsecase(t)
		accountUC := mockusecase.NewMockAccountUsecase(t)
		h := NewPurchaseHandler(uc, accountUC, discardLogger)
		e := newTestEcho()
		e.GET("/users/:id/insurance-purchases", h.ListUserPurchases, withSession)

		accountUC.EXPECT().CurrentUser(mock.Anything, testSessionID).Return(&entity.AuthUser{ID: "u-1"}, nil)

		rec := doJSON(t, e, http.MethodGet, "/users/u-2/insurance-purchases", nil)

		requireErrorCode(t, rec, http.StatusForbidden, "PURCHASE_HISTORY_FORBIDDEN")
	})

	t.Run("user history without login", func(t *testing.T) {
		uc := mockusecase.NewMockPurchaseUsecase(t)
		accountUC := mockusecase.NewMockAccountUsecase(t)
		h := NewPurchaseHandler(uc, accountUC, discardLogger)
		e := newTestEcho()
		e.GET("/users/:id/insurance-purchases", h.ListUserPurchases, withSession)

		accountUC.EXPECT().CurrentUser(mock.Anything, testSessionID).Return(nil, domainerrors.ErrNotLoggedIn)

		rec := doJSON(t, e, http.MethodGet, "/users/u-1/insurance-purchases", nil)

		requireErrorCode(t, rec, http.StatusUnauthorized, "NOT_LOGGED_IN")
	})

	t.Run("ledger lookup is scoped to the session", func(t *testing.T) {
		uc := mockusecase.NewMockPurchaseUsecase(t)
		h := NewPurchaseHandler(uc, mockusecase.NewMockAccountUsecase(t), discardLogger)
		e := newTestEcho()
		e.GET("/purchases/:contractId", h.GetPurchase, withSession)

		uc.EXPECT().GetPurchase(mock.Anything, testSessionID, "BH00000123").Return(&entity.PurchaseLedgerEntry{
			ContractID: "BH00000123",
			SessionID:  testSessionID,
			SyncStatus: entity.SyncStatusPending,
		}, nil)

		rec := doJSON(t, e, http.MethodGet, "/purchases/BH00000123", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"sync_status":"pending"`)
		assert.NotContains(t, rec.Body.String(), testSessionID)
	})

	t.Run("ledger lookup miss", func(t *testing.T) {
		uc := mockusecase.NewMockPurchaseUsecase(t)
		h := NewPurchaseHandler(uc, mockusecase.NewMockAccountUsecase(t), discardLogger)
		e := newTestEcho()
		e.GET("/purchases/:contractId", h.GetPurchase, withSession)

		uc.EXPECT().GetPurchase(mock.Anything, testSessionID, "BH404").Return(nil, domainerrors.ErrPurchaseNotFound.WithDetails("BH404"))

		rec := doJSON(t, e, http.MethodGet, "/purchases/BH404", nil)

		assert.Equal(t, domainerrors.ErrPurchaseNotFound.HTTPCode(), rec.Code)
	})

	t.Run("session purchases", func(t *testing.T) {
		uc := mockusecase.NewMockPurchaseUsecase(t)
		h := NewPurchaseHandler(uc, mockusecase.NewMockAccountUsecase(t), discardLogger)
		e := newTestEcho()
		e.GET("/flow/purchases", h.ListSessionPurchases, withSession)

		uc.EXPECT().ListSessionPurchases(mock.Anything, testSessionID).Return([]*entity.PurchaseLedgerEntry{
			{ContractID: "BH00000002", SyncStatus: entity.SyncStatusSynced},
		}, nil)

		rec := doJSON(t, e, http.MethodGet, "/flow/purchases", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "BH00000002")
	})
}
