package handler

import (
	"log/slog"
	"net/http"

	"insureflow/internal/delivery/api/response"
	deliverycontext "insureflow/internal/delivery/context"
	domainerrors "insureflow/internal/domain/errors"
	"insureflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type PurchaseHandler struct {
	uc        usecase.PurchaseUsecase
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

func NewPurchaseHandler(uc usecase.PurchaseUsecase, accountUC usecase.AccountUsecase, logger *slog.Logger) *PurchaseHandler {
	return &PurchaseHandler{uc: uc, accountUC: accountUC, logger: logger}
}

// ListUserPurchases handles GET /users/:id/insurance-purchases
// Only the user logged in on the session can read their own history.
func (h *PurchaseHandler) ListUserPurchases(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Param("id")

	user, err := h.accountUC.CurrentUser(ctx, deliverycontext.GetSessionID(c))
	if err != nil {
		return errors.WithStack(err)
	}
	if user.ID != userID {
		return domainerrors.ErrPurchaseHistoryForbidden
	}

	records, err := h.uc.ListUserPurchases(ctx, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records)
}

// GetPurchase handles GET /purchases/:contractId
func (h *PurchaseHandler) GetPurchase(c echo.Context) error {
	entry, err := h.uc.GetPurchase(c.Request().Context(), deliverycontext.GetSessionID(c), c.Param("contractId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entry)
}

// ListSessionPurchases handles GET /flow/purchases
func (h *PurchaseHandler) ListSessionPurchases(c echo.Context) error {
	entries, err := h.uc.ListSessionPurchases(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries)
}
