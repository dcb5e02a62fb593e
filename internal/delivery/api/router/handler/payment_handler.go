package handler

import (
	"log/slog"
	"net/http"

	"insureflow/internal/delivery/api/response"
	deliverycontext "insureflow/internal/delivery/context"
	"insureflow/internal/domain/entity"
	"insureflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler serves the simulated payment step.
type PaymentHandler struct {
	uc     usecase.PaymentUsecase
	logger *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{uc: uc, logger: logger}
}

type confirmPaymentRequest struct {
	Method entity.PaymentMethod `json:"method" validate:"required,oneof=qr card"`
}

// GetSummary handles GET /flow/payment
func (h *PaymentHandler) GetSummary(c echo.Context) error {
	summary, err := h.uc.GetSummary(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// GetQRCode handles GET /flow/payment/qr and writes a PNG image
func (h *PaymentHandler) GetQRCode(c echo.Context) error {
	png, err := h.uc.GeneratePaymentQR(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}

// ConfirmPayment handles POST /flow/payment/confirm
func (h *PaymentHandler) ConfirmPayment(c echo.Context) error {
	var input confirmPaymentRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment confirmation")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	result, err := h.uc.ConfirmPayment(c.Request().Context(), deliverycontext.GetSessionID(c), input.Method)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, result)
}

// GetContract handles GET /flow/contract
func (h *PaymentHandler) GetContract(c echo.Context) error {
	contract, err := h.uc.GetContract(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, contract)
}
