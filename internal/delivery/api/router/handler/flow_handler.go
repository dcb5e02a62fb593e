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

// FlowHandler exposes the insurance flow store of a session.
type FlowHandler struct {
	uc     usecase.FlowUsecase
	logger *slog.Logger
}

// NewFlowHandler is the constructor for FlowHandler, injected by Fx.
func NewFlowHandler(uc usecase.FlowUsecase, logger *slog.Logger) *FlowHandler {
	return &FlowHandler{
		uc:     uc,
		logger: logger,
	}
}

type selectPackageRequest struct {
	PackageID string `json:"package_id" validate:"required"`
}

type setStepRequest struct {
	Step entity.FlowStep `json:"step" validate:"required,oneof=select upload form payment success"`
}

// CreateSession handles POST /sessions
func (h *FlowHandler) CreateSession(c echo.Context) error {
	info, err := h.uc.CreateSession(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, info)
}

// GetState handles GET /flow
func (h *FlowHandler) GetState(c echo.Context) error {
	state, err := h.uc.GetState(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, state)
}

// SelectPackage handles PUT /flow/package
func (h *FlowHandler) SelectPackage(c echo.Context) error {
	var input selectPackageRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid package selection")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	state, err := h.uc.SelectPackage(c.Request().Context(), deliverycontext.GetSessionID(c), input.PackageID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, state)
}

// SetStep handles PUT /flow/step
func (h *FlowHandler) SetStep(c echo.Context) error {
	var input setStepRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid step")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	state, err := h.uc.SetStep(c.Request().Context(), deliverycontext.GetSessionID(c), input.Step)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, state)
}

// Reset handles DELETE /flow
func (h *FlowHandler) Reset(c echo.Context) error {
	state, err := h.uc.Reset(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, state)
}
