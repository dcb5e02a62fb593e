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

// AuthHandler proxies account operations to the auth backend.
type AuthHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"     validate:"required"`
	Phone    string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var input registerRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	user, err := h.uc.Register(c.Request().Context(), &entity.Registration{
		Email:    input.Email,
		Password: input.Password,
		Name:     input.Name,
		Phone:    input.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user)
}

// Login handles POST /auth/login. A session token is optional; when present the user is bound to it.
func (h *AuthHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	user, err := h.uc.Login(c.Request().Context(), deliverycontext.GetSessionID(c), input.Email, input.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}

// Me handles GET /auth/me. A backend token in ?token= wins over the session's logged-in user.
func (h *AuthHandler) Me(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		user *entity.AuthUser
		err  error
	)
	if token := c.QueryParam("token"); token != "" {
		user, err = h.uc.Me(ctx, token)
	} else {
		user, err = h.uc.CurrentUser(ctx, deliverycontext.GetSessionID(c))
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context(), deliverycontext.GetSessionID(c)); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
