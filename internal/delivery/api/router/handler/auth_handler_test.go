package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"insureflow/internal/domain/entity"
	domainerrors "insureflow/internal/domain/errors"
	mockusecase "insureflow/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Register(t *testing.T) {
	t.Run("creates the account", func(t *testing.T) {
		uc := mockusecase.NewMockAccountUsecase(t)
		h := NewAuthHandler(uc, discardLogger)
		e := newTestEcho()
		e.POST("/auth/register", h.Register)

		uc.EXPECT().Register(mock.Anything, &entity.Registration{
			Email:    "a@example.com",
			Password: "secret1",
			Name:     "A",
		}).Return(&entity.AuthUser{ID: "u-1", Email: "a@example.com"}, nil)

		rec := doJSON(t, e, http.MethodPost, "/auth/register", map[string]string{
			"email":    "a@example.com",
			"password": "secret1",
			"name":     "A",
		})

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("short password fails validation", func(t *testing.T) {
		uc := mockusecase.NewMockAccountUsecase(t)
		h := NewAuthHandler(uc, discardLogger)
		e := newTestEcho()
		e.POST("/auth/register", h.Register)

		rec := doJSON(t, e, http.MethodPost, "/auth/register", map[string]string{
			"email":    "a@example.com",
			"password": "123",
			"name":     "A",
		})

		env := requireErrorCode(t, rec, http.StatusUnprocessableEntity, "VALIDATION_FAILED")
		assert.Contains(t, string(env.Error.Details), "password")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("anonymous login", func(t *testing.T) {
		uc := mockusecase.NewMockAccountUsecase(t)
		h := NewAuthHandler(uc, discardLogger)
		e := newTestEcho()
		e.POST("/auth/login", h.Login)

		uc.EXPECT().Login(mock.Anything, "", "a@example.com", "pw").
			Return(&entity.AuthUser{ID: "u-1", Token: "backend-token"}, nil)

		rec := doJSON(t, e, http.MethodPost, "/auth/login", map[string]string{"email": "a@example.com", "password": "pw"})

		require.Equal(t, http.StatusOK, rec.Code)
		var user entity.AuthUser
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &user))
		assert.Equal(t, "backend-token", user.Token)
	})

	t.Run("binds the session when present", func(t *testing.T) {
		uc := mockusecase.NewMockAccountUsecase(t)
		h := NewAuthHandler(uc, discardLogger)
		e := newTestEcho()
		e.POST("/auth/login", h.Login, withSession)

		uc.EXPECT().Login(mock.Anything, testSessionID, "a@example.com", "pw").
			Return(&entity.AuthUser{ID: "u-1"}, nil)

		rec := doJSON(t, e, http.MethodPost, "/auth/login", map[string]string{"email": "a@example.com", "password": "pw"})

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	t.Run("token query wins", func(t *testing.T) {
		uc := mockusecase.NewMockAccountUsecase(t)
		h := NewAuthHandler(uc, discardLogger)
		e := newTestEcho()
		e.GET("/auth/me", h.Me, withSession)

		uc.EXPECT().Me(mock.Anything, "backend-token").Return(&entity.AuthUser{ID: "u-1"}, nil)

		rec := doJSON(t, e, http.MethodGet, "/auth/me?token=backend-token", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("falls back to the session user", func(t *testing.T) {
		uc := mockusecase.NewMockAccountUsecase(t)
		h := NewAuthHandler(uc, discardLogger)
		e := newTestEcho()
		e.GET("/auth/me", h.Me, withSession)

		uc.EXPECT().CurrentUser(mock.Anything, testSessionID).Return(nil, domainerrors.ErrNotLoggedIn)

		rec := doJSON(t, e, http.MethodGet, "/auth/me", nil)

		env := requireErrorCode(t, rec, http.StatusUnauthorized, "NOT_LOGGED_IN")
		assert.Empty(t, env.Error.Details)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	uc := mockusecase.NewMockAccountUsecase(t)
	h := NewAuthHandler(uc, discardLogger)
	e := newTestEcho()
	e.POST("/auth/logout", h.Logout, withSession)

	uc.EXPECT().Logout(mock.Anything, testSessionID).Return(nil)

	rec := doJSON(t, e, http.MethodPost, "/auth/logout", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
