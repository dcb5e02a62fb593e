package middleware

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "insureflow/internal/delivery/context"
	domainerrors "insureflow/internal/domain/errors"
	"insureflow/internal/domain/service"
	mockservice "insureflow/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func runSessionAuth(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (string, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/flow", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	var seen string
	err := mw(func(c echo.Context) error {
		seen = deliverycontext.GetSessionID(c)

		return c.NoContent(http.StatusOK)
	})(c)

	return seen, err
}

func TestSessionAuthMiddleware_Authenticate(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		tokenSvc := mockservice.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateToken("good").Return(&service.SessionClaims{SessionID: "sid-1"}, nil)
		m := NewSessionAuthMiddleware(tokenSvc, discardLogger)

		sessionID, err := runSessionAuth(t, m.Authenticate, "Bearer good")

		require.NoError(t, err)
		assert.Equal(t, "sid-1", sessionID)
	})

	t.Run("missing header", func(t *testing.T) {
		m := NewSessionAuthMiddleware(mockservice.NewMockTokenService(t), discardLogger)

		_, err := runSessionAuth(t, m.Authenticate, "")

		assert.ErrorIs(t, err, domainerrors.ErrSessionTokenInvalid)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		m := NewSessionAuthMiddleware(mockservice.NewMockTokenService(t), discardLogger)

		_, err := runSessionAuth(t, m.Authenticate, "Basic dXNlcjpwdw==")

		assert.ErrorIs(t, err, domainerrors.ErrSessionTokenInvalid)
	})

	t.Run("expired token", func(t *testing.T) {
		tokenSvc := mockservice.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateToken("old").Return(nil, errors.New("token is expired"))
		m := NewSessionAuthMiddleware(tokenSvc, discardLogger)

		_, err := runSessionAuth(t, m.Authenticate, "Bearer old")

		assert.ErrorIs(t, err, domainerrors.ErrSessionTokenInvalid)
	})
}

func TestSessionAuthMiddleware_Optional(t *testing.T) {
	t.Run("anonymous passes", func(t *testing.T) {
		m := NewSessionAuthMiddleware(mockservice.NewMockTokenService(t), discardLogger)

		sessionID, err := runSessionAuth(t, m.Optional, "")

		require.NoError(t, err)
		assert.Empty(t, sessionID)
	})

	t.Run("bad token still rejected", func(t *testing.T) {
		tokenSvc := mockservice.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateToken("forged").Return(nil, errors.New("signature is invalid"))
		m := NewSessionAuthMiddleware(tokenSvc, discardLogger)

		_, err := runSessionAuth(t, m.Optional, "Bearer forged")

		assert.ErrorIs(t, err, domainerrors.ErrSessionTokenInvalid)
	})
}
