package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "insureflow/internal/delivery/context"
	domainerrors "insureflow/internal/domain/errors"
	"insureflow/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// SessionAuthMiddleware resolves the flow session from a Bearer session token.
type SessionAuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewSessionAuthMiddleware is the constructor for SessionAuthMiddleware.
func NewSessionAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *SessionAuthMiddleware {
	return &SessionAuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate rejects requests without a valid session token.
func (m *SessionAuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID, err := m.resolve(c)
		if err != nil {
			return err
		}
		if sessionID == "" {
			return domainerrors.ErrSessionTokenInvalid.WithDetails("missing session token")
		}

		return next(c)
	}
}

// Optional attaches the session when a valid token is sent and lets anonymous requests through.
// A malformed or expired token is still rejected.
func (m *SessionAuthMiddleware) Optional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := m.resolve(c); err != nil {
			return err
		}

		return next(c)
	}
}

func (m *SessionAuthMiddleware) resolve(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", nil
	}

	tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
	if !ok || tokenString == "" {
		return "", domainerrors.ErrSessionTokenInvalid.WithDetails("authorization header must be a Bearer token")
	}

	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
			Debug("Rejected session token", slog.Any("error", err))

		return "", domainerrors.ErrSessionTokenInvalid
	}

	deliverycontext.SetSessionID(c, claims.SessionID)

	// Services log through the request-scoped logger; tag it with the session.
	ctx := c.Request().Context()
	if logger := deliverycontext.GetLogger(ctx); logger != nil {
		ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("session_id", claims.SessionID)))
		c.SetRequest(c.Request().WithContext(ctx))
	}

	return claims.SessionID, nil
}
