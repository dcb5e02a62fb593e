package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims defines the claims carried by a flow session token.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// TokenService issues and validates flow session tokens.
type TokenService interface {
	// GenerateSessionToken signs a token for the session and returns its expiry.
	GenerateSessionToken(sessionID string) (token string, expiresAt time.Time, err error)

	// ValidateToken checks a token string and returns its claims.
	ValidateToken(tokenString string) (*SessionClaims, error)

	// GetSessionDuration returns the configured session lifetime.
	GetSessionDuration() time.Duration
}
