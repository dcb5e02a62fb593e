// Package auth issues and validates the tokens that bind a client to its flow session.
package auth

import (
	"time"

	"insureflow/config"
	"insureflow/internal/domain/service"
	"insureflow/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const sessionIssuer = "insureflow"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret     []byte
	sessionTTL time.Duration
	now        func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	ttl := 7 * 24 * time.Hour
	if cfg.Session != nil && cfg.Session.TTL > 0 {
		ttl = cfg.Session.TTL
	}

	return &jwtService{
		secret:     []byte(cfg.SecretKey.Session),
		sessionTTL: ttl,
		now:        time.Now,
	}, nil
}

// GenerateSessionToken signs a token carrying the session id.
func (s *jwtService) GenerateSessionToken(sessionID string) (string, time.Time, error) {
	if sessionID == "" {
		return "", time.Time{}, errors.New("session id is required")
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.sessionTTL)

	claims := &service.SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionIssuer,
			Subject:   sessionID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign session token")
	}

	return token, expiresAt, nil
}

// ValidateToken checks the signature, issuer and expiry of a session token.
func (s *jwtService) ValidateToken(tokenString string) (*service.SessionClaims, error) {
	claims := &service.SessionClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithIssuer(sessionIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid session token")
	}

	if claims.SessionID == "" {
		return nil, errors.New("session token has no session id")
	}

	return claims, nil
}

// GetSessionDuration returns the configured session lifetime.
func (s *jwtService) GetSessionDuration() time.Duration {
	return s.sessionTTL
}
