package auth

import (
	"testing"
	"time"

	"insureflow/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{Session: &config.SessionConfig{TTL: ttl}}
	cfg.SecretKey.Session = secret

	return cfg
}

func newTestJWTService(t *testing.T, now time.Time) *jwtService {
	t.Helper()

	svc, err := NewJWTService(newTestConfig("test_session_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	s := svc.(*jwtService)
	s.now = func() time.Time { return now }

	return s
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	svc := newTestJWTService(t, now)

	token, expiresAt, err := svc.GenerateSessionToken("3f2a9c1e-7b4d-4e8a-9f10-2c3d4e5f6a7b")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, now.Add(time.Hour), expiresAt)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "3f2a9c1e-7b4d-4e8a-9f10-2c3d4e5f6a7b", claims.SessionID)
	assert.Equal(t, "insureflow", claims.Issuer)
	assert.Equal(t, time.Hour, svc.GetSessionDuration())
}

func TestJWTService_ExpiredToken(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	svc := newTestJWTService(t, now)

	token, _, err := svc.GenerateSessionToken("s1")
	require.NoError(t, err)

	svc.now = func() time.Time { return now.Add(2 * time.Hour) }

	_, err = svc.ValidateToken(token)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_InvalidTokens(t *testing.T) {
	now := time.Now()
	svc := newTestJWTService(t, now)

	otherSvc, err := NewJWTService(newTestConfig("another_secret_key_entirely", time.Hour))
	require.NoError(t, err)
	foreignToken, _, err := otherSvc.GenerateSessionToken("s1")
	require.NoError(t, err)

	noSessionToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    sessionIssuer,
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString(svc.secret)
	require.NoError(t, err)

	noExpiryToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": sessionIssuer,
		"sid": "s1",
	}).SignedString(svc.secret)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"Garbage", "invalid.token.here"},
		{"Empty", ""},
		{"Wrong secret", foreignToken},
		{"No session id", noSessionToken},
		{"No expiry", noExpiryToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tt.token)
			require.Error(t, err)
		})
	}
}

func TestNewJWTService(t *testing.T) {
	_, err := NewJWTService(newTestConfig("", time.Hour))
	require.Error(t, err)

	svc, err := NewJWTService(newTestConfig("secret", 0))
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, svc.GetSessionDuration())
}
