package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext(ctx context.Context) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestGetRequestID_StableWithoutMiddleware(t *testing.T) {
	c := newEchoContext(context.Background())

	first := GetRequestID(c)
	second := GetRequestID(c)

	assert.Equal(t, first, second)
	id, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestGetRequestID_FallsBackToRequestContext(t *testing.T) {
	c := newEchoContext(WithRequestID(context.Background(), "req-ctx"))

	assert.Equal(t, "req-ctx", GetRequestID(c))
	assert.Equal(t, "req-ctx", c.Get(string(KeyRequestID)))
}

func TestGetRequestID_PrefersEchoContext(t *testing.T) {
	c := newEchoContext(WithRequestID(context.Background(), "req-ctx"))
	SetRequestID(c, "req-echo")

	assert.Equal(t, "req-echo", GetRequestID(c))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "req-1"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}
