package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "insureflow/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails string
	}{
		{
			name:        "wrapped app error keeps its data",
			err:         errors.Wrap(domainerrors.ErrNoPackageSelected, "guard"),
			wantStatus:  http.StatusConflict,
			wantCode:    "NO_PACKAGE_SELECTED",
			wantDetails: `{"redirect":"/"}`,
		},
		{
			name:       "echo http error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
		{
			name:       "remote failure",
			err:        domainerrors.ErrRemoteUnavailable.WithDetails("dial tcp"),
			wantStatus: http.StatusBadGateway,
			wantCode:   "REMOTE_API_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewErrorMiddleware(discardLogger).HandleHTTPError(tt.err, c)

			require.Equal(t, tt.wantStatus, rec.Code)
			var body struct {
				Error struct {
					Code    string          `json:"code"`
					Details json.RawMessage `json:"details"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			if tt.wantDetails != "" {
				assert.JSONEq(t, tt.wantDetails, string(body.Error.Details))
			} else {
				assert.Empty(t, body.Error.Details)
			}
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "done"))

	NewErrorMiddleware(discardLogger).HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, "done", rec.Body.String())
}
