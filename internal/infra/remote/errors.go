package remote

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"insureflow/internal/errors"
)

const remoteErrorCode = "REMOTE_API_ERROR"

// StatusError is a non-2xx response of the backend.
// Client errors keep their status; everything else surfaces as 502.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Detail     string
}

func newStatusError(method, path string, status int, body []byte) *StatusError {
	return &StatusError{
		Method:     method,
		Path:       path,
		StatusCode: status,
		Detail:     errorDetail(status, body),
	}
}

// errorDetail prefers the server's detail or message field, then the status text.
func errorDetail(status int, body []byte) string {
	var payload struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if len(payload.Detail) > 0 {
			var detail string
			if err := json.Unmarshal(payload.Detail, &detail); err == nil && detail != "" {
				return detail
			}
			if string(payload.Detail) != "null" {
				return string(payload.Detail)
			}
		}
		if payload.Message != "" {
			return payload.Message
		}
	}

	return http.StatusText(status)
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s returned %d: %s", e.Method, e.Path, e.StatusCode, e.Detail)
}

func (e *StatusError) HTTPCode() int {
	if e.StatusCode >= 400 && e.StatusCode < 500 {
		return e.StatusCode
	}

	return http.StatusBadGateway
}

func (e *StatusError) ErrorCode() string { return remoteErrorCode }

func (e *StatusError) Message() string { return e.Detail }

func (e *StatusError) Details() string {
	return fmt.Sprintf("%s %s (%d)", e.Method, e.Path, e.StatusCode)
}

// TransportError is a request that never produced a response.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) HTTPCode() int { return http.StatusBadGateway }

func (e *TransportError) ErrorCode() string { return remoteErrorCode }

func (e *TransportError) Message() string { return "Máy chủ xử lý tài liệu không phản hồi" }

func (e *TransportError) Details() string { return strings.TrimSpace(e.Error()) }

func retryable(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= http.StatusInternalServerError
	}

	var transportErr *TransportError

	return errors.As(err, &transportErr)
}
