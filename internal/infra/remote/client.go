// Package remote is the HTTP client of the document, auth, chat and purchase backend.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"insureflow/config"
	deliverycontext "insureflow/internal/delivery/context"
	"insureflow/internal/errors"

	"go.uber.org/fx"
)

const (
	defaultBaseURL = "http://localhost:8000"
	defaultTimeout = 60 * time.Second

	// maxErrorBody bounds how much of a failed response is read for its detail.
	maxErrorBody = 64 << 10
)

// Client talks to the remote backend. It implements the AuthAPI, DocumentAPI,
// DocumentViewerAPI, ChatAPI and PurchaseAPI ports.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Params holds dependencies for Client, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates a backend client from the remote configuration.
func NewClient(params Params) *Client {
	baseURL, timeout := defaultBaseURL, defaultTimeout
	if remote := params.Config.Remote; remote != nil {
		if remote.BaseURL != "" {
			baseURL = remote.BaseURL
		}
		if remote.Timeout > 0 {
			timeout = remote.Timeout
		}
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     params.Logger,
	}
}

// requestBuilder creates a fresh request for every attempt.
type requestBuilder func(ctx context.Context) (*http.Request, error)

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	return u
}

func (c *Client) jsonRequest(method, path string, query url.Values, in any) (requestBuilder, error) {
	var payload []byte
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode %s %s", method, path)
		}
		payload = raw
	}

	return func(ctx context.Context) (*http.Request, error) {
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), body)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		req.Header.Set("Accept", "application/json")

		return req, nil
	}, nil
}

// callJSON sends a JSON request and decodes the response into out.
func (c *Client) callJSON(ctx context.Context, method, path string, query url.Values, in, out any, retries int) error {
	build, err := c.jsonRequest(method, path, query, in)
	if err != nil {
		return err
	}

	return c.do(ctx, build, out, retries)
}

// do runs the request, retrying transport failures and 5xx responses up to retries times.
func (c *Client) do(ctx context.Context, build requestBuilder, out any, retries int) error {
	var lastErr error

	for attempt := 0; attempt <= retries; attempt++ {
		req, err := build(ctx)
		if err != nil {
			return err
		}
		if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
			req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
		}

		lastErr = c.roundTrip(req, out)
		if lastErr == nil || !retryable(lastErr) || ctx.Err() != nil {
			return lastErr
		}

		c.logger.Warn("Remote request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("attempt", attempt+1),
			slog.Any("error", lastErr),
		)
	}

	return lastErr
}

func (c *Client) roundTrip(req *http.Request, out any) error {
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Method: req.Method, Path: req.URL.Path, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("Remote request",
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return newStatusError(req.Method, req.URL.Path, resp.StatusCode, body)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Method: req.Method, Path: req.URL.Path, Err: err}
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "failed to decode %s %s response", req.Method, req.URL.Path)
	}

	return nil
}

// unwrapData returns the "data" member of an envelope, or raw itself when there is none.
func unwrapData(raw json.RawMessage) json.RawMessage {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Data) > 0 && string(envelope.Data) != "null" {
		return envelope.Data
	}

	return raw
}

func decodeData(raw json.RawMessage, out any, what string) error {
	if err := json.Unmarshal(unwrapData(raw), out); err != nil {
		return errors.Wrapf(err, "failed to decode %s", what)
	}

	return nil
}
