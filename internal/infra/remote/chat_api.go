package remote

import (
	"context"
	"encoding/json"
	"net/http"

	"insureflow/internal/domain/service"
)

// Send forwards a chat message and returns the backend reply unchanged.
func (c *Client) Send(ctx context.Context, req *service.ChatRequest) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.callJSON(ctx, http.MethodPost, "/chat", nil, req, &raw, 0); err != nil {
		return nil, err
	}

	return raw, nil
}
