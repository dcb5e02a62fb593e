package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"insureflow/internal/domain/entity"
)

// CreatePurchase persists a purchase record on the backend.
func (c *Client) CreatePurchase(ctx context.Context, record *entity.PurchaseRecord) error {
	return c.callJSON(ctx, http.MethodPost, "/insurance-purchases", nil, record, nil, 0)
}

// ListPurchases returns the purchase history of a user. It is retried once.
func (c *Client) ListPurchases(ctx context.Context, userID string) ([]*entity.PurchaseRecord, error) {
	var raw json.RawMessage
	path := "/users/" + url.PathEscape(userID) + "/insurance-purchases"
	if err := c.callJSON(ctx, http.MethodGet, path, nil, nil, &raw, 1); err != nil {
		return nil, err
	}

	records := []*entity.PurchaseRecord{}
	if raw == nil {
		return records, nil
	}
	if err := decodeData(raw, &records, "purchase history"); err != nil {
		return nil, err
	}

	return records, nil
}
