package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"insureflow/internal/domain/entity"
	"insureflow/internal/errors"
)

// authPayload accepts both a flat user and a {user, access_token} envelope.
type authPayload struct {
	ID          string           `json:"id"`
	Email       string           `json:"email"`
	Name        string           `json:"name"`
	Token       string           `json:"token"`
	AccessToken string           `json:"access_token"`
	User        *entity.AuthUser `json:"user"`
}

func (p *authPayload) toUser() *entity.AuthUser {
	user := &entity.AuthUser{ID: p.ID, Email: p.Email, Name: p.Name, Token: p.Token}
	if p.User != nil {
		user = p.User
	}
	if user.Token == "" {
		user.Token = p.Token
	}
	if user.Token == "" {
		user.Token = p.AccessToken
	}

	return user
}

func (c *Client) authCall(ctx context.Context, method, path string, query url.Values, in any) (*entity.AuthUser, error) {
	var raw json.RawMessage
	if err := c.callJSON(ctx, method, path, query, in, &raw, 0); err != nil {
		return nil, err
	}

	payload := &authPayload{}
	if err := decodeData(raw, payload, "auth response"); err != nil {
		return nil, err
	}

	user := payload.toUser()
	if user.ID == "" && user.Email == "" {
		return nil, errors.Errorf("%s %s returned no user", method, path)
	}

	return user, nil
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, registration *entity.Registration) (*entity.AuthUser, error) {
	return c.authCall(ctx, http.MethodPost, "/auth/register", nil, registration)
}

// Login exchanges credentials for a user with token.
func (c *Client) Login(ctx context.Context, email, password string) (*entity.AuthUser, error) {
	credentials := map[string]string{"email": email, "password": password}

	return c.authCall(ctx, http.MethodPost, "/auth/login", nil, credentials)
}

// Me resolves a token to its user.
func (c *Client) Me(ctx context.Context, token string) (*entity.AuthUser, error) {
	user, err := c.authCall(ctx, http.MethodGet, "/auth/me", url.Values{"token": {token}}, nil)
	if err != nil {
		return nil, err
	}
	if user.Token == "" {
		user.Token = token
	}

	return user, nil
}
