package api

import (
	"context"
	"net/http"

	"weddingfolio/internal/models"
)

// loginResponse is the token envelope returned by the login endpoint.
type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges the admin username and password for a bearer token.
// Invalid credentials come back as a 401 *Error with the server's message.
func (c *Client) Login(ctx context.Context, username, password string) (Token, error) {
	payload := map[string]string{"username": username, "password": password}
	var resp loginResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/admin/login", "", payload, &resp); err != nil {
		return "", err
	}
	return Token(resp.AccessToken), nil
}

// Credentials returns the admin account summary (username, last update).
func (c *Client) Credentials(ctx context.Context, tok Token) (*models.AdminCredentials, error) {
	var creds models.AdminCredentials
	if err := c.getJSON(ctx, "/admin/credentials", tok, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

// UpdateCredentials changes the admin username and/or password. The current
// password is mandatory; the backend invalidates all existing tokens on
// success, so the caller must treat a successful change as a forced logout.
func (c *Client) UpdateCredentials(ctx context.Context, tok Token, change models.CredentialsChange) error {
	return c.sendJSON(ctx, http.MethodPut, "/admin/credentials", tok, change, nil)
}
