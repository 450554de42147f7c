package api

import (
	"context"
	"io"
	"net/http"

	"weddingfolio/internal/models"
)

// Settings fetches the site settings singleton. Public.
func (c *Client) Settings(ctx context.Context) (*models.SiteSettings, error) {
	var s models.SiteSettings
	if err := c.getJSON(ctx, "/settings", "", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateSettings updates the editable site settings fields.
func (c *Client) UpdateSettings(ctx context.Context, tok Token, upd models.SiteSettingsUpdate) (*models.SiteSettings, error) {
	var s models.SiteSettings
	if err := c.sendJSON(ctx, http.MethodPut, "/settings", tok, upd, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// UploadLogo replaces the site logo and returns the new logo URL.
func (c *Client) UploadLogo(ctx context.Context, tok Token, filename string, file io.Reader) (string, error) {
	var resp struct {
		LogoURL string `json:"logoUrl"`
	}
	files := []Upload{{Field: "logo", Filename: filename, Reader: file}}
	if err := c.sendMultipart(ctx, http.MethodPost, "/settings/upload-logo", tok, nil, files, &resp); err != nil {
		return "", err
	}
	return resp.LogoURL, nil
}
