package api

import (
	"context"
	"io"
	"net/http"

	"weddingfolio/internal/models"
)

// FeaturedFilm fetches the featured film singleton. Public.
func (c *Client) FeaturedFilm(ctx context.Context) (*models.Film, error) {
	var f models.Film
	if err := c.getJSON(ctx, "/films/featured", "", &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// UpdateFeaturedFilm replaces the featured film's title and video URL.
func (c *Client) UpdateFeaturedFilm(ctx context.Context, tok Token, upd models.FilmUpdate) (*models.Film, error) {
	var f models.Film
	if err := c.sendJSON(ctx, http.MethodPut, "/admin/films/featured", tok, upd, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// About fetches the photographer bio singleton. Public.
func (c *Client) About(ctx context.Context) (*models.About, error) {
	var a models.About
	if err := c.getJSON(ctx, "/about", "", &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateAbout updates the bio fields. A nil image keeps the current photo.
func (c *Client) UpdateAbout(ctx context.Context, tok Token, name, bio, imageFilename string, image io.Reader) (*models.About, error) {
	var a models.About
	fields := map[string]string{"name": name, "bio": bio}
	var files []Upload
	if image != nil {
		files = append(files, Upload{Field: "image", Filename: imageFilename, Reader: image})
	}
	if err := c.sendMultipart(ctx, http.MethodPut, "/admin/about", tok, fields, files, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateAboutFeatures replaces the ordered feature list. Features save
// independently from the core bio fields.
func (c *Client) UpdateAboutFeatures(ctx context.Context, tok Token, features []models.AboutFeature) (*models.About, error) {
	var a models.About
	payload := map[string]any{"features": features}
	if err := c.sendJSON(ctx, http.MethodPut, "/admin/about/features", tok, payload, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Section fetches the public copy override for a section key. Public.
func (c *Client) Section(ctx context.Context, key string) (*models.SectionContent, error) {
	var s models.SectionContent
	if err := c.getJSON(ctx, "/sections/"+key, "", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// AdminSection fetches a section's copy for editing.
func (c *Client) AdminSection(ctx context.Context, tok Token, key string) (*models.SectionContent, error) {
	var s models.SectionContent
	if err := c.getJSON(ctx, "/admin/sections/"+key, tok, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateSection saves a section's copy override.
func (c *Client) UpdateSection(ctx context.Context, tok Token, key string, upd models.SectionContentUpdate) (*models.SectionContent, error) {
	var s models.SectionContent
	if err := c.sendJSON(ctx, http.MethodPut, "/admin/sections/"+key, tok, upd, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// SubmitInquiry creates a contact inquiry from the public form.
func (c *Client) SubmitInquiry(ctx context.Context, inquiry models.ContactInquiryCreate) (*models.ContactInquiry, error) {
	var created models.ContactInquiry
	if err := c.sendJSON(ctx, http.MethodPost, "/contact", "", inquiry, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Inquiries fetches all contact inquiries, newest first. Read-only.
func (c *Client) Inquiries(ctx context.Context, tok Token) ([]models.ContactInquiry, error) {
	var inquiries []models.ContactInquiry
	if err := c.getJSON(ctx, "/admin/contact", tok, &inquiries); err != nil {
		return nil, err
	}
	return inquiries, nil
}
