package api

import (
	"context"
	"io"
	"net/http"

	"weddingfolio/internal/models"
)

// HeroCarousel fetches the enabled carousel slides in display order. Public.
func (c *Client) HeroCarousel(ctx context.Context) ([]models.HeroCarouselItem, error) {
	var items []models.HeroCarouselItem
	if err := c.getJSON(ctx, "/hero-carousel", "", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AdminHeroCarousel fetches all slides including disabled ones.
func (c *Client) AdminHeroCarousel(ctx context.Context, tok Token) ([]models.HeroCarouselItem, error) {
	var items []models.HeroCarouselItem
	if err := c.getJSON(ctx, "/admin/hero-carousel", tok, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateHeroItem uploads a new slide image with its alt text.
func (c *Client) CreateHeroItem(ctx context.Context, tok Token, alt, filename string, image io.Reader) (*models.HeroCarouselItem, error) {
	var item models.HeroCarouselItem
	fields := map[string]string{"alt": alt}
	files := []Upload{{Field: "image", Filename: filename, Reader: image}}
	if err := c.sendMultipart(ctx, http.MethodPost, "/admin/hero-carousel", tok, fields, files, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// HeroItemUpdate carries the editable slide fields. Nil fields are left
// unchanged by the backend.
type HeroItemUpdate struct {
	Alt     *string `json:"alt,omitempty"`
	Enabled *bool   `json:"enabled,omitempty"`
}

// UpdateHeroItem changes a slide's alt text or visibility.
func (c *Client) UpdateHeroItem(ctx context.Context, tok Token, id string, upd HeroItemUpdate) (*models.HeroCarouselItem, error) {
	var item models.HeroCarouselItem
	if err := c.sendJSON(ctx, http.MethodPut, "/admin/hero-carousel/"+id, tok, upd, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteHeroItem removes a slide and its stored image.
func (c *Client) DeleteHeroItem(ctx context.Context, tok Token, id string) error {
	return c.delete(ctx, "/admin/hero-carousel/"+id, tok)
}

// ReorderHeroCarousel persists a new slide order. ids are slide IDs in the
// desired display order.
func (c *Client) ReorderHeroCarousel(ctx context.Context, tok Token, ids []string) error {
	items := make([]map[string]any, len(ids))
	for i, id := range ids {
		items[i] = map[string]any{"id": id, "order": i}
	}
	payload := map[string]any{"items": items}
	return c.sendJSON(ctx, http.MethodPut, "/admin/hero-carousel/reorder", tok, payload, nil)
}
