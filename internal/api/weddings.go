package api

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"weddingfolio/internal/models"
)

// Weddings fetches the wedding list, newest first. A positive limit caps
// the result count. Public.
func (c *Client) Weddings(ctx context.Context, limit int) ([]models.Wedding, error) {
	path := "/weddings"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var weddings []models.Wedding
	if err := c.getJSON(ctx, path, "", &weddings); err != nil {
		return nil, err
	}
	return weddings, nil
}

// Wedding fetches a single wedding with its full gallery. Public.
func (c *Client) Wedding(ctx context.Context, id string) (*models.Wedding, error) {
	var w models.Wedding
	if err := c.getJSON(ctx, "/weddings/"+id, "", &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// WeddingForm carries the core wedding fields submitted alongside the
// cover image.
type WeddingForm struct {
	BrideName string
	GroomName string
	Date      string
	Location  string
}

func (f WeddingForm) fields() map[string]string {
	return map[string]string{
		"brideName": f.BrideName,
		"groomName": f.GroomName,
		"date":      f.Date,
		"location":  f.Location,
	}
}

// CreateWedding creates a wedding. The cover image is required on create.
func (c *Client) CreateWedding(ctx context.Context, tok Token, form WeddingForm, coverFilename string, cover io.Reader) (*models.Wedding, error) {
	var w models.Wedding
	files := []Upload{{Field: "coverImage", Filename: coverFilename, Reader: cover}}
	if err := c.sendMultipart(ctx, http.MethodPost, "/admin/weddings", tok, form.fields(), files, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// UpdateWedding updates a wedding's core fields. A nil cover leaves the
// existing cover image in place.
func (c *Client) UpdateWedding(ctx context.Context, tok Token, id string, form WeddingForm, coverFilename string, cover io.Reader) (*models.Wedding, error) {
	var w models.Wedding
	var files []Upload
	if cover != nil {
		files = append(files, Upload{Field: "coverImage", Filename: coverFilename, Reader: cover})
	}
	if err := c.sendMultipart(ctx, http.MethodPut, "/admin/weddings/"+id, tok, form.fields(), files, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// DeleteWedding removes a wedding together with its stored images.
func (c *Client) DeleteWedding(ctx context.Context, tok Token, id string) error {
	return c.delete(ctx, "/admin/weddings/"+id, tok)
}

// AddWeddingImages appends a batch of gallery images to a wedding and
// returns the updated entity. All files travel in one multipart request.
func (c *Client) AddWeddingImages(ctx context.Context, tok Token, id string, images []Upload) (*models.Wedding, error) {
	var w models.Wedding
	if err := c.sendMultipart(ctx, http.MethodPost, "/admin/weddings/"+id+"/images", tok, nil, images, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// DeleteWeddingImage removes the gallery image at the given positional
// index. The order of the remaining images is preserved.
func (c *Client) DeleteWeddingImage(ctx context.Context, tok Token, id string, index int) error {
	return c.delete(ctx, "/admin/weddings/"+id+"/images/"+strconv.Itoa(index), tok)
}
