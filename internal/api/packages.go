package api

import (
	"context"
	"io"
	"net/http"

	"weddingfolio/internal/models"
)

// Packages fetches all photography packages in display order. Public.
func (c *Client) Packages(ctx context.Context) ([]models.Package, error) {
	var packages []models.Package
	if err := c.getJSON(ctx, "/packages", "", &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

// PackageForm carries the core package fields submitted alongside the
// thumbnail.
type PackageForm struct {
	Title       string
	Description string
	Pricing     string
}

func (f PackageForm) fields() map[string]string {
	return map[string]string{
		"title":       f.Title,
		"description": f.Description,
		"pricing":     f.Pricing,
	}
}

// CreatePackage creates a package. The thumbnail is required on create.
func (c *Client) CreatePackage(ctx context.Context, tok Token, form PackageForm, thumbFilename string, thumb io.Reader) (*models.Package, error) {
	var p models.Package
	files := []Upload{{Field: "thumbnail", Filename: thumbFilename, Reader: thumb}}
	if err := c.sendMultipart(ctx, http.MethodPost, "/admin/packages", tok, form.fields(), files, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdatePackage updates a package's core fields. A nil thumb keeps the
// existing thumbnail.
func (c *Client) UpdatePackage(ctx context.Context, tok Token, id string, form PackageForm, thumbFilename string, thumb io.Reader) (*models.Package, error) {
	var p models.Package
	var files []Upload
	if thumb != nil {
		files = append(files, Upload{Field: "thumbnail", Filename: thumbFilename, Reader: thumb})
	}
	if err := c.sendMultipart(ctx, http.MethodPut, "/admin/packages/"+id, tok, form.fields(), files, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeletePackage removes a package together with its stored images.
func (c *Client) DeletePackage(ctx context.Context, tok Token, id string) error {
	return c.delete(ctx, "/admin/packages/"+id, tok)
}

// AddPackageImages appends a batch of gallery images to a package and
// returns the updated entity.
func (c *Client) AddPackageImages(ctx context.Context, tok Token, id string, images []Upload) (*models.Package, error) {
	var p models.Package
	if err := c.sendMultipart(ctx, http.MethodPost, "/admin/packages/"+id+"/images", tok, nil, images, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
