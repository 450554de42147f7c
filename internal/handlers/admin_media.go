package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	_ "golang.org/x/image/webp"

	"weddingfolio/internal/api"
	"weddingfolio/internal/cache"
)

const (
	// maxUploadBytes caps a single uploaded image.
	maxUploadBytes = 10 << 20

	// maxBatchFiles caps one gallery batch upload.
	maxBatchFiles = 20
)

// allowedImageTypes is the sniffed content types accepted for upload.
// The x/image webp decoder is registered so DecodeConfig covers all four.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

var errNotAnImage = errors.New("file is not a supported image (JPEG, PNG, WebP, or GIF)")

// validateImage checks an uploaded file before it is forwarded to the
// backend: size cap, content sniffing, and an image header decode. The
// backend validates again, but rejecting junk here saves a round trip and
// gives the admin an immediate message.
func validateImage(fh *multipart.FileHeader) (io.Reader, error) {
	if fh.Size > maxUploadBytes {
		return nil, fmt.Errorf("%s exceeds the %dMB upload limit", fh.Filename, maxUploadBytes>>20)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload %s: %w", fh.Filename, err)
	}
	if len(data) > maxUploadBytes {
		return nil, fmt.Errorf("%s exceeds the %dMB upload limit", fh.Filename, maxUploadBytes>>20)
	}

	sniff := data
	if len(sniff) > 512 {
		sniff = sniff[:512]
	}
	if !allowedImageTypes[http.DetectContentType(sniff)] {
		return nil, errNotAnImage
	}

	// Decode only the header to confirm the body matches the sniffed type.
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return nil, errNotAnImage
	}

	return bytes.NewReader(data), nil
}

// requiredImage extracts and validates a mandatory file field.
func requiredImage(r *http.Request, field string) (string, io.Reader, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return "", nil, errors.New("invalid upload request")
	}
	f, fh, err := r.FormFile(field)
	if err != nil {
		return "", nil, errors.New("please choose an image to upload")
	}
	f.Close()
	reader, err := validateImage(fh)
	if err != nil {
		return "", nil, err
	}
	return fh.Filename, reader, nil
}

// optionalImage is requiredImage for fields that may be left empty; an
// absent file returns ("", nil, nil) and the backend keeps the old image.
func optionalImage(r *http.Request, field string) (string, io.Reader, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return "", nil, errors.New("invalid upload request")
	}
	f, fh, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil, nil
		}
		return "", nil, errors.New("invalid upload request")
	}
	f.Close()
	if fh.Size == 0 {
		return "", nil, nil
	}
	reader, err := validateImage(fh)
	if err != nil {
		return "", nil, err
	}
	return fh.Filename, reader, nil
}

// batchImages extracts and validates a multi-file field. A single bad file
// rejects the whole batch so the admin never gets a half-uploaded gallery.
func batchImages(r *http.Request, field string) ([]api.Upload, error) {
	if err := r.ParseMultipartForm(maxUploadBytes * 4); err != nil {
		return nil, errors.New("invalid upload request")
	}
	if r.MultipartForm == nil {
		return nil, errors.New("please choose images to upload")
	}
	headers := r.MultipartForm.File[field]
	if len(headers) == 0 {
		return nil, errors.New("please choose images to upload")
	}
	if len(headers) > maxBatchFiles {
		return nil, fmt.Errorf("too many files; upload at most %d at a time", maxBatchFiles)
	}

	uploads := make([]api.Upload, 0, len(headers))
	for _, fh := range headers {
		reader, err := validateImage(fh)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, api.Upload{
			Field:    field,
			Filename: fh.Filename,
			Reader:   reader,
		})
	}
	return uploads, nil
}

// --- Logo ---

// LogoSubmit uploads a new site logo.
func (a *Admin) LogoSubmit(w http.ResponseWriter, r *http.Request) {
	filename, logo, err := requiredImage(r, "logo")
	if err != nil {
		setFlash(w, "error", err.Error())
		http.Redirect(w, r, "/admin/settings", http.StatusSeeOther)
		return
	}

	if _, err := a.client.UploadLogo(r.Context(), token(r), filename, logo); err != nil {
		failWrite(a.sessions, w, r, err, "Failed to upload logo.", "/admin/settings")
		return
	}
	a.pageCache.InvalidateAll(r.Context())
	setFlash(w, "success", "Logo updated.")
	http.Redirect(w, r, "/admin/settings", http.StatusSeeOther)
}

// --- Hero slides ---

// HeroCreate uploads a new carousel slide. New slides go live immediately
// at the end of the display order.
func (a *Admin) HeroCreate(w http.ResponseWriter, r *http.Request) {
	filename, img, err := requiredImage(r, "image")
	if err != nil {
		setFlash(w, "error", err.Error())
		http.Redirect(w, r, "/admin/hero", http.StatusSeeOther)
		return
	}

	alt := r.FormValue("alt")
	if _, err := a.client.CreateHeroItem(r.Context(), token(r), alt, filename, img); err != nil {
		failWrite(a.sessions, w, r, err, "Failed to add slide.", "/admin/hero")
		return
	}
	a.pageCache.Invalidate(r.Context(), cache.HomeKey())
	setFlash(w, "success", "Slide added.")
	http.Redirect(w, r, "/admin/hero", http.StatusSeeOther)
}

// --- Wedding gallery ---

// WeddingGalleryPage manages one wedding's image gallery.
func (a *Admin) WeddingGalleryPage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	wedding, err := a.client.Wedding(r.Context(), id)
	if err != nil {
		if api.IsNotFound(err) {
			setFlash(w, "error", "Wedding not found.")
			http.Redirect(w, r, "/admin/weddings", http.StatusSeeOther)
			return
		}
		a.fail(w, r, err, "Failed to load wedding gallery.")
		return
	}
	a.page(w, r, "wedding_gallery", wedding.CoupleNames()+" Gallery", "weddings", map[string]any{
		"Wedding": wedding,
	})
}

// WeddingGalleryAdd appends a batch of images to a wedding's gallery in
// one backend request.
func (a *Admin) WeddingGalleryAdd(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	backTo := "/admin/weddings/" + id + "/gallery"

	uploads, err := batchImages(r, "images")
	if err != nil {
		setFlash(w, "error", err.Error())
		http.Redirect(w, r, backTo, http.StatusSeeOther)
		return
	}

	if _, err := a.client.AddWeddingImages(r.Context(), token(r), id, uploads); err != nil {
		failWrite(a.sessions, w, r, err, "Failed to upload images.", backTo)
		return
	}
	a.invalidateWedding(r, id)
	setFlash(w, "success", fmt.Sprintf("%d image(s) added.", len(uploads)))
	http.Redirect(w, r, backTo, http.StatusSeeOther)
}

// WeddingGalleryDelete removes one gallery image by its position. The
// gallery page disables its controls while a delete is in flight, so the
// position cannot refer to a stale list.
func (a *Admin) WeddingGalleryDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	backTo := "/admin/weddings/" + id + "/gallery"

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 {
		http.NotFound(w, r)
		return
	}

	if err := a.client.DeleteWeddingImage(r.Context(), token(r), id, index); err != nil {
		failWrite(a.sessions, w, r, err, "Failed to delete image.", backTo)
		return
	}
	a.invalidateWedding(r, id)
	setFlash(w, "success", "Image deleted.")
	http.Redirect(w, r, backTo, http.StatusSeeOther)
}

// --- Package gallery ---

// PackageGalleryAdd appends a batch of images to a package's gallery.
func (a *Admin) PackageGalleryAdd(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	uploads, err := batchImages(r, "images")
	if err != nil {
		setFlash(w, "error", err.Error())
		http.Redirect(w, r, "/admin/packages", http.StatusSeeOther)
		return
	}

	if _, err := a.client.AddPackageImages(r.Context(), token(r), id, uploads); err != nil {
		failWrite(a.sessions, w, r, err, "Failed to upload images.", "/admin/packages")
		return
	}
	a.pageCache.Invalidate(r.Context(), cache.HomeKey())
	setFlash(w, "success", fmt.Sprintf("%d image(s) added.", len(uploads)))
	http.Redirect(w, r, "/admin/packages", http.StatusSeeOther)
}
