// Package api is the typed client for the portfolio backend REST API.
// Every entity operation is a thin method that builds the request, attaches
// the bearer credential when the operation is privileged, and returns the
// decoded result or a typed *Error. The client never pre-validates
// permissions: the backend is the sole authority on rejecting a call.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"
	"time"
)

// Token is the opaque bearer credential issued by POST /admin/login.
// Privileged methods take it as an explicit argument; an empty token sends
// no Authorization header at all.
type Token string

// Client talks to the backend API at a fixed base URL (origin + /api).
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the given API base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Error is a non-2xx response from the backend, carrying the HTTP status
// and the server-supplied message when one was present.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// IsUnauthorized reports whether err is a 401 response. Callers translate
// this into a forced logout.
func IsUnauthorized(err error) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Status == http.StatusUnauthorized
}

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Status == http.StatusNotFound
}

// ErrorMessage extracts the server-supplied message from err, or returns
// fallback for transport and decode failures that carry no user-facing text.
func ErrorMessage(err error, fallback string) string {
	var ae *Error
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return fallback
}

// do performs a request and decodes the JSON response into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, tok Token, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("api %s %s: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+string(tok))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("api %s %s: read body: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Status: resp.StatusCode, Message: errorDetail(respBody, resp.StatusCode)}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("api %s %s: decode response: %w", method, path, err)
		}
	}
	return nil
}

// getJSON performs a GET and decodes the response.
func (c *Client) getJSON(ctx context.Context, path string, tok Token, out any) error {
	return c.do(ctx, http.MethodGet, path, tok, "", nil, out)
}

// sendJSON performs a write with a JSON body and decodes the response.
func (c *Client) sendJSON(ctx context.Context, method, path string, tok Token, payload, out any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("api %s %s: encode request: %w", method, path, err)
	}
	return c.do(ctx, method, path, tok, "application/json", bytes.NewReader(data), out)
}

// delete performs a DELETE, discarding any response body.
func (c *Client) delete(ctx context.Context, path string, tok Token) error {
	return c.do(ctx, http.MethodDelete, path, tok, "", nil, nil)
}

// Upload is one file part of a multipart request.
type Upload struct {
	Field    string    // form field name, e.g. "image" or "images"
	Filename string    // original filename, used for the part and extension
	Reader   io.Reader // file contents
}

// sendMultipart performs a write with a multipart/form-data body built from
// plain fields and file parts. File-bearing endpoints (logo, hero image,
// cover image, thumbnail, gallery batches) all go through here.
func (c *Client) sendMultipart(ctx context.Context, method, path string, tok Token, fields map[string]string, files []Upload, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for key, val := range fields {
		if err := mw.WriteField(key, val); err != nil {
			return fmt.Errorf("api %s %s: write field %s: %w", method, path, key, err)
		}
	}
	for _, f := range files {
		part, err := createFilePart(mw, f.Field, f.Filename)
		if err != nil {
			return fmt.Errorf("api %s %s: create part: %w", method, path, err)
		}
		if _, err := io.Copy(part, f.Reader); err != nil {
			return fmt.Errorf("api %s %s: copy file %s: %w", method, path, f.Filename, err)
		}
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("api %s %s: close multipart: %w", method, path, err)
	}

	return c.do(ctx, method, path, tok, mw.FormDataContentType(), &buf, out)
}

// createFilePart adds a file part with a content type derived from the
// filename extension instead of the octet-stream default.
func createFilePart(mw *multipart.Writer, field, filename string) (io.Writer, error) {
	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	h.Set("Content-Type", contentType)
	return mw.CreatePart(h)
}

// errorDetail extracts the "detail" message the backend attaches to error
// responses, falling back to the raw body or the HTTP status text.
func errorDetail(body []byte, status int) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}
	if msg := strings.TrimSpace(string(body)); msg != "" && len(msg) < 500 {
		return msg
	}
	return http.StatusText(status)
}
