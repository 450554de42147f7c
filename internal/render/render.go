// Package render provides HTML template rendering for the public site and
// the admin interface. Admin pages share a base layout with sidebar
// navigation; public pages share a lighter layout; the login page renders
// standalone. Templates are embedded in the binary.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"weddingfolio/internal/middleware"
	"weddingfolio/internal/models"
	"weddingfolio/internal/session"
)

//go:embed templates/admin/*.html templates/public/*.html
var templateFS embed.FS

// PageData holds all data passed to templates.
type PageData struct {
	Title     string         // Page title for <title> tag
	Section   string         // Active sidebar section (e.g., "dashboard", "weddings")
	Session   *session.Data  // Current admin session (nil if unauthenticated)
	CSRFToken string         // CSRF token for forms and HTMX headers
	Flash     *Flash         // One-time notification message
	Data      map[string]any // Page-specific data
}

// Flash represents a one-time notification message displayed to the user.
type Flash struct {
	Type    string // "success" or "error"
	Message string
}

// Renderer handles template parsing and execution.
type Renderer struct {
	templates map[string]*template.Template
	funcMap   template.FuncMap
}

// standaloneTemplates lists templates that render without a base layout:
// the login page carries its own <html> scaffold, and hero_slide is an
// HTMX fragment swapped into the carousel in place.
var standaloneTemplates = map[string]bool{
	"login":      true,
	"hero_slide": true,
}

// New creates a Renderer by parsing all templates from the embedded
// filesystem. backendURL is the backend origin used to resolve
// server-relative image paths in templates. When devMode is true,
// templates load CDN-hosted assets instead of the embedded static files.
func New(devMode bool, backendURL string) (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template),
		funcMap: template.FuncMap{
			// activeClass highlights the active sidebar entry.
			"activeClass": func(current, target string) string {
				if current == target {
					return "bg-gray-900 text-white"
				}
				return "text-gray-300 hover:bg-gray-700 hover:text-white"
			},
			// imageURL resolves a backend image reference to an absolute URL.
			"imageURL": func(ref string) string {
				return models.ResolveImageURL(backendURL, ref)
			},
			// isDev returns true when the app runs in development mode.
			"isDev": func() bool {
				return devMode
			},
			// fmtDate renders a timestamp for list views.
			"fmtDate": func(t time.Time) string {
				if t.IsZero() {
					return ""
				}
				return t.Format("Jan 2, 2006 15:04")
			},
			// truncate shortens long text for table cells. Cuts on rune
			// boundaries so multi-byte text stays valid UTF-8.
			"truncate": func(s string, n int) string {
				runes := []rune(s)
				if len(runes) <= n {
					return s
				}
				return strings.TrimSpace(string(runes[:n])) + "…"
			},
			// add helps templates compute slide indexes.
			"add": func(a, b int) int { return a + b },
		},
	}

	for _, dir := range []string{"admin", "public"} {
		if err := r.parseDir(dir); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// parseDir parses every page template in a template directory, pairing it
// with that directory's base layout unless it is standalone.
func (r *Renderer) parseDir(dir string) error {
	entries, err := templateFS.ReadDir("templates/" + dir)
	if err != nil {
		return fmt.Errorf("read embedded templates %s: %w", dir, err)
	}

	base := "templates/" + dir + "/base.html"

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "base.html" {
			continue
		}

		tmplName := strings.TrimSuffix(name, ".html")

		var tmpl *template.Template
		var parseErr error

		if standaloneTemplates[tmplName] {
			tmpl, parseErr = template.New(name).Funcs(r.funcMap).ParseFS(
				templateFS, "templates/"+dir+"/"+name,
			)
		} else {
			tmpl, parseErr = template.New("base.html").Funcs(r.funcMap).ParseFS(
				templateFS, base, "templates/"+dir+"/"+name,
			)
		}

		if parseErr != nil {
			return fmt.Errorf("parse template %s: %w", name, parseErr)
		}

		r.templates[tmplName] = tmpl
	}

	return nil
}

// HTML renders a page to bytes. Used by the public handlers so rendered
// pages can be stored in the page cache before being written out.
func (rn *Renderer) HTML(r *http.Request, name string, data *PageData) ([]byte, error) {
	tmpl, ok := rn.templates[name]
	if !ok {
		return nil, fmt.Errorf("template %q not found", name)
	}

	if data == nil {
		data = &PageData{}
	}
	if data.CSRFToken == "" {
		data.CSRFToken = middleware.GetCSRFToken(r)
	}
	if data.Session == nil {
		data.Session = middleware.SessionFromCtx(r.Context())
	}

	execName := "base.html"
	if standaloneTemplates[name] {
		execName = name + ".html"
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, execName, data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Page renders a full page to the response writer.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	out, err := rn.HTML(r, name, data)
	if err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(out)
}
