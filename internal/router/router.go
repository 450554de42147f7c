// Package router builds the chi route tree: public site, HTMX carousel
// fragments, and the admin panel behind session auth and CSRF.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"weddingfolio/internal/handlers"
	"weddingfolio/internal/middleware"
	"weddingfolio/internal/session"
	"weddingfolio/web"
)

// Deps carries everything the route tree needs.
type Deps struct {
	Sessions *session.Store
	Public   *handlers.Public
	Admin    *handlers.Admin
	Auth     *handlers.Auth
}

// New builds the application router.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(d.Sessions))

	// Public site.
	r.Get("/", d.Public.Home)
	r.Get("/weddings/{id}", d.Public.WeddingGallery)
	r.Post("/contact", d.Public.ContactSubmit)

	// Hero carousel fragments (HTMX).
	r.Post("/hero/advance", d.Public.CarouselAdvance)
	r.Post("/hero/{move}", d.Public.CarouselMove)

	// Admin panel.
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.CSRF)

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
		})
		r.Get("/login", d.Auth.LoginPage)
		r.Post("/login", d.Auth.LoginSubmit)

		// Everything below requires a live session.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Post("/logout", d.Auth.Logout)
			r.Get("/dashboard", d.Admin.Dashboard)

			r.Get("/settings", d.Admin.SettingsPage)
			r.Post("/settings", d.Admin.SettingsSubmit)
			r.Post("/settings/logo", d.Admin.LogoSubmit)

			r.Get("/hero", d.Admin.HeroPage)
			r.Post("/hero", d.Admin.HeroCreate)
			r.Post("/hero/reorder", d.Admin.HeroReorder)
			r.Post("/hero/{id}", d.Admin.HeroUpdate)
			r.Post("/hero/{id}/delete", d.Admin.HeroDelete)

			r.Get("/weddings", d.Admin.WeddingsPage)
			r.Post("/weddings", d.Admin.WeddingCreate)
			r.Post("/weddings/{id}", d.Admin.WeddingUpdate)
			r.Post("/weddings/{id}/delete", d.Admin.WeddingDelete)
			r.Get("/weddings/{id}/gallery", d.Admin.WeddingGalleryPage)
			r.Post("/weddings/{id}/gallery", d.Admin.WeddingGalleryAdd)
			r.Post("/weddings/{id}/gallery/{index}/delete", d.Admin.WeddingGalleryDelete)

			r.Get("/packages", d.Admin.PackagesPage)
			r.Post("/packages", d.Admin.PackageCreate)
			r.Post("/packages/{id}", d.Admin.PackageUpdate)
			r.Post("/packages/{id}/delete", d.Admin.PackageDelete)
			r.Post("/packages/{id}/gallery", d.Admin.PackageGalleryAdd)

			r.Get("/films", d.Admin.FilmsPage)
			r.Post("/films", d.Admin.FilmsSubmit)

			r.Get("/about", d.Admin.AboutPage)
			r.Post("/about", d.Admin.AboutSubmit)
			r.Post("/about/features", d.Admin.AboutFeaturesSubmit)

			r.Get("/sections", d.Admin.SectionsPage)
			r.Post("/sections/{key}", d.Admin.SectionSubmit)

			r.Get("/inquiries", d.Admin.InquiriesPage)

			r.Get("/social", d.Admin.SocialPage)
			r.Post("/social", d.Admin.SocialSubmit)

			r.Get("/facebook", d.Admin.FacebookPage)
			r.Post("/facebook", d.Admin.FacebookSubmit)
			r.Post("/facebook/test", d.Admin.FacebookTest)

			r.Get("/youtube", d.Admin.YouTubePage)
			r.Post("/youtube", d.Admin.YouTubeSubmit)
			r.Post("/youtube/test", d.Admin.YouTubeTest)

			r.Get("/security", d.Auth.SecurityPage)
			r.Post("/security", d.Auth.SecuritySubmit)
		})
	})

	// Embedded static assets.
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(web.StaticFS))))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}
