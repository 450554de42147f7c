package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"weddingfolio/internal/api"
	"weddingfolio/internal/cache"
	"weddingfolio/internal/middleware"
	"weddingfolio/internal/models"
	"weddingfolio/internal/render"
	"weddingfolio/internal/session"
)

// Admin groups the authenticated admin panel handlers. Every write goes
// to the backend first; the page then re-renders from a fresh read, so
// what the admin sees is always backend-confirmed state.
type Admin struct {
	renderer  *render.Renderer
	sessions  *session.Store
	client    *api.Client
	pageCache *cache.PageCache
}

// NewAdmin creates a new Admin handler group.
func NewAdmin(renderer *render.Renderer, sessions *session.Store, client *api.Client, pageCache *cache.PageCache) *Admin {
	return &Admin{
		renderer:  renderer,
		sessions:  sessions,
		client:    client,
		pageCache: pageCache,
	}
}

// token returns the bearer token of the current session. RequireAuth
// guarantees the session exists on every route that reaches here.
func token(r *http.Request) api.Token {
	return middleware.SessionFromCtx(r.Context()).Token
}

// page renders an admin page with the shared chrome fields filled in.
func (a *Admin) page(w http.ResponseWriter, r *http.Request, name, title, section string, data map[string]any) {
	a.renderer.Page(w, r, name, &render.PageData{
		Title:   title,
		Section: section,
		Flash:   popFlash(w, r),
		Data:    data,
	})
}

// fail handles a failed read on an admin page: unauthorized forces logout,
// anything else renders an error page in place. Redirecting would loop
// when the failing page is itself the redirect target.
func (a *Admin) fail(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	if api.IsUnauthorized(err) {
		forceLogout(a.sessions, w, r)
		return
	}
	slog.Error("admin read failed", "error", err, "path", r.URL.Path)

	out, rerr := a.renderer.HTML(r, "error", &render.PageData{
		Title: "Something Went Wrong",
		Flash: &render.Flash{Type: "error", Message: api.ErrorMessage(err, fallback)},
	})
	if rerr != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusBadGateway)
	w.Write(out)
}

// --- Dashboard ---

// Dashboard shows content counts and the most recent inquiries.
func (a *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	tok := token(r)

	var (
		weddings  []models.Wedding
		packages  []models.Package
		hero      []models.HeroCarouselItem
		inquiries []models.ContactInquiry
	)

	g, gctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		weddings, err = a.client.Weddings(gctx, 0)
		return err
	})
	g.Go(func() error {
		var err error
		packages, err = a.client.Packages(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		hero, err = a.client.AdminHeroCarousel(gctx, tok)
		return err
	})
	g.Go(func() error {
		var err error
		inquiries, err = a.client.Inquiries(gctx, tok)
		return err
	})
	if err := g.Wait(); err != nil {
		a.fail(w, r, err, "Failed to load dashboard.")
		return
	}

	recent := inquiries
	if len(recent) > 5 {
		recent = recent[:5]
	}

	a.page(w, r, "dashboard", "Dashboard", "dashboard", map[string]any{
		"WeddingCount": len(weddings),
		"PackageCount": len(packages),
		"HeroCount":    len(hero),
		"InquiryCount": len(inquiries),
		"Recent":       recent,
	})
}

// --- Site settings ---

// SettingsPage renders the site settings form.
func (a *Admin) SettingsPage(w http.ResponseWriter, r *http.Request) {
	settings, err := a.client.Settings(r.Context())
	if err != nil {
		a.fail(w, r, err, "Failed to load settings.")
		return
	}
	a.page(w, r, "settings", "Site Settings", "settings", map[string]any{
		"Settings": settings,
	})
}

// SettingsSubmit saves the site identity fields.
func (a *Admin) SettingsSubmit(w http.ResponseWriter, r *http.Request) {
	upd := models.SiteSettingsUpdate{
		SiteName: r.FormValue("siteName"),
		Phone:    r.FormValue("phone"),
		Email:    r.FormValue("email"),
		Address:  r.FormValue("address"),
	}
	if _, err := a.client.UpdateSettings(r.Context(), token(r), upd); err != nil {
		failWrite(a.sessions, w, r, err, "Failed to save settings.", "/admin/settings")
		return
	}
	a.pageCache.InvalidateAll(r.Context())
	setFlash(w, "success", "Settings saved.")
	http.Redirect(w, r, "/admin/settings", http.StatusSeeOther)
}

// --- Hero carousel ---

// HeroPage lists all slides, including disabled ones, in display order.
func (a *Admin) HeroPage(w http.ResponseWriter, r *http.Request) {
	items, err := a.client.AdminHeroCarousel(r.Context(), token(r))
	if err != nil {
		a.fail(w, r, err, "Failed to load hero carousel.")
		return
	}
	a.page(w, r, "hero", "Hero Carousel", "hero", map[string]any{
		"Items": items,
	})
}

// HeroUpdate changes a slide's alt text and visibility.
func (a *Admin) HeroUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	alt := r.FormValue("alt")
	enabled := r.FormValue("enabled") == "on"

	upd := api.HeroItemUpdate{Alt: &alt, Enabled: &enabled}
	if _, err := a.client.UpdateHeroItem(r.Context(), token(r), id, upd); err != nil {
		failWrite(a.sessions, w, r, err, "Failed to update slide.", "/admin/hero")
		return
	}
	a.pageCache.Invalidate(r.Context(), cache.HomeKey())
	setFlash(w, "success", "Slide updated.")
	http.Redirect(w, r, "/admin/hero", http.StatusSeeOther)
}

// HeroDelete removes a slide permanently.
func (a *Admin) HeroDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := a.client.DeleteHeroItem(r.Context(), token(r), id); err != nil {
		failWrite(a.sessions, w, r, err, "Failed to delete slide.", "/admin/hero")
		return
	}
	a.pageCache.Invalidate(r.Context(), cache.HomeKey())
	setFlash(w, "success", "Slide deleted.")
	http.Redirect(w, r, "/admin/hero", http.StatusSeeOther)
}

// HeroReorder persists a new slide order. The form posts the full id list
// in the desired order, one "order" value per slide.
func (a *Admin) HeroReorder(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		failWrite(a.sessions, w, r, err, "Invalid reorder request.", "/admin/hero")
		return
	}
	ids := r.PostForm["order"]
	if len(ids) == 0 {
		http.Redirect(w, r, "/admin/hero", http.StatusSeeOther)
		return
	}
	if err := a.client.ReorderHeroCarousel(r.Context(), token(r), ids); err != nil {
		failWrite(a.sessions, w, r, err, "Failed to reorder slides.", "/admin/hero")
		return
	}
	a.pageCache.Invalidate(r.Context(), cache.HomeKey())
	setFlash(w, "success", "Order saved.")
	http.Redirect(w, r, "/admin/hero", http.StatusSeeOther)
}

// --- Weddings ---

// WeddingsPage lists all portfolio weddings.
func (a *Admin) WeddingsPage(w http.ResponseWriter, r *http.Request) {
	weddings, err := a.client.Weddings(r.Context(), 0)
	if err != nil {
		a.fail(w, r, err, "Failed to load weddings.")
		return
	}
	a.page(w, r, "weddings", "Weddings", "weddings", map[string]any{
		"Weddings": weddings,
	})
}

func weddingFormFromRequest(r *http.Request) api.WeddingForm {
	return api.WeddingForm{
		BrideName: r.FormValue("brideName"),
		GroomName: r.FormValue("groomName"),
		Date:      r.FormValue("date"),
		Location:  r.FormValue("location"),
	}
}

// WeddingCreate creates a wedding. The cover image is mandatory.
func (a *Admin) WeddingCreate(w http.ResponseWriter, r *http.Request) {
	form := weddingFormFromRequest(r)
	if form.BrideName == "" || form.GroomName == "" {
		setFlash(w, "error", "Bride and groom names are required.")
		http.Redirect(w, r, "/admin/weddings", http.StatusSeeOther)
		return
	}

	filename, cover, err := requiredImage(r, "coverImage")
	if err != nil {
		setFlash(w, "error", err.Error())
		http.Redirect(w, r, "/admin/weddings", http.StatusSeeOther)
		return
	}

	if _, err := a.client.CreateWedding(r.Context(), token(r), form, filename, cover); err != nil {
		failWrite(a.sessions, w, r, err, "Failed to create wedding.", "/admin/weddings")
		return
	}
	a.pageCache.Invalidate(r.Context(), cache.HomeKey())
	setFlash(w, "success", "Wedding created.")
	http.Redirect(w, r, "/admin/weddings", http.StatusSeeOther)
}

// WeddingUpdate edits a wedding's fields; a new cover is optional and the
// existing one is kept when none is uploaded.
func (a *Admin) WeddingUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	form := weddingFormFromRequest(r)

	filename, cover, err := optionalImage(r, "coverImage")
	if err != nil {
		setFlash(w, "error", err.Error())
		http.Redirect(w, r, "/admin/weddings", http.StatusSeeOther)
		return
	}

	if _, err := a.client.UpdateWedding(r.Context(), token(r), id, form, filename, cover); err != nil {
		failWrite(a.sessions, w, r, err, "Failed to update wedding.", "/admin/weddings")
		return
	}
	a.invalidateWedding(r, id)
	setFlash(w, "success", "Wedding updated.")
	http.Redirect(w, r, "/admin/weddings", http.StatusSeeOther)
}

// WeddingDelete removes a wedding and its gallery.
func (a *Admin) WeddingDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := a.client.DeleteWedding(r.Context(), token(r), id); err != nil {
		failWrite(a.sessions, w, r, err, "Failed to delete wedding.", "/admin/weddings")
		return
	}
	a.invalidateWedding(r, id)
	setFlash(w, "success", "Wedding deleted.")
	http.Redirect(w, r, "/admin/weddings", http.StatusSeeOther)
}

func (a *Admin) invalidateWedding(r *http.Request, id string) {
	a.pageCache.Invalidate(r.Context(), cache.HomeKey())
	a.pageCache.Invalidate(r.Context(), cache.WeddingKey(id))
}

// --- Packages ---

// PackagesPage lists all photography packages.
func (a *Admin) PackagesPage(w http.ResponseWriter, r *http.Request) {
	packages, err := a.client.Packages(r.Context())
	if err != nil {
		a.fail(w, r, err, "Failed to load packages.")
		return
	}
	a.page(w, r, "packages", "Packages", "packages", map[string]any{
		"Packages": packages,
	})
}

func packageFormFromRequest(r *http.Request) api.PackageForm {
	return api.PackageForm{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Pricing:     r.FormValue("pricing"),
	}
}

// PackageCreate creates a package. The thumbnail is mandatory.
func (a *Admin) PackageCreate(w http.ResponseWriter, r *http.Request) {
	form := packageFormFromRequest(r)
	if form.Title == "" {
		setFlash(w, "error", "Package title is required.")
		http.Redirect(w, r, "/admin/packages", http.StatusSeeOther)
		return
	}

	filename, thumb, err := requiredImage(r, "thumbnail")
	if err != nil {
		setFlash(w, "error", err.Error())
		http.Redirect(w, r, "/admin/packages", http.StatusSeeOther)
		return
	}

	if _, err := a.client.CreatePackage(r.Context(), token(r), form, filename, thumb); err != nil {
		failWrite(a.sessions, w, r, err, "Failed to create package.", "/admin/packages")
		return
	}
	a.pageCache.Invalidate(r.Context(), cache.HomeKey())
	setFlash(w, "success", "Package created.")
	http.Redirect(w, r, "/admin/packages", http.StatusSeeOther)
}

// PackageUpdate edits a package; a new thumbnail is optional.
func (a *Admin) PackageUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	form := packageFormFromRequest(r)

	filename, thumb, err := optionalImage(r, "thumbnail")
	if err != nil {
		setFlash(w, "error", err.Error())
		http.Redirect(w, r, "/admin/packages", http.StatusSeeOther)
		return
	}

	if _, err := a.client.UpdatePackage(r.Context(), token(r), id, form, filename, thumb); err != nil {
		failWrite(a.sessions, w, r, err, "Failed to update package.", "/admin/packages")
		return
	}
	a.pageCache.Invalidate(r.Context(), cache.HomeKey())
	setFlash(w, "success", "Package updated.")
	http.Redirect(w, r, "/admin/packages", http.StatusSeeOther)
}

// PackageDelete removes a package.
func (a *Admin) PackageDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := a.client.DeletePackage(r.Context(), token(r), id); err != nil {
		failWrite(a.sessions, w, r, err, "Failed to delete package.", "/admin/packages")
		return
	}
	a.pageCache.Invalidate(r.Context(), cache.HomeKey())
	setFlash(w, "success", "Package deleted.")
	http.Redirect(w, r, "/admin/packages", http.StatusSeeOther)
}

// --- Films ---

// FilmsPage renders the featured film editor.
func (a *Admin) FilmsPage(w http.ResponseWriter, r *http.Request) {
	film, err := a.client.FeaturedFilm(r.Context())
	if err != nil && !api.IsNotFound(err) {
		a.fail(w, r, err, "Failed to load featured film.")
		return
	}
	a.page(w, r, "films", "Films", "films", map[string]any{
		"Film": film,
	})
}

// FilmsSubmit saves the featured film's title and video URL.
func (a *Admin) FilmsSubmit(w http.ResponseWriter, r *http.Request) {
	upd := models.FilmUpdate{
		Title:    r.FormValue("title"),
		VideoURL: r.FormValue("videoUrl"),
	}
	if _, err := a.client.UpdateFeaturedFilm(r.Context(), token(r), upd); err != nil {
		failWrite(a.sessions, w, r, err, "Failed to save film.", "/admin/films")
		return
	}
	a.pageCache.Invalidate(r.Context(), cache.HomeKey())
	setFlash(w, "success", "Film saved.")
	http.Redirect(w, r, "/admin/films", http.StatusSeeOther)
}

// --- About ---

// AboutPage renders the bio editor with the feature list.
func (a *Admin) AboutPage(w http.ResponseWriter, r *http.Request) {
	about, err := a.client.About(r.Context())
	if err != nil && !api.IsNotFound(err) {
		a.fail(w, r, err, "Failed to load about content.")
		return
	}
	a.page(w, r, "about", "About", "about", map[string]any{
		"About": about,
	})
}

// AboutSubmit saves the photographer name, bio, and optional portrait.
func (a *Admin) AboutSubmit(w http.ResponseWriter, r *http.Request) {
	filename, image, err := optionalImage(r, "image")
	if err != nil {
		setFlash(w, "error", err.Error())
		http.Redirect(w, r, "/admin/about", http.StatusSeeOther)
		return
	}

	name := r.FormValue("name")
	bio := r.FormValue("bio")
	if _, err := a.client.UpdateAbout(r.Context(), token(r), name, bio, filename, image); err != nil {
		failWrite(a.sessions, w, r, err, "Failed to save about content.", "/admin/about")
		return
	}
	a.pageCache.Invalidate(r.Context(), cache.HomeKey())
	setFlash(w, "success", "About content saved.")
	http.Redirect(w, r, "/admin/about", http.StatusSeeOther)
}

// AboutFeaturesSubmit replaces the feature list. Features save separately
// from the bio so a feature edit cannot clobber unsaved bio text. Rows
// with an empty title are dropped.
func (a *Admin) AboutFeaturesSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		failWrite(a.sessions, w, r, err, "Invalid features form.", "/admin/about")
		return
	}

	titles := r.PostForm["feature_title"]
	descriptions := r.PostForm["feature_description"]

	var features []models.AboutFeature
	for i, title := range titles {
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		f := models.AboutFeature{Title: title}
		if i < len(descriptions) {
			f.Description = strings.TrimSpace(descriptions[i])
		}
		features = append(features, f)
	}

	if _, err := a.client.UpdateAboutFeatures(r.Context(), token(r), features); err != nil {
		failWrite(a.sessions, w, r, err, "Failed to save features.", "/admin/about")
		return
	}
	a.pageCache.Invalidate(r.Context(), cache.HomeKey())
	setFlash(w, "success", "Features saved.")
	http.Redirect(w, r, "/admin/about", http.StatusSeeOther)
}

// --- Section content ---

// SectionsPage renders the copy editors for every public section.
func (a *Admin) SectionsPage(w http.ResponseWriter, r *http.Request) {
	tok := token(r)
	sections := make([]*models.SectionContent, 0, len(models.SectionKeys))
	for _, key := range models.SectionKeys {
		s, err := a.client.AdminSection(r.Context(), tok, key)
		if err != nil {
			if api.IsUnauthorized(err) {
				forceLogout(a.sessions, w, r)
				return
			}
			s = &models.SectionContent{SectionKey: key}
		}
		sections = append(sections, s)
	}
	a.page(w, r, "sections", "Section Content", "sections", map[string]any{
		"Sections": sections,
	})
}

// SectionSubmit saves the copy of one section, identified by its key.
func (a *Admin) SectionSubmit(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	known := false
	for _, k := range models.SectionKeys {
		if k == key {
			known = true
			break
		}
	}
	if !known {
		http.NotFound(w, r)
		return
	}

	upd := models.SectionContentUpdate{
		Title:       r.FormValue("title"),
		Subtitle:    r.FormValue("subtitle"),
		Description: r.FormValue("description"),
	}
	if _, err := a.client.UpdateSection(r.Context(), token(r), key, upd); err != nil {
		failWrite(a.sessions, w, r, err, "Failed to save section.", "/admin/sections")
		return
	}
	a.pageCache.InvalidateAll(r.Context())
	setFlash(w, "success", "Section saved.")
	http.Redirect(w, r, "/admin/sections", http.StatusSeeOther)
}

// --- Inquiries ---

// InquiriesPage lists contact form submissions, newest first. Read-only.
func (a *Admin) InquiriesPage(w http.ResponseWriter, r *http.Request) {
	inquiries, err := a.client.Inquiries(r.Context(), token(r))
	if err != nil {
		a.fail(w, r, err, "Failed to load inquiries.")
		return
	}
	a.page(w, r, "inquiries", "Inquiries", "inquiries", map[string]any{
		"Inquiries": inquiries,
	})
}
