package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"weddingfolio/internal/api"
	"weddingfolio/internal/cache"
	"weddingfolio/internal/carousel"
	"weddingfolio/internal/models"
	"weddingfolio/internal/render"
)

// recentWeddingsLimit caps the weddings shown on the homepage.
const recentWeddingsLimit = 6

// heroStateCookie keeps each visitor's carousel position between slide
// requests.
const heroStateCookie = "wf_hero"

// Public groups handlers for the public-facing site. Every section
// degrades to "render nothing" when its data is missing, its fetch fails,
// or its enabled flag is off; a broken integration never breaks the page.
type Public struct {
	renderer  *render.Renderer
	client    *api.Client
	pageCache *cache.PageCache
}

// NewPublic creates a new Public handler group.
func NewPublic(renderer *render.Renderer, client *api.Client, pageCache *cache.PageCache) *Public {
	return &Public{
		renderer:  renderer,
		client:    client,
		pageCache: pageCache,
	}
}

// homeData aggregates every homepage section. Nil slices and nil pointers
// mean "section not shown".
type homeData struct {
	Settings *models.SiteSettings
	Hero     []models.HeroCarouselItem
	Weddings []models.Wedding
	Film     *models.Film
	Packages []models.Package
	About    *models.About
	Sections map[string]*models.SectionContent
	Social   []models.SocialLink
	Facebook []models.FacebookPost
	YouTube  *models.YouTubeSettings
	Videos   []models.YouTubeVideo
}

// Home renders the homepage. All section fetches run concurrently and all
// must settle before the page is rendered, so dynamic copy never flashes
// in after first paint. The rendered page is cached in Valkey and shared
// across visitors: the hero always renders at slide zero, and the HTMX
// fragment endpoints pick up each visitor's position from their cookie.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Serve from the page cache unless the request carries one-time state
	// (flash after a contact submission).
	cacheable := r.URL.RawQuery == "" && !flashPending(r)
	if cacheable {
		if cached, ok := p.pageCache.Get(ctx, cache.HomeKey()); ok {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(cached)
			return
		}
	}

	var data homeData
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		data.Settings = fetchOrNil(p.client.Settings)(gctx, "settings")
		return nil
	})
	g.Go(func() error {
		if items, err := p.client.HeroCarousel(gctx); err == nil {
			data.Hero = items
		} else {
			slog.Warn("hero fetch failed", "error", err)
		}
		return nil
	})
	g.Go(func() error {
		if weddings, err := p.client.Weddings(gctx, recentWeddingsLimit); err == nil {
			data.Weddings = weddings
		} else {
			slog.Warn("weddings fetch failed", "error", err)
		}
		return nil
	})
	g.Go(func() error {
		data.Film = fetchOrNil(p.client.FeaturedFilm)(gctx, "film")
		return nil
	})
	g.Go(func() error {
		if packages, err := p.client.Packages(gctx); err == nil {
			data.Packages = packages
		} else {
			slog.Warn("packages fetch failed", "error", err)
		}
		return nil
	})
	g.Go(func() error {
		data.About = fetchOrNil(p.client.About)(gctx, "about")
		return nil
	})
	g.Go(func() error {
		data.Sections = p.fetchSections(gctx)
		return nil
	})
	g.Go(func() error {
		if links, err := p.client.SocialMedia(gctx); err == nil {
			data.Social = links.ActiveLinks()
		} else {
			slog.Warn("social fetch failed", "error", err)
		}
		return nil
	})
	g.Go(func() error {
		data.Facebook = p.fetchFacebookPosts(gctx)
		return nil
	})
	g.Go(func() error {
		data.YouTube, data.Videos = p.fetchYouTube(gctx)
		return nil
	})

	g.Wait()

	pageData := &render.PageData{
		Title: siteTitle(data.Settings),
		Flash: popFlash(w, r),
		Data:  map[string]any{"Home": data},
	}

	out, err := p.renderer.HTML(r, "home", pageData)
	if err != nil {
		slog.Error("render homepage failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if cacheable {
		p.pageCache.Set(ctx, cache.HomeKey(), out)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(out)
}

// WeddingGallery renders the full gallery page of one wedding. A deleted
// or unknown wedding renders a not-found page rather than an error.
func (p *Public) WeddingGallery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if cached, ok := p.pageCache.Get(ctx, cache.WeddingKey(id)); ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(cached)
		return
	}

	wedding, err := p.client.Wedding(ctx, id)
	if err != nil {
		if api.IsNotFound(err) {
			w.WriteHeader(http.StatusNotFound)
			p.renderer.Page(w, r, "wedding_missing", &render.PageData{Title: "Wedding Not Found"})
			return
		}
		slog.Error("wedding fetch failed", "error", err, "id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	settings, _ := p.client.Settings(ctx)

	out, err := p.renderer.HTML(r, "wedding", &render.PageData{
		Title: wedding.CoupleNames() + " — " + siteTitle(settings),
		Data:  map[string]any{"Wedding": wedding, "Settings": settings},
	})
	if err != nil {
		slog.Error("render wedding failed", "error", err, "id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.pageCache.Set(ctx, cache.WeddingKey(id), out)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(out)
}

// ContactSubmit handles the public contact form. Client-side required
// attributes are the first line of defence; this re-validation guarantees
// an incomplete inquiry never reaches the backend.
func (p *Public) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	inquiry := models.ContactInquiryCreate{
		Name:        r.FormValue("name"),
		Email:       r.FormValue("email"),
		Phone:       r.FormValue("phone"),
		WeddingDate: r.FormValue("weddingDate"),
		Message:     r.FormValue("message"),
	}

	if msg := validateInquiry(inquiry); msg != "" {
		setFlash(w, "error", msg)
		http.Redirect(w, r, "/#contact", http.StatusSeeOther)
		return
	}

	if _, err := p.client.SubmitInquiry(r.Context(), inquiry); err != nil {
		slog.Error("inquiry submit failed", "error", err)
		setFlash(w, "error", api.ErrorMessage(err, "Something went wrong. Please try again."))
		http.Redirect(w, r, "/#contact", http.StatusSeeOther)
		return
	}

	setFlash(w, "success", "Thank you! We will get back to you soon.")
	http.Redirect(w, r, "/#contact", http.StatusSeeOther)
}

// --- Hero carousel navigation ---
//
// The carousel is driven by HTMX: prev/next/dot buttons and a 5-second
// polling trigger post here, and the handler answers with the new slide
// fragment. Rotation state (index, transition lock, auto-advance window)
// lives in a visitor cookie, so the sequencing rules are enforced in one
// place regardless of how fast the buttons are clicked.

// CarouselMove handles manual navigation: {move} is "next", "prev", or a
// slide index for dot navigation.
func (p *Public) CarouselMove(w http.ResponseWriter, r *http.Request) {
	p.carouselStep(w, r, chi.URLParam(r, "move"), false)
}

// CarouselAdvance handles the fixed-period automatic advance.
func (p *Public) CarouselAdvance(w http.ResponseWriter, r *http.Request) {
	p.carouselStep(w, r, "", true)
}

func (p *Public) carouselStep(w http.ResponseWriter, r *http.Request, move string, auto bool) {
	items, err := p.client.HeroCarousel(r.Context())
	if err != nil || len(items) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	state, _ := readHeroState(r)
	rot := carousel.Restore(len(items), state)
	now := time.Now()

	if auto {
		rot.AdvanceDue(now)
	} else {
		switch move {
		case "next":
			rot.Next(now)
		case "prev":
			rot.Prev(now)
		default:
			if target, err := strconv.Atoi(move); err == nil {
				rot.Goto(now, target)
			}
		}
	}

	writeHeroState(w, rot.Snapshot())

	p.renderer.Page(w, r, "hero_slide", &render.PageData{
		Data: map[string]any{
			"Items": items,
			"Index": rot.Index(),
		},
	})
}

// fetchSections loads the copy overrides for every section key.
func (p *Public) fetchSections(ctx context.Context) map[string]*models.SectionContent {
	sections := make(map[string]*models.SectionContent, len(models.SectionKeys))
	for _, key := range models.SectionKeys {
		if s, err := p.client.Section(ctx, key); err == nil {
			sections[key] = s
		}
	}
	return sections
}

// fetchFacebookPosts returns the post mirror, or nil when the integration
// is disabled or unreachable.
func (p *Public) fetchFacebookPosts(ctx context.Context) []models.FacebookPost {
	settings, err := p.client.FacebookSettings(ctx)
	if err != nil || settings == nil || !settings.Enabled {
		return nil
	}
	posts, err := p.client.FacebookPosts(ctx)
	if err != nil {
		slog.Warn("facebook posts fetch failed", "error", err)
		return nil
	}
	return posts
}

// fetchYouTube returns the settings and video mirror, or nils when the
// integration is disabled or unreachable.
func (p *Public) fetchYouTube(ctx context.Context) (*models.YouTubeSettings, []models.YouTubeVideo) {
	settings, err := p.client.YouTubeSettings(ctx)
	if err != nil || settings == nil || !settings.Enabled {
		return nil, nil
	}
	videos, err := p.client.YouTubeVideos(ctx)
	if err != nil || len(videos) == 0 {
		return nil, nil
	}
	return settings, videos
}

// fetchOrNil adapts a singleton fetch into "value or nil with a warning".
func fetchOrNil[T any](fetch func(context.Context) (*T, error)) func(context.Context, string) *T {
	return func(ctx context.Context, what string) *T {
		v, err := fetch(ctx)
		if err != nil {
			slog.Warn("section fetch failed", "section", what, "error", err)
			return nil
		}
		return v
	}
}

// siteTitle returns the site name, falling back to a neutral default.
func siteTitle(s *models.SiteSettings) string {
	if s == nil || s.SiteName == "" {
		return "Wedding Photography"
	}
	return s.SiteName
}

// readHeroState decodes the carousel state cookie.
func readHeroState(r *http.Request) (carousel.State, bool) {
	cookie, err := r.Cookie(heroStateCookie)
	if err != nil || cookie.Value == "" {
		return carousel.State{}, false
	}
	raw, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return carousel.State{}, false
	}
	var state carousel.State
	if err := json.Unmarshal(raw, &state); err != nil {
		return carousel.State{}, false
	}
	return state, true
}

// writeHeroState stores the carousel state cookie.
func writeHeroState(w http.ResponseWriter, state carousel.State) {
	raw, err := json.Marshal(state)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     heroStateCookie,
		Value:    base64.URLEncoding.EncodeToString(raw),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   3600,
	})
}

// flashPending reports whether a flash is waiting without consuming it.
func flashPending(r *http.Request) bool {
	cookie, err := r.Cookie(flashCookieName)
	return err == nil && cookie.Value != ""
}
