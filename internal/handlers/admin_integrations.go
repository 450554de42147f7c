package handlers

import (
	"net/http"
	"strconv"

	"weddingfolio/internal/api"
	"weddingfolio/internal/cache"
	"weddingfolio/internal/models"
)

// Limits accepted for the post and video mirrors.
const (
	minFeedLimit = 1
	maxFeedLimit = 50

	defaultPostsLimit = 6
	defaultMaxVideos  = 6
)

// --- Social media links ---

// SocialPage renders the social profile URL editor.
func (a *Admin) SocialPage(w http.ResponseWriter, r *http.Request) {
	links, err := a.client.SocialMedia(r.Context())
	if err != nil && !api.IsNotFound(err) {
		a.fail(w, r, err, "Failed to load social media links.")
		return
	}
	if links == nil {
		links = &models.SocialMediaLinks{}
	}
	a.page(w, r, "social", "Social Media", "social", map[string]any{
		"Links": links,
	})
}

// SocialSubmit saves the full set of profile URLs and the enabled flag.
func (a *Admin) SocialSubmit(w http.ResponseWriter, r *http.Request) {
	links := models.SocialMediaLinks{
		Facebook:  r.FormValue("facebook"),
		Instagram: r.FormValue("instagram"),
		YouTube:   r.FormValue("youtube"),
		Twitter:   r.FormValue("twitter"),
		LinkedIn:  r.FormValue("linkedin"),
		Pinterest: r.FormValue("pinterest"),
		TikTok:    r.FormValue("tiktok"),
		Enabled:   r.FormValue("enabled") == "on",
	}
	if _, err := a.client.UpdateSocialMedia(r.Context(), token(r), links); err != nil {
		failWrite(a.sessions, w, r, err, "Failed to save social media links.", "/admin/social")
		return
	}
	a.pageCache.InvalidateAll(r.Context())
	setFlash(w, "success", "Social media links saved.")
	http.Redirect(w, r, "/admin/social", http.StatusSeeOther)
}

// --- Facebook feed ---

// FacebookPage renders the Facebook integration settings. The admin
// variant includes the stored access token.
func (a *Admin) FacebookPage(w http.ResponseWriter, r *http.Request) {
	settings, err := a.client.AdminFacebookSettings(r.Context(), token(r))
	if err != nil {
		if api.IsUnauthorized(err) {
			forceLogout(a.sessions, w, r)
			return
		}
		settings = &models.FacebookSettings{PostsLimit: defaultPostsLimit}
	}
	a.page(w, r, "facebook", "Facebook Feed", "facebook", map[string]any{
		"Settings": settings,
	})
}

func facebookFormFromRequest(r *http.Request) models.FacebookSettings {
	limit, _ := strconv.Atoi(r.FormValue("postsLimit"))
	return models.FacebookSettings{
		PageID:      r.FormValue("pageId"),
		AccessToken: r.FormValue("accessToken"),
		PostsLimit:  clampLimit(limit, minFeedLimit, maxFeedLimit, defaultPostsLimit),
		Enabled:     r.FormValue("enabled") == "on",
	}
}

// FacebookSubmit saves the page ID, access token, post limit, and enabled
// flag.
func (a *Admin) FacebookSubmit(w http.ResponseWriter, r *http.Request) {
	settings := facebookFormFromRequest(r)
	if _, err := a.client.UpdateFacebookSettings(r.Context(), token(r), settings); err != nil {
		failWrite(a.sessions, w, r, err, "Failed to save Facebook settings.", "/admin/facebook")
		return
	}
	a.pageCache.Invalidate(r.Context(), cache.HomeKey())
	setFlash(w, "success", "Facebook settings saved.")
	http.Redirect(w, r, "/admin/facebook", http.StatusSeeOther)
}

// FacebookTest checks the submitted credentials against the Graph API
// without saving them, and re-renders the page with the live result.
func (a *Admin) FacebookTest(w http.ResponseWriter, r *http.Request) {
	settings := facebookFormFromRequest(r)

	result, err := a.client.TestFacebook(r.Context(), token(r), settings)
	if err != nil {
		if api.IsUnauthorized(err) {
			forceLogout(a.sessions, w, r)
			return
		}
		result = &models.FacebookTestResult{
			Success: false,
			Message: api.ErrorMessage(err, "Connection test failed."),
		}
	}

	a.page(w, r, "facebook", "Facebook Feed", "facebook", map[string]any{
		"Settings": &settings,
		"Test":     result,
	})
}

// --- YouTube feed ---

// YouTubePage renders the YouTube integration settings. The admin variant
// includes the stored API key.
func (a *Admin) YouTubePage(w http.ResponseWriter, r *http.Request) {
	settings, err := a.client.AdminYouTubeSettings(r.Context(), token(r))
	if err != nil {
		if api.IsUnauthorized(err) {
			forceLogout(a.sessions, w, r)
			return
		}
		settings = &models.YouTubeSettings{MaxVideos: defaultMaxVideos}
	}
	a.page(w, r, "youtube", "YouTube Feed", "youtube", map[string]any{
		"Settings": settings,
	})
}

func youtubeFormFromRequest(r *http.Request) models.YouTubeSettings {
	limit, _ := strconv.Atoi(r.FormValue("maxVideos"))
	return models.YouTubeSettings{
		ChannelID:          r.FormValue("channelId"),
		APIKey:             r.FormValue("apiKey"),
		MaxVideos:          clampLimit(limit, minFeedLimit, maxFeedLimit, defaultMaxVideos),
		Enabled:            r.FormValue("enabled") == "on",
		SectionTitle:       r.FormValue("sectionTitle"),
		SectionDescription: r.FormValue("sectionDescription"),
	}
}

// YouTubeSubmit saves the channel ID, API key, video limit, section copy,
// and enabled flag.
func (a *Admin) YouTubeSubmit(w http.ResponseWriter, r *http.Request) {
	settings := youtubeFormFromRequest(r)
	if _, err := a.client.UpdateYouTubeSettings(r.Context(), token(r), settings); err != nil {
		failWrite(a.sessions, w, r, err, "Failed to save YouTube settings.", "/admin/youtube")
		return
	}
	a.pageCache.Invalidate(r.Context(), cache.HomeKey())
	setFlash(w, "success", "YouTube settings saved.")
	http.Redirect(w, r, "/admin/youtube", http.StatusSeeOther)
}

// YouTubeTest checks the submitted channel and key against the YouTube
// Data API without saving them.
func (a *Admin) YouTubeTest(w http.ResponseWriter, r *http.Request) {
	settings := youtubeFormFromRequest(r)

	result, err := a.client.TestYouTube(r.Context(), token(r), settings.ChannelID, settings.APIKey, settings.MaxVideos)
	if err != nil {
		if api.IsUnauthorized(err) {
			forceLogout(a.sessions, w, r)
			return
		}
		result = &models.YouTubeTestResult{
			Success: false,
			Message: api.ErrorMessage(err, "Connection test failed."),
		}
	}

	a.page(w, r, "youtube", "YouTube Feed", "youtube", map[string]any{
		"Settings": &settings,
		"Test":     result,
	})
}
