// Package handlers contains the HTTP handlers for the Weddingfolio app.
// Handlers are grouped by concern (public site, admin panel, auth) and
// receive their dependencies through the handler struct. Every admin
// mutation follows the same shape: submit via the resource client, then
// re-fetch and redirect. The backend-confirmed state is the only state.
package handlers

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"

	"weddingfolio/internal/api"
	"weddingfolio/internal/render"
	"weddingfolio/internal/session"
)

const flashCookieName = "wf_flash"

// setFlash stores a one-time notification in a short-lived cookie, shown
// on the next page render.
func setFlash(w http.ResponseWriter, kind, message string) {
	payload, err := json.Marshal(render.Flash{Type: kind, Message: message})
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.URLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		MaxAge:   60,
	})
}

// popFlash reads and clears the pending flash message, if any.
func popFlash(w http.ResponseWriter, r *http.Request) *render.Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	raw, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var flash render.Flash
	if err := json.Unmarshal(raw, &flash); err != nil {
		return nil
	}
	return &flash
}

// forceLogout destroys the session and sends the user to the login page.
// Used whenever the backend rejects the bearer credential and after a
// successful credentials change.
func forceLogout(sessions *session.Store, w http.ResponseWriter, r *http.Request) {
	if err := sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Warn("session destroy failed", "error", err)
	}
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}

// failWrite handles a failed admin mutation: unauthorized responses force
// logout, everything else becomes a flash message on the originating page.
// No local state was mutated, so the page re-renders exactly as it was.
func failWrite(sessions *session.Store, w http.ResponseWriter, r *http.Request, err error, fallback, backTo string) {
	if api.IsUnauthorized(err) {
		slog.Info("backend rejected credential, forcing logout")
		forceLogout(sessions, w, r)
		return
	}
	slog.Error("admin write failed", "error", err, "path", r.URL.Path)
	setFlash(w, "error", api.ErrorMessage(err, fallback))
	http.Redirect(w, r, backTo, http.StatusSeeOther)
}
