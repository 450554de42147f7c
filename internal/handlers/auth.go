package handlers

import (
	"log/slog"
	"net/http"

	"weddingfolio/internal/api"
	"weddingfolio/internal/middleware"
	"weddingfolio/internal/models"
	"weddingfolio/internal/render"
	"weddingfolio/internal/session"
)

// Auth groups authentication and account-security HTTP handlers.
type Auth struct {
	renderer *render.Renderer
	sessions *session.Store
	client   *api.Client
}

// NewAuth creates a new Auth handler group.
func NewAuth(renderer *render.Renderer, sessions *session.Store, client *api.Client) *Auth {
	return &Auth{
		renderer: renderer,
		sessions: sessions,
		client:   client,
	}
}

// LoginPage renders the login form.
func (a *Auth) LoginPage(w http.ResponseWriter, r *http.Request) {
	// Already logged in, go straight to the dashboard.
	if sess := middleware.SessionFromCtx(r.Context()); sess != nil && sess.Token != "" {
		http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
		return
	}

	a.renderer.Page(w, r, "login", &render.PageData{
		Title: "Sign In",
		Flash: popFlash(w, r),
	})
}

// LoginSubmit exchanges the submitted credentials for a backend token and
// stores it in a new session. A rejected login re-renders the form with
// the server's message and changes no state.
func (a *Auth) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	tok, err := a.client.Login(r.Context(), username, password)
	if err != nil {
		a.renderer.Page(w, r, "login", &render.PageData{
			Title: "Sign In",
			Data:  map[string]any{"Error": api.ErrorMessage(err, "Login failed. Please try again."), "Username": username},
		})
		return
	}

	_, err = a.sessions.Create(r.Context(), w, &session.Data{
		Username: username,
		Token:    tok,
	})
	if err != nil {
		slog.Error("session create failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}

// Logout destroys the session and redirects to the login page.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	forceLogout(a.sessions, w, r)
}

// SecurityPage renders the credentials-change form with the current
// account summary.
func (a *Auth) SecurityPage(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var creds *models.AdminCredentials
	if c, err := a.client.Credentials(r.Context(), sess.Token); err == nil {
		creds = c
	} else if api.IsUnauthorized(err) {
		forceLogout(a.sessions, w, r)
		return
	}

	a.renderer.Page(w, r, "security", &render.PageData{
		Title:   "Security",
		Section: "security",
		Flash:   popFlash(w, r),
		Data:    map[string]any{"Credentials": creds},
	})
}

// SecuritySubmit changes the admin username and/or password. The current
// password is mandatory; a new password must match its confirmation and
// meet the minimum length. On success the session is deliberately
// destroyed so the admin re-authenticates with the new credentials.
func (a *Auth) SecuritySubmit(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	form := securityForm{
		OldPassword:     r.FormValue("old_password"),
		NewUsername:     r.FormValue("new_username"),
		NewPassword:     r.FormValue("new_password"),
		ConfirmPassword: r.FormValue("confirm_password"),
	}
	if msg := validateSecurityForm(form); msg != "" {
		setFlash(w, "error", msg)
		http.Redirect(w, r, "/admin/security", http.StatusSeeOther)
		return
	}

	change := models.CredentialsChange{
		OldPassword: form.OldPassword,
		NewUsername: form.NewUsername,
		NewPassword: form.NewPassword,
	}
	if err := a.client.UpdateCredentials(r.Context(), sess.Token, change); err != nil {
		failWrite(a.sessions, w, r, err, "Failed to update credentials.", "/admin/security")
		return
	}

	// The change succeeded, which invalidates the current token on the
	// backend. Destroy the session so the admin re-authenticates.
	slog.Info("admin credentials changed, forcing logout", "username", sess.Username)
	setFlash(w, "success", "Credentials updated. Please sign in again.")
	forceLogout(a.sessions, w, r)
}
