package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"weddingfolio/internal/session"
)

func TestRequireAuthRedirectsAnonymous(t *testing.T) {
	handler := RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached without session")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/admin/dashboard", nil))

	if w.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/admin/login" {
		t.Errorf("redirect = %q", loc)
	}
}

func TestRequireAuthRedirectsEmptyToken(t *testing.T) {
	handler := RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached with tokenless session")
	}))

	r := httptest.NewRequest("GET", "/admin/dashboard", nil)
	ctx := context.WithValue(r.Context(), SessionKey, &session.Data{Username: "admin"})

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r.WithContext(ctx))

	if w.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want 303", w.Code)
	}
}

func TestRequireAuthPassesAuthenticated(t *testing.T) {
	var reached bool
	handler := RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		if sess := SessionFromCtx(r.Context()); sess == nil || sess.Username != "admin" {
			t.Errorf("session in handler = %+v", sess)
		}
	}))

	r := httptest.NewRequest("GET", "/admin/dashboard", nil)
	ctx := context.WithValue(r.Context(), SessionKey, &session.Data{Username: "admin", Token: "tok"})

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r.WithContext(ctx))

	if !reached {
		t.Error("handler not reached")
	}
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestSessionFromCtxMissing(t *testing.T) {
	if sess := SessionFromCtx(context.Background()); sess != nil {
		t.Errorf("session = %+v, want nil", sess)
	}
}
