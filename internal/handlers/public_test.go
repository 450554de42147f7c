package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"weddingfolio/internal/carousel"
)

func TestHeroStateCookieRoundTrip(t *testing.T) {
	state := carousel.State{
		Index:    2,
		LockedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		LastAuto: time.Date(2025, 6, 1, 12, 0, 1, 0, time.UTC),
	}

	w := httptest.NewRecorder()
	writeHeroState(w, state)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != heroStateCookie {
		t.Fatalf("cookies = %v", cookies)
	}
	if !cookies[0].HttpOnly {
		t.Error("hero state cookie should be HttpOnly")
	}

	r := httptest.NewRequest("POST", "/hero/next", nil)
	r.AddCookie(cookies[0])

	got, ok := readHeroState(r)
	if !ok {
		t.Fatal("readHeroState: no state")
	}
	if got.Index != 2 {
		t.Errorf("index = %d, want 2", got.Index)
	}
	if !got.LockedAt.Equal(state.LockedAt) {
		t.Errorf("lockedAt = %v, want %v", got.LockedAt, state.LockedAt)
	}
}

func TestReadHeroStateMissingCookie(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	if _, ok := readHeroState(r); ok {
		t.Error("expected no state without cookie")
	}
}

func TestReadHeroStateGarbageCookie(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(&http.Cookie{Name: heroStateCookie, Value: "not-base64!"})
	if _, ok := readHeroState(r); ok {
		t.Error("expected no state for undecodable cookie")
	}
}

func TestFlashRoundTrip(t *testing.T) {
	w := httptest.NewRecorder()
	setFlash(w, "success", "Saved.")

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != flashCookieName {
		t.Fatalf("cookies = %v", cookies)
	}

	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(cookies[0])

	w2 := httptest.NewRecorder()
	flash := popFlash(w2, r)
	if flash == nil {
		t.Fatal("popFlash returned nil")
	}
	if flash.Type != "success" || flash.Message != "Saved." {
		t.Errorf("flash = %+v", flash)
	}

	// popFlash must clear the cookie.
	cleared := w2.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge != -1 {
		t.Errorf("expected clearing cookie, got %v", cleared)
	}
}

func TestPopFlashNoCookie(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	if flash := popFlash(httptest.NewRecorder(), r); flash != nil {
		t.Errorf("flash = %+v, want nil", flash)
	}
}

func TestSiteTitleFallback(t *testing.T) {
	if got := siteTitle(nil); got != "Wedding Photography" {
		t.Errorf("siteTitle(nil) = %q", got)
	}
}
