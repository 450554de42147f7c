package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"weddingfolio/internal/models"
)

func TestLoginSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/admin/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var creds map[string]string
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Fatalf("decode login body: %v", err)
		}
		if creds["username"] != "admin" || creds["password"] != "secret" {
			t.Errorf("credentials: got %v", creds)
		}
		json.NewEncoder(w).Encode(map[string]string{
			"access_token": "tok-123",
			"token_type":   "bearer",
		})
	}))
	defer ts.Close()

	tok, err := New(ts.URL).Login(context.Background(), "admin", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if tok != "tok-123" {
		t.Errorf("token = %q, want %q", tok, "tok-123")
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid credentials"})
	}))
	defer ts.Close()

	_, err := New(ts.URL).Login(context.Background(), "admin", "wrong")
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsUnauthorized(err) {
		t.Errorf("IsUnauthorized = false, want true: %v", err)
	}
	if got := ErrorMessage(err, "fallback"); got != "Invalid credentials" {
		t.Errorf("message = %q, want server detail", got)
	}
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]models.ContactInquiry{})
	}))
	defer ts.Close()

	if _, err := New(ts.URL).Inquiries(context.Background(), "tok-abc"); err != nil {
		t.Fatalf("Inquiries: %v", err)
	}
	if gotAuth != "Bearer tok-abc" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok-abc")
	}
}

func TestPublicCallSendsNoAuthHeader(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]models.HeroCarouselItem{})
	}))
	defer ts.Close()

	if _, err := New(ts.URL).HeroCarousel(context.Background()); err != nil {
		t.Fatalf("HeroCarousel: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
}

func TestNotFoundMapping(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Wedding not found"})
	}))
	defer ts.Close()

	_, err := New(ts.URL).Wedding(context.Background(), "missing")
	if !IsNotFound(err) {
		t.Errorf("IsNotFound = false, want true: %v", err)
	}
	if IsUnauthorized(err) {
		t.Error("IsUnauthorized = true for a 404")
	}
}

func TestErrorDetailFallbacks(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		want   string
	}{
		{"detail field", `{"detail":"boom"}`, 400, "boom"},
		{"plain body", "plain failure", 500, "plain failure"},
		{"empty body", "", 502, "Bad Gateway"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errorDetail([]byte(tt.body), tt.status); got != tt.want {
				t.Errorf("errorDetail = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWeddingsLimitQuery(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode([]models.Wedding{})
	}))
	defer ts.Close()

	c := New(ts.URL)
	ctx := context.Background()

	if _, err := c.Weddings(ctx, 6); err != nil {
		t.Fatalf("Weddings: %v", err)
	}
	if gotQuery != "limit=6" {
		t.Errorf("query = %q, want limit=6", gotQuery)
	}

	if _, err := c.Weddings(ctx, 0); err != nil {
		t.Fatalf("Weddings (no limit): %v", err)
	}
	if gotQuery != "" {
		t.Errorf("query = %q, want empty for no limit", gotQuery)
	}
}

func TestCreateHeroItemMultipart(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("alt"); got != "sunset kiss" {
			t.Errorf("alt = %q", got)
		}
		f, fh, err := r.FormFile("image")
		if err != nil {
			t.Fatalf("image part: %v", err)
		}
		defer f.Close()
		if fh.Filename != "slide.jpg" {
			t.Errorf("filename = %q", fh.Filename)
		}
		if ct := fh.Header.Get("Content-Type"); ct != "image/jpeg" {
			t.Errorf("part content type = %q, want image/jpeg", ct)
		}
		var buf bytes.Buffer
		buf.ReadFrom(f)
		if buf.String() != "jpegdata" {
			t.Errorf("file body = %q", buf.String())
		}
		json.NewEncoder(w).Encode(models.HeroCarouselItem{ID: "h1", Alt: "sunset kiss"})
	}))
	defer ts.Close()

	item, err := New(ts.URL).CreateHeroItem(context.Background(), "tok", "sunset kiss", "slide.jpg", strings.NewReader("jpegdata"))
	if err != nil {
		t.Fatalf("CreateHeroItem: %v", err)
	}
	if item.ID != "h1" {
		t.Errorf("item.ID = %q", item.ID)
	}
}

func TestAddWeddingImagesBatch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/weddings/w1/images" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		files := r.MultipartForm.File["images"]
		if len(files) != 2 {
			t.Fatalf("got %d file parts, want 2", len(files))
		}
		json.NewEncoder(w).Encode(models.Wedding{ID: "w1", Images: []string{"a.jpg", "b.jpg"}})
	}))
	defer ts.Close()

	uploads := []Upload{
		{Field: "images", Filename: "a.jpg", Reader: strings.NewReader("aa")},
		{Field: "images", Filename: "b.jpg", Reader: strings.NewReader("bb")},
	}
	wedding, err := New(ts.URL).AddWeddingImages(context.Background(), "tok", "w1", uploads)
	if err != nil {
		t.Fatalf("AddWeddingImages: %v", err)
	}
	if len(wedding.Images) != 2 {
		t.Errorf("images = %v", wedding.Images)
	}
}

func TestDeleteWeddingImageByIndex(t *testing.T) {
	var gotPath, gotMethod string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotMethod = r.URL.Path, r.Method
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	if err := New(ts.URL).DeleteWeddingImage(context.Background(), "tok", "w1", 3); err != nil {
		t.Fatalf("DeleteWeddingImage: %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Errorf("method = %s", gotMethod)
	}
	if gotPath != "/admin/weddings/w1/images/3" {
		t.Errorf("path = %s", gotPath)
	}
}

func TestUpdateWeddingKeepsCoverWhenNoFile(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if _, ok := r.MultipartForm.File["coverImage"]; ok {
			t.Error("coverImage part sent when no file was provided")
		}
		if got := r.FormValue("brideName"); got != "Ana" {
			t.Errorf("brideName = %q", got)
		}
		json.NewEncoder(w).Encode(models.Wedding{ID: "w1", BrideName: "Ana"})
	}))
	defer ts.Close()

	form := WeddingForm{BrideName: "Ana", GroomName: "Luka"}
	if _, err := New(ts.URL).UpdateWedding(context.Background(), "tok", "w1", form, "", nil); err != nil {
		t.Fatalf("UpdateWedding: %v", err)
	}
}

func TestTestYouTubeSendsSnakeCaseFields(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("channel_id"); got != "UC123" {
			t.Errorf("channel_id = %q", got)
		}
		if got := r.FormValue("api_key"); got != "key" {
			t.Errorf("api_key = %q", got)
		}
		json.NewEncoder(w).Encode(models.YouTubeTestResult{Success: true, Message: "ok", ChannelName: "Films"})
	}))
	defer ts.Close()

	res, err := New(ts.URL).TestYouTube(context.Background(), "tok", "UC123", "key", 6)
	if err != nil {
		t.Fatalf("TestYouTube: %v", err)
	}
	if !res.Success || res.ChannelName != "Films" {
		t.Errorf("result = %+v", res)
	}
}

func TestReorderHeroCarouselPayload(t *testing.T) {
	var payload struct {
		Items []struct {
			ID    string `json:"id"`
			Order int    `json:"order"`
		} `json:"items"`
	}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	if err := New(ts.URL).ReorderHeroCarousel(context.Background(), "tok", []string{"b", "a", "c"}); err != nil {
		t.Fatalf("ReorderHeroCarousel: %v", err)
	}
	if len(payload.Items) != 3 {
		t.Fatalf("items = %+v", payload.Items)
	}
	if payload.Items[0].ID != "b" || payload.Items[0].Order != 0 {
		t.Errorf("first item = %+v", payload.Items[0])
	}
	if payload.Items[2].ID != "c" || payload.Items[2].Order != 2 {
		t.Errorf("last item = %+v", payload.Items[2])
	}
}
