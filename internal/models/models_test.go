package models

import "testing"

func TestResolveImageURL(t *testing.T) {
	backend := "http://localhost:8001"

	tests := []struct {
		name string
		ref  string
		want string
	}{
		{"empty", "", ""},
		{"absolute http", "http://cdn.example.com/a.jpg", "http://cdn.example.com/a.jpg"},
		{"absolute https", "https://cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg"},
		{"server relative", "/api/uploads/a.jpg", "http://localhost:8001/api/uploads/a.jpg"},
		{"missing leading slash", "api/uploads/a.jpg", "http://localhost:8001/api/uploads/a.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveImageURL(backend, tt.ref); got != tt.want {
				t.Errorf("ResolveImageURL(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}

func TestResolveImageURLTrailingSlashOrigin(t *testing.T) {
	got := ResolveImageURL("http://localhost:8001/", "/api/uploads/a.jpg")
	if got != "http://localhost:8001/api/uploads/a.jpg" {
		t.Errorf("got %q", got)
	}
}

func TestActiveLinksDisabled(t *testing.T) {
	links := SocialMediaLinks{
		Facebook:  "https://facebook.com/studio",
		Instagram: "https://instagram.com/studio",
		Enabled:   false,
	}
	if got := links.ActiveLinks(); got != nil {
		t.Errorf("ActiveLinks on disabled block = %v, want nil", got)
	}
}

func TestActiveLinksSkipsEmptyAndKeepsOrder(t *testing.T) {
	links := SocialMediaLinks{
		Instagram: "https://instagram.com/studio",
		TikTok:    "https://tiktok.com/@studio",
		Enabled:   true,
	}
	active := links.ActiveLinks()
	if len(active) != 2 {
		t.Fatalf("got %d links, want 2", len(active))
	}
	if active[0].Platform != PlatformInstagram || active[1].Platform != PlatformTikTok {
		t.Errorf("order = %v", active)
	}
	if active[0].Label != "Instagram" {
		t.Errorf("label = %q", active[0].Label)
	}
}

func TestCoupleNames(t *testing.T) {
	w := Wedding{BrideName: "Ana", GroomName: "Luka"}
	if got := w.CoupleNames(); got != "Ana & Luka" {
		t.Errorf("CoupleNames = %q", got)
	}
}
