// Package models defines the entity types exchanged with the portfolio
// backend API. Field names and JSON tags follow the backend's wire format
// exactly; a handful of helpers deal with image URL resolution and
// visibility flags shared by the public renderers.
package models

import (
	"strings"
	"time"
)

// SiteSettings is the singleton holding global site identity.
type SiteSettings struct {
	ID       string `json:"id"`
	SiteName string `json:"siteName"`
	LogoURL  string `json:"logoUrl,omitempty"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
}

// SiteSettingsUpdate carries the editable subset of SiteSettings.
type SiteSettingsUpdate struct {
	SiteName string `json:"siteName,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	Address  string `json:"address,omitempty"`
}

// HeroCarouselItem is one slide of the homepage hero carousel.
// Enabled gates public visibility without deleting the slide.
type HeroCarouselItem struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Alt       string    `json:"alt"`
	Order     int       `json:"order"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"createdAt"`
}

// Wedding is a portfolio entry with a cover image and an ordered gallery.
type Wedding struct {
	ID         string    `json:"id"`
	CoverImage string    `json:"coverImage"`
	BrideName  string    `json:"brideName"`
	GroomName  string    `json:"groomName"`
	Date       string    `json:"date"`
	Location   string    `json:"location"`
	Images     []string  `json:"images"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CoupleNames renders the "Bride & Groom" display form used across the site.
func (w Wedding) CoupleNames() string {
	return w.BrideName + " & " + w.GroomName
}

// Package is a photography offering with a thumbnail and gallery.
type Package struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Thumbnail   string   `json:"thumbnail"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Pricing     string   `json:"pricing"`
	Order       int      `json:"order"`
}

// Film is the featured film singleton shown in the films section.
type Film struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	VideoURL   string `json:"videoUrl"`
	Thumbnail  string `json:"thumbnail"`
	IsFeatured bool   `json:"isFeatured"`
}

// FilmUpdate carries the editable fields of the featured film.
type FilmUpdate struct {
	Title    string `json:"title"`
	VideoURL string `json:"videoUrl"`
}

// About is the photographer bio singleton.
type About struct {
	ID       string         `json:"id"`
	Image    string         `json:"image"`
	Name     string         `json:"name"`
	Bio      string         `json:"bio"`
	Features []AboutFeature `json:"features,omitempty"`
}

// AboutFeature is one entry of the ordered feature list under the bio.
// Features are saved independently from the core about fields.
type AboutFeature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SectionContent is the admin-editable copy override for a public section,
// keyed by section name (weddings, films, about, packages, contact).
type SectionContent struct {
	ID          string `json:"id"`
	SectionKey  string `json:"section_key"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	Description string `json:"description,omitempty"`
}

// SectionContentUpdate carries the editable copy fields.
type SectionContentUpdate struct {
	Title       string `json:"title,omitempty"`
	Subtitle    string `json:"subtitle,omitempty"`
	Description string `json:"description,omitempty"`
}

// SectionKeys lists the sections whose copy is editable, in display order.
var SectionKeys = []string{"weddings", "films", "about", "packages", "contact"}

// ContactInquiry is a message submitted through the public contact form.
// Read-only for the admin.
type ContactInquiry struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	WeddingDate string    `json:"weddingDate"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// ContactInquiryCreate is the payload for the public contact form.
type ContactInquiryCreate struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
	WeddingDate string `json:"weddingDate" validate:"required"`
	Message     string `json:"message" validate:"required"`
}

// SocialMediaLinks is the singleton map of social profile URLs shown in
// the footer. Enabled gates the whole block.
type SocialMediaLinks struct {
	ID        string `json:"id"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Pinterest string `json:"pinterest,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
	Enabled   bool   `json:"enabled"`
}

// SocialPlatform identifies one supported social network. Platforms are a
// closed set; rendering metadata lives in the table below instead of
// string-keyed lookups scattered through templates.
type SocialPlatform int

const (
	PlatformFacebook SocialPlatform = iota
	PlatformInstagram
	PlatformYouTube
	PlatformTwitter
	PlatformLinkedIn
	PlatformPinterest
	PlatformTikTok
)

// SocialLink pairs a platform with its configured profile URL.
type SocialLink struct {
	Platform SocialPlatform
	Label    string
	URL      string
}

// ActiveLinks returns the configured links in display order, or nil when
// the block is disabled or no URL is set.
func (s SocialMediaLinks) ActiveLinks() []SocialLink {
	if !s.Enabled {
		return nil
	}
	all := []SocialLink{
		{PlatformFacebook, "Facebook", s.Facebook},
		{PlatformInstagram, "Instagram", s.Instagram},
		{PlatformYouTube, "YouTube", s.YouTube},
		{PlatformTwitter, "Twitter", s.Twitter},
		{PlatformLinkedIn, "LinkedIn", s.LinkedIn},
		{PlatformPinterest, "Pinterest", s.Pinterest},
		{PlatformTikTok, "TikTok", s.TikTok},
	}
	var active []SocialLink
	for _, l := range all {
		if l.URL != "" {
			active = append(active, l)
		}
	}
	return active
}

// FacebookSettings is the Facebook integration config singleton.
// The public variant never includes the access token.
type FacebookSettings struct {
	ID          string `json:"id,omitempty"`
	PageID      string `json:"pageId"`
	AccessToken string `json:"accessToken,omitempty"`
	PostsLimit  int    `json:"postsLimit"`
	Enabled     bool   `json:"enabled"`
}

// FacebookPost is a cached mirror of a page post from the Graph API.
type FacebookPost struct {
	ID          string `json:"id"`
	Message     string `json:"message"`
	CreatedTime string `json:"created_time"`
	Image       string `json:"image,omitempty"`
	Link        string `json:"link,omitempty"`
}

// FacebookTestResult is the response of the connection test endpoint.
type FacebookTestResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	PageName  string `json:"pageName,omitempty"`
	Followers int    `json:"followers,omitempty"`
}

// YouTubeSettings is the YouTube integration config singleton.
type YouTubeSettings struct {
	ID                 string `json:"id,omitempty"`
	ChannelID          string `json:"channel_id"`
	APIKey             string `json:"api_key,omitempty"`
	MaxVideos          int    `json:"max_videos"`
	Enabled            bool   `json:"enabled"`
	SectionTitle       string `json:"section_title"`
	SectionDescription string `json:"section_description"`
}

// YouTubeVideo is a cached mirror of a channel video.
type YouTubeVideo struct {
	VideoID     string `json:"video_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	PublishedAt string `json:"published_at"`
}

// YouTubeTestResult is the response of the connection test endpoint.
type YouTubeTestResult struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	ChannelName string `json:"channelName,omitempty"`
	Subscribers string `json:"subscribers,omitempty"`
	VideoCount  string `json:"videoCount,omitempty"`
}

// AdminCredentials is the admin account summary (password is write-only).
type AdminCredentials struct {
	Username  string    `json:"username"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CredentialsChange is the payload for changing the admin username or
// password. The current password is always required.
type CredentialsChange struct {
	OldPassword string `json:"old_password"`
	NewUsername string `json:"new_username,omitempty"`
	NewPassword string `json:"new_password,omitempty"`
}

// ResolveImageURL turns an image reference returned by the backend into an
// absolute URL. The backend returns either absolute URLs (external images)
// or server-relative paths like /api/uploads/<file> that must be resolved
// against the backend origin.
func ResolveImageURL(backendURL, ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	if !strings.HasPrefix(ref, "/") {
		ref = "/" + ref
	}
	return strings.TrimRight(backendURL, "/") + ref
}
