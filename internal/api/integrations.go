package api

import (
	"context"
	"net/http"
	"strconv"

	"weddingfolio/internal/models"
)

// SocialMedia fetches the social link map. Public; when the block is
// disabled the backend still answers with Enabled=false.
func (c *Client) SocialMedia(ctx context.Context) (*models.SocialMediaLinks, error) {
	var links models.SocialMediaLinks
	if err := c.getJSON(ctx, "/admin/social-media", "", &links); err != nil {
		return nil, err
	}
	return &links, nil
}

// UpdateSocialMedia saves the social link map and enabled flag.
func (c *Client) UpdateSocialMedia(ctx context.Context, tok Token, links models.SocialMediaLinks) (*models.SocialMediaLinks, error) {
	var updated models.SocialMediaLinks
	if err := c.sendJSON(ctx, http.MethodPut, "/admin/social-media", tok, links, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// FacebookSettings fetches the public Facebook config (never includes the
// access token). Disabled integrations answer with Enabled=false.
func (c *Client) FacebookSettings(ctx context.Context) (*models.FacebookSettings, error) {
	var s models.FacebookSettings
	if err := c.getJSON(ctx, "/facebook/settings", "", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// FacebookPosts fetches the cached page post mirror. Public; an empty
// list is the normal answer when the integration is off or failing.
func (c *Client) FacebookPosts(ctx context.Context) ([]models.FacebookPost, error) {
	var posts []models.FacebookPost
	if err := c.getJSON(ctx, "/facebook/posts", "", &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// AdminFacebookSettings fetches the full Facebook config for editing.
func (c *Client) AdminFacebookSettings(ctx context.Context, tok Token) (*models.FacebookSettings, error) {
	var s models.FacebookSettings
	if err := c.getJSON(ctx, "/admin/facebook/settings", tok, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateFacebookSettings saves the Facebook integration config.
func (c *Client) UpdateFacebookSettings(ctx context.Context, tok Token, s models.FacebookSettings) (*models.FacebookSettings, error) {
	var updated models.FacebookSettings
	if err := c.sendJSON(ctx, http.MethodPut, "/admin/facebook/settings", tok, s, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// TestFacebook verifies the given (possibly unsaved) credentials against
// the Graph API without persisting anything.
func (c *Client) TestFacebook(ctx context.Context, tok Token, s models.FacebookSettings) (*models.FacebookTestResult, error) {
	var result models.FacebookTestResult
	if err := c.sendJSON(ctx, http.MethodPost, "/admin/facebook/test", tok, s, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// YouTubeSettings fetches the public YouTube config (no API key). Public.
func (c *Client) YouTubeSettings(ctx context.Context) (*models.YouTubeSettings, error) {
	var s models.YouTubeSettings
	if err := c.getJSON(ctx, "/youtube/settings", "", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// YouTubeVideos fetches the cached channel video mirror. Public.
func (c *Client) YouTubeVideos(ctx context.Context) ([]models.YouTubeVideo, error) {
	var videos []models.YouTubeVideo
	if err := c.getJSON(ctx, "/youtube/videos", "", &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// AdminYouTubeSettings fetches the full YouTube config for editing.
func (c *Client) AdminYouTubeSettings(ctx context.Context, tok Token) (*models.YouTubeSettings, error) {
	var s models.YouTubeSettings
	if err := c.getJSON(ctx, "/admin/youtube/settings", tok, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateYouTubeSettings saves the YouTube integration config.
func (c *Client) UpdateYouTubeSettings(ctx context.Context, tok Token, s models.YouTubeSettings) (*models.YouTubeSettings, error) {
	var updated models.YouTubeSettings
	if err := c.sendJSON(ctx, http.MethodPut, "/admin/youtube/settings", tok, s, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// TestYouTube verifies the given channel ID and API key against the
// YouTube Data API without persisting anything. The verification endpoint
// takes form fields rather than JSON.
func (c *Client) TestYouTube(ctx context.Context, tok Token, channelID, apiKey string, maxVideos int) (*models.YouTubeTestResult, error) {
	var result models.YouTubeTestResult
	fields := map[string]string{
		"channel_id": channelID,
		"api_key":    apiKey,
		"max_videos": strconv.Itoa(maxVideos),
	}
	if err := c.sendMultipart(ctx, http.MethodPost, "/admin/youtube/test", tok, fields, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
