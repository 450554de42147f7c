// Package session provides Valkey-backed HTTP session management for the
// admin panel. A session holds the bearer token issued by the backend API;
// sessions are identified by a secure cookie and stored as JSON in Valkey
// with automatic TTL expiry, so an app restart does not force re-login.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"weddingfolio/internal/api"
)

const (
	// CookieName is the name of the session cookie sent to the browser.
	CookieName = "wf_session"

	// DefaultTTL is how long a session lives in Valkey before automatic
	// expiry. Matches the backend token lifetime (24h); there is no refresh
	// mechanism; once the backend rejects the token the UI forces logout.
	DefaultTTL = 24 * time.Hour

	// keyPrefix namespaces session keys in Valkey to avoid collisions.
	keyPrefix = "session:"

	// idLength is the byte length of the random session ID (32 bytes = 64 hex chars).
	idLength = 32
)

// Data holds the session payload stored in Valkey: the admin identity and
// the opaque bearer credential used for privileged API calls.
type Data struct {
	Username  string    `json:"username"`
	Token     api.Token `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthHeader returns the header map to attach to privileged requests:
// empty when no credential is held, else the bearer Authorization header.
func (d *Data) AuthHeader() map[string]string {
	if d == nil || d.Token == "" {
		return map[string]string{}
	}
	return map[string]string{"Authorization": "Bearer " + string(d.Token)}
}

// Store manages session lifecycle in Valkey.
type Store struct {
	client *redis.Client
	ttl    time.Duration
	secure bool
}

// NewStore creates a session store backed by the given Valkey client.
// secureCookies marks session cookies HTTPS-only (set in production).
func NewStore(client *redis.Client, secureCookies bool) *Store {
	return &Store{
		client: client,
		ttl:    DefaultTTL,
		secure: secureCookies,
	}
}

// Create generates a new session, stores it in Valkey, and sets the
// session cookie on the response. Returns the session ID.
func (s *Store) Create(ctx context.Context, w http.ResponseWriter, data *Data) (string, error) {
	id, err := generateID()
	if err != nil {
		return "", fmt.Errorf("session create: %w", err)
	}

	data.CreatedAt = time.Now()

	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("session marshal: %w", err)
	}

	if err := s.client.Set(ctx, keyPrefix+id, payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("session store: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.ttl.Seconds()),
	})

	return id, nil
}

// Get retrieves session data from Valkey using the session ID from the
// request cookie. Returns nil if no valid session exists.
func (s *Store) Get(ctx context.Context, r *http.Request) (*Data, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil, nil // No cookie = no session (not an error)
	}

	payload, err := s.client.Get(ctx, keyPrefix+cookie.Value).Bytes()
	if err == redis.Nil {
		return nil, nil // Session expired or doesn't exist
	}
	if err != nil {
		return nil, fmt.Errorf("session get: %w", err)
	}

	var data Data
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("session unmarshal: %w", err)
	}

	return &data, nil
}

// Destroy removes the session from Valkey and clears the cookie. Used both
// for user-initiated logout and for forced logout after the backend rejects
// the credential or after a credentials change. The cookie is cleared even
// when the Valkey delete fails; the error is returned for the caller to log.
func (s *Store) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil // No cookie, nothing to destroy
	}

	delErr := s.client.Del(ctx, keyPrefix+cookie.Value).Err()

	// Expire the cookie immediately.
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	if delErr != nil {
		return fmt.Errorf("session delete: %w", delErr)
	}
	return nil
}

// generateID creates a cryptographically random session identifier.
func generateID() (string, error) {
	b := make([]byte, idLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
