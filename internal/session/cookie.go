package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// CookieName carries the signed session identifier.
const CookieName = "crs_session"

var errBadCookie = errors.New("session: invalid session cookie")

// CookieCodec signs and verifies the session identifier carried in the
// browser cookie. The secret is process-wide and set once at startup.
// This is tamper-evidence for an anonymous flow, not an auth scheme.
type CookieCodec struct {
	secret []byte
}

// NewCookieCodec creates a codec with the given signing secret.
func NewCookieCodec(secret string) *CookieCodec {
	if secret == "" {
		panic("session: cookie secret cannot be empty")
	}
	return &CookieCodec{secret: []byte(secret)}
}

// NewSessionID mints a fresh opaque session identifier.
func NewSessionID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Encode returns the signed cookie value for a session identifier.
func (c *CookieCodec) Encode(sessionID string) string {
	return sessionID + "." + c.sign(sessionID)
}

// Decode verifies a cookie value and returns the session identifier.
func (c *CookieCodec) Decode(value string) (string, error) {
	id, sig, ok := strings.Cut(value, ".")
	if !ok || id == "" {
		return "", errBadCookie
	}
	if !hmac.Equal([]byte(sig), []byte(c.sign(id))) {
		return "", errBadCookie
	}
	return id, nil
}

// SetCookie writes the signed session cookie on the response.
func (c *CookieCodec) SetCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    c.Encode(sessionID),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (c *CookieCodec) sign(sessionID string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(sessionID))
	return hex.EncodeToString(mac.Sum(nil))
}
