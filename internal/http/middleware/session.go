package middleware

import (
	"context"
	"net/http"

	"github.com/reina-tokumaru/clinic-reservation-system/internal/session"
)

type sessionCtxKey struct{}

// Session verifies the signed session cookie, minting a fresh session
// identifier when the cookie is absent or tampered with, and places the
// identifier in the request context.
func Session(codec *session.CookieCodec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := ""
			if cookie, err := r.Cookie(session.CookieName); err == nil {
				if id, err := codec.Decode(cookie.Value); err == nil {
					sessionID = id
				}
			}
			if sessionID == "" {
				sessionID = session.NewSessionID()
				codec.SetCookie(w, sessionID)
			}
			ctx := WithSessionID(r.Context(), sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithSessionID returns a context carrying the session identifier.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, sessionID)
}

// SessionID extracts the session identifier placed by Session.
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionCtxKey{}).(string)
	return id
}
