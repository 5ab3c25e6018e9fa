package http

import (
	"net/http"
	"time"
)

const (
	sessionCookie = "session_id"
	sessionHeader = "X-Session-ID"
)

// sessionID reads the visitor's session from the cookie, or from the
// X-Session-ID header for API clients that do not keep cookies.
func sessionID(r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	return r.Header.Get(sessionHeader)
}

func setSession(w http.ResponseWriter, id string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set(sessionHeader, id)
}
