// Package sessioncookie centralizes web session cookie behavior.
package sessioncookie

import (
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/translating.space/internal/services/web/platform/requestmeta"
)

// Name is the canonical web session cookie name.
const Name = "ts_session"

// Cookie writes and clears the session cookie under one scheme policy.
type Cookie struct {
	Policy requestmeta.SchemePolicy
	TTL    time.Duration
}

// Read returns the trimmed session cookie value when present.
func Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

// Write sets the session cookie. A positive TTL becomes the cookie Max-Age;
// otherwise the cookie lives for the browser session.
func (c Cookie) Write(w http.ResponseWriter, r *http.Request, sessionID string) {
	if w == nil {
		return
	}
	cookie := c.base(r)
	cookie.Value = strings.TrimSpace(sessionID)
	if c.TTL > 0 {
		cookie.MaxAge = int(c.TTL / time.Second)
	}
	http.SetCookie(w, cookie)
}

// Clear expires the session cookie.
func (c Cookie) Clear(w http.ResponseWriter, r *http.Request) {
	if w == nil {
		return
	}
	cookie := c.base(r)
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)
}

func (c Cookie) base(r *http.Request) *http.Cookie {
	return &http.Cookie{
		Name:     Name,
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, c.Policy),
		SameSite: http.SameSiteLaxMode,
	}
}
