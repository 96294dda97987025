package sessioncookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/louisbranch/translating.space/internal/services/web/platform/requestmeta"
)

func TestRead(t *testing.T) {
	t.Parallel()

	if _, ok := Read(nil); ok {
		t.Fatalf("expected nil request to have no session cookie")
	}

	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	if _, ok := Read(req); ok {
		t.Fatalf("expected missing cookie")
	}

	req.AddCookie(&http.Cookie{Name: Name, Value: "  ws-1  "})
	value, ok := Read(req)
	if !ok || value != "ws-1" {
		t.Fatalf("Read() = (%q, %v), want (%q, true)", value, ok, "ws-1")
	}
}

func TestCookieWrite(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Cookie{TTL: 2 * time.Hour}.Write(rr, httptest.NewRequest(http.MethodPost, "https://translate.example.test/login", nil), " ws-1 ")
	cookie, err := http.ParseSetCookie(rr.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if cookie.Name != Name || cookie.Value != "ws-1" {
		t.Fatalf("cookie = %s=%s", cookie.Name, cookie.Value)
	}
	if !cookie.Secure || !cookie.HttpOnly {
		t.Fatalf("cookie secure=%v httponly=%v, want both", cookie.Secure, cookie.HttpOnly)
	}
	if cookie.MaxAge != 7200 {
		t.Fatalf("cookie.MaxAge = %d, want 7200", cookie.MaxAge)
	}
}

func TestCookieWriteHonorsForwardedProtoPolicy(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "http://translate.example.test/login", nil)
	req.Header.Set("X-Forwarded-Proto", "https")

	untrusted := httptest.NewRecorder()
	Cookie{}.Write(untrusted, req, "ws-1")
	if cookie, _ := http.ParseSetCookie(untrusted.Header().Get("Set-Cookie")); cookie == nil || cookie.Secure {
		t.Fatalf("expected insecure cookie without trusted proxy")
	}

	trusted := httptest.NewRecorder()
	Cookie{Policy: requestmeta.SchemePolicy{TrustForwardedProto: true}}.Write(trusted, req, "ws-1")
	if cookie, _ := http.ParseSetCookie(trusted.Header().Get("Set-Cookie")); cookie == nil || !cookie.Secure {
		t.Fatalf("expected secure cookie with trusted proxy")
	}
}

func TestCookieClear(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Cookie{}.Clear(rr, httptest.NewRequest(http.MethodPost, "/logout", nil))
	cookie, err := http.ParseSetCookie(rr.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if cookie.Value != "" || cookie.MaxAge >= 0 {
		t.Fatalf("cleared cookie = %q max-age=%d", cookie.Value, cookie.MaxAge)
	}

	Cookie{}.Clear(nil, nil)
}
