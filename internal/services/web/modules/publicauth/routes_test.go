package publicauth

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/translating.space/internal/services/translate/storage"
	"github.com/louisbranch/translating.space/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/translating.space/internal/services/web/platform/sessioncookie"
)

func newTestMux(gateway Gateway, user storage.User) *http.ServeMux {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(gateway, time.Hour), modulehandler.NewTestBase(user), sessioncookie.Cookie{}))
	return mux
}

func TestRegisterRoutesHandlesNilMux(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, newHandlers(newService(nil, 0), modulehandler.NewTestBase(storage.User{}), sessioncookie.Cookie{}))
}

func TestModuleHealthyReflectsGateway(t *testing.T) {
	t.Parallel()

	if New(modulehandler.Base{}, nil, sessioncookie.Cookie{}).Healthy() {
		t.Fatalf("nil gateway should be unhealthy")
	}
	if New(modulehandler.Base{}, unavailableGateway{}, sessioncookie.Cookie{}).Healthy() {
		t.Fatalf("unavailable gateway should be unhealthy")
	}
	if !New(modulehandler.Base{}, newFakeGateway(), sessioncookie.Cookie{}).Healthy() {
		t.Fatalf("fake gateway should be healthy")
	}
	mount, err := New(modulehandler.Base{}, newFakeGateway(), sessioncookie.Cookie{}).Mount()
	if err != nil || mount.Prefix != "/" || mount.Handler == nil {
		t.Fatalf("Mount() = (%+v, %v)", mount, err)
	}
}

func TestRegisterRoutesPublicAuthContracts(t *testing.T) {
	t.Parallel()

	mux := newTestMux(newFakeGateway(), storage.User{})
	tests := []struct {
		name         string
		method       string
		path         string
		wantStatus   int
		wantAllow    string
		wantLocation string
		wantBody     string
	}{
		{name: "root redirects to login", method: http.MethodGet, path: "/", wantStatus: http.StatusFound, wantLocation: "/login"},
		{name: "health", method: http.MethodGet, path: "/up", wantStatus: http.StatusOK, wantBody: "ok"},
		{name: "login page", method: http.MethodGet, path: "/login", wantStatus: http.StatusOK},
		{name: "logout get rejected", method: http.MethodGet, path: "/logout", wantStatus: http.StatusMethodNotAllowed, wantAllow: "POST"},
		{name: "unknown path", method: http.MethodGet, path: "/nowhere", wantStatus: http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
			if tc.wantAllow != "" && rr.Header().Get("Allow") != tc.wantAllow {
				t.Fatalf("Allow = %q, want %q", rr.Header().Get("Allow"), tc.wantAllow)
			}
			if tc.wantLocation != "" && rr.Header().Get("Location") != tc.wantLocation {
				t.Fatalf("Location = %q, want %q", rr.Header().Get("Location"), tc.wantLocation)
			}
			if tc.wantBody != "" && strings.TrimSpace(rr.Body.String()) != tc.wantBody {
				t.Fatalf("body = %q, want %q", rr.Body.String(), tc.wantBody)
			}
		})
	}
}

func TestLoginPageKeepsLocalNextOnly(t *testing.T) {
	t.Parallel()

	mux := newTestMux(newFakeGateway(), storage.User{})
	tests := []struct {
		name string
		next string
		want string
	}{
		{name: "local", next: "/app/matrix/demo/app/", want: `value="/app/matrix/demo/app/"`},
		{name: "external", next: "https://evil.example/", want: `name="next" value=""`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/login?next="+url.QueryEscape(tc.next), nil))
			if !strings.Contains(rr.Body.String(), tc.want) {
				t.Fatalf("body missing %q:\n%s", tc.want, rr.Body.String())
			}
		})
	}
}

func TestLoginPageShowsSignedInUser(t *testing.T) {
	t.Parallel()

	mux := newTestMux(newFakeGateway(), storage.User{ID: "u1", Username: "ada", DisplayName: "Ada"})
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/login", nil))
	body := rr.Body.String()
	if !strings.Contains(body, "Signed in as Ada") {
		t.Fatalf("body missing signed in notice:\n%s", body)
	}
	if strings.Contains(body, `name="password"`) {
		t.Fatalf("signed-in page should not render the password field")
	}
}
