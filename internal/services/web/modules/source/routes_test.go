package source

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/louisbranch/translating.space/internal/services/translate/storage"
	"github.com/louisbranch/translating.space/internal/services/web/platform/modulehandler"
)

func TestRegisterRoutesHandlesNilMux(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, newHandlers(newService(nil), modulehandler.NewTestBase(storage.User{})))
}

func TestRegisterRoutesSourcePathAndMethodContracts(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	gw := &fakeGateway{source: demoSource(), units: demoUnits(3)}
	registerRoutes(mux, newHandlers(newService(gw), modulehandler.NewTestBase(storage.User{})))

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantAllow  string
	}{
		{name: "show get", method: http.MethodGet, path: "/source/demo/app/", wantStatus: http.StatusOK},
		{name: "show head", method: http.MethodHead, path: "/source/demo/app/", wantStatus: http.StatusOK},
		{name: "review get", method: http.MethodGet, path: "/source/demo/app/review", wantStatus: http.StatusOK},
		{name: "review post rejected", method: http.MethodPost, path: "/source/demo/app/review", wantStatus: http.StatusMethodNotAllowed, wantAllow: "GET, HEAD"},
		{name: "unknown subpath", method: http.MethodGet, path: "/source/demo/app/other", wantStatus: http.StatusNotFound},
		{name: "prefix root", method: http.MethodGet, path: "/source/", wantStatus: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
			if tc.wantAllow != "" {
				if got := rr.Header().Get("Allow"); got != tc.wantAllow {
					t.Fatalf("Allow = %q, want %q", got, tc.wantAllow)
				}
			}
		})
	}
}
