package screenshots

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/louisbranch/translating.space/internal/services/translate/storage"
	"github.com/louisbranch/translating.space/internal/services/web/platform/modulehandler"
)

func newTestMux(gateway Gateway) *http.ServeMux {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(gateway), modulehandler.NewTestBase(storage.User{})))
	return mux
}

func TestRegisterRoutesHandlesNilMux(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, newHandlers(newService(nil), modulehandler.NewTestBase(storage.User{})))
}

func TestModuleHealthyReflectsGateway(t *testing.T) {
	t.Parallel()

	if New(modulehandler.Base{}, nil).Healthy() {
		t.Fatalf("nil gateway should be unhealthy")
	}
	if !New(modulehandler.Base{}, NewBlobGateway(newFakeGateway())).Healthy() {
		t.Fatalf("blob gateway should be healthy")
	}
	if New(modulehandler.Base{}, NewBlobGateway(nil)).Healthy() {
		t.Fatalf("NewBlobGateway(nil) should be unhealthy")
	}
}

func TestScreenshotServesStoredObject(t *testing.T) {
	t.Parallel()

	mux := newTestMux(NewBlobGateway(newFakeGateway()))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/media/screenshots/"+pngName, nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Content-Type"); got != "image/png" {
		t.Fatalf("Content-Type = %q, want image/png", got)
	}
	if got := rr.Header().Get("Cache-Control"); got != cacheControl {
		t.Fatalf("Cache-Control = %q, want %q", got, cacheControl)
	}
	if rr.Body.String() != "\x89PNG fake" {
		t.Fatalf("body = %q", rr.Body.String())
	}
}

func TestScreenshotNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		wantOpened bool
	}{
		{name: "missing object", path: "/media/screenshots/" + pngName[:64] + ".jpg", wantOpened: true},
		{name: "invalid name", path: "/media/screenshots/not-a-hash.png", wantOpened: false},
		{name: "nested path", path: "/media/screenshots/a/b.png", wantOpened: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			gateway := newFakeGateway()
			mux := newTestMux(gateway)
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if rr.Code != http.StatusNotFound {
				t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
			}
			if opened := len(gateway.opened) > 0; opened != tc.wantOpened {
				t.Fatalf("opened = %v, want %v", gateway.opened, tc.wantOpened)
			}
		})
	}
}

func TestScreenshotStoreFailureIsServerError(t *testing.T) {
	t.Parallel()

	gateway := newFakeGateway()
	gateway.err = errors.New("disk on fire")
	mux := newTestMux(gateway)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/media/screenshots/"+pngName, nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}
