package matrix

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/translating.space/internal/services/translate/storage"
	"github.com/louisbranch/translating.space/internal/services/web/platform/modulehandler"
)

func serve(t *testing.T, gw Gateway, method string, target string, htmx bool) *httptest.ResponseRecorder {
	t.Helper()
	mount, err := New(modulehandler.NewTestBase(storage.User{ID: "u1", Username: "ana"}), gw).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	req := httptest.NewRequest(method, target, nil)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	return rr
}

func TestRegisterRoutesHandlesNilMux(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, newHandlers(newService(nil), modulehandler.Base{}))
}

func TestRegisterRoutesMatrixPathAndMethodContracts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantAllow  string
	}{
		{name: "matrix get", method: http.MethodGet, path: "/app/matrix/demo/app/", wantStatus: http.StatusOK},
		{name: "load get", method: http.MethodGet, path: "/app/matrix/demo/app/load?offset=0&lang=en", wantStatus: http.StatusOK},
		{name: "matrix post rejected", method: http.MethodPost, path: "/app/matrix/demo/app/", wantStatus: http.StatusMethodNotAllowed, wantAllow: "GET, HEAD"},
		{name: "unknown subpath", method: http.MethodGet, path: "/app/matrix/demo/app/other", wantStatus: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rr := serve(t, newFakeGateway(), tc.method, tc.path, false)
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

func TestModuleIDAndHealth(t *testing.T) {
	t.Parallel()

	if got := New(modulehandler.Base{}, nil).ID(); got != "matrix" {
		t.Fatalf("ID() = %q, want %q", got, "matrix")
	}
	if New(modulehandler.Base{}, nil).Healthy() {
		t.Fatalf("Healthy() = true without gateway")
	}
}

func TestMatrixPageRendersSelection(t *testing.T) {
	t.Parallel()

	rr := serve(t, newFakeGateway(), http.MethodGet, "/app/matrix/demo/app/?lang=en&lang=he", false)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, want := range []string{
		"<title>Matrix view of App",
		`value="en" checked`,
		`value="he" checked`,
		`data-languages="en,he"`,
		`hx-get="/app/matrix/demo/app/load?lang=en%2Che&amp;offset=0"`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q", want)
		}
	}
	if strings.Contains(body, `value="cs" checked`) {
		t.Fatalf("unselected language rendered as checked")
	}
}

func TestMatrixPageRendersFormErrors(t *testing.T) {
	t.Parallel()

	rr := serve(t, newFakeGateway(), http.MethodGet, "/app/matrix/demo/app/?lang=de", false)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Select a valid choice. de is not one of the available choices.") {
		t.Fatalf("body missing invalid choice message")
	}
	if strings.Contains(body, "hx-trigger=\"load\"") {
		t.Fatalf("invalid form rendered the row loader")
	}
}

func TestMatrixLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantBody   string
	}{
		{name: "missing offset", query: "?lang=en", wantStatus: http.StatusInternalServerError, wantBody: "Missing offset"},
		{name: "bad offset", query: "?offset=abc&lang=en", wantStatus: http.StatusInternalServerError, wantBody: "Missing offset"},
		{name: "missing lang", query: "?offset=0", wantStatus: http.StatusInternalServerError, wantBody: "Missing lang"},
		{name: "unknown lang", query: "?offset=0&lang=en,de", wantStatus: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			gw := newFakeGateway()
			rr := serve(t, gw, http.MethodGet, "/app/matrix/demo/app/load"+tc.query, true)
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
			if tc.wantBody != "" && strings.TrimSpace(rr.Body.String()) != tc.wantBody {
				t.Fatalf("body = %q, want %q", rr.Body.String(), tc.wantBody)
			}
			if tc.wantBody != "" && (gw.translationLookups != 0 || gw.listings != 0 || gw.lookups != 0) {
				t.Fatalf("translation queries ran: translations=%d listings=%d lookups=%d", gw.translationLookups, gw.listings, gw.lookups)
			}
			if tc.wantStatus == http.StatusNotFound && gw.listings != 0 {
				t.Fatalf("listings = %d, want none for unknown language", gw.listings)
			}
		})
	}
}

func TestMatrixLoadRendersRowsFragment(t *testing.T) {
	t.Parallel()

	rr := serve(t, newFakeGateway(), http.MethodGet, "/app/matrix/demo/app/load?offset=20&lang=en,cs", true)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, want := range []string{
		`id="row-c20"`,
		`class="state-fuzzy"`,
		"Not present",
		`href="/source/demo/app/review?checksum=c20"`,
		`hx-get="/app/matrix/demo/app/load?lang=en%2Ccs&amp;offset=40"`,
		`colspan="3"`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q", want)
		}
	}
	if strings.Contains(strings.ToLower(body), "<html") {
		t.Fatalf("fragment includes the document wrapper")
	}

	last := serve(t, newFakeGateway(), http.MethodGet, "/app/matrix/demo/app/load?offset=40&lang=en", true)
	if strings.Contains(last.Body.String(), "matrix-more") {
		t.Fatalf("last window renders a load-more row")
	}
}
