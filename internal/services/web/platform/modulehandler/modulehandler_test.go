package modulehandler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/translating.space/internal/services/translate/storage"
	module "github.com/louisbranch/translating.space/internal/services/web/module"
	flashnotice "github.com/louisbranch/translating.space/internal/services/web/platform/flash"
	"github.com/louisbranch/translating.space/internal/services/web/platform/requestmeta"
)

func TestRequestUserDelegatesToResolver(t *testing.T) {
	t.Parallel()

	base := NewBase(func(*http.Request) storage.User {
		return storage.User{ID: " user-1 ", Username: "ada"}
	}, requestmeta.SchemePolicy{})
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	if got := base.RequestUser(r); got.ID != "user-1" || got.Username != "ada" {
		t.Fatalf("RequestUser() = %+v", got)
	}
	if got := base.ResolveRequestViewer(r); got != (module.Viewer{Username: "ada", DisplayName: "ada", SignedIn: true}) {
		t.Fatalf("ResolveRequestViewer() = %+v", got)
	}
}

func TestRequestUserZeroWithoutResolver(t *testing.T) {
	t.Parallel()

	base := NewBase(nil, requestmeta.SchemePolicy{})
	if got := base.RequestUser(httptest.NewRequest(http.MethodGet, "/", nil)); got != (storage.User{}) {
		t.Fatalf("RequestUser() = %+v, want zero", got)
	}
	if got := base.ResolveRequestViewer(nil); got != (module.Viewer{}) {
		t.Fatalf("ResolveRequestViewer(nil) = %+v, want zero", got)
	}
}

func TestRequestSchemePolicy(t *testing.T) {
	t.Parallel()

	policy := requestmeta.SchemePolicy{TrustForwardedProto: true}
	if got := NewBase(nil, policy).RequestSchemePolicy(); got != policy {
		t.Fatalf("RequestSchemePolicy() = %+v", got)
	}
}

func TestWritePageRendersLayout(t *testing.T) {
	t.Parallel()

	base := NewTestBase(storage.User{ID: "u1", Username: "ada", DisplayName: "Ada"})
	rr := httptest.NewRecorder()
	base.WritePage(rr, httptest.NewRequest(http.MethodGet, "/source/demo/app/", nil), "Source strings in App", http.StatusOK, textComponent("<p>body</p>"))
	body := rr.Body.String()
	for _, marker := range []string{"<p>body</p>", "Signed in as Ada"} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q: %q", marker, body)
		}
	}
}

func TestWritePageFallsBackToErrorOnRenderFailure(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	NewTestBase(storage.User{}).WriteFragment(rr, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusOK, failingComponent{})
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
}

func TestWriteNotFound(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	NewTestBase(storage.User{}).WriteNotFound(rr, httptest.NewRequest(http.MethodGet, "/source/x/y/", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}

func TestWriteFlashSetsCookie(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	NewTestBase(storage.User{}).WriteFlash(rr, httptest.NewRequest(http.MethodPost, "/", nil), flashnotice.NoticeError("web.source.notice_flags_failed"))
	found := false
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == flashnotice.CookieName {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected flash cookie")
	}
}

type textComponent string

func (c textComponent) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(c))
	return err
}

type failingComponent struct{}

func (failingComponent) Render(context.Context, io.Writer) error {
	return errors.New("render failed")
}
