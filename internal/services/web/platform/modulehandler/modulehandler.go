// Package modulehandler provides a composable base for web module handlers.
//
// Modules share handler infrastructure for user resolution, localization,
// page rendering, flash notices and error handling. Modules embed Base rather
// than duplicating it.
package modulehandler

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/translating.space/internal/services/translate/storage"
	webi18n "github.com/louisbranch/translating.space/internal/services/web/i18n"
	module "github.com/louisbranch/translating.space/internal/services/web/module"
	flashnotice "github.com/louisbranch/translating.space/internal/services/web/platform/flash"
	"github.com/louisbranch/translating.space/internal/services/web/platform/pagerender"
	"github.com/louisbranch/translating.space/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/translating.space/internal/services/web/platform/weberror"
	webtemplates "github.com/louisbranch/translating.space/internal/services/web/templates"
	"golang.org/x/text/language"
)

// Base carries the shared request-scoped resolvers used by module handlers.
type Base struct {
	resolveUser module.ResolveUser
	policy      requestmeta.SchemePolicy
}

// NewBase builds a handler base from a user resolver and cookie policy.
func NewBase(resolveUser module.ResolveUser, policy requestmeta.SchemePolicy) Base {
	return Base{resolveUser: resolveUser, policy: policy}
}

// NewTestBase builds a handler base that resolves every request to user.
func NewTestBase(user storage.User) Base {
	return Base{resolveUser: func(*http.Request) storage.User { return user }}
}

// RequestUser returns the signed-in user, or the zero User.
func (b Base) RequestUser(r *http.Request) storage.User {
	if r == nil || b.resolveUser == nil {
		return storage.User{}
	}
	user := b.resolveUser(r)
	user.ID = strings.TrimSpace(user.ID)
	return user
}

// ResolveRequestViewer resolves page chrome viewer state for a request.
func (b Base) ResolveRequestViewer(r *http.Request) module.Viewer {
	return module.ViewerFor(b.RequestUser(r))
}

// RequestSchemePolicy returns the cookie scheme policy.
func (b Base) RequestSchemePolicy() requestmeta.SchemePolicy {
	return b.policy
}

// PageLocalizer resolves a localizer and language tag from the request.
func (b Base) PageLocalizer(w http.ResponseWriter, r *http.Request) (webtemplates.Localizer, language.Tag) {
	return webi18n.ResolvePrinter(w, r)
}

// WriteError renders a localized module error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, b)
}

// WriteNotFound renders a 404 error page.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteErrorPage(w, r, http.StatusNotFound, "", b)
}

// WritePage renders a full module page (HTMX-aware).
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, title string, statusCode int, fragment templ.Component) {
	if err := pagerender.WriteModulePage(w, r, b, pagerender.ModulePage{
		Title:      title,
		StatusCode: statusCode,
		Fragment:   fragment,
	}); err != nil {
		b.WriteError(w, r, err)
	}
}

// WriteFragment renders a component without page chrome.
func (b Base) WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, fragment templ.Component) {
	if err := pagerender.WriteFragment(w, r, statusCode, fragment); err != nil {
		b.WriteError(w, r, err)
	}
}

// WriteFlash queues notices for the next page render.
func (b Base) WriteFlash(w http.ResponseWriter, r *http.Request, notices ...flashnotice.Notice) {
	flashnotice.Write(w, r, b.policy, notices...)
}
