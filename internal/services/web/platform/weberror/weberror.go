// Package weberror renders shared error responses for web modules.
package weberror

import (
	"log"
	"net/http"
	"strings"

	webi18n "github.com/louisbranch/translating.space/internal/services/web/i18n"
	apperrors "github.com/louisbranch/translating.space/internal/services/web/platform/errors"
	"github.com/louisbranch/translating.space/internal/services/web/platform/pagerender"
	webtemplates "github.com/louisbranch/translating.space/internal/services/web/templates"
)

// ShouldRenderErrorPage reports whether status should use the error-page UX.
func ShouldRenderErrorPage(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webtemplates.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if key := apperrors.LocalizationKey(err); key != "" {
		if localized := strings.TrimSpace(webtemplates.T(loc, key)); localized != "" {
			return localized
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	return http.StatusText(statusCode)
}

// WriteErrorPage writes a localized error page for full-page and HTMX
// requests. An empty message uses the status default.
func WriteErrorPage(w http.ResponseWriter, r *http.Request, statusCode int, message string, resolver pagerender.RequestResolver) {
	if w == nil {
		return
	}
	if !ShouldRenderErrorPage(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	loc, _ := webi18n.ResolvePrinter(w, r)
	if strings.TrimSpace(message) == "" {
		message = defaultMessage(loc, statusCode)
	}
	fragment := webtemplates.ErrorState(statusCode, message, loc)
	if err := pagerender.WriteModulePage(w, r, resolver, pagerender.ModulePage{
		Title:      webtemplates.ErrorPageTitle(statusCode, loc),
		StatusCode: statusCode,
		Fragment:   fragment,
	}); err != nil {
		http.Error(w, message, statusCode)
	}
}

// WriteModuleError maps err to a status and writes the matching response.
// Server errors are logged with request context; their details never reach
// the client.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, resolver pagerender.RequestResolver) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	loc, _ := webi18n.ResolvePrinter(w, r)
	if statusCode >= http.StatusInternalServerError {
		log.Printf("web request failed method=%s path=%s request_id=%s err=%v", methodOf(r), pathOf(r), requestIDOf(r), err)
		WriteErrorPage(w, r, statusCode, "", resolver)
		return
	}
	if ShouldRenderErrorPage(statusCode) {
		WriteErrorPage(w, r, statusCode, PublicMessage(loc, err), resolver)
		return
	}
	http.Error(w, PublicMessage(loc, err), statusCode)
}

func defaultMessage(loc webtemplates.Localizer, statusCode int) string {
	switch statusCode {
	case http.StatusNotFound:
		return webtemplates.T(loc, "web.error.not_found")
	case http.StatusServiceUnavailable:
		return webtemplates.T(loc, "web.error.unavailable")
	default:
		return webtemplates.T(loc, "web.error.internal")
	}
}

func methodOf(r *http.Request) string {
	if r == nil {
		return "-"
	}
	return r.Method
}

func pathOf(r *http.Request) string {
	if r == nil || r.URL == nil {
		return "-"
	}
	return r.URL.Path
}

func requestIDOf(r *http.Request) string {
	if r == nil {
		return "-"
	}
	if rid := strings.TrimSpace(r.Header.Get("X-Request-ID")); rid != "" {
		return rid
	}
	return "-"
}
