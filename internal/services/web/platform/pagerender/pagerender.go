// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	webi18n "github.com/louisbranch/translating.space/internal/services/web/i18n"
	module "github.com/louisbranch/translating.space/internal/services/web/module"
	flashnotice "github.com/louisbranch/translating.space/internal/services/web/platform/flash"
	"github.com/louisbranch/translating.space/internal/services/web/platform/httpx"
	"github.com/louisbranch/translating.space/internal/services/web/platform/requestmeta"
	webtemplates "github.com/louisbranch/translating.space/internal/services/web/templates"
)

// RequestResolver resolves viewer and cookie policy state from a request.
type RequestResolver interface {
	ResolveRequestViewer(r *http.Request) module.Viewer
	RequestSchemePolicy() requestmeta.SchemePolicy
}

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	Title      string
	StatusCode int
	Fragment   templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WriteModulePage renders page.Fragment inside the layout. HTMX requests
// receive the fragment alone.
func WriteModulePage(w http.ResponseWriter, r *http.Request, resolver RequestResolver, page ModulePage) error {
	if w == nil {
		return nil
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}
	if httpx.IsHTMXRequest(r) {
		return WriteFragment(w, r, page.StatusCode, fragment)
	}

	loc, tag := webi18n.ResolvePrinter(w, r)
	viewer := module.Viewer{}
	var policy requestmeta.SchemePolicy
	if resolver != nil {
		viewer = resolver.ResolveRequestViewer(r)
		policy = resolver.RequestSchemePolicy()
	}
	path := ""
	if r != nil && r.URL != nil {
		path = r.URL.RequestURI()
	}
	layout := webtemplates.Layout(webtemplates.LayoutView{
		Title:       page.Title,
		Lang:        tag.String(),
		Viewer:      viewer,
		Toasts:      resolveFlashToasts(w, r, policy, loc),
		Loc:         loc,
		CurrentPath: path,
	})
	return write(w, page.StatusCode, func(buf *bytes.Buffer) error {
		return layout.Render(templ.WithChildren(httpx.RequestContext(r), fragment), buf)
	})
}

// WriteFragment renders a component without the layout.
func WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, fragment templ.Component) error {
	if w == nil {
		return nil
	}
	if fragment == nil {
		fragment = emptyComponent{}
	}
	return write(w, statusCode, func(buf *bytes.Buffer) error {
		return fragment.Render(httpx.RequestContext(r), buf)
	})
}

// write buffers the rendered body so a render failure can still become an
// error response.
func write(w http.ResponseWriter, statusCode int, render func(*bytes.Buffer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return err
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

func resolveFlashToasts(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy, loc webtemplates.Localizer) []webtemplates.Toast {
	notices := flashnotice.ReadAndClear(w, r, policy)
	if len(notices) == 0 {
		return nil
	}
	toasts := make([]webtemplates.Toast, 0, len(notices))
	for _, notice := range notices {
		message := strings.TrimSpace(webtemplates.T(loc, notice.Key))
		if message == "" {
			message = notice.Key
		}
		toasts = append(toasts, webtemplates.Toast{Kind: string(notice.Kind), Message: message})
	}
	return toasts
}
