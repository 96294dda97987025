// Package sourceedit serves the authenticated source string metadata forms:
// priority, check flags and screenshot upload.
package sourceedit

import (
	"net/http"

	"github.com/louisbranch/translating.space/internal/services/translate/screenshot"
	module "github.com/louisbranch/translating.space/internal/services/web/module"
	"github.com/louisbranch/translating.space/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/translating.space/internal/services/web/routepath"
)

// Module provides protected source edit routes.
type Module struct {
	gateway            Gateway
	base               modulehandler.Base
	maxScreenshotBytes int64
}

// New returns a source edit module. A non-positive limit uses
// screenshot.DefaultMaxBytes.
func New(base modulehandler.Base, gateway Gateway, maxScreenshotBytes int64) Module {
	if maxScreenshotBytes <= 0 {
		maxScreenshotBytes = screenshot.DefaultMaxBytes
	}
	return Module{gateway: gateway, base: base, maxScreenshotBytes: maxScreenshotBytes}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "sourceedit" }

// Healthy reports whether the module has a configured gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires source edit route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateway), m.base, m.maxScreenshotBytes))
	return module.Mount{Prefix: routepath.SourcesPrefix, Handler: mux}, nil
}
