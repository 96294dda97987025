// Package screenshots serves stored source string screenshots.
package screenshots

import (
	"net/http"

	module "github.com/louisbranch/translating.space/internal/services/web/module"
	"github.com/louisbranch/translating.space/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/translating.space/internal/services/web/routepath"
)

// Module provides public screenshot routes.
type Module struct {
	gateway Gateway
	base    modulehandler.Base
}

// New returns a screenshots module.
func New(base modulehandler.Base, gateway Gateway) Module {
	return Module{gateway: gateway, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "screenshots" }

// Healthy reports whether the module has a configured gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires screenshot route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateway), m.base))
	return module.Mount{Prefix: routepath.ScreenshotsPrefix, Handler: mux}, nil
}
