// Package source serves the public source string summary and review pages.
package source

import (
	"net/http"

	module "github.com/louisbranch/translating.space/internal/services/web/module"
	"github.com/louisbranch/translating.space/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/translating.space/internal/services/web/routepath"
)

// Module provides public source routes.
type Module struct {
	gateway Gateway
	base    modulehandler.Base
}

// New returns a source module. A nil gateway reports the catalog as
// unavailable.
func New(base modulehandler.Base, gateway Gateway) Module {
	return Module{gateway: gateway, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "source" }

// Healthy reports whether the module has a configured gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires source route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateway), m.base))
	return module.Mount{Prefix: routepath.SourcePrefix, Handler: mux}, nil
}
