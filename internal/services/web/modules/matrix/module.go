// Package matrix serves the authenticated language matrix: one page choosing
// languages and a loader returning windows of rows compared across them.
package matrix

import (
	"net/http"

	module "github.com/louisbranch/translating.space/internal/services/web/module"
	"github.com/louisbranch/translating.space/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/translating.space/internal/services/web/routepath"
)

// Module provides protected matrix routes.
type Module struct {
	gateway Gateway
	base    modulehandler.Base
}

// New returns a matrix module.
func New(base modulehandler.Base, gateway Gateway) Module {
	return Module{gateway: gateway, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "matrix" }

// Healthy reports whether the module has a configured gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires matrix route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateway), m.base))
	return module.Mount{Prefix: routepath.MatrixPrefix, Handler: mux}, nil
}
