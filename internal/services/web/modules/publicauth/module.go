// Package publicauth serves the public sign-in surface: login, logout, the
// root redirect and the liveness probe.
package publicauth

import (
	"net/http"

	module "github.com/louisbranch/translating.space/internal/services/web/module"
	"github.com/louisbranch/translating.space/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/translating.space/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/translating.space/internal/services/web/routepath"
)

// Module provides public auth routes.
type Module struct {
	gateway Gateway
	base    modulehandler.Base
	cookie  sessioncookie.Cookie
}

// New returns a public auth module. The cookie TTL is also the lifetime of
// the sessions it creates.
func New(base modulehandler.Base, gateway Gateway, cookie sessioncookie.Cookie) Module {
	return Module{gateway: gateway, base: base, cookie: cookie}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "publicauth" }

// Healthy reports whether the module has a configured gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires public auth route handlers at the site root.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateway, m.cookie.TTL), m.base, m.cookie))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
