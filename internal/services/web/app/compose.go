// Package app composes web modules into the root handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/louisbranch/translating.space/internal/services/web/module"
	"github.com/louisbranch/translating.space/internal/services/web/platform/httpx"
	"github.com/louisbranch/translating.space/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/translating.space/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/translating.space/internal/services/web/routepath"
)

// ComposeInput carries module groups and shared composition contracts.
type ComposeInput struct {
	// Authenticated reports whether the request carries a signed-in session.
	Authenticated       func(*http.Request) bool
	PublicModules       []module.Module
	ProtectedModules    []module.Module
	RequestSchemePolicy requestmeta.SchemePolicy
}

// Compose builds a root HTTP handler from module groups. Public modules mount
// as-is; protected modules must live under /app/ and are wrapped with session
// and same-origin checks.
func Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	authenticated := input.Authenticated
	if authenticated == nil {
		authenticated = func(*http.Request) bool { return false }
	}
	owners := make(map[string]string)

	for _, m := range input.PublicModules {
		if m == nil {
			return nil, fmt.Errorf("public module is nil")
		}
		if err := mountPublic(root, m, owners); err != nil {
			return nil, err
		}
	}

	wrap := protect(authenticated, input.RequestSchemePolicy)
	for _, m := range input.ProtectedModules {
		if m == nil {
			return nil, fmt.Errorf("protected module is nil")
		}
		if err := mountProtected(root, m, owners, wrap); err != nil {
			return nil, err
		}
	}

	return root, nil
}

func mountPublic(root *http.ServeMux, m module.Module, owners map[string]string) error {
	mount, err := resolveMount(m)
	if err != nil {
		return err
	}
	if isProtectedPrefix(mount.Prefix) {
		return fmt.Errorf("module %q has protected prefix %q in public group", m.ID(), mount.Prefix)
	}
	return handle(root, m.ID(), mount.Prefix, mount.Handler, owners)
}

func mountProtected(root *http.ServeMux, m module.Module, owners map[string]string, wrap func(http.Handler) http.Handler) error {
	mount, err := resolveMount(m)
	if err != nil {
		return err
	}
	if !isProtectedPrefix(mount.Prefix) {
		return fmt.Errorf("module %q must mount under %s, got %q", m.ID(), routepath.AppPrefix, mount.Prefix)
	}
	handler := wrap(mount.Handler)
	if err := handle(root, m.ID(), mount.Prefix, handler, owners); err != nil {
		return err
	}
	// The slashless alias keeps "/app/x" behind the same guard instead of
	// falling through to a public catch-all.
	return handle(root, m.ID(), strings.TrimSuffix(mount.Prefix, "/"), handler, owners)
}

func handle(root *http.ServeMux, id string, pattern string, handler http.Handler, owners map[string]string) error {
	if previous, ok := owners[pattern]; ok {
		return fmt.Errorf("module %q duplicates prefix %q owned by module %q", id, pattern, previous)
	}
	owners[pattern] = id
	root.Handle(pattern, handler)
	return nil
}

func resolveMount(m module.Module) (module.Mount, error) {
	mount, err := m.Mount()
	if err != nil {
		return module.Mount{}, fmt.Errorf("mount module %q: %w", m.ID(), err)
	}
	if err := validatePrefix(mount.Prefix); err != nil {
		return module.Mount{}, fmt.Errorf("mount module %q has invalid prefix %q: %w", m.ID(), mount.Prefix, err)
	}
	if mount.Handler == nil {
		return module.Mount{}, fmt.Errorf("mount module %q: handler is required", m.ID())
	}
	return mount, nil
}

func validatePrefix(prefix string) error {
	switch {
	case prefix == "":
		return fmt.Errorf("prefix is required")
	case strings.TrimSpace(prefix) != prefix:
		return fmt.Errorf("prefix must not include surrounding whitespace")
	case !strings.HasPrefix(prefix, "/"):
		return fmt.Errorf("prefix must begin with /")
	case !strings.HasSuffix(prefix, "/"):
		return fmt.Errorf("prefix must end with /")
	}
	return nil
}

func isProtectedPrefix(prefix string) bool {
	return strings.HasPrefix(prefix, routepath.AppPrefix)
}

func protect(authenticated func(*http.Request) bool, policy requestmeta.SchemePolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return requireAuth(authenticated, next)(requireCookieSessionSameOrigin(policy)(next))
	}
}

// router is implemented by *http.ServeMux.
type router interface {
	Handler(r *http.Request) (http.Handler, string)
}

// requireAuth sends anonymous requests to the login page. Safe requests keep
// their URL as the post-login target. Requests the module refuses by method
// alone get that 405 instead, so the Allow header does not depend on a
// session.
func requireAuth(authenticated func(*http.Request) bool, routes http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !authenticated(r) {
				if rejection, ok := methodRejection(routes, r); ok {
					rejection.ServeHTTP(w, r)
					return
				}
				httpx.WriteRedirect(w, r, loginTarget(r))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func methodRejection(routes http.Handler, r *http.Request) (http.Handler, bool) {
	mux, ok := routes.(router)
	if !ok {
		return nil, false
	}
	handler, _ := mux.Handler(r)
	rejection, ok := handler.(httpx.MethodNotAllowedFunc)
	return rejection, ok
}

func loginTarget(r *http.Request) string {
	if isMutationMethod(r) || httpx.IsHTMXRequest(r) || r.URL == nil {
		return routepath.Login
	}
	return routepath.LoginWithNext(r.URL.RequestURI())
}

func requireCookieSessionSameOrigin(policy requestmeta.SchemePolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isMutationMethod(r) && hasSessionCookie(r) && !requestmeta.HasSameOriginProofWithPolicy(r, policy) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isMutationMethod(r *http.Request) bool {
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

func hasSessionCookie(r *http.Request) bool {
	_, ok := sessioncookie.Read(r)
	return ok
}
