// Package module defines the feature contract used by web composition.
package module

import (
	"net/http"
	"strings"

	"github.com/louisbranch/translating.space/internal/services/translate/storage"
)

// Viewer contains user-facing chrome data for rendered pages.
type Viewer struct {
	Username    string
	DisplayName string
	SignedIn    bool
}

// ViewerFor derives chrome data from a request user. The zero User is
// anonymous.
func ViewerFor(user storage.User) Viewer {
	if strings.TrimSpace(user.ID) == "" {
		return Viewer{}
	}
	name := strings.TrimSpace(user.DisplayName)
	if name == "" {
		name = user.Username
	}
	return Viewer{Username: user.Username, DisplayName: name, SignedIn: true}
}

// ResolveUser resolves the signed-in user for a request, or the zero User.
type ResolveUser func(*http.Request) storage.User

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// HealthReporter is an optional interface for modules that can report their
// operational availability.
type HealthReporter interface {
	Healthy() bool
}
