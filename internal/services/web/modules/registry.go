package modules

import (
	"github.com/louisbranch/translating.space/internal/services/web/modules/matrix"
	"github.com/louisbranch/translating.space/internal/services/web/modules/publicauth"
	"github.com/louisbranch/translating.space/internal/services/web/modules/screenshots"
	"github.com/louisbranch/translating.space/internal/services/web/modules/source"
	"github.com/louisbranch/translating.space/internal/services/web/modules/sourceedit"
	"github.com/louisbranch/translating.space/internal/services/web/platform/modulehandler"
)

// DefaultPublicModules returns the modules served without a session.
func DefaultPublicModules(base modulehandler.Base, deps Dependencies) []Module {
	return []Module{
		publicauth.New(base, publicauth.NewStoreGateway(deps.Store), deps.SessionCookie),
		source.New(base, source.NewStoreGateway(deps.Store)),
		screenshots.New(base, screenshots.NewBlobGateway(deps.Screenshots)),
	}
}

// DefaultProtectedModules returns the modules that require a session.
func DefaultProtectedModules(base modulehandler.Base, deps Dependencies) []Module {
	var blobs sourceedit.Blobs
	if deps.Screenshots != nil {
		blobs = deps.Screenshots
	}
	return []Module{
		sourceedit.New(base, sourceedit.NewStoreGateway(deps.Store, blobs), deps.MaxScreenshotBytes),
		matrix.New(base, matrix.NewStoreGateway(deps.Store, deps.languages())),
	}
}
