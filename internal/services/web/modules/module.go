// Package modules defines web module registry helpers.
package modules

import (
	"github.com/louisbranch/translating.space/internal/services/translate/storage"
	module "github.com/louisbranch/translating.space/internal/services/web/module"
	"github.com/louisbranch/translating.space/internal/services/web/modules/screenshots"
	"github.com/louisbranch/translating.space/internal/services/web/modules/sourceedit"
	"github.com/louisbranch/translating.space/internal/services/web/platform/sessioncookie"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// ScreenshotStore stores, serves and removes screenshot objects.
type ScreenshotStore interface {
	sourceedit.Blobs
	screenshots.Gateway
}

// Dependencies carries the stores and settings required to compose the web
// module registry. Each module narrows Store to the interface it declares.
type Dependencies struct {
	Store storage.Store
	// Languages overrides language lookups of Store, typically with a cache.
	Languages          storage.LanguageStore
	Screenshots        ScreenshotStore
	MaxScreenshotBytes int64
	SessionCookie      sessioncookie.Cookie
}

func (d Dependencies) languages() storage.LanguageStore {
	if d.Languages != nil {
		return d.Languages
	}
	if d.Store == nil {
		return nil
	}
	return d.Store
}
