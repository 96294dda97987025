package matrix

import (
	"context"

	"github.com/louisbranch/translating.space/internal/services/translate/catalog"
	"github.com/louisbranch/translating.space/internal/services/translate/storage"
	apperrors "github.com/louisbranch/translating.space/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func unavailable() error {
	return apperrors.E(apperrors.KindUnavailable, "matrix catalog is not configured")
}

func (unavailableGateway) ResolveComponent(context.Context, storage.User, string, string) (catalog.Component, error) {
	return catalog.Component{}, unavailable()
}

func (unavailableGateway) Translations(context.Context, catalog.Component) ([]storage.Translation, error) {
	return nil, unavailable()
}

func (unavailableGateway) TranslationByLanguage(context.Context, catalog.Component, string) (storage.Translation, error) {
	return storage.Translation{}, unavailable()
}

func (unavailableGateway) ListLanguagesByCodes(context.Context, []string) ([]storage.Language, error) {
	return nil, unavailable()
}

func (unavailableGateway) CountUnits(context.Context, int64, storage.UnitFilter) (int, error) {
	return 0, unavailable()
}

func (unavailableGateway) ListUnits(context.Context, int64, storage.UnitFilter, int, int) ([]storage.Unit, error) {
	return nil, unavailable()
}

func (unavailableGateway) GetUnitsByChecksums(context.Context, int64, []string) (map[string]storage.Unit, error) {
	return nil, unavailable()
}
