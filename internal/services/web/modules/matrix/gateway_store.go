package matrix

import (
	"context"

	"github.com/louisbranch/translating.space/internal/platform/otel"
	"github.com/louisbranch/translating.space/internal/services/translate/catalog"
	"github.com/louisbranch/translating.space/internal/services/translate/permission"
	"github.com/louisbranch/translating.space/internal/services/translate/storage"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Store is the persistence surface read by the matrix.
type Store interface {
	storage.CatalogStore
	storage.UnitStore
	permission.GrantReader
}

// NewStoreGateway builds a gateway over the catalog store. Language lookups
// go through languages, usually the shared language cache.
func NewStoreGateway(store Store, languages storage.LanguageStore) Gateway {
	if store == nil || languages == nil {
		return unavailableGateway{}
	}
	return storeGateway{
		Store:     store,
		languages: languages,
		resolver:  catalog.NewResolver(store, permission.NewChecker(store)),
		tracer:    otel.Tracer("translating.space/web/matrix"),
	}
}

type storeGateway struct {
	Store
	languages storage.LanguageStore
	resolver  catalog.Resolver
	tracer    trace.Tracer
}

func (g storeGateway) ResolveComponent(ctx context.Context, user storage.User, projectSlug string, componentSlug string) (catalog.Component, error) {
	return g.resolver.ResolveComponent(ctx, user, projectSlug, componentSlug)
}

func (g storeGateway) Translations(ctx context.Context, component catalog.Component) ([]storage.Translation, error) {
	return g.resolver.Translations(ctx, component)
}

func (g storeGateway) TranslationByLanguage(ctx context.Context, component catalog.Component, code string) (storage.Translation, error) {
	return g.resolver.TranslationByLanguage(ctx, component, code)
}

func (g storeGateway) ListLanguagesByCodes(ctx context.Context, codes []string) ([]storage.Language, error) {
	return g.languages.ListLanguagesByCodes(ctx, codes)
}

func (g storeGateway) GetUnitsByChecksums(ctx context.Context, translationID int64, checksums []string) (map[string]storage.Unit, error) {
	ctx, span := g.tracer.Start(ctx, "matrix.units_by_checksum", trace.WithAttributes(
		attribute.Int64("translation_id", translationID),
		attribute.Int("checksums", len(checksums)),
	))
	defer span.End()
	return g.Store.GetUnitsByChecksums(ctx, translationID, checksums)
}
