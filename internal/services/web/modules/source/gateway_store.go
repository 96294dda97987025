package source

import (
	"context"

	"github.com/louisbranch/translating.space/internal/platform/otel"
	"github.com/louisbranch/translating.space/internal/services/translate/catalog"
	"github.com/louisbranch/translating.space/internal/services/translate/permission"
	"github.com/louisbranch/translating.space/internal/services/translate/storage"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Store is the persistence surface read by the source pages.
type Store interface {
	storage.CatalogStore
	storage.UnitStore
	storage.SourceStore
	permission.GrantReader
}

// NewStoreGateway builds a gateway over the catalog store.
func NewStoreGateway(store Store) Gateway {
	if store == nil {
		return unavailableGateway{}
	}
	access := permission.NewChecker(store)
	return storeGateway{
		Store:    store,
		resolver: catalog.NewResolver(store, access),
		access:   access,
		tracer:   otel.Tracer("translating.space/web/source"),
	}
}

type storeGateway struct {
	Store
	resolver catalog.Resolver
	access   permission.Checker
	tracer   trace.Tracer
}

func (g storeGateway) ResolveSource(ctx context.Context, user storage.User, projectSlug string, componentSlug string) (catalog.Source, error) {
	ctx, span := g.tracer.Start(ctx, "source.resolve", trace.WithAttributes(
		attribute.String("project", projectSlug),
		attribute.String("component", componentSlug),
	))
	defer span.End()
	return g.resolver.ResolveSource(ctx, user, projectSlug, componentSlug)
}

func (g storeGateway) ListUnits(ctx context.Context, translationID int64, filter storage.UnitFilter, offset int, limit int) ([]storage.Unit, error) {
	ctx, span := g.tracer.Start(ctx, "source.list_units", trace.WithAttributes(
		attribute.Int64("translation_id", translationID),
		attribute.String("filter", string(filter.Kind)),
		attribute.Int("offset", offset),
	))
	defer span.End()
	return g.Store.ListUnits(ctx, translationID, filter, offset, limit)
}

func (g storeGateway) SourceCapabilities(ctx context.Context, user storage.User, project storage.Project) (permission.Capabilities, error) {
	return g.access.SourceCapabilities(ctx, user, project)
}
