package sourceedit

import (
	"context"

	"github.com/louisbranch/translating.space/internal/platform/otel"
	"github.com/louisbranch/translating.space/internal/services/translate/catalog"
	"github.com/louisbranch/translating.space/internal/services/translate/permission"
	"github.com/louisbranch/translating.space/internal/services/translate/screenshot"
	"github.com/louisbranch/translating.space/internal/services/translate/storage"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Store is the persistence surface used by source editing.
type Store interface {
	storage.CatalogStore
	storage.SourceStore
	permission.GrantReader
}

// Blobs stores screenshot objects.
type Blobs interface {
	Put(ctx context.Context, img screenshot.Image) error
	Delete(ctx context.Context, name string) error
}

// NewStoreGateway builds a gateway over the catalog store and screenshot
// blobs.
func NewStoreGateway(store Store, blobs Blobs) Gateway {
	if store == nil || blobs == nil {
		return unavailableGateway{}
	}
	access := permission.NewChecker(store)
	return storeGateway{
		Store:    store,
		blobs:    blobs,
		resolver: catalog.NewResolver(store, access),
		access:   access,
		tracer:   otel.Tracer("translating.space/web/sourceedit"),
	}
}

type storeGateway struct {
	Store
	blobs    Blobs
	resolver catalog.Resolver
	access   permission.Checker
	tracer   trace.Tracer
}

func (g storeGateway) ComponentByID(ctx context.Context, componentID int64) (catalog.Component, error) {
	return g.resolver.ComponentByID(ctx, componentID)
}

func (g storeGateway) CanEditPriority(ctx context.Context, user storage.User, project storage.Project) (bool, error) {
	return g.access.CanEditPriority(ctx, user, project)
}

func (g storeGateway) CanEditFlags(ctx context.Context, user storage.User, project storage.Project) (bool, error) {
	return g.access.CanEditFlags(ctx, user, project)
}

func (g storeGateway) CanUploadScreenshot(ctx context.Context, user storage.User, project storage.Project) (bool, error) {
	return g.access.CanUploadScreenshot(ctx, user, project)
}

func (g storeGateway) PutScreenshot(ctx context.Context, img screenshot.Image) error {
	ctx, span := g.tracer.Start(ctx, "sourceedit.put_screenshot", trace.WithAttributes(
		attribute.String("name", img.Name),
		attribute.Int("bytes", len(img.Data)),
	))
	defer span.End()
	return g.blobs.Put(ctx, img)
}

func (g storeGateway) DeleteScreenshot(ctx context.Context, name string) error {
	return g.blobs.Delete(ctx, name)
}
