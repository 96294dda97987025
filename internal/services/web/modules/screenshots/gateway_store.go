package screenshots

import (
	"context"
	"io"

	"github.com/louisbranch/translating.space/internal/platform/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// NewBlobGateway builds a gateway over a screenshot blob store.
func NewBlobGateway(blobs Gateway) Gateway {
	if blobs == nil {
		return unavailableGateway{}
	}
	return blobGateway{blobs: blobs, tracer: otel.Tracer("translating.space/web/screenshots")}
}

type blobGateway struct {
	blobs  Gateway
	tracer trace.Tracer
}

func (g blobGateway) Open(ctx context.Context, name string) (io.ReadSeekCloser, error) {
	ctx, span := g.tracer.Start(ctx, "screenshots.Open", trace.WithAttributes(attribute.String("screenshot.name", name)))
	defer span.End()
	return g.blobs.Open(ctx, name)
}
