package screenshots

import (
	"context"
	"errors"
	"io"

	"github.com/louisbranch/translating.space/internal/services/translate/screenshot"
	apperrors "github.com/louisbranch/translating.space/internal/services/web/platform/errors"
)

// Gateway opens stored screenshot objects.
type Gateway interface {
	Open(ctx context.Context, name string) (io.ReadSeekCloser, error)
}

type service struct {
	gateway Gateway
}

func newService(gateway Gateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

// open returns the object and its content type. Names that are not content
// addressed are reported missing without touching the store.
func (s service) open(ctx context.Context, name string) (io.ReadSeekCloser, string, error) {
	if !screenshot.ValidName(name) {
		return nil, "", apperrors.EK(apperrors.KindNotFound, "web.error.not_found", "invalid screenshot name")
	}
	file, err := s.gateway.Open(ctx, name)
	if err != nil {
		if errors.Is(err, screenshot.ErrNotFound) || errors.Is(err, screenshot.ErrInvalidName) {
			return nil, "", apperrors.Wrap(apperrors.KindNotFound, "web.error.not_found", err)
		}
		return nil, "", err
	}
	return file, screenshot.ContentType(name), nil
}
