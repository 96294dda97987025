package screenshots

import (
	"context"
	"io"

	apperrors "github.com/louisbranch/translating.space/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) Open(context.Context, string) (io.ReadSeekCloser, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "screenshot storage is not configured")
}
