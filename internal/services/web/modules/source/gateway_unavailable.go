package source

import (
	"context"

	"github.com/louisbranch/translating.space/internal/services/translate/catalog"
	"github.com/louisbranch/translating.space/internal/services/translate/permission"
	"github.com/louisbranch/translating.space/internal/services/translate/storage"
	apperrors "github.com/louisbranch/translating.space/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) ResolveSource(context.Context, storage.User, string, string) (catalog.Source, error) {
	return catalog.Source{}, apperrors.E(apperrors.KindUnavailable, "source catalog is not configured")
}

func (unavailableGateway) SummarizeSource(context.Context, int64) (storage.SourceSummary, error) {
	return storage.SourceSummary{}, apperrors.E(apperrors.KindUnavailable, "source catalog is not configured")
}

func (unavailableGateway) CountUnits(context.Context, int64, storage.UnitFilter) (int, error) {
	return 0, apperrors.E(apperrors.KindUnavailable, "source catalog is not configured")
}

func (unavailableGateway) ListUnits(context.Context, int64, storage.UnitFilter, int, int) ([]storage.Unit, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "source catalog is not configured")
}

func (unavailableGateway) ListSourcesByChecksums(context.Context, int64, []string) (map[string]storage.Source, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "source catalog is not configured")
}

func (unavailableGateway) SourceCapabilities(context.Context, storage.User, storage.Project) (permission.Capabilities, error) {
	return permission.Capabilities{}, nil
}
