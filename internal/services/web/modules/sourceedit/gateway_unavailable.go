package sourceedit

import (
	"context"

	"github.com/louisbranch/translating.space/internal/services/translate/catalog"
	"github.com/louisbranch/translating.space/internal/services/translate/screenshot"
	"github.com/louisbranch/translating.space/internal/services/translate/storage"
	apperrors "github.com/louisbranch/translating.space/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func unavailable() error {
	return apperrors.E(apperrors.KindUnavailable, "source editing is not configured")
}

func (unavailableGateway) GetSource(context.Context, int64) (storage.Source, error) {
	return storage.Source{}, unavailable()
}

func (unavailableGateway) ComponentByID(context.Context, int64) (catalog.Component, error) {
	return catalog.Component{}, unavailable()
}

func (unavailableGateway) CanEditPriority(context.Context, storage.User, storage.Project) (bool, error) {
	return false, nil
}

func (unavailableGateway) CanEditFlags(context.Context, storage.User, storage.Project) (bool, error) {
	return false, nil
}

func (unavailableGateway) CanUploadScreenshot(context.Context, storage.User, storage.Project) (bool, error) {
	return false, nil
}

func (unavailableGateway) UpdateSourcePriority(context.Context, int64, int) error {
	return unavailable()
}

func (unavailableGateway) UpdateSourceCheckFlags(context.Context, int64, string) error {
	return unavailable()
}

func (unavailableGateway) UpdateSourceScreenshot(context.Context, int64, string) error {
	return unavailable()
}

func (unavailableGateway) PutScreenshot(context.Context, screenshot.Image) error {
	return unavailable()
}

func (unavailableGateway) DeleteScreenshot(context.Context, string) error {
	return unavailable()
}
