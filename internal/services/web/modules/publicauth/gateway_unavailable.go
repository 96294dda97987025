package publicauth

import (
	"context"
	"time"

	"github.com/louisbranch/translating.space/internal/services/translate/storage"
	apperrors "github.com/louisbranch/translating.space/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func unavailable() error {
	return apperrors.E(apperrors.KindUnavailable, "sign in is not configured")
}

func (unavailableGateway) Authenticate(context.Context, string, string) (storage.User, error) {
	return storage.User{}, unavailable()
}

func (unavailableGateway) CreateSession(context.Context, string, time.Duration) (storage.WebSession, error) {
	return storage.WebSession{}, unavailable()
}

func (unavailableGateway) DeleteSession(context.Context, string) error {
	return unavailable()
}
