package publicauth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/louisbranch/translating.space/internal/services/translate/storage"
	apperrors "github.com/louisbranch/translating.space/internal/services/web/platform/errors"
)

// DefaultSessionTTL bounds sessions created without a configured lifetime.
const DefaultSessionTTL = 14 * 24 * time.Hour

// ErrInvalidCredentials reports an unknown username or a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Gateway authenticates users and persists their web sessions.
type Gateway interface {
	Authenticate(ctx context.Context, username string, password string) (storage.User, error)
	CreateSession(ctx context.Context, userID string, ttl time.Duration) (storage.WebSession, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type service struct {
	gateway Gateway
	ttl     time.Duration
}

func newService(gateway Gateway, ttl time.Duration) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return service{gateway: gateway, ttl: ttl}
}

// login checks credentials and opens a session. Blank input never reaches the
// gateway.
func (s service) login(ctx context.Context, username string, password string) (storage.WebSession, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return storage.WebSession{}, ErrInvalidCredentials
	}
	user, err := s.gateway.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return storage.WebSession{}, ErrInvalidCredentials
		}
		return storage.WebSession{}, err
	}
	session, err := s.gateway.CreateSession(ctx, user.ID, s.ttl)
	if err != nil {
		return storage.WebSession{}, apperrors.Wrap(apperrors.KindUnavailable, "web.error.unavailable", err)
	}
	return session, nil
}

// logout forgets a session. Unknown sessions are already logged out.
func (s service) logout(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil
	}
	if err := s.gateway.DeleteSession(ctx, sessionID); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return err
	}
	return nil
}
