package publicauth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/louisbranch/translating.space/internal/platform/id"
	"github.com/louisbranch/translating.space/internal/platform/otel"
	"github.com/louisbranch/translating.space/internal/services/translate/storage"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"
)

// Store is the persistence surface used by sign in.
type Store interface {
	storage.AccountStore
	storage.SessionStore
}

// decoyHash is compared against when the username is unknown so both
// failures cost one bcrypt comparison.
var decoyHash = sync.OnceValue(func() []byte {
	hash, _ := bcrypt.GenerateFromPassword([]byte("translating.space"), bcrypt.DefaultCost)
	return hash
})

// NewStoreGateway builds a gateway over the account and session store.
func NewStoreGateway(store Store) Gateway {
	if store == nil {
		return unavailableGateway{}
	}
	return storeGateway{
		store:  store,
		now:    time.Now,
		newID:  id.NewID,
		tracer: otel.Tracer("translating.space/web/publicauth"),
	}
}

type storeGateway struct {
	store  Store
	now    func() time.Time
	newID  func() (string, error)
	tracer trace.Tracer
}

func (g storeGateway) Authenticate(ctx context.Context, username string, password string) (storage.User, error) {
	ctx, span := g.tracer.Start(ctx, "publicauth.Authenticate")
	defer span.End()

	user, err := g.store.GetUserByUsername(ctx, username)
	if errors.Is(err, storage.ErrNotFound) {
		_ = bcrypt.CompareHashAndPassword(decoyHash(), []byte(password))
		return storage.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return storage.User{}, fmt.Errorf("get user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return storage.User{}, ErrInvalidCredentials
	}
	span.SetAttributes(attribute.String("user.id", user.ID))
	return user, nil
}

func (g storeGateway) CreateSession(ctx context.Context, userID string, ttl time.Duration) (storage.WebSession, error) {
	ctx, span := g.tracer.Start(ctx, "publicauth.CreateSession")
	defer span.End()

	sessionID, err := g.newID()
	if err != nil {
		return storage.WebSession{}, err
	}
	now := g.now().UTC()
	session := storage.WebSession{
		ID:        sessionID,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	if err := g.store.PutWebSession(ctx, session); err != nil {
		return storage.WebSession{}, fmt.Errorf("put web session: %w", err)
	}
	return session, nil
}

func (g storeGateway) DeleteSession(ctx context.Context, sessionID string) error {
	ctx, span := g.tracer.Start(ctx, "publicauth.DeleteSession")
	defer span.End()
	return g.store.DeleteWebSession(ctx, sessionID)
}
