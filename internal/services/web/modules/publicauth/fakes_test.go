package publicauth

import (
	"context"
	"errors"
	"time"

	"github.com/louisbranch/translating.space/internal/services/translate/storage"
)

// fakeGateway authenticates against plain-text passwords and keeps sessions
// in memory.
type fakeGateway struct {
	users     map[string]storage.User
	passwords map[string]string
	sessions  map[string]storage.WebSession
	createErr error
	deleteErr error
	authCalls int
	lastTTL   time.Duration
	nextID    string
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		users: map[string]storage.User{
			"ada": {ID: "u1", Username: "ada", DisplayName: "Ada"},
		},
		passwords: map[string]string{"ada": "s3cret"},
		sessions:  make(map[string]storage.WebSession),
		nextID:    "ws-1",
	}
}

func (f *fakeGateway) Authenticate(_ context.Context, username string, password string) (storage.User, error) {
	f.authCalls++
	user, ok := f.users[username]
	if !ok || f.passwords[username] != password {
		return storage.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (f *fakeGateway) CreateSession(_ context.Context, userID string, ttl time.Duration) (storage.WebSession, error) {
	if f.createErr != nil {
		return storage.WebSession{}, f.createErr
	}
	f.lastTTL = ttl
	session := storage.WebSession{ID: f.nextID, UserID: userID}
	f.sessions[session.ID] = session
	return session, nil
}

func (f *fakeGateway) DeleteSession(_ context.Context, sessionID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.sessions[sessionID]; !ok {
		return storage.ErrNotFound
	}
	delete(f.sessions, sessionID)
	return nil
}

// fakeStore is an in-memory account and session store.
type fakeStore struct {
	users    map[string]storage.User
	sessions map[string]storage.WebSession
	putErr   error
}

func newFakeStore(users ...storage.User) *fakeStore {
	s := &fakeStore{users: make(map[string]storage.User), sessions: make(map[string]storage.WebSession)}
	for _, user := range users {
		s.users[user.Username] = user
	}
	return s
}

func (s *fakeStore) GetUser(_ context.Context, id string) (storage.User, error) {
	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return storage.User{}, storage.ErrNotFound
}

func (s *fakeStore) GetUserByUsername(_ context.Context, username string) (storage.User, error) {
	user, ok := s.users[username]
	if !ok {
		return storage.User{}, storage.ErrNotFound
	}
	return user, nil
}

func (s *fakeStore) ListGrants(context.Context, int64, string) ([]storage.Permission, error) {
	return nil, nil
}

func (s *fakeStore) PutWebSession(_ context.Context, session storage.WebSession) error {
	if s.putErr != nil {
		return s.putErr
	}
	s.sessions[session.ID] = session
	return nil
}

func (s *fakeStore) GetWebSession(_ context.Context, id string) (storage.WebSession, error) {
	session, ok := s.sessions[id]
	if !ok {
		return storage.WebSession{}, storage.ErrNotFound
	}
	return session, nil
}

func (s *fakeStore) DeleteWebSession(_ context.Context, id string) error {
	if _, ok := s.sessions[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

var errBoom = errors.New("boom")
