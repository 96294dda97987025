package web

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/louisbranch/translating.space/internal/services/translate/storage"
	"github.com/louisbranch/translating.space/internal/services/web/platform/httpx"
	"github.com/louisbranch/translating.space/internal/services/web/platform/sessioncookie"
)

// SessionUserStore is the narrow store surface needed by session validation.
type SessionUserStore interface {
	GetWebSession(ctx context.Context, id string) (storage.WebSession, error)
	GetUser(ctx context.Context, id string) (storage.User, error)
}

// sessionResolver validates session cookies and resolves the signed-in user.
type sessionResolver struct {
	store SessionUserStore
	now   func() time.Time
}

func newSessionResolver(store SessionUserStore) sessionResolver {
	return sessionResolver{store: store, now: time.Now}
}

func (r sessionResolver) resolveSessionUser(ctx context.Context, sessionID string) (storage.User, bool) {
	if r.store == nil {
		return storage.User{}, false
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return storage.User{}, false
	}
	session, err := r.store.GetWebSession(ctx, sessionID)
	if err != nil {
		return storage.User{}, false
	}
	if !session.ExpiresAt.IsZero() && !r.now().Before(session.ExpiresAt) {
		return storage.User{}, false
	}
	user, err := r.store.GetUser(ctx, session.UserID)
	if err != nil || strings.TrimSpace(user.ID) == "" {
		return storage.User{}, false
	}
	return user, true
}

func (r sessionResolver) resolveRequestUserUncached(req *http.Request) storage.User {
	if req == nil {
		return storage.User{}
	}
	sessionID, ok := sessioncookie.Read(req)
	if !ok {
		return storage.User{}
	}
	user, _ := r.resolveSessionUser(req.Context(), sessionID)
	return user
}

// resolveRequestUser returns the signed-in user, looking the session up at
// most once per request.
func (r sessionResolver) resolveRequestUser(req *http.Request) storage.User {
	if state := requestPrincipalStateFromRequest(req); state != nil {
		state.userOnce.Do(func() {
			state.user = r.resolveRequestUserUncached(req)
		})
		return state.user
	}
	return r.resolveRequestUserUncached(req)
}

func (r sessionResolver) resolveRequestSignedIn(req *http.Request) bool {
	return strings.TrimSpace(r.resolveRequestUser(req).ID) != ""
}

type requestPrincipalState struct {
	userOnce sync.Once
	user     storage.User
}

type requestPrincipalStateKey struct{}

func withRequestPrincipalState() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r == nil {
				next.ServeHTTP(w, r)
				return
			}
			state := &requestPrincipalState{}
			ctx := context.WithValue(r.Context(), requestPrincipalStateKey{}, state)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func requestPrincipalStateFromRequest(r *http.Request) *requestPrincipalState {
	if r == nil {
		return nil
	}
	state, _ := r.Context().Value(requestPrincipalStateKey{}).(*requestPrincipalState)
	return state
}
