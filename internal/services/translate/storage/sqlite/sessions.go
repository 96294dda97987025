package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/louisbranch/translating.space/internal/services/translate/storage"
)

// PutWebSession persists a web session.
func (s *Store) PutWebSession(ctx context.Context, session storage.WebSession) error {
	if err := s.ready(); err != nil {
		return err
	}
	session.ID = strings.TrimSpace(session.ID)
	if session.ID == "" {
		return fmt.Errorf("session id is required")
	}
	session.UserID = strings.TrimSpace(session.UserID)
	if session.UserID == "" {
		return fmt.Errorf("user id is required")
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}
	if _, err := s.exec(ctx, s.sq.Insert("web_sessions").
		Columns("id", "user_id", "created_at", "expires_at").
		Values(session.ID, session.UserID, timeToUnixMillis(session.CreatedAt), timeToUnixMillis(session.ExpiresAt))); err != nil {
		return fmt.Errorf("put web session: %w", uniqueViolation(err))
	}
	return nil
}

// GetWebSession loads an unexpired web session.
func (s *Store) GetWebSession(ctx context.Context, id string) (storage.WebSession, error) {
	if err := s.ready(); err != nil {
		return storage.WebSession{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return storage.WebSession{}, storage.ErrNotFound
	}
	row, err := s.queryRow(ctx, s.sq.Select("id", "user_id", "created_at", "expires_at").
		From("web_sessions").
		Where(sq.Eq{"id": id}).
		Where(sq.Gt{"expires_at": timeToUnixMillis(time.Now())}).
		Limit(1))
	if err != nil {
		return storage.WebSession{}, err
	}
	var session storage.WebSession
	var createdAt, expiresAt int64
	if err := row.Scan(&session.ID, &session.UserID, &createdAt, &expiresAt); err != nil {
		return storage.WebSession{}, notFound(fmt.Errorf("get web session: %w", err))
	}
	session.CreatedAt = unixMillisToTime(createdAt)
	session.ExpiresAt = unixMillisToTime(expiresAt)
	return session, nil
}

// DeleteWebSession removes a web session. Deleting an unknown session is not
// an error.
func (s *Store) DeleteWebSession(ctx context.Context, id string) error {
	if err := s.ready(); err != nil {
		return err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	if _, err := s.exec(ctx, s.sq.Delete("web_sessions").Where(sq.Eq{"id": id})); err != nil {
		return fmt.Errorf("delete web session: %w", err)
	}
	return nil
}
