package sqlite

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/louisbranch/translating.space/internal/services/translate/storage"
)

var userColumns = []string{"id", "username", "display_name", "password_hash", "is_superuser"}

// GetUser loads a user by id.
func (s *Store) GetUser(ctx context.Context, id string) (storage.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return storage.User{}, storage.ErrNotFound
	}
	return s.getUser(ctx, sq.Eq{"id": id})
}

// GetUserByUsername loads a user by username.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (storage.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return storage.User{}, storage.ErrNotFound
	}
	return s.getUser(ctx, sq.Eq{"username": username})
}

func (s *Store) getUser(ctx context.Context, where sq.Eq) (storage.User, error) {
	if err := s.ready(); err != nil {
		return storage.User{}, err
	}
	row, err := s.queryRow(ctx, s.sq.Select(userColumns...).From("users").Where(where).Limit(1))
	if err != nil {
		return storage.User{}, err
	}
	var user storage.User
	var superuser int64
	if err := row.Scan(&user.ID, &user.Username, &user.DisplayName, &user.PasswordHash, &superuser); err != nil {
		return storage.User{}, notFound(fmt.Errorf("get user: %w", err))
	}
	user.IsSuperuser = superuser != 0
	return user, nil
}

// ListGrants returns the permissions a user holds on a project.
func (s *Store) ListGrants(ctx context.Context, projectID int64, userID string) ([]storage.Permission, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return []storage.Permission{}, nil
	}
	rows, err := s.query(ctx, s.sq.Select("permission").
		From("project_grants").
		Where(sq.Eq{"project_id": projectID, "user_id": userID}).
		OrderBy("permission"))
	if err != nil {
		return nil, fmt.Errorf("list grants: %w", err)
	}
	defer rows.Close()

	permissions := make([]storage.Permission, 0)
	for rows.Next() {
		var permission string
		if err := rows.Scan(&permission); err != nil {
			return nil, fmt.Errorf("scan grant: %w", err)
		}
		permissions = append(permissions, storage.Permission(permission))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate grants: %w", err)
	}
	return permissions, nil
}
