package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/louisbranch/translating.space/internal/services/translate/storage"
)

// CreateProject inserts a project. Access control defaults to public.
func (s *Store) CreateProject(ctx context.Context, project storage.Project) (storage.Project, error) {
	if err := s.ready(); err != nil {
		return storage.Project{}, err
	}
	project.Slug = strings.TrimSpace(project.Slug)
	if project.Slug == "" {
		return storage.Project{}, fmt.Errorf("project slug is required")
	}
	if project.AccessControl == "" {
		project.AccessControl = storage.AccessPublic
	}
	id, err := s.insert(ctx, "create project", s.sq.Insert("projects").
		Columns("slug", "name", "access_control").
		Values(project.Slug, project.Name, string(project.AccessControl)))
	if err != nil {
		return storage.Project{}, err
	}
	project.ID = id
	return project, nil
}

// CreateComponent inserts a component.
func (s *Store) CreateComponent(ctx context.Context, component storage.Component) (storage.Component, error) {
	if err := s.ready(); err != nil {
		return storage.Component{}, err
	}
	component.Slug = strings.TrimSpace(component.Slug)
	if component.Slug == "" {
		return storage.Component{}, fmt.Errorf("component slug is required")
	}
	id, err := s.insert(ctx, "create component", s.sq.Insert("components").
		Columns("project_id", "slug", "name").
		Values(component.ProjectID, component.Slug, component.Name))
	if err != nil {
		return storage.Component{}, err
	}
	component.ID = id
	return component, nil
}

// CreateLanguage inserts a language. Direction defaults to ltr.
func (s *Store) CreateLanguage(ctx context.Context, language storage.Language) (storage.Language, error) {
	if err := s.ready(); err != nil {
		return storage.Language{}, err
	}
	language.Code = strings.TrimSpace(language.Code)
	if language.Code == "" {
		return storage.Language{}, fmt.Errorf("language code is required")
	}
	if language.Direction == "" {
		language.Direction = storage.DirectionLTR
	}
	id, err := s.insert(ctx, "create language", s.sq.Insert("languages").
		Columns("code", "name", "direction").
		Values(language.Code, language.Name, string(language.Direction)))
	if err != nil {
		return storage.Language{}, err
	}
	language.ID = id
	return language, nil
}

// CreateTranslation inserts the translation of a component into a language.
func (s *Store) CreateTranslation(ctx context.Context, componentID int64, languageID int64) (storage.Translation, error) {
	if err := s.ready(); err != nil {
		return storage.Translation{}, err
	}
	id, err := s.insert(ctx, "create translation", s.sq.Insert("translations").
		Columns("component_id", "language_id").
		Values(componentID, languageID))
	if err != nil {
		return storage.Translation{}, err
	}
	return s.getTranslation(ctx, id)
}

// CreateUnit inserts a unit. State defaults to untranslated.
func (s *Store) CreateUnit(ctx context.Context, unit storage.Unit) (storage.Unit, error) {
	if err := s.ready(); err != nil {
		return storage.Unit{}, err
	}
	if strings.TrimSpace(unit.Checksum) == "" {
		return storage.Unit{}, fmt.Errorf("unit checksum is required")
	}
	if unit.State == "" {
		unit.State = storage.UnitUntranslated
	}
	id, err := s.insert(ctx, "create unit", s.sq.Insert("units").
		Columns("translation_id", "checksum", "position", "priority", "source", "target", "context", "state").
		Values(unit.TranslationID, unit.Checksum, unit.Position, unit.Priority, unit.Source, unit.Target, unit.Context, string(unit.State)))
	if err != nil {
		return storage.Unit{}, err
	}
	unit.ID = id
	return unit, nil
}

// CreateSource inserts source metadata for a component string.
func (s *Store) CreateSource(ctx context.Context, source storage.Source) (storage.Source, error) {
	if err := s.ready(); err != nil {
		return storage.Source{}, err
	}
	if strings.TrimSpace(source.Checksum) == "" {
		return storage.Source{}, fmt.Errorf("source checksum is required")
	}
	id, err := s.insert(ctx, "create source", s.sq.Insert("sources").
		Columns("component_id", "checksum", "priority", "check_flags", "screenshot").
		Values(source.ComponentID, source.Checksum, source.Priority, source.CheckFlags, source.Screenshot))
	if err != nil {
		return storage.Source{}, err
	}
	source.ID = id
	return source, nil
}

// CreateCheck inserts a failing check.
func (s *Store) CreateCheck(ctx context.Context, check storage.Check) (storage.Check, error) {
	if err := s.ready(); err != nil {
		return storage.Check{}, err
	}
	if strings.TrimSpace(check.Name) == "" {
		return storage.Check{}, fmt.Errorf("check name is required")
	}
	id, err := s.insert(ctx, "create check", s.sq.Insert("checks").
		Columns("component_id", "checksum", "language_id", "name", "ignore").
		Values(check.ComponentID, check.Checksum, nullableID(check.LanguageID), check.Name, boolToInt(check.Ignore)))
	if err != nil {
		return storage.Check{}, err
	}
	check.ID = id
	return check, nil
}

// CreateComment inserts a comment.
func (s *Store) CreateComment(ctx context.Context, comment storage.Comment) (storage.Comment, error) {
	if err := s.ready(); err != nil {
		return storage.Comment{}, err
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC()
	}
	var userID any
	if trimmed := strings.TrimSpace(comment.UserID); trimmed != "" {
		userID = trimmed
	}
	id, err := s.insert(ctx, "create comment", s.sq.Insert("comments").
		Columns("component_id", "checksum", "language_id", "user_id", "body", "created_at").
		Values(comment.ComponentID, comment.Checksum, nullableID(comment.LanguageID), userID, comment.Body, timeToUnixMillis(comment.CreatedAt)))
	if err != nil {
		return storage.Comment{}, err
	}
	comment.ID = id
	return comment, nil
}

// CreateUser inserts a user. The id must be assigned by the caller.
func (s *Store) CreateUser(ctx context.Context, user storage.User) (storage.User, error) {
	if err := s.ready(); err != nil {
		return storage.User{}, err
	}
	user.ID = strings.TrimSpace(user.ID)
	user.Username = strings.TrimSpace(user.Username)
	if user.ID == "" || user.Username == "" {
		return storage.User{}, fmt.Errorf("user id and username are required")
	}
	if _, err := s.exec(ctx, s.sq.Insert("users").
		Columns(userColumns...).
		Values(user.ID, user.Username, user.DisplayName, user.PasswordHash, boolToInt(user.IsSuperuser))); err != nil {
		return storage.User{}, fmt.Errorf("create user: %w", uniqueViolation(err))
	}
	return user, nil
}

// PutGrant gives a user a permission on a project. Repeated grants are no-ops.
func (s *Store) PutGrant(ctx context.Context, grant storage.Grant) error {
	if err := s.ready(); err != nil {
		return err
	}
	if strings.TrimSpace(grant.UserID) == "" || grant.Permission == "" {
		return fmt.Errorf("grant user and permission are required")
	}
	if _, err := s.exec(ctx, s.sq.Insert("project_grants").
		Options("OR IGNORE").
		Columns("project_id", "user_id", "permission").
		Values(grant.ProjectID, strings.TrimSpace(grant.UserID), string(grant.Permission))); err != nil {
		return fmt.Errorf("put grant: %w", err)
	}
	return nil
}

func (s *Store) insert(ctx context.Context, op string, query sq.InsertBuilder) (int64, error) {
	result, err := s.exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, uniqueViolation(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: last insert id: %w", op, err)
	}
	return id, nil
}
