package sqlite

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/louisbranch/translating.space/internal/services/translate/storage"
)

var projectColumns = []string{"id", "slug", "name", "access_control"}

var componentColumns = []string{"id", "project_id", "slug", "name"}

var translationColumns = []string{"t.id", "t.component_id", "l.id", "l.code", "l.name", "l.direction"}

// GetProjectBySlug loads a project by slug.
func (s *Store) GetProjectBySlug(ctx context.Context, slug string) (storage.Project, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return storage.Project{}, storage.ErrNotFound
	}
	return s.getProject(ctx, sq.Eq{"slug": slug})
}

// GetProject loads a project by id.
func (s *Store) GetProject(ctx context.Context, id int64) (storage.Project, error) {
	return s.getProject(ctx, sq.Eq{"id": id})
}

func (s *Store) getProject(ctx context.Context, where sq.Eq) (storage.Project, error) {
	if err := s.ready(); err != nil {
		return storage.Project{}, err
	}
	row, err := s.queryRow(ctx, s.sq.Select(projectColumns...).From("projects").Where(where).Limit(1))
	if err != nil {
		return storage.Project{}, err
	}
	var project storage.Project
	var access string
	if err := row.Scan(&project.ID, &project.Slug, &project.Name, &access); err != nil {
		return storage.Project{}, notFound(fmt.Errorf("get project: %w", err))
	}
	project.AccessControl = storage.AccessControl(access)
	return project, nil
}

// GetComponentBySlug loads a component by its slug inside a project.
func (s *Store) GetComponentBySlug(ctx context.Context, projectID int64, slug string) (storage.Component, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return storage.Component{}, storage.ErrNotFound
	}
	return s.getComponent(ctx, sq.Eq{"project_id": projectID, "slug": slug})
}

// GetComponent loads a component by id.
func (s *Store) GetComponent(ctx context.Context, id int64) (storage.Component, error) {
	return s.getComponent(ctx, sq.Eq{"id": id})
}

func (s *Store) getComponent(ctx context.Context, where sq.Eq) (storage.Component, error) {
	if err := s.ready(); err != nil {
		return storage.Component{}, err
	}
	row, err := s.queryRow(ctx, s.sq.Select(componentColumns...).From("components").Where(where).Limit(1))
	if err != nil {
		return storage.Component{}, err
	}
	var component storage.Component
	if err := row.Scan(&component.ID, &component.ProjectID, &component.Slug, &component.Name); err != nil {
		return storage.Component{}, notFound(fmt.Errorf("get component: %w", err))
	}
	return component, nil
}

func (s *Store) translationQuery() sq.SelectBuilder {
	return s.sq.Select(translationColumns...).
		From("translations t").
		Join("languages l ON l.id = t.language_id")
}

// ListTranslations returns the translations of a component ordered by id.
func (s *Store) ListTranslations(ctx context.Context, componentID int64) ([]storage.Translation, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	rows, err := s.query(ctx, s.translationQuery().Where(sq.Eq{"t.component_id": componentID}).OrderBy("t.id"))
	if err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}
	defer rows.Close()

	translations := make([]storage.Translation, 0)
	for rows.Next() {
		translation, err := scanTranslation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan translation: %w", err)
		}
		translations = append(translations, translation)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate translations: %w", err)
	}
	return translations, nil
}

// GetTranslationByLanguage loads the translation of a component into the
// language with the given code.
func (s *Store) GetTranslationByLanguage(ctx context.Context, componentID int64, languageCode string) (storage.Translation, error) {
	if err := s.ready(); err != nil {
		return storage.Translation{}, err
	}
	languageCode = strings.TrimSpace(languageCode)
	if languageCode == "" {
		return storage.Translation{}, storage.ErrNotFound
	}
	row, err := s.queryRow(ctx, s.translationQuery().
		Where(sq.Eq{"t.component_id": componentID, "l.code": languageCode}).
		Limit(1))
	if err != nil {
		return storage.Translation{}, err
	}
	translation, err := scanTranslation(row)
	if err != nil {
		return storage.Translation{}, notFound(fmt.Errorf("get translation: %w", err))
	}
	return translation, nil
}

func (s *Store) getTranslation(ctx context.Context, id int64) (storage.Translation, error) {
	row, err := s.queryRow(ctx, s.translationQuery().Where(sq.Eq{"t.id": id}).Limit(1))
	if err != nil {
		return storage.Translation{}, err
	}
	translation, err := scanTranslation(row)
	if err != nil {
		return storage.Translation{}, notFound(fmt.Errorf("get translation: %w", err))
	}
	return translation, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTranslation(row rowScanner) (storage.Translation, error) {
	var translation storage.Translation
	var direction string
	if err := row.Scan(
		&translation.ID,
		&translation.ComponentID,
		&translation.Language.ID,
		&translation.Language.Code,
		&translation.Language.Name,
		&direction,
	); err != nil {
		return storage.Translation{}, err
	}
	translation.Language.Direction = storage.Direction(direction)
	return translation, nil
}

// GetLanguageByCode loads a language by code.
func (s *Store) GetLanguageByCode(ctx context.Context, code string) (storage.Language, error) {
	if err := s.ready(); err != nil {
		return storage.Language{}, err
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return storage.Language{}, storage.ErrNotFound
	}
	row, err := s.queryRow(ctx, s.sq.Select("id", "code", "name", "direction").From("languages").Where(sq.Eq{"code": code}).Limit(1))
	if err != nil {
		return storage.Language{}, err
	}
	var language storage.Language
	var direction string
	if err := row.Scan(&language.ID, &language.Code, &language.Name, &direction); err != nil {
		return storage.Language{}, notFound(fmt.Errorf("get language: %w", err))
	}
	language.Direction = storage.Direction(direction)
	return language, nil
}

// ListLanguagesByCodes returns the languages with the given codes ordered by
// name. Unknown codes are skipped.
func (s *Store) ListLanguagesByCodes(ctx context.Context, codes []string) ([]storage.Language, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if len(codes) == 0 {
		return []storage.Language{}, nil
	}
	rows, err := s.query(ctx, s.sq.Select("id", "code", "name", "direction").
		From("languages").
		Where(sq.Eq{"code": codes}).
		OrderBy("name", "code"))
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}
	defer rows.Close()

	languages := make([]storage.Language, 0, len(codes))
	for rows.Next() {
		var language storage.Language
		var direction string
		if err := rows.Scan(&language.ID, &language.Code, &language.Name, &direction); err != nil {
			return nil, fmt.Errorf("scan language: %w", err)
		}
		language.Direction = storage.Direction(direction)
		languages = append(languages, language)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate languages: %w", err)
	}
	return languages, nil
}
