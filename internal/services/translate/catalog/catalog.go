// Package catalog resolves components visible to a user.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/louisbranch/translating.space/internal/services/translate/permission"
	"github.com/louisbranch/translating.space/internal/services/translate/storage"
)

// ErrNoTranslation reports a component without any translation. It matches
// storage.ErrNotFound.
var ErrNoTranslation = fmt.Errorf("no translation exists in this component: %w", storage.ErrNotFound)

// Component is a resolved component with its project.
type Component struct {
	Project   storage.Project
	Component storage.Component
}

// Source is a resolved component with the translation standing in for its
// source strings. All translations share the same source strings, so the
// first one is used.
type Source struct {
	Component
	Translation storage.Translation
}

// Resolver looks up components and enforces view permission.
type Resolver struct {
	store  storage.CatalogStore
	access permission.Checker
}

// NewResolver builds a resolver.
func NewResolver(store storage.CatalogStore, access permission.Checker) Resolver {
	return Resolver{store: store, access: access}
}

// ResolveComponent loads a component by slugs. Components the user may not
// view are reported as storage.ErrNotFound.
func (r Resolver) ResolveComponent(ctx context.Context, user storage.User, projectSlug string, componentSlug string) (Component, error) {
	if r.store == nil {
		return Component{}, errors.New("catalog store is not configured")
	}
	project, err := r.store.GetProjectBySlug(ctx, projectSlug)
	if err != nil {
		return Component{}, fmt.Errorf("resolve project %q: %w", projectSlug, err)
	}
	visible, err := r.access.CanView(ctx, user, project)
	if err != nil {
		return Component{}, err
	}
	if !visible {
		return Component{}, fmt.Errorf("resolve project %q: %w", projectSlug, storage.ErrNotFound)
	}
	component, err := r.store.GetComponentBySlug(ctx, project.ID, componentSlug)
	if err != nil {
		return Component{}, fmt.Errorf("resolve component %q: %w", componentSlug, err)
	}
	return Component{Project: project, Component: component}, nil
}

// ResolveSource resolves a component and its first translation.
func (r Resolver) ResolveSource(ctx context.Context, user storage.User, projectSlug string, componentSlug string) (Source, error) {
	component, err := r.ResolveComponent(ctx, user, projectSlug, componentSlug)
	if err != nil {
		return Source{}, err
	}
	translations, err := r.store.ListTranslations(ctx, component.Component.ID)
	if err != nil {
		return Source{}, err
	}
	if len(translations) == 0 {
		return Source{}, ErrNoTranslation
	}
	return Source{Component: component, Translation: translations[0]}, nil
}

// Translations lists the translations of a resolved component.
func (r Resolver) Translations(ctx context.Context, component Component) ([]storage.Translation, error) {
	if r.store == nil {
		return nil, errors.New("catalog store is not configured")
	}
	return r.store.ListTranslations(ctx, component.Component.ID)
}

// TranslationByLanguage loads the component translation for a language code.
func (r Resolver) TranslationByLanguage(ctx context.Context, component Component, code string) (storage.Translation, error) {
	if r.store == nil {
		return storage.Translation{}, errors.New("catalog store is not configured")
	}
	translation, err := r.store.GetTranslationByLanguage(ctx, component.Component.ID, code)
	if err != nil {
		return storage.Translation{}, fmt.Errorf("resolve translation %q: %w", code, err)
	}
	return translation, nil
}

// ComponentByID loads a component and its project by component id without a
// visibility check. Callers enforce their own capability.
func (r Resolver) ComponentByID(ctx context.Context, componentID int64) (Component, error) {
	if r.store == nil {
		return Component{}, errors.New("catalog store is not configured")
	}
	component, err := r.store.GetComponent(ctx, componentID)
	if err != nil {
		return Component{}, fmt.Errorf("load component: %w", err)
	}
	project, err := r.store.GetProject(ctx, component.ProjectID)
	if err != nil {
		return Component{}, fmt.Errorf("load project: %w", err)
	}
	return Component{Project: project, Component: component}, nil
}
