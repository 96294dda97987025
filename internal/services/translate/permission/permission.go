// Package permission evaluates per-project capabilities of catalog users.
package permission

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/louisbranch/translating.space/internal/services/translate/storage"
)

// GrantReader lists the permissions a user holds on a project.
type GrantReader interface {
	ListGrants(ctx context.Context, projectID int64, userID string) ([]storage.Permission, error)
}

// Checker answers capability questions. The zero User is anonymous.
type Checker struct {
	grants GrantReader
}

// NewChecker builds a checker backed by grants.
func NewChecker(grants GrantReader) Checker {
	return Checker{grants: grants}
}

// CanView reports whether user may browse project. Public projects are open to
// everyone; private ones need a superuser or any grant on the project.
func (c Checker) CanView(ctx context.Context, user storage.User, project storage.Project) (bool, error) {
	if project.AccessControl != storage.AccessPrivate {
		return true, nil
	}
	if user.IsSuperuser {
		return true, nil
	}
	permissions, err := c.list(ctx, user, project)
	if err != nil {
		return false, err
	}
	return len(permissions) > 0, nil
}

// CanEditPriority reports whether user may change source priorities.
func (c Checker) CanEditPriority(ctx context.Context, user storage.User, project storage.Project) (bool, error) {
	return c.has(ctx, user, project, storage.PermissionEditPriority)
}

// CanEditFlags reports whether user may change source check flags.
func (c Checker) CanEditFlags(ctx context.Context, user storage.User, project storage.Project) (bool, error) {
	return c.has(ctx, user, project, storage.PermissionEditFlags)
}

// CanUploadScreenshot reports whether user may attach source screenshots.
func (c Checker) CanUploadScreenshot(ctx context.Context, user storage.User, project storage.Project) (bool, error) {
	return c.has(ctx, user, project, storage.PermissionUploadScreenshot)
}

// Capabilities bundles the source-editing capabilities of one user.
type Capabilities struct {
	EditPriority     bool
	EditFlags        bool
	UploadScreenshot bool
}

// SourceCapabilities resolves every source-editing capability in one lookup.
func (c Checker) SourceCapabilities(ctx context.Context, user storage.User, project storage.Project) (Capabilities, error) {
	if strings.TrimSpace(user.ID) == "" {
		return Capabilities{}, nil
	}
	if user.IsSuperuser {
		return Capabilities{EditPriority: true, EditFlags: true, UploadScreenshot: true}, nil
	}
	permissions, err := c.list(ctx, user, project)
	if err != nil {
		return Capabilities{}, err
	}
	return Capabilities{
		EditPriority:     slices.Contains(permissions, storage.PermissionEditPriority),
		EditFlags:        slices.Contains(permissions, storage.PermissionEditFlags),
		UploadScreenshot: slices.Contains(permissions, storage.PermissionUploadScreenshot),
	}, nil
}

func (c Checker) has(ctx context.Context, user storage.User, project storage.Project, permission storage.Permission) (bool, error) {
	if strings.TrimSpace(user.ID) == "" {
		return false, nil
	}
	if user.IsSuperuser {
		return true, nil
	}
	permissions, err := c.list(ctx, user, project)
	if err != nil {
		return false, err
	}
	return slices.Contains(permissions, permission), nil
}

func (c Checker) list(ctx context.Context, user storage.User, project storage.Project) ([]storage.Permission, error) {
	if strings.TrimSpace(user.ID) == "" {
		return nil, nil
	}
	if c.grants == nil {
		return nil, fmt.Errorf("grant reader is not configured")
	}
	permissions, err := c.grants.ListGrants(ctx, project.ID, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list grants: %w", err)
	}
	return permissions, nil
}
