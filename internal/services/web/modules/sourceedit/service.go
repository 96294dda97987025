package sourceedit

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/louisbranch/translating.space/internal/services/translate/catalog"
	"github.com/louisbranch/translating.space/internal/services/translate/check"
	"github.com/louisbranch/translating.space/internal/services/translate/priority"
	"github.com/louisbranch/translating.space/internal/services/translate/screenshot"
	"github.com/louisbranch/translating.space/internal/services/translate/storage"
	apperrors "github.com/louisbranch/translating.space/internal/services/web/platform/errors"
	"github.com/louisbranch/translating.space/internal/services/web/routepath"
)

// Gateway reads and updates source string metadata.
type Gateway interface {
	GetSource(ctx context.Context, id int64) (storage.Source, error)
	ComponentByID(ctx context.Context, componentID int64) (catalog.Component, error)
	CanEditPriority(ctx context.Context, user storage.User, project storage.Project) (bool, error)
	CanEditFlags(ctx context.Context, user storage.User, project storage.Project) (bool, error)
	CanUploadScreenshot(ctx context.Context, user storage.User, project storage.Project) (bool, error)
	UpdateSourcePriority(ctx context.Context, id int64, priority int) error
	UpdateSourceCheckFlags(ctx context.Context, id int64, flags string) error
	UpdateSourceScreenshot(ctx context.Context, id int64, name string) error
	PutScreenshot(ctx context.Context, img screenshot.Image) error
	DeleteScreenshot(ctx context.Context, name string) error
}

// capability asks the gateway about one source-editing permission.
type capability func(Gateway, context.Context, storage.User, storage.Project) (bool, error)

var (
	canEditPriority     capability = Gateway.CanEditPriority
	canEditFlags        capability = Gateway.CanEditFlags
	canUploadScreenshot capability = Gateway.CanUploadScreenshot
)

// target is a source string the user is allowed to edit.
type target struct {
	Source    storage.Source
	Component catalog.Component
}

// DetailURL is the review listing narrowed to the edited string.
func (t target) DetailURL() string {
	return routepath.SourceDetail(t.Component.Project.Slug, t.Component.Component.Slug, t.Source.Checksum)
}

// FieldError is a form validation failure. Key is the localization key of
// the message shown to the user.
type FieldError struct {
	Field string
	Key   string
	Err   error
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e FieldError) Unwrap() error {
	return e.Err
}

type service struct {
	gateway Gateway
}

func newService(gateway Gateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

// loadTarget loads a source string and checks one capability. Unknown ids are
// not found; missing capabilities are forbidden.
func (s service) loadTarget(ctx context.Context, user storage.User, rawID string, allowed capability) (target, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
	if err != nil || id <= 0 {
		return target{}, apperrors.EK(apperrors.KindNotFound, "web.error.not_found", "invalid source id")
	}
	src, err := s.gateway.GetSource(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return target{}, apperrors.Wrap(apperrors.KindNotFound, "web.error.not_found", err)
	}
	if err != nil {
		return target{}, err
	}
	component, err := s.gateway.ComponentByID(ctx, src.ComponentID)
	if errors.Is(err, storage.ErrNotFound) {
		return target{}, apperrors.Wrap(apperrors.KindNotFound, "web.error.not_found", err)
	}
	if err != nil {
		return target{}, err
	}
	ok, err := allowed(s.gateway, ctx, user, component.Project)
	if err != nil {
		return target{}, err
	}
	if !ok {
		return target{}, apperrors.EK(apperrors.KindForbidden, "web.error.forbidden", "source edit is not permitted")
	}
	return target{Source: src, Component: component}, nil
}

// editPriority validates and stores a priority. A FieldError reports an
// invalid form; the source is then left unchanged.
func (s service) editPriority(ctx context.Context, t target, raw string) error {
	value, err := priority.Parse(raw)
	if err != nil {
		return FieldError{Field: "priority", Key: "web.source.notice_priority_failed", Err: err}
	}
	return s.gateway.UpdateSourcePriority(ctx, t.Source.ID, value)
}

// editCheckFlags validates and stores normalized check flags.
func (s service) editCheckFlags(ctx context.Context, t target, raw string) error {
	flags, err := check.ParseFlags(raw)
	if err != nil {
		return FieldError{Field: "flags", Key: "web.source.notice_flags_failed", Err: err}
	}
	return s.gateway.UpdateSourceCheckFlags(ctx, t.Source.ID, flags)
}

// uploadScreenshot validates image bytes, stores them and points the source
// at the new object. The replaced object is removed best-effort, as is the
// new one when the source cannot be updated.
func (s service) uploadScreenshot(ctx context.Context, t target, data []byte, maxBytes int64) error {
	img, err := screenshot.Validate(data, maxBytes)
	if err != nil {
		return screenshotFieldError(err)
	}
	if err := s.gateway.PutScreenshot(ctx, img); err != nil {
		return err
	}
	if err := s.gateway.UpdateSourceScreenshot(ctx, t.Source.ID, img.Name); err != nil {
		// Identical bytes share a name, so the stored object may still be in use.
		if img.Name != t.Source.Screenshot {
			s.removeScreenshot(ctx, t, img.Name)
		}
		return err
	}
	previous := t.Source.Screenshot
	if previous != "" && previous != img.Name {
		s.removeScreenshot(ctx, t, previous)
	}
	return nil
}

func (s service) removeScreenshot(ctx context.Context, t target, name string) {
	if err := s.gateway.DeleteScreenshot(ctx, name); err != nil {
		log.Printf("web: screenshot cleanup failed source_id=%d name=%s err=%v", t.Source.ID, name, err)
	}
}

func screenshotFieldError(err error) FieldError {
	key := "web.source.screenshot.error_invalid_image"
	switch {
	case errors.Is(err, screenshot.ErrEmpty):
		key = "web.source.screenshot.error_required"
	case errors.Is(err, screenshot.ErrTooLarge):
		key = "web.source.screenshot.error_too_large"
	}
	return FieldError{Field: "screenshot", Key: key, Err: err}
}
