package sourceedit

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/louisbranch/translating.space/internal/services/translate/catalog"
	"github.com/louisbranch/translating.space/internal/services/translate/permission"
	"github.com/louisbranch/translating.space/internal/services/translate/screenshot"
	"github.com/louisbranch/translating.space/internal/services/translate/storage"
)

// fakeGateway keeps sources and blobs in memory and records mutations.
type fakeGateway struct {
	sources       map[int64]storage.Source
	component     catalog.Component
	capabilities  permission.Capabilities
	capabilityErr error
	updateErr     error
	deleteErr     error

	blobs   map[string][]byte
	stored  []string
	deleted []string
	updates int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		sources: map[int64]storage.Source{
			9: {ID: 9, ComponentID: 2, Checksum: "abc", Priority: 100, CheckFlags: ""},
		},
		component: catalog.Component{
			Project:   storage.Project{ID: 1, Slug: "demo", Name: "Demo"},
			Component: storage.Component{ID: 2, ProjectID: 1, Slug: "app", Name: "App"},
		},
		capabilities: permission.Capabilities{EditPriority: true, EditFlags: true, UploadScreenshot: true},
		blobs:        make(map[string][]byte),
	}
}

func (f *fakeGateway) GetSource(_ context.Context, id int64) (storage.Source, error) {
	src, ok := f.sources[id]
	if !ok {
		return storage.Source{}, storage.ErrNotFound
	}
	return src, nil
}

func (f *fakeGateway) ComponentByID(_ context.Context, id int64) (catalog.Component, error) {
	if id != f.component.Component.ID {
		return catalog.Component{}, storage.ErrNotFound
	}
	return f.component, nil
}

func (f *fakeGateway) CanEditPriority(_ context.Context, user storage.User, _ storage.Project) (bool, error) {
	return user.ID != "" && f.capabilities.EditPriority, f.capabilityErr
}

func (f *fakeGateway) CanEditFlags(_ context.Context, user storage.User, _ storage.Project) (bool, error) {
	return user.ID != "" && f.capabilities.EditFlags, f.capabilityErr
}

func (f *fakeGateway) CanUploadScreenshot(_ context.Context, user storage.User, _ storage.Project) (bool, error) {
	return user.ID != "" && f.capabilities.UploadScreenshot, f.capabilityErr
}

func (f *fakeGateway) update(id int64, apply func(*storage.Source)) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	src := f.sources[id]
	apply(&src)
	f.sources[id] = src
	f.updates++
	return nil
}

func (f *fakeGateway) UpdateSourcePriority(_ context.Context, id int64, value int) error {
	return f.update(id, func(s *storage.Source) { s.Priority = value })
}

func (f *fakeGateway) UpdateSourceCheckFlags(_ context.Context, id int64, flags string) error {
	return f.update(id, func(s *storage.Source) { s.CheckFlags = flags })
}

func (f *fakeGateway) UpdateSourceScreenshot(_ context.Context, id int64, name string) error {
	return f.update(id, func(s *storage.Source) { s.Screenshot = name })
}

func (f *fakeGateway) PutScreenshot(_ context.Context, img screenshot.Image) error {
	f.blobs[img.Name] = img.Data
	f.stored = append(f.stored, img.Name)
	return nil
}

func (f *fakeGateway) DeleteScreenshot(_ context.Context, name string) error {
	f.deleted = append(f.deleted, name)
	delete(f.blobs, name)
	return f.deleteErr
}

func pngBytes(t *testing.T, shade uint8) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: shade, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}
