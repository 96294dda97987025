package source

import (
	"context"

	"github.com/louisbranch/translating.space/internal/services/translate/catalog"
	"github.com/louisbranch/translating.space/internal/services/translate/permission"
	"github.com/louisbranch/translating.space/internal/services/translate/storage"
)

// fakeGateway implements Gateway over in-memory units with call tracking.
type fakeGateway struct {
	source       catalog.Source
	resolveErr   error
	summary      storage.SourceSummary
	units        []storage.Unit
	sources      map[string]storage.Source
	capabilities permission.Capabilities

	lastFilter storage.UnitFilter
	lastOffset int
	lastLimit  int
	listCalls  int
}

func (f *fakeGateway) ResolveSource(context.Context, storage.User, string, string) (catalog.Source, error) {
	if f.resolveErr != nil {
		return catalog.Source{}, f.resolveErr
	}
	return f.source, nil
}

func (f *fakeGateway) SummarizeSource(context.Context, int64) (storage.SourceSummary, error) {
	return f.summary, nil
}

func (f *fakeGateway) CountUnits(_ context.Context, _ int64, filter storage.UnitFilter) (int, error) {
	f.lastFilter = filter
	return len(f.units), nil
}

func (f *fakeGateway) ListUnits(_ context.Context, _ int64, filter storage.UnitFilter, offset int, limit int) ([]storage.Unit, error) {
	f.listCalls++
	f.lastFilter = filter
	f.lastOffset = offset
	f.lastLimit = limit
	if offset >= len(f.units) {
		return nil, nil
	}
	end := min(offset+limit, len(f.units))
	return f.units[offset:end], nil
}

func (f *fakeGateway) ListSourcesByChecksums(_ context.Context, _ int64, checksums []string) (map[string]storage.Source, error) {
	out := make(map[string]storage.Source)
	for _, checksum := range checksums {
		if src, ok := f.sources[checksum]; ok {
			out[checksum] = src
		}
	}
	return out, nil
}

func (f *fakeGateway) SourceCapabilities(context.Context, storage.User, storage.Project) (permission.Capabilities, error) {
	return f.capabilities, nil
}

func demoSource() catalog.Source {
	return catalog.Source{
		Component: catalog.Component{
			Project:   storage.Project{ID: 1, Slug: "demo", Name: "Demo", AccessControl: storage.AccessPublic},
			Component: storage.Component{ID: 2, ProjectID: 1, Slug: "app", Name: "App"},
		},
		Translation: storage.Translation{ID: 3, ComponentID: 2, Language: storage.Language{ID: 1, Code: "en", Name: "English"}},
	}
}

func demoUnits(n int) []storage.Unit {
	units := make([]storage.Unit, 0, n)
	for i := range n {
		checksum := string(rune('a'+i%26)) + string(rune('a'+i/26))
		units = append(units, storage.Unit{ID: int64(i + 1), TranslationID: 3, Checksum: checksum, Position: i, Priority: 100, Source: "String " + checksum})
	}
	return units
}
