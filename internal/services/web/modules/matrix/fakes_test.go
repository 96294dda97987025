package matrix

import (
	"context"
	"fmt"
	"sort"

	"github.com/louisbranch/translating.space/internal/services/translate/catalog"
	"github.com/louisbranch/translating.space/internal/services/translate/storage"
)

// fakeGateway serves one component with per-language units.
type fakeGateway struct {
	component    catalog.Component
	resolveErr   error
	translations []storage.Translation
	units        map[int64][]storage.Unit

	translationLookups int
	listings           int
	lookups            int
}

func newFakeGateway() *fakeGateway {
	en := storage.Language{ID: 1, Code: "en", Name: "English", Direction: storage.DirectionLTR}
	cs := storage.Language{ID: 2, Code: "cs", Name: "Czech", Direction: storage.DirectionLTR}
	he := storage.Language{ID: 3, Code: "he", Name: "Hebrew", Direction: storage.DirectionRTL}
	gw := &fakeGateway{
		component: catalog.Component{
			Project:   storage.Project{ID: 1, Slug: "demo", Name: "Demo"},
			Component: storage.Component{ID: 2, ProjectID: 1, Slug: "app", Name: "App"},
		},
		translations: []storage.Translation{
			{ID: 10, ComponentID: 2, Language: en},
			{ID: 11, ComponentID: 2, Language: cs},
			{ID: 12, ComponentID: 2, Language: he},
		},
		units: make(map[int64][]storage.Unit),
	}
	for i := range 45 {
		checksum := fmt.Sprintf("c%d", i)
		gw.units[10] = append(gw.units[10], storage.Unit{TranslationID: 10, Checksum: checksum, Position: i, Source: "Source " + checksum, Target: "Target " + checksum, State: storage.UnitTranslated})
		if i%2 == 0 {
			gw.units[11] = append(gw.units[11], storage.Unit{TranslationID: 11, Checksum: checksum, Position: i, Source: "Source " + checksum, Target: "Cíl " + checksum, State: storage.UnitFuzzy})
		}
	}
	return gw
}

func (f *fakeGateway) ResolveComponent(context.Context, storage.User, string, string) (catalog.Component, error) {
	if f.resolveErr != nil {
		return catalog.Component{}, f.resolveErr
	}
	return f.component, nil
}

func (f *fakeGateway) Translations(context.Context, catalog.Component) ([]storage.Translation, error) {
	return f.translations, nil
}

func (f *fakeGateway) TranslationByLanguage(_ context.Context, _ catalog.Component, code string) (storage.Translation, error) {
	f.translationLookups++
	for _, translation := range f.translations {
		if translation.Language.Code == code {
			return translation, nil
		}
	}
	return storage.Translation{}, storage.ErrNotFound
}

func (f *fakeGateway) ListLanguagesByCodes(_ context.Context, codes []string) ([]storage.Language, error) {
	var out []storage.Language
	for _, translation := range f.translations {
		for _, code := range codes {
			if translation.Language.Code == code {
				out = append(out, translation.Language)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeGateway) CountUnits(_ context.Context, translationID int64, _ storage.UnitFilter) (int, error) {
	return len(f.units[translationID]), nil
}

func (f *fakeGateway) ListUnits(_ context.Context, translationID int64, _ storage.UnitFilter, offset int, limit int) ([]storage.Unit, error) {
	f.listings++
	units := f.units[translationID]
	if offset >= len(units) {
		return nil, nil
	}
	return units[offset:min(offset+limit, len(units))], nil
}

func (f *fakeGateway) GetUnitsByChecksums(_ context.Context, translationID int64, checksums []string) (map[string]storage.Unit, error) {
	f.lookups++
	out := make(map[string]storage.Unit)
	for _, unit := range f.units[translationID] {
		for _, checksum := range checksums {
			if unit.Checksum == checksum {
				out[checksum] = unit
			}
		}
	}
	return out, nil
}
