package seed

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/louisbranch/translating.space/internal/services/translate/check"
	"github.com/louisbranch/translating.space/internal/services/translate/priority"
	"github.com/louisbranch/translating.space/internal/services/translate/storage"
	"github.com/louisbranch/translating.space/internal/services/translate/storage/sqlite"
	"golang.org/x/crypto/bcrypt"
)

func openStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "seed.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func newTestSeeder(t *testing.T, store Store, cfg Config, out io.Writer) *Seeder {
	t.Helper()
	s, err := New(store, cfg, out)
	if err != nil {
		t.Fatalf("new seeder: %v", err)
	}
	s.hashCost = bcrypt.MinCost
	return s
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.AdminPassword = "s3cret"
	cfg.Seed = 42
	return cfg
}

func TestNewValidatesConfig(t *testing.T) {
	t.Parallel()

	store := openStore(t)
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "unknown preset", mutate: func(c *Config) { c.Preset = "huge" }},
		{name: "blank username", mutate: func(c *Config) { c.AdminUsername = "  " }},
		{name: "missing password", mutate: func(c *Config) { c.AdminPassword = "" }},
		{name: "negative units", mutate: func(c *Config) { c.Units = -1 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := testConfig()
			tc.mutate(&cfg)
			if _, err := New(store, cfg, nil); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
	if _, err := New(nil, testConfig(), nil); err == nil {
		t.Fatalf("expected error for nil store")
	}
}

func TestRunPopulatesCatalog(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := openStore(t)
	cfg := testConfig()
	cfg.Units = 25
	cfg.Verbose = true
	var out bytes.Buffer

	summary, err := newTestSeeder(t, store, cfg, &out).Run(ctx)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if summary.Skipped || summary.Seed != 42 {
		t.Fatalf("summary = %+v", summary)
	}
	if summary.Projects != 2 || summary.Translations != 7 {
		t.Fatalf("projects=%d translations=%d, want 2 and 7", summary.Projects, summary.Translations)
	}
	if want := 25*4 + 8*3; summary.Units != want {
		t.Fatalf("units = %d, want %d", summary.Units, want)
	}
	if !strings.Contains(out.String(), "seeding with seed 42") {
		t.Fatalf("verbose output missing seed: %q", out.String())
	}

	project, err := store.GetProjectBySlug(ctx, DemoProject)
	if err != nil {
		t.Fatalf("get demo project: %v", err)
	}
	if project.AccessControl != storage.AccessPublic {
		t.Fatalf("demo access = %q, want public", project.AccessControl)
	}
	internal, err := store.GetProjectBySlug(ctx, InternalProject)
	if err != nil {
		t.Fatalf("get internal project: %v", err)
	}
	if internal.AccessControl != storage.AccessPrivate {
		t.Fatalf("internal access = %q, want private", internal.AccessControl)
	}

	component, err := store.GetComponentBySlug(ctx, project.ID, DemoComponent)
	if err != nil {
		t.Fatalf("get component: %v", err)
	}
	translations, err := store.ListTranslations(ctx, component.ID)
	if err != nil {
		t.Fatalf("list translations: %v", err)
	}
	if len(translations) != 4 {
		t.Fatalf("translations = %d, want 4", len(translations))
	}
	hebrew, err := store.GetLanguageByCode(ctx, "he")
	if err != nil {
		t.Fatalf("get hebrew: %v", err)
	}
	if hebrew.Direction != storage.DirectionRTL {
		t.Fatalf("hebrew direction = %q, want rtl", hebrew.Direction)
	}

	english, err := store.GetTranslationByLanguage(ctx, component.ID, "en")
	if err != nil {
		t.Fatalf("get english translation: %v", err)
	}
	units, err := store.ListUnits(ctx, english.ID, storage.UnitFilter{Kind: storage.FilterAll}, 0, 100)
	if err != nil {
		t.Fatalf("list units: %v", err)
	}
	if len(units) != 25 {
		t.Fatalf("english units = %d, want 25", len(units))
	}
	checksums := make([]string, 0, len(units))
	for _, unit := range units {
		if unit.State != storage.UnitTranslated || unit.Target != unit.Source {
			t.Fatalf("english unit %s not translated in place: %+v", unit.Checksum, unit)
		}
		if unit.Checksum != Checksum(unit.Source, unit.Context) {
			t.Fatalf("unit checksum %s does not match its source", unit.Checksum)
		}
		if !priority.IsPreset(unit.Priority) {
			t.Fatalf("unit priority %d is not a preset", unit.Priority)
		}
		checksums = append(checksums, unit.Checksum)
	}

	sources, err := store.ListSourcesByChecksums(ctx, component.ID, checksums)
	if err != nil {
		t.Fatalf("list sources: %v", err)
	}
	if len(sources) != len(checksums) {
		t.Fatalf("sources = %d, want %d", len(sources), len(checksums))
	}
	for checksum, src := range sources {
		if _, err := check.ParseFlags(src.CheckFlags); err != nil {
			t.Fatalf("source %s has invalid flags %q: %v", checksum, src.CheckFlags, err)
		}
	}

	summaryStats, err := store.SummarizeSource(ctx, english.ID)
	if err != nil {
		t.Fatalf("summarize source: %v", err)
	}
	if summaryStats.SourceChecks == 0 {
		t.Fatalf("expected the ellipsis source check, got %+v", summaryStats)
	}

	admin, err := store.GetUserByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("get admin: %v", err)
	}
	if !admin.IsSuperuser || admin.ID != summary.AdminID {
		t.Fatalf("admin = %+v", admin)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("s3cret")); err != nil {
		t.Fatalf("admin password hash mismatch: %v", err)
	}
	grants, err := store.ListGrants(ctx, internal.ID, admin.ID)
	if err != nil {
		t.Fatalf("list grants: %v", err)
	}
	if len(grants) != len(permissions) {
		t.Fatalf("grants = %v, want %d", grants, len(permissions))
	}
}

func TestRunSkipsSeededStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := openStore(t)
	if _, err := newTestSeeder(t, store, testConfig(), nil).Run(ctx); err != nil {
		t.Fatalf("first run: %v", err)
	}
	summary, err := newTestSeeder(t, store, testConfig(), nil).Run(ctx)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !summary.Skipped {
		t.Fatalf("expected second run to skip, got %+v", summary)
	}
}

func TestRunIsReproducible(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	states := func() []storage.UnitState {
		store := openStore(t)
		s := newTestSeeder(t, store, testConfig(), nil)
		if _, err := s.Run(ctx); err != nil {
			t.Fatalf("run: %v", err)
		}
		project, _ := store.GetProjectBySlug(ctx, DemoProject)
		component, _ := store.GetComponentBySlug(ctx, project.ID, DemoComponent)
		czech, err := store.GetTranslationByLanguage(ctx, component.ID, "cs")
		if err != nil {
			t.Fatalf("get czech translation: %v", err)
		}
		units, err := store.ListUnits(ctx, czech.ID, storage.UnitFilter{Kind: storage.FilterAll}, 0, 100)
		if err != nil {
			t.Fatalf("list units: %v", err)
		}
		out := make([]storage.UnitState, 0, len(units))
		for _, unit := range units {
			out = append(out, unit.State)
		}
		return out
	}

	first, second := states(), states()
	if len(first) != len(second) {
		t.Fatalf("unit counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("unit %d state differs: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestRunWrapsStoreErrors(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	store := &failingStore{Store: openStore(t), lookupErr: errBoom}
	_, err := newTestSeeder(t, store, testConfig(), nil).Run(context.Background())
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestNewSeededRNG(t *testing.T) {
	t.Parallel()

	a, seed, err := NewSeededRNG(7)
	if err != nil || seed != 7 {
		t.Fatalf("NewSeededRNG(7) = seed %d, err %v", seed, err)
	}
	b, _, _ := NewSeededRNG(7)
	if a.Int63() != b.Int63() {
		t.Fatalf("same seed produced different sequences")
	}
	if _, seed, err := NewSeededRNG(0); err != nil || seed == 0 {
		t.Fatalf("NewSeededRNG(0) = seed %d, err %v", seed, err)
	}
}

func TestChecksumIncludesContext(t *testing.T) {
	t.Parallel()

	if Checksum("Open", "") == Checksum("Open", "menu") {
		t.Fatalf("context must change the checksum")
	}
	if got := Checksum("Open", "menu"); len(got) != 40 {
		t.Fatalf("checksum length = %d, want 40", len(got))
	}
}

type failingStore struct {
	Store
	lookupErr error
}

func (f *failingStore) GetProjectBySlug(context.Context, string) (storage.Project, error) {
	return storage.Project{}, f.lookupErr
}
