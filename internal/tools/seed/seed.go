// Package seed populates a catalog store with demo translation data for
// local development.
package seed

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/louisbranch/translating.space/internal/platform/id"
	"github.com/louisbranch/translating.space/internal/services/translate/priority"
	"github.com/louisbranch/translating.space/internal/services/translate/storage"
	"golang.org/x/crypto/bcrypt"
)

// Preset selects the size of the generated catalog.
type Preset string

const (
	// PresetDemo is a small catalog that fits on a few pages.
	PresetDemo Preset = "demo"
	// PresetLarge exercises pagination and the matrix loader.
	PresetLarge Preset = "large"
)

// PresetConfig holds the defaults of a preset.
type PresetConfig struct {
	Units         int
	InternalUnits int
}

var presets = map[Preset]PresetConfig{
	PresetDemo:  {Units: 40, InternalUnits: 8},
	PresetLarge: {Units: 600, InternalUnits: 60},
}

// GetPresetConfig returns the defaults for p, or false when p is unknown.
func GetPresetConfig(p Preset) (PresetConfig, bool) {
	cfg, ok := presets[p]
	return cfg, ok
}

// Slugs of the generated catalog.
const (
	DemoProject       = "demo"
	DemoComponent     = "app"
	InternalProject   = "internal"
	InternalComponent = "handbook"
)

// Config holds configuration for the seeder.
type Config struct {
	Preset        Preset
	Units         int // Override preset's unit count (0 = use preset default)
	Seed          int64
	AdminUsername string
	AdminPassword string
	Verbose       bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Preset:        PresetDemo,
		AdminUsername: "admin",
	}
}

// Store is the subset of the catalog store the seeder writes to.
type Store interface {
	storage.CatalogWriter
	GetProjectBySlug(ctx context.Context, slug string) (storage.Project, error)
}

// Summary reports what a run created.
type Summary struct {
	Skipped      bool
	Seed         int64
	AdminID      string
	Projects     int
	Translations int
	Units        int
	Checks       int
	Comments     int
}

type language struct {
	code      string
	name      string
	direction storage.Direction
	// prefix marks pseudo-translated targets.
	prefix string
}

var languages = []language{
	{code: "en", name: "English", direction: storage.DirectionLTR},
	{code: "cs", name: "Czech", direction: storage.DirectionLTR, prefix: "cs"},
	{code: "de", name: "German", direction: storage.DirectionLTR, prefix: "de"},
	{code: "he", name: "Hebrew", direction: storage.DirectionRTL, prefix: "he"},
}

var phrases = []string{
	"Welcome back",
	"Sign in",
	"Sign out",
	"Save changes",
	"Discard draft",
	"Loading...",
	"Are you sure you want to delete this file?",
	"No results found.",
	"Upload a screenshot",
	"%d new messages",
	"Settings",
	"Your session has expired",
	"Open in new window",
	"Copy link",
	"Retry",
	"Search projects",
	"Last updated %s",
	"Something went wrong!",
	"Export as CSV",
	"Keyboard shortcuts",
}

var contexts = []string{"", "", "", "menu", "button", "dialog title"}

var languageChecks = []string{"end_stop", "end_space", "double_space", "same", "c_format"}

var permissions = []storage.Permission{
	storage.PermissionViewProject,
	storage.PermissionEditPriority,
	storage.PermissionEditFlags,
	storage.PermissionUploadScreenshot,
}

// Seeder writes one generated catalog into a store.
type Seeder struct {
	store      Store
	config     Config
	rng        *rand.Rand
	out        io.Writer
	hashCost   int
	now        func() time.Time
	newID      func() (string, error)
	admin      storage.User
	languageBy map[string]storage.Language
	summary    Summary
}

// New creates a seeder. A zero cfg.Seed draws a random seed.
func New(store Store, cfg Config, out io.Writer) (*Seeder, error) {
	if store == nil {
		return nil, errors.New("seed store is required")
	}
	if _, ok := GetPresetConfig(cfg.Preset); !ok {
		return nil, fmt.Errorf("unknown preset %q", cfg.Preset)
	}
	cfg.AdminUsername = strings.TrimSpace(cfg.AdminUsername)
	if cfg.AdminUsername == "" {
		return nil, errors.New("admin username is required")
	}
	if cfg.AdminPassword == "" {
		return nil, errors.New("admin password is required")
	}
	if cfg.Units < 0 {
		return nil, fmt.Errorf("unit count must not be negative: %d", cfg.Units)
	}
	if out == nil {
		out = io.Discard
	}
	rng, seed, err := NewSeededRNG(cfg.Seed)
	if err != nil {
		return nil, err
	}
	cfg.Seed = seed
	return &Seeder{
		store:      store,
		config:     cfg,
		rng:        rng,
		out:        out,
		hashCost:   bcrypt.DefaultCost,
		now:        time.Now,
		newID:      id.NewID,
		languageBy: make(map[string]storage.Language, len(languages)),
		summary:    Summary{Seed: seed},
	}, nil
}

// NewSeededRNG returns a generator for seed, drawing a random seed when it
// is zero. The seed in use is returned so runs can be reproduced.
func NewSeededRNG(seed int64) (*rand.Rand, int64, error) {
	if seed == 0 {
		var err error
		seed, err = NewSeed()
		if err != nil {
			return nil, 0, err
		}
	}
	return rand.New(rand.NewSource(seed)), seed, nil
}

// Run generates the catalog. A store that already holds the demo project is
// left untouched.
func (s *Seeder) Run(ctx context.Context) (Summary, error) {
	if _, err := s.store.GetProjectBySlug(ctx, DemoProject); err == nil {
		s.logf("project %q already exists, skipping", DemoProject)
		return Summary{Skipped: true, Seed: s.summary.Seed}, nil
	} else if !errors.Is(err, storage.ErrNotFound) {
		return Summary{}, fmt.Errorf("check existing catalog: %w", err)
	}

	s.logf("seeding with seed %d", s.summary.Seed)
	if err := s.createAdmin(ctx); err != nil {
		return Summary{}, err
	}
	if err := s.createLanguages(ctx); err != nil {
		return Summary{}, err
	}

	presetCfg, _ := GetPresetConfig(s.config.Preset)
	units := presetCfg.Units
	if s.config.Units > 0 {
		units = s.config.Units
	}
	if err := s.createProject(ctx, storage.Project{
		Slug:          DemoProject,
		Name:          "Demo",
		AccessControl: storage.AccessPublic,
	}, storage.Component{Slug: DemoComponent, Name: "App"}, languages, units); err != nil {
		return Summary{}, err
	}
	if err := s.createProject(ctx, storage.Project{
		Slug:          InternalProject,
		Name:          "Internal",
		AccessControl: storage.AccessPrivate,
	}, storage.Component{Slug: InternalComponent, Name: "Handbook"}, languages[:3], presetCfg.InternalUnits); err != nil {
		return Summary{}, err
	}
	return s.summary, nil
}

func (s *Seeder) createAdmin(ctx context.Context) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(s.config.AdminPassword), s.hashCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	userID, err := s.newID()
	if err != nil {
		return err
	}
	admin, err := s.store.CreateUser(ctx, storage.User{
		ID:           userID,
		Username:     s.config.AdminUsername,
		DisplayName:  "Administrator",
		PasswordHash: string(hash),
		IsSuperuser:  true,
	})
	if err != nil {
		return fmt.Errorf("create admin %q: %w", s.config.AdminUsername, err)
	}
	s.admin = admin
	s.summary.AdminID = admin.ID
	s.logf("created admin %q", admin.Username)
	return nil
}

func (s *Seeder) createLanguages(ctx context.Context) error {
	for _, lang := range languages {
		created, err := s.store.CreateLanguage(ctx, storage.Language{
			Code:      lang.code,
			Name:      lang.name,
			Direction: lang.direction,
		})
		if err != nil {
			return fmt.Errorf("create language %q: %w", lang.code, err)
		}
		s.languageBy[lang.code] = created
	}
	return nil
}

// sourceString is one generated string shared by every translation of a
// component.
type sourceString struct {
	text     string
	context  string
	checksum string
	priority int
}

func (s *Seeder) createProject(ctx context.Context, project storage.Project, component storage.Component, langs []language, units int) error {
	project, err := s.store.CreateProject(ctx, project)
	if err != nil {
		return fmt.Errorf("create project %q: %w", project.Slug, err)
	}
	s.summary.Projects++
	for _, perm := range permissions {
		if err := s.store.PutGrant(ctx, storage.Grant{ProjectID: project.ID, UserID: s.admin.ID, Permission: perm}); err != nil {
			return fmt.Errorf("grant %s on %q: %w", perm, project.Slug, err)
		}
	}

	component.ProjectID = project.ID
	component, err = s.store.CreateComponent(ctx, component)
	if err != nil {
		return fmt.Errorf("create component %q: %w", component.Slug, err)
	}

	strs := s.generateStrings(units)
	if err := s.createSources(ctx, component.ID, strs); err != nil {
		return err
	}
	for _, lang := range langs {
		if err := s.createTranslation(ctx, component.ID, lang, strs); err != nil {
			return err
		}
	}
	s.logf("created %s/%s with %d strings in %d languages", project.Slug, component.Slug, len(strs), len(langs))
	return nil
}

func (s *Seeder) generateStrings(count int) []sourceString {
	presetValues := priority.Presets()
	strs := make([]sourceString, 0, count)
	seen := make(map[string]struct{}, count)
	for i := 0; len(strs) < count; i++ {
		text := phrases[i%len(phrases)]
		if round := i / len(phrases); round > 0 {
			text = fmt.Sprintf("%s (%d)", text, round+1)
		}
		ctxText := contexts[s.rng.Intn(len(contexts))]
		sum := Checksum(text, ctxText)
		if _, dup := seen[sum]; dup {
			continue
		}
		seen[sum] = struct{}{}
		strs = append(strs, sourceString{
			text:     text,
			context:  ctxText,
			checksum: sum,
			priority: presetValues[s.rng.Intn(len(presetValues))].Value,
		})
	}
	return strs
}

func (s *Seeder) createSources(ctx context.Context, componentID int64, strs []sourceString) error {
	for _, str := range strs {
		if _, err := s.store.CreateSource(ctx, storage.Source{
			ComponentID: componentID,
			Checksum:    str.checksum,
			Priority:    str.priority,
			CheckFlags:  sourceFlags(str.text),
		}); err != nil {
			return fmt.Errorf("create source %s: %w", str.checksum, err)
		}
		if strings.HasSuffix(str.text, "...") {
			if err := s.createCheck(ctx, storage.Check{ComponentID: componentID, Checksum: str.checksum, Name: "ellipsis"}); err != nil {
				return err
			}
		}
		if s.rng.Intn(12) == 0 {
			if err := s.createComment(ctx, storage.Comment{
				ComponentID: componentID,
				Checksum:    str.checksum,
				Body:        "Please keep this short, it is shown in a narrow column.",
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Seeder) createTranslation(ctx context.Context, componentID int64, lang language, strs []sourceString) error {
	stored := s.languageBy[lang.code]
	translation, err := s.store.CreateTranslation(ctx, componentID, stored.ID)
	if err != nil {
		return fmt.Errorf("create %s translation: %w", lang.code, err)
	}
	s.summary.Translations++

	for position, str := range strs {
		unit := storage.Unit{
			TranslationID: translation.ID,
			Checksum:      str.checksum,
			Position:      position + 1,
			Priority:      str.priority,
			Source:        str.text,
			Context:       str.context,
		}
		if lang.prefix == "" {
			unit.Target = str.text
			unit.State = storage.UnitTranslated
		} else {
			unit.State = s.pickState()
			if unit.State != storage.UnitUntranslated {
				unit.Target = fmt.Sprintf("[%s] %s", lang.prefix, str.text)
			}
		}
		if _, err := s.store.CreateUnit(ctx, unit); err != nil {
			return fmt.Errorf("create %s unit %s: %w", lang.code, str.checksum, err)
		}
		s.summary.Units++

		if lang.prefix == "" || unit.State == storage.UnitUntranslated {
			continue
		}
		if s.rng.Intn(6) == 0 {
			if err := s.createCheck(ctx, storage.Check{
				ComponentID: componentID,
				Checksum:    str.checksum,
				LanguageID:  stored.ID,
				Name:        languageChecks[s.rng.Intn(len(languageChecks))],
				Ignore:      s.rng.Intn(4) == 0,
			}); err != nil {
				return err
			}
		}
		if s.rng.Intn(15) == 0 {
			if err := s.createComment(ctx, storage.Comment{
				ComponentID: componentID,
				Checksum:    str.checksum,
				LanguageID:  stored.ID,
				Body:        "Is this wording consistent with the glossary?",
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Seeder) pickState() storage.UnitState {
	switch n := s.rng.Intn(10); {
	case n < 6:
		return storage.UnitTranslated
	case n < 8:
		return storage.UnitFuzzy
	default:
		return storage.UnitUntranslated
	}
}

func (s *Seeder) createCheck(ctx context.Context, check storage.Check) error {
	if _, err := s.store.CreateCheck(ctx, check); err != nil {
		return fmt.Errorf("create check %s on %s: %w", check.Name, check.Checksum, err)
	}
	s.summary.Checks++
	return nil
}

func (s *Seeder) createComment(ctx context.Context, comment storage.Comment) error {
	comment.UserID = s.admin.ID
	comment.CreatedAt = s.now().UTC()
	if _, err := s.store.CreateComment(ctx, comment); err != nil {
		return fmt.Errorf("create comment on %s: %w", comment.Checksum, err)
	}
	s.summary.Comments++
	return nil
}

func (s *Seeder) logf(format string, args ...any) {
	if !s.config.Verbose {
		return
	}
	fmt.Fprintf(s.out, format+"\n", args...)
}

// Checksum identifies a source string within a component.
func Checksum(source string, context string) string {
	sum := sha1.Sum([]byte(source + "\x04" + context))
	return hex.EncodeToString(sum[:])
}

func sourceFlags(text string) string {
	if strings.Contains(text, "%d") || strings.Contains(text, "%s") {
		return "c-format"
	}
	if len(text) > 30 {
		return "max-length:60"
	}
	return ""
}
