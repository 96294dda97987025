package seed

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"strings"
	"testing"

	"github.com/louisbranch/translating.space/internal/services/translate/storage/sqlite"
	"github.com/louisbranch/translating.space/internal/tools/seed"
)

func TestValidatePreset(t *testing.T) {
	if err := validatePreset(seed.PresetDemo); err != nil {
		t.Fatalf("expected demo to be valid: %v", err)
	}
	if err := validatePreset("unknown"); err == nil {
		t.Fatal("expected error for unknown preset")
	}
}

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.DBPath != "data/translate.db" {
		t.Fatalf("db_path = %q, want default", cfg.DBPath)
	}
	if cfg.AdminUsername != "admin" {
		t.Fatalf("admin_username = %q, want admin", cfg.AdminUsername)
	}
	if cfg.Preset != string(seed.PresetDemo) {
		t.Fatalf("expected demo preset, got %q", cfg.Preset)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("TRANSLATING_SPACE_SEED_ADMIN_PASSWORD", "from-env")

	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-db-path", "/tmp/x.db", "-seed", "9", "-units", "12", "-preset", "large"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.AdminPassword != "from-env" {
		t.Fatalf("admin_password = %q, want env value", cfg.AdminPassword)
	}
	if cfg.DBPath != "/tmp/x.db" || cfg.Seed != 9 || cfg.Units != 12 || cfg.Preset != "large" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestParseConfigRejectsUnknownPreset(t *testing.T) {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	if _, err := ParseConfig(fs, []string{"-preset", "stress"}); err == nil {
		t.Fatal("expected error for unknown preset")
	}
}

func TestRunSeedsDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "translate.db")
	cfg := Config{
		DBPath:        dbPath,
		AdminUsername: "admin",
		AdminPassword: "s3cret",
		Preset:        string(seed.PresetDemo),
		Units:         5,
		Seed:          1,
	}

	var out bytes.Buffer
	if err := Run(context.Background(), cfg, &out, nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Seeded "+dbPath+" (seed 1)") {
		t.Fatalf("unexpected output: %q", out.String())
	}

	out.Reset()
	if err := Run(context.Background(), cfg, &out, nil); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !strings.Contains(out.String(), "already seeded") {
		t.Fatalf("expected skip message, got %q", out.String())
	}

	store, err := sqlite.Open(dbPath)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer store.Close()
	if _, err := store.GetUserByUsername(context.Background(), "admin"); err != nil {
		t.Fatalf("admin missing after seed: %v", err)
	}
}

func TestRunRequiresPassword(t *testing.T) {
	cfg := Config{
		DBPath:        filepath.Join(t.TempDir(), "translate.db"),
		AdminUsername: "admin",
		Preset:        string(seed.PresetDemo),
	}
	if err := Run(context.Background(), cfg, nil, nil); err == nil {
		t.Fatal("expected error without admin password")
	}
}
