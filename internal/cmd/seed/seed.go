// Package seed parses seed command flags and fills a catalog with demo data.
package seed

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	entrypoint "github.com/louisbranch/translating.space/internal/platform/cmd"
	"github.com/louisbranch/translating.space/internal/services/translate/storage/sqlite"
	"github.com/louisbranch/translating.space/internal/tools/seed"
)

// Config holds seed command configuration.
type Config struct {
	DBPath        string `env:"SEED_DB_PATH" envDefault:"data/translate.db"`
	AdminUsername string `env:"SEED_ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"SEED_ADMIN_PASSWORD"`
	Preset        string `env:"SEED_PRESET" envDefault:"demo"`
	Units         int
	Seed          int64
	Verbose       bool
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "Catalog SQLite database path")
	fs.StringVar(&cfg.AdminUsername, "admin-username", cfg.AdminUsername, "Username of the seeded superuser")
	fs.StringVar(&cfg.AdminPassword, "admin-password", cfg.AdminPassword, "Password of the seeded superuser")
	fs.StringVar(&cfg.Preset, "preset", cfg.Preset, "generation preset (demo, large)")
	fs.IntVar(&cfg.Units, "units", 0, "number of demo strings to generate (0 = use preset default)")
	fs.Int64Var(&cfg.Seed, "seed", 0, "random seed for reproducibility (0 = random)")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose output")

	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.DBPath) == "" {
		return Config{}, fmt.Errorf("database path is required")
	}
	if err := validatePreset(seed.Preset(cfg.Preset)); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validatePreset(preset seed.Preset) error {
	if _, ok := seed.GetPresetConfig(preset); !ok {
		return fmt.Errorf("unknown preset %q (valid: %s, %s)", preset, seed.PresetDemo, seed.PresetLarge)
	}
	return nil
}

// Run executes the seed command.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSeed, func(ctx context.Context) error {
		store, err := sqlite.OpenContext(ctx, cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open catalog store: %w", err)
		}
		defer store.Close()

		seeder, err := seed.New(store, seed.Config{
			Preset:        seed.Preset(cfg.Preset),
			Units:         cfg.Units,
			Seed:          cfg.Seed,
			AdminUsername: cfg.AdminUsername,
			AdminPassword: cfg.AdminPassword,
			Verbose:       cfg.Verbose,
		}, errOut)
		if err != nil {
			return err
		}
		summary, err := seeder.Run(ctx)
		if err != nil {
			return err
		}
		if summary.Skipped {
			fmt.Fprintf(out, "Catalog at %s is already seeded.\n", cfg.DBPath)
			return nil
		}
		fmt.Fprintf(out, "Seeded %s (seed %d): %d projects, %d translations, %d units, %d checks, %d comments.\n",
			cfg.DBPath, summary.Seed, summary.Projects, summary.Translations, summary.Units, summary.Checks, summary.Comments)
		fmt.Fprintf(out, "Sign in as %q at /login.\n", cfg.AdminUsername)
		return nil
	})
}
