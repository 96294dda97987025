// Package web parses web command flags and launches the web service.
package web

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	entrypoint "github.com/louisbranch/translating.space/internal/platform/cmd"
	"github.com/louisbranch/translating.space/internal/services/translate/screenshot"
	"github.com/louisbranch/translating.space/internal/services/translate/storage/langcache"
	"github.com/louisbranch/translating.space/internal/services/translate/storage/sqlite"
	"github.com/louisbranch/translating.space/internal/services/web"
	"github.com/louisbranch/translating.space/internal/services/web/platform/requestmeta"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string        `env:"WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	DBPath              string        `env:"WEB_DB_PATH" envDefault:"data/translate.db"`
	MediaDir            string        `env:"WEB_MEDIA_DIR" envDefault:"data/media/screenshots"`
	MaxScreenshotBytes  int64         `env:"WEB_SCREENSHOT_MAX_BYTES" envDefault:"2097152"`
	SessionTTL          time.Duration `env:"WEB_SESSION_TTL" envDefault:"336h"`
	LanguageCacheTTL    time.Duration `env:"WEB_LANGUAGE_CACHE_TTL" envDefault:"10m"`
	TrustForwardedProto bool          `env:"WEB_TRUST_FORWARDED_PROTO" envDefault:"false"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "Catalog SQLite database path")
	fs.StringVar(&cfg.MediaDir, "media-dir", cfg.MediaDir, "Screenshot storage directory")
	fs.Int64Var(&cfg.MaxScreenshotBytes, "screenshot-max-bytes", cfg.MaxScreenshotBytes, "Largest accepted screenshot upload")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "Web session lifetime")
	fs.DurationVar(&cfg.LanguageCacheTTL, "language-cache-ttl", cfg.LanguageCacheTTL, "Language lookup cache TTL")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto from the fronting proxy")

	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return Config{}, fmt.Errorf("http address is required")
	}
	return cfg, nil
}

// Run opens the catalog store and serves the web service until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		store, err := sqlite.OpenContext(ctx, cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open catalog store: %w", err)
		}
		defer store.Close()

		blobs, err := screenshot.NewDiskStore(cfg.MediaDir)
		if err != nil {
			return fmt.Errorf("open screenshot store: %w", err)
		}
		languages := langcache.New(store, cfg.LanguageCacheTTL)
		defer languages.Stop()

		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:            cfg.HTTPAddr,
			Store:               store,
			Languages:           languages,
			Screenshots:         blobs,
			MaxScreenshotBytes:  cfg.MaxScreenshotBytes,
			SessionTTL:          cfg.SessionTTL,
			RequestSchemePolicy: requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
