package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
	"time"

	"github.com/louisbranch/translating.space/internal/platform/timeouts"
)

type testConfig struct {
	Address string `env:"CMD_TEST_ADDRESS" envDefault:"127.0.0.1:8080"`
	Mode    string `env:"CMD_TEST_MODE" envDefault:"server"`
}

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("TRANSLATING_SPACE_CMD_TEST_ADDRESS", "env:9000")
	t.Setenv("TRANSLATING_SPACE_CMD_TEST_MODE", "env-mode")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := testConfig{}
	if err := ParseConfig(&cfg); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	fs.StringVar(&cfg.Address, "address", cfg.Address, "address")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "mode")

	if err := ParseArgs(fs, []string{"-address", "flag:9001"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfg.Address != "flag:9001" {
		t.Fatalf("expected flag value for address, got %q", cfg.Address)
	}
	if cfg.Mode != "env-mode" {
		t.Fatalf("expected env mode, got %q", cfg.Mode)
	}
}

func TestParseConfigKeepsDefaultsWithoutArgs(t *testing.T) {
	cfg := testConfig{}
	if err := ParseConfig(&cfg); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	fs := flag.NewFlagSet("defaults", flag.ContinueOnError)
	fs.StringVar(&cfg.Address, "address", cfg.Address, "address")
	if err := ParseArgs(fs, nil); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfg.Address != "127.0.0.1:8080" {
		t.Fatalf("Address = %q, want default", cfg.Address)
	}
	if cfg.Mode != "server" {
		t.Fatalf("Mode = %q, want default", cfg.Mode)
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	if err := ParseConfig[testConfig](nil); err == nil {
		t.Fatal("expected nil target error")
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	if err := RunWithTelemetry(context.Background(), "", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(context.Background(), ServiceWeb, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryReturnsRunError(t *testing.T) {
	t.Setenv("TRANSLATING_SPACE_OTEL_ENDPOINT", "")

	want := errors.New("boom")
	err := RunWithTelemetry(context.Background(), ServiceWeb, func(context.Context) error { return want })
	if !errors.Is(err, want) {
		t.Fatalf("RunWithTelemetry() error = %v, want %v", err, want)
	}
}

func TestRunWithTelemetryFlushesWithShutdownDeadline(t *testing.T) {
	original := setupTelemetry
	t.Cleanup(func() { setupTelemetry = original })

	var (
		flushed  bool
		deadline time.Time
	)
	setupTelemetry = func(context.Context, string) (func(context.Context) error, error) {
		return func(ctx context.Context) error {
			flushed = true
			deadline, _ = ctx.Deadline()
			return errors.New("exporter unreachable")
		}, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	start := time.Now()
	err := RunWithTelemetry(ctx, ServiceSeed, func(context.Context) error {
		cancel()
		return nil
	})
	if err != nil {
		t.Fatalf("RunWithTelemetry() error = %v", err)
	}
	if !flushed {
		t.Fatal("expected telemetry shutdown after run")
	}
	if deadline.IsZero() || deadline.Sub(start) > timeouts.Shutdown+time.Second {
		t.Fatalf("shutdown deadline = %v, want within %v of start", deadline, timeouts.Shutdown)
	}
}

func TestRunWithTelemetryReportsSetupError(t *testing.T) {
	original := setupTelemetry
	t.Cleanup(func() { setupTelemetry = original })

	want := errors.New("bad endpoint")
	setupTelemetry = func(context.Context, string) (func(context.Context) error, error) {
		return nil, want
	}
	ran := false
	err := RunWithTelemetry(context.Background(), ServiceWeb, func(context.Context) error {
		ran = true
		return nil
	})
	if !errors.Is(err, want) {
		t.Fatalf("RunWithTelemetry() error = %v, want %v", err, want)
	}
	if ran {
		t.Fatal("run must not start when telemetry setup fails")
	}
}
