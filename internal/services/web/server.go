package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/translating.space/internal/platform/otel"
	"github.com/louisbranch/translating.space/internal/platform/timeouts"
	"github.com/louisbranch/translating.space/internal/services/translate/storage"
	webapp "github.com/louisbranch/translating.space/internal/services/web/app"
	module "github.com/louisbranch/translating.space/internal/services/web/module"
	"github.com/louisbranch/translating.space/internal/services/web/modules"
	"github.com/louisbranch/translating.space/internal/services/web/platform/httpx"
	"github.com/louisbranch/translating.space/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/translating.space/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/translating.space/internal/services/web/platform/sessioncookie"
	webstatic "github.com/louisbranch/translating.space/internal/services/web/static"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr string
	Store    storage.Store
	// Languages overrides language lookups of Store, typically with a cache.
	Languages           storage.LanguageStore
	Screenshots         modules.ScreenshotStore
	MaxScreenshotBytes  int64
	SessionTTL          time.Duration
	RequestSchemePolicy requestmeta.SchemePolicy
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	var sessionStore SessionUserStore
	if cfg.Store != nil {
		sessionStore = cfg.Store
	}
	sessions := newSessionResolver(sessionStore)
	base := modulehandler.NewBase(sessions.resolveRequestUser, cfg.RequestSchemePolicy)
	deps := modules.Dependencies{
		Store:              cfg.Store,
		Languages:          cfg.Languages,
		Screenshots:        cfg.Screenshots,
		MaxScreenshotBytes: cfg.MaxScreenshotBytes,
		SessionCookie:      sessioncookie.Cookie{Policy: cfg.RequestSchemePolicy, TTL: cfg.SessionTTL},
	}
	publicModules := modules.DefaultPublicModules(base, deps)
	protectedModules := modules.DefaultProtectedModules(base, deps)
	logUnavailableModules(publicModules, protectedModules)
	h, err := webapp.Compose(webapp.ComposeInput{
		Authenticated:       sessions.resolveRequestSignedIn,
		PublicModules:       publicModules,
		ProtectedModules:    protectedModules,
		RequestSchemePolicy: cfg.RequestSchemePolicy,
	})
	if err != nil {
		return nil, err
	}
	rootMux := http.NewServeMux()
	rootMux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(webstatic.FS))))
	rootMux.Handle("/", h)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(log.Default()),
		httpx.RequestID(),
		httpx.Trace(otel.Tracer("translating.space/web")),
		withRequestPrincipalState(),
		httpx.LogRequests(log.Default()),
	), nil
}

// logUnavailableModules reports modules that mounted without their backing
// stores; their routes answer 503.
func logUnavailableModules(groups ...[]module.Module) {
	for _, group := range groups {
		for _, m := range group {
			if reporter, ok := m.(module.HealthReporter); ok && !reporter.Healthy() {
				log.Printf("web module unavailable id=%s", m.ID())
			}
		}
	}
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			ReadTimeout:       timeouts.Read,
			IdleTimeout:       timeouts.Idle,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("web listening addr=%s", s.httpAddr)
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
