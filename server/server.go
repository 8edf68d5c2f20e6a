package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/feedwall/pkg/composer"
	"github.com/umputun/feedwall/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/feed_service.go -pkg mocks -skip-ensure -fmt goimports . FeedService
//go:generate moq -out mocks/layout_engine.go -pkg mocks -skip-ensure -fmt goimports . LayoutEngine
//go:generate moq -out mocks/setting_store.go -pkg mocks -skip-ensure -fmt goimports . SettingStore
//go:generate moq -out mocks/health_checker.go -pkg mocks -skip-ensure -fmt goimports . HealthChecker
//go:generate moq -out mocks/metrics_counter.go -pkg mocks -skip-ensure -fmt goimports . MetricsCounter

//go:embed templates/*.html
var templatesFS embed.FS

// Server represents HTTP server instance
type Server struct {
	config   ConfigProvider
	feed     FeedService
	engine   LayoutEngine
	settings SettingStore
	checks   map[string]HealthChecker
	metrics  MetricsCounter
	version  string
	debug    bool

	templates  *template.Template
	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Params groups server dependencies
type Params struct {
	Config   ConfigProvider
	Feed     FeedService
	Engine   LayoutEngine
	Settings SettingStore
	Checks   map[string]HealthChecker // optional, reported by status, keyed by name
	Metrics  MetricsCounter           // optional, cached image metrics reported by status
	Version  string
	Debug    bool
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetBaseURL() string
	GetLayoutDefaults() (viewport int, container float64, size domain.SizePreference)
}

// FeedService provides the composed feed state and on-demand refresh
type FeedService interface {
	Current() composer.State
	RefreshNow(ctx context.Context) (composer.State, error)
}

// LayoutEngine renders frames for arbitrary views and hosts the live wall view:
// viewport and size preference changes, and hover focus of its tiles
type LayoutEngine interface {
	Render(viewport int, container float64, pref domain.SizePreference) (domain.Frame, error)
	OnViewportResize(ctx context.Context, width int) (domain.Frame, error)
	OnSizePreferenceChange(p domain.SizePreference)
	OnTileEnter(id string) domain.HoverUpdate
	OnTileLeave(id string) domain.HoverUpdate
}

// SettingStore persists key-value settings
type SettingStore interface {
	GetSetting(ctx context.Context, key string) (domain.Setting, error)
	SetSetting(ctx context.Context, key, value string) error
}

// HealthChecker checks availability of a backing store
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// MetricsCounter reports the number of cached image metrics
type MetricsCounter interface {
	CountMetrics(ctx context.Context) (int, error)
}

// New initializes a new server instance
func New(p Params) *Server {
	s := &Server{
		config:    p.Config,
		feed:      p.Feed,
		engine:    p.Engine,
		settings:  p.Settings,
		checks:    p.Checks,
		metrics:   p.Metrics,
		version:   p.Version,
		debug:     p.Debug,
		templates: template.Must(template.ParseFS(templatesFS, "templates/*.html")),
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// Handler returns the router with all middlewares, used by tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("feedwall", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /feed", s.feedHandler)
		r.HandleFunc("POST /feed/refresh", s.refreshHandler)
		r.HandleFunc("GET /layout", s.layoutHandler)
		r.HandleFunc("PUT /viewport", s.viewportHandler)
		r.HandleFunc("POST /hover/{id}/{action}", s.hoverHandler)
		r.HandleFunc("GET /settings/size", s.getSizeHandler)
		r.HandleFunc("PUT /settings/size", s.setSizeHandler)
	})

	s.router.HandleFunc("GET /rss", s.rssHandler)
	s.router.HandleFunc("GET /{$}", s.wallHandler)
}
