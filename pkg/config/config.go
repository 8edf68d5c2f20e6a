// Package config loads and validates the yaml configuration of the service
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"

	"github.com/umputun/feedwall/pkg/animate"
	"github.com/umputun/feedwall/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// source formats
const (
	FormatJSON = "json"
	FormatRSS  = "rss"
)

// image metrics cache backends
const (
	CacheSQLite = "sqlite"
	CacheRedis  = "redis"
	CacheNone   = "none"
)

// Config holds the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Database DatabaseConfig `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Sources  SourcesConfig  `yaml:"sources" json:"sources" jsonschema:"description=Content sources"`
	Composer ComposerConfig `yaml:"composer" json:"composer" jsonschema:"description=Feed composition"`
	Images   ImagesConfig   `yaml:"images" json:"images" jsonschema:"description=Image metrics loading"`
	Layout   LayoutConfig   `yaml:"layout" json:"layout" jsonschema:"description=Masonry layout and animation"`
	LLM      LLMConfig      `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for ai suggestions"`
	Enrich   EnrichConfig   `yaml:"enrich" json:"enrich" jsonschema:"description=Landing page image enrichment for ads without image"`
}

// ServerConfig holds http server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Base URL for RSS export and links"`
}

// DatabaseConfig holds sqlite settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:feedwall.db?cache=shared&mode=rwc,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// SourceConfig is a single content source location
type SourceConfig struct {
	Location string `yaml:"location" json:"location" jsonschema:"description=http(s) url or file:// url or local path"`
	Format   string `yaml:"format" json:"format" jsonschema:"default=json,enum=json,enum=rss,description=Source format (rss is allowed for ads and paid ads only)"`
}

// SourcesConfig holds locations of all five content sources
type SourcesConfig struct {
	Timeout    time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Fetch timeout per source"`
	UserAgent  string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Feedwall/1.0,description=User agent for HTTP requests"`
	Ads        SourceConfig  `yaml:"ads" json:"ads" jsonschema:"description=Regular ads"`
	PaidAds    SourceConfig  `yaml:"paid_ads" json:"paid_ads" jsonschema:"description=Sponsored ads"`
	LiveTrades SourceConfig  `yaml:"live_trades" json:"live_trades" jsonschema:"description=Live trade cards"`
	Auctions   SourceConfig  `yaml:"auctions" json:"auctions" jsonschema:"description=Auction cards"`
	AI         SourceConfig  `yaml:"ai" json:"ai" jsonschema:"description=AI suggestion cards (not needed if llm is enabled)"`
}

// QuotasConfig holds max number of items per kind in one snapshot
type QuotasConfig struct {
	Ad      int `yaml:"ad" json:"ad" jsonschema:"default=12,minimum=0"`
	Paid    int `yaml:"paid" json:"paid" jsonschema:"default=2,minimum=0"`
	Trade   int `yaml:"trade" json:"trade" jsonschema:"default=3,minimum=0"`
	Auction int `yaml:"auction" json:"auction" jsonschema:"default=2,minimum=0"`
	AI      int `yaml:"ai" json:"ai" jsonschema:"default=1,minimum=0"`
}

// ComposerConfig holds feed composition settings
type ComposerConfig struct {
	Interval time.Duration `yaml:"interval" json:"interval" jsonschema:"default=5m,description=Recomposition interval"`
	Quotas   QuotasConfig  `yaml:"quotas" json:"quotas" jsonschema:"description=Per kind quotas (all zero means defaults 12/2/3/2/1)"`
}

// ImagesConfig holds image metrics loader settings
type ImagesConfig struct {
	BaseURL       string        `yaml:"base_url" json:"base_url" jsonschema:"description=Base URL for relative image references"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Timeout per image"`
	MaxConcurrent int           `yaml:"max_concurrent" json:"max_concurrent" jsonschema:"default=8,minimum=1,description=Maximum concurrent image loads"`
	Cache         string        `yaml:"cache" json:"cache" jsonschema:"default=sqlite,enum=sqlite,enum=redis,enum=none,description=Metrics cache backend"`
	RedisURL      string        `yaml:"redis_url" json:"redis_url" jsonschema:"description=Redis URL (required for redis cache)"`
	CacheTTL      time.Duration `yaml:"cache_ttl" json:"cache_ttl" jsonschema:"default=168h,description=Cached metrics lifetime"`
}

// AnimationConfig holds entrance and hover animation settings
type AnimationConfig struct {
	Ease         string  `yaml:"ease" json:"ease" jsonschema:"default=power3.out"`
	Duration     float64 `yaml:"duration" json:"duration" jsonschema:"default=0.5,description=Entrance duration in seconds"`
	Stagger      float64 `yaml:"stagger" json:"stagger" jsonschema:"default=0.05,description=Entrance delay step in seconds"`
	AnimateFrom  string  `yaml:"animate_from" json:"animate_from" jsonschema:"default=center,enum=top,enum=bottom,enum=left,enum=right,enum=center"`
	Distance     float64 `yaml:"distance" json:"distance" jsonschema:"default=50,description=Entrance offset in px"`
	ScaleOnHover *bool   `yaml:"scale_on_hover" json:"scale_on_hover" jsonschema:"default=true"`
	HoverScale   float64 `yaml:"hover_scale" json:"hover_scale" jsonschema:"default=1.05"`
	BlurToFocus  *bool   `yaml:"blur_to_focus" json:"blur_to_focus" jsonschema:"default=true"`
}

// LayoutConfig holds masonry layout settings
type LayoutConfig struct {
	Gap            float64         `yaml:"gap" json:"gap" jsonschema:"default=16,description=Vertical gap below each tile in px"`
	ContainerWidth float64         `yaml:"container_width" json:"container_width" jsonschema:"default=1200,description=Maximum container width in px"`
	Viewport       int             `yaml:"viewport" json:"viewport" jsonschema:"default=1024,description=Default viewport width in px"`
	Size           string          `yaml:"size" json:"size" jsonschema:"default=medium,enum=small,enum=medium,enum=large,description=Default tile size preference"`
	Animation      AnimationConfig `yaml:"animation" json:"animation"`
}

// LLMConfig holds LLM configuration for ai suggestion generation
type LLMConfig struct {
	Enabled      bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Generate ai suggestions with LLM instead of the ai source"`
	Endpoint     string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey       string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model        string        `yaml:"model" json:"model" jsonschema:"description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature  float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.7,description=Temperature for response generation"`
	MaxTokens    int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=500,description=Maximum tokens in response"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	SystemPrompt string        `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=System prompt for the LLM (optional)"`
	Count        int           `yaml:"count" json:"count" jsonschema:"default=3,minimum=1,description=Number of suggestions per composition"`
}

// EnrichConfig holds landing page image enrichment settings
type EnrichConfig struct {
	Enabled bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Resolve missing ad images from landing pages"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Landing page fetch timeout"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		lgr.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	// server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = "http://localhost:8080"
	}

	// database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:feedwall.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// sources
	if cfg.Sources.Timeout == 0 {
		cfg.Sources.Timeout = 15 * time.Second
	}
	if cfg.Sources.UserAgent == "" {
		cfg.Sources.UserAgent = "Feedwall/1.0"
	}
	for _, s := range cfg.Sources.all() {
		if s.Format == "" {
			s.Format = FormatJSON
		}
	}

	// composer
	if cfg.Composer.Interval == 0 {
		cfg.Composer.Interval = 5 * time.Minute
	}
	if cfg.Composer.Quotas == (QuotasConfig{}) {
		cfg.Composer.Quotas = QuotasConfig{Ad: 12, Paid: 2, Trade: 3, Auction: 2, AI: 1}
	}

	// images
	if cfg.Images.Timeout == 0 {
		cfg.Images.Timeout = 10 * time.Second
	}
	if cfg.Images.MaxConcurrent == 0 {
		cfg.Images.MaxConcurrent = 8
	}
	if cfg.Images.Cache == "" {
		cfg.Images.Cache = CacheSQLite
	}
	if cfg.Images.CacheTTL == 0 {
		cfg.Images.CacheTTL = 7 * 24 * time.Hour
	}

	// layout
	if cfg.Layout.Gap == 0 {
		cfg.Layout.Gap = 16
	}
	if cfg.Layout.ContainerWidth == 0 {
		cfg.Layout.ContainerWidth = 1200
	}
	if cfg.Layout.Viewport == 0 {
		cfg.Layout.Viewport = 1024
	}
	if cfg.Layout.Size == "" {
		cfg.Layout.Size = "medium"
	}
	anim := &cfg.Layout.Animation
	if anim.Ease == "" {
		anim.Ease = "power3.out"
	}
	if anim.Duration == 0 {
		anim.Duration = 0.5
	}
	if anim.Stagger == 0 {
		anim.Stagger = 0.05
	}
	if anim.AnimateFrom == "" {
		anim.AnimateFrom = "center"
	}
	if anim.Distance == 0 {
		anim.Distance = 50
	}
	if anim.ScaleOnHover == nil {
		anim.ScaleOnHover = ptr(true)
	}
	if anim.HoverScale == 0 {
		anim.HoverScale = 1.05
	}
	if anim.BlurToFocus == nil {
		anim.BlurToFocus = ptr(true)
	}

	// llm
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.7
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 500
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 30 * time.Second
	}
	if cfg.LLM.Count == 0 {
		cfg.LLM.Count = 3
	}

	// enrich
	if cfg.Enrich.Timeout == 0 {
		cfg.Enrich.Timeout = 10 * time.Second
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate server config
	if cfg.Server.Timeout < time.Second {
		return errors.New("server timeout must be at least 1 second")
	}

	// validate sources
	names := []string{"ads", "paid_ads", "live_trades", "auctions", "ai"}
	for i, s := range cfg.Sources.all() {
		name := names[i]
		if name == "ai" && cfg.LLM.Enabled {
			continue
		}
		if s.Location == "" {
			return fmt.Errorf("sources.%s.location is required", name)
		}
		switch s.Format {
		case FormatJSON:
		case FormatRSS:
			if name != "ads" && name != "paid_ads" {
				return fmt.Errorf("sources.%s.format rss is supported for ads and paid_ads only", name)
			}
		default:
			return fmt.Errorf("sources.%s.format %q is not supported", name, s.Format)
		}
	}

	// validate composer
	if cfg.Composer.Interval < time.Second {
		return errors.New("composer interval must be at least 1 second")
	}
	q := cfg.Composer.Quotas
	if q.Ad < 0 || q.Paid < 0 || q.Trade < 0 || q.Auction < 0 || q.AI < 0 {
		return errors.New("composer quotas must be non-negative")
	}

	// validate images
	if cfg.Images.MaxConcurrent < 1 {
		return errors.New("images.max_concurrent must be at least 1")
	}
	switch cfg.Images.Cache {
	case CacheSQLite, CacheNone:
	case CacheRedis:
		if cfg.Images.RedisURL == "" {
			return errors.New("images.redis_url is required for redis cache")
		}
	default:
		return fmt.Errorf("images.cache %q is not supported", cfg.Images.Cache)
	}

	// validate layout
	if cfg.Layout.Gap < 0 {
		return errors.New("layout.gap must be non-negative")
	}
	if cfg.Layout.ContainerWidth < 0 {
		return errors.New("layout.container_width must be non-negative")
	}
	if _, err := domain.ParseSizePreference(cfg.Layout.Size); err != nil {
		return fmt.Errorf("layout.size: %w", err)
	}
	if _, err := animate.ParseDirection(cfg.Layout.Animation.AnimateFrom); err != nil {
		return fmt.Errorf("layout.animation.animate_from: %w", err)
	}

	// validate LLM config
	if cfg.LLM.Enabled {
		if cfg.LLM.Endpoint == "" {
			return errors.New("llm.endpoint is required")
		}
		if cfg.LLM.Model == "" {
			return errors.New("llm.model is required")
		}
		if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
			return errors.New("llm.temperature must be between 0 and 2")
		}
		if cfg.LLM.Count < 1 {
			return errors.New("llm.count must be at least 1")
		}
	}

	// validate enrichment config
	if cfg.Enrich.Enabled && cfg.Enrich.Timeout < time.Second {
		return errors.New("enrich timeout must be at least 1 second")
	}

	return nil
}

// Options converts animation settings to animate options, hover timing is not configurable
func (a AnimationConfig) Options() animate.Options {
	opts := animate.DefaultOptions()
	opts.Ease = a.Ease
	opts.Duration = a.Duration
	opts.Stagger = a.Stagger
	opts.AnimateFrom = animate.Direction(a.AnimateFrom)
	opts.Distance = a.Distance
	opts.HoverScale = a.HoverScale
	if a.ScaleOnHover != nil {
		opts.ScaleOnHover = *a.ScaleOnHover
	}
	if a.BlurToFocus != nil {
		opts.BlurToFocus = *a.BlurToFocus
	}
	return opts
}

// Quotas converts quota settings to domain quotas
func (q QuotasConfig) Quotas() domain.Quotas {
	return domain.Quotas{Ad: q.Ad, Paid: q.Paid, Trade: q.Trade, Auction: q.Auction, AI: q.AI}
}

// all returns pointers to all source configs
func (s *SourcesConfig) all() []*SourceConfig {
	return []*SourceConfig{&s.Ads, &s.PaidAds, &s.LiveTrades, &s.Auctions, &s.AI}
}

func ptr[T any](v T) *T { return &v }
