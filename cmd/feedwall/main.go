package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/feedwall/pkg/cache"
	"github.com/umputun/feedwall/pkg/composer"
	"github.com/umputun/feedwall/pkg/config"
	"github.com/umputun/feedwall/pkg/content"
	"github.com/umputun/feedwall/pkg/domain"
	"github.com/umputun/feedwall/pkg/engine"
	"github.com/umputun/feedwall/pkg/imagemeta"
	"github.com/umputun/feedwall/pkg/layout"
	"github.com/umputun/feedwall/pkg/llm"
	"github.com/umputun/feedwall/pkg/repository"
	"github.com/umputun/feedwall/pkg/source"
	"github.com/umputun/feedwall/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"feedwall.yml" description:"configuration file"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	setupLog(opts.Debug)

	lgr.Printf("[INFO] starting feedwall version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Printf("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		lgr.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	lgr.Printf("[INFO] shutdown complete")
}

// run wires all components and blocks until the server stops
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if cfg.LLM.APIKey != "" {
		setupLog(opts.Debug, cfg.LLM.APIKey)
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
		MetricsTTL:      cfg.Images.CacheTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			lgr.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	metricsCache, closeCache, err := makeMetricsCache(ctx, cfg, repos)
	if err != nil {
		return err
	}
	defer closeCache()

	loader, err := imagemeta.NewLoader(imagemeta.Params{
		BaseURL:       cfg.Images.BaseURL,
		Timeout:       cfg.Images.Timeout,
		MaxConcurrent: cfg.Images.MaxConcurrent,
		UserAgent:     cfg.Sources.UserAgent,
		Cache:         metricsCache,
	})
	if err != nil {
		return fmt.Errorf("failed to make image loader: %w", err)
	}

	reader := source.NewReader(makeSourceParams(cfg))
	svc := composer.NewService(composer.NewComposer(reader, cfg.Composer.Quotas.Quotas(), nil), cfg.Composer.Interval)

	eng := engine.New(engine.Params{
		Loader:         loader,
		Packer:         layout.Packer{Gap: cfg.Layout.Gap},
		Animation:      cfg.Layout.Animation.Options(),
		Viewport:       cfg.Layout.Viewport,
		ContainerWidth: cfg.Layout.ContainerWidth,
		SizePreference: initialSize(ctx, cfg, repos.Setting),
	})

	// snapshots flow from the composer service into the layout engine
	svc.Subscribe(func(st composer.State) {
		eng.OnLoading(st.Loading)
		if !st.Snapshot.Empty() {
			eng.OnSnapshotChange(st.Snapshot)
		}
	})
	eng.Subscribe(func(f domain.Frame) {
		lgr.Printf("[DEBUG] frame %s, %d tiles in %d columns, height %.0f",
			f.Generation, len(f.Geometries), f.Columns, f.TotalHeight)
	})

	go func() {
		if err := eng.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			lgr.Printf("[WARN] layout engine stopped: %v", err)
		}
	}()

	svc.Start(ctx)
	defer svc.Stop()

	checks := map[string]server.HealthChecker{"db": repos}
	var counter server.MetricsCounter
	switch c := metricsCache.(type) {
	case *cache.RedisCache:
		checks["cache"] = c
	case *repository.MetricsRepository:
		counter = c
	}

	srv := server.New(server.Params{
		Config:   &server.ConfigAdapter{Config: cfg},
		Feed:     svc,
		Engine:   eng,
		Settings: repos.Setting,
		Checks:   checks,
		Metrics:  counter,
		Version:  revision,
		Debug:    opts.Debug,
	})
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// makeMetricsCache picks the configured metrics cache. The returned close func is never nil.
func makeMetricsCache(ctx context.Context, cfg *config.Config, repos *repository.Repositories) (imagemeta.Cache, func(), error) {
	switch cfg.Images.Cache {
	case config.CacheRedis:
		rc, err := cache.NewRedisCache(ctx, cfg.Images.RedisURL, cfg.Images.CacheTTL)
		if err != nil {
			return nil, func() {}, fmt.Errorf("failed to initialize redis cache: %w", err)
		}
		return rc, func() {
			if err := rc.Close(); err != nil {
				lgr.Printf("[WARN] failed to close redis: %v", err)
			}
		}, nil
	case config.CacheNone:
		return nil, func() {}, nil
	default:
		if n, err := repos.Metrics.PruneMetrics(ctx); err != nil {
			lgr.Printf("[WARN] failed to prune cached metrics: %v", err)
		} else if n > 0 {
			lgr.Printf("[INFO] pruned %d expired image metrics", n)
		}
		return repos.Metrics, func() {}, nil
	}
}

// makeSourceParams converts sources config to reader params with optional enrichment and llm suggestions
func makeSourceParams(cfg *config.Config) source.Params {
	loc := func(s config.SourceConfig) source.Location {
		return source.Location{Location: s.Location, Format: s.Format}
	}
	res := source.Params{
		Ads:           loc(cfg.Sources.Ads),
		PaidAds:       loc(cfg.Sources.PaidAds),
		LiveTrades:    loc(cfg.Sources.LiveTrades),
		Auctions:      loc(cfg.Sources.Auctions),
		AiSuggestions: loc(cfg.Sources.AI),
		Timeout:       cfg.Sources.Timeout,
		UserAgent:     cfg.Sources.UserAgent,
	}
	if cfg.Enrich.Enabled {
		res.Resolver = content.NewImageResolver(cfg.Enrich.Timeout, cfg.Sources.UserAgent)
		q := cfg.Composer.Quotas.Quotas()
		res.EnrichLimits = map[domain.Kind]int{domain.KindAd: q.Ad, domain.KindPaid: q.Paid}
		lgr.Printf("[INFO] landing page image enrichment enabled")
	}
	if cfg.LLM.Enabled {
		res.Suggester = llm.NewSuggester(cfg.LLM)
		lgr.Printf("[INFO] llm suggestions enabled, model %s", cfg.LLM.Model)
	}
	return res
}

// initialSize returns the stored size preference, or the configured one
func initialSize(ctx context.Context, cfg *config.Config, settings *repository.SettingRepository) domain.SizePreference {
	def, err := domain.ParseSizePreference(cfg.Layout.Size)
	if err != nil {
		def = domain.SizeMedium
	}
	setting, err := settings.GetSetting(ctx, domain.SettingSizePreference)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			lgr.Printf("[WARN] failed to read size preference: %v", err)
		}
		return def
	}
	size, err := domain.ParseSizePreference(setting.Value)
	if err != nil {
		lgr.Printf("[WARN] stored size preference ignored: %v", err)
		return def
	}
	return size
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
