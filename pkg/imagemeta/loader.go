// Package imagemeta resolves natural dimensions of tile images. A batch load never fails:
// every image that can't be loaded resolves to the fallback placeholder ratio.
package imagemeta

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register gif decoder
	_ "image/jpeg" // register jpeg decoder
	_ "image/png"  // register png decoder
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	_ "golang.org/x/image/bmp"  // register bmp decoder
	_ "golang.org/x/image/tiff" // register tiff decoder
	_ "golang.org/x/image/webp" // register webp decoder
	"golang.org/x/sync/errgroup"

	"github.com/umputun/feedwall/pkg/domain"
)

//go:generate moq -out mocks/cache.go -pkg mocks -skip-ensure -fmt goimports . Cache

// ErrNoImage is returned for items without an image reference
var ErrNoImage = errors.New("no image reference")

// Cache stores resolved metrics by image url. Only successful loads are cached.
type Cache interface {
	GetMetrics(ctx context.Context, imageURL string) (m domain.ImageMetrics, found bool, err error)
	PutMetrics(ctx context.Context, imageURL string, m domain.ImageMetrics) error
}

// Params configure the loader
type Params struct {
	BaseURL       string        // base for relative image references, local paths if empty
	Timeout       time.Duration // per image
	MaxConcurrent int
	UserAgent     string
	Cache         Cache // optional
}

// Loader loads image headers concurrently and reports their natural dimensions
type Loader struct {
	client        *http.Client
	baseURL       *url.URL
	maxConcurrent int
	userAgent     string
	cache         Cache
}

// NewLoader makes a loader with the given params
func NewLoader(p Params) (*Loader, error) {
	if p.Timeout == 0 {
		p.Timeout = 10 * time.Second
	}
	if p.MaxConcurrent <= 0 {
		p.MaxConcurrent = 8
	}
	res := &Loader{
		client:        &http.Client{Timeout: p.Timeout},
		maxConcurrent: p.MaxConcurrent,
		userAgent:     p.UserAgent,
		cache:         p.Cache,
	}
	if p.BaseURL != "" {
		u, err := url.Parse(p.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("parse base url %q: %w", p.BaseURL, err)
		}
		res.baseURL = u
	}
	return res, nil
}

// Load resolves metrics for all items, index-aligned with items. It returns only after
// every per-item load has settled, failed loads get domain.FallbackMetrics.
func (l *Loader) Load(ctx context.Context, items []domain.FeedItem) []domain.ImageMetrics {
	res := make([]domain.ImageMetrics, len(items))
	var g errgroup.Group
	g.SetLimit(l.maxConcurrent)
	for i, item := range items {
		ref := ""
		if item.Data != nil {
			ref = item.Data.ImageRef()
		}
		g.Go(func() error {
			m, err := l.Metrics(ctx, ref)
			if err != nil {
				lgr.Printf("[WARN] failed to load image for masonry layout %q (item %s): %v", ref, item.ID, err)
				m = domain.FallbackMetrics
			}
			res[i] = m
			return nil
		})
	}
	_ = g.Wait()
	return res
}

// Metrics returns natural dimensions of a single image
func (l *Loader) Metrics(ctx context.Context, ref string) (domain.ImageMetrics, error) {
	if strings.TrimSpace(ref) == "" {
		return domain.ImageMetrics{}, ErrNoImage
	}
	if err := ctx.Err(); err != nil {
		return domain.ImageMetrics{}, err
	}

	loc := l.resolve(ref)
	if l.cache != nil {
		m, found, err := l.cache.GetMetrics(ctx, loc)
		if err != nil {
			lgr.Printf("[DEBUG] image metrics cache get %s: %v", loc, err)
		}
		if err == nil && found {
			return m, nil
		}
	}

	rd, err := l.open(ctx, loc)
	if err != nil {
		return domain.ImageMetrics{}, err
	}
	defer rd.Close()

	cfg, format, err := image.DecodeConfig(rd)
	if err != nil {
		return domain.ImageMetrics{}, fmt.Errorf("decode image %s: %w", loc, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return domain.ImageMetrics{}, fmt.Errorf("invalid %s image size %dx%d", format, cfg.Width, cfg.Height)
	}

	m := domain.ImageMetrics{Width: float64(cfg.Width), Height: float64(cfg.Height)}
	if l.cache != nil {
		if err := l.cache.PutMetrics(ctx, loc, m); err != nil {
			lgr.Printf("[DEBUG] image metrics cache put %s: %v", loc, err)
		}
	}
	return m, nil
}

// resolve turns image reference into absolute url or local path
func (l *Loader) resolve(ref string) string {
	u, err := url.Parse(ref)
	if err != nil || u.Scheme != "" {
		return ref
	}
	if l.baseURL != nil {
		return l.baseURL.ResolveReference(u).String()
	}
	return ref
}

// open returns a reader for a http(s) url, file url or local path
func (l *Loader) open(ctx context.Context, loc string) (io.ReadCloser, error) {
	u, err := url.Parse(loc)
	if err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, loc, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		if l.userAgent != "" {
			req.Header.Set("User-Agent", l.userAgent)
		}
		req.Header.Set("Accept", "image/avif,image/webp,image/*,*/*;q=0.8")
		resp, err := l.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch image %s: %w", loc, err)
		}
		if resp.StatusCode != http.StatusOK {
			_ = resp.Body.Close()
			return nil, fmt.Errorf("unexpected status code %d for image %s", resp.StatusCode, loc)
		}
		return resp.Body, nil
	}

	path := loc
	if err == nil && u.Scheme == "file" {
		path = u.Path
	}
	f, err := os.Open(path) //nolint:gosec // image paths come from configured content sources
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	return f, nil
}
