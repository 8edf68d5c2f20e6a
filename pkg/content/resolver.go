// Package content resolves lead images of ad landing pages
package content

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/markusmobius/go-trafilatura"
)

// ImageResolver finds the lead image of a landing page using trafilatura metadata
// (og:image, twitter:image and similar)
type ImageResolver struct {
	client    *http.Client
	userAgent string
}

// NewImageResolver creates a new landing page image resolver
func NewImageResolver(timeout time.Duration, userAgent string) *ImageResolver {
	if userAgent == "" {
		userAgent = "Mozilla/5.0 (compatible; Feedwall/1.0)"
	}
	return &ImageResolver{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// ResolveImage retrieves the page and returns absolute url of its lead image
func (e *ImageResolver) ResolveImage(ctx context.Context, pageURL string) (string, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return "", fmt.Errorf("invalid URL: %s", pageURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	addBrowserHeaders(req)
	req.Header.Set("User-Agent", e.userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch URL %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code %d for URL %s", resp.StatusCode, pageURL)
	}

	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		IncludeImages:   true,
		OriginalURL:     parsedURL,
	}

	result, err := trafilatura.Extract(resp.Body, opts)
	if err != nil {
		return "", fmt.Errorf("extract page %s: %w", pageURL, err)
	}
	if result == nil {
		return "", fmt.Errorf("nothing extracted from %s", pageURL)
	}

	img := strings.TrimSpace(result.Metadata.Image)
	if img == "" {
		return "", fmt.Errorf("no lead image on %s", pageURL)
	}

	imgURL, err := url.Parse(img)
	if err != nil {
		return "", fmt.Errorf("parse image URL %q: %w", img, err)
	}
	return parsedURL.ResolveReference(imgURL).String(), nil
}
