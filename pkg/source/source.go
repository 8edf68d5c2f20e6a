// Package source reads the five content collections the feed is composed from.
// Each source is a location (http(s) url, file url or local path) holding either a JSON
// array of records or, for ad-like sources, an RSS/Atom feed.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/feedwall/pkg/domain"
)

//go:generate moq -out mocks/resolver.go -pkg mocks -skip-ensure -fmt goimports . ImageResolver
//go:generate moq -out mocks/suggester.go -pkg mocks -skip-ensure -fmt goimports . SuggestionProvider

// source formats
const (
	FormatJSON = "json"
	FormatRSS  = "rss"
)

// SourceFetchError reports a content source that couldn't be fetched or parsed
type SourceFetchError struct {
	Kind     domain.Kind
	Location string
	Err      error
}

func (e *SourceFetchError) Error() string {
	return fmt.Sprintf("fetch %s source %s: %v", e.Kind, e.Location, e.Err)
}

func (e *SourceFetchError) Unwrap() error { return e.Err }

// Location of a single content source
type Location struct {
	Location string
	Format   string // json (default) or rss
}

// ImageResolver finds a lead image for a landing page, used for ad-like records without an image
type ImageResolver interface {
	ResolveImage(ctx context.Context, pageURL string) (string, error)
}

// SuggestionProvider generates ai suggestions in place of a static ai source
type SuggestionProvider interface {
	Suggest(ctx context.Context) ([]domain.AiSuggestion, error)
}

// Params configure the reader
type Params struct {
	Ads           Location
	PaidAds       Location
	LiveTrades    Location
	Auctions      Location
	AiSuggestions Location
	Timeout       time.Duration
	UserAgent     string
	Resolver      ImageResolver       // optional
	EnrichLimits  map[domain.Kind]int // optional, only the first n records of a kind are enriched
	Suggester     SuggestionProvider  // optional, replaces AiSuggestions location
}

// Reader fetches typed content collections
type Reader struct {
	params   Params
	client   *http.Client
	policy   *bluemonday.Policy
	resolver ImageResolver
}

// NewReader makes a reader with the given params
func NewReader(p Params) *Reader {
	if p.Timeout == 0 {
		p.Timeout = 30 * time.Second
	}
	return &Reader{
		params: p,
		client: &http.Client{
			Timeout: p.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		policy:   bluemonday.StrictPolicy(),
		resolver: p.Resolver,
	}
}

// FetchAds returns regular ads
func (r *Reader) FetchAds(ctx context.Context) ([]domain.Ad, error) {
	loc := r.params.Ads
	var ads []domain.Ad
	var err error
	if loc.Format == FormatRSS {
		ads, err = r.fetchRSS(ctx, loc.Location)
	} else {
		ads, err = fetchJSON[domain.Ad](ctx, r, loc.Location)
	}
	if err != nil {
		return nil, &SourceFetchError{Kind: domain.KindAd, Location: loc.Location, Err: err}
	}
	for i := range ads {
		ads[i] = r.cleanAd(ads[i])
	}
	ads = uniqueByID(domain.KindAd, ads)
	r.enrich(ctx, r.enrichCount(domain.KindAd, len(ads)), func(i int) *domain.Ad { return &ads[i] })
	return ads, nil
}

// FetchPaidAds returns sponsored ads
func (r *Reader) FetchPaidAds(ctx context.Context) ([]domain.PaidAd, error) {
	loc := r.params.PaidAds
	var paid []domain.PaidAd
	if loc.Format == FormatRSS {
		ads, err := r.fetchRSS(ctx, loc.Location)
		if err != nil {
			return nil, &SourceFetchError{Kind: domain.KindPaid, Location: loc.Location, Err: err}
		}
		paid = make([]domain.PaidAd, len(ads))
		for i, ad := range ads {
			paid[i] = domain.PaidAd{Ad: ad}
		}
	} else {
		var err error
		if paid, err = fetchJSON[domain.PaidAd](ctx, r, loc.Location); err != nil {
			return nil, &SourceFetchError{Kind: domain.KindPaid, Location: loc.Location, Err: err}
		}
	}
	for i := range paid {
		paid[i].Ad = r.cleanAd(paid[i].Ad)
		paid[i].Sponsor = r.clean(paid[i].Sponsor)
	}
	paid = uniqueByID(domain.KindPaid, paid)
	r.enrich(ctx, r.enrichCount(domain.KindPaid, len(paid)), func(i int) *domain.Ad { return &paid[i].Ad })
	return paid, nil
}

// FetchLiveTrades returns live trade cards
func (r *Reader) FetchLiveTrades(ctx context.Context) ([]domain.LiveTrade, error) {
	loc := r.params.LiveTrades
	trades, err := fetchJSON[domain.LiveTrade](ctx, r, loc.Location)
	if err != nil {
		return nil, &SourceFetchError{Kind: domain.KindTrade, Location: loc.Location, Err: err}
	}
	for i := range trades {
		trades[i].Symbol = r.clean(trades[i].Symbol)
	}
	return uniqueByID(domain.KindTrade, trades), nil
}

// FetchAuctions returns auction cards
func (r *Reader) FetchAuctions(ctx context.Context) ([]domain.Auction, error) {
	loc := r.params.Auctions
	auctions, err := fetchJSON[domain.Auction](ctx, r, loc.Location)
	if err != nil {
		return nil, &SourceFetchError{Kind: domain.KindAuction, Location: loc.Location, Err: err}
	}
	for i := range auctions {
		auctions[i].Title = r.clean(auctions[i].Title)
	}
	return uniqueByID(domain.KindAuction, auctions), nil
}

// FetchAiSuggestions returns ai suggestion cards, generated if a suggestion provider is set
func (r *Reader) FetchAiSuggestions(ctx context.Context) ([]domain.AiSuggestion, error) {
	loc := r.params.AiSuggestions
	var suggestions []domain.AiSuggestion
	var err error
	if r.params.Suggester != nil {
		loc.Location = "llm"
		suggestions, err = r.params.Suggester.Suggest(ctx)
	} else {
		suggestions, err = fetchJSON[domain.AiSuggestion](ctx, r, loc.Location)
	}
	if err != nil {
		return nil, &SourceFetchError{Kind: domain.KindAI, Location: loc.Location, Err: err}
	}
	for i := range suggestions {
		suggestions[i].Title = r.clean(suggestions[i].Title)
		suggestions[i].Prompt = r.clean(suggestions[i].Prompt)
	}
	return uniqueByID(domain.KindAI, suggestions), nil
}

// fetchJSON reads a JSON array of records from the location
func fetchJSON[T any](ctx context.Context, r *Reader, location string) ([]T, error) {
	body, err := r.open(ctx, location, "application/json")
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var res []T
	if err := json.NewDecoder(body).Decode(&res); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return res, nil
}

// open returns content of http(s) url, file url or local path
func (r *Reader) open(ctx context.Context, location, accept string) (io.ReadCloser, error) {
	if location == "" {
		return nil, fmt.Errorf("empty location")
	}
	u, err := url.Parse(location)
	if err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return r.fetch(ctx, location, accept)
	}
	path := location
	if err == nil && u.Scheme == "file" {
		path = u.Path
	}
	f, err := os.Open(path) //nolint:gosec // source locations come from config
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

// fetch retrieves content from a URL
func (r *Reader) fetch(ctx context.Context, location, accept string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if r.params.UserAgent != "" {
		req.Header.Set("User-Agent", r.params.UserAgent)
	}
	addBrowserHeaders(req, accept)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return resp.Body, nil
}

// clean strips any markup from a text field
func (r *Reader) clean(s string) string {
	if s == "" {
		return s
	}
	return html.UnescapeString(r.policy.Sanitize(s))
}

func (r *Reader) cleanAd(ad domain.Ad) domain.Ad {
	ad.Alt = r.clean(ad.Alt)
	ad.Type = r.clean(ad.Type)
	ad.Size = r.clean(ad.Size)
	return ad
}

// enrichCount returns how many leading records of the kind are worth enriching.
// Records past the limit are dropped by quota selection anyway.
func (r *Reader) enrichCount(kind domain.Kind, n int) int {
	limit, ok := r.params.EnrichLimits[kind]
	if !ok {
		return n
	}
	return max(0, min(n, limit))
}

// enrich resolves missing images of ad-like records from their landing pages.
// Failures leave the record unchanged.
func (r *Reader) enrich(ctx context.Context, n int, ad func(i int) *domain.Ad) {
	if r.resolver == nil {
		return
	}
	var g errgroup.Group
	g.SetLimit(4)
	for i := range n {
		a := ad(i)
		if a.ImageURL != "" || a.Link == "" {
			continue
		}
		g.Go(func() error {
			img, err := r.resolver.ResolveImage(ctx, a.Link)
			if err != nil {
				lgr.Printf("[DEBUG] can't resolve image for ad %s from %s: %v", a.ID, a.Link, err)
				return nil
			}
			a.ImageURL = img
			return nil
		})
	}
	_ = g.Wait()
}

// uniqueByID drops records with empty or repeated ids, first one wins
func uniqueByID[T domain.Record](kind domain.Kind, recs []T) []T {
	seen := make(map[string]bool, len(recs))
	res := make([]T, 0, len(recs))
	for _, rec := range recs {
		id := rec.RecordID()
		if id == "" || seen[id] {
			lgr.Printf("[WARN] skip %s record with empty or duplicate id %q", kind, id)
			continue
		}
		seen[id] = true
		res = append(res, rec)
	}
	return res
}
