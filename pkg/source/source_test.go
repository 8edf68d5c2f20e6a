package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedwall/pkg/domain"
	"github.com/umputun/feedwall/pkg/source/mocks"
)

const adsJSON = `[
  {"id": "ad-1", "imageUrl": "/img/1.jpg", "link": "https://shop.example.com/1", "type": "image", "size": "medium", "alt": "Summer <b>sale</b>"},
  {"id": "ad-2", "imageUrl": "", "link": "https://shop.example.com/2", "type": "image", "size": "large", "alt": "Boots & shoes"},
  {"id": "ad-1", "imageUrl": "/img/dup.jpg", "link": "", "type": "image", "size": "small", "alt": "dup"},
  {"id": "", "imageUrl": "/img/noid.jpg"}
]`

const paidJSON = `[{"id": "p-1", "imageUrl": "/img/p1.jpg", "link": "https://brand.example.com", "type": "image", "size": "large", "alt": "Brand", "sponsor": "<i>Brand Inc</i>"}]`

const tradesJSON = `[{"id": "t-1", "symbol": "BTC", "price": 64000.5, "change": -1.2}, {"id": "t-2", "symbol": "ETH", "price": 3100, "change": 2.5, "imageUrl": "/img/eth.png"}]`

const auctionsJSON = `[{"id": "au-1", "title": "Vintage camera", "currentBid": 120, "endsAt": "2024-06-01T12:00:00Z", "imageUrl": "/img/cam.jpg"}]`

const aiJSON = `[{"id": "ai-1", "title": "Try <script>alert(1)</script>this", "prompt": "a cat"}]`

const adsRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
	<title>Ads</title>
	<link>http://example.com</link>
	<item>
		<title>Rss ad 1</title>
		<link>http://example.com/ad1</link>
		<guid>rss-ad-1</guid>
		<category>large</category>
		<enclosure url="http://example.com/ad1.jpg" length="100" type="image/jpeg"/>
	</item>
	<item>
		<title>Rss ad 2</title>
		<link>http://example.com/ad2</link>
	</item>
</channel>
</rss>`

func contentServer(t *testing.T) *httptest.Server {
	t.Helper()
	files := map[string]string{
		"/ads.json":      adsJSON,
		"/paid.json":     paidJSON,
		"/trades.json":   tradesJSON,
		"/auctions.json": auctionsJSON,
		"/ai.json":       aiJSON,
		"/ads.xml":       adsRSS,
		"/broken.json":   `[{"id": `,
	}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := files[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		assert.Equal(t, "feedwall-test", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func testParams(ts *httptest.Server) Params {
	return Params{
		Ads:           Location{Location: ts.URL + "/ads.json"},
		PaidAds:       Location{Location: ts.URL + "/paid.json", Format: FormatJSON},
		LiveTrades:    Location{Location: ts.URL + "/trades.json"},
		Auctions:      Location{Location: ts.URL + "/auctions.json"},
		AiSuggestions: Location{Location: ts.URL + "/ai.json"},
		Timeout:       time.Second,
		UserAgent:     "feedwall-test",
	}
}

func TestReader_FetchAll(t *testing.T) {
	ts := contentServer(t)
	r := NewReader(testParams(ts))
	ctx := context.Background()

	ads, err := r.FetchAds(ctx)
	require.NoError(t, err)
	require.Len(t, ads, 2, "duplicate and empty ids dropped")
	assert.Equal(t, domain.Ad{ID: "ad-1", ImageURL: "/img/1.jpg", Link: "https://shop.example.com/1", Type: "image", Size: "medium", Alt: "Summer sale"}, ads[0])
	assert.Equal(t, "Boots & shoes", ads[1].Alt)
	assert.Empty(t, ads[1].ImageURL, "no resolver, image stays empty")

	paid, err := r.FetchPaidAds(ctx)
	require.NoError(t, err)
	require.Len(t, paid, 1)
	assert.Equal(t, "p-1", paid[0].ID)
	assert.Equal(t, "Brand Inc", paid[0].Sponsor)
	assert.Equal(t, "/img/p1.jpg", paid[0].ImageRef())

	trades, err := r.FetchLiveTrades(ctx)
	require.NoError(t, err)
	require.Len(t, trades, 2)
	assert.Equal(t, "BTC", trades[0].Symbol)
	assert.InDelta(t, 64000.5, trades[0].Price, 0.0001)
	assert.Equal(t, "/img/eth.png", trades[1].ImageRef())

	auctions, err := r.FetchAuctions(ctx)
	require.NoError(t, err)
	require.Len(t, auctions, 1)
	assert.Equal(t, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), auctions[0].EndsAt.UTC())

	ai, err := r.FetchAiSuggestions(ctx)
	require.NoError(t, err)
	require.Len(t, ai, 1)
	assert.Equal(t, "Try this", ai[0].Title)
	assert.Equal(t, "a cat", ai[0].Prompt)
}

func TestReader_Errors(t *testing.T) {
	ts := contentServer(t)
	ctx := context.Background()

	tbl := []struct {
		name  string
		param func(p *Params)
		fetch func(r *Reader) error
		kind  domain.Kind
	}{
		{"ads not found", func(p *Params) { p.Ads.Location = ts.URL + "/missing.json" },
			func(r *Reader) error { _, err := r.FetchAds(ctx); return err }, domain.KindAd},
		{"paid broken json", func(p *Params) { p.PaidAds.Location = ts.URL + "/broken.json" },
			func(r *Reader) error { _, err := r.FetchPaidAds(ctx); return err }, domain.KindPaid},
		{"trades empty location", func(p *Params) { p.LiveTrades.Location = "" },
			func(r *Reader) error { _, err := r.FetchLiveTrades(ctx); return err }, domain.KindTrade},
		{"auctions missing file", func(p *Params) { p.Auctions.Location = "/no/such/auctions.json" },
			func(r *Reader) error { _, err := r.FetchAuctions(ctx); return err }, domain.KindAuction},
		{"ai unreachable", func(p *Params) { p.AiSuggestions.Location = "http://127.0.0.1:1/ai.json" },
			func(r *Reader) error { _, err := r.FetchAiSuggestions(ctx); return err }, domain.KindAI},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			p := testParams(ts)
			tt.param(&p)
			err := tt.fetch(NewReader(p))
			require.Error(t, err)
			var srcErr *SourceFetchError
			require.True(t, errors.As(err, &srcErr))
			assert.Equal(t, tt.kind, srcErr.Kind)
			assert.Contains(t, err.Error(), string(tt.kind))
		})
	}
}

func TestReader_LocalFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trades.json")
	require.NoError(t, os.WriteFile(path, []byte(tradesJSON), 0o600))

	r := NewReader(Params{LiveTrades: Location{Location: path}, Auctions: Location{Location: "file://" + path}})
	trades, err := r.FetchLiveTrades(context.Background())
	require.NoError(t, err)
	assert.Len(t, trades, 2)

	// auctions decoded from trades file, ids still unique, fields just empty
	auctions, err := r.FetchAuctions(context.Background())
	require.NoError(t, err)
	assert.Len(t, auctions, 2)
}

func TestReader_RSS(t *testing.T) {
	ts := contentServer(t)
	p := testParams(ts)
	p.Ads = Location{Location: ts.URL + "/ads.xml", Format: FormatRSS}
	p.PaidAds = Location{Location: ts.URL + "/ads.xml", Format: FormatRSS}
	r := NewReader(p)

	ads, err := r.FetchAds(context.Background())
	require.NoError(t, err)
	require.Len(t, ads, 2)
	assert.Equal(t, domain.Ad{ID: "rss-ad-1", ImageURL: "http://example.com/ad1.jpg", Link: "http://example.com/ad1",
		Type: "image", Size: "large", Alt: "Rss ad 1"}, ads[0])
	assert.Equal(t, "http://example.com/ad2", ads[1].ID, "link used when guid missing")
	assert.Empty(t, ads[1].ImageURL)

	paid, err := r.FetchPaidAds(context.Background())
	require.NoError(t, err)
	require.Len(t, paid, 2)
	assert.Equal(t, "rss-ad-1", paid[0].ID)
}

func TestReader_Enrich(t *testing.T) {
	ts := contentServer(t)
	resolver := &mocks.ImageResolverMock{
		ResolveImageFunc: func(ctx context.Context, pageURL string) (string, error) {
			if pageURL == "https://shop.example.com/2" {
				return "https://shop.example.com/2/lead.jpg", nil
			}
			return "", errors.New("no image")
		},
	}
	p := testParams(ts)
	p.Resolver = resolver
	r := NewReader(p)

	ads, err := r.FetchAds(context.Background())
	require.NoError(t, err)
	require.Len(t, ads, 2)
	assert.Equal(t, "/img/1.jpg", ads[0].ImageURL)
	assert.Equal(t, "https://shop.example.com/2/lead.jpg", ads[1].ImageURL)
	require.Len(t, resolver.ResolveImageCalls(), 1, "only records without image are resolved")
}

func TestReader_EnrichLimit(t *testing.T) {
	ts := contentServer(t)
	resolver := &mocks.ImageResolverMock{
		ResolveImageFunc: func(ctx context.Context, pageURL string) (string, error) {
			return pageURL + "/lead.jpg", nil
		},
	}
	p := testParams(ts)
	p.Resolver = resolver
	p.EnrichLimits = map[domain.Kind]int{domain.KindAd: 1}
	r := NewReader(p)

	ads, err := r.FetchAds(context.Background())
	require.NoError(t, err)
	require.Len(t, ads, 2)
	assert.Empty(t, ads[1].ImageURL, "records past the limit are not enriched")
	assert.Empty(t, resolver.ResolveImageCalls())

	p.EnrichLimits = map[domain.Kind]int{domain.KindAd: 2}
	r = NewReader(p)
	ads, err = r.FetchAds(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://shop.example.com/2/lead.jpg", ads[1].ImageURL)
	assert.Len(t, resolver.ResolveImageCalls(), 1)
}

func TestReader_Suggester(t *testing.T) {
	ts := contentServer(t)
	suggester := &mocks.SuggestionProviderMock{
		SuggestFunc: func(ctx context.Context) ([]domain.AiSuggestion, error) {
			return []domain.AiSuggestion{{ID: "gen-1", Title: "<b>Generated</b>"}, {ID: "gen-1", Title: "dup"}}, nil
		},
	}
	p := testParams(ts)
	p.Suggester = suggester
	r := NewReader(p)

	ai, err := r.FetchAiSuggestions(context.Background())
	require.NoError(t, err)
	require.Len(t, ai, 1)
	assert.Equal(t, domain.AiSuggestion{ID: "gen-1", Title: "Generated"}, ai[0])

	suggester.SuggestFunc = func(ctx context.Context) ([]domain.AiSuggestion, error) {
		return nil, errors.New("llm down")
	}
	_, err = r.FetchAiSuggestions(context.Background())
	var srcErr *SourceFetchError
	require.ErrorAs(t, err, &srcErr)
	assert.Equal(t, "llm", srcErr.Location)
}
