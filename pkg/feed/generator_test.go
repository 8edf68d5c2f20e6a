package feed

import (
	"encoding/xml"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedwall/pkg/domain"
)

func TestGenerator_GenerateRSS(t *testing.T) {
	generator := NewGenerator("https://example.com/")
	composed := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	snap := domain.Snapshot{
		Generation: "gen-1",
		ComposedAt: composed,
		Items: []domain.FeedItem{
			{ID: "a1", Kind: domain.KindAd, Data: domain.Ad{ID: "a1", ImageURL: "https://cdn.example.com/a1.png",
				Link: "https://shop.example.com/a1", Alt: "Red shoes"}},
			{ID: "p1", Kind: domain.KindPaid, Data: domain.PaidAd{Ad: domain.Ad{ID: "p1", ImageURL: "https://cdn.example.com/p1",
				Link: "https://shop.example.com/p1"}, Sponsor: "Acme"}},
			{ID: "t1", Kind: domain.KindTrade, Data: domain.LiveTrade{ID: "t1", Symbol: "BTC", Price: 100, Change: -1.5}},
			{ID: "x1", Kind: domain.KindAuction, Data: domain.Auction{ID: "x1", Title: "Vintage lamp", CurrentBid: 42,
				ImageURL: "https://cdn.example.com/lamp.jpg"}},
			{ID: "s1", Kind: domain.KindAI, Data: domain.AiSuggestion{ID: "s1", Title: "Sunset", Prompt: "a sunset over hills"}},
		},
	}

	res, err := generator.GenerateRSS(snap)
	require.NoError(t, err)

	assert.Contains(t, res, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, res, `<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">`)
	assert.Contains(t, res, `<title>Feedwall</title>`)
	assert.Contains(t, res, `<link>https://example.com/</link>`)
	assert.Contains(t, res, `href="https://example.com/rss"`)
	assert.Contains(t, res, "generation gen-1")
	assert.Contains(t, res, composed.Format(time.RFC1123Z))

	var parsed RSS
	require.NoError(t, xml.Unmarshal([]byte(res[len(xml.Header):]), &parsed))
	require.NotNil(t, parsed.Channel)
	items := parsed.Channel.Items
	require.Len(t, items, 5)

	t.Run("ad", func(t *testing.T) {
		assert.Equal(t, "Red shoes", items[0].Title)
		assert.Equal(t, "https://shop.example.com/a1", items[0].Link)
		assert.Equal(t, "ad/a1", items[0].GUID.Value)
		assert.False(t, items[0].GUID.IsPermaLink)
		assert.Equal(t, []string{"ad"}, items[0].Categories)
		require.NotNil(t, items[0].Enclosure)
		assert.Equal(t, "https://cdn.example.com/a1.png", items[0].Enclosure.URL)
		assert.Equal(t, "image/png", items[0].Enclosure.Type)
	})

	t.Run("paid ad", func(t *testing.T) {
		assert.Equal(t, "Ad p1", items[1].Title)
		assert.Equal(t, "Sponsored by Acme", items[1].Description)
		require.NotNil(t, items[1].Enclosure)
		assert.Equal(t, "image/jpeg", items[1].Enclosure.Type, "unknown extension falls back to jpeg")
	})

	t.Run("trade without image", func(t *testing.T) {
		assert.Equal(t, "BTC", items[2].Title)
		assert.Equal(t, "BTC 100.00 (-1.50%)", items[2].Description)
		assert.Equal(t, "https://example.com/#t1", items[2].Link)
		assert.Nil(t, items[2].Enclosure)
	})

	t.Run("auction", func(t *testing.T) {
		assert.Equal(t, "Vintage lamp", items[3].Title)
		assert.Equal(t, "Current bid 42.00", items[3].Description)
		require.NotNil(t, items[3].Enclosure)
		assert.Equal(t, "image/jpeg", items[3].Enclosure.Type)
	})

	t.Run("ai suggestion", func(t *testing.T) {
		assert.Equal(t, "Sunset", items[4].Title)
		assert.Equal(t, "a sunset over hills", items[4].Description)
		assert.Equal(t, []string{"ai"}, items[4].Categories)
	})
}

func TestGenerator_GenerateRSSEmpty(t *testing.T) {
	generator := NewGenerator("https://example.com")

	res, err := generator.GenerateRSS(domain.Snapshot{})
	require.NoError(t, err)
	assert.Contains(t, res, "not composed yet")
	assert.NotContains(t, res, "<item>")
}

func TestImageType(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://x.example.com/a.png", "image/png"},
		{"https://x.example.com/a.PNG?w=100", "image/png"},
		{"https://x.example.com/a.gif", "image/gif"},
		{"/images/a.jpg", "image/jpeg"},
		{"https://x.example.com/a", "image/jpeg"},
		{"https://x.example.com/a.html", "image/jpeg"},
	}
	for _, tc := range tests {
		t.Run(tc.url, func(t *testing.T) {
			assert.Equal(t, tc.want, imageType(tc.url))
		})
	}
}
