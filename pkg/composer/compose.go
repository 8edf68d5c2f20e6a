// Package composer builds feed snapshots out of the five content collections.
// Each snapshot takes at most a quota of records per kind, tags them with their kind
// and shuffles the result. Service keeps the last good snapshot and recomposes it periodically.
package composer

import (
	"fmt"
	"math/rand/v2"

	"github.com/umputun/feedwall/pkg/domain"
)

// Compose selects up to quota records of every kind (first k in source order), tags them
// and shuffles the result with Fisher-Yates. If rnd is nil the global source is used.
func Compose(c domain.Collections, q domain.Quotas, rnd *rand.Rand) []domain.FeedItem {
	items := make([]domain.FeedItem, 0, max(0, q.Ad+q.Paid+q.Trade+q.Auction+q.AI))
	seen := make(map[string]bool)

	items = take(items, seen, domain.KindAd, c.Ads, q.For(domain.KindAd))
	items = take(items, seen, domain.KindPaid, c.PaidAds, q.For(domain.KindPaid))
	items = take(items, seen, domain.KindTrade, c.LiveTrades, q.For(domain.KindTrade))
	items = take(items, seen, domain.KindAuction, c.Auctions, q.For(domain.KindAuction))
	items = take(items, seen, domain.KindAI, c.AiSuggestions, q.For(domain.KindAI))

	shuffle(items, rnd)
	return items
}

// take appends first n records tagged with kind. Ids already used by another kind
// are prefixed with the kind, and numbered if the prefixed id is taken too,
// so snapshot ids stay unique.
func take[T domain.Record](items []domain.FeedItem, seen map[string]bool, kind domain.Kind, recs []T, n int) []domain.FeedItem {
	n = max(0, min(n, len(recs)))
	for _, rec := range recs[:n] {
		id := rec.RecordID()
		if seen[id] {
			base := string(kind) + ":" + id
			id = base
			for n := 2; seen[id]; n++ {
				id = fmt.Sprintf("%s:%d", base, n)
			}
		}
		seen[id] = true
		items = append(items, domain.FeedItem{ID: id, Kind: kind, Data: rec})
	}
	return items
}

// shuffle is an in-place Fisher-Yates shuffle
func shuffle(items []domain.FeedItem, rnd *rand.Rand) {
	intN := rand.IntN
	if rnd != nil {
		intN = rnd.IntN
	}
	for i := len(items) - 1; i > 0; i-- {
		j := intN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
