package domain

import (
	"fmt"
	"time"
)

// Kind is the composition role of a feed item
type Kind string

// enum of all content kinds, in composition order
const (
	KindAd      Kind = "ad"
	KindPaid    Kind = "paid"
	KindTrade   Kind = "trade"
	KindAuction Kind = "auction"
	KindAI      Kind = "ai"
)

// Kinds lists all kinds in composition order
var Kinds = []Kind{KindAd, KindPaid, KindTrade, KindAuction, KindAI}

// FeedItem wraps a content record with its composition role
type FeedItem struct {
	ID   string `json:"id"`
	Kind Kind   `json:"kind"`
	Data Record `json:"data"`
}

// Collections holds the five fetched content collections in source order
type Collections struct {
	Ads           []Ad
	PaidAds       []PaidAd
	LiveTrades    []LiveTrade
	Auctions      []Auction
	AiSuggestions []AiSuggestion
}

// Snapshot is one immutable, fully composed version of the feed
type Snapshot struct {
	Generation string     `json:"generation"`
	ComposedAt time.Time  `json:"composed_at"`
	Items      []FeedItem `json:"items"`
}

// Empty returns true if snapshot has never been composed
func (s Snapshot) Empty() bool {
	return s.Generation == ""
}

// CountByKind returns number of items per kind
func (s Snapshot) CountByKind() map[Kind]int {
	res := make(map[Kind]int, len(Kinds))
	for _, it := range s.Items {
		res[it.Kind]++
	}
	return res
}

// Quotas defines max number of items per kind admitted into one snapshot
type Quotas struct {
	Ad      int
	Paid    int
	Trade   int
	Auction int
	AI      int
}

// DefaultQuotas is the 12/2/3/2/1 split used for a ~20 item feed
var DefaultQuotas = Quotas{Ad: 12, Paid: 2, Trade: 3, Auction: 2, AI: 1}

// For returns quota for the given kind
func (q Quotas) For(k Kind) int {
	switch k {
	case KindAd:
		return q.Ad
	case KindPaid:
		return q.Paid
	case KindTrade:
		return q.Trade
	case KindAuction:
		return q.Auction
	case KindAI:
		return q.AI
	}
	return 0
}

// SizePreference is the declared tile size preference
type SizePreference string

// enum of size preferences
const (
	SizeSmall  SizePreference = "small"
	SizeMedium SizePreference = "medium"
	SizeLarge  SizePreference = "large"
)

// ParseSizePreference validates size preference string
func ParseSizePreference(s string) (SizePreference, error) {
	switch SizePreference(s) {
	case SizeSmall, SizeMedium, SizeLarge:
		return SizePreference(s), nil
	}
	return "", fmt.Errorf("invalid size preference %q", s)
}
