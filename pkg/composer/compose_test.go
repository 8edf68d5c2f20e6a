package composer

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedwall/pkg/domain"
)

func makeCollections(ads, paid, trades, auctions, ai int) domain.Collections {
	var c domain.Collections
	for i := range ads {
		c.Ads = append(c.Ads, domain.Ad{ID: fmt.Sprintf("ad-%d", i), ImageURL: fmt.Sprintf("/img/ad-%d.jpg", i)})
	}
	for i := range paid {
		c.PaidAds = append(c.PaidAds, domain.PaidAd{Ad: domain.Ad{ID: fmt.Sprintf("paid-%d", i)}, Sponsor: "acme"})
	}
	for i := range trades {
		c.LiveTrades = append(c.LiveTrades, domain.LiveTrade{ID: fmt.Sprintf("trade-%d", i), Symbol: "BTC"})
	}
	for i := range auctions {
		c.Auctions = append(c.Auctions, domain.Auction{ID: fmt.Sprintf("auction-%d", i), Title: "lot"})
	}
	for i := range ai {
		c.AiSuggestions = append(c.AiSuggestions, domain.AiSuggestion{ID: fmt.Sprintf("ai-%d", i), Title: "idea"})
	}
	return c
}

func countKinds(items []domain.FeedItem) map[domain.Kind]int {
	res := map[domain.Kind]int{}
	for _, it := range items {
		res[it.Kind]++
	}
	return res
}

func TestCompose_Quotas(t *testing.T) {
	tbl := []struct {
		name  string
		cols  domain.Collections
		want  map[domain.Kind]int
		total int
	}{
		{name: "full collections", cols: makeCollections(20, 5, 5, 5, 5),
			want:  map[domain.Kind]int{domain.KindAd: 12, domain.KindPaid: 2, domain.KindTrade: 3, domain.KindAuction: 2, domain.KindAI: 1},
			total: 20},
		{name: "short collections", cols: makeCollections(5, 1, 0, 2, 1),
			want:  map[domain.Kind]int{domain.KindAd: 5, domain.KindPaid: 1, domain.KindAuction: 2, domain.KindAI: 1},
			total: 9},
		{name: "all empty", cols: domain.Collections{}, want: map[domain.Kind]int{}, total: 0},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			items := Compose(tt.cols, domain.DefaultQuotas, rand.New(rand.NewPCG(1, 2)))
			require.NotNil(t, items)
			assert.Len(t, items, tt.total)
			assert.Equal(t, tt.want, countKinds(items))
		})
	}
}

func TestCompose_TakesFirstInSourceOrder(t *testing.T) {
	items := Compose(makeCollections(20, 5, 5, 5, 5), domain.DefaultQuotas, rand.New(rand.NewPCG(3, 4)))

	ids := make(map[string]bool)
	for _, it := range items {
		ids[it.ID] = true
		assert.Equal(t, it.ID, it.Data.RecordID(), "no collisions, ids kept as is")
	}
	for i := range 12 {
		assert.True(t, ids[fmt.Sprintf("ad-%d", i)])
	}
	assert.False(t, ids["ad-12"])
	assert.True(t, ids["paid-0"] && ids["paid-1"] && !ids["paid-2"])
	assert.True(t, ids["trade-2"] && !ids["trade-3"])
	assert.True(t, ids["ai-0"] && !ids["ai-1"])
}

func TestCompose_KindsMatchData(t *testing.T) {
	items := Compose(makeCollections(3, 3, 3, 3, 3), domain.DefaultQuotas, nil)
	for _, it := range items {
		switch it.Data.(type) {
		case domain.Ad:
			assert.Equal(t, domain.KindAd, it.Kind)
		case domain.PaidAd:
			assert.Equal(t, domain.KindPaid, it.Kind)
		case domain.LiveTrade:
			assert.Equal(t, domain.KindTrade, it.Kind)
		case domain.Auction:
			assert.Equal(t, domain.KindAuction, it.Kind)
		case domain.AiSuggestion:
			assert.Equal(t, domain.KindAI, it.Kind)
		default:
			t.Fatalf("unexpected record type %T", it.Data)
		}
	}
}

func TestCompose_IsPermutationOfSelection(t *testing.T) {
	cols := makeCollections(20, 5, 5, 5, 5)
	sorted := func(items []domain.FeedItem) []string {
		res := make([]string, 0, len(items))
		for _, it := range items {
			res = append(res, it.ID)
		}
		sort.Strings(res)
		return res
	}

	base := sorted(Compose(cols, domain.DefaultQuotas, rand.New(rand.NewPCG(1, 1))))
	for seed := range uint64(20) {
		got := sorted(Compose(cols, domain.DefaultQuotas, rand.New(rand.NewPCG(seed, seed+7))))
		assert.Equal(t, base, got, "seed %d", seed)
	}
}

func TestCompose_ReproducibleWithSameSeed(t *testing.T) {
	cols := makeCollections(20, 5, 5, 5, 5)
	first := Compose(cols, domain.DefaultQuotas, rand.New(rand.NewPCG(42, 24)))
	second := Compose(cols, domain.DefaultQuotas, rand.New(rand.NewPCG(42, 24)))
	assert.Equal(t, first, second)
}

func TestCompose_ShuffleIsUniform(t *testing.T) {
	// three items give six orders, each should show up close to 1/6 of the time
	cols := makeCollections(3, 0, 0, 0, 0)
	rnd := rand.New(rand.NewPCG(7, 11))
	counts := map[string]int{}
	const runs = 6000
	for range runs {
		items := Compose(cols, domain.DefaultQuotas, rnd)
		ids := make([]string, len(items))
		for i, it := range items {
			ids[i] = it.ID
		}
		counts[strings.Join(ids, ",")]++
	}
	require.Len(t, counts, 6)
	for order, n := range counts {
		assert.InDelta(t, runs/6, n, 150, "order %s", order)
	}
}

func TestCompose_CustomQuotas(t *testing.T) {
	q := domain.Quotas{Ad: 1, Paid: 0, Trade: -1, Auction: 5, AI: 2}
	items := Compose(makeCollections(3, 3, 3, 3, 3), q, nil)
	assert.Equal(t, map[domain.Kind]int{domain.KindAd: 1, domain.KindAuction: 3, domain.KindAI: 2}, countKinds(items))
}

func TestCompose_IDCollisionsAcrossKinds(t *testing.T) {
	cols := domain.Collections{
		Ads:        []domain.Ad{{ID: "1"}, {ID: "2"}},
		LiveTrades: []domain.LiveTrade{{ID: "1"}},
		Auctions:   []domain.Auction{{ID: "2"}},
	}
	items := Compose(cols, domain.DefaultQuotas, nil)
	require.Len(t, items, 4)

	ids := map[string]domain.Kind{}
	for _, it := range items {
		_, dup := ids[it.ID]
		assert.False(t, dup, "id %s is not unique", it.ID)
		ids[it.ID] = it.Kind
	}
	assert.Equal(t, domain.KindAd, ids["1"])
	assert.Equal(t, domain.KindTrade, ids["trade:1"])
	assert.Equal(t, domain.KindAuction, ids["auction:2"])
}

func TestCompose_PrefixedIDCollision(t *testing.T) {
	cols := domain.Collections{
		Ads:        []domain.Ad{{ID: "1"}, {ID: "trade:1"}},
		LiveTrades: []domain.LiveTrade{{ID: "1"}, {ID: "trade:1"}},
	}
	items := Compose(cols, domain.DefaultQuotas, nil)
	require.Len(t, items, 4)

	ids := map[string]domain.Kind{}
	for _, it := range items {
		_, dup := ids[it.ID]
		assert.False(t, dup, "id %s is not unique", it.ID)
		ids[it.ID] = it.Kind
	}
	assert.Equal(t, map[string]domain.Kind{"1": domain.KindAd, "trade:1": domain.KindAd,
		"trade:1:2": domain.KindTrade, "trade:trade:1": domain.KindTrade}, ids)
}
