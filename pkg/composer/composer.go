package composer

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/feedwall/pkg/domain"
)

//go:generate moq -out mocks/reader.go -pkg mocks -skip-ensure -fmt goimports . Reader

// Reader fetches the five content collections
type Reader interface {
	FetchAds(ctx context.Context) ([]domain.Ad, error)
	FetchPaidAds(ctx context.Context) ([]domain.PaidAd, error)
	FetchLiveTrades(ctx context.Context) ([]domain.LiveTrade, error)
	FetchAuctions(ctx context.Context) ([]domain.Auction, error)
	FetchAiSuggestions(ctx context.Context) ([]domain.AiSuggestion, error)
}

// Composer fetches all collections and composes them into a snapshot
type Composer struct {
	reader Reader
	quotas domain.Quotas

	mu  sync.Mutex // rand.Rand is not safe for concurrent use
	rnd *rand.Rand
}

// NewComposer makes a composer with given quotas. If rnd is nil the global random source is used.
func NewComposer(reader Reader, quotas domain.Quotas, rnd *rand.Rand) *Composer {
	return &Composer{reader: reader, quotas: quotas, rnd: rnd}
}

// ComposeFeed fetches all five collections in parallel and composes a new snapshot.
// Any failed fetch fails the whole composition, nothing partial is returned.
func (c *Composer) ComposeFeed(ctx context.Context) (domain.Snapshot, error) {
	var cols domain.Collections
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		cols.Ads, err = c.reader.FetchAds(gctx)
		return err
	})
	g.Go(func() (err error) {
		cols.PaidAds, err = c.reader.FetchPaidAds(gctx)
		return err
	})
	g.Go(func() (err error) {
		cols.LiveTrades, err = c.reader.FetchLiveTrades(gctx)
		return err
	})
	g.Go(func() (err error) {
		cols.Auctions, err = c.reader.FetchAuctions(gctx)
		return err
	})
	g.Go(func() (err error) {
		cols.AiSuggestions, err = c.reader.FetchAiSuggestions(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Snapshot{}, fmt.Errorf("fetch collections: %w", err)
	}

	c.mu.Lock()
	items := Compose(cols, c.quotas, c.rnd)
	c.mu.Unlock()

	return domain.Snapshot{
		Generation: uuid.New().String(),
		ComposedAt: time.Now(),
		Items:      items,
	}, nil
}
