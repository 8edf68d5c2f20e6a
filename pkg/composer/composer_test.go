package composer

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedwall/pkg/composer/mocks"
	"github.com/umputun/feedwall/pkg/domain"
)

func readerMock(cols domain.Collections) *mocks.ReaderMock {
	return &mocks.ReaderMock{
		FetchAdsFunc:           func(context.Context) ([]domain.Ad, error) { return cols.Ads, nil },
		FetchPaidAdsFunc:       func(context.Context) ([]domain.PaidAd, error) { return cols.PaidAds, nil },
		FetchLiveTradesFunc:    func(context.Context) ([]domain.LiveTrade, error) { return cols.LiveTrades, nil },
		FetchAuctionsFunc:      func(context.Context) ([]domain.Auction, error) { return cols.Auctions, nil },
		FetchAiSuggestionsFunc: func(context.Context) ([]domain.AiSuggestion, error) { return cols.AiSuggestions, nil },
	}
}

func TestComposer_ComposeFeed(t *testing.T) {
	reader := readerMock(makeCollections(20, 5, 5, 5, 5))
	c := NewComposer(reader, domain.DefaultQuotas, rand.New(rand.NewPCG(1, 2)))

	snap, err := c.ComposeFeed(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Items, 20)
	assert.False(t, snap.Empty())
	assert.False(t, snap.ComposedAt.IsZero())
	_, err = uuid.Parse(snap.Generation)
	require.NoError(t, err)

	assert.Len(t, reader.FetchAdsCalls(), 1)
	assert.Len(t, reader.FetchPaidAdsCalls(), 1)
	assert.Len(t, reader.FetchLiveTradesCalls(), 1)
	assert.Len(t, reader.FetchAuctionsCalls(), 1)
	assert.Len(t, reader.FetchAiSuggestionsCalls(), 1)

	next, err := c.ComposeFeed(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, snap.Generation, next.Generation, "every snapshot gets its own generation")
}

func TestComposer_ComposeFeedFailure(t *testing.T) {
	reader := readerMock(makeCollections(20, 5, 5, 5, 5))
	fetchErr := errors.New("auctions are down")
	reader.FetchAuctionsFunc = func(context.Context) ([]domain.Auction, error) { return nil, fetchErr }
	c := NewComposer(reader, domain.DefaultQuotas, nil)

	snap, err := c.ComposeFeed(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, fetchErr)
	assert.True(t, snap.Empty())
	assert.Nil(t, snap.Items)
}

func TestComposer_ComposeFeedEmptyCollections(t *testing.T) {
	c := NewComposer(readerMock(domain.Collections{}), domain.DefaultQuotas, nil)
	snap, err := c.ComposeFeed(context.Background())
	require.NoError(t, err)
	assert.False(t, snap.Empty())
	assert.Empty(t, snap.Items)
}
