package layout

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedwall/pkg/domain"
)

func makeItems(n int) []domain.FeedItem {
	res := make([]domain.FeedItem, n)
	for i := range res {
		id := fmt.Sprintf("ad-%d", i)
		res[i] = domain.FeedItem{ID: id, Kind: domain.KindAd, Data: domain.Ad{ID: id}}
	}
	return res
}

func TestPacker_Pack(t *testing.T) {
	items := makeItems(3)
	metrics := []domain.ImageMetrics{{Width: 100, Height: 100}, {Width: 50, Height: 100}, {Width: 200, Height: 100}}

	t.Run("no gap", func(t *testing.T) {
		res, err := Packer{}.Pack(items, metrics, 2, 200)
		require.NoError(t, err)
		require.Len(t, res.Geometries, 3)

		assert.Equal(t, domain.TileGeometry{ID: "ad-0", Column: 0, X: 0, Y: 0, Width: 100, Height: 100}, res.Geometries[0])
		assert.Equal(t, domain.TileGeometry{ID: "ad-1", Column: 1, X: 100, Y: 0, Width: 100, Height: 200}, res.Geometries[1])
		assert.Equal(t, domain.TileGeometry{ID: "ad-2", Column: 0, X: 0, Y: 100, Width: 100, Height: 50}, res.Geometries[2])
		assert.Equal(t, []float64{150, 200}, res.Columns.ColumnHeights)
		assert.InDelta(t, 200.0, res.TotalHeight, 0.0001)
		assert.Equal(t, 2, res.Columns.ColumnCount)
		assert.InDelta(t, 100.0, res.Columns.ColumnWidth, 0.0001)
	})

	t.Run("default gap", func(t *testing.T) {
		res, err := Packer{Gap: DefaultGap}.Pack(items, metrics, 2, 200)
		require.NoError(t, err)

		assert.InDelta(t, 0.0, res.Geometries[0].Y, 0.0001)
		assert.InDelta(t, 0.0, res.Geometries[1].Y, 0.0001)
		assert.Equal(t, 0, res.Geometries[2].Column)
		assert.InDelta(t, 116.0, res.Geometries[2].Y, 0.0001)
		assert.Equal(t, []float64{182, 216}, res.Columns.ColumnHeights)
		assert.InDelta(t, 216.0, res.TotalHeight, 0.0001)
	})
}

func TestPacker_TiesGoToLowestColumn(t *testing.T) {
	items := makeItems(4)
	metrics := make([]domain.ImageMetrics, 4)
	for i := range metrics {
		metrics[i] = domain.ImageMetrics{Width: 10, Height: 10}
	}

	res, err := Packer{}.Pack(items, metrics, 3, 300)
	require.NoError(t, err)
	cols := []int{}
	for _, g := range res.Geometries {
		cols = append(cols, g.Column)
	}
	assert.Equal(t, []int{0, 1, 2, 0}, cols)
	assert.InDelta(t, 100.0, res.Geometries[3].Y, 0.0001)
}

func TestPacker_Deterministic(t *testing.T) {
	items := makeItems(20)
	metrics := make([]domain.ImageMetrics, 20)
	for i := range metrics {
		metrics[i] = domain.ImageMetrics{Width: float64(100 + i*7%13), Height: float64(80 + i*11%29)}
	}

	p := Packer{Gap: DefaultGap}
	first, err := p.Pack(items, metrics, 4, 1000)
	require.NoError(t, err)
	for range 5 {
		res, err := p.Pack(items, metrics, 4, 1000)
		require.NoError(t, err)
		assert.Equal(t, first, res)
	}

	// total height matches max of independently computed column heights
	heights := make([]float64, 4)
	for _, g := range first.Geometries {
		if end := g.Y + g.Height + DefaultGap; end > heights[g.Column] {
			heights[g.Column] = end
		}
	}
	maxH := 0.0
	for _, h := range heights {
		maxH = max(maxH, h)
	}
	assert.InDelta(t, maxH, first.TotalHeight, 0.0001)
}

func TestPacker_FallbackRatio(t *testing.T) {
	items := makeItems(2)
	metrics := []domain.ImageMetrics{domain.FallbackMetrics, {Width: 0, Height: 0}}

	res, err := Packer{}.Pack(items, metrics, 1, 100)
	require.NoError(t, err)
	assert.InDelta(t, 125.0, res.Geometries[0].Height, 0.0001)
	assert.InDelta(t, 125.0, res.Geometries[1].Height, 0.0001, "degenerate metrics use fallback ratio")
	assert.InDelta(t, 125.0, res.Geometries[1].Y, 0.0001)
}

func TestPacker_Preconditions(t *testing.T) {
	items := makeItems(2)
	metrics := []domain.ImageMetrics{{Width: 1, Height: 1}, {Width: 1, Height: 1}}

	tbl := []struct {
		name    string
		metrics []domain.ImageMetrics
		cols    int
		width   float64
	}{
		{"zero columns", metrics, 0, 100},
		{"negative columns", metrics, -1, 100},
		{"zero width", metrics, 2, 0},
		{"metrics not resolved", nil, 2, 100},
		{"partial metrics", metrics[:1], 2, 100},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Packer{Gap: DefaultGap}.Pack(items, tt.metrics, tt.cols, tt.width)
			require.ErrorIs(t, err, ErrLayoutPrecondition)
			assert.Empty(t, res.Geometries)
			assert.Zero(t, res.TotalHeight)
		})
	}

	t.Run("empty feed is valid", func(t *testing.T) {
		res, err := Packer{Gap: DefaultGap}.Pack(nil, nil, 3, 900)
		require.NoError(t, err)
		assert.Empty(t, res.Geometries)
		assert.Zero(t, res.TotalHeight)
		assert.Equal(t, []float64{0, 0, 0}, res.Columns.ColumnHeights)
	})
}
