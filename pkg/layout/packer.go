package layout

import (
	"errors"

	"github.com/umputun/feedwall/pkg/domain"
)

// DefaultGap is the vertical gap added below each tile, 1rem equivalent
const DefaultGap = 16

// ErrLayoutPrecondition is returned when packing can't run against the given inputs:
// no columns, no width, or metrics not resolved for the current items.
// Callers treat it as a no-op.
var ErrLayoutPrecondition = errors.New("layout precondition not met")

// Packer places tiles into columns, always choosing the shortest column
type Packer struct {
	Gap float64
}

// Result is the output of a single pack run
type Result struct {
	Geometries  []domain.TileGeometry
	Columns     domain.ColumnLayout
	TotalHeight float64
}

// Pack computes geometry for all items in snapshot order. Pack has no state between runs,
// the same inputs always produce the same result. Ties between columns of equal height
// go to the lowest column index.
func (p Packer) Pack(items []domain.FeedItem, metrics []domain.ImageMetrics, columnCount int, containerWidth float64) (Result, error) {
	if columnCount <= 0 || containerWidth <= 0 || len(metrics) != len(items) {
		return Result{}, ErrLayoutPrecondition
	}

	columnWidth := containerWidth / float64(columnCount)
	heights := make([]float64, columnCount)
	geoms := make([]domain.TileGeometry, len(items))

	for i, item := range items {
		itemHeight := columnWidth * metrics[i].AspectRatio()
		col := shortest(heights)
		geoms[i] = domain.TileGeometry{
			ID:     item.ID,
			Column: col,
			X:      float64(col) * columnWidth,
			Y:      heights[col],
			Width:  columnWidth,
			Height: itemHeight,
		}
		heights[col] += itemHeight + p.Gap
	}

	return Result{
		Geometries:  geoms,
		Columns:     domain.ColumnLayout{ColumnCount: columnCount, ColumnWidth: columnWidth, ColumnHeights: heights},
		TotalHeight: maxOf(heights),
	}, nil
}

// shortest returns index of the first column with minimal height
func shortest(heights []float64) int {
	idx := 0
	for i := 1; i < len(heights); i++ {
		if heights[i] < heights[idx] {
			idx = i
		}
	}
	return idx
}

func maxOf(vals []float64) float64 {
	res := 0.0
	for _, v := range vals {
		if v > res {
			res = v
		}
	}
	return res
}
