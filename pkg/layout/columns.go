// Package layout implements the masonry grid: column planning by viewport width
// and greedy shortest-column packing of tiles into pixel geometry.
package layout

import "github.com/umputun/feedwall/pkg/domain"

// viewport width breakpoints, inclusive lower bounds
const (
	breakpointMD = 768
	breakpointLG = 1024
	breakpointXL = 1280
)

// ColumnCount returns number of columns for the given viewport width and size preference.
// Unknown preference is treated as medium. The result is always >= 1.
func ColumnCount(viewportWidth int, pref domain.SizePreference) int {
	switch pref {
	case domain.SizeSmall:
		switch {
		case viewportWidth >= breakpointXL:
			return 5
		case viewportWidth >= breakpointLG:
			return 4
		case viewportWidth >= breakpointMD:
			return 3
		default:
			return 2
		}
	case domain.SizeLarge:
		if viewportWidth >= breakpointMD {
			return 2
		}
		return 1
	default:
		switch {
		case viewportWidth >= breakpointLG:
			return 3
		case viewportWidth >= breakpointMD:
			return 2
		default:
			return 1
		}
	}
}
