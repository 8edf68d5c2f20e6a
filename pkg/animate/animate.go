// Package animate drives tile animations against packed geometry: staggered entrance
// tweens and the hover-focus interaction.
package animate

import (
	"fmt"

	"github.com/umputun/feedwall/pkg/domain"
)

// Direction is the side a tile enters from
type Direction string

// enum of entrance directions
const (
	FromTop    Direction = "top"
	FromBottom Direction = "bottom"
	FromLeft   Direction = "left"
	FromRight  Direction = "right"
	FromCenter Direction = "center"
)

// ParseDirection validates direction string
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case FromTop, FromBottom, FromLeft, FromRight, FromCenter:
		return Direction(s), nil
	}
	return "", fmt.Errorf("invalid animate direction %q", s)
}

// Options configure entrance and hover animations
type Options struct {
	Ease          string
	Duration      float64 // seconds
	Stagger       float64 // seconds, multiplied by tile index
	AnimateFrom   Direction
	Distance      float64 // px offset for directional entrance
	ScaleOnHover  bool
	HoverScale    float64
	BlurToFocus   bool
	HoverDuration float64
	HoverEase     string
}

// DefaultOptions returns options with default values
func DefaultOptions() Options {
	return Options{
		Ease:          "power3.out",
		Duration:      0.5,
		Stagger:       0.05,
		AnimateFrom:   FromCenter,
		Distance:      50,
		ScaleOnHover:  true,
		HoverScale:    1.05,
		BlurToFocus:   true,
		HoverDuration: 0.3,
		HoverEase:     "power2.out",
	}
}

// Entrance builds one tween per tile, from an offset or shrunk state relative to
// the final packed position to the packed position itself
func Entrance(geoms []domain.TileGeometry, opts Options) []domain.Tween {
	res := make([]domain.Tween, len(geoms))
	for i, g := range geoms {
		from := domain.Vars{"opacity": 0}
		switch opts.AnimateFrom {
		case FromBottom:
			from["y"] = g.Y + opts.Distance
		case FromTop:
			from["y"] = g.Y - opts.Distance
		case FromLeft:
			from["x"] = g.X - opts.Distance
		case FromRight:
			from["x"] = g.X + opts.Distance
		case FromCenter:
			from["scale"] = 0.5
		}
		res[i] = domain.Tween{
			ID:   g.ID,
			From: from,
			To: domain.Vars{
				"x": g.X, "y": g.Y, "width": g.Width, "height": g.Height,
				"opacity": 1, "scale": 1,
			},
			Delay:    float64(i) * opts.Stagger,
			Duration: opts.Duration,
			Ease:     opts.Ease,
		}
	}
	return res
}

// Hover returns hover target states for the given options
func Hover(opts Options) domain.HoverStates {
	res := domain.HoverStates{Duration: opts.HoverDuration, Ease: opts.HoverEase}
	if opts.ScaleOnHover {
		res.Focus = domain.Vars{"scale": opts.HoverScale, "zIndex": 10}
		res.Unfocus = domain.Vars{"scale": 1, "zIndex": 1}
	}
	if opts.BlurToFocus {
		res.Defocus = domain.Vars{"blur": 4, "saturate": 0.8, "scale": 0.98}
		res.Refocus = domain.Vars{"blur": 0, "saturate": 1, "scale": 1}
	}
	return res
}

// Move builds tweens moving already visible tiles to their new packed position, used on relayout
func Move(geoms []domain.TileGeometry, opts Options) []domain.Tween {
	res := make([]domain.Tween, len(geoms))
	for i, g := range geoms {
		res[i] = domain.Tween{
			ID:       g.ID,
			To:       domain.Vars{"x": g.X, "y": g.Y, "width": g.Width, "height": g.Height},
			Duration: opts.Duration,
			Ease:     opts.Ease,
		}
	}
	return res
}
