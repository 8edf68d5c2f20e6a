package domain

// ImageMetrics holds natural image dimensions, or the fallback placeholder ratio
type ImageMetrics struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// FallbackMetrics is the portrait-biased placeholder used when an image fails to load
var FallbackMetrics = ImageMetrics{Width: 1, Height: 1.25}

// AspectRatio returns height/width, fallback ratio for degenerate metrics
func (m ImageMetrics) AspectRatio() float64 {
	if m.Width <= 0 || m.Height <= 0 {
		return FallbackMetrics.Height / FallbackMetrics.Width
	}
	return m.Height / m.Width
}

// ColumnLayout is the transient per-pack column state
type ColumnLayout struct {
	ColumnCount   int       `json:"column_count"`
	ColumnWidth   float64   `json:"column_width"`
	ColumnHeights []float64 `json:"column_heights"`
}

// TileGeometry is the packed position and size of a single tile
type TileGeometry struct {
	ID     string  `json:"id"`
	Column int     `json:"column"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Vars is a set of animatable tile properties, keyed by property name
// (x, y, width, height, opacity, scale, blur, saturate, zIndex)
type Vars map[string]float64

// Tween describes one animation of a tile from one state to another
type Tween struct {
	ID       string  `json:"id"`
	From     Vars    `json:"from,omitempty"`
	To       Vars    `json:"to"`
	Delay    float64 `json:"delay"`    // seconds
	Duration float64 `json:"duration"` // seconds
	Ease     string  `json:"ease"`
}

// HoverStates describes the target states of the hover-focus interaction.
// Focus/Unfocus apply to the hovered tile, Defocus/Refocus to its siblings.
// A nil state means the corresponding effect is disabled.
type HoverStates struct {
	Focus    Vars    `json:"focus,omitempty"`
	Unfocus  Vars    `json:"unfocus,omitempty"`
	Defocus  Vars    `json:"defocus,omitempty"`
	Refocus  Vars    `json:"refocus,omitempty"`
	Duration float64 `json:"duration"`
	Ease     string  `json:"ease"`
}

// Frame is a rendered layout, always paired with the snapshot generation it came from
type Frame struct {
	Generation  string         `json:"generation"`
	IsLoading   bool           `json:"is_loading"`
	Container   float64        `json:"container"`
	Columns     int            `json:"columns"`
	ColumnWidth float64        `json:"column_width"`
	TotalHeight float64        `json:"total_height"`
	Geometries  []TileGeometry `json:"geometries"`
	Entrance    []Tween        `json:"entrance,omitempty"`
	Hover       *HoverStates   `json:"hover,omitempty"`
}

// HoverUpdate is the outcome of a hover event, the focused tile (empty if none)
// and tweens for every tile whose hover state changed
type HoverUpdate struct {
	Generation string  `json:"generation"`
	Focused    string  `json:"focused"`
	Tweens     []Tween `json:"tweens"`
}
