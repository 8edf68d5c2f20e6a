package animate

import (
	"maps"
	"sync"

	"github.com/umputun/feedwall/pkg/domain"
)

// TileState is the hover state of a single tile
type TileState int

// enum of tile states
const (
	StateNeutral TileState = iota
	StateFocused
	StateDefocused
)

// Driver tracks hover-focus state of rendered tiles. The handle table maps tile id to
// its index and state and is rebuilt by Reset whenever the item list changes.
// Focus is exclusive: entering a tile clears focus of any other tile, and a leave
// for a tile that is no longer focused is ignored, so out-of-order enter/leave
// pairs from rapid pointer moves converge to the last entered tile.
type Driver struct {
	opts Options

	mu      sync.Mutex
	ids     []string
	handles map[string]int
	states  []TileState
	focused string
}

// NewDriver makes a driver with the given animation options
func NewDriver(opts Options) *Driver {
	return &Driver{opts: opts, handles: map[string]int{}}
}

// Reset rebuilds the handle table for a new list of tile ids, all tiles become neutral
func (d *Driver) Reset(ids []string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ids = append([]string(nil), ids...)
	d.handles = make(map[string]int, len(ids))
	for i, id := range ids {
		d.handles[id] = i
	}
	d.states = make([]TileState, len(ids))
	d.focused = ""
}

// Enter focuses the tile and returns tweens for every tile whose state changed.
// Unknown ids and repeated enters of the focused tile return nothing.
func (d *Driver) Enter(id string) []domain.Tween {
	d.mu.Lock()
	defer d.mu.Unlock()

	idx, ok := d.handles[id]
	if !ok || d.focused == id {
		return nil
	}

	hover := Hover(d.opts)
	changes := make([]domain.Vars, len(d.ids))
	add := func(i int, v domain.Vars) {
		if len(v) == 0 {
			return
		}
		if changes[i] == nil {
			changes[i] = domain.Vars{}
		}
		maps.Copy(changes[i], v)
	}

	if d.focused != "" {
		prev := d.handles[d.focused]
		add(prev, hover.Unfocus)
		d.states[prev] = StateNeutral
	}

	if d.states[idx] == StateDefocused {
		add(idx, hover.Refocus)
	}
	add(idx, hover.Focus)
	d.states[idx] = StateFocused

	if hover.Defocus != nil {
		for i := range d.ids {
			if i == idx || d.states[i] == StateDefocused {
				continue
			}
			add(i, hover.Defocus)
			d.states[i] = StateDefocused
		}
	}

	d.focused = id
	return d.tweens(changes)
}

// Leave returns all tiles to their packed baseline if the tile is the focused one
func (d *Driver) Leave(id string) []domain.Tween {
	d.mu.Lock()
	defer d.mu.Unlock()

	idx, ok := d.handles[id]
	if !ok || d.focused != id {
		return nil
	}

	hover := Hover(d.opts)
	changes := make([]domain.Vars, len(d.ids))
	for i := range d.ids {
		switch {
		case i == idx:
			changes[i] = merge(hover.Refocus, hover.Unfocus)
		case d.states[i] == StateDefocused:
			changes[i] = merge(hover.Refocus)
		}
		d.states[i] = StateNeutral
	}
	d.focused = ""
	return d.tweens(changes)
}

// Focused returns id of the focused tile, empty if none
func (d *Driver) Focused() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.focused
}

// state returns hover state of the tile, false for unknown ids
func (d *Driver) state(id string) (TileState, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	idx, ok := d.handles[id]
	if !ok {
		return StateNeutral, false
	}
	return d.states[idx], true
}

// tweens converts per-index changes into tweens in tile order, skipping empty changes
func (d *Driver) tweens(changes []domain.Vars) []domain.Tween {
	var res []domain.Tween
	for i, to := range changes {
		if len(to) == 0 {
			continue
		}
		res = append(res, domain.Tween{ID: d.ids[i], To: to, Duration: d.opts.HoverDuration, Ease: d.opts.HoverEase})
	}
	return res
}

// merge returns union of vars, later sets win
func merge(sets ...domain.Vars) domain.Vars {
	res := domain.Vars{}
	for _, s := range sets {
		maps.Copy(res, s)
	}
	return res
}
