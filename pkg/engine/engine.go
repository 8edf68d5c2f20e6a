// Package engine is the layout engine of the hosted view. It pairs the current snapshot with
// image metrics loaded for the same generation, repacks the masonry grid on every change and
// emits frames to subscribers. All state changes are serialized through a single event loop.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedwall/pkg/animate"
	"github.com/umputun/feedwall/pkg/domain"
	"github.com/umputun/feedwall/pkg/layout"
)

//go:generate moq -out mocks/metrics_loader.go -pkg mocks -skip-ensure -fmt goimports . MetricsLoader

// MetricsLoader loads image metrics for feed items, index-aligned and never failing
type MetricsLoader interface {
	Load(ctx context.Context, items []domain.FeedItem) []domain.ImageMetrics
}

// Params for the engine
type Params struct {
	Loader         MetricsLoader
	Packer         layout.Packer
	Animation      animate.Options
	Viewport       int     // initial viewport width
	ContainerWidth float64 // initial container width
	SizePreference domain.SizePreference
}

// Engine lays out the current snapshot. Create with New, start with Run.
type Engine struct {
	loader MetricsLoader
	packer layout.Packer
	anim   animate.Options
	driver *animate.Driver
	events chan event

	mu      sync.RWMutex // guards cur, frame and subs
	cur     current
	frame   domain.Frame
	subs    []func(domain.Frame)
	running bool

	// owned by the loop goroutine
	viewport     int
	container    float64
	maxContainer float64 // zero means the container always spans the viewport
	pref         domain.SizePreference
	loadCancel   context.CancelFunc
	entered      string // generation which already had its entrance tweens
}

// current is the snapshot together with metrics loaded for the same generation
type current struct {
	snapshot domain.Snapshot
	metrics  []domain.ImageMetrics // nil while loading
	loading  bool
}

type eventKind int

const (
	evSnapshot eventKind = iota
	evResize
	evSizePref
	evLoading
	evMetrics
)

type event struct {
	kind     eventKind
	snapshot domain.Snapshot
	width    int
	pref     domain.SizePreference
	loading  bool
	gen      string
	metrics  []domain.ImageMetrics
	done     chan result // optional, receives the layout made for the event
}

type result struct {
	frame domain.Frame
	err   error
}

// New makes an engine. Zero container width and empty size preference are allowed,
// layout is a no-op until they are set. Events sent before Run are buffered.
// Without a loader all tiles get fallback metrics.
func New(p Params) *Engine {
	container := p.ContainerWidth
	if p.Viewport > 0 && (container <= 0 || float64(p.Viewport) < container) {
		container = float64(p.Viewport)
	}
	return &Engine{
		loader:       p.Loader,
		packer:       p.Packer,
		anim:         p.Animation,
		driver:       animate.NewDriver(p.Animation),
		events:       make(chan event, 64),
		viewport:     p.Viewport,
		container:    container,
		maxContainer: p.ContainerWidth,
		pref:         p.SizePreference,
	}
}

// Run processes events until ctx is done
func (e *Engine) Run(ctx context.Context) error {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return errors.New("engine is already running")
	}
	e.running = true
	e.mu.Unlock()

	lgr.Printf("[INFO] layout engine started, viewport %d, container %.0f, size %s", e.viewport, e.container, e.pref)
	defer func() {
		if e.loadCancel != nil {
			e.loadCancel()
		}
		e.mu.Lock()
		e.running = false
		e.mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			lgr.Printf("[DEBUG] layout engine stopped")
			return ctx.Err()
		case ev := <-e.events:
			e.handle(ctx, ev)
		}
	}
}

// OnSnapshotChange schedules metrics load and relayout for a new snapshot
func (e *Engine) OnSnapshotChange(s domain.Snapshot) { e.send(event{kind: evSnapshot, snapshot: s}) }

// OnViewportResize relayouts for a new viewport width and returns the resulting frame.
// The container follows the viewport, capped by the configured container width.
// Returns layout.ErrLayoutPrecondition with a geometry-less frame if nothing can be packed yet.
// Blocks until the event loop handles the resize or ctx is done.
func (e *Engine) OnViewportResize(ctx context.Context, width int) (domain.Frame, error) {
	done := make(chan result, 1)
	select {
	case e.events <- event{kind: evResize, width: width, done: done}:
	case <-ctx.Done():
		return domain.Frame{}, ctx.Err()
	}
	select {
	case res := <-done:
		return res.frame, res.err
	case <-ctx.Done():
		return domain.Frame{}, ctx.Err()
	}
}

// OnSizePreferenceChange schedules relayout for a new size preference
func (e *Engine) OnSizePreferenceChange(p domain.SizePreference) {
	e.send(event{kind: evSizePref, pref: p})
}

// OnLoading updates the loading flag reported with frames
func (e *Engine) OnLoading(loading bool) { e.send(event{kind: evLoading, loading: loading}) }

// Subscribe registers a callback invoked by the loop goroutine with every emitted frame
func (e *Engine) Subscribe(fn func(domain.Frame)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subs = append(e.subs, fn)
}

// Frame returns the last emitted frame
func (e *Engine) Frame() domain.Frame {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.frame
}

// OnTileEnter focuses the tile and returns hover tweens for tiles whose state changed
func (e *Engine) OnTileEnter(id string) domain.HoverUpdate {
	return e.hoverUpdate(e.driver.Enter(id))
}

// OnTileLeave unfocuses the tile if it is the focused one
func (e *Engine) OnTileLeave(id string) domain.HoverUpdate {
	return e.hoverUpdate(e.driver.Leave(id))
}

func (e *Engine) hoverUpdate(tweens []domain.Tween) domain.HoverUpdate {
	if tweens == nil {
		tweens = []domain.Tween{}
	}
	return domain.HoverUpdate{Generation: e.Frame().Generation, Focused: e.driver.Focused(), Tweens: tweens}
}

// Render lays out the current snapshot and metrics for the given view. It does not change
// engine state and is safe for concurrent use. Returns layout.ErrLayoutPrecondition with
// an empty frame if metrics are not loaded yet or the view is degenerate.
func (e *Engine) Render(viewport int, container float64, pref domain.SizePreference) (domain.Frame, error) {
	e.mu.RLock()
	cur := e.cur
	e.mu.RUnlock()

	frame := domain.Frame{Generation: cur.snapshot.Generation, IsLoading: cur.loading || cur.metrics == nil}
	if cur.metrics == nil && len(cur.snapshot.Items) > 0 {
		return frame, fmt.Errorf("metrics for %s not loaded: %w", cur.snapshot.Generation, layout.ErrLayoutPrecondition)
	}
	res, err := e.packer.Pack(cur.snapshot.Items, cur.metrics, layout.ColumnCount(viewport, pref), container)
	if err != nil {
		return frame, err
	}
	e.fill(&frame, res, container)
	frame.Entrance = animate.Entrance(res.Geometries, e.anim)
	return frame, nil
}

func (e *Engine) send(ev event) {
	e.events <- ev
}

func (e *Engine) handle(ctx context.Context, ev event) {
	switch ev.kind {
	case evSnapshot:
		if ev.snapshot.Generation != "" && ev.snapshot.Generation == e.generation() {
			return // same snapshot re-delivered
		}
		e.mu.Lock()
		e.cur.snapshot = ev.snapshot
		e.cur.metrics = nil
		e.mu.Unlock()
		if e.startLoad(ctx, ev.snapshot) {
			lgr.Printf("[DEBUG] loading image metrics for %s", ev.snapshot.Generation)
			return // nothing to pack until metrics arrive
		}
		metrics := make([]domain.ImageMetrics, len(ev.snapshot.Items))
		for i := range metrics {
			metrics[i] = domain.FallbackMetrics
		}
		e.mu.Lock()
		e.cur.metrics = metrics
		e.mu.Unlock()
	case evMetrics:
		if ev.gen != e.generation() {
			lgr.Printf("[DEBUG] discard metrics for superseded generation %s", ev.gen)
			return
		}
		e.mu.Lock()
		e.cur.metrics = ev.metrics
		e.mu.Unlock()
	case evResize:
		e.viewport = ev.width
		e.container = float64(ev.width)
		if e.maxContainer > 0 && e.container > e.maxContainer {
			e.container = e.maxContainer
		}
	case evSizePref:
		e.pref = ev.pref
	case evLoading:
		e.mu.Lock()
		e.cur.loading = ev.loading
		e.frame.IsLoading = ev.loading || e.cur.metrics == nil
		frame := e.frame
		e.mu.Unlock()
		if frame.Generation != "" {
			e.emit(frame)
		}
		return
	}

	frame, err := e.relayout()
	if err != nil {
		lgr.Printf("[DEBUG] skip layout of %s: %v", frame.Generation, err)
	}
	if ev.done != nil {
		ev.done <- result{frame: frame, err: err}
	}
}

// startLoad cancels any running metrics load and starts a new one tagged with the snapshot generation.
// Returns false if there is nothing to load.
func (e *Engine) startLoad(ctx context.Context, s domain.Snapshot) bool {
	if e.loadCancel != nil {
		e.loadCancel()
		e.loadCancel = nil
	}
	if len(s.Items) == 0 || e.loader == nil {
		return false
	}
	lctx, cancel := context.WithCancel(ctx)
	e.loadCancel = cancel
	go func() {
		metrics := e.loader.Load(lctx, s.Items)
		select {
		case e.events <- event{kind: evMetrics, gen: s.Generation, metrics: metrics}:
		case <-ctx.Done():
		}
	}()
	return true
}

// relayout repacks from scratch and emits a frame. Returns a frame without geometry
// and layout.ErrLayoutPrecondition if layout preconditions do not hold, nothing is emitted.
func (e *Engine) relayout() (domain.Frame, error) {
	e.mu.RLock()
	cur := e.cur
	e.mu.RUnlock()

	frame := domain.Frame{Generation: cur.snapshot.Generation, IsLoading: cur.loading || cur.metrics == nil}
	if cur.metrics == nil {
		return frame, fmt.Errorf("metrics for %q not loaded: %w", cur.snapshot.Generation, layout.ErrLayoutPrecondition)
	}
	cols := layout.ColumnCount(e.viewport, e.pref)
	res, err := e.packer.Pack(cur.snapshot.Items, cur.metrics, cols, e.container)
	if err != nil {
		return frame, err
	}

	e.fill(&frame, res, e.container)
	if e.entered != cur.snapshot.Generation {
		// first frame of a new generation enters, later frames just move tiles
		e.entered = cur.snapshot.Generation
		ids := make([]string, len(res.Geometries))
		for i, g := range res.Geometries {
			ids[i] = g.ID
		}
		e.driver.Reset(ids)
		frame.Entrance = animate.Entrance(res.Geometries, e.anim)
	} else {
		frame.Entrance = animate.Move(res.Geometries, e.anim)
	}

	e.mu.Lock()
	e.frame = frame
	e.mu.Unlock()
	e.emit(frame)
	return frame, nil
}

func (e *Engine) fill(frame *domain.Frame, res layout.Result, container float64) {
	frame.Container = container
	frame.Columns = res.Columns.ColumnCount
	frame.ColumnWidth = res.Columns.ColumnWidth
	frame.TotalHeight = res.TotalHeight
	frame.Geometries = res.Geometries
	hover := animate.Hover(e.anim)
	frame.Hover = &hover
}

func (e *Engine) emit(frame domain.Frame) {
	e.mu.RLock()
	subs := make([]func(domain.Frame), len(e.subs))
	copy(subs, e.subs)
	e.mu.RUnlock()
	for _, fn := range subs {
		fn(frame)
	}
}

func (e *Engine) generation() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cur.snapshot.Generation
}
