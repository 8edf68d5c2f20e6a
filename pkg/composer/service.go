package composer

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedwall/pkg/domain"
)

//go:generate moq -out mocks/feed_composer.go -pkg mocks -skip-ensure -fmt goimports . FeedComposer

// DefaultInterval is the default recomposition period
const DefaultInterval = 5 * time.Minute

// FeedComposer makes a new snapshot
type FeedComposer interface {
	ComposeFeed(ctx context.Context) (domain.Snapshot, error)
}

// State is what the hosting view observes: the current snapshot and the loading flag
type State struct {
	Snapshot  domain.Snapshot
	Loading   bool
	LastError error
	UpdatedAt time.Time
}

// Service owns the current snapshot and recomposes it periodically.
// A failed composition keeps the previous snapshot.
type Service struct {
	composer FeedComposer
	interval time.Duration

	mu    sync.RWMutex
	state State
	subs  []func(State)

	refreshMu sync.Mutex // serializes compositions
	wg        sync.WaitGroup
	cancel    context.CancelFunc
}

// NewService makes a service, zero interval means DefaultInterval
func NewService(composer FeedComposer, interval time.Duration) *Service {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Service{composer: composer, interval: interval}
}

// Subscribe registers a callback invoked on every state change, in order.
// Callbacks run on the composing goroutine and should not block.
func (s *Service) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Current returns the current state
func (s *Service) Current() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Start composes the first snapshot right away and then every interval, until Stop or ctx is done
func (s *Service) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go s.worker(ctx)
	lgr.Printf("[INFO] feed composer started with interval %v", s.interval)
}

// Stop cancels the timer and waits for the running composition to finish
func (s *Service) Stop() {
	lgr.Printf("[INFO] stopping feed composer...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] feed composer stopped")
}

// RefreshNow composes a new snapshot immediately and returns the resulting state.
// The error is the composition error, state keeps the previous snapshot in this case.
func (s *Service) RefreshNow(ctx context.Context) (State, error) {
	return s.refresh(ctx)
}

func (s *Service) worker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// run immediately on start
	_, _ = s.refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _ = s.refresh(ctx)
		}
	}
}

func (s *Service) refresh(ctx context.Context) (State, error) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	s.update(func(st *State) { st.Loading = true })

	start := time.Now()
	snap, err := s.composer.ComposeFeed(ctx)
	if err != nil {
		lgr.Printf("[WARN] failed to compose feed, keeping previous snapshot: %v", err)
		return s.update(func(st *State) {
			st.Loading = false
			st.LastError = err
		}), err
	}

	counts := snap.CountByKind()
	lgr.Printf("[INFO] composed snapshot %s with %d items (ad:%d paid:%d trade:%d auction:%d ai:%d) in %v",
		snap.Generation, len(snap.Items), counts[domain.KindAd], counts[domain.KindPaid], counts[domain.KindTrade],
		counts[domain.KindAuction], counts[domain.KindAI], time.Since(start))

	return s.update(func(st *State) {
		st.Snapshot = snap
		st.Loading = false
		st.LastError = nil
		st.UpdatedAt = time.Now()
	}), nil
}

// update applies fn to the state and notifies subscribers with the new state
func (s *Service) update(fn func(st *State)) State {
	s.mu.Lock()
	fn(&s.state)
	st := s.state
	subs := make([]func(State), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub(st)
	}
	return st
}
