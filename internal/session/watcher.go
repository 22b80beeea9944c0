package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/campuslink/community-service/internal/domain"
)

// ProfileFetcher resolves the profile behind a member token.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, token string) (*domain.User, error)
}

// ProfileFetcherFunc adapts a function to ProfileFetcher.
type ProfileFetcherFunc func(ctx context.Context, token string) (*domain.User, error)

// FetchProfile implements ProfileFetcher.
func (f ProfileFetcherFunc) FetchProfile(ctx context.Context, token string) (*domain.User, error) {
	return f(ctx, token)
}

// Watcher keeps derived profile state in sync with the member session slot.
// It re-reads the store on a fixed interval and on storage-change events and
// invokes onUpdate when the observed token changes. Fetches are fire-and-
// forget: a result arriving after Stop, or after a newer token was observed,
// is dropped (latest wins).
type Watcher struct {
	store    Store
	changes  <-chan Namespace
	interval time.Duration
	fetcher  ProfileFetcher
	onUpdate func(*domain.User)
	logger   *zap.Logger

	mu      sync.Mutex
	last    string
	seen    bool
	gen     uint64
	stopped bool

	stopOnce sync.Once
	stop     chan struct{}
}

// NewWatcher wires a watcher; changes may be nil when only polling is wanted.
func NewWatcher(store Store, changes <-chan Namespace, interval time.Duration, fetcher ProfileFetcher, onUpdate func(*domain.User), logger *zap.Logger) *Watcher {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	return &Watcher{
		store:    store,
		changes:  changes,
		interval: interval,
		fetcher:  fetcher,
		onUpdate: onUpdate,
		logger:   logger,
		stop:     make(chan struct{}),
	}
}

// Run blocks until ctx is cancelled or Stop is called. It performs one
// immediate check so callers observe the initial session state.
func (w *Watcher) Run(ctx context.Context) {
	w.check(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.Stop()
			return
		case <-w.stop:
			return
		case <-ticker.C:
			w.check(ctx)
		case ns, ok := <-w.changes:
			if !ok {
				w.changes = nil
				continue
			}
			if ns == NamespaceUser {
				w.check(ctx)
			}
		}
	}
}

// Stop tears the watcher down. In-flight fetches are not cancelled; their
// results are discarded.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		w.mu.Lock()
		w.stopped = true
		w.mu.Unlock()
		close(w.stop)
	})
}

func (w *Watcher) check(ctx context.Context) {
	token, err := w.store.Get(ctx, NamespaceUser)
	if err != nil && err != ErrNotFound {
		if w.logger != nil {
			w.logger.Debug("session read failed", zap.Error(err))
		}
		return
	}

	w.mu.Lock()
	if w.stopped || (w.seen && token == w.last) {
		w.mu.Unlock()
		return
	}
	w.last = token
	w.seen = true
	w.gen++
	gen := w.gen
	w.mu.Unlock()

	if token == "" {
		w.deliver(gen, nil)
		return
	}

	go func() {
		user, err := w.fetcher.FetchProfile(ctx, token)
		if err != nil {
			if w.logger != nil {
				w.logger.Debug("profile refresh failed", zap.Error(err))
			}
			return
		}
		w.deliver(gen, user)
	}()
}

// deliver hands the result to onUpdate unless the watcher stopped or a newer
// token was observed since the fetch started.
func (w *Watcher) deliver(gen uint64, user *domain.User) {
	w.mu.Lock()
	stale := w.stopped || gen != w.gen
	w.mu.Unlock()
	if stale || w.onUpdate == nil {
		return
	}
	w.onUpdate(user)
}
