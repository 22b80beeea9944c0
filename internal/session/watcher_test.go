package session

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/campuslink/community-service/internal/domain"
)

func awaitUpdate(t *testing.T, updates <-chan *domain.User) *domain.User {
	t.Helper()
	select {
	case user := <-updates:
		return user
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for update")
		return nil
	}
}

func TestWatcherFollowsSessionChanges(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := NewMemoryStore()
	updates := make(chan *domain.User, 8)

	fetcher := ProfileFetcherFunc(func(_ context.Context, tok string) (*domain.User, error) {
		if tok == "tok-alice" {
			return &domain.User{ID: 1, Name: "alice"}, nil
		}
		return &domain.User{ID: 2, Name: "bob"}, nil
	})

	w := NewWatcher(store, store.Subscribe(), time.Hour, fetcher, func(u *domain.User) {
		updates <- u
	}, nil)
	defer w.Stop()
	go w.Run(ctx)

	// Initial check on an empty store observes a signed-out session.
	if user := awaitUpdate(t, updates); user != nil {
		t.Fatalf("initial state: expected nil user, got %+v", user)
	}

	if err := store.Set(ctx, NamespaceUser, "tok-alice", 1); err != nil {
		t.Fatalf("set: %v", err)
	}
	if user := awaitUpdate(t, updates); user == nil || user.ID != 1 {
		t.Fatalf("after login: got %+v", user)
	}

	if err := store.Remove(ctx, NamespaceUser); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if user := awaitUpdate(t, updates); user != nil {
		t.Fatalf("after logout: expected nil user, got %+v", user)
	}
}

func TestWatcherIgnoresAdminNamespaceEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := NewMemoryStore()
	var fetches atomic.Int64

	fetcher := ProfileFetcherFunc(func(context.Context, string) (*domain.User, error) {
		fetches.Add(1)
		return &domain.User{ID: 1}, nil
	})

	w := NewWatcher(store, store.Subscribe(), time.Hour, fetcher, nil, nil)
	defer w.Stop()
	go w.Run(ctx)

	if err := store.Set(ctx, NamespaceAdmin, "admin-tok", 1); err != nil {
		t.Fatalf("set: %v", err)
	}

	time.Sleep(100 * time.Millisecond)
	if got := fetches.Load(); got != 0 {
		t.Fatalf("admin-slot event triggered %d fetches", got)
	}
}

func TestWatcherSkipsUnchangedToken(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Set(ctx, NamespaceUser, "tok", 1); err != nil {
		t.Fatalf("set: %v", err)
	}

	var fetches atomic.Int64
	fetcher := ProfileFetcherFunc(func(context.Context, string) (*domain.User, error) {
		fetches.Add(1)
		return &domain.User{ID: 1}, nil
	})

	w := NewWatcher(store, nil, time.Hour, fetcher, nil, nil)
	w.check(ctx)
	w.check(ctx)
	w.check(ctx)

	time.Sleep(50 * time.Millisecond)
	if got := fetches.Load(); got != 1 {
		t.Fatalf("unchanged token fetched %d times, want 1", got)
	}
}

func TestWatcherStopIsIdempotentAndSilencesUpdates(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Set(ctx, NamespaceUser, "tok", 1); err != nil {
		t.Fatalf("set: %v", err)
	}

	var delivered atomic.Int64
	w := NewWatcher(store, nil, time.Hour,
		ProfileFetcherFunc(func(context.Context, string) (*domain.User, error) {
			return &domain.User{ID: 1}, nil
		}),
		func(*domain.User) { delivered.Add(1) }, nil)

	w.Stop()
	w.Stop() // second call is a guarded no-op

	w.check(ctx)
	time.Sleep(50 * time.Millisecond)
	if got := delivered.Load(); got != 0 {
		t.Fatalf("stopped watcher delivered %d updates", got)
	}
}

func TestWatcherDropsStaleResults(t *testing.T) {
	var delivered atomic.Int64
	w := NewWatcher(NewMemoryStore(), nil, time.Hour, nil,
		func(*domain.User) { delivered.Add(1) }, nil)

	w.mu.Lock()
	w.gen = 5
	w.mu.Unlock()

	// A fetch started at an older generation must be discarded.
	w.deliver(3, &domain.User{ID: 9})
	if delivered.Load() != 0 {
		t.Fatalf("stale generation was delivered")
	}

	w.deliver(5, &domain.User{ID: 9})
	if delivered.Load() != 1 {
		t.Fatalf("current generation was not delivered")
	}
}

func TestWatcherSwallowsFetchErrors(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Set(ctx, NamespaceUser, "tok", 1); err != nil {
		t.Fatalf("set: %v", err)
	}

	var delivered atomic.Int64
	w := NewWatcher(store, nil, time.Hour,
		ProfileFetcherFunc(func(context.Context, string) (*domain.User, error) {
			return nil, errors.New("backend down")
		}),
		func(*domain.User) { delivered.Add(1) }, nil)

	w.check(ctx)
	time.Sleep(50 * time.Millisecond)
	if got := delivered.Load(); got != 0 {
		t.Fatalf("failed fetch delivered %d updates", got)
	}
}
