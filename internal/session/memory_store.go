package session

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store with change notifications. It backs the
// session watcher and tests; ttlDays is accepted but not enforced here since
// process lifetime bounds the entries anyway.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[Namespace]string
	subs   []chan Namespace
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[Namespace]string)}
}

// Get returns the stored token or ErrNotFound.
func (s *MemoryStore) Get(_ context.Context, ns Namespace) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	token, ok := s.values[ns]
	if !ok || token == "" {
		return "", ErrNotFound
	}
	return token, nil
}

// Set stores the token and notifies subscribers.
func (s *MemoryStore) Set(_ context.Context, ns Namespace, token string, _ int) error {
	s.mu.Lock()
	s.values[ns] = token
	subs := append([]chan Namespace{}, s.subs...)
	s.mu.Unlock()

	notify(subs, ns)
	return nil
}

// Remove clears the namespace and notifies subscribers.
func (s *MemoryStore) Remove(_ context.Context, ns Namespace) error {
	s.mu.Lock()
	delete(s.values, ns)
	subs := append([]chan Namespace{}, s.subs...)
	s.mu.Unlock()

	notify(subs, ns)
	return nil
}

// Subscribe returns a channel that receives the namespace of every mutation.
// Slow consumers drop notifications rather than block writers.
func (s *MemoryStore) Subscribe() <-chan Namespace {
	ch := make(chan Namespace, 8)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

func notify(subs []chan Namespace, ns Namespace) {
	for _, ch := range subs {
		select {
		case ch <- ns:
		default:
		}
	}
}
