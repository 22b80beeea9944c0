package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore mirrors one client session's tokens server-side, keyed by the
// session ID issued at login. Mutations are published on a per-session
// channel so watchers in other processes observe storage changes.
type RedisStore struct {
	client    *redis.Client
	sessionID string
}

// NewRedisStore binds a store to a session ID.
func NewRedisStore(client *redis.Client, sessionID string) *RedisStore {
	return &RedisStore{client: client, sessionID: sessionID}
}

// Get returns the stored token or ErrNotFound.
func (s *RedisStore) Get(ctx context.Context, ns Namespace) (string, error) {
	token, err := s.client.Get(ctx, s.key(ns)).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("session get: %w", err)
	}
	return token, nil
}

// Set stores the token with a ttlDays expiry and publishes a change event.
func (s *RedisStore) Set(ctx context.Context, ns Namespace, token string, ttlDays int) error {
	if ttlDays <= 0 {
		ttlDays = 1
	}
	ttl := time.Duration(ttlDays) * 24 * time.Hour
	if err := s.client.Set(ctx, s.key(ns), token, ttl).Err(); err != nil {
		return fmt.Errorf("session set: %w", err)
	}
	s.publish(ctx, ns)
	return nil
}

// Remove deletes the token and publishes a change event.
func (s *RedisStore) Remove(ctx context.Context, ns Namespace) error {
	if err := s.client.Del(ctx, s.key(ns)).Err(); err != nil {
		return fmt.Errorf("session remove: %w", err)
	}
	s.publish(ctx, ns)
	return nil
}

// Watch subscribes to this session's change events. The channel closes when
// ctx is cancelled.
func (s *RedisStore) Watch(ctx context.Context) <-chan Namespace {
	pubsub := s.client.Subscribe(ctx, s.channel())
	out := make(chan Namespace, 8)

	go func() {
		defer close(out)
		defer pubsub.Close() //nolint:errcheck
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-pubsub.Channel():
				if !ok {
					return
				}
				select {
				case out <- Namespace(msg.Payload):
				default:
				}
			}
		}
	}()
	return out
}

func (s *RedisStore) key(ns Namespace) string {
	return fmt.Sprintf("session:%s:%s", s.sessionID, ns.Key())
}

func (s *RedisStore) channel() string {
	return fmt.Sprintf("session:events:%s", s.sessionID)
}

func (s *RedisStore) publish(ctx context.Context, ns Namespace) {
	// best effort; a missed event is recovered by the watcher's next tick
	_ = s.client.Publish(ctx, s.channel(), string(ns)).Err()
}
