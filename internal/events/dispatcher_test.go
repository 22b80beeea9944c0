package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var got []Event
	d.Subscribe(EventPostLiked, func(_ context.Context, e Event) error {
		got = append(got, e)
		return nil
	})
	d.Subscribe(EventPostLiked, func(_ context.Context, e Event) error {
		got = append(got, e)
		return nil
	})

	event := NewEvent(EventPostLiked, 1, PostLikedPayload{PostID: 9, AuthorID: 2, PostTitle: "hello"})
	if err := d.Publish(context.Background(), event); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 deliveries, got %d", len(got))
	}
	payload, ok := got[0].Payload.(PostLikedPayload)
	if !ok || payload.PostID != 9 {
		t.Fatalf("payload mismatch: %+v", got[0].Payload)
	}
}

func TestDispatcherIgnoresOtherEventTypes(t *testing.T) {
	d := NewInMemoryDispatcher()

	called := false
	d.Subscribe(EventCommentAdded, func(context.Context, Event) error {
		called = true
		return nil
	})

	if err := d.Publish(context.Background(), NewEvent(EventPostLiked, 1, nil)); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if called {
		t.Fatalf("handler invoked for foreign event type")
	}
}

func TestDispatcherContinuesPastHandlerErrors(t *testing.T) {
	d := NewInMemoryDispatcher()

	var reached bool
	d.Subscribe(EventReportFiled, func(context.Context, Event) error {
		return errors.New("first handler fails")
	})
	d.Subscribe(EventReportFiled, func(context.Context, Event) error {
		reached = true
		return nil
	})

	if err := d.Publish(context.Background(), NewEvent(EventReportFiled, 1, nil)); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if !reached {
		t.Fatalf("second handler skipped after first failed")
	}
}

func TestDispatcherUnsubscribe(t *testing.T) {
	d := NewInMemoryDispatcher()

	var calls int
	unsubscribe := d.Subscribe(EventUserSuspended, func(context.Context, Event) error {
		calls++
		return nil
	})

	if err := d.Publish(context.Background(), NewEvent(EventUserSuspended, 1, nil)); err != nil {
		t.Fatalf("publish: %v", err)
	}
	unsubscribe()
	unsubscribe() // second call is a no-op
	if err := d.Publish(context.Background(), NewEvent(EventUserSuspended, 1, nil)); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if calls != 1 {
		t.Fatalf("handler ran %d times, want 1", calls)
	}
}

func TestNewEventStampsIDAndTime(t *testing.T) {
	a := NewEvent(EventConfigUpdated, 3, nil)
	b := NewEvent(EventConfigUpdated, 3, nil)

	if a.ID == "" || b.ID == "" || a.ID == b.ID {
		t.Fatalf("expected unique non-empty event IDs, got %q and %q", a.ID, b.ID)
	}
	if a.Timestamp.IsZero() {
		t.Fatalf("timestamp not set")
	}
	if a.ActorID != 3 {
		t.Fatalf("actor: got %d", a.ActorID)
	}
}
