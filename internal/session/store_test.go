package session

import (
	"context"
	"testing"
	"time"
)

func TestNamespaceKeys(t *testing.T) {
	if NamespaceUser.Key() != "accessToken" {
		t.Fatalf("user key: got %q", NamespaceUser.Key())
	}
	if NamespaceAdmin.Key() != "adminAccessToken" {
		t.Fatalf("admin key: got %q", NamespaceAdmin.Key())
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if _, err := store.Get(ctx, NamespaceUser); err != ErrNotFound {
		t.Fatalf("empty get: expected ErrNotFound, got %v", err)
	}

	if err := store.Set(ctx, NamespaceUser, "tok-1", 7); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := store.Get(ctx, NamespaceUser)
	if err != nil || got != "tok-1" {
		t.Fatalf("get: got %q, %v", got, err)
	}

	if err := store.Remove(ctx, NamespaceUser); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := store.Get(ctx, NamespaceUser); err != ErrNotFound {
		t.Fatalf("after remove: expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreNamespacesAreIndependent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Set(ctx, NamespaceAdmin, "admin-tok", 7); err != nil {
		t.Fatalf("set: %v", err)
	}

	if _, err := store.Get(ctx, NamespaceUser); err != ErrNotFound {
		t.Fatalf("user slot leaked: %v", err)
	}
	got, err := store.Get(ctx, NamespaceAdmin)
	if err != nil || got != "admin-tok" {
		t.Fatalf("admin slot: got %q, %v", got, err)
	}

	if err := store.Remove(ctx, NamespaceUser); err != nil {
		t.Fatalf("remove user: %v", err)
	}
	if got, _ := store.Get(ctx, NamespaceAdmin); got != "admin-tok" {
		t.Fatalf("removing user slot touched admin slot")
	}
}

func TestMemoryStoreSubscribe(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	events := store.Subscribe()

	if err := store.Set(ctx, NamespaceAdmin, "tok", 1); err != nil {
		t.Fatalf("set: %v", err)
	}

	select {
	case ns := <-events:
		if ns != NamespaceAdmin {
			t.Fatalf("notified namespace: got %q", ns)
		}
	case <-time.After(time.Second):
		t.Fatalf("no notification for Set")
	}

	if err := store.Remove(ctx, NamespaceAdmin); err != nil {
		t.Fatalf("remove: %v", err)
	}

	select {
	case ns := <-events:
		if ns != NamespaceAdmin {
			t.Fatalf("notified namespace: got %q", ns)
		}
	case <-time.After(time.Second):
		t.Fatalf("no notification for Remove")
	}
}
