package guard

import (
	"context"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/campuslink/community-service/internal/session"
)

func mintToken(t *testing.T, role string, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"userId":   float64(1),
		"email":    "someone@example.com",
		"roleName": role,
		"exp":      expiresAt.Unix(),
		"iat":      time.Now().Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("any"))
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return tok
}

func storeWithAdminToken(t *testing.T, tok string) session.Store {
	t.Helper()
	store := session.NewMemoryStore()
	if err := store.Set(context.Background(), session.NamespaceAdmin, tok, 1); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	return store
}

func TestClassify(t *testing.T) {
	cases := []struct {
		path string
		want RouteClass
	}{
		{"/admin/login", RouteExempt},
		{"/admin/unauthorized", RouteExempt},
		{"/api/v1/posts", RouteExempt},
		{"/api", RouteExempt},
		{"/admin", RouteProtectedAdmin},
		{"/admin/users", RouteProtectedAdmin},
		{"/admin/settings", RouteProtectedAdmin},
		{"/", RoutePublic},
		{"/posts/abc", RoutePublic},
		{"/administrator", RoutePublic},
	}
	for _, tc := range cases {
		if got := Classify(tc.path); got != tc.want {
			t.Errorf("Classify(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestEvaluateAdmitsStaffRoles(t *testing.T) {
	ctx := context.Background()
	g := New()

	for _, role := range []string{"admin", "moderator"} {
		store := storeWithAdminToken(t, mintToken(t, role, time.Now().Add(time.Hour)))
		if got := g.Evaluate(ctx, "/admin/users", store); got != Proceed {
			t.Errorf("role %q: got %v, want Proceed", role, got)
		}
	}
}

func TestEvaluateRejectsMemberRole(t *testing.T) {
	store := storeWithAdminToken(t, mintToken(t, "user", time.Now().Add(time.Hour)))

	got := New().Evaluate(context.Background(), "/admin", store)
	if got != RedirectUnauthorized {
		t.Fatalf("got %v, want RedirectUnauthorized", got)
	}
}

func TestEvaluateUnknownRoleRejected(t *testing.T) {
	for _, role := range []string{"", "superuser", "ADMIN"} {
		store := storeWithAdminToken(t, mintToken(t, role, time.Now().Add(time.Hour)))
		if got := New().Evaluate(context.Background(), "/admin", store); got != RedirectUnauthorized {
			t.Errorf("role %q: got %v, want RedirectUnauthorized", role, got)
		}
	}
}

func TestEvaluateMissingToken(t *testing.T) {
	got := New().Evaluate(context.Background(), "/admin/users", session.NewMemoryStore())
	if got != RedirectLogin {
		t.Fatalf("got %v, want RedirectLogin", got)
	}
}

func TestEvaluateExpiredToken(t *testing.T) {
	store := storeWithAdminToken(t, mintToken(t, "moderator", time.Now().Add(-time.Minute)))

	got := New().Evaluate(context.Background(), "/admin/reports", store)
	if got != RedirectLogin {
		t.Fatalf("expired token: got %v, want RedirectLogin", got)
	}
}

func TestEvaluateMalformedToken(t *testing.T) {
	store := storeWithAdminToken(t, "not-a-jwt")

	got := New().Evaluate(context.Background(), "/admin", store)
	if got != RedirectLogin {
		t.Fatalf("malformed token: got %v, want RedirectLogin", got)
	}
}

func TestEvaluateExemptAndPublicPaths(t *testing.T) {
	// No token anywhere: exempt and public paths must still proceed.
	store := session.NewMemoryStore()
	g := New()
	ctx := context.Background()

	for _, path := range []string{"/admin/login", "/admin/unauthorized", "/api/v1/admin/users", "/", "/health/live"} {
		if got := g.Evaluate(ctx, path, store); got != Proceed {
			t.Errorf("path %q: got %v, want Proceed", path, got)
		}
	}
}

func TestEvaluateIgnoresMemberNamespace(t *testing.T) {
	// A valid member token must not grant console access.
	store := session.NewMemoryStore()
	if err := store.Set(context.Background(), session.NamespaceUser, mintToken(t, "admin", time.Now().Add(time.Hour)), 1); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	got := New().Evaluate(context.Background(), "/admin", store)
	if got != RedirectLogin {
		t.Fatalf("got %v, want RedirectLogin", got)
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	store := storeWithAdminToken(t, mintToken(t, "admin", time.Now().Add(time.Hour)))
	g := New()
	ctx := context.Background()

	first := g.Evaluate(ctx, "/admin/users", store)
	second := g.Evaluate(ctx, "/admin/users", store)
	if first != second {
		t.Fatalf("same inputs diverged: %v then %v", first, second)
	}
}

func TestEvaluateClockInjection(t *testing.T) {
	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tok := mintToken(t, "admin", issued.Add(time.Hour))
	store := storeWithAdminToken(t, tok)
	ctx := context.Background()

	before := NewWithClock(func() time.Time { return issued.Add(30 * time.Minute) })
	if got := before.Evaluate(ctx, "/admin", store); got != Proceed {
		t.Fatalf("before expiry: got %v, want Proceed", got)
	}

	after := NewWithClock(func() time.Time { return issued.Add(2 * time.Hour) })
	if got := after.Evaluate(ctx, "/admin", store); got != RedirectLogin {
		t.Fatalf("after expiry: got %v, want RedirectLogin", got)
	}
}

type panickingStore struct{}

func (panickingStore) Get(context.Context, session.Namespace) (string, error) {
	panic("boom")
}
func (panickingStore) Set(context.Context, session.Namespace, string, int) error { return nil }
func (panickingStore) Remove(context.Context, session.Namespace) error           { return nil }

func TestEvaluateFailsClosedOnPanic(t *testing.T) {
	got := New().Evaluate(context.Background(), "/admin", panickingStore{})
	if got != RedirectLogin {
		t.Fatalf("panic path: got %v, want RedirectLogin", got)
	}
}

func TestDecisionString(t *testing.T) {
	if Proceed.String() != "proceed" || RedirectLogin.String() != "redirect-login" || RedirectUnauthorized.String() != "redirect-unauthorized" {
		t.Fatalf("unexpected decision strings")
	}
}
