package token

import (
	"strings"
	"testing"
	"time"

	"github.com/campuslink/community-service/internal/domain"
)

func TestManagerIssueAndParse(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)
	user := &domain.User{ID: 7, Email: "user@example.com", Role: domain.RoleModerator}

	tok, expiresAt, err := manager.Issue(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if !expiresAt.After(time.Now()) {
		t.Fatalf("expiry not in the future")
	}

	claims, err := manager.Parse(tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 7 || claims.Email != "user@example.com" || claims.RoleName != "moderator" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestManagerRejectsWrongSecret(t *testing.T) {
	tok, _, err := NewManager("secret-a", time.Hour).Issue(&domain.User{ID: 1, Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := NewManager("secret-b", time.Hour).Parse(tok); err == nil {
		t.Fatalf("expected parse failure with wrong secret")
	}
}

func TestManagerRejectsTamperedToken(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)
	tok, _, err := manager.Issue(&domain.User{ID: 1, Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	parts := strings.Split(tok, ".")
	tampered := parts[0] + ".eyJ1c2VySWQiOjk5OX0." + parts[2]
	if _, err := manager.Parse(tampered); err == nil {
		t.Fatalf("expected parse failure for tampered payload")
	}
}

func TestIssuedTokenDecodesUnverified(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)
	tok, _, err := manager.Issue(&domain.User{ID: 11, Email: "a@b.c", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := Decode(tok)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if claims.UserID != 11 || claims.RoleName != "admin" {
		t.Fatalf("decoded claims mismatch: %+v", claims)
	}
}
