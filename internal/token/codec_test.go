package token

import (
	"errors"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("irrelevant"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestDecodePascalCaseClaims(t *testing.T) {
	now := time.Now()
	tok := signedToken(t, jwt.MapClaims{
		"UserId":   float64(42),
		"Email":    "admin@example.com",
		"RoleName": "admin",
		"exp":      now.Add(time.Hour).Unix(),
		"iat":      now.Unix(),
	})

	claims, err := Decode(tok)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("user id: got %d", claims.UserID)
	}
	if claims.Email != "admin@example.com" {
		t.Fatalf("email: got %q", claims.Email)
	}
	if claims.RoleName != "admin" {
		t.Fatalf("role: got %q", claims.RoleName)
	}
	if claims.ExpiresAt.Unix() != now.Add(time.Hour).Unix() {
		t.Fatalf("exp mismatch")
	}
	if claims.IssuedAt.Unix() != now.Unix() {
		t.Fatalf("iat mismatch")
	}
}

func TestDecodeCamelCaseClaims(t *testing.T) {
	tok := signedToken(t, jwt.MapClaims{
		"userId":   "17",
		"email":    "mod@example.com",
		"roleName": "moderator",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	claims, err := Decode(tok)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if claims.UserID != 17 {
		t.Fatalf("user id from string claim: got %d", claims.UserID)
	}
	if claims.RoleName != "moderator" {
		t.Fatalf("role: got %q", claims.RoleName)
	}
}

func TestDecodePrefersPascalCaseWhenBothPresent(t *testing.T) {
	tok := signedToken(t, jwt.MapClaims{
		"UserId": float64(1),
		"userId": float64(2),
	})

	claims, err := Decode(tok)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if claims.UserID != 1 {
		t.Fatalf("expected PascalCase to win, got %d", claims.UserID)
	}
}

func TestDecodeMalformed(t *testing.T) {
	for _, tok := range []string{"", "not-a-jwt", "a.b", "x.y.z"} {
		if _, err := Decode(tok); !errors.Is(err, ErrDecode) {
			t.Fatalf("decode %q: expected ErrDecode, got %v", tok, err)
		}
	}
}

func TestValidateExpiry(t *testing.T) {
	now := time.Now()

	expired := signedToken(t, jwt.MapClaims{
		"userId": float64(5),
		"exp":    now.Add(-time.Minute).Unix(),
	})
	if _, err := Validate(expired, now); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}

	missingExp := signedToken(t, jwt.MapClaims{"userId": float64(5)})
	if _, err := Validate(missingExp, now); !errors.Is(err, ErrExpired) {
		t.Fatalf("missing exp: expected ErrExpired, got %v", err)
	}

	live := signedToken(t, jwt.MapClaims{
		"userId": float64(5),
		"exp":    now.Add(time.Minute).Unix(),
	})
	if _, err := Validate(live, now); err != nil {
		t.Fatalf("live token: %v", err)
	}
}

func TestIsValid(t *testing.T) {
	now := time.Now()
	live := signedToken(t, jwt.MapClaims{"exp": now.Add(time.Minute).Unix()})

	if !IsValid(live, now) {
		t.Fatalf("expected valid")
	}
	if IsValid(live, now.Add(2*time.Minute)) {
		t.Fatalf("expected invalid after expiry")
	}
	if IsValid("garbage", now) {
		t.Fatalf("expected invalid for garbage input")
	}
}
