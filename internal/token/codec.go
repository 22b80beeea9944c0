package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

var (
	// ErrDecode marks a token whose structure could not be parsed.
	ErrDecode = errors.New("malformed token")
	// ErrExpired marks a well-formed token past its exp claim.
	ErrExpired = errors.New("token expired")
)

// Claims is the canonical decoded shape of an access token payload.
// The issuing backend has historically emitted claim keys in both PascalCase
// (UserId, Email, RoleName) and camelCase (userId, email, roleName); Decode
// normalizes both into this struct so callers never branch on casing.
type Claims struct {
	UserID    int64
	Email     string
	RoleName  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Decode reads the claims out of a JWT-shaped bearer token without verifying
// its signature. This is the UX-gate read used by the route admission guard;
// it must never be the authoritative check. Verified parsing for API calls
// lives in Manager.Parse.
func Decode(tokenStr string) (*Claims, error) {
	raw := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenStr, raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	claims := &Claims{
		UserID:   intClaim(raw, "UserId", "userId"),
		Email:    stringClaim(raw, "Email", "email"),
		RoleName: stringClaim(raw, "RoleName", "roleName"),
	}
	if exp := intClaim(raw, "exp"); exp > 0 {
		claims.ExpiresAt = time.Unix(exp, 0)
	}
	if iat := intClaim(raw, "iat"); iat > 0 {
		claims.IssuedAt = time.Unix(iat, 0)
	}
	return claims, nil
}

// Validate decodes the token and checks its expiry against now. A missing or
// past exp claim yields ErrExpired; structural failures yield ErrDecode.
func Validate(tokenStr string, now time.Time) (*Claims, error) {
	claims, err := Decode(tokenStr)
	if err != nil {
		return nil, err
	}
	if !claims.ExpiresAt.After(now) {
		return nil, ErrExpired
	}
	return claims, nil
}

// IsValid reports whether the token decodes and is unexpired at now.
func IsValid(tokenStr string, now time.Time) bool {
	_, err := Validate(tokenStr, now)
	return err == nil
}

func stringClaim(raw jwt.MapClaims, keys ...string) string {
	for _, key := range keys {
		if val, ok := raw[key].(string); ok {
			return val
		}
	}
	return ""
}

func intClaim(raw jwt.MapClaims, keys ...string) int64 {
	for _, key := range keys {
		switch val := raw[key].(type) {
		case float64:
			return int64(val)
		case int64:
			return val
		case string:
			if parsed, err := strconv.ParseInt(val, 10, 64); err == nil {
				return parsed
			}
		}
	}
	return 0
}
