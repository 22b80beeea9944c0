package token

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/campuslink/community-service/internal/domain"
)

// Manager handles issuing and validating signed access tokens. Unlike Decode,
// Parse verifies the HS256 signature and is the authoritative server-side
// check for API requests.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager builds a new manager.
func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// AccessClaims describes the JWT payload issued at login.
type AccessClaims struct {
	UserID   int64  `json:"userId"`
	Email    string `json:"email"`
	RoleName string `json:"roleName"`
	jwt.RegisteredClaims
}

// Issue builds and signs an access token for the user.
func (m *Manager) Issue(user *domain.User) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(m.ttl)
	claims := &AccessClaims{
		UserID:   user.ID,
		Email:    user.Email,
		RoleName: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Parse verifies the signature and returns claims.
func (m *Manager) Parse(tokenStr string) (*AccessClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*AccessClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
