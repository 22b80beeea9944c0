package session

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CookieStore adapts one request's cookies to the Store interface. This is
// the browser-persisted storage the route admission guard reads: writes are
// visible to every later request (and tab) sharing the origin.
type CookieStore struct {
	c *fiber.Ctx
}

// NewCookieStore wraps the request context.
func NewCookieStore(c *fiber.Ctx) *CookieStore {
	return &CookieStore{c: c}
}

// Get reads the namespace cookie.
func (s *CookieStore) Get(_ context.Context, ns Namespace) (string, error) {
	token := s.c.Cookies(ns.Key())
	if token == "" {
		return "", ErrNotFound
	}
	return token, nil
}

// Set writes the namespace cookie with a ttlDays expiry.
func (s *CookieStore) Set(_ context.Context, ns Namespace, token string, ttlDays int) error {
	if ttlDays <= 0 {
		ttlDays = 1
	}
	s.c.Cookie(&fiber.Cookie{
		Name:     ns.Key(),
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(time.Duration(ttlDays) * 24 * time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}

// Remove expires the namespace cookie.
func (s *CookieStore) Remove(_ context.Context, ns Namespace) error {
	s.c.Cookie(&fiber.Cookie{
		Name:     ns.Key(),
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}
