// Package guard implements per-request admission control for the admin
// console. It reads the admin session token without verifying its signature,
// so it is a UX gate only: the authoritative check is the signed-token
// middleware on the API routes.
package guard

import (
	"context"
	"strings"
	"time"

	"github.com/campuslink/community-service/internal/session"
	"github.com/campuslink/community-service/internal/token"
)

// Decision is the terminal outcome of one admission evaluation.
type Decision int

const (
	Proceed Decision = iota
	RedirectLogin
	RedirectUnauthorized
)

func (d Decision) String() string {
	switch d {
	case RedirectLogin:
		return "redirect-login"
	case RedirectUnauthorized:
		return "redirect-unauthorized"
	default:
		return "proceed"
	}
}

// RouteClass is the static classification of an incoming path.
type RouteClass int

const (
	RoutePublic RouteClass = iota
	RouteExempt
	RouteProtectedAdmin
)

const (
	// LoginPath and UnauthorizedPath are the redirect targets and are always
	// exempt so the redirects themselves can never loop.
	LoginPath        = "/admin/login"
	UnauthorizedPath = "/admin/unauthorized"

	adminPrefix = "/admin"
	apiPrefix   = "/api"
)

// Classify maps a path to exactly one route class. API paths are exempt from
// this guard; they authenticate independently.
func Classify(path string) RouteClass {
	switch {
	case path == LoginPath || path == UnauthorizedPath:
		return RouteExempt
	case path == apiPrefix || strings.HasPrefix(path, apiPrefix+"/"):
		return RouteExempt
	case path == adminPrefix || strings.HasPrefix(path, adminPrefix+"/"):
		return RouteProtectedAdmin
	default:
		return RoutePublic
	}
}

// Guard evaluates admission for incoming paths. Each evaluation is a pure
// function of (path, store contents, clock); nothing is retried or cached.
type Guard struct {
	now func() time.Time
}

// New builds a guard on the wall clock.
func New() *Guard {
	return &Guard{now: time.Now}
}

// NewWithClock builds a guard with an injected clock.
func NewWithClock(now func() time.Time) *Guard {
	if now == nil {
		now = time.Now
	}
	return &Guard{now: now}
}

// Evaluate runs the admission state machine for one path. It never returns
// an error: every failure mode resolves to a redirect, and an unexpected
// panic during token handling fails closed to RedirectLogin.
func (g *Guard) Evaluate(ctx context.Context, path string, store session.Store) (decision Decision) {
	defer func() {
		if r := recover(); r != nil {
			decision = RedirectLogin
		}
	}()

	if Classify(path) != RouteProtectedAdmin {
		return Proceed
	}

	bearer, err := store.Get(ctx, session.NamespaceAdmin)
	if err != nil || bearer == "" {
		return RedirectLogin
	}

	claims, err := token.Validate(bearer, g.now())
	if err != nil {
		return RedirectLogin
	}

	if !IsAdmitted(claims.RoleName) {
		return RedirectUnauthorized
	}
	return Proceed
}
