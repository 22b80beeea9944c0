package session

import "context"

// Namespace separates the member session slot from the console session slot.
// The two are independent: holding an admin token says nothing about the
// member token and vice versa.
type Namespace string

const (
	NamespaceUser  Namespace = "user"
	NamespaceAdmin Namespace = "admin"
)

// Key returns the storage key (cookie name) for the namespace.
func (n Namespace) Key() string {
	if n == NamespaceAdmin {
		return "adminAccessToken"
	}
	return "accessToken"
}

// ErrNotFound is returned by Get when no token is stored in the namespace.
var ErrNotFound = errorString("session: token not present")

type errorString string

func (e errorString) Error() string { return string(e) }

// Store persists the current session token per namespace. The ttlDays applied
// on Set is advisory storage cleanup; the token's embedded exp claim stays
// authoritative for validity.
type Store interface {
	Get(ctx context.Context, ns Namespace) (string, error)
	Set(ctx context.Context, ns Namespace, token string, ttlDays int) error
	Remove(ctx context.Context, ns Namespace) error
}
