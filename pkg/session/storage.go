// Package session is the client-side counterpart of the auth API: it keeps
// the last-issued token and decoded identity in a pluggable key-value
// store, exposes the session as observable state, and maps sessions to the
// screen group a client should show.
package session

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Storage.Get when the key has no value.
var ErrKeyNotFound = errors.New("storage key not found")

// Storage is the secure key-value boundary the store persists through.
// Implementations may be asynchronous and fallible; the store treats every
// failure as non-fatal and degrades to an unauthenticated session.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
