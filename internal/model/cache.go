package model

import (
	"context"
	"time"
)

// AccessTokenCache is a single-slot, TTL-bound cache holding the current
// valid access token. The slot is keyed by a fixed constant, not per user:
// at most one access token is live system-wide at any instant, and every
// login or refresh overwrites the previous one regardless of whose it was.
// Concurrent writers race with last-writer-wins semantics; that is a
// property of the design, not a bug. Do not turn this into a per-user cache
// without revisiting the verification contract built on top of it.
type AccessTokenCache interface {
	// Set stores the token under the fixed slot with the given TTL.
	Set(ctx context.Context, token string, ttl time.Duration) error
	// Get returns the cached token, ErrNotFound when the slot is empty, or
	// ErrUnavailable when the backend cannot be reached.
	Get(ctx context.Context) (string, error)
	// Delete clears the slot. It is called speculatively before every Set,
	// so a missing key is success; callers treat failures as best-effort.
	Delete(ctx context.Context) error
}
