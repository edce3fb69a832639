package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RefreshTokenRecord links an issued refresh token string to its owner.
// Records are only ever inserted and matched by exact string; there is no
// mutation or deletion path.
type RefreshTokenRecord struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Token     string
	CreatedAt time.Time
}

// RefreshTokenStore persists refresh-token provenance. A user may hold any
// number of concurrently valid records.
type RefreshTokenStore interface {
	// Insert appends a record. Duplicates are not deduplicated and not an error.
	Insert(ctx context.Context, token string, ownerID uuid.UUID) error
	// Find succeeds only when both token string and owner match exactly.
	// A missing row is ErrNotFound, meaning "unauthenticated", not a fault.
	Find(ctx context.Context, token string, ownerID uuid.UUID) (uuid.UUID, error)
}
