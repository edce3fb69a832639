package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Identity is the snapshot of user attributes embedded in an access token at
// issuance time. It may drift from the canonical record until reissued.
type Identity struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// User represents a stored user with credential material.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity returns the snapshot of the user carried inside access tokens.
func (u User) Identity() Identity {
	return Identity{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
}

// PasswordHasher is the opaque one-way hash capability used at login and
// registration. Verify reports a mismatch as (false, nil); errors are
// reserved for undecodable stored hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) (bool, error)
}
