package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Post is a content record. UserID and Username are stamped from the
// verified identity attached by the RPC interceptor at creation time.
type Post struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Username  string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PostStore defines persistence operations for posts.
type PostStore interface {
	Create(ctx context.Context, post Post) (Post, error)
	Update(ctx context.Context, post Post) (Post, error)
	Delete(ctx context.Context, id uuid.UUID) (ownerID uuid.UUID, err error)
	GetByID(ctx context.Context, id uuid.UUID) (Post, error)
	List(ctx context.Context, limit, offset int) ([]Post, error)
}
