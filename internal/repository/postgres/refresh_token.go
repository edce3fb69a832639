package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dkurganov/microblog/internal/model"
)

var _ model.RefreshTokenStore = (*RefreshTokenRepository)(nil)

type RefreshTokenRepository struct {
	db *Connection
}

func NewRefreshTokenRepository(db *Connection) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

func (r *RefreshTokenRepository) Insert(ctx context.Context, token string, ownerID uuid.UUID) error {
	const query = `
        INSERT INTO refresh_tokens (id, user_id, token, created_at)
        VALUES ($1, $2, $3, NOW())
    `

	if _, err := r.db.Exec(ctx, query, uuid.New(), ownerID, token); err != nil {
		return fmt.Errorf("failed to insert refresh token: %w", err)
	}
	return nil
}

func (r *RefreshTokenRepository) Find(ctx context.Context, token string, ownerID uuid.UUID) (uuid.UUID, error) {
	const query = `
        SELECT user_id FROM refresh_tokens
        WHERE user_id = $1 AND token = $2
        LIMIT 1
    `

	var userID uuid.UUID
	err := r.db.QueryRow(ctx, query, ownerID, token).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, model.ErrNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to find refresh token: %w", err)
	}
	return userID, nil
}
