package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dkurganov/microblog/internal/model"
)

var _ model.PostStore = (*PostRepository)(nil)

type PostRepository struct {
	db *Connection
}

func NewPostRepository(db *Connection) *PostRepository {
	return &PostRepository{db: db}
}

const postColumns = "id, user_id, username, title, content, created_at, updated_at"

func (r *PostRepository) Create(ctx context.Context, post model.Post) (model.Post, error) {
	const query = `
        INSERT INTO posts (id, user_id, username, title, content, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
        RETURNING ` + postColumns

	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}

	row := r.db.QueryRow(ctx, query, post.ID, post.UserID, post.Username, post.Title, post.Content)
	created, err := scanPost(row)
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to create post: %w", err)
	}
	return created, nil
}

func (r *PostRepository) Update(ctx context.Context, post model.Post) (model.Post, error) {
	const query = `
        UPDATE posts SET title = $2, content = $3, updated_at = NOW()
        WHERE id = $1
        RETURNING ` + postColumns

	row := r.db.QueryRow(ctx, query, post.ID, post.Title, post.Content)
	updated, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Post{}, model.ErrNotFound
		}
		return model.Post{}, fmt.Errorf("failed to update post: %w", err)
	}
	return updated, nil
}

// Delete removes the post and reports its owner, so callers can announce
// the deletion on the owner's behalf.
func (r *PostRepository) Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	const query = `DELETE FROM posts WHERE id = $1 RETURNING user_id`

	var ownerID uuid.UUID
	if err := r.db.QueryRow(ctx, query, id).Scan(&ownerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, model.ErrNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to delete post: %w", err)
	}
	return ownerID, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Post, error) {
	const query = `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	row := r.db.QueryRow(ctx, query, id)
	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Post{}, model.ErrNotFound
		}
		return model.Post{}, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}

func (r *PostRepository) List(ctx context.Context, limit, offset int) ([]model.Post, error) {
	const query = `
        SELECT ` + postColumns + ` FROM posts
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2
    `

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]model.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}
	return posts, nil
}

func scanPost(row pgx.Row) (model.Post, error) {
	var p model.Post
	err := row.Scan(&p.ID, &p.UserID, &p.Username, &p.Title, &p.Content, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}
