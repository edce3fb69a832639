package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dkurganov/microblog/internal/logger"
	"github.com/dkurganov/microblog/internal/model"
)

// PostService implements content operations. Write operations take the
// verified identity attached upstream by the RPC interceptor and stamp it
// into the row; they never re-derive it themselves.
type PostService struct {
	posts  model.PostStore
	logger *logger.Logger
}

func NewPostService(posts model.PostStore, logger *logger.Logger) *PostService {
	return &PostService{posts: posts, logger: logger}
}

func (s *PostService) Create(ctx context.Context, identity model.Identity, title, content string) (model.Post, error) {
	post, err := s.posts.Create(ctx, model.Post{
		UserID:   identity.ID,
		Username: identity.Username,
		Title:    title,
		Content:  content,
	})
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Info("post created", "post_id", post.ID, "user_id", identity.ID)
	return post, nil
}

func (s *PostService) Update(ctx context.Context, id uuid.UUID, title, content string) (model.Post, error) {
	post, err := s.posts.Update(ctx, model.Post{
		ID:      id,
		Title:   title,
		Content: content,
	})
	if err != nil {
		return model.Post{}, err
	}

	s.logger.Info("post updated", "post_id", post.ID)
	return post, nil
}

// Delete removes the post and returns its owner id for event keying.
func (s *PostService) Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	ownerID, err := s.posts.Delete(ctx, id)
	if err != nil {
		return uuid.Nil, err
	}

	s.logger.Info("post deleted", "post_id", id, "user_id", ownerID)
	return ownerID, nil
}

func (s *PostService) Get(ctx context.Context, id uuid.UUID) (model.Post, error) {
	return s.posts.GetByID(ctx, id)
}

func (s *PostService) List(ctx context.Context, limit, offset int) ([]model.Post, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.posts.List(ctx, limit, offset)
}
