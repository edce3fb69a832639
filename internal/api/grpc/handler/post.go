// Package handler implements the gRPC post services over the content layer.
package handler

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dkurganov/microblog/internal/api/grpc/postrpc"
	"github.com/dkurganov/microblog/internal/logger"
	"github.com/dkurganov/microblog/internal/model"
)

// PostService defines the content operations the handlers delegate to.
type PostService interface {
	Create(ctx context.Context, identity model.Identity, title, content string) (model.Post, error)
	Update(ctx context.Context, id uuid.UUID, title, content string) (model.Post, error)
	Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (model.Post, error)
	List(ctx context.Context, limit, offset int) ([]model.Post, error)
}

// PostHandler serves both post services. Write methods read the verified
// identity that the interceptor attached to the context; a request reaching
// them without one is a wiring fault, not a caller error.
type PostHandler struct {
	service        PostService
	contextManager model.ContextManager
	logger         *logger.Logger
}

var (
	_ postrpc.PostAdminServer  = (*PostHandler)(nil)
	_ postrpc.PostReaderServer = (*PostHandler)(nil)
)

// NewPostHandler creates a handler over the given content service.
func NewPostHandler(service PostService, contextManager model.ContextManager, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		service:        service,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *PostHandler) CreatePost(ctx context.Context, req *postrpc.CreatePostRequest) (*postrpc.PostResponse, error) {
	identity, ok := h.contextManager.GetIdentityFromContext(ctx)
	if !ok {
		h.logger.Error("create post reached handler without verified identity")
		return nil, status.Error(codes.Internal, "internal error")
	}

	post, err := h.service.Create(ctx, identity, req.Title, req.Content)
	if err != nil {
		h.logger.Warn("failed to create post", "error", err.Error())
		return nil, mapError(err)
	}

	return postToResponse(post), nil
}

func (h *PostHandler) UpdatePost(ctx context.Context, req *postrpc.UpdatePostRequest) (*postrpc.PostResponse, error) {
	id, err := uuid.Parse(req.PostID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid post id")
	}

	post, err := h.service.Update(ctx, id, req.Title, req.Content)
	if err != nil {
		h.logger.Warn("failed to update post", "post_id", req.PostID, "error", err.Error())
		return nil, mapError(err)
	}

	return postToResponse(post), nil
}

func (h *PostHandler) DeletePost(ctx context.Context, req *postrpc.DeletePostRequest) (*postrpc.DeletePostResponse, error) {
	id, err := uuid.Parse(req.PostID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid post id")
	}

	ownerID, err := h.service.Delete(ctx, id)
	if err != nil {
		h.logger.Warn("failed to delete post", "post_id", req.PostID, "error", err.Error())
		return nil, mapError(err)
	}

	return &postrpc.DeletePostResponse{PostID: req.PostID, UserID: ownerID.String()}, nil
}

func (h *PostHandler) GetPost(ctx context.Context, req *postrpc.GetPostRequest) (*postrpc.PostResponse, error) {
	id, err := uuid.Parse(req.PostID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid post id")
	}

	post, err := h.service.Get(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}

	return postToResponse(post), nil
}

func (h *PostHandler) ListPosts(ctx context.Context, req *postrpc.ListPostsRequest) (*postrpc.ListPostsResponse, error) {
	posts, err := h.service.List(ctx, int(req.Limit), int(req.Offset))
	if err != nil {
		h.logger.Warn("failed to list posts", "error", err.Error())
		return nil, mapError(err)
	}

	resp := &postrpc.ListPostsResponse{Posts: make([]*postrpc.PostResponse, 0, len(posts))}
	for _, post := range posts {
		resp.Posts = append(resp.Posts, postToResponse(post))
	}
	return resp, nil
}

func postToResponse(post model.Post) *postrpc.PostResponse {
	return &postrpc.PostResponse{
		ID:       post.ID.String(),
		UserID:   post.UserID.String(),
		Username: post.Username,
		Title:    post.Title,
		Content:  post.Content,
	}
}
