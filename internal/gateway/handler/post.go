// Package handler translates the gateway's REST surface into calls on the
// internal post services and announces post changes.
package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dkurganov/microblog/internal/api/grpc/postrpc"
	"github.com/dkurganov/microblog/internal/event"
	"github.com/dkurganov/microblog/internal/logger"
)

const postTopic = "post"

// Post proxies REST post operations to the internal RPC services. Writes go
// to the gated admin service, reads to the open reader service. Each
// successful write publishes a change event keyed by owner and post.
type Post struct {
	admin     postrpc.PostAdminClient
	reader    postrpc.PostReaderClient
	publisher event.Publisher
	logger    *logger.Logger
}

// NewPost creates the gateway post handler.
func NewPost(
	admin postrpc.PostAdminClient,
	reader postrpc.PostReaderClient,
	publisher event.Publisher,
	logger *logger.Logger,
) *Post {
	return &Post{
		admin:     admin,
		reader:    reader,
		publisher: publisher,
		logger:    logger,
	}
}

type postRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type postResponse struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// CreatePost creates a post through the gated admin service.
func (h *Post) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.admin.CreatePost(r.Context(), &postrpc.CreatePostRequest{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		h.writeRPCError(w, "create post", err)
		return
	}

	h.announce(r.Context(), resp.UserID, resp.ID, "post created")
	writeJSON(w, http.StatusCreated, toPostResponse(resp))
}

// UpdatePost updates a post through the gated admin service.
func (h *Post) UpdatePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["post_id"]

	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.admin.UpdatePost(r.Context(), &postrpc.UpdatePostRequest{
		PostID:  postID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		h.writeRPCError(w, "update post", err)
		return
	}

	h.announce(r.Context(), resp.UserID, resp.ID, "post updated")
	writeJSON(w, http.StatusOK, toPostResponse(resp))
}

// DeletePost deletes a post through the gated admin service.
func (h *Post) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["post_id"]

	resp, err := h.admin.DeletePost(r.Context(), &postrpc.DeletePostRequest{PostID: postID})
	if err != nil {
		h.writeRPCError(w, "delete post", err)
		return
	}

	h.announce(r.Context(), resp.UserID, resp.PostID, "post deleted")
	writeJSON(w, http.StatusOK, map[string]string{"message": "post deleted", "post_id": resp.PostID})
}

// GetPost fetches one post through the open reader service.
func (h *Post) GetPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["post_id"]

	resp, err := h.reader.GetPost(r.Context(), &postrpc.GetPostRequest{PostID: postID})
	if err != nil {
		h.writeRPCError(w, "get post", err)
		return
	}

	writeJSON(w, http.StatusOK, toPostResponse(resp))
}

// ListPosts fetches a page of posts through the open reader service.
func (h *Post) ListPosts(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit")
	offset := queryInt(r, "offset")

	resp, err := h.reader.ListPosts(r.Context(), &postrpc.ListPostsRequest{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		h.writeRPCError(w, "list posts", err)
		return
	}

	posts := make([]postResponse, 0, len(resp.Posts))
	for _, p := range resp.Posts {
		posts = append(posts, toPostResponse(p))
	}
	writeJSON(w, http.StatusOK, posts)
}

// announce publishes a post-change event. Publish failures are logged and
// never fail the request that already succeeded.
func (h *Post) announce(ctx context.Context, userID, postID, message string) {
	key := fmt.Sprintf("%s:%s", userID, postID)
	if err := h.publisher.Publish(ctx, postTopic, key, message); err != nil {
		h.logger.Error("failed to publish post event",
			"key", key,
			"message", message,
			"error", err.Error())
	}
}

func (h *Post) writeRPCError(w http.ResponseWriter, op string, err error) {
	st, _ := status.FromError(err)

	switch st.Code() {
	case codes.Unauthenticated:
		h.logger.Warn("rpc rejected request", "op", op, "error", err.Error())
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case codes.NotFound:
		h.logger.Warn("rpc rejected request", "op", op, "error", err.Error())
		writeError(w, http.StatusNotFound, "post not found")
	case codes.InvalidArgument:
		h.logger.Warn("rpc rejected request", "op", op, "error", err.Error())
		writeError(w, http.StatusBadRequest, st.Message())
	default:
		h.logger.Error("rpc call failed", "op", op, "error", err.Error())
		writeError(w, http.StatusBadGateway, "post service unavailable")
	}
}

func toPostResponse(p *postrpc.PostResponse) postResponse {
	return postResponse{
		ID:       p.ID,
		UserID:   p.UserID,
		Username: p.Username,
		Title:    p.Title,
		Content:  p.Content,
	}
}

func queryInt(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
