package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dkurganov/microblog/internal/api/grpc/postrpc"
	"github.com/dkurganov/microblog/internal/mocks"
	"github.com/dkurganov/microblog/internal/testutil"
)

type stubAdminClient struct {
	createResp *postrpc.PostResponse
	updateResp *postrpc.PostResponse
	deleteResp *postrpc.DeletePostResponse
	err        error
}

func (s *stubAdminClient) CreatePost(context.Context, *postrpc.CreatePostRequest, ...grpc.CallOption) (*postrpc.PostResponse, error) {
	return s.createResp, s.err
}

func (s *stubAdminClient) UpdatePost(context.Context, *postrpc.UpdatePostRequest, ...grpc.CallOption) (*postrpc.PostResponse, error) {
	return s.updateResp, s.err
}

func (s *stubAdminClient) DeletePost(context.Context, *postrpc.DeletePostRequest, ...grpc.CallOption) (*postrpc.DeletePostResponse, error) {
	return s.deleteResp, s.err
}

type stubReaderClient struct {
	getResp  *postrpc.PostResponse
	listResp *postrpc.ListPostsResponse
	err      error
}

func (s *stubReaderClient) GetPost(context.Context, *postrpc.GetPostRequest, ...grpc.CallOption) (*postrpc.PostResponse, error) {
	return s.getResp, s.err
}

func (s *stubReaderClient) ListPosts(context.Context, *postrpc.ListPostsRequest, ...grpc.CallOption) (*postrpc.ListPostsResponse, error) {
	return s.listResp, s.err
}

func TestPost_CreatePost(t *testing.T) {
	t.Parallel()

	userID := uuid.New().String()
	postID := uuid.New().String()

	t.Run("created and announced", func(t *testing.T) {
		t.Parallel()

		admin := &stubAdminClient{createResp: &postrpc.PostResponse{
			ID:       postID,
			UserID:   userID,
			Username: "alice01",
			Title:    "hello",
			Content:  "world",
		}}
		publisher := mocks.NewPublisher(t)
		publisher.On("Publish", mock.Anything, "post", userID+":"+postID, "post created").
			Return(nil)

		h := NewPost(admin, &stubReaderClient{}, publisher, testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/post/create_post",
			strings.NewReader(`{"title":"hello","content":"world"}`))

		h.CreatePost(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp postResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "alice01", resp.Username)
	})

	t.Run("publish failure does not fail the request", func(t *testing.T) {
		t.Parallel()

		admin := &stubAdminClient{createResp: &postrpc.PostResponse{
			ID:     postID,
			UserID: userID,
		}}
		publisher := mocks.NewPublisher(t)
		publisher.On("Publish", mock.Anything, "post", userID+":"+postID, "post created").
			Return(status.Error(codes.Unavailable, "broker down"))

		h := NewPost(admin, &stubReaderClient{}, publisher, testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/post/create_post",
			strings.NewReader(`{"title":"hello","content":"world"}`))

		h.CreatePost(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("unauthenticated upstream", func(t *testing.T) {
		t.Parallel()

		admin := &stubAdminClient{err: status.Error(codes.Unauthenticated, "unauthenticated")}
		h := NewPost(admin, &stubReaderClient{}, mocks.NewPublisher(t), testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/post/create_post",
			strings.NewReader(`{"title":"hello","content":"world"}`))

		h.CreatePost(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("upstream down", func(t *testing.T) {
		t.Parallel()

		admin := &stubAdminClient{err: status.Error(codes.Unavailable, "connection refused")}
		h := NewPost(admin, &stubReaderClient{}, mocks.NewPublisher(t), testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/post/create_post",
			strings.NewReader(`{"title":"hello","content":"world"}`))

		h.CreatePost(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestPost_DeletePost(t *testing.T) {
	t.Parallel()

	userID := uuid.New().String()
	postID := uuid.New().String()

	admin := &stubAdminClient{deleteResp: &postrpc.DeletePostResponse{
		PostID: postID,
		UserID: userID,
	}}
	publisher := mocks.NewPublisher(t)
	publisher.On("Publish", mock.Anything, "post", userID+":"+postID, "post deleted").
		Return(nil)

	h := NewPost(admin, &stubReaderClient{}, publisher, testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/post/delete_post/"+postID, nil)
	req = mux.SetURLVars(req, map[string]string{"post_id": postID})

	h.DeletePost(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPost_GetPost(t *testing.T) {
	t.Parallel()

	postID := uuid.New().String()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		reader := &stubReaderClient{getResp: &postrpc.PostResponse{ID: postID, Title: "hello"}}
		h := NewPost(&stubAdminClient{}, reader, mocks.NewPublisher(t), testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/post/get_post/"+postID, nil)
		req = mux.SetURLVars(req, map[string]string{"post_id": postID})

		h.GetPost(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "hello")
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		reader := &stubReaderClient{err: status.Error(codes.NotFound, "post not found")}
		h := NewPost(&stubAdminClient{}, reader, mocks.NewPublisher(t), testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/post/get_post/"+postID, nil)
		req = mux.SetURLVars(req, map[string]string{"post_id": postID})

		h.GetPost(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestPost_ListPosts(t *testing.T) {
	t.Parallel()

	reader := &stubReaderClient{listResp: &postrpc.ListPostsResponse{
		Posts: []*postrpc.PostResponse{
			{ID: uuid.New().String(), Title: "first"},
			{ID: uuid.New().String(), Title: "second"},
		},
	}}
	h := NewPost(&stubAdminClient{}, reader, mocks.NewPublisher(t), testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/post/list_posts?limit=2&offset=0", nil)

	h.ListPosts(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var posts []postResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	assert.Len(t, posts, 2)
}
