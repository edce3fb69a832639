package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dkurganov/microblog/internal/mocks"
	"github.com/dkurganov/microblog/internal/model"
	"github.com/dkurganov/microblog/internal/testutil"
)

func TestPostService_CreateStampsIdentity(t *testing.T) {
	t.Parallel()

	identity := model.Identity{ID: uuid.New(), Username: "alice01", Email: "alice@example.com"}

	posts := mocks.NewPostStore(t)
	posts.On("Create", mock.Anything, mock.MatchedBy(func(p model.Post) bool {
		return p.UserID == identity.ID && p.Username == identity.Username
	})).Return(model.Post{
		ID:       uuid.New(),
		UserID:   identity.ID,
		Username: identity.Username,
		Title:    "hello",
		Content:  "world",
	}, nil)

	svc := NewPostService(posts, testutil.MakeNoopLogger())

	post, err := svc.Create(context.Background(), identity, "hello", "world")
	require.NoError(t, err)
	assert.Equal(t, identity.ID, post.UserID)
	assert.Equal(t, "alice01", post.Username)
}

func TestPostService_DeleteReturnsOwner(t *testing.T) {
	t.Parallel()

	postID := uuid.New()
	ownerID := uuid.New()

	posts := mocks.NewPostStore(t)
	posts.On("Delete", mock.Anything, postID).Return(ownerID, nil)

	svc := NewPostService(posts, testutil.MakeNoopLogger())

	got, err := svc.Delete(context.Background(), postID)
	require.NoError(t, err)
	assert.Equal(t, ownerID, got)
}

func TestPostService_ListClampsPagination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults applied", limit: 0, offset: -1, wantLimit: 20, wantOffset: 0},
		{name: "oversized limit clamped", limit: 500, offset: 10, wantLimit: 20, wantOffset: 10},
		{name: "valid passthrough", limit: 50, offset: 5, wantLimit: 50, wantOffset: 5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			posts := mocks.NewPostStore(t)
			posts.On("List", mock.Anything, tt.wantLimit, tt.wantOffset).
				Return([]model.Post{}, nil)

			svc := NewPostService(posts, testutil.MakeNoopLogger())

			_, err := svc.List(context.Background(), tt.limit, tt.offset)
			assert.NoError(t, err)
		})
	}
}
