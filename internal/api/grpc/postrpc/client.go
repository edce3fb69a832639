package postrpc

import (
	"context"

	"google.golang.org/grpc"
)

// PostAdminClient is the client contract for the write-side service.
type PostAdminClient interface {
	CreatePost(ctx context.Context, in *CreatePostRequest, opts ...grpc.CallOption) (*PostResponse, error)
	UpdatePost(ctx context.Context, in *UpdatePostRequest, opts ...grpc.CallOption) (*PostResponse, error)
	DeletePost(ctx context.Context, in *DeletePostRequest, opts ...grpc.CallOption) (*DeletePostResponse, error)
}

// PostReaderClient is the client contract for the read-side service.
type PostReaderClient interface {
	GetPost(ctx context.Context, in *GetPostRequest, opts ...grpc.CallOption) (*PostResponse, error)
	ListPosts(ctx context.Context, in *ListPostsRequest, opts ...grpc.CallOption) (*ListPostsResponse, error)
}

type postAdminClient struct {
	cc grpc.ClientConnInterface
}

// NewPostAdminClient creates a write-side client on the given connection.
func NewPostAdminClient(cc grpc.ClientConnInterface) PostAdminClient {
	return &postAdminClient{cc: cc}
}

func (c *postAdminClient) CreatePost(ctx context.Context, in *CreatePostRequest, opts ...grpc.CallOption) (*PostResponse, error) {
	out := new(PostResponse)
	if err := c.cc.Invoke(ctx, PostAdminCreatePost, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *postAdminClient) UpdatePost(ctx context.Context, in *UpdatePostRequest, opts ...grpc.CallOption) (*PostResponse, error) {
	out := new(PostResponse)
	if err := c.cc.Invoke(ctx, PostAdminUpdatePost, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *postAdminClient) DeletePost(ctx context.Context, in *DeletePostRequest, opts ...grpc.CallOption) (*DeletePostResponse, error) {
	out := new(DeletePostResponse)
	if err := c.cc.Invoke(ctx, PostAdminDeletePost, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type postReaderClient struct {
	cc grpc.ClientConnInterface
}

// NewPostReaderClient creates a read-side client on the given connection.
func NewPostReaderClient(cc grpc.ClientConnInterface) PostReaderClient {
	return &postReaderClient{cc: cc}
}

func (c *postReaderClient) GetPost(ctx context.Context, in *GetPostRequest, opts ...grpc.CallOption) (*PostResponse, error) {
	out := new(PostResponse)
	if err := c.cc.Invoke(ctx, PostReaderGetPost, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *postReaderClient) ListPosts(ctx context.Context, in *ListPostsRequest, opts ...grpc.CallOption) (*ListPostsResponse, error) {
	out := new(ListPostsResponse)
	if err := c.cc.Invoke(ctx, PostReaderListPosts, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
