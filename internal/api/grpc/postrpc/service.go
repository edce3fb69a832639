package postrpc

import (
	"context"

	"google.golang.org/grpc"
)

// Full method names, shared by clients, handlers and interceptor selectors.
const (
	PostAdminCreatePost = "/microblog.PostAdmin/CreatePost"
	PostAdminUpdatePost = "/microblog.PostAdmin/UpdatePost"
	PostAdminDeletePost = "/microblog.PostAdmin/DeletePost"

	PostReaderGetPost   = "/microblog.PostReader/GetPost"
	PostReaderListPosts = "/microblog.PostReader/ListPosts"
)

// PostAdminServer is the write-side service. Every method runs behind the
// identity-verifying interceptor.
type PostAdminServer interface {
	CreatePost(ctx context.Context, req *CreatePostRequest) (*PostResponse, error)
	UpdatePost(ctx context.Context, req *UpdatePostRequest) (*PostResponse, error)
	DeletePost(ctx context.Context, req *DeletePostRequest) (*DeletePostResponse, error)
}

// PostReaderServer is the open read-side service.
type PostReaderServer interface {
	GetPost(ctx context.Context, req *GetPostRequest) (*PostResponse, error)
	ListPosts(ctx context.Context, req *ListPostsRequest) (*ListPostsResponse, error)
}

// RegisterPostAdminServer registers the write-side service implementation.
func RegisterPostAdminServer(s grpc.ServiceRegistrar, srv PostAdminServer) {
	s.RegisterService(&PostAdminServiceDesc, srv)
}

// RegisterPostReaderServer registers the read-side service implementation.
func RegisterPostReaderServer(s grpc.ServiceRegistrar, srv PostReaderServer) {
	s.RegisterService(&PostReaderServiceDesc, srv)
}

func postAdminCreatePostHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreatePostRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PostAdminServer).CreatePost(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PostAdminCreatePost}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PostAdminServer).CreatePost(ctx, req.(*CreatePostRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func postAdminUpdatePostHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdatePostRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PostAdminServer).UpdatePost(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PostAdminUpdatePost}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PostAdminServer).UpdatePost(ctx, req.(*UpdatePostRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func postAdminDeletePostHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeletePostRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PostAdminServer).DeletePost(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PostAdminDeletePost}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PostAdminServer).DeletePost(ctx, req.(*DeletePostRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func postReaderGetPostHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetPostRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PostReaderServer).GetPost(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PostReaderGetPost}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PostReaderServer).GetPost(ctx, req.(*GetPostRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func postReaderListPostsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListPostsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PostReaderServer).ListPosts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PostReaderListPosts}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PostReaderServer).ListPosts(ctx, req.(*ListPostsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PostAdminServiceDesc is the service descriptor for PostAdmin.
var PostAdminServiceDesc = grpc.ServiceDesc{
	ServiceName: "microblog.PostAdmin",
	HandlerType: (*PostAdminServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreatePost", Handler: postAdminCreatePostHandler},
		{MethodName: "UpdatePost", Handler: postAdminUpdatePostHandler},
		{MethodName: "DeletePost", Handler: postAdminDeletePostHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "internal/api/grpc/postrpc",
}

// PostReaderServiceDesc is the service descriptor for PostReader.
var PostReaderServiceDesc = grpc.ServiceDesc{
	ServiceName: "microblog.PostReader",
	HandlerType: (*PostReaderServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetPost", Handler: postReaderGetPostHandler},
		{MethodName: "ListPosts", Handler: postReaderListPostsHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "internal/api/grpc/postrpc",
}
