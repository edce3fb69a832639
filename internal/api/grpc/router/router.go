// Package router wires the gRPC post services, their handlers and the
// interceptor chain into a server.
package router

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"

	"github.com/dkurganov/microblog/internal/api/grpc/handler"
	"github.com/dkurganov/microblog/internal/api/grpc/middleware"
	"github.com/dkurganov/microblog/internal/api/grpc/postrpc"
	"github.com/dkurganov/microblog/internal/logger"
	"github.com/dkurganov/microblog/internal/model"
)

// Router registers the post services and configures their middleware.
// Write-side methods run behind the identity-verifying interceptor,
// read-side methods stay open.
type Router struct {
	postService    handler.PostService
	cache          model.AccessTokenCache
	codec          model.TokenCodec
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates a gRPC Router instance.
func New(
	postService handler.PostService,
	cache model.AccessTokenCache,
	codec model.TokenCodec,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		postService:    postService,
		cache:          cache,
		codec:          codec,
		contextManager: contextManager,
		logger:         logger,
	}
}

// authMatch selects the methods the auth interceptor runs on.
func authMatch(_ context.Context, c interceptors.CallMeta) bool {
	return strings.HasPrefix(c.FullMethod(), "/microblog.PostAdmin/")
}

// Register builds the grpc.Server with logging and authentication
// interceptors and registers both post services on it.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.cache, r.codec, r.contextManager, r.logger)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.HandleGRPC,
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(authMatch),
			),
		),
	)

	postHandler := handler.NewPostHandler(r.postService, r.contextManager, r.logger)
	postrpc.RegisterPostAdminServer(s, postHandler)
	postrpc.RegisterPostReaderServer(s, postHandler)

	return s
}
