package middleware

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dkurganov/microblog/internal/logger"
	"github.com/dkurganov/microblog/internal/model"
)

// Authenticate gates protected methods on the cached access token. It reads
// the single cache slot, verifies the token and attaches the identity to the
// request context; the caller's own headers are never consulted. Every
// rejection looks the same to the caller so the reason for a failed
// verification never leaks.
type Authenticate struct {
	cache          model.AccessTokenCache
	codec          model.TokenCodec
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates the identity-verifying interceptor middleware.
func NewAuthenticate(
	cache model.AccessTokenCache,
	codec model.TokenCodec,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Authenticate {
	return &Authenticate{
		cache:          cache,
		codec:          codec,
		contextManager: contextManager,
		logger:         logger,
	}
}

// AuthFunc resolves the current identity from the cache slot, or rejects
// with a uniform Unauthenticated status.
func (m *Authenticate) AuthFunc(ctx context.Context) (context.Context, error) {
	token, err := m.cache.Get(ctx)
	if err != nil {
		m.logger.Warn("identity verification failed: no cached token", "error", err.Error())
		return nil, status.Error(codes.Unauthenticated, "unauthenticated")
	}

	identity, err := m.codec.VerifyAccess(token)
	if err != nil {
		m.logger.Warn("identity verification failed: cached token rejected", "error", err.Error())
		return nil, status.Error(codes.Unauthenticated, "unauthenticated")
	}

	return m.contextManager.SetIdentityToContext(ctx, identity), nil
}
