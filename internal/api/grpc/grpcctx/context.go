// Package grpcctx carries the verified identity through a request's
// processing context between the interceptor and the handlers.
package grpcctx

import (
	"context"

	"github.com/dkurganov/microblog/internal/model"
)

type ctxKey int

const identityKey ctxKey = iota

// Manager implements model.ContextManager over context values.
type Manager struct{}

var _ model.ContextManager = (*Manager)(nil)

// NewManager creates a context manager.
func NewManager() *Manager {
	return &Manager{}
}

// SetIdentityToContext attaches the verified identity to the context.
func (m *Manager) SetIdentityToContext(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentityFromContext reads the verified identity back out. The second
// return is false when no verifier ran on this request.
func (m *Manager) GetIdentityFromContext(ctx context.Context) (model.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(model.Identity)
	return identity, ok
}
