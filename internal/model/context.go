package model

import "context"

// ContextManager attaches a verified identity to a request's processing
// context and reads it back in downstream handlers.
type ContextManager interface {
	SetIdentityToContext(ctx context.Context, identity Identity) context.Context
	GetIdentityFromContext(ctx context.Context) (Identity, bool)
}
