// Package reqctx carries per-request values between REST middleware and
// handlers.
package reqctx

import (
	"context"

	"github.com/dkurganov/microblog/internal/model"
)

type ctxKey int

const (
	identityKey ctxKey = iota
	accessTokenKey
	refreshTokenKey
)

// WithIdentity attaches a verified identity to the context.
func WithIdentity(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// Identity reads the verified identity back out. The second return is false
// when no verifier ran on this request.
func Identity(ctx context.Context) (model.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(model.Identity)
	return identity, ok
}

// WithAccessToken attaches the raw access token the verifier accepted.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey, token)
}

// AccessToken reads the accepted access token back out.
func AccessToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(accessTokenKey).(string)
	return token, ok
}

// WithRefreshToken attaches the refresh token taken from the request header.
func WithRefreshToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, refreshTokenKey, token)
}

// RefreshToken reads the refresh token back out.
func RefreshToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(refreshTokenKey).(string)
	return token, ok
}
