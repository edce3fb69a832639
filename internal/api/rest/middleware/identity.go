// Package middleware holds the REST middleware chain: identity verification,
// refresh-token extraction and request logging.
package middleware

import (
	"net/http"

	"github.com/dkurganov/microblog/internal/api/rest/reqctx"
	"github.com/dkurganov/microblog/internal/logger"
	"github.com/dkurganov/microblog/internal/model"
)

// IdentityVerifier guards protected routes on the cached access token. It
// reads the single cache slot, verifies the token and attaches the identity
// and the accepted token to the request context; the caller's own headers
// are never consulted. Every rejection is the same 401 so the reason never
// leaks.
type IdentityVerifier struct {
	cache  model.AccessTokenCache
	codec  model.TokenCodec
	logger *logger.Logger
}

// NewIdentityVerifier creates the identity-verifying middleware.
func NewIdentityVerifier(cache model.AccessTokenCache, codec model.TokenCodec, logger *logger.Logger) *IdentityVerifier {
	return &IdentityVerifier{cache: cache, codec: codec, logger: logger}
}

// Handle wraps next behind the verification step.
func (m *IdentityVerifier) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := m.cache.Get(r.Context())
		if err != nil {
			m.logger.Warn("identity verification failed: no cached token", "error", err.Error())
			writeUnauthorized(w)
			return
		}

		identity, err := m.codec.VerifyAccess(token)
		if err != nil {
			m.logger.Warn("identity verification failed: cached token rejected", "error", err.Error())
			writeUnauthorized(w)
			return
		}

		ctx := reqctx.WithIdentity(r.Context(), identity)
		ctx = reqctx.WithAccessToken(ctx, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"unauthorized"}`))
}
