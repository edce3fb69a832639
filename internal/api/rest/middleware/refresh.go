package middleware

import (
	"net/http"

	"github.com/dkurganov/microblog/internal/api/rest/reqctx"
	"github.com/dkurganov/microblog/internal/logger"
)

const refreshTokenHeader = "refresh-token"

// RefreshTokenExtractor reads the refresh-token header and threads it
// unchanged into the handler context. A missing header short-circuits with
// the same 401 the verifier uses.
type RefreshTokenExtractor struct {
	logger *logger.Logger
}

// NewRefreshTokenExtractor creates the refresh-token header middleware.
func NewRefreshTokenExtractor(logger *logger.Logger) *RefreshTokenExtractor {
	return &RefreshTokenExtractor{logger: logger}
}

// Handle wraps next behind the header extraction step.
func (m *RefreshTokenExtractor) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(refreshTokenHeader)
		if token == "" {
			m.logger.Warn("refresh token header missing")
			writeUnauthorized(w)
			return
		}

		ctx := reqctx.WithRefreshToken(r.Context(), token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
