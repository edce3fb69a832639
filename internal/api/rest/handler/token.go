package handler

import (
	"context"
	"net/http"

	"github.com/dkurganov/microblog/internal/api/rest/reqctx"
	"github.com/dkurganov/microblog/internal/logger"
)

// TokenRefresher defines the refresh operation the token handler needs.
type TokenRefresher interface {
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// Token handles access token refresh.
type Token struct {
	tokens TokenRefresher
	logger *logger.Logger
}

// NewToken creates the token handler.
func NewToken(tokens TokenRefresher, logger *logger.Logger) *Token {
	return &Token{tokens: tokens, logger: logger}
}

type refreshResponse struct {
	AccessToken string `json:"access_token"`
}

// Refresh exchanges the refresh token from the request context for a new
// access token. The refresh-token middleware guarantees the token is present.
func (h *Token) Refresh(w http.ResponseWriter, r *http.Request) {
	refreshToken, ok := reqctx.RefreshToken(r.Context())
	if !ok {
		h.logger.Error("refresh reached handler without token in context")
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	access, err := h.tokens.Refresh(r.Context(), refreshToken)
	if err != nil {
		h.logger.Warn("refresh rejected", "error", err.Error())
		mapError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, refreshResponse{AccessToken: access})
}
