package handler

import (
	"context"
	"net/http"

	"github.com/dkurganov/microblog/internal/api/rest/reqctx"
	"github.com/dkurganov/microblog/internal/logger"
	"github.com/dkurganov/microblog/internal/model"
)

// AccessVerifier defines the canonical-record verification the profile
// endpoint runs on top of the middleware's codec check.
type AccessVerifier interface {
	VerifyAccess(ctx context.Context, accessToken string) (model.Identity, error)
}

// User handles profile reads.
type User struct {
	tokens AccessVerifier
	logger *logger.Logger
}

// NewUser creates the user handler.
func NewUser(tokens AccessVerifier, logger *logger.Logger) *User {
	return &User{tokens: tokens, logger: logger}
}

// Profile returns the caller's identity after re-confirming the accepted
// token against the canonical user record.
func (h *User) Profile(w http.ResponseWriter, r *http.Request) {
	token, ok := reqctx.AccessToken(r.Context())
	if !ok {
		h.logger.Error("profile reached handler without verified token in context")
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	identity, err := h.tokens.VerifyAccess(r.Context(), token)
	if err != nil {
		h.logger.Warn("profile rejected", "error", err.Error())
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	writeJSON(w, http.StatusOK, identity)
}
