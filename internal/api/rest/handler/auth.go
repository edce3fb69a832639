// Package handler implements the REST handlers of the auth service.
package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dkurganov/microblog/internal/logger"
	"github.com/dkurganov/microblog/internal/model"
	"github.com/dkurganov/microblog/internal/service"
)

// UserRegistrar defines the registration operation the auth handler needs.
type UserRegistrar interface {
	Register(ctx context.Context, in service.RegisterInput) (model.Identity, error)
}

// SessionStarter defines the login operation the auth handler needs.
type SessionStarter interface {
	Login(ctx context.Context, in service.LoginInput) (service.LoginResult, error)
}

// Auth handles registration and login.
type Auth struct {
	users  UserRegistrar
	tokens SessionStarter
	logger *logger.Logger
}

// NewAuth creates the auth handler.
func NewAuth(users UserRegistrar, tokens SessionStarter, logger *logger.Logger) *Auth {
	return &Auth{users: users, tokens: tokens, logger: logger}
}

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	Identity     model.Identity `json:"identity"`
}

// Register creates a new user account.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	identity, err := h.users.Register(r.Context(), service.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Warn("registration rejected", "error", err.Error())
		mapError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, identity)
}

// Login verifies credentials and starts a session.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.tokens.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Warn("login rejected", "error", err.Error())
		mapError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, loginResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		Identity:     result.Identity,
	})
}
