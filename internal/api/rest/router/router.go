// Package router wires the auth service's REST routes and middleware.
package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dkurganov/microblog/internal/api/rest/handler"
	"github.com/dkurganov/microblog/internal/api/rest/middleware"
	"github.com/dkurganov/microblog/internal/logger"
	"github.com/dkurganov/microblog/internal/model"
)

// Router registers the auth service routes. Profile routes sit behind the
// identity verifier, the refresh route behind the refresh-token extractor.
type Router struct {
	userService  handler.UserRegistrar
	tokenService TokenOperations
	cache        model.AccessTokenCache
	codec        model.TokenCodec
	probes       map[string]handler.Pinger
	logger       *logger.Logger
}

// TokenOperations bundles the token service operations the REST surface uses.
type TokenOperations interface {
	handler.SessionStarter
	handler.TokenRefresher
	handler.AccessVerifier
}

// New creates a REST Router instance.
func New(
	userService handler.UserRegistrar,
	tokenService TokenOperations,
	cache model.AccessTokenCache,
	codec model.TokenCodec,
	probes map[string]handler.Pinger,
	logger *logger.Logger,
) *Router {
	return &Router{
		userService:  userService,
		tokenService: tokenService,
		cache:        cache,
		codec:        codec,
		probes:       probes,
		logger:       logger,
	}
}

// Register builds the mux router with all routes and middleware attached.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	verifier := middleware.NewIdentityVerifier(r.cache, r.codec, r.logger)
	refreshExtractor := middleware.NewRefreshTokenExtractor(r.logger)

	authHandler := handler.NewAuth(r.userService, r.tokenService, r.logger)
	tokenHandler := handler.NewToken(r.tokenService, r.logger)
	userHandler := handler.NewUser(r.tokenService, r.logger)
	healthHandler := handler.NewHealth(r.probes, r.logger)

	m := mux.NewRouter()
	m.Use(logging.Handle)

	m.HandleFunc("/api/healthcheck", healthHandler.Check).Methods(http.MethodGet)
	m.HandleFunc("/api/auth/register", authHandler.Register).Methods(http.MethodPost)
	m.HandleFunc("/api/auth/login", authHandler.Login).Methods(http.MethodPost)

	token := m.PathPrefix("/api/token").Subrouter()
	token.Use(refreshExtractor.Handle)
	token.HandleFunc("/refresh_token", tokenHandler.Refresh).Methods(http.MethodGet)

	user := m.PathPrefix("/api/user").Subrouter()
	user.Use(verifier.Handle)
	user.HandleFunc("/user_profile", userHandler.Profile).Methods(http.MethodGet)

	return m
}
