package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dkurganov/microblog/internal/api/rest/handler"
	"github.com/dkurganov/microblog/internal/api/rest/router"
	rediscache "github.com/dkurganov/microblog/internal/cache/redis"
	"github.com/dkurganov/microblog/internal/config"
	"github.com/dkurganov/microblog/internal/event"
	"github.com/dkurganov/microblog/internal/logger"
	"github.com/dkurganov/microblog/internal/password"
	"github.com/dkurganov/microblog/internal/repository/postgres"
	"github.com/dkurganov/microblog/internal/service"
	"github.com/dkurganov/microblog/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	redisClient := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	cache := rediscache.New(redisClient)
	codec := token.NewCodec(cfg.JWT.Secret)
	hasher := password.NewArgon2()
	publisher := event.NewLogPublisher(logger)

	userRepo := postgres.NewUserRepository(db)
	refreshTokenRepo := postgres.NewRefreshTokenRepository(db)

	cacheTTL := time.Duration(cfg.Redis.TokenTTLSeconds) * time.Second
	tokenService := service.NewTokenService(userRepo, refreshTokenRepo, cache, codec, hasher, cacheTTL, logger)
	userService := service.NewUserService(userRepo, hasher, publisher, logger)

	probes := map[string]handler.Pinger{
		"postgres": db,
		"redis":    cache,
	}

	r := router.New(userService, tokenService, cache, codec, probes, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTP.Port),
		Handler: r.Register(),
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("Starting server on", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", err)
		}
	}()

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Addr)
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
