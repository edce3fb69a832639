package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"google.golang.org/grpc/reflection"

	"github.com/dkurganov/microblog/internal/api/grpc/grpcctx"
	"github.com/dkurganov/microblog/internal/api/grpc/router"
	grpcserver "github.com/dkurganov/microblog/internal/api/grpc/server"
	rediscache "github.com/dkurganov/microblog/internal/cache/redis"
	"github.com/dkurganov/microblog/internal/config"
	"github.com/dkurganov/microblog/internal/logger"
	"github.com/dkurganov/microblog/internal/model"
	"github.com/dkurganov/microblog/internal/repository/postgres"
	"github.com/dkurganov/microblog/internal/server"
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
	ctxMgr := grpcctx.NewManager()

	postRepo := postgres.NewPostRepository(db)
	postService := service.NewPostService(postRepo, logger)

	r := router.New(postService, cache, codec, ctxMgr, logger)
	s := r.Register()
	reflection.Register(s)

	grpcServer := grpcserver.NewGRPCServer(s, fmt.Sprintf(":%s", cfg.GRPC.Port))

	var sl model.SecurityLayer
	if cfg.GRPC.EnableTLS {
		sl = server.NewTLSListener(cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(grpcServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := grpcServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", grpcServer.Address())
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
