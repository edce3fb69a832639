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

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/dkurganov/microblog/internal/api/grpc/postrpc"
	"github.com/dkurganov/microblog/internal/config"
	"github.com/dkurganov/microblog/internal/event"
	"github.com/dkurganov/microblog/internal/gateway/router"
	"github.com/dkurganov/microblog/internal/logger"
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

	conn, err := grpc.NewClient(cfg.Gateway.PostGRPCAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(postrpc.CallOption()),
	)
	if err != nil {
		logger.Fatal("failed to connect to post service", "error", err)
	}
	defer conn.Close()

	adminClient := postrpc.NewPostAdminClient(conn)
	readerClient := postrpc.NewPostReaderClient(conn)
	publisher := event.NewLogPublisher(logger)

	r := router.New(adminClient, readerClient, publisher, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Gateway.Port),
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
