package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/match-thread-service/internal/config"
	"github.com/preston-bernstein/match-thread-service/internal/logging"
	"github.com/preston-bernstein/match-thread-service/internal/server"
)

const (
	appVersion  = "dev"
	serviceName = "match-thread-service"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}
	os.Exit(run())
}

func run() int {
	envFile := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		logging.Error(logging.NewLogger(logging.Config{Service: serviceName}), "invalid configuration", err)
		return 1
	}
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: serviceName,
		Version: appVersion,
	})
	if envFile != "" {
		logging.Info(logger, "loaded env file", "path", envFile)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(cfg, logger)
	if err != nil {
		logging.Error(logger, "server setup failed", err)
		return 1
	}
	srv.Run(ctx, stop)
	return 0
}
