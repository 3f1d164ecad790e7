package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mcoot/puzzlesolver/internal/api"
	"github.com/mcoot/puzzlesolver/internal/config"
	"github.com/mcoot/puzzlesolver/internal/factory"
	redisstorage "github.com/mcoot/puzzlesolver/internal/storage/redis"
)

func main() {
	// Read configuration from the environment
	serverCfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: serverCfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// Build factory config
	cfg := factory.Config{
		Logger:      logger,
		StorageType: serverCfg.StorageType,
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = serverCfg.RedisURL
		redisCfg.RunTTL = serverCfg.RunTTL
		redisCfg.ResultTTL = serverCfg.ResultTTL
		cfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = app.Close() }()

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:           logger,
		SolverController: app.SolverController,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = serverCfg.Host
	serverConfig.Port = serverCfg.Port
	server := api.NewServer(router, serverConfig, logger)

	if err := server.Listen(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started",
		slog.String("addr", server.Addr()),
		slog.String("storage", serverCfg.StorageType),
	)

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
