package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/mcoot/numberguess/internal/api"
	"github.com/mcoot/numberguess/internal/factory"
	redisstorage "github.com/mcoot/numberguess/internal/storage/redis"
	sqlitestorage "github.com/mcoot/numberguess/internal/storage/sqlite"
)

func main() {
	// A missing .env file is fine, the environment may already be set
	envErr := godotenv.Load()

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(os.Getenv("LOG_LEVEL")),
	}))
	slog.SetDefault(logger)

	if envErr != nil && !os.IsNotExist(envErr) {
		logger.Warn("could not load .env file", slog.String("error", envErr.Error()))
	}

	// Build factory config from environment
	cfg := factory.Config{
		Logger:      logger,
		StorageType: os.Getenv("STORAGE_TYPE"),
	}

	switch cfg.StorageType {
	case factory.StorageTypeRedis:
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	case factory.StorageTypeSQLite:
		sqliteCfg := sqlitestorage.DefaultConfig()
		if path := os.Getenv("SQLITE_PATH"); path != "" {
			sqliteCfg.Path = path
		}
		cfg.SQLiteConfig = &sqliteCfg
	}

	serverConfig := api.DefaultServerConfig()
	if raw := os.Getenv("PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			logger.Error("invalid PORT", slog.String("port", raw))
			os.Exit(1)
		}
		serverConfig.Port = port
	}

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("failed to close storage", slog.String("error", err.Error()))
		}
	}()

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:        logger,
		PlayerService: app.PlayerService,
		BotService:    app.BotService,
	})

	// Create server
	server := api.NewServer(router, serverConfig, logger)

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
		slog.String("storage", storageName(cfg.StorageType)),
	)

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			return
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			return
		}
	}

	logger.Info("server stopped")
}

func parseLogLevel(raw string) slog.Level {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func storageName(storageType string) string {
	if storageType == "" {
		return factory.StorageTypeMemory
	}
	return storageType
}
