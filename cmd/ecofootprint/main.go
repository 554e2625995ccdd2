package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ecofootprint/ecofootprint/internal/api"
	"github.com/ecofootprint/ecofootprint/internal/cache"
	"github.com/ecofootprint/ecofootprint/internal/config"
	"github.com/ecofootprint/ecofootprint/internal/fetch"
	"github.com/ecofootprint/ecofootprint/internal/history"
	"github.com/ecofootprint/ecofootprint/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.Logging.Level),
	}))
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	instanceID := uuid.NewString()
	logger.Info("starting ecofootprint service", "instance", instanceID)

	// Result cache. Redis outages degrade to bypass after startup, so a
	// failed ping here is a warning, not a fatal error.
	var store cache.Store
	var redisStore *cache.Redis
	switch cfg.Cache.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		defer client.Close()
		redisStore = cache.NewRedis(client, logger)
		store = redisStore
	case "memory":
		store = cache.NewMemory()
	default:
		store = cache.Noop{}
	}

	// Analysis history is optional; the service runs without it.
	var hist *history.Store
	if cfg.History.DatabaseURL != "" {
		hist, err = history.New(ctx, cfg.History.DatabaseURL, logger)
		if err != nil {
			logger.Error("history disabled, failed to connect to database", "error", err)
			hist = nil
		} else {
			defer hist.Close()
			if err := hist.EnsureSchema(ctx); err != nil {
				logger.Error("history disabled, failed to ensure schema", "error", err)
				hist.Close()
				hist = nil
			}
		}
	}

	fetcher := fetch.New(cfg.Fetch.Timeout, cfg.Fetch.UserAgent)
	pipe := pipeline.New(store, cfg.Cache.TTL, logger)
	analyzer := pipeline.NewAnalyzer(pipe, fetcher, hist)
	handlers := api.NewHandlers(analyzer, hist, logger)

	health := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		cacheStatus := cfg.Cache.Backend
		if redisStore != nil && !redisStore.Connected() {
			cacheStatus = "redis (bypassing)"
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":   "ok",
			"instance": instanceID,
			"cache":    cacheStatus,
			"history":  hist != nil,
		})
	}

	router := api.NewRouter(handlers, health)

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan

		logger.Info("shutting down server...")
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", "error", err)
		}
	}()

	logger.Info("server starting", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func logLevel(level string) slog.Level {
	switch level {
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
