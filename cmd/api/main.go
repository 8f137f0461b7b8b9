package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"smart-focus-suggestion/config"
	_ "smart-focus-suggestion/docs" // Swagger docs
	"smart-focus-suggestion/internal/httpserver"
	"smart-focus-suggestion/pkg/llmprovider"
	"smart-focus-suggestion/pkg/log"
)

// @title       Smart Focus Suggestion API
// @description Context-aware task recommendations with an AI oracle and a deterministic fallback.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Smart Focus Suggestion...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := sql.Open("postgres", cfg.Postgres.DSN())
	if err != nil {
		logger.Error(ctx, "Failed to open postgres connection: ", err)
		return
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		logger.Error(ctx, "Failed to ping postgres: ", err)
		return
	}
	logger.Infof(ctx, "Postgres connected: %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.Database)

	// 4. LLM oracle (optional — the engine degrades to its deterministic
	// pipeline when no provider is configured)
	var llmManager *llmprovider.Manager
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Warnf(ctx, "Oracle disabled: %v", err)
	} else {
		retryDelay, _ := time.ParseDuration(cfg.LLM.RetryDelay)
		maxTotal, _ := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
		llmManager = llmprovider.NewManager(providers, &llmprovider.Config{
			FallbackEnabled: cfg.LLM.FallbackEnabled,
			RetryAttempts:   cfg.LLM.RetryAttempts,
			RetryDelay:      retryDelay,
			MaxTotalTimeout: maxTotal,
		}, logger)
		logger.Infof(ctx, "Oracle enabled with %d provider(s)", len(providers))
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		PostgresDB:  db,
		LLM:         llmManager,
		Suggestion:  cfg.Suggestion,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
