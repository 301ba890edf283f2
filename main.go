// main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"marketplace/cmd"
	"marketplace/internal/data/repository"
	"marketplace/internal/wire"
	"marketplace/pkg/database"
	"marketplace/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Secrets from the remote store override the environment
	if err := config.ResolveSecrets(ctx); err != nil {
		log.Fatalf("Failed to resolve secrets: %v", err)
	}
	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), config.Database.Timeout)
		defer cancel()
		if err := db.Close(closeCtx); err != nil {
			logger.Warn("Failed to close database", zap.Error(err))
		}
	}()

	indexCtx, cancel := context.WithTimeout(ctx, config.Database.Timeout)
	err = db.EnsureIndexes(indexCtx)
	cancel()
	if err != nil {
		logger.Fatal("Failed to ensure indexes", zap.Error(err))
	}

	logger.Info("Database connected successfully", zap.String("database", config.Database.Name))

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app, err := wire.Wiring(repos, config, logger)
	if err != nil {
		logger.Fatal("Failed to wire application", zap.Error(err))
	}

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
	}
}
