package main

import (
	"context"
	"log"

	"github.com/tripfolio/travel-api/internal/config"
	"github.com/tripfolio/travel-api/internal/database"
	"github.com/tripfolio/travel-api/internal/repository"
	"github.com/tripfolio/travel-api/internal/seeder"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	if cfg.DB.IsMemory() {
		logger.Fatal("The seeder requires the mongo backend; set DB_TYPE=mongo")
	}

	ctx := context.Background()

	client, err := database.Connect(ctx, cfg.DB, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Warn("Failed to disconnect from database", zap.Error(err))
		}
	}()

	repos := repository.NewMongoRepositories(client.Database(cfg.DB.Name))

	if err := seeder.Run(ctx, cfg.Seeder.DataDir, repos, logger); err != nil {
		logger.Fatal("Failed to seed sample data", zap.Error(err))
	}
}
