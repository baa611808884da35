package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mongodb"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/tripfolio/travel-api/internal/api"
	"github.com/tripfolio/travel-api/internal/config"
	"github.com/tripfolio/travel-api/internal/database"
	"github.com/tripfolio/travel-api/internal/metrics"
	"github.com/tripfolio/travel-api/internal/repository"
	"github.com/tripfolio/travel-api/internal/seeder"
	"github.com/tripfolio/travel-api/internal/service"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	var (
		repos    *repository.Container
		health   api.HealthChecker
		degraded bool
	)

	if cfg.DB.IsMemory() {
		repos = repository.NewMemoryRepositories()
		health = api.HealthCheckerFunc(func(context.Context) error { return nil })
		logger.Info("Using in-memory store")
	} else {
		client, err := database.Connect(ctx, cfg.DB, logger)
		if err != nil {
			if cfg.DB.Required {
				logger.Fatal("Failed to connect to database", zap.Error(err))
			}
			// Keep serving so clients get a uniform 503 instead of
			// connection refusals
			logger.Warn("Database unreachable, serving in degraded mode", zap.Error(err))
			repos = repository.NewUnavailableRepositories()
			health = api.HealthCheckerFunc(func(context.Context) error { return repository.ErrUnavailable })
			degraded = true
		} else {
			defer func() {
				if err := client.Disconnect(context.Background()); err != nil {
					logger.Warn("Failed to disconnect from database", zap.Error(err))
				}
			}()
			logger.Info("Connected to database", zap.String("uri", cfg.DB.URI()), zap.String("name", cfg.DB.Name))

			if err := runMigrations(cfg.DB); err != nil {
				logger.Fatal("Failed to run migrations", zap.Error(err))
			}

			repos = repository.NewMongoRepositories(client.Database(cfg.DB.Name))
			health = database.NewHealth(client)
		}
	}

	if cfg.Seeder.AutoSeed && !degraded {
		count, err := repos.Airline.Count(ctx)
		if err != nil {
			logger.Warn("Failed to check if store is empty", zap.Error(err))
		} else if count == 0 {
			logger.Info("Store is empty, auto-seeding sample data...")
			if err := seeder.Run(ctx, cfg.Seeder.DataDir, repos, logger); err != nil {
				logger.Warn("Failed to auto-seed sample data", zap.Error(err))
			}
		}
	}

	svc := service.NewService(repos.Airline, repos.Airport, repos.Route, repos.Hotel)
	m := metrics.NewMetrics("travel_api")
	router := api.NewRouter(svc, health, logger, m)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

func runMigrations(cfg config.DBConfig) error {
	m, err := migrate.New("file://migrations/mongo", cfg.MigrateURL())
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
