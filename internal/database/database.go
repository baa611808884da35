package database

import (
	"context"
	"fmt"
	"time"

	"github.com/tripfolio/travel-api/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const connectTimeout = 10 * time.Second

// Connect establishes the document store connection with a bounded
// retry loop: fixed attempt count, fixed delay. The loop runs only at
// startup; request-time failures are never retried.
func Connect(ctx context.Context, cfg config.DBConfig, logger *zap.Logger) (*mongo.Client, error) {
	var lastErr error
	for attempt := 1; attempt <= cfg.ConnectAttempts; attempt++ {
		client, err := connect(ctx, cfg)
		if err == nil {
			return client, nil
		}
		lastErr = err

		if attempt < cfg.ConnectAttempts {
			logger.Warn("Database connection failed, retrying",
				zap.Int("attempt", attempt),
				zap.Int("max_attempts", cfg.ConnectAttempts),
				zap.Duration("delay", cfg.ConnectDelay),
				zap.Error(err),
			)
			time.Sleep(cfg.ConnectDelay)
		}
	}
	return nil, fmt.Errorf("failed to connect to %s after %d attempts: %w", cfg.URI(), cfg.ConnectAttempts, lastErr)
}

func connect(ctx context.Context, cfg config.DBConfig) (*mongo.Client, error) {
	clientOptions := options.Client().ApplyURI(cfg.URI())
	if cfg.Username != "" {
		clientOptions.SetAuth(options.Credential{
			Username: cfg.Username,
			Password: cfg.Password,
		})
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return client, nil
}

// Health adapts a connected client to the health-check interface
type Health struct {
	client *mongo.Client
}

// NewHealth creates a health checker over an established connection
func NewHealth(client *mongo.Client) *Health {
	return &Health{client: client}
}

// Ping verifies the store connection is still live
func (h *Health) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return h.client.Ping(ctx, nil)
}
