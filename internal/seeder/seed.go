package seeder

import (
	"context"
	"fmt"

	"github.com/tripfolio/travel-api/internal/repository"
	"go.uber.org/zap"
)

// Run loads the CSV sample data set into the store. Writes are upserts,
// so seeding an already populated store is harmless.
func Run(ctx context.Context, dataDir string, repos *repository.Container, logger *zap.Logger) error {
	parser := NewParser(dataDir)

	airlines, err := parser.ParseAirlines()
	if err != nil {
		return fmt.Errorf("failed to parse airlines: %w", err)
	}
	if err := repos.Airline.BulkUpsert(ctx, airlines); err != nil {
		return fmt.Errorf("failed to insert airlines: %w", err)
	}

	airports, err := parser.ParseAirports()
	if err != nil {
		return fmt.Errorf("failed to parse airports: %w", err)
	}
	if err := repos.Airport.BulkUpsert(ctx, airports); err != nil {
		return fmt.Errorf("failed to insert airports: %w", err)
	}

	routes, err := parser.ParseRoutes()
	if err != nil {
		return fmt.Errorf("failed to parse routes: %w", err)
	}
	if err := repos.Route.BulkUpsert(ctx, routes); err != nil {
		return fmt.Errorf("failed to insert routes: %w", err)
	}

	hotels, err := parser.ParseHotels()
	if err != nil {
		return fmt.Errorf("failed to parse hotels: %w", err)
	}
	if err := repos.Hotel.BulkUpsert(ctx, hotels); err != nil {
		return fmt.Errorf("failed to insert hotels: %w", err)
	}

	logger.Info("Seeded sample data",
		zap.Int("airlines", len(airlines)),
		zap.Int("airports", len(airports)),
		zap.Int("routes", len(routes)),
		zap.Int("hotels", len(hotels)),
	)
	return nil
}
