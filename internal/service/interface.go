package service

import (
	"context"

	"github.com/tripfolio/travel-api/internal/model"
)

// ServiceInterface defines the service interface for testing
type ServiceInterface interface {
	FindAirline(ctx context.Context, id string) (*model.Airline, error)
	CreateAirline(ctx context.Context, id string, attrs map[string]any) (*model.Airline, error)
	UpdateAirline(ctx context.Context, id string, attrs map[string]any) (*model.Airline, error)
	DeleteAirline(ctx context.Context, id string) error
	ListAirlines(ctx context.Context, country string, limit, offset int64) ([]model.Airline, error)
	AirlinesFlyingTo(ctx context.Context, airportCode string, limit, offset int64) ([]model.Airline, error)

	FindAirport(ctx context.Context, id string) (*model.Airport, error)
	CreateAirport(ctx context.Context, id string, attrs map[string]any) (*model.Airport, error)
	UpdateAirport(ctx context.Context, id string, attrs map[string]any) (*model.Airport, error)
	DeleteAirport(ctx context.Context, id string) error
	DirectConnections(ctx context.Context, airportCode string, limit, offset int64) ([]string, error)

	FindRoute(ctx context.Context, id string) (*model.Route, error)
	CreateRoute(ctx context.Context, id string, attrs map[string]any) (*model.Route, error)
	UpdateRoute(ctx context.Context, id string, attrs map[string]any) (*model.Route, error)
	DeleteRoute(ctx context.Context, id string) error

	AutocompleteHotels(ctx context.Context, name string) ([]string, error)
	FilterHotels(ctx context.Context, filter model.HotelFilter, offset, limit int64) ([]model.Hotel, error)
}
