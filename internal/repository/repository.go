package repository

import (
	"context"

	"github.com/tripfolio/travel-api/internal/model"
	"go.mongodb.org/mongo-driver/mongo"
)

// AirlineRepository defines operations for airlines
type AirlineRepository interface {
	Find(ctx context.Context, id string) (*model.Airline, error)
	Insert(ctx context.Context, id string, airline *model.Airline) error
	Replace(ctx context.Context, id string, airline *model.Airline) error
	Remove(ctx context.Context, id string) error
	List(ctx context.Context, country string, limit, offset int64) ([]model.Airline, error)
	// FlyingTo returns the airlines operating at least one route into the
	// given destination airport, as a single join query against the store.
	FlyingTo(ctx context.Context, airportCode string, limit, offset int64) ([]model.Airline, error)
	Count(ctx context.Context) (int64, error)
	BulkUpsert(ctx context.Context, airlines []model.Airline) error
}

// AirportRepository defines operations for airports
type AirportRepository interface {
	Find(ctx context.Context, id string) (*model.Airport, error)
	Insert(ctx context.Context, id string, airport *model.Airport) error
	Replace(ctx context.Context, id string, airport *model.Airport) error
	Remove(ctx context.Context, id string) error
	// DirectConnections returns the FAA codes reachable from the given
	// airport with zero-stop routes.
	DirectConnections(ctx context.Context, airportCode string, limit, offset int64) ([]string, error)
	BulkUpsert(ctx context.Context, airports []model.Airport) error
}

// RouteRepository defines operations for routes
type RouteRepository interface {
	Find(ctx context.Context, id string) (*model.Route, error)
	Insert(ctx context.Context, id string, route *model.Route) error
	Replace(ctx context.Context, id string, route *model.Route) error
	Remove(ctx context.Context, id string) error
	BulkUpsert(ctx context.Context, routes []model.Route) error
}

// HotelRepository defines the search-only surface for hotels
type HotelRepository interface {
	// SearchNames matches hotel names for autocomplete, capped at 50,
	// projecting only the name field.
	SearchNames(ctx context.Context, name string) ([]string, error)
	// Filter runs a conjunction of the non-empty criteria over the search
	// index, sorted by descending relevance then name.
	Filter(ctx context.Context, filter model.HotelFilter, offset, limit int64) ([]model.Hotel, error)
	BulkUpsert(ctx context.Context, hotels []model.Hotel) error
}

// Container holds all repositories
type Container struct {
	Airline AirlineRepository
	Airport AirportRepository
	Route   RouteRepository
	Hotel   HotelRepository
}

// NewMongoRepositories creates the document store backed implementations
func NewMongoRepositories(db *mongo.Database) *Container {
	airlines := db.Collection(airlineCollection)
	airports := db.Collection(airportCollection)
	routes := db.Collection(routeCollection)
	hotels := db.Collection(hotelCollection)

	return &Container{
		Airline: &mongoAirlineRepository{airlines: airlines, routes: routes},
		Airport: &mongoAirportRepository{airports: airports, routes: routes},
		Route:   &mongoRouteRepository{routes: routes},
		Hotel:   &mongoHotelRepository{hotels: hotels},
	}
}

// NewMemoryRepositories creates the in-memory implementations used for
// development and tests
func NewMemoryRepositories() *Container {
	store := newMemoryStore()

	return &Container{
		Airline: &memoryAirlineRepository{store: store},
		Airport: &memoryAirportRepository{store: store},
		Route:   &memoryRouteRepository{store: store},
		Hotel:   &memoryHotelRepository{store: store},
	}
}

// NewUnavailableRepositories creates implementations whose every
// operation fails with ErrUnavailable. Used when the startup connection
// loop exhausted its retries and the process serves in degraded mode.
func NewUnavailableRepositories() *Container {
	return &Container{
		Airline: unavailableAirlineRepository{},
		Airport: unavailableAirportRepository{},
		Route:   unavailableRouteRepository{},
		Hotel:   unavailableHotelRepository{},
	}
}
