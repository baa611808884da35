package repository

import (
	"context"

	"github.com/tripfolio/travel-api/internal/model"
)

// Stub implementations used when the store connection could not be
// established at startup. Every call fails fast with ErrUnavailable so
// that clients see a single uniform 503.

type unavailableAirlineRepository struct{}

func (unavailableAirlineRepository) Find(context.Context, string) (*model.Airline, error) {
	return nil, ErrUnavailable
}

func (unavailableAirlineRepository) Insert(context.Context, string, *model.Airline) error {
	return ErrUnavailable
}

func (unavailableAirlineRepository) Replace(context.Context, string, *model.Airline) error {
	return ErrUnavailable
}

func (unavailableAirlineRepository) Remove(context.Context, string) error {
	return ErrUnavailable
}

func (unavailableAirlineRepository) List(context.Context, string, int64, int64) ([]model.Airline, error) {
	return nil, ErrUnavailable
}

func (unavailableAirlineRepository) FlyingTo(context.Context, string, int64, int64) ([]model.Airline, error) {
	return nil, ErrUnavailable
}

func (unavailableAirlineRepository) Count(context.Context) (int64, error) {
	return 0, ErrUnavailable
}

func (unavailableAirlineRepository) BulkUpsert(context.Context, []model.Airline) error {
	return ErrUnavailable
}

type unavailableAirportRepository struct{}

func (unavailableAirportRepository) Find(context.Context, string) (*model.Airport, error) {
	return nil, ErrUnavailable
}

func (unavailableAirportRepository) Insert(context.Context, string, *model.Airport) error {
	return ErrUnavailable
}

func (unavailableAirportRepository) Replace(context.Context, string, *model.Airport) error {
	return ErrUnavailable
}

func (unavailableAirportRepository) Remove(context.Context, string) error {
	return ErrUnavailable
}

func (unavailableAirportRepository) DirectConnections(context.Context, string, int64, int64) ([]string, error) {
	return nil, ErrUnavailable
}

func (unavailableAirportRepository) BulkUpsert(context.Context, []model.Airport) error {
	return ErrUnavailable
}

type unavailableRouteRepository struct{}

func (unavailableRouteRepository) Find(context.Context, string) (*model.Route, error) {
	return nil, ErrUnavailable
}

func (unavailableRouteRepository) Insert(context.Context, string, *model.Route) error {
	return ErrUnavailable
}

func (unavailableRouteRepository) Replace(context.Context, string, *model.Route) error {
	return ErrUnavailable
}

func (unavailableRouteRepository) Remove(context.Context, string) error {
	return ErrUnavailable
}

func (unavailableRouteRepository) BulkUpsert(context.Context, []model.Route) error {
	return ErrUnavailable
}

type unavailableHotelRepository struct{}

func (unavailableHotelRepository) SearchNames(context.Context, string) ([]string, error) {
	return nil, ErrUnavailable
}

func (unavailableHotelRepository) Filter(context.Context, model.HotelFilter, int64, int64) ([]model.Hotel, error) {
	return nil, ErrUnavailable
}

func (unavailableHotelRepository) BulkUpsert(context.Context, []model.Hotel) error {
	return ErrUnavailable
}
