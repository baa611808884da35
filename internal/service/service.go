package service

import (
	"github.com/tripfolio/travel-api/internal/repository"
)

const (
	defaultListLimit   = 10
	defaultFilterLimit = 50
)

// Service maps API operations onto repository calls: attribute
// validation, numeric coercion and pagination defaults live here.
type Service struct {
	airlineRepo repository.AirlineRepository
	airportRepo repository.AirportRepository
	routeRepo   repository.RouteRepository
	hotelRepo   repository.HotelRepository
}

// NewService creates a new service instance
func NewService(
	airlineRepo repository.AirlineRepository,
	airportRepo repository.AirportRepository,
	routeRepo repository.RouteRepository,
	hotelRepo repository.HotelRepository,
) *Service {
	return &Service{
		airlineRepo: airlineRepo,
		airportRepo: airportRepo,
		routeRepo:   routeRepo,
		hotelRepo:   hotelRepo,
	}
}

func clampWindow(limit, offset, defaultLimit int64) (int64, int64) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
