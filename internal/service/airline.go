package service

import (
	"context"
	"fmt"

	"github.com/tripfolio/travel-api/internal/model"
)

var airlineFields = fieldSchema{
	required: []string{"name", "iata", "icao", "callsign", "country"},
}

func airlineFromAttributes(id string, attrs map[string]any) (*model.Airline, error) {
	c := &coercer{}
	airline := &model.Airline{
		ID:       id,
		Name:     c.str(attrs["name"]),
		IATA:     c.str(attrs["iata"]),
		ICAO:     c.str(attrs["icao"]),
		Callsign: c.str(attrs["callsign"]),
		Country:  c.str(attrs["country"]),
	}
	return airline, c.err()
}

// FindAirline retrieves an airline by id; a nil result means absent
func (s *Service) FindAirline(ctx context.Context, id string) (*model.Airline, error) {
	return s.airlineRepo.Find(ctx, id)
}

// CreateAirline validates the attribute set and inserts a new document
// under id. An existing id is a conflict, never an overwrite.
func (s *Service) CreateAirline(ctx context.Context, id string, attrs map[string]any) (*model.Airline, error) {
	if err := airlineFields.validate(attrs); err != nil {
		return nil, err
	}
	airline, err := airlineFromAttributes(id, attrs)
	if err != nil {
		return nil, err
	}
	if err := s.airlineRepo.Insert(ctx, id, airline); err != nil {
		return nil, err
	}
	return airline, nil
}

// UpdateAirline replaces the full document under id. A missing target
// is not-found; updates never create.
func (s *Service) UpdateAirline(ctx context.Context, id string, attrs map[string]any) (*model.Airline, error) {
	if err := airlineFields.validate(attrs); err != nil {
		return nil, err
	}
	airline, err := airlineFromAttributes(id, attrs)
	if err != nil {
		return nil, err
	}
	if err := s.airlineRepo.Replace(ctx, id, airline); err != nil {
		return nil, err
	}
	return airline, nil
}

// DeleteAirline removes the airline by id
func (s *Service) DeleteAirline(ctx context.Context, id string) error {
	return s.airlineRepo.Remove(ctx, id)
}

// ListAirlines returns a page of airlines, optionally filtered by country
func (s *Service) ListAirlines(ctx context.Context, country string, limit, offset int64) ([]model.Airline, error) {
	limit, offset = clampWindow(limit, offset, defaultListLimit)
	airlines, err := s.airlineRepo.List(ctx, country, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list airlines: %w", err)
	}
	return airlines, nil
}

// AirlinesFlyingTo returns a page of airlines with routes into the
// given destination airport
func (s *Service) AirlinesFlyingTo(ctx context.Context, airportCode string, limit, offset int64) ([]model.Airline, error) {
	limit, offset = clampWindow(limit, offset, defaultListLimit)
	airlines, err := s.airlineRepo.FlyingTo(ctx, airportCode, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to find airlines flying to %s: %w", airportCode, err)
	}
	return airlines, nil
}
