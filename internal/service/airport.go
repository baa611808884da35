package service

import (
	"context"
	"fmt"

	"github.com/tripfolio/travel-api/internal/model"
)

var airportFields = fieldSchema{
	required: []string{"airportname", "city", "country", "faa", "icao", "tz", "geo"},
}

func airportFromAttributes(id string, attrs map[string]any) (*model.Airport, error) {
	c := &coercer{}

	var geo model.Geo
	switch g := attrs["geo"].(type) {
	case map[string]any:
		geo = model.Geo{
			Lat: c.float("geo.lat", g["lat"]),
			Lon: c.float("geo.lon", g["lon"]),
			Alt: c.float("geo.alt", g["alt"]),
		}
	case nil:
	default:
		c.invalid = append(c.invalid, "geo")
	}

	airport := &model.Airport{
		ID:          id,
		AirportName: c.str(attrs["airportname"]),
		City:        c.str(attrs["city"]),
		Country:     c.str(attrs["country"]),
		FAA:         c.str(attrs["faa"]),
		ICAO:        c.str(attrs["icao"]),
		TZ:          c.str(attrs["tz"]),
		Geo:         geo,
	}
	return airport, c.err()
}

// FindAirport retrieves an airport by id; a nil result means absent
func (s *Service) FindAirport(ctx context.Context, id string) (*model.Airport, error) {
	return s.airportRepo.Find(ctx, id)
}

// CreateAirport validates the attribute set, coerces the geo
// coordinates and inserts a new document under id
func (s *Service) CreateAirport(ctx context.Context, id string, attrs map[string]any) (*model.Airport, error) {
	if err := airportFields.validate(attrs); err != nil {
		return nil, err
	}
	airport, err := airportFromAttributes(id, attrs)
	if err != nil {
		return nil, err
	}
	if err := s.airportRepo.Insert(ctx, id, airport); err != nil {
		return nil, err
	}
	return airport, nil
}

// UpdateAirport replaces the full document under id
func (s *Service) UpdateAirport(ctx context.Context, id string, attrs map[string]any) (*model.Airport, error) {
	if err := airportFields.validate(attrs); err != nil {
		return nil, err
	}
	airport, err := airportFromAttributes(id, attrs)
	if err != nil {
		return nil, err
	}
	if err := s.airportRepo.Replace(ctx, id, airport); err != nil {
		return nil, err
	}
	return airport, nil
}

// DeleteAirport removes the airport by id
func (s *Service) DeleteAirport(ctx context.Context, id string) error {
	return s.airportRepo.Remove(ctx, id)
}

// DirectConnections returns a page of FAA codes reachable from the
// given airport with zero-stop routes
func (s *Service) DirectConnections(ctx context.Context, airportCode string, limit, offset int64) ([]string, error) {
	limit, offset = clampWindow(limit, offset, defaultListLimit)
	codes, err := s.airportRepo.DirectConnections(ctx, airportCode, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to find direct connections for %s: %w", airportCode, err)
	}
	return codes, nil
}
