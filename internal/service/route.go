package service

import (
	"context"

	"github.com/tripfolio/travel-api/internal/model"
)

var routeFields = fieldSchema{
	required: []string{"airline", "airlineid", "sourceairport", "destinationairport", "stops", "equipment", "distance"},
	optional: []string{"schedule"},
}

func routeFromAttributes(id string, attrs map[string]any) (*model.Route, error) {
	c := &coercer{}

	// Schedule is optional and defaults to an empty list
	schedule := []model.ScheduleEntry{}
	switch entries := attrs["schedule"].(type) {
	case []any:
		for _, entry := range entries {
			fields, ok := entry.(map[string]any)
			if !ok {
				c.invalid = append(c.invalid, "schedule")
				continue
			}
			schedule = append(schedule, model.ScheduleEntry{
				Day:    c.int("schedule.day", fields["day"]),
				UTC:    c.str(fields["utc"]),
				Flight: c.str(fields["flight"]),
			})
		}
	case nil:
	default:
		c.invalid = append(c.invalid, "schedule")
	}

	route := &model.Route{
		ID:                 id,
		Airline:            c.str(attrs["airline"]),
		AirlineID:          c.str(attrs["airlineid"]),
		SourceAirport:      c.str(attrs["sourceairport"]),
		DestinationAirport: c.str(attrs["destinationairport"]),
		Stops:              c.int("stops", attrs["stops"]),
		Equipment:          c.str(attrs["equipment"]),
		Distance:           c.float("distance", attrs["distance"]),
		Schedule:           schedule,
	}
	return route, c.err()
}

// FindRoute retrieves a route by id; a nil result means absent
func (s *Service) FindRoute(ctx context.Context, id string) (*model.Route, error) {
	return s.routeRepo.Find(ctx, id)
}

// CreateRoute validates the attribute set, coerces stops, distance and
// schedule days, and inserts a new document under id
func (s *Service) CreateRoute(ctx context.Context, id string, attrs map[string]any) (*model.Route, error) {
	if err := routeFields.validate(attrs); err != nil {
		return nil, err
	}
	route, err := routeFromAttributes(id, attrs)
	if err != nil {
		return nil, err
	}
	if err := s.routeRepo.Insert(ctx, id, route); err != nil {
		return nil, err
	}
	return route, nil
}

// UpdateRoute replaces the full document under id
func (s *Service) UpdateRoute(ctx context.Context, id string, attrs map[string]any) (*model.Route, error) {
	if err := routeFields.validate(attrs); err != nil {
		return nil, err
	}
	route, err := routeFromAttributes(id, attrs)
	if err != nil {
		return nil, err
	}
	if err := s.routeRepo.Replace(ctx, id, route); err != nil {
		return nil, err
	}
	return route, nil
}

// DeleteRoute removes the route by id
func (s *Service) DeleteRoute(ctx context.Context, id string) error {
	return s.routeRepo.Remove(ctx, id)
}
