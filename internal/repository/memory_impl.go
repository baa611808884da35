package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/tripfolio/travel-api/internal/model"
)

// memoryStore backs the in-memory repositories. It approximates the
// document store closely enough for development and tests: documents
// keyed by id, id-ordered listing, and lowercase substring matching in
// place of the text index.
type memoryStore struct {
	mu       sync.RWMutex
	airlines map[string]model.Airline
	airports map[string]model.Airport
	routes   map[string]model.Route
	hotels   map[string]model.Hotel
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		airlines: make(map[string]model.Airline),
		airports: make(map[string]model.Airport),
		routes:   make(map[string]model.Route),
		hotels:   make(map[string]model.Hotel),
	}
}

func paginate[T any](items []T, offset, limit int64) []T {
	if offset >= int64(len(items)) {
		return []T{}
	}
	items = items[offset:]
	if limit < int64(len(items)) {
		items = items[:limit]
	}
	return items
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// memoryAirlineRepository implements AirlineRepository
type memoryAirlineRepository struct {
	store *memoryStore
}

func (r *memoryAirlineRepository) Find(_ context.Context, id string) (*model.Airline, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	airline, ok := r.store.airlines[id]
	if !ok {
		return nil, nil
	}
	return &airline, nil
}

func (r *memoryAirlineRepository) Insert(_ context.Context, id string, airline *model.Airline) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.airlines[id]; ok {
		return ErrAlreadyExists
	}
	r.store.airlines[id] = *airline
	return nil
}

func (r *memoryAirlineRepository) Replace(_ context.Context, id string, airline *model.Airline) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.airlines[id]; !ok {
		return ErrNotFound
	}
	r.store.airlines[id] = *airline
	return nil
}

func (r *memoryAirlineRepository) Remove(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.airlines[id]; !ok {
		return ErrNotFound
	}
	delete(r.store.airlines, id)
	return nil
}

func (r *memoryAirlineRepository) List(_ context.Context, country string, limit, offset int64) ([]model.Airline, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	airlines := []model.Airline{}
	for _, id := range sortedKeys(r.store.airlines) {
		airline := r.store.airlines[id]
		if country != "" && airline.Country != country {
			continue
		}
		airlines = append(airlines, airline)
	}
	return paginate(airlines, offset, limit), nil
}

func (r *memoryAirlineRepository) FlyingTo(_ context.Context, airportCode string, limit, offset int64) ([]model.Airline, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	ids := map[string]bool{}
	for _, route := range r.store.routes {
		if route.DestinationAirport == airportCode {
			ids[route.AirlineID] = true
		}
	}

	airlines := []model.Airline{}
	for _, id := range sortedKeys(ids) {
		if airline, ok := r.store.airlines[id]; ok {
			airlines = append(airlines, airline)
		}
	}
	return paginate(airlines, offset, limit), nil
}

func (r *memoryAirlineRepository) Count(_ context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return int64(len(r.store.airlines)), nil
}

func (r *memoryAirlineRepository) BulkUpsert(_ context.Context, airlines []model.Airline) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, airline := range airlines {
		r.store.airlines[airline.ID] = airline
	}
	return nil
}

// memoryAirportRepository implements AirportRepository
type memoryAirportRepository struct {
	store *memoryStore
}

func (r *memoryAirportRepository) Find(_ context.Context, id string) (*model.Airport, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	airport, ok := r.store.airports[id]
	if !ok {
		return nil, nil
	}
	return &airport, nil
}

func (r *memoryAirportRepository) Insert(_ context.Context, id string, airport *model.Airport) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.airports[id]; ok {
		return ErrAlreadyExists
	}
	r.store.airports[id] = *airport
	return nil
}

func (r *memoryAirportRepository) Replace(_ context.Context, id string, airport *model.Airport) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.airports[id]; !ok {
		return ErrNotFound
	}
	r.store.airports[id] = *airport
	return nil
}

func (r *memoryAirportRepository) Remove(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.airports[id]; !ok {
		return ErrNotFound
	}
	delete(r.store.airports, id)
	return nil
}

func (r *memoryAirportRepository) DirectConnections(_ context.Context, airportCode string, limit, offset int64) ([]string, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	// Same join semantics as the store query: no matching airport means
	// no connections, regardless of what routes claim.
	exists := false
	for _, airport := range r.store.airports {
		if airport.FAA == airportCode {
			exists = true
			break
		}
	}
	if !exists {
		return []string{}, nil
	}

	dests := map[string]bool{}
	for _, route := range r.store.routes {
		if route.SourceAirport == airportCode && route.Stops == 0 {
			dests[route.DestinationAirport] = true
		}
	}
	return paginate(sortedKeys(dests), offset, limit), nil
}

func (r *memoryAirportRepository) BulkUpsert(_ context.Context, airports []model.Airport) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, airport := range airports {
		r.store.airports[airport.ID] = airport
	}
	return nil
}

// memoryRouteRepository implements RouteRepository
type memoryRouteRepository struct {
	store *memoryStore
}

func (r *memoryRouteRepository) Find(_ context.Context, id string) (*model.Route, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	route, ok := r.store.routes[id]
	if !ok {
		return nil, nil
	}
	return &route, nil
}

func (r *memoryRouteRepository) Insert(_ context.Context, id string, route *model.Route) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.routes[id]; ok {
		return ErrAlreadyExists
	}
	r.store.routes[id] = *route
	return nil
}

func (r *memoryRouteRepository) Replace(_ context.Context, id string, route *model.Route) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.routes[id]; !ok {
		return ErrNotFound
	}
	r.store.routes[id] = *route
	return nil
}

func (r *memoryRouteRepository) Remove(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.routes[id]; !ok {
		return ErrNotFound
	}
	delete(r.store.routes, id)
	return nil
}

func (r *memoryRouteRepository) BulkUpsert(_ context.Context, routes []model.Route) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, route := range routes {
		r.store.routes[route.ID] = route
	}
	return nil
}

// memoryHotelRepository implements HotelRepository with lowercase
// substring matching standing in for the text index
type memoryHotelRepository struct {
	store *memoryStore
}

func (r *memoryHotelRepository) SearchNames(_ context.Context, name string) ([]string, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	needle := strings.ToLower(name)
	names := []string{}
	for _, key := range sortedKeys(r.store.hotels) {
		if strings.Contains(strings.ToLower(r.store.hotels[key].Name), needle) {
			names = append(names, r.store.hotels[key].Name)
		}
	}
	if int64(len(names)) > autocompleteLimit {
		names = names[:autocompleteLimit]
	}
	return names, nil
}

func (r *memoryHotelRepository) Filter(_ context.Context, f model.HotelFilter, offset, limit int64) ([]model.Hotel, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matches := func(h model.Hotel) bool {
		if f.Name != "" && h.Name != f.Name {
			return false
		}
		for _, pair := range [][2]string{
			{f.Title, h.Title},
			{f.Description, h.Description},
			{f.Country, h.Country},
			{f.City, h.City},
			{f.State, h.State},
		} {
			if pair[0] != "" && !strings.Contains(strings.ToLower(pair[1]), strings.ToLower(pair[0])) {
				return false
			}
		}
		return true
	}

	hotels := []model.Hotel{}
	for _, key := range sortedKeys(r.store.hotels) {
		if hotel := r.store.hotels[key]; matches(hotel) {
			hotels = append(hotels, hotel)
		}
	}
	return paginate(hotels, offset, limit), nil
}

func (r *memoryHotelRepository) BulkUpsert(_ context.Context, hotels []model.Hotel) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, hotel := range hotels {
		r.store.hotels[hotel.Name] = hotel
	}
	return nil
}
