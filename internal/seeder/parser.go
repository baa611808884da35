package seeder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jszwec/csvutil"
	"github.com/tripfolio/travel-api/internal/model"
)

// Parser reads the CSV sample data set
type Parser struct {
	dataDir string
}

// NewParser creates a new parser instance
func NewParser(dataDir string) *Parser {
	return &Parser{dataDir: dataDir}
}

type airlineRow struct {
	ID       string `csv:"id"`
	Name     string `csv:"name"`
	IATA     string `csv:"iata"`
	ICAO     string `csv:"icao"`
	Callsign string `csv:"callsign"`
	Country  string `csv:"country"`
}

type airportRow struct {
	ID          string  `csv:"id"`
	AirportName string  `csv:"airportname"`
	City        string  `csv:"city"`
	Country     string  `csv:"country"`
	FAA         string  `csv:"faa"`
	ICAO        string  `csv:"icao"`
	TZ          string  `csv:"tz"`
	GeoLat      float64 `csv:"geo_lat"`
	GeoLon      float64 `csv:"geo_lon"`
	GeoAlt      float64 `csv:"geo_alt"`
}

type routeRow struct {
	ID                 string  `csv:"id"`
	Airline            string  `csv:"airline"`
	AirlineID          string  `csv:"airlineid"`
	SourceAirport      string  `csv:"sourceairport"`
	DestinationAirport string  `csv:"destinationairport"`
	Stops              int     `csv:"stops"`
	Equipment          string  `csv:"equipment"`
	Distance           float64 `csv:"distance"`
}

type hotelRow struct {
	Name        string `csv:"name"`
	Title       string `csv:"title"`
	Description string `csv:"description"`
	Country     string `csv:"country"`
	City        string `csv:"city"`
	State       string `csv:"state"`
}

func unmarshalFile[T any](dataDir, name string) ([]T, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	var rows []T
	if err := csvutil.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return rows, nil
}

// ParseAirlines parses airlines.csv
func (p *Parser) ParseAirlines() ([]model.Airline, error) {
	rows, err := unmarshalFile[airlineRow](p.dataDir, "airlines.csv")
	if err != nil {
		return nil, err
	}

	airlines := make([]model.Airline, 0, len(rows))
	for _, row := range rows {
		airlines = append(airlines, model.Airline{
			ID:       row.ID,
			Name:     row.Name,
			IATA:     row.IATA,
			ICAO:     row.ICAO,
			Callsign: row.Callsign,
			Country:  row.Country,
		})
	}
	return airlines, nil
}

// ParseAirports parses airports.csv
func (p *Parser) ParseAirports() ([]model.Airport, error) {
	rows, err := unmarshalFile[airportRow](p.dataDir, "airports.csv")
	if err != nil {
		return nil, err
	}

	airports := make([]model.Airport, 0, len(rows))
	for _, row := range rows {
		airports = append(airports, model.Airport{
			ID:          row.ID,
			AirportName: row.AirportName,
			City:        row.City,
			Country:     row.Country,
			FAA:         row.FAA,
			ICAO:        row.ICAO,
			TZ:          row.TZ,
			Geo:         model.Geo{Lat: row.GeoLat, Lon: row.GeoLon, Alt: row.GeoAlt},
		})
	}
	return airports, nil
}

// ParseRoutes parses routes.csv. Schedules are not part of the sample
// set; routes seed with an empty schedule.
func (p *Parser) ParseRoutes() ([]model.Route, error) {
	rows, err := unmarshalFile[routeRow](p.dataDir, "routes.csv")
	if err != nil {
		return nil, err
	}

	routes := make([]model.Route, 0, len(rows))
	for _, row := range rows {
		routes = append(routes, model.Route{
			ID:                 row.ID,
			Airline:            row.Airline,
			AirlineID:          row.AirlineID,
			SourceAirport:      row.SourceAirport,
			DestinationAirport: row.DestinationAirport,
			Stops:              row.Stops,
			Equipment:          row.Equipment,
			Distance:           row.Distance,
			Schedule:           []model.ScheduleEntry{},
		})
	}
	return routes, nil
}

// ParseHotels parses hotels.csv
func (p *Parser) ParseHotels() ([]model.Hotel, error) {
	rows, err := unmarshalFile[hotelRow](p.dataDir, "hotels.csv")
	if err != nil {
		return nil, err
	}

	hotels := make([]model.Hotel, 0, len(rows))
	for _, row := range rows {
		hotels = append(hotels, model.Hotel{
			Name:        row.Name,
			Title:       row.Title,
			Description: row.Description,
			Country:     row.Country,
			City:        row.City,
			State:       row.State,
		})
	}
	return hotels, nil
}
