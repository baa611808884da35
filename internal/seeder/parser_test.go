package seeder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tripfolio/travel-api/internal/model"
)

func TestParseAirlines(t *testing.T) {
	parser := NewParser("testdata")

	airlines, err := parser.ParseAirlines()
	require.NoError(t, err)
	require.Len(t, airlines, 2)

	assert.Equal(t, model.Airline{
		ID:       "airline_10",
		Name:     "40-Mile Air",
		IATA:     "Q5",
		ICAO:     "MLA",
		Callsign: "MILE-AIR",
		Country:  "United States",
	}, airlines[0])
}

func TestParseAirportsFlattensGeo(t *testing.T) {
	parser := NewParser("testdata")

	airports, err := parser.ParseAirports()
	require.NoError(t, err)
	require.Len(t, airports, 2)

	jfk := airports[1]
	assert.Equal(t, "airport_3577", jfk.ID)
	assert.Equal(t, "JFK", jfk.FAA)
	assert.InDelta(t, 40.639751, jfk.Geo.Lat, 0.000001)
	assert.InDelta(t, -73.778925, jfk.Geo.Lon, 0.000001)
	assert.InDelta(t, 13.0, jfk.Geo.Alt, 0.000001)
}

func TestParseRoutes(t *testing.T) {
	parser := NewParser("testdata")

	routes, err := parser.ParseRoutes()
	require.NoError(t, err)
	require.Len(t, routes, 2)

	first := routes[0]
	assert.Equal(t, "route_10000", first.ID)
	assert.Equal(t, "airline_137", first.AirlineID)
	assert.Equal(t, 0, first.Stops)
	assert.InDelta(t, 2881.617, first.Distance, 0.001)
	// The sample set has no schedules; the field must still round-trip
	// as an empty array, not null
	assert.NotNil(t, first.Schedule)
	assert.Empty(t, first.Schedule)
}

func TestParseHotels(t *testing.T) {
	parser := NewParser("testdata")

	hotels, err := parser.ParseHotels()
	require.NoError(t, err)
	require.Len(t, hotels, 2)

	assert.Equal(t, "Medway Youth Hostel", hotels[0].Name)
	assert.Equal(t, "", hotels[0].State)
	assert.Equal(t, "Scotland", hotels[1].State)
}

func TestParseMissingFile(t *testing.T) {
	parser := NewParser("testdata/nope")

	_, err := parser.ParseAirlines()
	assert.Error(t, err)
}
