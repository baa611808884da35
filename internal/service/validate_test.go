package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldSchemaValidate(t *testing.T) {
	schema := fieldSchema{
		required: []string{"name", "country"},
		optional: []string{"schedule"},
	}

	tests := []struct {
		name        string
		attrs       map[string]any
		wantMissing []string
		wantExtra   []string
	}{
		{
			name:  "exact required set",
			attrs: map[string]any{"name": "Test Air", "country": "US"},
		},
		{
			name:  "optional field allowed",
			attrs: map[string]any{"name": "Test Air", "country": "US", "schedule": []any{}},
		},
		{
			name:        "missing field",
			attrs:       map[string]any{"name": "Test Air"},
			wantMissing: []string{"country"},
		},
		{
			name:      "extra field",
			attrs:     map[string]any{"name": "Test Air", "country": "US", "frequent_flyer": true},
			wantExtra: []string{"frequent_flyer"},
		},
		{
			name:        "missing and extra together",
			attrs:       map[string]any{"country": "US", "b": 1, "a": 2},
			wantMissing: []string{"name"},
			wantExtra:   []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schema.validate(tt.attrs)
			if len(tt.wantMissing) == 0 && len(tt.wantExtra) == 0 {
				assert.NoError(t, err)
				return
			}

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantMissing, validationErr.Missing)
			assert.Equal(t, tt.wantExtra, validationErr.Extra)
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Missing: []string{"iata", "icao"}, Extra: []string{"color"}}
	assert.Equal(t, "missing fields: iata, icao; extra fields: color", err.Error())
}

func TestCoercerNumeric(t *testing.T) {
	t.Run("accepts numbers and numeric strings", func(t *testing.T) {
		c := &coercer{}
		assert.Equal(t, 3, c.int("stops", float64(3)))
		assert.Equal(t, 3, c.int("stops", "3"))
		assert.Equal(t, 120.5, c.float("distance", 120.5))
		assert.Equal(t, 120.5, c.float("distance", "120.5"))
		assert.NoError(t, c.err())
	})

	t.Run("absent values coerce to zero", func(t *testing.T) {
		c := &coercer{}
		assert.Equal(t, 0.0, c.float("geo.alt", nil))
		assert.Equal(t, 0, c.int("stops", nil))
		assert.NoError(t, c.err())
	})

	t.Run("non-numeric values are reported together", func(t *testing.T) {
		c := &coercer{}
		c.int("stops", "three")
		c.float("distance", "far")
		err := c.err()

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{"distance", "stops"}, validationErr.Invalid)
	})
}

func TestRouteFromAttributes(t *testing.T) {
	route, err := routeFromAttributes("route_1", map[string]any{
		"airline":            "AA",
		"airlineid":          "airline_1316",
		"sourceairport":      "JFK",
		"destinationairport": "LAX",
		"stops":              "0",
		"equipment":          "757",
		"distance":           "3983.53",
		"schedule": []any{
			map[string]any{"day": "1", "utc": "10:00", "flight": "AA100"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "route_1", route.ID)
	assert.Equal(t, 0, route.Stops)
	assert.Equal(t, 3983.53, route.Distance)
	require.Len(t, route.Schedule, 1)
	assert.Equal(t, 1, route.Schedule[0].Day)
	assert.Equal(t, "AA100", route.Schedule[0].Flight)
}

func TestRouteFromAttributesDefaultsSchedule(t *testing.T) {
	route, err := routeFromAttributes("route_1", map[string]any{
		"airline":            "AA",
		"airlineid":          "airline_1316",
		"sourceairport":      "JFK",
		"destinationairport": "LAX",
		"stops":              0.0,
		"equipment":          "757",
		"distance":           3983.53,
	})
	require.NoError(t, err)
	assert.NotNil(t, route.Schedule)
	assert.Empty(t, route.Schedule)
}

func TestAirportFromAttributesCoercesGeo(t *testing.T) {
	airport, err := airportFromAttributes("airport_1", map[string]any{
		"airportname": "Test Field",
		"city":        "Testville",
		"country":     "US",
		"faa":         "TST",
		"icao":        "KTST",
		"tz":          "America/New_York",
		"geo":         map[string]any{"lat": "40.63", "lon": -73.77, "alt": 13.0},
	})
	require.NoError(t, err)

	assert.Equal(t, 40.63, airport.Geo.Lat)
	assert.Equal(t, -73.77, airport.Geo.Lon)
	assert.Equal(t, 13.0, airport.Geo.Alt)
}

func TestAirportFromAttributesRejectsBadGeo(t *testing.T) {
	_, err := airportFromAttributes("airport_1", map[string]any{
		"airportname": "Test Field",
		"city":        "Testville",
		"country":     "US",
		"faa":         "TST",
		"icao":        "KTST",
		"tz":          "America/New_York",
		"geo":         "somewhere",
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"geo"}, validationErr.Invalid)
}
