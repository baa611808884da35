package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tripfolio/travel-api/internal/model"
)

func seedRepos(t *testing.T) *Container {
	t.Helper()
	repos := NewMemoryRepositories()
	ctx := context.Background()

	airlines := []model.Airline{
		{ID: "airline_1", Name: "Alpha Air", IATA: "A1", ICAO: "ALP", Callsign: "ALPHA", Country: "United States"},
		{ID: "airline_2", Name: "Beta Wings", IATA: "B2", ICAO: "BET", Callsign: "BETA", Country: "France"},
		{ID: "airline_3", Name: "Gamma Jet", IATA: "G3", ICAO: "GAM", Callsign: "GAMMA", Country: "United States"},
	}
	require.NoError(t, repos.Airline.BulkUpsert(ctx, airlines))

	airports := []model.Airport{
		{ID: "airport_1", AirportName: "Alpha Field", City: "Springfield", Country: "United States", FAA: "AAA", ICAO: "KAAA", TZ: "America/New_York"},
		{ID: "airport_2", AirportName: "Beta Intl", City: "Lyon", Country: "France", FAA: "BBB", ICAO: "LFBB", TZ: "Europe/Paris"},
	}
	require.NoError(t, repos.Airport.BulkUpsert(ctx, airports))

	routes := []model.Route{
		{ID: "route_1", Airline: "A1", AirlineID: "airline_1", SourceAirport: "AAA", DestinationAirport: "BBB", Stops: 0},
		{ID: "route_2", Airline: "B2", AirlineID: "airline_2", SourceAirport: "AAA", DestinationAirport: "CCC", Stops: 1},
		{ID: "route_3", Airline: "G3", AirlineID: "airline_3", SourceAirport: "BBB", DestinationAirport: "AAA", Stops: 0},
		{ID: "route_4", Airline: "A1", AirlineID: "airline_1", SourceAirport: "AAA", DestinationAirport: "DDD", Stops: 0},
	}
	require.NoError(t, repos.Route.BulkUpsert(ctx, routes))

	hotels := []model.Hotel{
		{Name: "Harbor House", Title: "Seaside stay", Description: "Rooms over the harbor wall", Country: "United Kingdom", City: "Whitby"},
		{Name: "Alpine Lodge", Title: "Mountain retreat", Description: "Chalet at the foot of the pass", Country: "France", City: "Chamonix"},
		{Name: "Harbor Lights", Title: "City hotel", Description: "Modern rooms near the quay", Country: "United Kingdom", City: "Bristol"},
	}
	require.NoError(t, repos.Hotel.BulkUpsert(ctx, hotels))

	return repos
}

func TestMemoryAirlineCRUD(t *testing.T) {
	repos := seedRepos(t)
	ctx := context.Background()

	t.Run("find absent is nil not error", func(t *testing.T) {
		airline, err := repos.Airline.Find(ctx, "airline_404")
		require.NoError(t, err)
		assert.Nil(t, airline)
	})

	t.Run("insert then find round-trips", func(t *testing.T) {
		created := &model.Airline{ID: "airline_42", Name: "Test Air", IATA: "T1", ICAO: "TST", Callsign: "TESTAIR", Country: "US"}
		require.NoError(t, repos.Airline.Insert(ctx, "airline_42", created))

		found, err := repos.Airline.Find(ctx, "airline_42")
		require.NoError(t, err)
		assert.Equal(t, created, found)
	})

	t.Run("insert on used id is a conflict, not an overwrite", func(t *testing.T) {
		err := repos.Airline.Insert(ctx, "airline_1", &model.Airline{ID: "airline_1", Name: "Impostor"})
		assert.ErrorIs(t, err, ErrAlreadyExists)

		found, err := repos.Airline.Find(ctx, "airline_1")
		require.NoError(t, err)
		assert.Equal(t, "Alpha Air", found.Name)
	})

	t.Run("replace on absent id is not found", func(t *testing.T) {
		err := repos.Airline.Replace(ctx, "airline_404", &model.Airline{ID: "airline_404"})
		assert.ErrorIs(t, err, ErrNotFound)

		airline, err := repos.Airline.Find(ctx, "airline_404")
		require.NoError(t, err)
		assert.Nil(t, airline)
	})

	t.Run("double remove is success then not found", func(t *testing.T) {
		require.NoError(t, repos.Airline.Insert(ctx, "airline_tmp", &model.Airline{ID: "airline_tmp"}))
		require.NoError(t, repos.Airline.Remove(ctx, "airline_tmp"))
		assert.ErrorIs(t, repos.Airline.Remove(ctx, "airline_tmp"), ErrNotFound)
	})
}

func TestMemoryAirlineList(t *testing.T) {
	repos := seedRepos(t)
	ctx := context.Background()

	t.Run("country filter", func(t *testing.T) {
		airlines, err := repos.Airline.List(ctx, "United States", 10, 0)
		require.NoError(t, err)
		require.Len(t, airlines, 2)
		assert.Equal(t, "airline_1", airlines[0].ID)
		assert.Equal(t, "airline_3", airlines[1].ID)
	})

	t.Run("pagination windows never overlap", func(t *testing.T) {
		repos := NewMemoryRepositories()
		var all []model.Airline
		for i := 0; i < 25; i++ {
			all = append(all, model.Airline{ID: fmt.Sprintf("airline_%03d", i)})
		}
		require.NoError(t, repos.Airline.BulkUpsert(ctx, all))

		seen := map[string]bool{}
		for offset := int64(0); offset < 30; offset += 10 {
			page, err := repos.Airline.List(ctx, "", 10, offset)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(page), 10)
			for _, airline := range page {
				assert.False(t, seen[airline.ID], "id %s repeated across pages", airline.ID)
				seen[airline.ID] = true
			}
		}
		assert.Len(t, seen, 25)
	})
}

func TestMemoryFlyingTo(t *testing.T) {
	repos := seedRepos(t)
	ctx := context.Background()

	airlines, err := repos.Airline.FlyingTo(ctx, "AAA", 10, 0)
	require.NoError(t, err)
	require.Len(t, airlines, 1)
	assert.Equal(t, "airline_3", airlines[0].ID)

	airlines, err = repos.Airline.FlyingTo(ctx, "ZZZ", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, airlines)
}

func TestMemoryDirectConnections(t *testing.T) {
	repos := seedRepos(t)
	ctx := context.Background()

	t.Run("only zero-stop routes count", func(t *testing.T) {
		codes, err := repos.Airport.DirectConnections(ctx, "AAA", 10, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"BBB", "DDD"}, codes)
	})

	t.Run("unknown airport yields empty list", func(t *testing.T) {
		codes, err := repos.Airport.DirectConnections(ctx, "ZZZ", 10, 0)
		require.NoError(t, err)
		assert.Empty(t, codes)
	})
}

func TestMemoryHotelSearch(t *testing.T) {
	repos := seedRepos(t)
	ctx := context.Background()

	t.Run("autocomplete matches substrings case-insensitively", func(t *testing.T) {
		names, err := repos.Hotel.SearchNames(ctx, "harbor")
		require.NoError(t, err)
		assert.Equal(t, []string{"Harbor House", "Harbor Lights"}, names)
	})

	t.Run("filter with no criteria returns the window", func(t *testing.T) {
		hotels, err := repos.Hotel.Filter(ctx, model.HotelFilter{}, 0, 50)
		require.NoError(t, err)
		assert.Len(t, hotels, 3)
	})

	t.Run("name narrows to exact matches", func(t *testing.T) {
		hotels, err := repos.Hotel.Filter(ctx, model.HotelFilter{Name: "Harbor House"}, 0, 50)
		require.NoError(t, err)
		require.Len(t, hotels, 1)
		assert.Equal(t, "Whitby", hotels[0].City)

		hotels, err = repos.Hotel.Filter(ctx, model.HotelFilter{Name: "Harbor"}, 0, 50)
		require.NoError(t, err)
		assert.Empty(t, hotels)
	})

	t.Run("criteria conjoin", func(t *testing.T) {
		hotels, err := repos.Hotel.Filter(ctx, model.HotelFilter{Country: "United Kingdom", Description: "quay"}, 0, 50)
		require.NoError(t, err)
		require.Len(t, hotels, 1)
		assert.Equal(t, "Harbor Lights", hotels[0].Name)
	})
}

func TestUnavailableRepositories(t *testing.T) {
	repos := NewUnavailableRepositories()
	ctx := context.Background()

	_, err := repos.Airline.Find(ctx, "airline_1")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, repos.Route.Remove(ctx, "route_1"), ErrUnavailable)
	_, err = repos.Hotel.SearchNames(ctx, "harbor")
	assert.ErrorIs(t, err, ErrUnavailable)
	_, err = repos.Airport.DirectConnections(ctx, "AAA", 10, 0)
	assert.ErrorIs(t, err, ErrUnavailable)
}
