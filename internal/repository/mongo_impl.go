package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/tripfolio/travel-api/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	airlineCollection = "airline"
	airportCollection = "airport"
	routeCollection   = "route"
	hotelCollection   = "hotel"
)

// Shared key-value helpers. Documents are keyed by a caller-supplied
// string _id; absence on point lookup is a nil record, not an error.

func findByID[T any](ctx context.Context, coll *mongo.Collection, id string) (*T, error) {
	var doc T
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s/%s: %w", coll.Name(), id, err)
	}
	return &doc, nil
}

func insertByID(ctx context.Context, coll *mongo.Collection, id string, doc any) error {
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to insert %s/%s: %w", coll.Name(), id, err)
	}
	return nil
}

// replaceByID replaces the full document. The strict contract applies:
// a missing target is ErrNotFound, never an implicit create.
func replaceByID(ctx context.Context, coll *mongo.Collection, id string, doc any) error {
	result, err := coll.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return fmt.Errorf("failed to replace %s/%s: %w", coll.Name(), id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func removeByID(ctx context.Context, coll *mongo.Collection, id string) error {
	result, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to remove %s/%s: %w", coll.Name(), id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func decodeAll[T any](ctx context.Context, cursor *mongo.Cursor) ([]T, error) {
	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode documents: %w", err)
	}
	return docs, nil
}

// mongoAirlineRepository implements AirlineRepository. It also holds the
// route collection for the join behind FlyingTo.
type mongoAirlineRepository struct {
	airlines *mongo.Collection
	routes   *mongo.Collection
}

func (r *mongoAirlineRepository) Find(ctx context.Context, id string) (*model.Airline, error) {
	return findByID[model.Airline](ctx, r.airlines, id)
}

func (r *mongoAirlineRepository) Insert(ctx context.Context, id string, airline *model.Airline) error {
	return insertByID(ctx, r.airlines, id, airline)
}

func (r *mongoAirlineRepository) Replace(ctx context.Context, id string, airline *model.Airline) error {
	return replaceByID(ctx, r.airlines, id, airline)
}

func (r *mongoAirlineRepository) Remove(ctx context.Context, id string) error {
	return removeByID(ctx, r.airlines, id)
}

func (r *mongoAirlineRepository) List(ctx context.Context, country string, limit, offset int64) ([]model.Airline, error) {
	filter := bson.M{}
	if country != "" {
		filter["country"] = country
	}

	// Stable id ordering keeps pagination windows disjoint
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := r.airlines.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list airlines: %w", err)
	}
	return decodeAll[model.Airline](ctx, cursor)
}

func (r *mongoAirlineRepository) FlyingTo(ctx context.Context, airportCode string, limit, offset int64) ([]model.Airline, error) {
	// Distinct airline ids from routes into the destination, joined back
	// to full airline documents in a single pipeline. Pagination applies
	// after the join.
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "destinationairport", Value: airportCode}}}},
		{{Key: "$group", Value: bson.D{{Key: "_id", Value: "$airlineid"}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: airlineCollection},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "airline"},
		}}},
		{{Key: "$unwind", Value: "$airline"}},
		{{Key: "$replaceRoot", Value: bson.D{{Key: "newRoot", Value: "$airline"}}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		{{Key: "$skip", Value: offset}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.routes.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to query airlines flying to %s: %w", airportCode, err)
	}
	return decodeAll[model.Airline](ctx, cursor)
}

func (r *mongoAirlineRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.airlines.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count airlines: %w", err)
	}
	return count, nil
}

func (r *mongoAirlineRepository) BulkUpsert(ctx context.Context, airlines []model.Airline) error {
	models := make([]mongo.WriteModel, 0, len(airlines))
	for i := range airlines {
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": airlines[i].ID}).
			SetReplacement(airlines[i]).
			SetUpsert(true))
	}
	return bulkWrite(ctx, r.airlines, models)
}

// mongoAirportRepository implements AirportRepository
type mongoAirportRepository struct {
	airports *mongo.Collection
	routes   *mongo.Collection
}

func (r *mongoAirportRepository) Find(ctx context.Context, id string) (*model.Airport, error) {
	return findByID[model.Airport](ctx, r.airports, id)
}

func (r *mongoAirportRepository) Insert(ctx context.Context, id string, airport *model.Airport) error {
	return insertByID(ctx, r.airports, id, airport)
}

func (r *mongoAirportRepository) Replace(ctx context.Context, id string, airport *model.Airport) error {
	return replaceByID(ctx, r.airports, id, airport)
}

func (r *mongoAirportRepository) Remove(ctx context.Context, id string) error {
	return removeByID(ctx, r.airports, id)
}

func (r *mongoAirportRepository) DirectConnections(ctx context.Context, airportCode string, limit, offset int64) ([]string, error) {
	// Join airports to routes on sourceairport = faa so that a code with
	// no matching airport yields an empty list rather than orphan routes.
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "faa", Value: airportCode}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: routeCollection},
			{Key: "localField", Value: "faa"},
			{Key: "foreignField", Value: "sourceairport"},
			{Key: "as", Value: "route"},
		}}},
		{{Key: "$unwind", Value: "$route"}},
		{{Key: "$match", Value: bson.D{{Key: "route.stops", Value: 0}}}},
		{{Key: "$group", Value: bson.D{{Key: "_id", Value: "$route.destinationairport"}}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		{{Key: "$skip", Value: offset}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.airports.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to query direct connections for %s: %w", airportCode, err)
	}

	rows, err := decodeAll[struct {
		Code string `bson:"_id"`
	}](ctx, cursor)
	if err != nil {
		return nil, err
	}

	codes := make([]string, 0, len(rows))
	for _, row := range rows {
		codes = append(codes, row.Code)
	}
	return codes, nil
}

func (r *mongoAirportRepository) BulkUpsert(ctx context.Context, airports []model.Airport) error {
	models := make([]mongo.WriteModel, 0, len(airports))
	for i := range airports {
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": airports[i].ID}).
			SetReplacement(airports[i]).
			SetUpsert(true))
	}
	return bulkWrite(ctx, r.airports, models)
}

// mongoRouteRepository implements RouteRepository
type mongoRouteRepository struct {
	routes *mongo.Collection
}

func (r *mongoRouteRepository) Find(ctx context.Context, id string) (*model.Route, error) {
	return findByID[model.Route](ctx, r.routes, id)
}

func (r *mongoRouteRepository) Insert(ctx context.Context, id string, route *model.Route) error {
	return insertByID(ctx, r.routes, id, route)
}

func (r *mongoRouteRepository) Replace(ctx context.Context, id string, route *model.Route) error {
	return replaceByID(ctx, r.routes, id, route)
}

func (r *mongoRouteRepository) Remove(ctx context.Context, id string) error {
	return removeByID(ctx, r.routes, id)
}

func (r *mongoRouteRepository) BulkUpsert(ctx context.Context, routes []model.Route) error {
	models := make([]mongo.WriteModel, 0, len(routes))
	for i := range routes {
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": routes[i].ID}).
			SetReplacement(routes[i]).
			SetUpsert(true))
	}
	return bulkWrite(ctx, r.routes, models)
}

func bulkWrite(ctx context.Context, coll *mongo.Collection, models []mongo.WriteModel) error {
	if len(models) == 0 {
		return nil
	}
	if _, err := coll.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false)); err != nil {
		return fmt.Errorf("failed to bulk write %s: %w", coll.Name(), err)
	}
	return nil
}
