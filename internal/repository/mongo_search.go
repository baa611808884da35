package repository

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/tripfolio/travel-api/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const autocompleteLimit = 50

// mongoHotelRepository implements HotelRepository against the hotel
// collection and its text index over name, title, description, country,
// city and state.
type mongoHotelRepository struct {
	hotels *mongo.Collection
}

func (r *mongoHotelRepository) SearchNames(ctx context.Context, name string) ([]string, error) {
	filter := bson.M{"name": bson.M{
		"$regex":   regexp.QuoteMeta(name),
		"$options": "i",
	}}
	opts := options.Find().
		SetLimit(autocompleteLimit).
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetProjection(bson.M{"name": 1, "_id": 0})

	cursor, err := r.hotels.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search hotel names: %w", err)
	}

	rows, err := decodeAll[struct {
		Name string `bson:"name"`
	}](ctx, cursor)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.Name)
	}
	return names, nil
}

func (r *mongoHotelRepository) Filter(ctx context.Context, f model.HotelFilter, offset, limit int64) ([]model.Hotel, error) {
	// Name narrows to exact matches; the remaining criteria form one
	// $text clause over the indexed fields. Results order by relevance
	// score, with name as the stable tiebreak.
	var clauses []bson.M
	if f.Name != "" {
		clauses = append(clauses, bson.M{"name": f.Name})
	}

	var terms []string
	for _, term := range []string{f.Title, f.Description, f.Country, f.City, f.State} {
		if term != "" {
			terms = append(terms, term)
		}
	}
	if len(terms) > 0 {
		clauses = append(clauses, bson.M{"$text": bson.M{"$search": strings.Join(terms, " ")}})
	}

	filter := bson.M{}
	if len(clauses) > 0 {
		filter["$and"] = clauses
	}

	opts := options.Find().
		SetSkip(offset).
		SetLimit(limit)
	if len(terms) > 0 {
		opts.SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}})
		opts.SetSort(bson.D{
			{Key: "score", Value: bson.M{"$meta": "textScore"}},
			{Key: "name", Value: 1},
		})
	} else {
		opts.SetSort(bson.D{{Key: "name", Value: 1}})
	}

	cursor, err := r.hotels.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to filter hotels: %w", err)
	}
	return decodeAll[model.Hotel](ctx, cursor)
}

func (r *mongoHotelRepository) BulkUpsert(ctx context.Context, hotels []model.Hotel) error {
	models := make([]mongo.WriteModel, 0, len(hotels))
	for i := range hotels {
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"name": hotels[i].Name}).
			SetReplacement(hotels[i]).
			SetUpsert(true))
	}
	return bulkWrite(ctx, r.hotels, models)
}
