// internal/repository/restaurant_repo.go
package repository

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"foodrec/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a lookup matches no documents. Handlers map it
// to 404; everything else is an I/O failure.
var ErrNotFound = errors.New("not found")

const localityUnknown = "Unknown"

type RestaurantRepository struct {
	col *mongo.Collection
}

func NewRestaurantRepository(mdb *mongo.Database) *RestaurantRepository {
	return &RestaurantRepository{col: mdb.Collection("restaurants")}
}

// ciExact builds a case-insensitive whole-string match for a user supplied
// value.
func ciExact(value string) bson.M {
	return bson.M{
		"$regex":   "^" + regexp.QuoteMeta(strings.TrimSpace(value)) + "$",
		"$options": "i",
	}
}

// CanonicalCity resolves the stored spelling of a city: exact match first,
// then case-insensitive. ErrNotFound when the city is absent entirely.
func (r *RestaurantRepository) CanonicalCity(ctx context.Context, city string) (string, error) {
	var doc models.RestaurantDoc

	err := r.col.FindOne(ctx, bson.M{"city": city}).Decode(&doc)
	if err == nil {
		return doc.City, nil
	}
	if err != mongo.ErrNoDocuments {
		return "", err
	}

	err = r.col.FindOne(ctx, bson.M{"city": ciExact(city)}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return doc.City, nil
}

// FindByCity returns every restaurant in a city: exact match first, retried
// case-insensitively. ErrNotFound when both come back empty.
func (r *RestaurantRepository) FindByCity(ctx context.Context, city string) ([]models.RestaurantDoc, error) {
	out, err := r.findAll(ctx, bson.M{"city": city})
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		out, err = r.findAll(ctx, bson.M{"city": ciExact(city)})
		if err != nil {
			return nil, err
		}
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}

func (r *RestaurantRepository) findAll(ctx context.Context, filter bson.M) ([]models.RestaurantDoc, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.RestaurantDoc
	for cur.Next(ctx) {
		var doc models.RestaurantDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, cur.Err()
}

// DistinctCities lists every city present in the collection.
func (r *RestaurantRepository) DistinctCities(ctx context.Context) ([]string, error) {
	return r.distinctStrings(ctx, "city", bson.M{})
}

// DistinctLocalities lists the localities of a city, excluding the "Unknown"
// sentinel the importer writes for records without one.
func (r *RestaurantRepository) DistinctLocalities(ctx context.Context, city string) ([]string, error) {
	return r.distinctStrings(ctx, "locality", bson.M{
		"city":     city,
		"locality": bson.M{"$ne": localityUnknown},
	})
}

func (r *RestaurantRepository) distinctStrings(ctx context.Context, field string, filter bson.M) ([]string, error) {
	values, err := r.col.Distinct(ctx, field, filter)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

// CuisinePopularity groups all cuisine tokens of a city (one record counts
// once per cuisine it lists) and returns the top 20 by count × average rating.
func (r *RestaurantRepository) CuisinePopularity(ctx context.Context, city string) ([]models.CuisineStat, error) {
	pipeline := bson.A{
		bson.D{{Key: "$match", Value: bson.D{{Key: "city", Value: city}}}},
		bson.D{{Key: "$unwind", Value: "$cuisines"}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$cuisines"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "avg_rating", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
		}}},
		bson.D{{Key: "$addFields", Value: bson.D{
			{Key: "popularity_score", Value: bson.D{{Key: "$multiply", Value: bson.A{"$count", "$avg_rating"}}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "popularity_score", Value: -1}}}},
		bson.D{{Key: "$limit", Value: 20}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.CuisineStat
	for cur.Next(ctx) {
		var stat models.CuisineStat
		if err := cur.Decode(&stat); err != nil {
			return nil, err
		}
		out = append(out, stat)
	}
	return out, cur.Err()
}

// CountByCity counts the restaurants of one city.
func (r *RestaurantRepository) CountByCity(ctx context.Context, city string) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"city": city})
}

// CountAll counts the whole collection, for the health endpoint.
func (r *RestaurantRepository) CountAll(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
