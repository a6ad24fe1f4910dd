// internal/repository/import_repo.go
package repository

import (
	"context"
	"fmt"

	"foodrec/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ImportRepository struct {
	restaurants *mongo.Collection
	runs        *mongo.Collection
}

func NewImportRepository(mdb *mongo.Database) *ImportRepository {
	return &ImportRepository{
		restaurants: mdb.Collection("restaurants"),
		runs:        mdb.Collection("import_runs"),
	}
}

// ReplaceAll swaps the whole restaurants collection for the given set. The
// importer is the only writer, so delete-then-insert is safe here.
func (r *ImportRepository) ReplaceAll(ctx context.Context, docs []models.RestaurantDoc) (int, error) {
	if _, err := r.restaurants.DeleteMany(ctx, bson.M{}); err != nil {
		return 0, fmt.Errorf("clearing restaurants: %w", err)
	}
	if len(docs) == 0 {
		return 0, nil
	}

	batch := make([]interface{}, len(docs))
	for i := range docs {
		batch[i] = docs[i]
	}
	res, err := r.restaurants.InsertMany(ctx, batch)
	if err != nil {
		return 0, fmt.Errorf("inserting restaurants: %w", err)
	}
	return len(res.InsertedIDs), nil
}

// EnsureIndexes creates the indexes the query paths depend on. Safe to call
// on every import; Mongo treats existing definitions as a no-op.
func (r *ImportRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "city", Value: 1}}},
		{Keys: bson.D{{Key: "locality", Value: 1}}},
		{Keys: bson.D{{Key: "cuisines", Value: 1}}},
		{Keys: bson.D{{Key: "cost_for_two", Value: 1}}},
		{Keys: bson.D{{Key: "rating", Value: -1}}},
		{Keys: bson.D{{Key: "spicy_level", Value: 1}}},
		{Keys: bson.D{{Key: "food_type", Value: 1}}},
	}
	if _, err := r.restaurants.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("creating indexes: %w", err)
	}
	return nil
}

// RecordRun stores the audit record of one completed import.
func (r *ImportRepository) RecordRun(ctx context.Context, run models.ImportRun) error {
	if _, err := r.runs.InsertOne(ctx, run); err != nil {
		return fmt.Errorf("recording import run: %w", err)
	}
	return nil
}
