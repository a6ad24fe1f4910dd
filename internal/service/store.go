// internal/service/store.go
package service

import (
	"context"

	"foodrec/internal/models"
)

// RestaurantStore is the read surface of the restaurant collection the
// services depend on. *repository.RestaurantRepository satisfies it.
type RestaurantStore interface {
	CanonicalCity(ctx context.Context, city string) (string, error)
	FindByCity(ctx context.Context, city string) ([]models.RestaurantDoc, error)
	DistinctCities(ctx context.Context) ([]string, error)
	DistinctLocalities(ctx context.Context, city string) ([]string, error)
	CuisinePopularity(ctx context.Context, city string) ([]models.CuisineStat, error)
	CountByCity(ctx context.Context, city string) (int64, error)
	CountAll(ctx context.Context) (int64, error)
}
