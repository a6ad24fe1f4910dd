// internal/service/meta_service.go
package service

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// MetaService serves the small discovery lookups the frontend drives its
// dropdowns with.
type MetaService struct {
	store RestaurantStore
	log   *zap.SugaredLogger
}

func NewMetaService(store RestaurantStore, log *zap.SugaredLogger) *MetaService {
	return &MetaService{store: store, log: log}
}

// Cities lists every known city, sorted.
func (s *MetaService) Cities(ctx context.Context) ([]string, error) {
	cities, err := s.store.DistinctCities(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing cities: %w", err)
	}
	sort.Strings(cities)
	return cities, nil
}

// Areas lists the localities of one city, sorted, under its canonical name.
func (s *MetaService) Areas(ctx context.Context, city string) (string, []string, error) {
	canonical, err := s.store.CanonicalCity(ctx, city)
	if err != nil {
		return "", nil, fmt.Errorf("resolving city %q: %w", city, err)
	}
	areas, err := s.store.DistinctLocalities(ctx, canonical)
	if err != nil {
		return "", nil, fmt.Errorf("listing areas of %q: %w", canonical, err)
	}
	sort.Strings(areas)
	return canonical, areas, nil
}
