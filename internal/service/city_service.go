// internal/service/city_service.go
package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"foodrec/internal/cache"
	"foodrec/internal/config"
	"foodrec/internal/models"

	"go.uber.org/zap"
)

const (
	famousFoodsCap = 7
	famousFoodsTTL = time.Hour
)

type CityService struct {
	store  RestaurantStore
	cities *config.CityTable
	cache  *cache.Cache
	log    *zap.SugaredLogger
}

func NewCityService(store RestaurantStore, cities *config.CityTable, c *cache.Cache, log *zap.SugaredLogger) *CityService {
	return &CityService{store: store, cities: cities, cache: c, log: log}
}

func famousKey(city string) string {
	return "famous:" + strings.ToLower(city)
}

// Search resolves a city and returns its famous-foods summary plus the
// restaurant count. Summaries are cached for an hour under the canonical
// city name.
func (s *CityService) Search(ctx context.Context, city string) (*models.CitySearchResponse, error) {
	canonical, err := s.store.CanonicalCity(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("resolving city %q: %w", city, err)
	}

	var cached models.CitySearchResponse
	if ok, err := s.cache.GetJSON(ctx, famousKey(canonical), &cached); err == nil && ok {
		return &cached, nil
	}

	stats, err := s.store.CuisinePopularity(ctx, canonical)
	if err != nil {
		return nil, fmt.Errorf("ranking cuisines for %q: %w", canonical, err)
	}
	total, err := s.store.CountByCity(ctx, canonical)
	if err != nil {
		return nil, fmt.Errorf("counting restaurants in %q: %w", canonical, err)
	}

	profile := s.cities.Lookup(canonical)
	resp := &models.CitySearchResponse{
		City:             canonical,
		FamousFoods:      mergeFamousFoods(stats, profile.MustShowCuisines),
		TotalRestaurants: total,
	}

	if err := s.cache.SetJSON(ctx, famousKey(canonical), resp, famousFoodsTTL); err != nil {
		s.log.Warnf("[city] caching famous foods for %s: %v", canonical, err)
	}
	return resp, nil
}

// mergeFamousFoods places every matchable must-show cuisine first, in
// priority order, then fills the remaining slots by popularity. Exact names
// win over substring matches; nothing appears twice; at most famousFoodsCap
// entries come back.
func mergeFamousFoods(stats []models.CuisineStat, mustShow []string) []models.FamousFood {
	used := make(map[string]bool, len(stats))
	var picked []models.CuisineStat

	for _, want := range mustShow {
		idx := -1
		for i, st := range stats {
			if st.Cuisine == want && !used[st.Cuisine] {
				idx = i
				break
			}
		}
		if idx < 0 {
			needle := strings.ToLower(want)
			for i, st := range stats {
				if !used[st.Cuisine] && strings.Contains(strings.ToLower(st.Cuisine), needle) {
					idx = i
					break
				}
			}
		}
		if idx >= 0 {
			picked = append(picked, stats[idx])
			used[stats[idx].Cuisine] = true
		}
	}

	for _, st := range stats {
		if len(picked) >= famousFoodsCap {
			break
		}
		if !used[st.Cuisine] {
			picked = append(picked, st)
			used[st.Cuisine] = true
		}
	}
	if len(picked) > famousFoodsCap {
		picked = picked[:famousFoodsCap]
	}

	out := make([]models.FamousFood, 0, len(picked))
	for _, st := range picked {
		out = append(out, models.FamousFood{
			Name:            st.Cuisine,
			CuisineType:     st.Cuisine,
			PopularityScore: math.Round(st.PopularityScore*100) / 100,
		})
	}
	return out
}
