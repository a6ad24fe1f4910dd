package service

import (
	"context"
	"testing"

	"foodrec/internal/cache"
	"foodrec/internal/config"
	"foodrec/internal/models"
	"foodrec/internal/repository"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func foodNames(foods []models.FamousFood) []string {
	out := make([]string, 0, len(foods))
	for _, f := range foods {
		out = append(out, f.Name)
	}
	return out
}

func TestMergeFamousFoods(t *testing.T) {
	stats := []models.CuisineStat{
		{Cuisine: "North Indian", Count: 40, AvgRating: 4.0, PopularityScore: 160},
		{Cuisine: "Hyderabadi Biryani", Count: 30, AvgRating: 4.5, PopularityScore: 135.456},
		{Cuisine: "Chinese", Count: 30, AvgRating: 4.0, PopularityScore: 120},
		{Cuisine: "South Indian", Count: 25, AvgRating: 4.2, PopularityScore: 105},
		{Cuisine: "Andhra", Count: 20, AvgRating: 4.4, PopularityScore: 88},
		{Cuisine: "Cafe", Count: 18, AvgRating: 4.1, PopularityScore: 73.8},
		{Cuisine: "Desserts", Count: 15, AvgRating: 4.3, PopularityScore: 64.5},
		{Cuisine: "Street Food", Count: 12, AvgRating: 4.37, PopularityScore: 52.44},
	}
	mustShow := []string{"Biryani", "South Indian", "Haleem", "Andhra", "Cafe"}

	got := mergeFamousFoods(stats, mustShow)

	// matchable priority cuisines first, in priority order, then popularity
	// fills up to the cap; Haleem has no match and contributes nothing
	require.Equal(t, []string{
		"Hyderabadi Biryani", "South Indian", "Andhra", "Cafe",
		"North Indian", "Chinese", "Desserts",
	}, foodNames(got))

	for _, f := range got {
		require.Equal(t, f.Name, f.CuisineType)
	}
	require.InDelta(t, 135.46, got[0].PopularityScore, 1e-9)
	require.InDelta(t, 73.8, got[3].PopularityScore, 1e-9)
}

func TestMergeFamousFoodsExactBeatsSubstring(t *testing.T) {
	stats := []models.CuisineStat{
		{Cuisine: "Biryani House Special", PopularityScore: 99},
		{Cuisine: "Biryani", PopularityScore: 10},
	}
	got := mergeFamousFoods(stats, []string{"Biryani"})
	require.Equal(t, []string{"Biryani", "Biryani House Special"}, foodNames(got))
}

func TestMergeFamousFoodsSubstringIsCaseInsensitive(t *testing.T) {
	// the exact pass is case sensitive, so a lowercase priority entry only
	// matches by substring, and the best ranked substring hit wins
	stats := []models.CuisineStat{
		{Cuisine: "Best biryani corner", PopularityScore: 50},
		{Cuisine: "Biryani", PopularityScore: 40},
	}
	got := mergeFamousFoods(stats, []string{"biryani"})
	require.Equal(t, "Best biryani corner", got[0].Name)
}

func TestMergeFamousFoodsNoDuplicates(t *testing.T) {
	stats := []models.CuisineStat{{Cuisine: "Biryani", PopularityScore: 12}}
	got := mergeFamousFoods(stats, []string{"Biryani", "Biryani"})
	require.Len(t, got, 1)
}

func TestMergeFamousFoodsCap(t *testing.T) {
	var stats []models.CuisineStat
	for _, c := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"} {
		stats = append(stats, models.CuisineStat{Cuisine: c, PopularityScore: float64(100 - len(stats))})
	}
	got := mergeFamousFoods(stats, nil)
	require.Equal(t, []string{"A", "B", "C", "D", "E", "F", "G"}, foodNames(got))

	require.Empty(t, mergeFamousFoods(nil, []string{"Biryani"}))
}

func TestCityServiceSearch(t *testing.T) {
	var docs []models.RestaurantDoc
	for i := 0; i < 5; i++ {
		docs = append(docs, mkDoc("N", "Madhapur", models.SpicyMedium, 500, 4.0, "North Indian"))
	}
	for i := 0; i < 3; i++ {
		docs = append(docs, mkDoc("B", "Secunderabad", models.SpicyHigh, 550, 4.5, "Biryani"))
	}
	for i := 0; i < 2; i++ {
		docs = append(docs, mkDoc("C", "Lakdikapul", models.SpicyLow, 250, 4.0, "Cafe"))
	}

	nop := zap.NewNop().Sugar()
	cities, err := config.NewCityTable("", nop)
	require.NoError(t, err)
	svc := NewCityService(&fakeStore{docs: docs}, cities, &cache.Cache{}, nop)

	resp, err := svc.Search(context.Background(), "hyderabad")
	require.NoError(t, err)
	require.Equal(t, "Hyderabad", resp.City)
	require.Equal(t, int64(10), resp.TotalRestaurants)

	// Biryani and Cafe are must-show for Hyderabad and lead in that order,
	// then the remaining cuisine fills by popularity
	require.Equal(t, []string{"Biryani", "Cafe", "North Indian"}, foodNames(resp.FamousFoods))
	require.InDelta(t, 13.5, resp.FamousFoods[0].PopularityScore, 1e-9)
}

func TestCityServiceSearchUnknownCity(t *testing.T) {
	nop := zap.NewNop().Sugar()
	cities, err := config.NewCityTable("", nop)
	require.NoError(t, err)
	svc := NewCityService(&fakeStore{}, cities, &cache.Cache{}, nop)

	_, err = svc.Search(context.Background(), "Atlantis")
	require.ErrorIs(t, err, repository.ErrNotFound)
}
