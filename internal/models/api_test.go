package models

import "testing"

func TestRecommendationRequestApplyDefaults(t *testing.T) {
	r := RecommendationRequest{City: "Hyderabad"}
	r.ApplyDefaults()

	if r.TastePreference != "spicy" {
		t.Errorf("TastePreference = %q, want spicy", r.TastePreference)
	}
	if r.BudgetMax != UnboundedBudget {
		t.Errorf("BudgetMax = %d, want the sentinel %d", r.BudgetMax, UnboundedBudget)
	}

	r = RecommendationRequest{City: "Hyderabad", TastePreference: "mild", BudgetMax: 800}
	r.ApplyDefaults()
	if r.TastePreference != "mild" || r.BudgetMax != 800 {
		t.Errorf("defaults overwrote provided values: %+v", r)
	}
}

func TestHasGPS(t *testing.T) {
	tests := []struct {
		lat, lon float64
		want     bool
	}{
		{0, 0, false},
		{17.4, 0, false},
		{0, 78.5, false},
		{17.4, 78.5, true},
		{-33.9, 151.2, true},
	}
	for _, tt := range tests {
		r := RecommendationRequest{Latitude: tt.lat, Longitude: tt.lon}
		if got := r.HasGPS(); got != tt.want {
			t.Errorf("HasGPS(%f, %f) = %t, want %t", tt.lat, tt.lon, got, tt.want)
		}
	}
}

func TestBudgetUnbounded(t *testing.T) {
	tests := []struct {
		max  int
		want bool
	}{
		{UnboundedBudget, true},
		{UnboundedBudget + 1, true},
		{UnboundedBudget - 1, false},
		{800, false},
	}
	for _, tt := range tests {
		r := RecommendationRequest{BudgetMax: tt.max}
		if got := r.BudgetUnbounded(); got != tt.want {
			t.Errorf("BudgetUnbounded(%d) = %t, want %t", tt.max, got, tt.want)
		}
	}
}
