package models

import "strings"

// Spicy levels as stored in the dataset.
const (
	SpicyLow    = "Low"
	SpicyMedium = "Medium"
	SpicyHigh   = "High"
)

// RestaurantDoc is one restaurant document in the "restaurants" collection.
// All numeric fields are guaranteed present after import (ApplyDefaults).
type RestaurantDoc struct {
	Name          string   `json:"name"            bson:"name"`
	City          string   `json:"city"            bson:"city"`
	Address       string   `json:"address"         bson:"address"`
	Locality      string   `json:"locality"        bson:"locality"`
	Cuisines      []string `json:"cuisines"        bson:"cuisines"`
	CostForTwo    int      `json:"cost_for_two"    bson:"cost_for_two"`
	Rating        float64  `json:"rating"          bson:"rating"`
	Latitude      float64  `json:"latitude"        bson:"latitude"`
	Longitude     float64  `json:"longitude"       bson:"longitude"`
	Votes         int      `json:"votes"           bson:"votes"`
	BestDish      string   `json:"best_dish"       bson:"best_dish"`
	FamousFor     string   `json:"famous_for"      bson:"famous_for"`
	SpicyLevel    string   `json:"spicy_level"     bson:"spicy_level"`
	PriceCategory string   `json:"price_category"  bson:"price_category"`
	OpeningTime   string   `json:"opening_time"    bson:"opening_time"`
	ClosingTime   string   `json:"closing_time"    bson:"closing_time"`
	OpenNow       string   `json:"open_now"        bson:"open_now"`
	FoodType      string   `json:"food_type"       bson:"food_type"`
	ReviewsText   string   `json:"reviews_text"    bson:"reviews_text"`
}

// CityProfile holds the per-city configuration: the must-show cuisines for the
// famous-foods summary, the centroid used when a record has no coordinates, and
// the display defaults applied at import time.
type CityProfile struct {
	City               string   `json:"city"`
	MustShowCuisines   []string `json:"must_show_cuisines"`
	CentroidLatitude   float64  `json:"centroid_latitude"`
	CentroidLongitude  float64  `json:"centroid_longitude"`
	DefaultOpeningTime string   `json:"default_opening_time"`
	DefaultClosingTime string   `json:"default_closing_time"`
	FallbackAddress    string   `json:"fallback_address"`
}

// ApplyDefaults fills every missing field the way the import pipeline promises:
// after this call all numeric fields are set and string fields are non-empty
// (except the free-text ones, which default to ""). Every default noted in the
// data model lives here and nowhere else.
func (r *RestaurantDoc) ApplyDefaults(p CityProfile) {
	if strings.TrimSpace(r.Name) == "" {
		r.Name = "Unknown"
	}
	if strings.TrimSpace(r.City) == "" {
		r.City = p.City
	}
	if strings.TrimSpace(r.Address) == "" {
		if strings.TrimSpace(r.Locality) != "" {
			r.Address = r.Locality
		} else {
			r.Address = p.FallbackAddress
		}
	}
	if strings.TrimSpace(r.Locality) == "" {
		r.Locality = "Unknown"
	}
	if len(r.Cuisines) == 0 {
		r.Cuisines = []string{"Not specified"}
	}
	if r.CostForTwo <= 0 {
		r.CostForTwo = 500
	}
	if r.Rating < 0 {
		r.Rating = 0
	}
	if r.Latitude == 0 {
		r.Latitude = p.CentroidLatitude
	}
	if r.Longitude == 0 {
		r.Longitude = p.CentroidLongitude
	}
	if r.Votes < 0 {
		r.Votes = 0
	}
	if strings.TrimSpace(r.SpicyLevel) == "" {
		r.SpicyLevel = SpicyMedium
	}
	if strings.TrimSpace(r.PriceCategory) == "" {
		r.PriceCategory = PriceRange(r.CostForTwo)
	}
	if strings.TrimSpace(r.OpeningTime) == "" {
		r.OpeningTime = p.DefaultOpeningTime
	}
	if strings.TrimSpace(r.ClosingTime) == "" {
		r.ClosingTime = p.DefaultClosingTime
	}
	if strings.TrimSpace(r.OpenNow) == "" {
		r.OpenNow = "Yes"
	}
	if strings.TrimSpace(r.FoodType) == "" {
		r.FoodType = "Mixed"
	}
}

// CleanCuisines splits a comma separated cuisine string into trimmed,
// non-empty tokens.
func CleanCuisines(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// PriceRange derives the price symbol from cost tiers. Used when the record
// carries no price_category of its own.
func PriceRange(costForTwo int) string {
	switch {
	case costForTwo < 300:
		return "₹"
	case costForTwo < 800:
		return "₹₹"
	case costForTwo < 1500:
		return "₹₹₹"
	default:
		return "₹₹₹₹"
	}
}

// RankedCandidate is a restaurant augmented with the per-request computed
// fields. It only lives between the filter stages and response assembly.
type RankedCandidate struct {
	RestaurantDoc
	DistanceKm float64
	AIScore    float64
}
