package models

// UnboundedBudget is the sentinel meaning "no budget filter". Any budget_max
// at or above it must never be treated as a real upper bound.
const UnboundedBudget = 99999

// CityRequest is the body of POST /api/city/search.
type CityRequest struct {
	City string `json:"city" validate:"required"`
}

// RecommendationRequest is the body of POST /api/restaurants/recommend.
// Zero coordinates mean "no GPS"; an empty area means "no area filter".
type RecommendationRequest struct {
	City            string  `json:"city" validate:"required"`
	Area            string  `json:"area"`
	Latitude        float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude       float64 `json:"longitude" validate:"gte=-180,lte=180"`
	TastePreference string  `json:"taste_preference"`
	BudgetMin       int     `json:"budget_min" validate:"gte=0"`
	BudgetMax       int     `json:"budget_max" validate:"gte=0"`
}

// ApplyDefaults fills the documented request defaults in place.
func (r *RecommendationRequest) ApplyDefaults() {
	if r.TastePreference == "" {
		r.TastePreference = "spicy"
	}
	if r.BudgetMax == 0 {
		r.BudgetMax = UnboundedBudget
	}
}

// HasGPS reports whether the caller provided usable coordinates.
func (r *RecommendationRequest) HasGPS() bool {
	return r.Latitude != 0 && r.Longitude != 0
}

// BudgetUnbounded reports whether the budget stage must be a no-op.
func (r *RecommendationRequest) BudgetUnbounded() bool {
	return r.BudgetMax >= UnboundedBudget
}

// FamousFood is one entry of the famous-foods summary.
type FamousFood struct {
	Name            string  `json:"name"`
	CuisineType     string  `json:"cuisine_type"`
	PopularityScore float64 `json:"popularity_score"`
}

// CitySearchResponse is the body returned by POST /api/city/search.
type CitySearchResponse struct {
	City             string       `json:"city"`
	FamousFoods      []FamousFood `json:"famous_foods"`
	TotalRestaurants int64        `json:"total_restaurants"`
}

// RestaurantResponse is one entry of the recommendation list. DistanceKm is a
// display label ("1.2 km", or "Nearby" when the caller has no GPS).
type RestaurantResponse struct {
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	DistanceKm  string  `json:"distance_km"`
	Cuisine     string  `json:"cuisine"`
	BestDish    string  `json:"best_dish"`
	FamousFor   string  `json:"famous_for"`
	SpicyLevel  string  `json:"spicy_level"`
	FoodType    string  `json:"food_type"`
	PriceRange  string  `json:"price_range"`
	CostForTwo  int     `json:"cost_for_two"`
	Rating      float64 `json:"rating"`
	Votes       int     `json:"votes"`
	OpeningTime string  `json:"opening_time"`
	ClosingTime string  `json:"closing_time"`
	IsOpen      bool    `json:"is_open"`
	MapLink     string  `json:"map_link"`
	AIScore     float64 `json:"ai_score"`
}

// CitiesResponse is the body of GET /api/cities.
type CitiesResponse struct {
	Cities []string `json:"cities"`
}

// AreasResponse is the body of GET /api/areas.
type AreasResponse struct {
	City  string   `json:"city"`
	Areas []string `json:"areas"`
}

// CuisineStat is one row of the cuisine popularity aggregation: how many
// restaurants list the cuisine and their mean rating.
type CuisineStat struct {
	Cuisine         string  `json:"cuisine"           bson:"_id"`
	Count           int     `json:"count"             bson:"count"`
	AvgRating       float64 `json:"avg_rating"        bson:"avg_rating"`
	PopularityScore float64 `json:"popularity_score"  bson:"popularity_score"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	API              string `json:"api"`
	Database         string `json:"database"`
	PlacesAPI        string `json:"places_api"`
	Cache            string `json:"cache"`
	TotalRestaurants int64  `json:"total_restaurants"`
}
