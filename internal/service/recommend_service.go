// internal/service/recommend_service.go
package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"foodrec/internal/config"
	"foodrec/internal/geo"
	"foodrec/internal/models"
	"foodrec/internal/places"

	"go.uber.org/zap"
)

const (
	// MaxResults caps the ranked list handed to enrichment.
	MaxResults = 20

	// minViable is the smallest result set worth keeping before a filter
	// stage relaxes itself.
	minViable = 3

	nearRadiusKm   = 10.0
	farRadiusKm    = 20.0
	budgetRelaxINR = 500
)

// Keyword fallbacks for the taste stage, matched against the joined cuisine
// text when no spicy_level survives the primary filter.
var (
	spicyKeywords = []string{"andhra", "biryani", "chettinad", "schezwan", "spicy"}
	mildKeywords  = []string{"cafe", "bakery", "desserts", "continental", "south indian"}
)

type RecommendService struct {
	store  RestaurantStore
	cities *config.CityTable
	places *places.Client
	log    *zap.SugaredLogger
}

func NewRecommendService(store RestaurantStore, cities *config.CityTable, pl *places.Client, log *zap.SugaredLogger) *RecommendService {
	return &RecommendService{store: store, cities: cities, places: pl, log: log}
}

// ====== Candidate pipeline ======

// Recommend runs the filter pipeline over one city and returns the ranked
// top candidates. Enrichment and projection live in BuildResponse so that
// streaming callers can emit one record at a time.
func (s *RecommendService) Recommend(ctx context.Context, req models.RecommendationRequest) ([]models.RankedCandidate, error) {
	req.ApplyDefaults()

	// 1) City
	set, err := s.store.FindByCity(ctx, req.City)
	if err != nil {
		return nil, fmt.Errorf("loading city %q: %w", req.City, err)
	}
	total := len(set)

	// 2) Area, 3) Budget, 4) Taste. Each stage falls back to its input
	// rather than emptying the working set.
	set = filterByArea(set, req.Area)
	set = filterByBudget(set, req)
	set = filterByTaste(set, req.TastePreference)

	// 5) Distance staging, only with GPS
	cands := attachDistance(set, req, s.cities.Lookup(req.City))
	if req.HasGPS() {
		cands = stageByDistance(cands)
	}

	if len(cands) == 0 {
		return nil, fmt.Errorf("no candidates in %q: %w", req.City, ErrNoResults)
	}

	// 6) Score, rank, truncate
	for i := range cands {
		cands[i].AIScore = aiScore(cands[i], req)
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].AIScore > cands[j].AIScore })
	if len(cands) > MaxResults {
		cands = cands[:MaxResults]
	}

	s.log.Infof("[recommend] city=%s area=%q taste=%s gps=%t candidates=%d/%d",
		req.City, req.Area, req.TastePreference, req.HasGPS(), len(cands), total)
	return cands, nil
}

// filterByArea keeps locality matches: exact first, then substring, both
// case-insensitive. No match at all keeps the whole city set.
func filterByArea(set []models.RestaurantDoc, area string) []models.RestaurantDoc {
	area = strings.TrimSpace(area)
	if area == "" {
		return set
	}

	var exact []models.RestaurantDoc
	for _, r := range set {
		if strings.EqualFold(r.Locality, area) {
			exact = append(exact, r)
		}
	}
	if len(exact) > 0 {
		return exact
	}

	needle := strings.ToLower(area)
	var sub []models.RestaurantDoc
	for _, r := range set {
		if strings.Contains(strings.ToLower(r.Locality), needle) {
			sub = append(sub, r)
		}
	}
	if len(sub) > 0 {
		return sub
	}
	return set
}

// filterByBudget keeps cost_for_two within [min, max]. Under minViable hits
// it retries with max+budgetRelaxINR as the only bound; an empty relaxed set
// keeps the input. The sentinel budget skips the stage entirely.
func filterByBudget(set []models.RestaurantDoc, req models.RecommendationRequest) []models.RestaurantDoc {
	if req.BudgetUnbounded() {
		return set
	}

	var strict []models.RestaurantDoc
	for _, r := range set {
		if r.CostForTwo >= req.BudgetMin && r.CostForTwo <= req.BudgetMax {
			strict = append(strict, r)
		}
	}
	if len(strict) >= minViable {
		return strict
	}

	var relaxed []models.RestaurantDoc
	for _, r := range set {
		if r.CostForTwo <= req.BudgetMax+budgetRelaxINR {
			relaxed = append(relaxed, r)
		}
	}
	if len(relaxed) > 0 {
		return relaxed
	}
	return set
}

// filterByTaste keeps "High" spicy levels for a spicy preference and
// "Low"/"Medium" for everything else. When the level filter strikes out it
// retries against the cuisine text with the branch's keyword list.
func filterByTaste(set []models.RestaurantDoc, pref string) []models.RestaurantDoc {
	wantSpicy := strings.EqualFold(strings.TrimSpace(pref), "spicy")

	var primary []models.RestaurantDoc
	for _, r := range set {
		if wantSpicy {
			if r.SpicyLevel == models.SpicyHigh {
				primary = append(primary, r)
			}
		} else if r.SpicyLevel == models.SpicyLow || r.SpicyLevel == models.SpicyMedium {
			primary = append(primary, r)
		}
	}
	if len(primary) > 0 {
		return primary
	}

	keywords := mildKeywords
	if wantSpicy {
		keywords = spicyKeywords
	}
	var matched []models.RestaurantDoc
	for _, r := range set {
		joined := strings.ToLower(strings.Join(r.Cuisines, " "))
		for _, k := range keywords {
			if strings.Contains(joined, k) {
				matched = append(matched, r)
				break
			}
		}
	}
	if len(matched) > 0 {
		return matched
	}
	return set
}

// attachDistance turns records into candidates. Without GPS every distance is
// 0.0 and the response labels it "Nearby"; with GPS, zero coordinates on a
// record fall back to the city centroid before measuring.
func attachDistance(set []models.RestaurantDoc, req models.RecommendationRequest, profile models.CityProfile) []models.RankedCandidate {
	cands := make([]models.RankedCandidate, 0, len(set))
	for _, r := range set {
		d := 0.0
		if req.HasGPS() {
			lat, lon := r.Latitude, r.Longitude
			if lat == 0 {
				lat = profile.CentroidLatitude
			}
			if lon == 0 {
				lon = profile.CentroidLongitude
			}
			d = geo.Distance(req.Latitude, req.Longitude, lat, lon)
		}
		cands = append(cands, models.RankedCandidate{RestaurantDoc: r, DistanceKm: d})
	}
	return cands
}

// stageByDistance prefers close candidates without emptying the set: within
// nearRadiusKm when that leaves at least minViable, else within farRadiusKm,
// else everyone.
func stageByDistance(cands []models.RankedCandidate) []models.RankedCandidate {
	if near := withinKm(cands, nearRadiusKm); len(near) >= minViable {
		return near
	}
	if far := withinKm(cands, farRadiusKm); len(far) > 0 {
		return far
	}
	return cands
}

func withinKm(cands []models.RankedCandidate, radius float64) []models.RankedCandidate {
	var out []models.RankedCandidate
	for _, c := range cands {
		if c.DistanceKm <= radius {
			out = append(out, c)
		}
	}
	return out
}

// aiScore blends normalized rating, proximity and budget fit with fixed
// weights plus a 0.15 baseline. The result stays within [0.15, 1.0].
func aiScore(c models.RankedCandidate, req models.RecommendationRequest) float64 {
	ratingScore := c.Rating / 5.0
	distanceScore := math.Max(0, 1.0-c.DistanceKm/farRadiusKm)

	budgetScore := 0.8
	if !req.BudgetUnbounded() {
		mid := float64(req.BudgetMin+req.BudgetMax) / 2.0
		diff := math.Abs(float64(c.CostForTwo) - mid)
		switch {
		case diff < 200:
			budgetScore = 1.0
		case diff < 500:
			budgetScore = 0.7
		default:
			budgetScore = 0.4
		}
	}

	return 0.35*ratingScore + 0.30*distanceScore + 0.20*budgetScore + 0.15
}

// ====== Response assembly ======

// BuildResponse assembles the display record for one candidate, including
// the single-attempt maps enrichment. Enrichment failure degrades to the
// stored open_now flag and a search link.
func (s *RecommendService) BuildResponse(ctx context.Context, c models.RankedCandidate, hasGPS bool) models.RestaurantResponse {
	isOpen := strings.EqualFold(c.OpenNow, "Yes")
	mapLink := places.SearchLink(c.Name, c.City)
	if res, ok := s.places.Find(ctx, c.Name, c.Address, c.City); ok {
		mapLink = places.PlaceLink(res.PlaceID)
		if res.OpenNow != nil {
			isOpen = *res.OpenNow
		}
	}

	label := "Nearby"
	if hasGPS && c.DistanceKm > 0 {
		label = fmt.Sprintf("%.1f km", c.DistanceKm)
	}

	priceRange := c.PriceCategory
	if priceRange == "" {
		priceRange = models.PriceRange(c.CostForTwo)
	}

	return models.RestaurantResponse{
		Name:        c.Name,
		Address:     c.Address,
		DistanceKm:  label,
		Cuisine:     strings.Join(c.Cuisines, ", "),
		BestDish:    c.BestDish,
		FamousFor:   c.FamousFor,
		SpicyLevel:  c.SpicyLevel,
		FoodType:    c.FoodType,
		PriceRange:  priceRange,
		CostForTwo:  c.CostForTwo,
		Rating:      c.Rating,
		Votes:       c.Votes,
		OpeningTime: c.OpeningTime,
		ClosingTime: c.ClosingTime,
		IsOpen:      isOpen,
		MapLink:     mapLink,
		AIScore:     math.Round(c.AIScore*100) / 100,
	}
}

// BuildResponses enriches candidates in order. Sequential on purpose: every
// lookup carries its own short timeout and the list is capped at MaxResults.
func (s *RecommendService) BuildResponses(ctx context.Context, cands []models.RankedCandidate, hasGPS bool) []models.RestaurantResponse {
	out := make([]models.RestaurantResponse, 0, len(cands))
	for _, c := range cands {
		out = append(out, s.BuildResponse(ctx, c, hasGPS))
	}
	return out
}
