// Package geo provides the great-circle distance used by the recommendation
// pipeline.
package geo

import "math"

const (
	earthRadiusKm = 6371.0

	// FallbackKm is returned for degenerate coordinates. Treating broken
	// input as "medium distance" keeps the record rankable instead of
	// failing the request.
	FallbackKm = 5.0
)

// Distance returns the haversine distance in kilometers between two points.
// Invalid coordinates (NaN, Inf, out of range) yield FallbackKm.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	if !validCoord(lat1, lon1) || !validCoord(lat2, lon2) {
		return FallbackKm
	}

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func validCoord(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
