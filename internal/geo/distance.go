// Package geo provides the distance and country-name lookups used by location matching.
package geo

import (
	"math"

	"github.com/jonathan/lingua-match/internal/types"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between two points using the haversine formula.
func DistanceKm(a, b types.Coordinates) float64 {
	dLat := toRadians(b.Lat - a.Lat)
	dLon := toRadians(b.Lon - a.Lon)
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1)*math.Cos(lat2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c
}

// DistanceBetween returns the distance between two users when both have coordinates.
func DistanceBetween(a, b *types.UserProfile) (float64, bool) {
	if a.Coordinates == nil || b.Coordinates == nil {
		return 0, false
	}
	return DistanceKm(*a.Coordinates, *b.Coordinates), true
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
