// Package geo provides great-circle distance and bounding box helpers used
// by the organization geo search.
package geo

import (
	"math"
)

// EarthRadiusKm is the mean Earth radius used for distance calculations.
const EarthRadiusKm = 6371.0

// HaversineDistanceKm calculates the great-circle distance in kilometers
// between two coordinates given in decimal degrees.
func HaversineDistanceKm(latA, lonA, latB, lonB float64) float64 {
	latARad := latA * math.Pi / 180
	lonARad := lonA * math.Pi / 180
	latBRad := latB * math.Pi / 180
	lonBRad := lonB * math.Pi / 180

	dLat := latBRad - latARad
	dLon := lonBRad - lonARad

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	a := sinLat*sinLat + math.Cos(latARad)*math.Cos(latBRad)*sinLon*sinLon
	c := 2 * math.Asin(math.Sqrt(a))
	return EarthRadiusKm * c
}

// BoundingBox returns latitude/longitude bounds covering the circle of the
// given radius around the center point. Used as a coarse pre-filter before
// exact distance checks.
//
// The box is not clamped to valid coordinate ranges: large radii or centers
// near the poles may produce bounds beyond ±90/±180. The range query that
// consumes the box simply matches nothing beyond real coordinates.
func BoundingBox(latitude, longitude, radiusKm float64) (minLat, maxLat, minLon, maxLon float64) {
	deltaLat := (radiusKm / EarthRadiusKm) * (180 / math.Pi)
	var deltaLon float64
	if radiusKm != 0 {
		deltaLon = deltaLat / math.Cos(latitude*math.Pi/180)
	}

	return latitude - deltaLat,
		latitude + deltaLat,
		longitude - deltaLon,
		longitude + deltaLon
}
