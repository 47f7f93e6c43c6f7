package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistanceSelfIsZero(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{55.7522, 37.6156},
		{-33.8688, 151.2093},
		{90, 0},
	}

	for _, p := range points {
		assert.Zero(t, HaversineDistanceKm(p[0], p[1], p[0], p[1]))
	}
}

func TestHaversineDistanceSymmetry(t *testing.T) {
	ab := HaversineDistanceKm(55.7522, 37.6156, 59.9316, 30.3609)
	ba := HaversineDistanceKm(59.9316, 30.3609, 55.7522, 37.6156)

	assert.Equal(t, ab, ba)
}

func TestHaversineDistanceKnownCities(t *testing.T) {
	// Moscow to Saint Petersburg, roughly 630 km
	distance := HaversineDistanceKm(55.7522, 37.6156, 59.9316, 30.3609)

	assert.InDelta(t, 632.0, distance, 10.0)
}

func TestBoundingBoxZeroRadius(t *testing.T) {
	minLat, maxLat, minLon, maxLon := BoundingBox(55.7522, 37.6156, 0)

	// Degenerate box collapses to the center point
	assert.Equal(t, 55.7522, minLat)
	assert.Equal(t, 55.7522, maxLat)
	assert.Equal(t, 37.6156, minLon)
	assert.Equal(t, 37.6156, maxLon)
}

func TestBoundingBoxCoversRadius(t *testing.T) {
	centerLat, centerLon := 55.7522, 37.6156
	radiusKm := 50.0

	minLat, maxLat, minLon, maxLon := BoundingBox(centerLat, centerLon, radiusKm)

	assert.Less(t, minLat, centerLat)
	assert.Greater(t, maxLat, centerLat)
	assert.Less(t, minLon, centerLon)
	assert.Greater(t, maxLon, centerLon)

	// The box edges must be at least the radius away from the center
	assert.GreaterOrEqual(t, HaversineDistanceKm(centerLat, centerLon, maxLat, centerLon), radiusKm-0.1)
	assert.GreaterOrEqual(t, HaversineDistanceKm(centerLat, centerLon, minLat, centerLon), radiusKm-0.1)
	assert.GreaterOrEqual(t, HaversineDistanceKm(centerLat, centerLon, centerLat, maxLon), radiusKm-0.1)
	assert.GreaterOrEqual(t, HaversineDistanceKm(centerLat, centerLon, centerLat, minLon), radiusKm-0.1)
}

func TestBoundingBoxIsNotClamped(t *testing.T) {
	// A huge radius around a high-latitude center runs past the valid
	// coordinate ranges; the box is intentionally left unclamped.
	minLat, maxLat, _, maxLon := BoundingBox(89.0, 0, 5000.0)

	assert.Greater(t, maxLat, 90.0)
	assert.Less(t, minLat, 89.0)
	assert.Greater(t, maxLon, 180.0)
}
