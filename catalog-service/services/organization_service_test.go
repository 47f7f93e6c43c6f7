package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgcatalog-backend/shared/database/models"
	"orgcatalog-backend/shared/utils/geo"
)

func orgInBuilding(id int, name string, lat, lon float64) models.Organization {
	return models.Organization{
		ID:   id,
		Name: name,
		Building: &models.Building{
			ID:        id,
			Latitude:  lat,
			Longitude: lon,
		},
	}
}

func TestByActivityIDsEmptyInputSkipsStore(t *testing.T) {
	// A nil db would panic on any query; an empty id set must never reach it
	service := NewOrganizationService(nil)

	result, err := service.ByActivityIDs([]int{})

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestSearchByNameEmptyQuerySkipsStore(t *testing.T) {
	service := NewOrganizationService(nil)

	result, err := service.SearchByName("")

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestFilterWithinRadiusKeepsNearbyOrganizations(t *testing.T) {
	organizations := []models.Organization{
		orgInBuilding(1, "Moscow office", 55.7522, 37.6156),
		orgInBuilding(2, "Petersburg office", 59.9316, 30.3609),
		orgInBuilding(3, "Novosibirsk office", 55.0415, 82.9346),
	}

	result := filterWithinRadius(organizations, 55.7522, 37.6156, 100)

	require.Len(t, result, 1)
	assert.Equal(t, 1, result[0].ID)
}

func TestFilterWithinRadiusDiscardsMissingBuilding(t *testing.T) {
	organizations := []models.Organization{
		orgInBuilding(1, "Moscow office", 55.7522, 37.6156),
		{ID: 2, Name: "orphan"},
	}

	result := filterWithinRadius(organizations, 55.7522, 37.6156, 100)

	require.Len(t, result, 1)
	assert.Equal(t, 1, result[0].ID)
}

func TestFilterWithinRadiusBoundaryInclusive(t *testing.T) {
	centerLat, centerLon := 55.7522, 37.6156
	organizations := []models.Organization{
		orgInBuilding(1, "at center", centerLat, centerLon),
	}

	result := filterWithinRadius(organizations, centerLat, centerLon, 0)

	assert.Len(t, result, 1)
}

func TestRadiusResultsSubsetOfBoundingBox(t *testing.T) {
	centerLat, centerLon, radiusKm := 55.7522, 37.6156, 500.0

	organizations := []models.Organization{
		orgInBuilding(1, "Moscow office", 55.7522, 37.6156),
		orgInBuilding(2, "Petersburg office", 59.9316, 30.3609),
		orgInBuilding(3, "Novosibirsk office", 55.0415, 82.9346),
		orgInBuilding(4, "Tver office", 56.8587, 35.9176),
	}

	minLat, maxLat, minLon, maxLon := geo.BoundingBox(centerLat, centerLon, radiusKm)
	within := filterWithinRadius(organizations, centerLat, centerLon, radiusKm)

	for _, organization := range within {
		building := organization.Building
		assert.GreaterOrEqual(t, building.Latitude, minLat)
		assert.LessOrEqual(t, building.Latitude, maxLat)
		assert.GreaterOrEqual(t, building.Longitude, minLon)
		assert.LessOrEqual(t, building.Longitude, maxLon)
		assert.LessOrEqual(t,
			geo.HaversineDistanceKm(centerLat, centerLon, building.Latitude, building.Longitude),
			radiusKm)
	}

	// Novosibirsk sits far outside the radius
	for _, organization := range within {
		assert.NotEqual(t, 3, organization.ID)
	}
}
