package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"orgcatalog-backend/shared/database/models"
	"orgcatalog-backend/shared/utils/geo"
)

// OrganizationService answers catalog queries over organizations. Every
// result carries the owning building, linked activities and phones.
type OrganizationService struct {
	db *gorm.DB
}

// NewOrganizationService returns a configured organization service instance
func NewOrganizationService(db *gorm.DB) *OrganizationService {
	return &OrganizationService{db: db}
}

// withRelations attaches the relations every organization result includes
func (s *OrganizationService) withRelations() *gorm.DB {
	return s.db.
		Preload("Building").
		Preload("Phones").
		Preload("Activities")
}

// Get returns an organization by id with related data, or nil when absent
func (s *OrganizationService) Get(organizationID int) (*models.Organization, error) {
	var organization models.Organization
	if err := s.withRelations().First(&organization, organizationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load organization %d: %w", organizationID, err)
	}
	return &organization, nil
}

// ByBuilding returns organizations located in the specified building. The
// building itself is not checked for existence here.
func (s *OrganizationService) ByBuilding(buildingID int) ([]models.Organization, error) {
	var organizations []models.Organization
	err := s.withRelations().
		Where("building_id = ?", buildingID).
		Order("id").
		Find(&organizations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load organizations for building %d: %w", buildingID, err)
	}
	return organizations, nil
}

// ByActivityIDs returns organizations linked to any of the provided
// activities, each organization exactly once. An empty id set returns an
// empty slice without querying the store.
func (s *OrganizationService) ByActivityIDs(activityIDs []int) ([]models.Organization, error) {
	if len(activityIDs) == 0 {
		return []models.Organization{}, nil
	}

	var organizations []models.Organization
	err := s.withRelations().
		Where("id IN (SELECT organization_id FROM organization_activities WHERE activity_id IN ?)", activityIDs).
		Order("id").
		Find(&organizations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load organizations by activities: %w", err)
	}
	return organizations, nil
}

// SearchByName performs a case-insensitive substring search over
// organization names. An empty query matches nothing.
func (s *OrganizationService) SearchByName(query string) ([]models.Organization, error) {
	if query == "" {
		return []models.Organization{}, nil
	}

	var organizations []models.Organization
	err := s.withRelations().
		Where("name ILIKE ?", "%"+query+"%").
		Order("id").
		Find(&organizations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search organizations: %w", err)
	}
	return organizations, nil
}

// InRectangle returns organizations whose building coordinates fall within
// the inclusive bounding box.
func (s *OrganizationService) InRectangle(minLat, maxLat, minLon, maxLon float64) ([]models.Organization, error) {
	var organizations []models.Organization
	err := s.withRelations().
		Joins("JOIN buildings ON buildings.id = organizations.building_id").
		Where("buildings.latitude >= ? AND buildings.latitude <= ?", minLat, maxLat).
		Where("buildings.longitude >= ? AND buildings.longitude <= ?", minLon, maxLon).
		Order("organizations.id").
		Find(&organizations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load organizations in rectangle: %w", err)
	}
	return organizations, nil
}

// InRadius returns organizations within radiusKm of the given point. A
// bounding box narrows the candidate set before the exact haversine check,
// so the trigonometry only runs on nearby rows.
func (s *OrganizationService) InRadius(latitude, longitude, radiusKm float64) ([]models.Organization, error) {
	minLat, maxLat, minLon, maxLon := geo.BoundingBox(latitude, longitude, radiusKm)
	candidates, err := s.InRectangle(minLat, maxLat, minLon, maxLon)
	if err != nil {
		return nil, err
	}
	return filterWithinRadius(candidates, latitude, longitude, radiusKm), nil
}

// filterWithinRadius keeps organizations whose building lies within radiusKm
// of the center. Organizations without a loaded building are discarded.
func filterWithinRadius(organizations []models.Organization, latitude, longitude, radiusKm float64) []models.Organization {
	result := []models.Organization{}
	for _, organization := range organizations {
		if organization.Building == nil {
			continue
		}
		distance := geo.HaversineDistanceKm(
			latitude,
			longitude,
			organization.Building.Latitude,
			organization.Building.Longitude,
		)
		if distance <= radiusKm {
			result = append(result, organization)
		}
	}
	return result
}
