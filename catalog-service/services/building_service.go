package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"orgcatalog-backend/shared/database/models"
	"orgcatalog-backend/shared/utils/query"
)

// BuildingService answers catalog queries over buildings.
type BuildingService struct {
	db *gorm.DB
}

// NewBuildingService returns a configured building service instance
func NewBuildingService(db *gorm.DB) *BuildingService {
	return &BuildingService{db: db}
}

// List returns buildings with pagination, search and sorting applied
func (s *BuildingService) List(params query.ListParams) ([]models.Building, int64, error) {
	allowedSortFields := map[string]string{
		"id":         "id",
		"name":       "name",
		"created_at": "created_at",
	}
	searchFields := []string{"name", "address"}

	dbQuery := s.db.Model(&models.Building{})
	dbQuery = query.ApplySearch(dbQuery, params.Search, searchFields)
	dbQuery = query.ApplySort(dbQuery, params.Sort, allowedSortFields)

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count buildings: %w", err)
	}

	dbQuery = query.ApplyPagination(dbQuery, params.Page, params.Limit)

	var buildings []models.Building
	if err := dbQuery.Find(&buildings).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to load buildings: %w", err)
	}
	return buildings, total, nil
}

// Get returns a building by id, or nil when it does not exist
func (s *BuildingService) Get(buildingID int) (*models.Building, error) {
	var building models.Building
	if err := s.db.First(&building, buildingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load building %d: %w", buildingID, err)
	}
	return &building, nil
}
