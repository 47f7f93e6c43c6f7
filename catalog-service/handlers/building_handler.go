package handlers

import (
	"net/http"
	"strconv"

	"orgcatalog-backend/catalog-service/services"
	"orgcatalog-backend/shared/database"
	"orgcatalog-backend/shared/utils/query"

	"github.com/gin-gonic/gin"
)

// BuildingListResponse represents a list of buildings with pagination
type BuildingListResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Items      []BuildingResponse       `json:"items"`
		Pagination query.PaginationResponse `json:"pagination"`
	} `json:"data"`
}

// SingleBuildingResponse represents a single building response
type SingleBuildingResponse struct {
	Success bool             `json:"success"`
	Data    BuildingResponse `json:"data"`
}

// GetBuildings retrieves all buildings with pagination and search
// @Summary List catalog buildings
// @Description Get all buildings available in the catalog with pagination, search and sorting
// @Tags buildings
// @Accept json
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 20)"
// @Param search query string false "Search term across name and address"
// @Param sort[field] query string false "Sort field (id, name, created_at)"
// @Param sort[order] query string false "Sort order (asc, desc)"
// @Security ApiKeyAuth
// @Success 200 {object} handlers.BuildingListResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /buildings [get]
func GetBuildings(ctx *gin.Context) {
	params := query.ParseListParams(ctx)

	buildings, total, err := services.NewBuildingService(database.GetDB()).List(params)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to retrieve buildings",
			"message": err.Error(),
		})
		return
	}

	items := make([]BuildingResponse, 0, len(buildings))
	for i := range buildings {
		items = append(items, *convertBuilding(&buildings[i]))
	}

	pagination := query.BuildPaginationResponse(params.Page, params.Limit, total)

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"items":      items,
			"pagination": pagination,
		},
	})
}

// GetBuilding retrieves a single building by ID
// @Summary Get building by ID
// @Description Get information about a specific building
// @Tags buildings
// @Accept json
// @Produce json
// @Param id path int true "Building ID"
// @Security ApiKeyAuth
// @Success 200 {object} handlers.SingleBuildingResponse
// @Failure 400 {object} map[string]string "Invalid building ID format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Building not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /buildings/{id} [get]
func GetBuilding(ctx *gin.Context) {
	buildingID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid building ID format",
			"message": err.Error(),
		})
		return
	}

	building, err := services.NewBuildingService(database.GetDB()).Get(buildingID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to retrieve building",
			"message": err.Error(),
		})
		return
	}
	if building == nil {
		ctx.JSON(http.StatusNotFound, gin.H{
			"error":   "Building not found",
			"message": "Building with the given ID does not exist",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    *convertBuilding(building),
	})
}
