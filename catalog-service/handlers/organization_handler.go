package handlers

import (
	"net/http"
	"sort"
	"strconv"

	"orgcatalog-backend/catalog-service/services"
	"orgcatalog-backend/shared/database"
	"orgcatalog-backend/shared/database/models"

	"github.com/gin-gonic/gin"
)

// BuildingResponse represents building data for API responses
type BuildingResponse struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PhoneResponse represents an organization phone entry
type PhoneResponse struct {
	ID     int    `json:"id"`
	Number string `json:"number"`
	Label  string `json:"label"`
}

// OrganizationResponse represents detailed organization data with relations
type OrganizationResponse struct {
	ID          int                `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Building    *BuildingResponse  `json:"building"`
	Activities  []ActivityResponse `json:"activities"`
	Phones      []PhoneResponse    `json:"phones"`
}

// SingleOrganizationResponse represents a single organization response
type SingleOrganizationResponse struct {
	Success bool                 `json:"success"`
	Data    OrganizationResponse `json:"data"`
}

// OrganizationListResponse represents a list of organizations
type OrganizationListResponse struct {
	Success bool                   `json:"success"`
	Data    []OrganizationResponse `json:"data"`
}

// convertBuilding converts a building model to response format
func convertBuilding(building *models.Building) *BuildingResponse {
	if building == nil {
		return nil
	}
	return &BuildingResponse{
		ID:        building.ID,
		Name:      building.Name,
		Address:   building.Address,
		Latitude:  building.Latitude,
		Longitude: building.Longitude,
	}
}

// convertOrganization converts an organization model to response format
func convertOrganization(organization models.Organization) OrganizationResponse {
	activities := make([]ActivityResponse, 0, len(organization.Activities))
	for _, activity := range organization.Activities {
		activities = append(activities, ActivityResponse{
			ID:       activity.ID,
			Name:     activity.Name,
			ParentID: activity.ParentID,
		})
	}

	phones := make([]PhoneResponse, 0, len(organization.Phones))
	for _, phone := range organization.Phones {
		phones = append(phones, PhoneResponse{
			ID:     phone.ID,
			Number: phone.Number,
			Label:  phone.Label,
		})
	}

	return OrganizationResponse{
		ID:          organization.ID,
		Name:        organization.Name,
		Description: organization.Description,
		Building:    convertBuilding(organization.Building),
		Activities:  activities,
		Phones:      phones,
	}
}

// convertOrganizations converts a slice of organization models
func convertOrganizations(organizations []models.Organization) []OrganizationResponse {
	responses := make([]OrganizationResponse, 0, len(organizations))
	for _, organization := range organizations {
		responses = append(responses, convertOrganization(organization))
	}
	return responses
}

// GetOrganization retrieves a single organization by ID
// @Summary Get organization by ID
// @Description Get detailed information about a specific organization including building, activities and phones
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path int true "Organization ID"
// @Security ApiKeyAuth
// @Success 200 {object} handlers.SingleOrganizationResponse
// @Failure 400 {object} map[string]string "Invalid organization ID format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Organization not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /organizations/{id} [get]
func GetOrganization(ctx *gin.Context) {
	organizationID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid organization ID format",
			"message": err.Error(),
		})
		return
	}

	service := services.NewOrganizationService(database.GetDB())
	organization, err := service.Get(organizationID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to retrieve organization",
			"message": err.Error(),
		})
		return
	}
	if organization == nil {
		ctx.JSON(http.StatusNotFound, gin.H{
			"error":   "Organization not found",
			"message": "Organization with the given ID does not exist",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    convertOrganization(*organization),
	})
}

// GetOrganizationsByBuilding retrieves organizations located in a building
// @Summary Organizations in building
// @Description Get all organizations located in the specified building
// @Tags organizations
// @Accept json
// @Produce json
// @Param building_id path int true "Building ID"
// @Security ApiKeyAuth
// @Success 200 {object} handlers.OrganizationListResponse
// @Failure 400 {object} map[string]string "Invalid building ID format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Building not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /organizations/by-building/{building_id} [get]
func GetOrganizationsByBuilding(ctx *gin.Context) {
	buildingID, err := strconv.Atoi(ctx.Param("building_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid building ID format",
			"message": err.Error(),
		})
		return
	}

	db := database.GetDB()
	building, err := services.NewBuildingService(db).Get(buildingID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to validate building",
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

	organizations, err := services.NewOrganizationService(db).ByBuilding(buildingID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to retrieve organizations",
			"message": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    convertOrganizations(organizations),
	})
}

// GetOrganizationsByActivity retrieves organizations linked to an activity
// or any of its descendants
// @Summary Organizations by activity
// @Description Get organizations linked to the activity or any of its descendant activities
// @Tags organizations
// @Accept json
// @Produce json
// @Param activity_id path int true "Activity ID"
// @Security ApiKeyAuth
// @Success 200 {object} handlers.OrganizationListResponse
// @Failure 400 {object} map[string]string "Invalid activity ID format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Activity not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /organizations/by-activity/{activity_id} [get]
func GetOrganizationsByActivity(ctx *gin.Context) {
	activityID, err := strconv.Atoi(ctx.Param("activity_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid activity ID format",
			"message": err.Error(),
		})
		return
	}

	db := database.GetDB()
	activityService := services.NewActivityService(db)

	activity, err := activityService.Get(activityID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to validate activity",
			"message": err.Error(),
		})
		return
	}
	if activity == nil {
		ctx.JSON(http.StatusNotFound, gin.H{
			"error":   "Activity not found",
			"message": "Activity with the given ID does not exist",
		})
		return
	}

	descendantIDs, err := activityService.DescendantIDs(activityID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to expand activity hierarchy",
			"message": err.Error(),
		})
		return
	}

	organizations, err := services.NewOrganizationService(db).ByActivityIDs(descendantIDs)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to retrieve organizations",
			"message": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    convertOrganizations(organizations),
	})
}

// SearchOrganizationsByActivityName searches organizations through the
// activity hierarchy by activity name
// @Summary Search organizations by activity name
// @Description Find organizations linked to activities matching the name, including all nested activity levels
// @Tags organizations
// @Accept json
// @Produce json
// @Param name query string true "Activity name to search for. Partial matches allowed."
// @Security ApiKeyAuth
// @Success 200 {object} handlers.OrganizationListResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /organizations/search/by-activity [get]
func SearchOrganizationsByActivityName(ctx *gin.Context) {
	name := ctx.Query("name")

	db := database.GetDB()
	activityService := services.NewActivityService(db)

	activities, err := activityService.FindByName(name)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to search activities",
			"message": err.Error(),
		})
		return
	}

	// Union of the descendant closures of every matching activity
	idSet := make(map[int]bool)
	for _, activity := range activities {
		descendantIDs, err := activityService.DescendantIDs(activity.ID)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to expand activity hierarchy",
				"message": err.Error(),
			})
			return
		}
		for _, id := range descendantIDs {
			idSet[id] = true
		}
	}

	activityIDs := make([]int, 0, len(idSet))
	for id := range idSet {
		activityIDs = append(activityIDs, id)
	}
	sort.Ints(activityIDs)

	organizations, err := services.NewOrganizationService(db).ByActivityIDs(activityIDs)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to retrieve organizations",
			"message": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    convertOrganizations(organizations),
	})
}

// SearchOrganizationsByName searches organizations by name
// @Summary Search organizations by name
// @Description Find organizations whose name contains the query, case-insensitively
// @Tags organizations
// @Accept json
// @Produce json
// @Param query query string true "Organization search query (minimum 2 characters)"
// @Security ApiKeyAuth
// @Success 200 {object} handlers.OrganizationListResponse
// @Failure 400 {object} map[string]string "Query too short"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /organizations/search/by-name [get]
func SearchOrganizationsByName(ctx *gin.Context) {
	searchQuery := ctx.Query("query")
	if len([]rune(searchQuery)) < 2 {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Query too short",
			"message": "The search query must be at least 2 characters long",
		})
		return
	}

	organizations, err := services.NewOrganizationService(database.GetDB()).SearchByName(searchQuery)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to search organizations",
			"message": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    convertOrganizations(organizations),
	})
}

// geoSearchParams holds the parsed geo search query. Latitude and longitude
// are pointers so that 0 counts as provided.
type geoSearchParams struct {
	Latitude  *float64 `form:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude *float64 `form:"longitude" binding:"required,gte=-180,lte=180"`
	RadiusKm  *float64 `form:"radius_km" binding:"omitempty,gt=0"`
	MinLat    *float64 `form:"min_latitude" binding:"omitempty,gte=-90,lte=90"`
	MaxLat    *float64 `form:"max_latitude" binding:"omitempty,gte=-90,lte=90"`
	MinLon    *float64 `form:"min_longitude" binding:"omitempty,gte=-180,lte=180"`
	MaxLon    *float64 `form:"max_longitude" binding:"omitempty,gte=-180,lte=180"`
}

// SearchOrganizationsByGeo searches organizations by geographic area
// @Summary Search organizations by geo
// @Description Find organizations within a radius of a point, or inside a rectangular area
// @Tags organizations
// @Accept json
// @Produce json
// @Param latitude query number true "Center latitude"
// @Param longitude query number true "Center longitude"
// @Param radius_km query number false "Radius in kilometers. Provide either radius or bounding box."
// @Param min_latitude query number false "Bounding box minimum latitude"
// @Param max_latitude query number false "Bounding box maximum latitude"
// @Param min_longitude query number false "Bounding box minimum longitude"
// @Param max_longitude query number false "Bounding box maximum longitude"
// @Security ApiKeyAuth
// @Success 200 {object} handlers.OrganizationListResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Incomplete or inverted bounding box"
// @Failure 500 {object} map[string]string "Server error"
// @Router /organizations/geo [get]
func SearchOrganizationsByGeo(ctx *gin.Context) {
	var params geoSearchParams
	if err := ctx.ShouldBindQuery(&params); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid coordinates",
			"message": err.Error(),
		})
		return
	}

	service := services.NewOrganizationService(database.GetDB())

	if params.RadiusKm != nil {
		organizations, err := service.InRadius(*params.Latitude, *params.Longitude, *params.RadiusKm)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to search organizations",
				"message": err.Error(),
			})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    convertOrganizations(organizations),
		})
		return
	}

	if params.MinLat == nil || params.MaxLat == nil || params.MinLon == nil || params.MaxLon == nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Incomplete bounding box",
			"message": "Provide either radius_km or all four bounding box parameters",
		})
		return
	}
	if *params.MinLat > *params.MaxLat || *params.MinLon > *params.MaxLon {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Inverted bounding box",
			"message": "Minimum coordinates must be less than maximum coordinates",
		})
		return
	}

	organizations, err := service.InRectangle(*params.MinLat, *params.MaxLat, *params.MinLon, *params.MaxLon)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to search organizations",
			"message": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    convertOrganizations(organizations),
	})
}
