package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"orgcatalog-backend/catalog-service/services"
	"orgcatalog-backend/shared/database"
	"orgcatalog-backend/shared/utils/cache"

	"github.com/gin-gonic/gin"
)

// ActivityResponse represents activity data for API responses
type ActivityResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ParentID *int   `json:"parent_id"`
}

// ActivityTreeResponse represents an activity tree response
type ActivityTreeResponse struct {
	Success bool                    `json:"success"`
	Data    []services.ActivityNode `json:"data"`
}

// parseMaxDepth validates the max_depth query parameter
func parseMaxDepth(ctx *gin.Context) (int, bool) {
	maxDepth, err := strconv.Atoi(ctx.DefaultQuery("max_depth", strconv.Itoa(services.MaxActivityDepth)))
	if err != nil || maxDepth < 1 || maxDepth > services.MaxActivityDepth {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid max_depth parameter",
			"message": "max_depth must be an integer between 1 and " + strconv.Itoa(services.MaxActivityDepth),
		})
		return 0, false
	}
	return maxDepth, true
}

// respondWithTree builds the requested tree, consulting the Redis cache
// first. cacheRootID is 0 for the full forest.
func respondWithTree(ctx *gin.Context, rootID *int, cacheRootID, maxDepth int) {
	cacheManager := cache.GetCacheManager()
	if cached, found := cacheManager.GetActivityTreeCache(cacheRootID, maxDepth); found {
		ctx.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    cached,
		})
		return
	}

	service := services.NewActivityService(database.GetDB())
	tree, err := service.BuildTree(rootID, maxDepth)
	if err != nil {
		if errors.Is(err, services.ErrMaxDepthExceeded) {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "Activity tree too deep",
				"message": err.Error(),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to build activity tree",
			"message": err.Error(),
		})
		return
	}

	// Best effort: a cache failure never fails the request
	_ = cacheManager.SetActivityTreeCache(cacheRootID, maxDepth, tree)

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    tree,
	})
}

// GetActivityTree returns the full activity tree
// @Summary Full activity tree
// @Description Get the complete activity classification tree limited to the allowed depth
// @Tags activities
// @Accept json
// @Produce json
// @Param max_depth query int false "Maximum tree depth (1-3, default: 3)"
// @Security ApiKeyAuth
// @Success 200 {object} handlers.ActivityTreeResponse
// @Failure 400 {object} map[string]string "Invalid max_depth parameter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Activity tree too deep"
// @Failure 500 {object} map[string]string "Server error"
// @Router /activities/tree [get]
func GetActivityTree(ctx *gin.Context) {
	maxDepth, ok := parseMaxDepth(ctx)
	if !ok {
		return
	}
	respondWithTree(ctx, nil, 0, maxDepth)
}

// GetActivitySubtree returns the subtree rooted at an activity
// @Summary Subtree by activity
// @Description Get the activity subtree starting from the specified node
// @Tags activities
// @Accept json
// @Produce json
// @Param id path int true "Activity ID"
// @Param max_depth query int false "Maximum tree depth (1-3, default: 3)"
// @Security ApiKeyAuth
// @Success 200 {object} handlers.ActivityTreeResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Activity not found"
// @Failure 422 {object} map[string]string "Activity tree too deep"
// @Failure 500 {object} map[string]string "Server error"
// @Router /activities/{id}/tree [get]
func GetActivitySubtree(ctx *gin.Context) {
	activityID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid activity ID format",
			"message": err.Error(),
		})
		return
	}

	maxDepth, ok := parseMaxDepth(ctx)
	if !ok {
		return
	}

	service := services.NewActivityService(database.GetDB())
	activity, err := service.Get(activityID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to retrieve activity",
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

	respondWithTree(ctx, &activityID, activityID, maxDepth)
}
