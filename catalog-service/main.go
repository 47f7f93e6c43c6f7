package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	"orgcatalog-backend/catalog-service/handlers"
	"orgcatalog-backend/catalog-service/middleware"
	"orgcatalog-backend/shared/config"
	"orgcatalog-backend/shared/database"
	"orgcatalog-backend/shared/utils/cache"

	_ "orgcatalog-backend/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	// Load configuration
	config.LoadConfig()

	// Initialize database
	if err := database.InitDatabase(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDatabase()

	// Initialize Redis cache (the service degrades to uncached reads if
	// Redis is unavailable)
	if err := cache.InitCacheManager(); err != nil {
		log.Printf("Warning: cache unavailable, activity trees will not be cached: %v", err)
	}

	// Rate limiter with periodic cleanup
	rateLimiter := middleware.NewRateLimiter(5 * time.Minute)
	rateLimitConfig := middleware.NewRateLimitConfig()

	router := gin.Default()

	// Global middleware
	router.Use(cors.Default())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(rateLimiter.RateLimitMiddleware(rateLimitConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "catalog",
		})
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes are protected by the static API key
	api := router.Group("/api/v1", middleware.APIKeyMiddleware())

	// Activity routes
	api.GET("/activities/tree", handlers.GetActivityTree)
	api.GET("/activities/:id/tree", handlers.GetActivitySubtree)

	// Organization routes
	api.GET("/organizations/:id", handlers.GetOrganization)
	api.GET("/organizations/by-building/:building_id", handlers.GetOrganizationsByBuilding)
	api.GET("/organizations/by-activity/:activity_id", handlers.GetOrganizationsByActivity)
	api.GET("/organizations/search/by-activity", handlers.SearchOrganizationsByActivityName)
	api.GET("/organizations/search/by-name", handlers.SearchOrganizationsByName)
	api.GET("/organizations/geo", handlers.SearchOrganizationsByGeo)

	// Building routes
	api.GET("/buildings", handlers.GetBuildings)
	api.GET("/buildings/:id", handlers.GetBuilding)

	// Parse port from config URL
	port := strings.Split(config.GetConfig().CatalogServiceURL, ":")[2]
	log.Printf("Catalog Service starting on port %s...", port)
	router.Run(":" + port)
}
