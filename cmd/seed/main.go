package main

import (
	"log"

	"orgcatalog-backend/shared/config"
	"orgcatalog-backend/shared/database"
	"orgcatalog-backend/shared/utils/cache"
)

func main() {
	log.Println("🌱 Starting database seeding...")

	// Load configuration
	config.LoadConfig()

	// Initialize database
	if err := database.InitDatabase(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDatabase()

	// Run seeding
	if err := database.SeedDatabase(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	// Cached activity trees are stale after seeding; best effort cleanup
	if err := cache.GetCacheManager().InvalidateActivityTrees(); err != nil {
		log.Printf("Warning: could not invalidate activity tree cache: %v", err)
	}

	log.Println("✅ Database seeding completed successfully!")
}
