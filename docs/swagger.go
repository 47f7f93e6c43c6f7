// Package docs Organization Catalog API documentation
package docs

// Swagger documentation info
// @title Organization Catalog API
// @version 1.0
// @description Directory of organizations, the buildings they occupy and the hierarchical classification of business activities
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@orgcatalog.local

// @license.name MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Static API key issued to catalog consumers.

// @tag.name activities
// @tag.description Activity classification tree

// @tag.name organizations
// @tag.description Organization directory queries

// @tag.name buildings
// @tag.description Building directory
