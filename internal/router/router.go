package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pageza/digital-parsley/backend/internal/api"
	"github.com/pageza/digital-parsley/backend/internal/middleware"
)

// SetupRouter configures the engine, its middleware stack and the application routes
func SetupRouter(corsOrigins []string, services api.Services) *gin.Engine {
	router := gin.New()

	// scraped page URLs arrive percent-encoded in the path and are decoded by the scraper
	router.UseRawPath = true
	router.UnescapePathValues = false

	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(corsOrigins))

	api.RegisterRoutes(router, services)
	return router
}
