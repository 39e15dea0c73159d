package api

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/digital-parsley/backend/internal/middleware"
	"github.com/pageza/digital-parsley/backend/internal/service"
)

// HealthChecker reports whether a backing store is reachable
type HealthChecker func(ctx context.Context) error

// Services bundles everything the handlers depend on
type Services struct {
	Auth    service.IAuthService
	Chefs   service.IChefService
	Recipes service.IRecipeService
	Scrapes service.IScrapeService
	Images  service.IImageService

	// ScrapeLimiter guards the public scrape and image resize endpoints; nil disables limiting
	ScrapeLimiter middleware.Limiter
	// Health is consulted by /health when set
	Health HealthChecker
	// WebFolder is served for every unmatched GET when set
	WebFolder string
}

// HealthCheck returns the health status of the API
func HealthCheck(check HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := check(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status": "unhealthy",
					"error":  err.Error(),
				})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Digital Parsley API is running",
		})
	}
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, s Services) {
	router.GET("/health", HealthCheck(s.Health))

	api := router.Group("/api")

	var limit gin.HandlerFunc
	if s.ScrapeLimiter != nil {
		limit = middleware.RateLimitMiddleware(s.ScrapeLimiter)
	}

	scrapeHandler := NewScrapeHandler(s.Scrapes)
	imageHandler := NewImageHandler(s.Images)
	scrapeHandler.RegisterPublicRoutes(api, limit)
	imageHandler.RegisterPublicRoutes(api, limit)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(s.Auth))
	{
		scrapeHandler.RegisterRoutes(protected)
		imageHandler.RegisterRoutes(protected)
		NewRecipeHandler(s.Recipes).RegisterRoutes(protected)
		NewChefHandler(s.Chefs).RegisterRoutes(protected)
	}

	if s.WebFolder != "" {
		registerStatic(router, s.WebFolder)
	}
}

// registerStatic serves the front-end build. Unknown paths outside /api get
// index.html so client-side routes resolve.
func registerStatic(router *gin.Engine, folder string) {
	index := filepath.Join(folder, "index.html")
	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
			return
		}
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
			return
		}

		name := filepath.Join(folder, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			c.File(name)
			return
		}
		c.File(index)
	})
}
