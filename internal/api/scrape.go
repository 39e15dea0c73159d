package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pageza/digital-parsley/backend/internal/service"
	"github.com/pageza/digital-parsley/backend/internal/types"
)

// ScrapeHandler exposes the recipe page scraper
type ScrapeHandler struct {
	scrapes service.IScrapeService
}

func NewScrapeHandler(scrapes service.IScrapeService) *ScrapeHandler {
	return &ScrapeHandler{scrapes: scrapes}
}

// RegisterPublicRoutes registers the unauthenticated scrape endpoint. The
// remaining path is the percent-encoded page URL.
func (h *ScrapeHandler) RegisterPublicRoutes(router *gin.RouterGroup, limit gin.HandlerFunc) {
	handlers := []gin.HandlerFunc{h.ScrapeRecipe}
	if limit != nil {
		handlers = append([]gin.HandlerFunc{limit}, handlers...)
	}
	router.GET("/scrape/*url", handlers...)
}

// RegisterRoutes registers the authenticated import endpoint
func (h *ScrapeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/recipes/import", h.ImportRecipe)
}

// ScrapeRecipe returns the draft extracted from the page. Pages that yield
// nothing still return 200 with an empty draft.
func (h *ScrapeHandler) ScrapeRecipe(c *gin.Context) {
	raw := strings.TrimPrefix(c.Param("url"), "/")
	if raw == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: "url is required"})
		return
	}

	draft, err := h.scrapes.Scrape(c.Request.Context(), raw)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, draft)
}

// ImportRecipe scrapes the page and saves it as a recipe owned by the caller
func (h *ScrapeHandler) ImportRecipe(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req types.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: "url is required"})
		return
	}

	recipe, err := h.scrapes.Import(c.Request.Context(), strings.TrimSpace(req.URL), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, recipe)
}
