package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/digital-parsley/backend/internal/service"
)

// ImageHandler resizes remote images and mirrors recipe images into storage
type ImageHandler struct {
	images service.IImageService
}

// NewImageHandler creates a new image handler
func NewImageHandler(images service.IImageService) *ImageHandler {
	return &ImageHandler{images: images}
}

// RegisterPublicRoutes registers the unauthenticated resize proxy behind limit
func (h *ImageHandler) RegisterPublicRoutes(router *gin.RouterGroup, limit gin.HandlerFunc) {
	handlers := []gin.HandlerFunc{h.ResizeImage}
	if limit != nil {
		handlers = append([]gin.HandlerFunc{limit}, handlers...)
	}
	router.GET("/images/resize", handlers...)
}

func (h *ImageHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/recipes/:id/image", h.MirrorRecipeImage)
}

// ResizeImage streams the image at ?url= scaled to a fixed height
func (h *ImageHandler) ResizeImage(c *gin.Context) {
	target := c.Query("url")
	if target == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: "url is required"})
		return
	}

	data, contentType, err := h.images.Resize(c.Request.Context(), target)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, contentType, data)
}

func (h *ImageHandler) MirrorRecipeImage(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	recipe, err := h.images.Mirror(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, recipe)
}
