package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/digital-parsley/backend/internal/service"
	"github.com/pageza/digital-parsley/backend/internal/types"
)

// ChefHandler serves the chef endpoints. Mutations always act on the caller.
type ChefHandler struct {
	chefs service.IChefService
}

func NewChefHandler(chefs service.IChefService) *ChefHandler {
	return &ChefHandler{chefs: chefs}
}

func (h *ChefHandler) RegisterRoutes(router *gin.RouterGroup) {
	chefs := router.Group("/chefs")
	{
		chefs.GET("", h.ListChefs)
		chefs.POST("", h.CreateChef)
		chefs.PATCH("", h.UpdateChef)
		chefs.DELETE("", h.DeleteChef)
		chefs.GET("/recipes", h.ListChefRecipes)
		chefs.GET("/:firebase_id", h.GetChef)
	}
}

func (h *ChefHandler) ListChefs(c *gin.Context) {
	chefs, err := h.chefs.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, chefs)
}

func (h *ChefHandler) GetChef(c *gin.Context) {
	chef, err := h.chefs.Get(c.Request.Context(), c.Param("firebase_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, chef)
}

func (h *ChefHandler) CreateChef(c *gin.Context) {
	var patch types.ChefPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	chef, err := h.chefs.Create(c.Request.Context(), &patch)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, chef)
}

func (h *ChefHandler) UpdateChef(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var patch types.ChefPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	chef, err := h.chefs.Update(c.Request.Context(), userID, &patch)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, chef)
}

func (h *ChefHandler) DeleteChef(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.chefs.Delete(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"firebase_id": userID})
}

func (h *ChefHandler) ListChefRecipes(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	recipes, err := h.chefs.Recipes(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, recipes)
}
