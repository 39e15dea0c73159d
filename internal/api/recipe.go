package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/digital-parsley/backend/internal/service"
	"github.com/pageza/digital-parsley/backend/internal/types"
)

// RecipeHandler serves the recipe CRUD endpoints
type RecipeHandler struct {
	recipes service.IRecipeService
}

func NewRecipeHandler(recipes service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

// RegisterRoutes expects router to be an authenticated group
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.POST("", h.CreateRecipe)
		recipes.GET("/tags/:tag", h.ListRecipesByTag)
		recipes.GET("/:id", h.GetRecipe)
		recipes.PATCH("/:id", h.UpdateRecipe)
		recipes.DELETE("/:id", h.DeleteRecipe)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipes.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, recipes)
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	recipe, err := h.recipes.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, recipe)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var patch types.RecipePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	recipe, err := h.recipes.Create(c.Request.Context(), &patch, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, recipe)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var patch types.RecipePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	recipe, err := h.recipes.Update(c.Request.Context(), id, &patch, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	deleted, err := h.recipes.Delete(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, types.DeleteResponse{ID: deleted})
}

// ListRecipesByTag returns the caller's recipes carrying the tag
func (h *RecipeHandler) ListRecipesByTag(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	recipes, err := h.recipes.ListByTag(c.Request.Context(), userID, c.Param("tag"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, recipes)
}
