package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/plateful/recipebook-backend/internal/service"
	"github.com/plateful/recipebook-backend/internal/types"
)

// IngredientHandler serves ingredient CRUD.
type IngredientHandler struct {
	ingredients *service.IngredientService
}

func NewIngredientHandler(ingredients *service.IngredientService) *IngredientHandler {
	return &IngredientHandler{ingredients: ingredients}
}

func (h *IngredientHandler) RegisterRoutes(r *gin.RouterGroup) {
	ingredients := r.Group("/recipe/ingredients")
	ingredients.GET("", h.List)
	ingredients.POST("", h.Create)
	ingredients.PUT("/:id", h.Update)
	ingredients.PATCH("/:id", h.Update)
	ingredients.DELETE("/:id", h.Delete)
}

func (h *IngredientHandler) List(c *gin.Context) {
	ingredients, err := h.ingredients.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.NewIngredientSummaries(ingredients))
}

func (h *IngredientHandler) Create(c *gin.Context) {
	var req types.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	ingredient, err := h.ingredients.Create(c.Request.Context(), currentUserID(c), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, types.NewIngredientSummary(ingredient))
}

func (h *IngredientHandler) Update(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	var req types.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	ingredient, err := h.ingredients.Update(c.Request.Context(), currentUserID(c), id, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.NewIngredientSummary(ingredient))
}

func (h *IngredientHandler) Delete(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	if err := h.ingredients.Delete(c.Request.Context(), currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
