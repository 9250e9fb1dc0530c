package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/plateful/recipebook-backend/internal/models"
	"github.com/plateful/recipebook-backend/internal/service"
	"github.com/plateful/recipebook-backend/internal/types"
)

// RecipeHandler serves recipe CRUD and image upload. List and create respond
// with the summary shape; retrieve and update respond with the detail shape.
type RecipeHandler struct {
	recipes *service.RecipeService
	images  *service.ImageService
}

func NewRecipeHandler(recipes *service.RecipeService, images *service.ImageService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, images: images}
}

// RegisterRoutes mounts the recipe endpoints on an auth-protected group.
// writeGuard middlewares (rate limiting) apply to mutating routes only.
func (h *RecipeHandler) RegisterRoutes(r *gin.RouterGroup, writeGuard ...gin.HandlerFunc) {
	recipes := r.Group("/recipe/recipes")
	recipes.GET("", h.List)
	recipes.GET("/:id", h.Get)

	write := recipes.Group("", writeGuard...)
	write.POST("", h.Create)
	write.PUT("/:id", h.Update)
	write.PATCH("/:id", h.Patch)
	write.DELETE("/:id", h.Delete)
	write.POST("/:id/upload-image", h.UploadImage)
}

func (h *RecipeHandler) List(c *gin.Context) {
	recipes, err := h.recipes.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.NewRecipeSummaries(recipes))
}

func (h *RecipeHandler) Get(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	recipe, err := h.recipes.Get(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondDetail(c, recipe)
}

func (h *RecipeHandler) Create(c *gin.Context) {
	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	recipe, err := h.recipes.Create(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, types.NewRecipeSummary(recipe))
}

func (h *RecipeHandler) Update(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	recipe, err := h.recipes.Update(c.Request.Context(), currentUserID(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondDetail(c, recipe)
}

func (h *RecipeHandler) Patch(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	var req types.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	recipe, err := h.recipes.Patch(c.Request.Context(), currentUserID(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondDetail(c, recipe)
}

func (h *RecipeHandler) Delete(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	if err := h.recipes.Delete(c.Request.Context(), currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RecipeHandler) UploadImage(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"image": "no image provided"}})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(c, err)
		return
	}

	recipe, err := h.images.UploadRecipeImage(
		c.Request.Context(),
		currentUserID(c),
		id,
		fileHeader.Filename,
		data,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondDetail(c, recipe)
}

// respondDetail writes the detail shape, rendering the stored image path as
// a URL through the active image store.
func (h *RecipeHandler) respondDetail(c *gin.Context, recipe *models.Recipe) {
	imageURL, err := h.images.ImageURL(c.Request.Context(), recipe.ImagePath)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.NewRecipeDetail(recipe, imageURL))
}
