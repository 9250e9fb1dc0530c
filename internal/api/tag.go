package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/plateful/recipebook-backend/internal/service"
	"github.com/plateful/recipebook-backend/internal/types"
)

// TagHandler serves tag CRUD.
type TagHandler struct {
	tags *service.TagService
}

func NewTagHandler(tags *service.TagService) *TagHandler {
	return &TagHandler{tags: tags}
}

func (h *TagHandler) RegisterRoutes(r *gin.RouterGroup) {
	tags := r.Group("/recipe/tags")
	tags.GET("", h.List)
	tags.POST("", h.Create)
	tags.PUT("/:id", h.Update)
	tags.PATCH("/:id", h.Update)
	tags.DELETE("/:id", h.Delete)
}

func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.tags.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.NewTagSummaries(tags))
}

func (h *TagHandler) Create(c *gin.Context) {
	var req types.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	tag, err := h.tags.Create(c.Request.Context(), currentUserID(c), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, types.NewTagSummary(tag))
}

func (h *TagHandler) Update(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	var req types.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	tag, err := h.tags.Update(c.Request.Context(), currentUserID(c), id, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.NewTagSummary(tag))
}

func (h *TagHandler) Delete(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	if err := h.tags.Delete(c.Request.Context(), currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
