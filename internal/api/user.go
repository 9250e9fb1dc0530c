package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/plateful/recipebook-backend/internal/models"
	"github.com/plateful/recipebook-backend/internal/service"
	"github.com/plateful/recipebook-backend/internal/types"
)

// UserHandler serves registration, token issuance and profile management.
type UserHandler struct {
	auth  *service.AuthService
	users *service.UserService
}

func NewUserHandler(auth *service.AuthService, users *service.UserService) *UserHandler {
	return &UserHandler{auth: auth, users: users}
}

// RegisterRoutes mounts the /user endpoints. The create and token endpoints
// are public; /user/me requires auth.
func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup, authRequired gin.HandlerFunc) {
	user := r.Group("/user")
	{
		user.POST("/create", h.Create)
		user.POST("/token", h.Token)

		me := user.Group("/me", authRequired)
		me.GET("", h.Me)
		me.PUT("", h.UpdateMe)
		me.PATCH("", h.UpdateMe)
	}
}

func (h *UserHandler) Create(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	user, err := h.auth.Register(req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"email": err.Error()}})
		case errors.Is(err, models.ErrEmailRequired):
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"email": err.Error()}})
		default:
			respondError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
	})
}

func (h *UserHandler) Token(c *gin.Context) {
	var req types.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	token, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unable to authenticate with provided credentials"})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
	})
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req types.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	user, err := h.users.Update(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken), errors.Is(err, models.ErrEmailRequired):
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"email": err.Error()}})
		default:
			respondError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
	})
}
