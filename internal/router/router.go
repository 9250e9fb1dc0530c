package router

import (
	"github.com/gin-gonic/gin"

	"github.com/plateful/recipebook-backend/internal/api"
	"github.com/plateful/recipebook-backend/internal/middleware"
)

// Handlers bundles the API handlers mounted by Setup.
type Handlers struct {
	User       *api.UserHandler
	Recipe     *api.RecipeHandler
	Tag        *api.TagHandler
	Ingredient *api.IngredientHandler
}

// Setup builds the application router. limiter may be nil, in which case
// mutating routes run without rate limiting.
func Setup(h Handlers, validator middleware.TokenValidator, limiter *middleware.RateLimiter) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	v1 := router.Group("/api/v1")
	v1.GET("/health", api.HealthCheck)

	authRequired := middleware.AuthMiddleware(validator)
	h.User.RegisterRoutes(v1, authRequired)

	protected := v1.Group("", authRequired)
	var writeGuard []gin.HandlerFunc
	if limiter != nil {
		writeGuard = append(writeGuard, limiter.Middleware())
	}
	h.Recipe.RegisterRoutes(protected, writeGuard...)
	h.Tag.RegisterRoutes(protected)
	h.Ingredient.RegisterRoutes(protected)

	return router
}
