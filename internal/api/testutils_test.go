package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/plateful/recipebook-backend/internal/middleware"
	"github.com/plateful/recipebook-backend/internal/models"
	"github.com/plateful/recipebook-backend/internal/service"
	"github.com/plateful/recipebook-backend/internal/testhelpers"
)

type testEnv struct {
	router    *gin.Engine
	db        *gorm.DB
	auth      *service.AuthService
	mediaRoot string
}

// setupTestEnv builds a router over an in-memory database, with images
// stored under a temporary media root.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.NewTestDB(t)
	authService := service.NewAuthService(db, "test-secret")
	mediaRoot := t.TempDir()

	router := gin.New()
	router.Use(middleware.Recovery())

	v1 := router.Group("/api/v1")
	v1.GET("/health", HealthCheck)

	authRequired := middleware.AuthMiddleware(authService)
	NewUserHandler(authService, service.NewUserService(db)).RegisterRoutes(v1, authRequired)

	protected := v1.Group("", authRequired)
	NewRecipeHandler(
		service.NewRecipeService(db),
		service.NewImageService(db, service.NewDiskStore(mediaRoot)),
	).RegisterRoutes(protected)
	NewTagHandler(service.NewTagService(db)).RegisterRoutes(protected)
	NewIngredientHandler(service.NewIngredientService(db)).RegisterRoutes(protected)

	return &testEnv{
		router:    router,
		db:        db,
		auth:      authService,
		mediaRoot: mediaRoot,
	}
}

func (e *testEnv) createUser(t *testing.T, email string) *models.User {
	t.Helper()
	user, err := models.NewUser(email, "test1234", "Test User")
	require.NoError(t, err)
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e *testEnv) tokenFor(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := e.auth.GenerateToken(user.ID)
	require.NoError(t, err)
	return token
}

// createRecipe inserts a recipe with sensible defaults directly through the
// database, bypassing the API.
func (e *testEnv) createRecipe(t *testing.T, user *models.User, overrides func(*models.Recipe)) *models.Recipe {
	t.Helper()
	recipe := &models.Recipe{
		Title:       "Sample recipe name",
		TimeMinutes: 5,
		Price:       decimal.RequireFromString("5.50"),
		Description: "Simple recipe description",
		Link:        "https://example.com/recipe.pdf",
		UserID:      user.ID,
	}
	if overrides != nil {
		overrides(recipe)
	}
	require.NoError(t, e.db.Create(recipe).Error)
	return recipe
}

// request performs an HTTP request against the test router. A non-empty
// token is sent as a bearer credential.
func (e *testEnv) request(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeMap(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// assertPrice compares a JSON price value against an expected decimal
// string, ignoring representation differences between database drivers.
func assertPrice(t *testing.T, expected string, got interface{}) {
	t.Helper()
	gotStr, ok := got.(string)
	require.True(t, ok, "price should serialize as a string, got %T", got)
	gotDec, err := decimal.NewFromString(gotStr)
	require.NoError(t, err)
	require.True(t, decimal.RequireFromString(expected).Equal(gotDec),
		"expected price %s, got %s", expected, gotStr)
}
