package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateful/recipebook-backend/internal/models"
)

func TestCreateUser(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, "POST", "/api/v1/user/create", map[string]interface{}{
		"email":    "test@example.com",
		"password": "test1234",
		"name":     "Test User",
	}, "")

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeMap(t, w)
	assert.Equal(t, "test@example.com", body["email"])
	assert.Equal(t, "Test User", body["name"])
	assert.NotContains(t, body, "password")
	assert.NotContains(t, w.Body.String(), "test1234")

	var user models.User
	require.NoError(t, env.db.Where("email = ?", "test@example.com").First(&user).Error)
	assert.True(t, user.CheckPassword("test1234"))
}

func TestCreateUserNormalizesEmailDomain(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, "POST", "/api/v1/user/create", map[string]interface{}{
		"email":    "Test2@Example.COM",
		"password": "test1234",
		"name":     "Test User",
	}, "")

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Test2@example.com", decodeMap(t, w)["email"])
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser(t, "test@example.com")

	w := env.request(t, "POST", "/api/v1/user/create", map[string]interface{}{
		"email":    "test@example.com",
		"password": "test1234",
		"name":     "Test User",
	}, "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeMap(t, w)
	errs := body["errors"].(map[string]interface{})
	assert.Contains(t, errs, "email")

	var count int64
	env.db.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCreateUserShortPassword(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, "POST", "/api/v1/user/create", map[string]interface{}{
		"email":    "test@example.com",
		"password": "pw",
		"name":     "Test User",
	}, "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	errs := decodeMap(t, w)["errors"].(map[string]interface{})
	assert.Contains(t, errs, "password")

	var count int64
	env.db.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestCreateUserMissingFields(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, "POST", "/api/v1/user/create", map[string]interface{}{}, "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	errs := decodeMap(t, w)["errors"].(map[string]interface{})
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
}

func TestToken(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser(t, "test@example.com")

	w := env.request(t, "POST", "/api/v1/user/token", map[string]interface{}{
		"email":    "test@example.com",
		"password": "test1234",
	}, "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeMap(t, w)
	assert.NotEmpty(t, body["token"])
}

func TestTokenBadCredentials(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser(t, "test@example.com")

	w := env.request(t, "POST", "/api/v1/user/token", map[string]interface{}{
		"email":    "test@example.com",
		"password": "wrongpass",
	}, "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotContains(t, decodeMap(t, w), "token")
}

func TestTokenUnknownUser(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, "POST", "/api/v1/user/token", map[string]interface{}{
		"email":    "nobody@example.com",
		"password": "test1234",
	}, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMeRequiresAuth(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, "GET", "/api/v1/user/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMe(t *testing.T) {
	env := setupTestEnv(t)
	user := env.createUser(t, "test@example.com")

	w := env.request(t, "GET", "/api/v1/user/me", nil, env.tokenFor(t, user))

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeMap(t, w)
	assert.Equal(t, "test@example.com", body["email"])
	assert.Equal(t, "Test User", body["name"])
}

func TestUpdateMe(t *testing.T) {
	env := setupTestEnv(t)
	user := env.createUser(t, "test@example.com")

	w := env.request(t, "PATCH", "/api/v1/user/me", map[string]interface{}{
		"name":     "New Name",
		"password": "newpass123",
	}, env.tokenFor(t, user))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "New Name", decodeMap(t, w)["name"])

	var updated models.User
	require.NoError(t, env.db.First(&updated, "id = ?", user.ID).Error)
	assert.Equal(t, "test@example.com", updated.Email)
	assert.True(t, updated.CheckPassword("newpass123"))
}

func TestUpdateMeEmailTaken(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser(t, "other@example.com")
	user := env.createUser(t, "test@example.com")

	w := env.request(t, "PATCH", "/api/v1/user/me", map[string]interface{}{
		"email": "other@example.com",
	}, env.tokenFor(t, user))

	require.Equal(t, http.StatusBadRequest, w.Code)
	errs := decodeMap(t, w)["errors"].(map[string]interface{})
	assert.Contains(t, errs, "email")
}
