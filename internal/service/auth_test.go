package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateful/recipebook-backend/internal/models"
	"github.com/plateful/recipebook-backend/internal/testhelpers"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	return NewAuthService(testhelpers.NewTestDB(t), "test-secret")
}

func TestRegister(t *testing.T) {
	auth := newAuthService(t)

	user, err := auth.Register("Test@EXAMPLE.com", "test1234", "Test User")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "Test@example.com", user.Email)
	assert.Equal(t, "Test User", user.Name)
	assert.True(t, user.CheckPassword("test1234"))
	assert.NotEqual(t, "test1234", user.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth := newAuthService(t)

	_, err := auth.Register("test@example.com", "test1234", "Test User")
	require.NoError(t, err)

	// The normalized form collides even when the domain casing differs.
	_, err = auth.Register("test@EXAMPLE.COM", "other1234", "Other User")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterEmptyEmail(t *testing.T) {
	auth := newAuthService(t)

	_, err := auth.Register("", "test1234", "Test User")
	assert.ErrorIs(t, err, models.ErrEmailRequired)
}

func TestLogin(t *testing.T) {
	auth := newAuthService(t)

	user, err := auth.Register("test@example.com", "test1234", "Test User")
	require.NoError(t, err)

	token, err := auth.Login("test@EXAMPLE.com", "test1234")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestLoginWrongPassword(t *testing.T) {
	auth := newAuthService(t)

	_, err := auth.Register("test@example.com", "test1234", "Test User")
	require.NoError(t, err)

	_, err = auth.Login("test@example.com", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	auth := newAuthService(t)

	_, err := auth.Login("missing@example.com", "test1234")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	issuer := NewAuthService(db, "secret-a")
	verifier := NewAuthService(db, "secret-b")

	token, err := issuer.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	auth := newAuthService(t)

	_, err := auth.ValidateToken("not-a-token")
	assert.Error(t, err)
}
