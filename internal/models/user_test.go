package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("test@example.com", "test1234", "Test User")
	require.NoError(t, err)

	assert.Equal(t, "test@example.com", user.Email)
	assert.Equal(t, "Test User", user.Name)
	assert.True(t, user.CheckPassword("test1234"))
	assert.False(t, user.CheckPassword("wrongpass"))
	assert.NotEqual(t, "test1234", user.PasswordHash)
}

func TestNewUserNormalizesEmail(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"test1@EXAMPLE.com", "test1@example.com"},
		{"Test2@Example.com", "Test2@example.com"},
		{"TEST3@EXAMPLE.COM", "TEST3@example.com"},
		{"test4@example.COM", "test4@example.com"},
	}

	for _, tc := range cases {
		user, err := NewUser(tc.in, "test1234", "")
		require.NoError(t, err)
		assert.Equal(t, tc.want, user.Email)
	}
}

func TestNewUserEmptyEmail(t *testing.T) {
	for _, password := range []string{"test1234", "", "x"} {
		_, err := NewUser("", password, "Test User")
		assert.ErrorIs(t, err, ErrEmailRequired)
	}
}

func TestSetPassword(t *testing.T) {
	user, err := NewUser("test@example.com", "oldpass123", "")
	require.NoError(t, err)

	require.NoError(t, user.SetPassword("newpass123"))
	assert.True(t, user.CheckPassword("newpass123"))
	assert.False(t, user.CheckPassword("oldpass123"))
}

func TestNormalizeEmailWithoutDomain(t *testing.T) {
	// Malformed input passes through untouched; validation happens at the API
	// boundary.
	assert.Equal(t, "not-an-email", NormalizeEmail("not-an-email"))
}
