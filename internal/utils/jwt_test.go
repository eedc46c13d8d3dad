package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laundry_express_back_end/internal/models"
)

func TestGenerateAndParseJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := models.User{
		ID:    "user-123",
		Email: "alice@example.co.uk",
		Role:  models.RoleCustomer,
	}

	token, err := GenerateJWT(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	require.NoError(t, err)

	assert.Equal(t, "user-123", claims["user_id"])
	assert.Equal(t, "alice@example.co.uk", claims["email"])
	assert.Equal(t, models.RoleCustomer, claims["role"])
	assert.NotNil(t, claims["exp"])
}

func TestParseJWTWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	token, err := GenerateJWT(models.User{ID: "u1", Email: "a@b.com", Role: models.RoleCustomer})
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-b")
	_, err = ParseJWT(token)
	assert.Error(t, err)
}

func TestParseJWTGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := ParseJWT("not.a.token")
	assert.Error(t, err)

	_, err = ParseJWT("")
	assert.Error(t, err)
}
