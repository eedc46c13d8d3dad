package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, IsArgon2Hash(hash))

	ok, err := VerifyPassword("correct horse battery staple", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("wrong password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPasswordUniqueSalt(t *testing.T) {
	h1, err := HashPassword("same password")
	require.NoError(t, err)
	h2, err := HashPassword("same password")
	require.NoError(t, err)

	// Deux hashes du même mot de passe diffèrent (salt aléatoire)
	assert.NotEqual(t, h1, h2)
}

func TestVerifyPasswordBcryptFallback(t *testing.T) {
	legacy, err := bcrypt.GenerateFromPassword([]byte("imported account"), bcrypt.MinCost)
	require.NoError(t, err)
	assert.True(t, IsBcryptHash(string(legacy)))

	ok, err := VerifyPassword("imported account", string(legacy))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("not the password", string(legacy))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	_, err := VerifyPassword("whatever", "not-a-hash")
	assert.Error(t, err)
}

func TestHashFormatDetection(t *testing.T) {
	assert.True(t, IsArgon2Hash("$argon2id$v=19$m=32768,t=1,p=4$abc$def"))
	assert.False(t, IsArgon2Hash("$2a$10$abcdef"))

	assert.True(t, IsBcryptHash("$2a$10$abcdef"))
	assert.True(t, IsBcryptHash("$2b$12$abcdef"))
	assert.False(t, IsBcryptHash("$argon2id$v=19$m=32768,t=1,p=4$abc$def"))
}
