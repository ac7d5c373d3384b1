package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("super_password123")
	assert.NoError(t, err)
	assert.NotEqual(t, "super_password123", hash)

	assert.True(t, CheckPasswordHash("super_password123", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("same-password")
	assert.NoError(t, err)
	h2, err := HashPassword("same-password")
	assert.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	assert.Error(t, ValidatePassword("pw"))
	assert.NoError(t, ValidatePassword("pw1234"))
}
