package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenManager_IssueAndVerify(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager([]byte("super-secret"), time.Hour)

	token, err := tm.Issue("user-123", "Ana")
	assert.NoError(t, err)

	identity, err := tm.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", identity.UserID)
	assert.Equal(t, "Ana", identity.Name)
}

func TestTokenManager_Expired(t *testing.T) {
	t.Parallel()

	// Negative TTL produces a token whose expiry is already in the past
	// but whose signature is valid.
	tm := NewTokenManager([]byte("secret"), -1*time.Second)

	token, err := tm.Issue("u1", "User")
	assert.NoError(t, err)

	_, err = tm.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenManager([]byte("right-secret"), time.Hour)
	verifier := NewTokenManager([]byte("wrong-secret"), time.Hour)

	token, err := issuer.Issue("u2", "User")
	assert.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Malformed(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager([]byte("k"), time.Hour)

	_, err := tm.Verify("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_ReissueCarriesNewName(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager([]byte("secret"), time.Hour)

	first, err := tm.Issue("u3", "Old Name")
	assert.NoError(t, err)
	second, err := tm.Issue("u3", "New Name")
	assert.NoError(t, err)

	identity, err := tm.Verify(first)
	assert.NoError(t, err)
	assert.Equal(t, "Old Name", identity.Name)

	identity, err = tm.Verify(second)
	assert.NoError(t, err)
	assert.Equal(t, "New Name", identity.Name)
}
