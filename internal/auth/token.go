package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Identity is the verified caller identity carried by a token.
type Identity struct {
	UserID string
	Name   string
}

// Claims embeds the registered claims plus the identity fields the token
// stands in for. Tokens are not persisted; expiry is the only
// invalidation mechanism.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Name   string `json:"name"`
}

// TokenManager signs and verifies identity tokens. The signing key and
// lifetime are fixed at construction; nothing is read from ambient
// process state at call time.
type TokenManager struct {
	secretKey []byte
	ttl       time.Duration
}

func NewTokenManager(secretKey []byte, ttl time.Duration) *TokenManager {
	return &TokenManager{secretKey: secretKey, ttl: ttl}
}

// Issue produces a signed HS256 token embedding the user's id and
// display name. Re-issuing after a profile update yields a token that
// reflects the new name.
func (m *TokenManager) Issue(userID, name string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		UserID: userID,
		Name:   name,
	})

	return token.SignedString(m.secretKey)
}

// Verify returns the embedded identity, or ErrInvalidToken on a bad
// signature, malformed payload or expiry in the past.
func (m *TokenManager) Verify(tokenString string) (*Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secretKey, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	if !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	return &Identity{UserID: claims.UserID, Name: claims.Name}, nil
}
