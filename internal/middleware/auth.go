package middleware

import (
	"net/http"
	"strings"

	"jobtrack_backend/internal/auth"
	"jobtrack_backend/internal/logger"
	"jobtrack_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey   = "userID"
	userNameKey = "userName"
)

// AuthMiddleware verifies the bearer token and binds the identity to the
// request. Every job and stats operation reads its owner from this
// context value, never from the request body or query.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: apperrors.NewUnauthorizedError("Authorization header missing or invalid"),
			})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		identity, err := tokens.Verify(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: apperrors.ErrInvalidToken,
			})
			return
		}

		c.Set(userIDKey, identity.UserID)
		c.Set(userNameKey, identity.Name)

		// Make user_id available to context-aware logging downstream.
		ctx := logger.WithUserID(c.Request.Context(), identity.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetUserID returns the verified user id bound by AuthMiddleware.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(userIDKey)
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}

// GetUserName returns the display name carried by the verified token.
func GetUserName(c *gin.Context) string {
	name, exists := c.Get(userNameKey)
	if !exists {
		return ""
	}

	str, ok := name.(string)
	if !ok {
		return ""
	}
	return str
}
