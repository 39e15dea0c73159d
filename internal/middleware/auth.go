package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pageza/digital-parsley/backend/internal/types"
)

const (
	// AuthTokenHeader carries the caller's token
	AuthTokenHeader = "X-Auth-Token"
	// UserIDKey is the context key of the authenticated Firebase id
	UserIDKey = "user_id"
)

// TokenValidator is an interface for validating auth tokens
type TokenValidator interface {
	ValidateToken(token string) (*types.TokenClaims, error)
}

// AuthMiddleware creates a middleware that resolves the X-Auth-Token header
// (or an Authorization bearer token) to a user id
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing auth token"})
			return
		}

		claims, err := validator.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid auth token"})
			return
		}

		// Store user info in context
		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}

func extractToken(c *gin.Context) (string, bool) {
	if token := strings.TrimSpace(c.GetHeader(AuthTokenHeader)); token != "" {
		return token, true
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

// UserID returns the authenticated user id stored by AuthMiddleware
func UserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
