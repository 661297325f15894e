package middleware

import (
	"net/http"
	"strings"

	"book-commerce-platform/internal/models"

	"github.com/gin-gonic/gin"
)

// IdentityKey is the gin context key the authenticated identity is stored
// under.
const IdentityKey = "identity"

// Authenticator verifies a bearer token and yields the embedded identity.
type Authenticator interface {
	Authenticate(token string) (*models.Identity, error)
}

// RequireAuth rejects requests without a valid bearer token. A missing
// Authorization header yields 401; a token that fails verification yields
// 403. The "Bearer " prefix is optional, matching the original middleware.
func RequireAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")

		identity, err := auth.Authenticate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// IdentityFromContext returns the authenticated identity set by RequireAuth,
// or nil when the request is unauthenticated.
func IdentityFromContext(c *gin.Context) *models.Identity {
	value, exists := c.Get(IdentityKey)
	if !exists {
		return nil
	}
	identity, ok := value.(*models.Identity)
	if !ok {
		return nil
	}
	return identity
}
