package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nutrishare/backend/internal/catalog"
	"github.com/nutrishare/backend/internal/models"
	"github.com/nutrishare/backend/internal/types"
)

// TokenValidator is an interface for validating JWT tokens
type TokenValidator interface {
	ValidateToken(token string) (*types.TokenClaims, error)
}

// AuthMiddleware creates a middleware that validates JWT tokens and
// stores the caller's identity in the request context.
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := validator.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_name", claims.Name)
		c.Set("user_type", claims.UserType)
		c.Next()
	}
}

// OptionalAuth populates the caller's identity when a valid bearer token
// is present but lets anonymous requests through. Used on public read
// routes that personalize their behavior for signed-in users.
func OptionalAuth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			if claims, err := validator.ValidateToken(parts[1]); err == nil {
				c.Set("user_id", claims.UserID)
				c.Set("user_name", claims.Name)
				c.Set("user_type", claims.UserType)
			}
		}
		c.Next()
	}
}

// ActorFromContext rebuilds the catalog actor stored by AuthMiddleware.
// The second return is false on unauthenticated requests.
func ActorFromContext(c *gin.Context) (catalog.Actor, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return catalog.Actor{}, false
	}
	actor := catalog.Actor{ID: userID.(uuid.UUID)}
	if name, ok := c.Get("user_name"); ok {
		actor.Name = name.(string)
	}
	if userType, ok := c.Get("user_type"); ok {
		actor.Type = userType.(models.UserType)
	}
	return actor, true
}
