package types

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/nutrishare/backend/internal/models"
)

// TokenClaims represents the claims in a JWT token.
type TokenClaims struct {
	jwt.RegisteredClaims
	UserID   uuid.UUID       `json:"user_id"`
	Name     string          `json:"name"`
	UserType models.UserType `json:"user_type"`
}
