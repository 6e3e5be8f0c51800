package types

import "github.com/nutrishare/backend/internal/models"

// RegisterRequest represents the request body for account registration.
type RegisterRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	AccountType string `json:"account_type" binding:"required,oneof=client nutritionist"`
}

// LoginRequest represents the request body for signing in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the signed token back to the client.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user,omitempty"`
}

// UpdateProfileRequest represents the editable profile fields.
type UpdateProfileRequest struct {
	AvatarURL          string   `json:"avatar_url"`
	DietaryPreferences []string `json:"dietary_preferences"`
	Allergies          []string `json:"allergies"`
	HealthGoals        []string `json:"health_goals"`
	Specializations    []string `json:"specializations"`
	Certifications     []string `json:"certifications"`
	Experience         string   `json:"experience"`
}

// UpdateGoalsRequest represents the daily nutrition targets.
type UpdateGoalsRequest struct {
	Calories float64 `json:"calories" binding:"min=0"`
	Protein  float64 `json:"protein" binding:"min=0"`
	Carbs    float64 `json:"carbs" binding:"min=0"`
	Fat      float64 `json:"fat" binding:"min=0"`
	Fiber    float64 `json:"fiber" binding:"min=0"`
}
