package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserType distinguishes recipe authors from regular accounts. Only
// nutritionists may create recipes.
type UserType string

const (
	UserTypeClient       UserType = "client"
	UserTypeNutritionist UserType = "nutritionist"
)

type User struct {
	ID           uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Name         string         `gorm:"not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	Type         UserType       `gorm:"size:20;not null;default:'client'" json:"type"`
	PasswordHash string         `gorm:"not null" json:"-"`
}

type UserProfile struct {
	ID                 uuid.UUID       `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID             uuid.UUID       `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	AvatarURL          string          `gorm:"size:512" json:"avatar_url"`
	DietaryPreferences JSONStringArray `gorm:"type:json;default:'[]'" json:"dietary_preferences"`
	Allergies          JSONStringArray `gorm:"type:json;default:'[]'" json:"allergies"`
	HealthGoals        JSONStringArray `gorm:"type:json;default:'[]'" json:"health_goals"`
	Specializations    JSONStringArray `gorm:"type:json;default:'[]'" json:"specializations"`
	Certifications     JSONStringArray `gorm:"type:json;default:'[]'" json:"certifications"`
	Experience         string          `gorm:"type:text" json:"experience"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
	DeletedAt          gorm.DeletedAt  `gorm:"index" json:"-"`
}

// NutritionGoals holds a user's daily nutrition targets, shown alongside
// the dashboard aggregates.
type NutritionGoals struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	Calories  float64   `gorm:"type:float" json:"calories"`
	Protein   float64   `gorm:"type:float" json:"protein"`
	Carbs     float64   `gorm:"type:float" json:"carbs"`
	Fat       float64   `gorm:"type:float" json:"fat"`
	Fiber     float64   `gorm:"type:float" json:"fiber"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
