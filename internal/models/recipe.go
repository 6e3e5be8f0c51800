package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// JSONStringArray stores an ordered list of strings as a JSON column.
type JSONStringArray []string

// Value implements the driver.Valuer interface
func (a JSONStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// NutritionFacts is the fixed per-recipe nutrition record.
type NutritionFacts struct {
	Calories float64 `gorm:"type:float" json:"calories"`
	Protein  float64 `gorm:"type:float" json:"protein"`
	Carbs    float64 `gorm:"type:float" json:"carbs"`
	Fat      float64 `gorm:"type:float" json:"fat"`
	Fiber    float64 `gorm:"type:float" json:"fiber"`
}

// Recipe is one user-authored dish entry. IDs are assigned by the catalog
// (max existing + 1), not by the database.
type Recipe struct {
	ID             int64           `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Title          string          `gorm:"size:255;not null" json:"title"`
	Description    string          `gorm:"type:text" json:"description"`
	Image          string          `gorm:"size:512" json:"image"`
	PrepTime       int             `gorm:"not null" json:"prep_time"`
	Difficulty     string          `gorm:"size:20;not null" json:"difficulty"`
	Category       string          `gorm:"size:50" json:"category"`
	Ingredients    JSONStringArray `gorm:"type:json;not null;default:'[]'" json:"ingredients"`
	Instructions   JSONStringArray `gorm:"type:json;not null;default:'[]'" json:"instructions"`
	NutritionFacts NutritionFacts  `gorm:"embedded;embeddedPrefix:nutrition_" json:"nutrition_facts"`
	Rating         float64         `gorm:"type:float" json:"rating"`
	Reviews        []Review        `gorm:"foreignKey:RecipeID;references:ID" json:"reviews"`
	AuthorID       uuid.UUID       `gorm:"type:varchar(36);not null" json:"author_id"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Review is one user's feedback on a recipe. IDs are unique within the
// owning recipe, assigned at submission time.
type Review struct {
	ID       int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	RecipeID int64     `gorm:"primaryKey;autoIncrement:false" json:"-"`
	UserID   uuid.UUID `gorm:"type:varchar(36);not null" json:"user_id"`
	UserName string    `gorm:"size:255;not null" json:"user_name"`
	Rating   int       `gorm:"not null" json:"rating"`
	Comment  string    `gorm:"type:text;not null" json:"comment"`
	Date     string    `gorm:"size:10;not null" json:"date"`
}

// RecipeFavorite marks a recipe as a favorite of a user. The composite
// primary key gives favorites set semantics at the persistence layer too.
type RecipeFavorite struct {
	RecipeID  int64     `gorm:"primaryKey;autoIncrement:false" json:"recipe_id"`
	UserID    uuid.UUID `gorm:"primaryKey;type:varchar(36)" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
