package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutrishare/backend/internal/catalog"
	"github.com/nutrishare/backend/internal/models"
	"github.com/nutrishare/backend/internal/types"
)

// ProfileService handles user profiles, nutrition goals and the
// dashboard aggregates computed over favorited recipes.
type ProfileService struct {
	db      *gorm.DB
	catalog *catalog.Catalog
}

func NewProfileService(db *gorm.DB, cat *catalog.Catalog) *ProfileService {
	return &ProfileService{db: db, catalog: cat}
}

// GetProfile returns the user's profile, creating an empty one if the
// user has none yet.
func (s *ProfileService) GetProfile(userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if err == gorm.ErrRecordNotFound {
		profile = models.UserProfile{ID: uuid.New(), UserID: userID}
		if err := s.db.Create(&profile).Error; err != nil {
			return nil, err
		}
		return &profile, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile replaces the editable profile fields.
func (s *ProfileService) UpdateProfile(userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, error) {
	profile, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	profile.AvatarURL = req.AvatarURL
	profile.DietaryPreferences = req.DietaryPreferences
	profile.Allergies = req.Allergies
	profile.HealthGoals = req.HealthGoals
	profile.Specializations = req.Specializations
	profile.Certifications = req.Certifications
	profile.Experience = req.Experience

	if err := s.db.Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// GetGoals returns the user's daily nutrition targets, zero-valued when
// none have been set.
func (s *ProfileService) GetGoals(userID uuid.UUID) (*models.NutritionGoals, error) {
	var goals models.NutritionGoals
	err := s.db.Where("user_id = ?", userID).First(&goals).Error
	if err == gorm.ErrRecordNotFound {
		return &models.NutritionGoals{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &goals, nil
}

// UpdateGoals upserts the user's daily nutrition targets.
func (s *ProfileService) UpdateGoals(userID uuid.UUID, req *types.UpdateGoalsRequest) (*models.NutritionGoals, error) {
	var goals models.NutritionGoals
	err := s.db.Where("user_id = ?", userID).First(&goals).Error
	if err == gorm.ErrRecordNotFound {
		goals = models.NutritionGoals{ID: uuid.New(), UserID: userID}
	} else if err != nil {
		return nil, err
	}

	goals.Calories = req.Calories
	goals.Protein = req.Protein
	goals.Carbs = req.Carbs
	goals.Fat = req.Fat
	goals.Fiber = req.Fiber

	if err := s.db.Save(&goals).Error; err != nil {
		return nil, err
	}
	return &goals, nil
}

// DashboardStats summarizes a user's favorites for the profile area.
type DashboardStats struct {
	Favorites       int     `json:"favorites"`
	AuthoredRecipes int     `json:"authored_recipes"`
	AvgCalories     float64 `json:"avg_calories"`
	AvgPrepTime     float64 `json:"avg_prep_time"`
}

// Stats aggregates nutrition figures over the user's favorited recipes.
// Averages divide by max(count, 1) so an empty set yields zeros.
func (s *ProfileService) Stats(userID uuid.UUID) DashboardStats {
	favorites := s.catalog.FavoriteRecipes(userID)

	var calories, prepTime float64
	for _, r := range favorites {
		calories += r.NutritionFacts.Calories
		prepTime += float64(r.PrepTime)
	}
	n := len(favorites)
	div := float64(n)
	if n == 0 {
		div = 1
	}

	return DashboardStats{
		Favorites:       n,
		AuthoredRecipes: len(s.catalog.AuthoredRecipes(userID)),
		AvgCalories:     calories / div,
		AvgPrepTime:     prepTime / div,
	}
}

// RecentFavorites returns up to limit favorited recipes in catalog order.
func (s *ProfileService) RecentFavorites(userID uuid.UUID, limit int) []models.Recipe {
	favorites := s.catalog.FavoriteRecipes(userID)
	if limit > 0 && len(favorites) > limit {
		favorites = favorites[:limit]
	}
	return favorites
}
