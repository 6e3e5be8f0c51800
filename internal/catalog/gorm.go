package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nutrishare/backend/internal/models"
)

// GormBackend persists the catalog through GORM. Each Backend call maps
// to a single upsert/delete, so a restarted process can rebuild the
// in-memory state with Hydrate.
type GormBackend struct {
	db *gorm.DB
}

func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{db: db}
}

func (b *GormBackend) LoadRecipes(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := b.db.WithContext(ctx).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB { return db.Order("reviews.id") }).
		Order("id").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	for i := range recipes {
		if recipes[i].Reviews == nil {
			recipes[i].Reviews = []models.Review{}
		}
	}
	return recipes, nil
}

func (b *GormBackend) LoadFavorites(ctx context.Context) ([]models.RecipeFavorite, error) {
	var favs []models.RecipeFavorite
	if err := b.db.WithContext(ctx).Find(&favs).Error; err != nil {
		return nil, err
	}
	return favs, nil
}

func (b *GormBackend) SaveRecipe(ctx context.Context, recipe *models.Recipe) error {
	return b.db.WithContext(ctx).
		Omit("Reviews").
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(recipe).Error
}

func (b *GormBackend) DeleteRecipe(ctx context.Context, id int64) error {
	return b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeFavorite{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Recipe{}, "id = ?", id).Error
	})
}

func (b *GormBackend) SaveReview(ctx context.Context, review *models.Review) error {
	return b.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(review).Error
}

func (b *GormBackend) SaveFavorite(ctx context.Context, fav models.RecipeFavorite) error {
	return b.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&fav).Error
}

func (b *GormBackend) DeleteFavorite(ctx context.Context, userID uuid.UUID, recipeID int64) error {
	return b.db.WithContext(ctx).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Delete(&models.RecipeFavorite{}).Error
}
