package main

import (
	"context"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nutrishare/backend/config"
	"github.com/nutrishare/backend/internal/catalog"
	"github.com/nutrishare/backend/internal/database"
	"github.com/nutrishare/backend/internal/models"
)

// Demo accounts for local development. The nutritionists own the starter
// recipes via the shared seed author ids.
var demoUsers = []struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Password string
	Type     models.UserType
}{
	{catalog.SeedAuthorSarah, "Sarah", "sarah@nutrishare.dev", "password123", models.UserTypeNutritionist},
	{catalog.SeedAuthorMarcos, "Marcos", "marcos@nutrishare.dev", "password123", models.UserTypeNutritionist},
	{catalog.SeedAuthorLina, "Lina", "lina@nutrishare.dev", "password123", models.UserTypeNutritionist},
	{uuid.MustParse("4f7b9c2d-1e8a-4b36-95d0-3c6a8e5f2b04"), "Demo Client", "demo@nutrishare.dev", "password123", models.UserTypeClient},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if err := seedUsers(db); err != nil {
		log.Fatalf("failed to seed users: %v", err)
	}

	cat := catalog.New(catalog.WithBackend(catalog.NewGormBackend(db)))
	ctx := context.Background()
	if err := cat.Hydrate(ctx); err != nil {
		log.Fatalf("failed to hydrate catalog: %v", err)
	}
	if cat.Count() > 0 {
		log.Printf("catalog already has %d recipes, skipping recipe seed", cat.Count())
		return
	}
	if err := cat.Seed(ctx, catalog.StarterRecipes()); err != nil {
		log.Fatalf("failed to seed recipes: %v", err)
	}

	log.Printf("seeded %d users and %d recipes", len(demoUsers), cat.Count())
}

func seedUsers(db *gorm.DB) error {
	for _, u := range demoUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := models.User{
			ID:           u.ID,
			Name:         u.Name,
			Email:        u.Email,
			Type:         u.Type,
			PasswordHash: string(hash),
		}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&user).Error; err != nil {
			return err
		}
	}
	return nil
}
