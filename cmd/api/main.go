package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nutrishare/backend/config"
	"github.com/nutrishare/backend/internal/api"
	"github.com/nutrishare/backend/internal/catalog"
	"github.com/nutrishare/backend/internal/database"
	"github.com/nutrishare/backend/internal/middleware"
	"github.com/nutrishare/backend/internal/router"
	"github.com/nutrishare/backend/internal/server"
	"github.com/nutrishare/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := newLogger()
	defer logger.Sync()
	sugar := logger.Sugar()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.New(cfg)
	if err != nil {
		sugar.Fatalw("failed to connect to database", "error", err)
	}
	if err := database.Migrate(db); err != nil {
		sugar.Fatalw("failed to run migrations", "error", err)
	}

	ctx := context.Background()

	// The catalog is the source of truth for recipes; the database is
	// its durable backend.
	cat := catalog.New(catalog.WithBackend(catalog.NewGormBackend(db)))
	if err := cat.Hydrate(ctx); err != nil {
		sugar.Fatalw("failed to hydrate catalog", "error", err)
	}
	if cfg.SeedOnStartup && cat.Count() == 0 {
		if err := cat.Seed(ctx, catalog.StarterRecipes()); err != nil {
			sugar.Fatalw("failed to seed catalog", "error", err)
		}
		sugar.Infow("seeded starter recipes", "count", cat.Count())
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	profileService := service.NewProfileService(db, cat)

	deps := router.Deps{
		Auth:      api.NewAuthHandler(authService, sugar),
		Recipes:   api.NewRecipeHandler(cat, nil, sugar),
		Profile:   api.NewProfileHandler(profileService, authService, sugar),
		Dashboard: api.NewDashboardHandler(profileService),
		Validator: authService,
		Logger:    sugar,
	}

	// Redis is optional: without it search history and write rate
	// limiting are simply disabled.
	if cfg.RedisAddr != "" || cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(cfg)
		if err != nil {
			sugar.Fatalw("failed to connect to redis", "error", err)
		}
		historyService := service.NewSearchHistoryService(redisClient)
		deps.Recipes = api.NewRecipeHandler(cat, historyService, sugar)
		deps.History = api.NewHistoryHandler(historyService, sugar)
		deps.WriteLimit = middleware.NewWriteRateLimiter(redisClient)
		sugar.Infow("redis connected", "addr", cfg.RedisAddr)
	}

	// S3 is optional: without it image uploads are disabled and recipes
	// keep whatever image URLs clients submit.
	if cfg.S3Bucket != "" {
		s3cfg, err := config.NewS3Config(ctx, cfg)
		if err != nil {
			sugar.Fatalw("failed to configure object storage", "error", err)
		}
		deps.Images = api.NewImageHandler(service.NewImageService(s3cfg), sugar)
	}

	srv := server.New(cfg.Addr(), router.SetupRouter(deps), sugar)
	if err := srv.Run(); err != nil {
		sugar.Fatalw("server error", "error", err)
	}
	sugar.Info("server stopped")
}

func newLogger() *zap.Logger {
	if config.IsProduction() {
		logger, err := zap.NewProduction()
		if err != nil {
			log.Fatalf("failed to build logger: %v", err)
		}
		return logger
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	return logger
}
