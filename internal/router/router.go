package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nutrishare/backend/internal/api"
	"github.com/nutrishare/backend/internal/middleware"
)

// Deps collects everything the route table needs. History, Images and
// WriteLimiter are optional; their routes and middleware are skipped
// when nil.
type Deps struct {
	Auth       *api.AuthHandler
	Recipes    *api.RecipeHandler
	Profile    *api.ProfileHandler
	Dashboard  *api.DashboardHandler
	History    *api.HistoryHandler
	Images     *api.ImageHandler
	Validator  middleware.TokenValidator
	WriteLimit *middleware.RateLimiter
	Logger     *zap.SugaredLogger
}

// SetupRouter configures the application routes.
func SetupRouter(deps Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.Recovery(deps.Logger))
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	v1.GET("/meta/filters", api.NewMetaHandler().GetFilters)

	// Auth routes
	auth := v1.Group("/auth")
	{
		auth.POST("/register", deps.Auth.Register)
		auth.POST("/login", deps.Auth.Login)
	}

	// Browsing is public; a bearer token, when present, personalizes
	// the response and attributes search history.
	browse := v1.Group("/recipes")
	browse.Use(middleware.OptionalAuth(deps.Validator))
	{
		browse.GET("", deps.Recipes.ListRecipes)
		browse.GET("/:id", deps.Recipes.GetRecipe)
	}

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Validator))
	{
		// Catalog writes, rate limited when Redis is available
		writes := protected.Group("")
		if deps.WriteLimit != nil {
			writes.Use(deps.WriteLimit.Middleware())
		}
		{
			writes.POST("/recipes", deps.Recipes.CreateRecipe)
			writes.PUT("/recipes/:id", deps.Recipes.UpdateRecipe)
			writes.DELETE("/recipes/:id", deps.Recipes.DeleteRecipe)
			writes.POST("/recipes/:id/reviews", deps.Recipes.AddReview)
		}

		// Favorites
		protected.POST("/recipes/:id/favorite", deps.Recipes.FavoriteRecipe)
		protected.DELETE("/recipes/:id/favorite", deps.Recipes.UnfavoriteRecipe)
		protected.GET("/favorites", deps.Recipes.ListFavorites)

		// Profile routes
		profile := protected.Group("/profile")
		{
			profile.GET("", deps.Profile.GetProfile)
			profile.PUT("", deps.Profile.UpdateProfile)
			profile.GET("/goals", deps.Profile.GetGoals)
			profile.PUT("/goals", deps.Profile.UpdateGoals)
		}

		// Dashboard routes
		dashboard := protected.Group("/dashboard")
		{
			dashboard.GET("/stats", deps.Dashboard.GetStats)
			dashboard.GET("/favorites/recent", deps.Dashboard.GetRecentFavorites)
		}

		// Search history, Redis-backed
		if deps.History != nil {
			protected.GET("/search/history", deps.History.GetHistory)
			protected.DELETE("/search/history", deps.History.ClearHistory)
		}

		// Image uploads, S3-backed
		if deps.Images != nil {
			protected.POST("/images", deps.Images.Upload)
		}
	}

	return router
}
