package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nutrishare/backend/internal/catalog"
	"github.com/nutrishare/backend/internal/middleware"
	"github.com/nutrishare/backend/internal/service"
)

// RecipeHandler serves the catalog routes: browsing with filters, the
// author CRUD surface, favorites and reviews.
type RecipeHandler struct {
	catalog *catalog.Catalog
	history *service.SearchHistoryService
	logger  *zap.SugaredLogger
}

// NewRecipeHandler creates a recipe handler. history may be nil when no
// Redis instance is configured; search recording is skipped in that case.
func NewRecipeHandler(cat *catalog.Catalog, history *service.SearchHistoryService, logger *zap.SugaredLogger) *RecipeHandler {
	return &RecipeHandler{catalog: cat, history: history, logger: logger}
}

// criteriaFromQuery maps the request's query string onto filter criteria.
// Absent parameters keep their defaults, so a bare GET returns the full
// catalog in insertion order.
func criteriaFromQuery(c *gin.Context) catalog.Criteria {
	criteria := catalog.DefaultCriteria()
	if category := c.Query("category"); category != "" {
		criteria.SetCategory(category)
	}
	if q := c.Query("q"); q != "" {
		criteria.SetSearchQuery(q)
	}
	if difficulty := c.Query("difficulty"); difficulty != "" {
		criteria.SetDifficulty(difficulty)
	}
	minTime, errMin := strconv.Atoi(c.Query("min_time"))
	maxTime, errMax := strconv.Atoi(c.Query("max_time"))
	if errMin == nil || errMax == nil {
		r := catalog.PrepTimeRange{}
		if errMin == nil {
			r.Min = minTime
		}
		if errMax == nil {
			r.Max = maxTime
		}
		criteria.SetPrepTimeRange(&r)
	}
	if sortBy := c.Query("sort"); sortBy != "" {
		criteria.SetSortBy(catalog.SortOption(sortBy))
	}
	return criteria
}

// ListRecipes returns the catalog filtered by the query parameters.
// Signed-in callers get their non-empty search terms recorded.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	criteria := criteriaFromQuery(c)

	if h.history != nil && strings.TrimSpace(criteria.SearchQuery) != "" {
		if actor, ok := middleware.ActorFromContext(c); ok {
			if err := h.history.Record(c.Request.Context(), actor.ID, criteria.SearchQuery); err != nil {
				h.logger.Warnw("failed to record search query", "error", err, "user_id", actor.ID)
			}
		}
	}

	recipes := catalog.Project(h.catalog.List(), criteria)
	c.JSON(http.StatusOK, gin.H{
		"recipes": recipes,
		"total":   len(recipes),
	})
}

// GetRecipe returns a single recipe by id.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := parseRecipeID(c)
	if err != nil {
		return
	}

	recipe, err := h.catalog.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := gin.H{"recipe": recipe}
	if actor, ok := middleware.ActorFromContext(c); ok {
		resp["is_favorite"] = h.catalog.IsFavorite(actor.ID, id)
	}
	c.JSON(http.StatusOK, resp)
}

// CreateRecipe adds a recipe authored by the caller.
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var draft catalog.RecipeDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	recipe, err := h.catalog.Create(c.Request.Context(), actor, draft)
	if err != nil {
		respondError(c, err)
		return
	}

	h.logger.Infow("recipe created", "recipe_id", recipe.ID, "author_id", actor.ID)
	c.JSON(http.StatusCreated, gin.H{"recipe": recipe})
}

// UpdateRecipe replaces the editable fields of a recipe the caller authored.
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, err := parseRecipeID(c)
	if err != nil {
		return
	}

	var draft catalog.RecipeDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	recipe, err := h.catalog.Update(c.Request.Context(), actor, id, draft)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

// DeleteRecipe removes a recipe the caller authored, along with every
// user's favorite pointing at it.
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, err := parseRecipeID(c)
	if err != nil {
		return
	}

	if err := h.catalog.Delete(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}

	h.logger.Infow("recipe deleted", "recipe_id", id, "author_id", actor.ID)
	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted"})
}

// FavoriteRecipe marks a recipe as a favorite of the caller. Favoriting
// an already-favorited recipe is a no-op.
func (h *RecipeHandler) FavoriteRecipe(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, err := parseRecipeID(c)
	if err != nil {
		return
	}

	if err := h.catalog.AddFavorite(c.Request.Context(), actor.ID, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "recipe favorited", "recipe_id": id})
}

// UnfavoriteRecipe removes a recipe from the caller's favorites.
func (h *RecipeHandler) UnfavoriteRecipe(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, err := parseRecipeID(c)
	if err != nil {
		return
	}

	if err := h.catalog.RemoveFavorite(c.Request.Context(), actor.ID, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "recipe unfavorited", "recipe_id": id})
}

// ListFavorites returns the caller's favorite recipes in catalog order.
func (h *RecipeHandler) ListFavorites(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	recipes := h.catalog.FavoriteRecipes(actor.ID)
	c.JSON(http.StatusOK, gin.H{
		"recipes": recipes,
		"total":   len(recipes),
	})
}

// AddReview appends the caller's review to a recipe and folds its rating
// into the recipe's aggregate.
func (h *RecipeHandler) AddReview(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, err := parseRecipeID(c)
	if err != nil {
		return
	}

	var draft catalog.ReviewDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	review, err := h.catalog.AddReview(c.Request.Context(), actor, id, draft)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"review": review})
}

// parseRecipeID reads the :id path parameter. On a malformed id it writes
// the 400 response itself and returns a non-nil error.
func parseRecipeID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return 0, err
	}
	return id, nil
}
