package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nutrishare/backend/internal/middleware"
	"github.com/nutrishare/backend/internal/service"
)

const defaultRecentFavorites = 3

// DashboardHandler serves the signed-in user's dashboard widgets.
type DashboardHandler struct {
	profiles *service.ProfileService
}

func NewDashboardHandler(profiles *service.ProfileService) *DashboardHandler {
	return &DashboardHandler{profiles: profiles}
}

// GetStats returns favorite/authored counts and the nutrition averages
// over the caller's favorites.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": h.profiles.Stats(actor.ID)})
}

// GetRecentFavorites returns the caller's most recently favorited recipes.
func (h *DashboardHandler) GetRecentFavorites(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	limit := defaultRecentFavorites
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	recipes := h.profiles.RecentFavorites(actor.ID, limit)
	c.JSON(http.StatusOK, gin.H{"recipes": recipes, "total": len(recipes)})
}
