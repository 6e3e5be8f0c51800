package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nutrishare/backend/internal/middleware"
	"github.com/nutrishare/backend/internal/service"
	"github.com/nutrishare/backend/internal/types"
)

// ProfileHandler serves the signed-in user's profile and nutrition goals.
type ProfileHandler struct {
	profiles *service.ProfileService
	auth     *service.AuthService
	logger   *zap.SugaredLogger
}

func NewProfileHandler(profiles *service.ProfileService, auth *service.AuthService, logger *zap.SugaredLogger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, auth: auth, logger: logger}
}

// GetProfile returns the caller's account and profile details.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	user, err := h.auth.GetUser(actor.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	profile, err := h.profiles.GetProfile(actor.ID)
	if err != nil {
		h.logger.Errorw("failed to load profile", "error", err, "user_id", actor.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "profile": profile})
}

// UpdateProfile replaces the caller's editable profile fields.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	profile, err := h.profiles.UpdateProfile(actor.ID, &req)
	if err != nil {
		h.logger.Errorw("failed to update profile", "error", err, "user_id", actor.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// GetGoals returns the caller's daily nutrition targets. Users who never
// set goals get zero values.
func (h *ProfileHandler) GetGoals(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	goals, err := h.profiles.GetGoals(actor.ID)
	if err != nil {
		h.logger.Errorw("failed to load goals", "error", err, "user_id", actor.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load goals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

// UpdateGoals upserts the caller's daily nutrition targets.
func (h *ProfileHandler) UpdateGoals(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.UpdateGoalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goals, err := h.profiles.UpdateGoals(actor.ID, &req)
	if err != nil {
		h.logger.Errorw("failed to update goals", "error", err, "user_id", actor.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update goals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"goals": goals})
}
