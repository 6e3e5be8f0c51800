package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nutrishare/backend/internal/middleware"
	"github.com/nutrishare/backend/internal/service"
)

// HistoryHandler serves the caller's recent search terms. Only mounted
// when Redis is configured.
type HistoryHandler struct {
	history *service.SearchHistoryService
	logger  *zap.SugaredLogger
}

func NewHistoryHandler(history *service.SearchHistoryService, logger *zap.SugaredLogger) *HistoryHandler {
	return &HistoryHandler{history: history, logger: logger}
}

// GetHistory returns the caller's recent searches, most recent first.
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	queries, err := h.history.Recent(c.Request.Context(), actor.ID)
	if err != nil {
		h.logger.Errorw("failed to load search history", "error", err, "user_id", actor.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load search history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"queries": queries})
}

// ClearHistory wipes the caller's search history.
func (h *HistoryHandler) ClearHistory(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.history.Clear(c.Request.Context(), actor.ID); err != nil {
		h.logger.Errorw("failed to clear search history", "error", err, "user_id", actor.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear search history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "search history cleared"})
}
