package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutrishare/backend/internal/i18n"
)

// MetaHandler serves static UI metadata.
type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// GetFilters returns the filter bar options with labels in the requested
// locale. Unknown locales fall back to the default.
func (h *MetaHandler) GetFilters(c *gin.Context) {
	locale := i18n.ParseLocale(c.Query("locale"))

	c.JSON(http.StatusOK, gin.H{
		"locale":       locale,
		"categories":   i18n.CategoryOptions(locale),
		"difficulties": i18n.DifficultyOptions(locale),
		"sort_options": []string{"rating", "prepTime", "newest"},
	})
}
