package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutrishare/backend/internal/catalog"
)

// respondError translates domain errors into HTTP status codes. Every
// failed catalog operation surfaces to the client; nothing is swallowed.
func respondError(c *gin.Context, err error) {
	var (
		validationErr    *catalog.ValidationError
		notFoundErr      *catalog.NotFoundError
		authorizationErr *catalog.AuthorizationError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &authorizationErr):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
