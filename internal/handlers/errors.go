package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"book-commerce-platform/internal/models"

	"github.com/gin-gonic/gin"
)

// requestTimeout bounds every store-touching request.
const requestTimeout = 10 * time.Second

// respondError translates service errors into HTTP responses. Validation
// and auth failures surface their message; anything unexpected is logged
// and answered with a generic 500 so internals never leak to the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrMissingField),
		errors.Is(err, models.ErrDuplicateUser),
		errors.Is(err, models.ErrEmptyCart),
		errors.Is(err, models.ErrInvalidPayload),
		errors.Is(err, models.ErrTotalMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrInvalidCredentials),
		errors.Is(err, models.ErrMissingToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrInvalidToken):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
