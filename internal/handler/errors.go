package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"newsdesk/internal/domain"
	"newsdesk/internal/middleware"
)

// respondError maps a service error onto the API's error contract.
// Missing records become 404, validation failures become 400 with the
// offending fields listed, and anything else is a 500 with the detail
// kept out of the response body.
func respondError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation failed",
			"fields": validationErr.Fields,
		})
	default:
		log.Printf("[request_id=%s] %s %s failed: %v",
			middleware.GetRequestID(c), c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
