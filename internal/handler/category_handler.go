// Package handler contains the Gin HTTP handlers for the public and
// administrative APIs.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"newsdesk/internal/service"
)

// CategoryHandler handles public category requests.
type CategoryHandler struct {
	categoryService service.CategoryServiceInterface
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService service.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// parsePublicID parses a numeric path parameter. Public routes treat a
// malformed identifier like a missing record.
func parsePublicID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return id, true
}

// List handles GET /api/v1/categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context(), c.Query("name"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCategoryResponses(categories))
}

// Get handles GET /api/v1/categories/:id
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := parsePublicID(c)
	if !ok {
		return
	}

	category, err := h.categoryService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCategoryResponse(category))
}
