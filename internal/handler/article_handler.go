package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newsdesk/internal/service"
)

// ArticleHandler handles public article requests. Only published
// articles are reachable through these routes.
type ArticleHandler struct {
	articleService service.ArticleServiceInterface
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articleService service.ArticleServiceInterface) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// List handles GET /api/v1/articles
func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.articleService.ListPublished(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toArticleListResponses(articles))
}

// Get handles GET /api/v1/articles/:id
// Retrieval counts as a view before the article is returned.
func (h *ArticleHandler) Get(c *gin.Context) {
	id, ok := parsePublicID(c)
	if !ok {
		return
	}

	detail, err := h.articleService.GetPublished(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toArticleDetailResponse(detail))
}

// Featured handles GET /api/v1/articles/featured
func (h *ArticleHandler) Featured(c *gin.Context) {
	articles, err := h.articleService.Featured(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toArticleListResponses(articles))
}

// Search handles GET /api/v1/articles/search?q=
func (h *ArticleHandler) Search(c *gin.Context) {
	articles, err := h.articleService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toArticleListResponses(articles))
}
