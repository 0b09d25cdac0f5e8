package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"newsdesk/internal/domain"
	"newsdesk/internal/middleware"
	"newsdesk/internal/service"
)

// AdminHandler handles the privileged administrative API. All routes
// behind it assume the admin auth middleware has already run.
type AdminHandler struct {
	categoryService service.CategoryServiceInterface
	articleService  service.ArticleServiceInterface
	commentService  service.CommentServiceInterface
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(
	categoryService service.CategoryServiceInterface,
	articleService service.ArticleServiceInterface,
	commentService service.CommentServiceInterface,
) *AdminHandler {
	return &AdminHandler{
		categoryService: categoryService,
		articleService:  articleService,
		commentService:  commentService,
	}
}

// CategoryRequest is the admin category payload.
type CategoryRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// ArticleRequest is the admin article payload. An empty author on
// creation is stamped with the acting identity.
type ArticleRequest struct {
	Title         string  `json:"title"`
	Slug          string  `json:"slug"`
	Content       string  `json:"content"`
	Excerpt       string  `json:"excerpt"`
	AuthorID      string  `json:"author_id"`
	CategoryID    *int64  `json:"category_id"`
	Image         *string `json:"image"`
	Status        string  `json:"status"`
	PublishedDate string  `json:"published_date"`
	IsFeatured    bool    `json:"is_featured"`
}

// AdminCommentRequest is the admin comment payload, including the
// moderation flag.
type AdminCommentRequest struct {
	ArticleID  int64  `json:"article_id"`
	AuthorName string `json:"author_name"`
	Email      string `json:"email"`
	Content    string `json:"content"`
	IsApproved bool   `json:"is_approved"`
}

// BulkApproveRequest selects comments for bulk approval.
type BulkApproveRequest struct {
	IDs []int64 `json:"ids"`
}

// parseAdminID parses a numeric path parameter. Admin routes report a
// malformed identifier as a client error.
func parseAdminID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a positive integer"})
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, name string) (int, bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, false, domain.NewValidationError(name, "must be a non-negative integer")
	}
	return v, true, nil
}

func queryBool(c *gin.Context, name string) (*bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be a boolean")
	}
	return &v, nil
}

func queryTime(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be an RFC3339 timestamp")
	}
	return &v, nil
}

// ListCategories handles GET /api/v1/admin/categories
func (h *AdminHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context(), c.Query("name"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCategoryResponses(categories))
}

// GetCategory handles GET /api/v1/admin/categories/:id
func (h *AdminHandler) GetCategory(c *gin.Context) {
	id, ok := parseAdminID(c)
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

// CreateCategory handles POST /api/v1/admin/categories
func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	category := domain.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	}
	if err := h.categoryService.Create(c.Request.Context(), &category); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toCategoryResponse(&category))
}

// UpdateCategory handles PUT /api/v1/admin/categories/:id
func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseAdminID(c)
	if !ok {
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	category := domain.Category{
		ID:          id,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	}
	if err := h.categoryService.Update(c.Request.Context(), &category); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCategoryResponse(&category))
}

// DeleteCategory handles DELETE /api/v1/admin/categories/:id
// Articles in the category keep existing with no category.
func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseAdminID(c)
	if !ok {
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListArticles handles GET /api/v1/admin/articles
// Supported filters: status, category_id, featured, published_after,
// published_before, q, limit, offset.
func (h *AdminHandler) ListArticles(c *gin.Context) {
	var filter domain.ArticleFilter

	filter.Status = c.Query("status")
	if filter.Status != "" && !domain.IsValidStatus(filter.Status) {
		respondError(c, domain.NewValidationError("status", "must be one of: draft, published, archived"))
		return
	}
	filter.Query = c.Query("q")

	if categoryID, set, err := queryInt(c, "category_id"); err != nil {
		respondError(c, err)
		return
	} else if set {
		id := int64(categoryID)
		filter.CategoryID = &id
	}

	featured, err := queryBool(c, "featured")
	if err != nil {
		respondError(c, err)
		return
	}
	filter.Featured = featured

	if filter.PublishedAfter, err = queryTime(c, "published_after"); err != nil {
		respondError(c, err)
		return
	}
	if filter.PublishedBefore, err = queryTime(c, "published_before"); err != nil {
		respondError(c, err)
		return
	}

	if filter.Limit, _, err = queryInt(c, "limit"); err != nil {
		respondError(c, err)
		return
	}
	if filter.Offset, _, err = queryInt(c, "offset"); err != nil {
		respondError(c, err)
		return
	}

	articles, err := h.articleService.ListAdmin(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAdminArticleResponses(articles))
}

// GetArticle handles GET /api/v1/admin/articles/:id
func (h *AdminHandler) GetArticle(c *gin.Context) {
	id, ok := parseAdminID(c)
	if !ok {
		return
	}

	article, err := h.articleService.GetAdmin(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAdminArticleResponse(article))
}

func articleFromRequest(c *gin.Context, req *ArticleRequest) (*domain.Article, error) {
	article := &domain.Article{
		Title:      req.Title,
		Slug:       req.Slug,
		Content:    req.Content,
		Excerpt:    req.Excerpt,
		AuthorID:   req.AuthorID,
		CategoryID: req.CategoryID,
		Image:      req.Image,
		Status:     req.Status,
		IsFeatured: req.IsFeatured,
	}
	if req.PublishedDate != "" {
		publishedDate, err := time.Parse(time.RFC3339, req.PublishedDate)
		if err != nil {
			return nil, domain.NewValidationError("published_date", "must be an RFC3339 timestamp")
		}
		article.PublishedDate = publishedDate
	}
	return article, nil
}

// CreateArticle handles POST /api/v1/admin/articles
// When the payload names no author, the acting identity from the
// X-Actor-ID header becomes the author.
func (h *AdminHandler) CreateArticle(c *gin.Context) {
	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article, err := articleFromRequest(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.articleService.Create(c.Request.Context(), article, middleware.GetActorID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toAdminArticleResponse(&domain.ArticleView{Article: *article}))
}

// UpdateArticle handles PUT /api/v1/admin/articles/:id
func (h *AdminHandler) UpdateArticle(c *gin.Context) {
	id, ok := parseAdminID(c)
	if !ok {
		return
	}

	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article, err := articleFromRequest(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	article.ID = id

	if err := h.articleService.Update(c.Request.Context(), article); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAdminArticleResponse(&domain.ArticleView{Article: *article}))
}

// DeleteArticle handles DELETE /api/v1/admin/articles/:id
// The article's comments go with it.
func (h *AdminHandler) DeleteArticle(c *gin.Context) {
	id, ok := parseAdminID(c)
	if !ok {
		return
	}

	if err := h.articleService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListComments handles GET /api/v1/admin/comments
// Supported filters: approved, created_after, created_before, q, limit,
// offset.
func (h *AdminHandler) ListComments(c *gin.Context) {
	var filter domain.CommentFilter
	var err error

	filter.Query = c.Query("q")

	if filter.Approved, err = queryBool(c, "approved"); err != nil {
		respondError(c, err)
		return
	}
	if filter.CreatedAfter, err = queryTime(c, "created_after"); err != nil {
		respondError(c, err)
		return
	}
	if filter.CreatedBefore, err = queryTime(c, "created_before"); err != nil {
		respondError(c, err)
		return
	}
	if filter.Limit, _, err = queryInt(c, "limit"); err != nil {
		respondError(c, err)
		return
	}
	if filter.Offset, _, err = queryInt(c, "offset"); err != nil {
		respondError(c, err)
		return
	}

	comments, err := h.commentService.ListAdmin(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAdminCommentResponses(comments))
}

// GetComment handles GET /api/v1/admin/comments/:id
func (h *AdminHandler) GetComment(c *gin.Context) {
	id, ok := parseAdminID(c)
	if !ok {
		return
	}

	comment, err := h.commentService.GetAdmin(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAdminCommentResponse(comment))
}

// UpdateComment handles PUT /api/v1/admin/comments/:id
func (h *AdminHandler) UpdateComment(c *gin.Context) {
	id, ok := parseAdminID(c)
	if !ok {
		return
	}

	var req AdminCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	comment := domain.Comment{
		ID:         id,
		ArticleID:  req.ArticleID,
		AuthorName: req.AuthorName,
		Email:      req.Email,
		Content:    req.Content,
		IsApproved: req.IsApproved,
	}
	if err := h.commentService.UpdateAdmin(c.Request.Context(), &comment); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAdminCommentResponse(&comment))
}

// DeleteComment handles DELETE /api/v1/admin/comments/:id
func (h *AdminHandler) DeleteComment(c *gin.Context) {
	id, ok := parseAdminID(c)
	if !ok {
		return
	}

	if err := h.commentService.DeleteAdmin(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// BulkApproveComments handles POST /api/v1/admin/comments/approve
// Approves exactly the listed comments and reports how many changed.
func (h *AdminHandler) BulkApproveComments(c *gin.Context) {
	var req BulkApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	approved, err := h.commentService.BulkApprove(c.Request.Context(), req.IDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"approved": approved})
}
