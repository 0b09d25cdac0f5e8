package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newsdesk/internal/domain"
	"newsdesk/internal/service"
)

// CommentHandler handles public comment requests. Listing and mutation
// only see approved comments; creation is open and lands in the
// moderation queue.
type CommentHandler struct {
	commentService service.CommentServiceInterface
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService service.CommentServiceInterface) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// CommentRequest is the public comment submission payload.
type CommentRequest struct {
	ArticleID  int64  `json:"article_id"`
	AuthorName string `json:"author_name"`
	Email      string `json:"email"`
	Content    string `json:"content"`
}

// List handles GET /api/v1/comments
func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.commentService.ListApproved(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCommentResponses(comments))
}

// Get handles GET /api/v1/comments/:id
func (h *CommentHandler) Get(c *gin.Context) {
	id, ok := parsePublicID(c)
	if !ok {
		return
	}

	comment, err := h.commentService.GetApproved(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCommentResponse(comment))
}

// Create handles POST /api/v1/comments
func (h *CommentHandler) Create(c *gin.Context) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	comment := domain.Comment{
		ArticleID:  req.ArticleID,
		AuthorName: req.AuthorName,
		Email:      req.Email,
		Content:    req.Content,
	}
	if err := h.commentService.Create(c.Request.Context(), &comment); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toCommentResponse(&comment))
}

// Update handles PUT and PATCH /api/v1/comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := parsePublicID(c)
	if !ok {
		return
	}

	var req CommentRequest
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
	}
	if err := h.commentService.Update(c.Request.Context(), &comment); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCommentResponse(&comment))
}

// Delete handles DELETE /api/v1/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := parsePublicID(c)
	if !ok {
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
