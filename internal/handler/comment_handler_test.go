package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/domain"
	"newsdesk/internal/mocks"
)

func newCommentRouter(mockService *mocks.MockCommentServiceInterface) *gin.Engine {
	h := NewCommentHandler(mockService)
	router := gin.New()
	comments := router.Group("/api/v1/comments")
	comments.GET("", h.List)
	comments.GET("/:id", h.Get)
	comments.POST("", h.Create)
	comments.PUT("/:id", h.Update)
	comments.PATCH("/:id", h.Update)
	comments.DELETE("/:id", h.Delete)
	return router
}

func TestCommentHandler_Create(t *testing.T) {
	t.Run("accepts a submission and returns 201", func(t *testing.T) {
		mockService := mocks.NewMockCommentServiceInterface(t)
		mockService.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.Comment")).
			Run(func(ctx context.Context, comment *domain.Comment) {
				comment.ID = 11
				comment.CreatedDate = time.Now()
			}).
			Return(nil)

		router := newCommentRouter(mockService)
		body, _ := json.Marshal(CommentRequest{
			ArticleID:  3,
			AuthorName: "Reader",
			Email:      "reader@example.com",
			Content:    "Great article",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/comments", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var response CommentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, int64(11), response.ID)
		assert.Equal(t, "Reader", response.AuthorName)
		// The public shape never includes the email or the moderation flag
		assert.NotContains(t, w.Body.String(), "reader@example.com")
		assert.NotContains(t, w.Body.String(), "is_approved")
	})

	t.Run("malformed body becomes 400", func(t *testing.T) {
		mockService := mocks.NewMockCommentServiceInterface(t)

		router := newCommentRouter(mockService)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/comments", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid request body")
	})

	t.Run("validation failure lists the offending fields", func(t *testing.T) {
		mockService := mocks.NewMockCommentServiceInterface(t)
		mockService.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.Comment")).
			Return(&domain.ValidationError{Fields: map[string]string{
				"email":   "invalid_email_format",
				"content": "content_required",
			}})

		router := newCommentRouter(mockService)
		body, _ := json.Marshal(CommentRequest{ArticleID: 3, AuthorName: "Reader", Email: "nope"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/comments", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "validation failed")
		assert.Contains(t, w.Body.String(), "invalid_email_format")
		assert.Contains(t, w.Body.String(), "content_required")
	})
}

func TestCommentHandler_Mutations(t *testing.T) {
	t.Run("update returns the updated comment", func(t *testing.T) {
		mockService := mocks.NewMockCommentServiceInterface(t)
		mockService.EXPECT().
			Update(mock.Anything, mock.AnythingOfType("*domain.Comment")).
			Return(nil)

		router := newCommentRouter(mockService)
		body, _ := json.Marshal(CommentRequest{
			ArticleID:  3,
			AuthorName: "Reader",
			Email:      "reader@example.com",
			Content:    "Edited",
		})
		req := httptest.NewRequest(http.MethodPut, "/api/v1/comments/5", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response CommentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, int64(5), response.ID)
		assert.Equal(t, "Edited", response.Content)
	})

	t.Run("updating an unmoderated comment looks like a missing one", func(t *testing.T) {
		mockService := mocks.NewMockCommentServiceInterface(t)
		mockService.EXPECT().
			Update(mock.Anything, mock.AnythingOfType("*domain.Comment")).
			Return(domain.ErrNotFound)

		router := newCommentRouter(mockService)
		body, _ := json.Marshal(CommentRequest{
			ArticleID: 3, AuthorName: "Reader", Email: "reader@example.com", Content: "Edited",
		})
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/comments/9", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete returns 204", func(t *testing.T) {
		mockService := mocks.NewMockCommentServiceInterface(t)
		mockService.EXPECT().Delete(mock.Anything, int64(5)).Return(nil)

		router := newCommentRouter(mockService)
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/comments/5", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestCommentHandler_Reads(t *testing.T) {
	t.Run("lists approved comments", func(t *testing.T) {
		mockService := mocks.NewMockCommentServiceInterface(t)
		mockService.EXPECT().ListApproved(mock.Anything).Return([]domain.Comment{
			{ID: 1, AuthorName: "Reader", Email: "reader@example.com", Content: "Nice", IsApproved: true},
		}, nil)

		router := newCommentRouter(mockService)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/comments", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response []CommentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response, 1)
		assert.NotContains(t, w.Body.String(), "reader@example.com")
	})

	t.Run("pending comment reads become 404", func(t *testing.T) {
		mockService := mocks.NewMockCommentServiceInterface(t)
		mockService.EXPECT().GetApproved(mock.Anything, int64(9)).Return(nil, domain.ErrNotFound)

		router := newCommentRouter(mockService)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/comments/9", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
