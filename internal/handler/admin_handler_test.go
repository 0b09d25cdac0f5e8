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
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/domain"
	"newsdesk/internal/middleware"
	"newsdesk/internal/mocks"
)

const testAdminToken = "test-admin-token"

type adminMocks struct {
	categories *mocks.MockCategoryServiceInterface
	articles   *mocks.MockArticleServiceInterface
	comments   *mocks.MockCommentServiceInterface
}

func newAdminRouter(t *testing.T) (*gin.Engine, adminMocks) {
	m := adminMocks{
		categories: mocks.NewMockCategoryServiceInterface(t),
		articles:   mocks.NewMockArticleServiceInterface(t),
		comments:   mocks.NewMockCommentServiceInterface(t),
	}
	h := NewAdminHandler(m.categories, m.articles, m.comments)

	router := gin.New()
	admin := router.Group("/api/v1/admin", middleware.AdminAuth(testAdminToken))
	admin.GET("/articles", h.ListArticles)
	admin.GET("/articles/:id", h.GetArticle)
	admin.POST("/articles", h.CreateArticle)
	admin.PUT("/articles/:id", h.UpdateArticle)
	admin.DELETE("/articles/:id", h.DeleteArticle)
	admin.GET("/comments", h.ListComments)
	admin.GET("/comments/:id", h.GetComment)
	admin.POST("/comments/approve", h.BulkApproveComments)
	admin.PUT("/comments/:id", h.UpdateComment)
	admin.DELETE("/comments/:id", h.DeleteComment)
	admin.POST("/categories", h.CreateCategory)
	admin.DELETE("/categories/:id", h.DeleteCategory)
	return router, m
}

func adminRequest(method, target string, body []byte) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set("Authorization", "Bearer "+testAdminToken)
	return req
}

func TestAdminHandler_Auth(t *testing.T) {
	router, _ := newAdminRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/articles", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminHandler_ListArticles(t *testing.T) {
	t.Run("parses the full filter set", func(t *testing.T) {
		router, m := newAdminRouter(t)

		var captured domain.ArticleFilter
		m.articles.EXPECT().
			ListAdmin(mock.Anything, mock.AnythingOfType("domain.ArticleFilter")).
			Run(func(ctx context.Context, filter domain.ArticleFilter) {
				captured = filter
			}).
			Return([]domain.ArticleView{}, nil)

		target := "/api/v1/admin/articles?status=draft&category_id=4&featured=true" +
			"&published_after=2026-01-01T00:00:00Z&q=budget&limit=10&offset=20"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, adminRequest(http.MethodGet, target, nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, domain.StatusDraft, captured.Status)
		require.NotNil(t, captured.CategoryID)
		assert.Equal(t, int64(4), *captured.CategoryID)
		require.NotNil(t, captured.Featured)
		assert.True(t, *captured.Featured)
		require.NotNil(t, captured.PublishedAfter)
		assert.Equal(t, 2026, captured.PublishedAfter.Year())
		assert.Equal(t, "budget", captured.Query)
		assert.Equal(t, 10, captured.Limit)
		assert.Equal(t, 20, captured.Offset)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		router, _ := newAdminRouter(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, adminRequest(http.MethodGet, "/api/v1/admin/articles?status=pending", nil))

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "validation failed")
	})

	t.Run("rejects a malformed timestamp", func(t *testing.T) {
		router, _ := newAdminRouter(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, adminRequest(http.MethodGet, "/api/v1/admin/articles?published_after=yesterday", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("exposes full fields including status", func(t *testing.T) {
		router, m := newAdminRouter(t)

		m.articles.EXPECT().
			ListAdmin(mock.Anything, mock.AnythingOfType("domain.ArticleFilter")).
			Return([]domain.ArticleView{
				{Article: domain.Article{
					ID: 1, Title: "Draft Piece", Slug: "draft-piece", Content: "Body",
					AuthorID: uuid.New().String(), Status: domain.StatusDraft,
					PublishedDate: time.Now(), CreatedDate: time.Now(), UpdatedDate: time.Now(),
				}},
			}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, adminRequest(http.MethodGet, "/api/v1/admin/articles", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var response []AdminArticleResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response, 1)
		assert.Equal(t, domain.StatusDraft, response[0].Status)
		assert.Equal(t, "Body", response[0].Content)
	})
}

func TestAdminHandler_CreateArticle(t *testing.T) {
	t.Run("passes the acting identity for author stamping", func(t *testing.T) {
		router, m := newAdminRouter(t)
		actorID := uuid.New().String()

		m.articles.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.Article"), actorID).
			Run(func(ctx context.Context, article *domain.Article, actor string) {
				article.ID = 42
				article.AuthorID = actor
			}).
			Return(nil)

		body, _ := json.Marshal(ArticleRequest{Title: "Fresh", Content: "Body"})
		req := adminRequest(http.MethodPost, "/api/v1/admin/articles", body)
		req.Header.Set(middleware.ActorIDHeader, actorID)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var response AdminArticleResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, int64(42), response.ID)
		assert.Equal(t, actorID, response.AuthorID)
	})

	t.Run("rejects a malformed published date", func(t *testing.T) {
		router, _ := newAdminRouter(t)

		body, _ := json.Marshal(ArticleRequest{Title: "Fresh", Content: "Body", PublishedDate: "tomorrow"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, adminRequest(http.MethodPost, "/api/v1/admin/articles", body))

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "published_date")
	})

	t.Run("malformed id on update becomes 400", func(t *testing.T) {
		router, _ := newAdminRouter(t)

		body, _ := json.Marshal(ArticleRequest{Title: "Fresh", Content: "Body"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, adminRequest(http.MethodPut, "/api/v1/admin/articles/abc", body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdminHandler_Comments(t *testing.T) {
	t.Run("admin listing exposes email and approval state", func(t *testing.T) {
		router, m := newAdminRouter(t)

		m.comments.EXPECT().
			ListAdmin(mock.Anything, mock.AnythingOfType("domain.CommentFilter")).
			Return([]domain.Comment{
				{ID: 1, ArticleID: 2, AuthorName: "Reader", Email: "reader@example.com",
					Content: "Pending", CreatedDate: time.Now(), IsApproved: false},
			}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, adminRequest(http.MethodGet, "/api/v1/admin/comments", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var response []AdminCommentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response, 1)
		assert.Equal(t, "reader@example.com", response[0].Email)
		assert.False(t, response[0].IsApproved)
	})

	t.Run("parses the approved filter", func(t *testing.T) {
		router, m := newAdminRouter(t)

		var captured domain.CommentFilter
		m.comments.EXPECT().
			ListAdmin(mock.Anything, mock.AnythingOfType("domain.CommentFilter")).
			Run(func(ctx context.Context, filter domain.CommentFilter) {
				captured = filter
			}).
			Return([]domain.Comment{}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, adminRequest(http.MethodGet, "/api/v1/admin/comments?approved=false&q=spam", nil))

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, captured.Approved)
		assert.False(t, *captured.Approved)
		assert.Equal(t, "spam", captured.Query)
	})

	t.Run("bulk approve reports the affected count", func(t *testing.T) {
		router, m := newAdminRouter(t)

		m.comments.EXPECT().
			BulkApprove(mock.Anything, []int64{1, 2, 3}).
			Return(int64(2), nil)

		body, _ := json.Marshal(BulkApproveRequest{IDs: []int64{1, 2, 3}})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, adminRequest(http.MethodPost, "/api/v1/admin/comments/approve", body))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"approved": 2}`, w.Body.String())
	})

	t.Run("admin update flips moderation state", func(t *testing.T) {
		router, m := newAdminRouter(t)

		m.comments.EXPECT().
			UpdateAdmin(mock.Anything, mock.AnythingOfType("*domain.Comment")).
			Return(nil)

		body, _ := json.Marshal(AdminCommentRequest{
			ArticleID: 2, AuthorName: "Reader", Email: "reader@example.com",
			Content: "Fine now", IsApproved: true,
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, adminRequest(http.MethodPut, "/api/v1/admin/comments/4", body))

		require.Equal(t, http.StatusOK, w.Code)

		var response AdminCommentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.IsApproved)
	})

	t.Run("delete returns 204", func(t *testing.T) {
		router, m := newAdminRouter(t)

		m.comments.EXPECT().DeleteAdmin(mock.Anything, int64(4)).Return(nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, adminRequest(http.MethodDelete, "/api/v1/admin/comments/4", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestAdminHandler_Categories(t *testing.T) {
	t.Run("create returns 201", func(t *testing.T) {
		router, m := newAdminRouter(t)

		m.categories.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.Category")).
			Run(func(ctx context.Context, category *domain.Category) {
				category.ID = 8
			}).
			Return(nil)

		body, _ := json.Marshal(CategoryRequest{Name: "Tech", Slug: "tech"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, adminRequest(http.MethodPost, "/api/v1/admin/categories", body))

		require.Equal(t, http.StatusCreated, w.Code)

		var response CategoryResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, int64(8), response.ID)
	})

	t.Run("duplicate slug surfaces as validation failure", func(t *testing.T) {
		router, m := newAdminRouter(t)

		m.categories.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.Category")).
			Return(&domain.ValidationError{Fields: map[string]string{"slug": "duplicate_slug"}})

		body, _ := json.Marshal(CategoryRequest{Name: "Tech", Slug: "tech"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, adminRequest(http.MethodPost, "/api/v1/admin/categories", body))

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "duplicate_slug")
	})

	t.Run("delete missing category becomes 404", func(t *testing.T) {
		router, m := newAdminRouter(t)

		m.categories.EXPECT().Delete(mock.Anything, int64(9)).Return(domain.ErrNotFound)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, adminRequest(http.MethodDelete, "/api/v1/admin/categories/9", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
