package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/domain"
	"newsdesk/internal/mocks"
	"newsdesk/internal/service"
	"newsdesk/internal/validator"
)

func TestArticleService_GetPublished(t *testing.T) {
	ctx := context.Background()

	t.Run("increments views before loading the article", func(t *testing.T) {
		mockArticleRepo := mocks.NewMockArticleRepository(t)
		mockCommentRepo := mocks.NewMockCommentRepository(t)
		v := validator.NewValidator()

		view := &domain.ArticleView{
			Article: domain.Article{ID: 7, Title: "Read Me", Status: domain.StatusPublished, Views: 4},
		}
		comments := []domain.Comment{
			{ID: 1, ArticleID: 7, AuthorName: "Reader", IsApproved: true},
			{ID: 2, ArticleID: 7, AuthorName: "Pending Reader", IsApproved: false},
		}

		mockArticleRepo.EXPECT().IncrementViews(mock.Anything, int64(7)).Return(true, nil)
		mockArticleRepo.EXPECT().GetPublishedByID(mock.Anything, int64(7)).Return(view, nil)
		mockCommentRepo.EXPECT().ListByArticle(mock.Anything, int64(7)).Return(comments, nil)

		svc := service.NewArticleService(mockArticleRepo, mockCommentRepo, v, 5)

		detail, err := svc.GetPublished(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, "Read Me", detail.Title)
		// The detail view nests every comment, moderated or not
		assert.Len(t, detail.Comments, 2)
	})

	t.Run("unmatched increment means not found", func(t *testing.T) {
		mockArticleRepo := mocks.NewMockArticleRepository(t)
		mockCommentRepo := mocks.NewMockCommentRepository(t)
		v := validator.NewValidator()

		mockArticleRepo.EXPECT().IncrementViews(mock.Anything, int64(99)).Return(false, nil)

		svc := service.NewArticleService(mockArticleRepo, mockCommentRepo, v, 5)

		_, err := svc.GetPublished(ctx, 99)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("increment failure surfaces the error", func(t *testing.T) {
		mockArticleRepo := mocks.NewMockArticleRepository(t)
		mockCommentRepo := mocks.NewMockCommentRepository(t)
		v := validator.NewValidator()

		mockArticleRepo.EXPECT().IncrementViews(mock.Anything, int64(7)).Return(false, assert.AnError)

		svc := service.NewArticleService(mockArticleRepo, mockCommentRepo, v, 5)

		_, err := svc.GetPublished(ctx, 7)

		assert.Error(t, err)
	})
}

func TestArticleService_Featured(t *testing.T) {
	ctx := context.Background()

	t.Run("caps the listing at the configured limit", func(t *testing.T) {
		mockArticleRepo := mocks.NewMockArticleRepository(t)
		mockCommentRepo := mocks.NewMockCommentRepository(t)
		v := validator.NewValidator()

		mockArticleRepo.EXPECT().
			ListPublished(mock.Anything, domain.PublishedFilter{FeaturedOnly: true, Limit: 3}).
			Return([]domain.ArticleView{}, nil)

		svc := service.NewArticleService(mockArticleRepo, mockCommentRepo, v, 3)

		views, err := svc.Featured(ctx)

		require.NoError(t, err)
		assert.Empty(t, views)
	})
}

func TestArticleService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("empty query short-circuits without touching the store", func(t *testing.T) {
		mockArticleRepo := mocks.NewMockArticleRepository(t)
		mockCommentRepo := mocks.NewMockCommentRepository(t)
		v := validator.NewValidator()

		svc := service.NewArticleService(mockArticleRepo, mockCommentRepo, v, 5)

		for _, query := range []string{"", "   "} {
			views, err := svc.Search(ctx, query)
			require.NoError(t, err)
			assert.NotNil(t, views)
			assert.Empty(t, views)
		}
	})

	t.Run("trims the query before searching", func(t *testing.T) {
		mockArticleRepo := mocks.NewMockArticleRepository(t)
		mockCommentRepo := mocks.NewMockCommentRepository(t)
		v := validator.NewValidator()

		mockArticleRepo.EXPECT().
			ListPublished(mock.Anything, domain.PublishedFilter{TitleQuery: "budget"}).
			Return([]domain.ArticleView{{Article: domain.Article{Title: "Budget Vote"}}}, nil)

		svc := service.NewArticleService(mockArticleRepo, mockCommentRepo, v, 5)

		views, err := svc.Search(ctx, "  budget  ")

		require.NoError(t, err)
		assert.Len(t, views, 1)
	})
}

func TestArticleService_Create(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()

	t.Run("stamps the actor as author when none is set", func(t *testing.T) {
		mockArticleRepo := mocks.NewMockArticleRepository(t)
		mockCommentRepo := mocks.NewMockCommentRepository(t)
		v := validator.NewValidator()

		mockArticleRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.Article")).
			Return(nil)

		svc := service.NewArticleService(mockArticleRepo, mockCommentRepo, v, 5)

		article := domain.Article{
			Title:   "Morning Briefing",
			Content: "Body",
		}
		err := svc.Create(ctx, &article, actorID)

		require.NoError(t, err)
		assert.Equal(t, actorID, article.AuthorID)
		assert.Equal(t, "morning-briefing", article.Slug)
		assert.Equal(t, domain.StatusDraft, article.Status)
		assert.False(t, article.PublishedDate.IsZero())
	})

	t.Run("keeps an explicit author", func(t *testing.T) {
		mockArticleRepo := mocks.NewMockArticleRepository(t)
		mockCommentRepo := mocks.NewMockCommentRepository(t)
		v := validator.NewValidator()

		explicitAuthor := uuid.New().String()
		mockArticleRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.Article")).
			Return(nil)

		svc := service.NewArticleService(mockArticleRepo, mockCommentRepo, v, 5)

		article := domain.Article{
			Title:    "Evening Briefing",
			Content:  "Body",
			AuthorID: explicitAuthor,
		}
		err := svc.Create(ctx, &article, actorID)

		require.NoError(t, err)
		assert.Equal(t, explicitAuthor, article.AuthorID)
	})

	t.Run("validation failure is not persisted", func(t *testing.T) {
		mockArticleRepo := mocks.NewMockArticleRepository(t)
		mockCommentRepo := mocks.NewMockCommentRepository(t)
		v := validator.NewValidator()

		svc := service.NewArticleService(mockArticleRepo, mockCommentRepo, v, 5)

		article := domain.Article{Title: "No Body"}
		err := svc.Create(ctx, &article, actorID)

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Fields, "content")
	})

	t.Run("rejects an invalid status", func(t *testing.T) {
		mockArticleRepo := mocks.NewMockArticleRepository(t)
		mockCommentRepo := mocks.NewMockCommentRepository(t)
		v := validator.NewValidator()

		svc := service.NewArticleService(mockArticleRepo, mockCommentRepo, v, 5)

		article := domain.Article{
			Title:   "Bad Status",
			Content: "Body",
			Status:  "pending",
		}
		err := svc.Create(ctx, &article, actorID)

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Fields, "status")
	})
}

func TestArticleService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("backfills author and status from the stored article", func(t *testing.T) {
		mockArticleRepo := mocks.NewMockArticleRepository(t)
		mockCommentRepo := mocks.NewMockCommentRepository(t)
		v := validator.NewValidator()

		storedAuthor := uuid.New().String()
		existing := &domain.ArticleView{
			Article: domain.Article{
				ID:            3,
				AuthorID:      storedAuthor,
				Status:        domain.StatusPublished,
				PublishedDate: time.Now().Add(-time.Hour),
			},
		}

		mockArticleRepo.EXPECT().GetByID(mock.Anything, int64(3)).Return(existing, nil)
		mockArticleRepo.EXPECT().
			Update(mock.Anything, mock.AnythingOfType("*domain.Article")).
			Return(nil)

		svc := service.NewArticleService(mockArticleRepo, mockCommentRepo, v, 5)

		article := domain.Article{ID: 3, Title: "Revised", Content: "New body"}
		err := svc.Update(ctx, &article)

		require.NoError(t, err)
		assert.Equal(t, storedAuthor, article.AuthorID)
		assert.Equal(t, domain.StatusPublished, article.Status)
		assert.Equal(t, existing.PublishedDate, article.PublishedDate)
	})

	t.Run("missing article short-circuits", func(t *testing.T) {
		mockArticleRepo := mocks.NewMockArticleRepository(t)
		mockCommentRepo := mocks.NewMockCommentRepository(t)
		v := validator.NewValidator()

		mockArticleRepo.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

		svc := service.NewArticleService(mockArticleRepo, mockCommentRepo, v, 5)

		err := svc.Update(ctx, &domain.Article{ID: 99, Title: "Ghost", Content: "Body"})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
