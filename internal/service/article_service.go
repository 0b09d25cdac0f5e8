package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"newsdesk/internal/domain"
	"newsdesk/internal/metrics"
	"newsdesk/internal/repository"
	"newsdesk/internal/validator"
)

// ArticleService implements the article read side and the admin-side
// article lifecycle.
type ArticleService struct {
	articleRepo   repository.ArticleRepository
	commentRepo   repository.CommentRepository
	validator     *validator.Validator
	featuredLimit int
}

// NewArticleService creates a new ArticleService.
func NewArticleService(
	articleRepo repository.ArticleRepository,
	commentRepo repository.CommentRepository,
	v *validator.Validator,
	featuredLimit int,
) *ArticleService {
	return &ArticleService{
		articleRepo:   articleRepo,
		commentRepo:   commentRepo,
		validator:     v,
		featuredLimit: featuredLimit,
	}
}

// ListPublished returns all published articles, newest first.
func (s *ArticleService) ListPublished(ctx context.Context) ([]domain.ArticleView, error) {
	return s.articleRepo.ListPublished(ctx, domain.PublishedFilter{})
}

// GetPublished retrieves a published article's detail view. The view
// counter is incremented first; if no published row matched, the article
// is reported as not found without revealing whether it exists. The
// detail view nests every comment on the article, approved or not.
func (s *ArticleService) GetPublished(ctx context.Context, id int64) (*domain.ArticleDetail, error) {
	matched, err := s.articleRepo.IncrementViews(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("increment views: %w", err)
	}
	if !matched {
		return nil, domain.ErrNotFound
	}
	metrics.ArticleViewsTotal.Inc()

	view, err := s.articleRepo.GetPublishedByID(ctx, id)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByArticle(ctx, id)
	if err != nil {
		return nil, err
	}

	return &domain.ArticleDetail{ArticleView: *view, Comments: comments}, nil
}

// Featured returns the most recent featured published articles, capped
// at the configured limit.
func (s *ArticleService) Featured(ctx context.Context) ([]domain.ArticleView, error) {
	return s.articleRepo.ListPublished(ctx, domain.PublishedFilter{
		FeaturedOnly: true,
		Limit:        s.featuredLimit,
	})
}

// Search returns published articles whose title contains query. An empty
// or missing query yields an empty collection without touching the store.
func (s *ArticleService) Search(ctx context.Context, query string) ([]domain.ArticleView, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.ArticleView{}, nil
	}

	return s.articleRepo.ListPublished(ctx, domain.PublishedFilter{TitleQuery: query})
}

// ListAdmin lists articles for the administrative interface.
func (s *ArticleService) ListAdmin(ctx context.Context, filter domain.ArticleFilter) ([]domain.ArticleView, error) {
	return s.articleRepo.List(ctx, filter)
}

// GetAdmin retrieves an article regardless of status.
func (s *ArticleService) GetAdmin(ctx context.Context, id int64) (*domain.ArticleView, error) {
	return s.articleRepo.GetByID(ctx, id)
}

// Create persists a new article. The acting identity becomes the author
// if and only if no author is set at save time. A missing slug is
// suggested from the title, and a missing status defaults to draft.
func (s *ArticleService) Create(ctx context.Context, article *domain.Article, actorID string) error {
	if article.AuthorID == "" {
		article.AuthorID = actorID
	}
	if article.Slug == "" {
		article.Slug = Slugify(article.Title)
	}
	if article.Status == "" {
		article.Status = domain.StatusDraft
	}
	if article.PublishedDate.IsZero() {
		article.PublishedDate = time.Now()
	}

	if err := s.validator.ValidateArticle(article); err != nil {
		return err
	}

	return s.articleRepo.Create(ctx, article)
}

// Update modifies an existing article. An empty author keeps the stored
// one; the stamp is never overwritten.
func (s *ArticleService) Update(ctx context.Context, article *domain.Article) error {
	existing, err := s.articleRepo.GetByID(ctx, article.ID)
	if err != nil {
		return err
	}

	if article.AuthorID == "" {
		article.AuthorID = existing.AuthorID
	}
	if article.Slug == "" {
		article.Slug = Slugify(article.Title)
	}
	if article.Status == "" {
		article.Status = existing.Status
	}
	if article.PublishedDate.IsZero() {
		article.PublishedDate = existing.PublishedDate
	}

	if err := s.validator.ValidateArticle(article); err != nil {
		return err
	}

	return s.articleRepo.Update(ctx, article)
}

// Delete removes an article and, through the store, its comments.
func (s *ArticleService) Delete(ctx context.Context, id int64) error {
	return s.articleRepo.Delete(ctx, id)
}
