package repository

import (
	"context"

	"newsdesk/internal/domain"
)

// CategoryRepository defines methods for category data access.
type CategoryRepository interface {
	// List returns categories, optionally restricted to names containing
	// nameQuery (case-insensitive).
	List(ctx context.Context, nameQuery string) ([]domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	Create(ctx context.Context, category *domain.Category) error
	Update(ctx context.Context, category *domain.Category) error
	// Delete removes a category. Referencing articles keep existing but
	// lose their category reference (set null).
	Delete(ctx context.Context, id int64) error
}

// ArticleRepository defines methods for article data access.
type ArticleRepository interface {
	// ListPublished returns published articles ordered by descending
	// published_date, with nested category and approved comment count.
	ListPublished(ctx context.Context, filter domain.PublishedFilter) ([]domain.ArticleView, error)
	// GetPublishedByID returns a published article or domain.ErrNotFound.
	// Draft and archived articles are reported as not found.
	GetPublishedByID(ctx context.Context, id int64) (*domain.ArticleView, error)
	// IncrementViews atomically bumps the view counter of a published
	// article. Reports whether a row matched.
	IncrementViews(ctx context.Context, id int64) (bool, error)
	// List is the admin-side listing with the full filter set.
	List(ctx context.Context, filter domain.ArticleFilter) ([]domain.ArticleView, error)
	GetByID(ctx context.Context, id int64) (*domain.ArticleView, error)
	Create(ctx context.Context, article *domain.Article) error
	Update(ctx context.Context, article *domain.Article) error
	// Delete removes an article together with its comments (cascade).
	Delete(ctx context.Context, id int64) error
}

// CommentRepository defines methods for comment data access.
type CommentRepository interface {
	ListApproved(ctx context.Context) ([]domain.Comment, error)
	GetApprovedByID(ctx context.Context, id int64) (*domain.Comment, error)
	// ListByArticle returns every comment on the article regardless of
	// approval state.
	ListByArticle(ctx context.Context, articleID int64) ([]domain.Comment, error)
	List(ctx context.Context, filter domain.CommentFilter) ([]domain.Comment, error)
	GetByID(ctx context.Context, id int64) (*domain.Comment, error)
	Create(ctx context.Context, comment *domain.Comment) error
	Update(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id int64) error
	// BulkApprove sets is_approved on exactly the given ids in one
	// statement and returns the number of rows affected.
	BulkApprove(ctx context.Context, ids []int64) (int64, error)
}
