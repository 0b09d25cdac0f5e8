package service

import (
	"context"

	"newsdesk/internal/domain"
)

// CategoryServiceInterface defines category operations.
// Used for dependency injection and mocking in tests.
type CategoryServiceInterface interface {
	// List returns categories, restricted to names containing nameQuery
	// when it is set.
	List(ctx context.Context, nameQuery string) ([]domain.Category, error)
	Get(ctx context.Context, id int64) (*domain.Category, error)
	Create(ctx context.Context, category *domain.Category) error
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id int64) error
}

// ArticleServiceInterface defines article operations.
// Used for dependency injection and mocking in tests.
type ArticleServiceInterface interface {
	// ListPublished returns all published articles, newest first.
	ListPublished(ctx context.Context) ([]domain.ArticleView, error)
	// GetPublished returns the detail of a published article, bumping
	// its view counter as a side effect.
	GetPublished(ctx context.Context, id int64) (*domain.ArticleDetail, error)
	// Featured returns the most recent featured published articles.
	Featured(ctx context.Context) ([]domain.ArticleView, error)
	// Search returns published articles whose title contains query,
	// case-insensitively. An empty query yields an empty collection.
	Search(ctx context.Context, query string) ([]domain.ArticleView, error)
	ListAdmin(ctx context.Context, filter domain.ArticleFilter) ([]domain.ArticleView, error)
	GetAdmin(ctx context.Context, id int64) (*domain.ArticleView, error)
	// Create persists a new article, stamping actorID as the author when
	// no author is set.
	Create(ctx context.Context, article *domain.Article, actorID string) error
	Update(ctx context.Context, article *domain.Article) error
	Delete(ctx context.Context, id int64) error
}

// CommentServiceInterface defines comment operations.
// Used for dependency injection and mocking in tests.
type CommentServiceInterface interface {
	ListApproved(ctx context.Context) ([]domain.Comment, error)
	GetApproved(ctx context.Context, id int64) (*domain.Comment, error)
	// Create persists a new pending comment after validation and
	// sanitization.
	Create(ctx context.Context, comment *domain.Comment) error
	// Update modifies an approved comment; unapproved comments are not
	// reachable through the public surface.
	Update(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id int64) error
	ListAdmin(ctx context.Context, filter domain.CommentFilter) ([]domain.Comment, error)
	GetAdmin(ctx context.Context, id int64) (*domain.Comment, error)
	UpdateAdmin(ctx context.Context, comment *domain.Comment) error
	DeleteAdmin(ctx context.Context, id int64) error
	// BulkApprove approves the given comments and returns how many
	// records changed.
	BulkApprove(ctx context.Context, ids []int64) (int64, error)
}
