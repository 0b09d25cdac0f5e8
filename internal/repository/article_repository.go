package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"newsdesk/internal/domain"
)

// articleSelect is the shared projection for article reads: the article
// row, its category (left joined), and the approved comment count.
const articleSelect = `
	SELECT a.id, a.title, a.slug, a.content, a.excerpt, a.author_id,
		a.category_id, a.image, a.status, a.published_date, a.created_date,
		a.updated_date, a.views, a.is_featured,
		c.name, c.slug, c.description,
		(SELECT COUNT(*) FROM comments cm
			WHERE cm.article_id = a.id AND cm.is_approved) AS comment_count
	FROM articles a
	LEFT JOIN categories c ON c.id = a.category_id
`

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
type PostgresArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository.
func NewPostgresArticleRepository(pool *pgxpool.Pool) *PostgresArticleRepository {
	return &PostgresArticleRepository{pool: pool}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticleView(s rowScanner) (domain.ArticleView, error) {
	var v domain.ArticleView
	var catName, catSlug, catDesc *string

	err := s.Scan(&v.ID, &v.Title, &v.Slug, &v.Content, &v.Excerpt, &v.AuthorID,
		&v.CategoryID, &v.Image, &v.Status, &v.PublishedDate, &v.CreatedDate,
		&v.UpdatedDate, &v.Views, &v.IsFeatured,
		&catName, &catSlug, &catDesc, &v.CommentCount)
	if err != nil {
		return v, err
	}

	if v.CategoryID != nil && catName != nil {
		v.Category = &domain.Category{
			ID:          *v.CategoryID,
			Name:        *catName,
			Slug:        *catSlug,
			Description: *catDesc,
		}
	}

	return v, nil
}

func (r *PostgresArticleRepository) queryViews(ctx context.Context, query string, args ...interface{}) ([]domain.ArticleView, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	views := make([]domain.ArticleView, 0)
	for rows.Next() {
		v, err := scanArticleView(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		views = append(views, v)
	}

	return views, rows.Err()
}

// ListPublished returns published articles ordered by descending
// published_date.
func (r *PostgresArticleRepository) ListPublished(ctx context.Context, filter domain.PublishedFilter) ([]domain.ArticleView, error) {
	conditions := []string{"a.status = 'published'"}
	var args []interface{}

	if filter.FeaturedOnly {
		conditions = append(conditions, "a.is_featured")
	}
	if filter.TitleQuery != "" {
		args = append(args, filter.TitleQuery)
		conditions = append(conditions, fmt.Sprintf("a.title ILIKE '%%' || $%d || '%%'", len(args)))
	}

	query := articleSelect + " WHERE " + strings.Join(conditions, " AND ") +
		" ORDER BY a.published_date DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	return r.queryViews(ctx, query, args...)
}

// GetPublishedByID retrieves a published article. Articles in any other
// status are reported as not found without revealing their existence.
func (r *PostgresArticleRepository) GetPublishedByID(ctx context.Context, id int64) (*domain.ArticleView, error) {
	row := r.pool.QueryRow(ctx, articleSelect+` WHERE a.id = $1 AND a.status = 'published'`, id)

	v, err := scanArticleView(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get published article: %w", err)
	}

	return &v, nil
}

// IncrementViews bumps the view counter in a single statement so that
// concurrent retrievals never lose an increment at the store level.
func (r *PostgresArticleRepository) IncrementViews(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE articles
		SET views = views + 1, updated_date = NOW()
		WHERE id = $1 AND status = 'published'
	`, id)
	if err != nil {
		return false, fmt.Errorf("increment views: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// List is the admin-side listing with status/category/date/featured
// filters and title/content search.
func (r *PostgresArticleRepository) List(ctx context.Context, filter domain.ArticleFilter) ([]domain.ArticleView, error) {
	var conditions []string
	var args []interface{}

	add := func(condition string, arg interface{}) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(condition, len(args)))
	}

	if filter.Status != "" {
		add("a.status = $%d", filter.Status)
	}
	if filter.CategoryID != nil {
		add("a.category_id = $%d", *filter.CategoryID)
	}
	if filter.Featured != nil {
		add("a.is_featured = $%d", *filter.Featured)
	}
	if filter.PublishedAfter != nil {
		add("a.published_date >= $%d", *filter.PublishedAfter)
	}
	if filter.PublishedBefore != nil {
		add("a.published_date < $%d", *filter.PublishedBefore)
	}
	if filter.Query != "" {
		args = append(args, filter.Query)
		conditions = append(conditions, fmt.Sprintf(
			"(a.title ILIKE '%%' || $%d || '%%' OR a.content ILIKE '%%' || $%d || '%%')",
			len(args), len(args)))
	}

	query := articleSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY a.published_date DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	return r.queryViews(ctx, query, args...)
}

// GetByID retrieves an article regardless of status (admin side).
func (r *PostgresArticleRepository) GetByID(ctx context.Context, id int64) (*domain.ArticleView, error) {
	row := r.pool.QueryRow(ctx, articleSelect+` WHERE a.id = $1`, id)

	v, err := scanArticleView(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}

	return &v, nil
}

// Create inserts a new article and fills the server-assigned fields.
func (r *PostgresArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO articles (title, slug, content, excerpt, author_id,
			category_id, image, status, published_date, is_featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, published_date, created_date, updated_date, views
	`, article.Title, article.Slug, article.Content, article.Excerpt,
		article.AuthorID, article.CategoryID, article.Image, article.Status,
		article.PublishedDate, article.IsFeatured).
		Scan(&article.ID, &article.PublishedDate, &article.CreatedDate,
			&article.UpdatedDate, &article.Views)

	if err != nil {
		if mapped := mapIntegrityError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("insert article: %w", err)
	}

	return nil
}

// Update modifies an existing article and refreshes updated_date. An
// empty AuthorID keeps the stored author.
func (r *PostgresArticleRepository) Update(ctx context.Context, article *domain.Article) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE articles
		SET title = $2, slug = $3, content = $4, excerpt = $5,
			author_id = CASE WHEN $6 = '' THEN author_id ELSE $6::uuid END,
			category_id = $7, image = $8, status = $9, published_date = $10,
			is_featured = $11, updated_date = NOW()
		WHERE id = $1
		RETURNING author_id, created_date, updated_date, views
	`, article.ID, article.Title, article.Slug, article.Content, article.Excerpt,
		article.AuthorID, article.CategoryID, article.Image, article.Status,
		article.PublishedDate, article.IsFeatured).
		Scan(&article.AuthorID, &article.CreatedDate, &article.UpdatedDate, &article.Views)

	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		if mapped := mapIntegrityError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("update article: %w", err)
	}

	return nil
}

// Delete removes an article. Its comments go with it (ON DELETE CASCADE).
func (r *PostgresArticleRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}
