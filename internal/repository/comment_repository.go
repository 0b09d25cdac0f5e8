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

const commentSelect = `
	SELECT id, article_id, author_name, email, content, created_date, is_approved
	FROM comments
`

// PostgresCommentRepository implements CommentRepository using PostgreSQL.
type PostgresCommentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository.
func NewPostgresCommentRepository(pool *pgxpool.Pool) *PostgresCommentRepository {
	return &PostgresCommentRepository{pool: pool}
}

func (r *PostgresCommentRepository) queryComments(ctx context.Context, query string, args ...interface{}) ([]domain.Comment, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close()

	comments := make([]domain.Comment, 0)
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.ArticleID, &c.AuthorName, &c.Email,
			&c.Content, &c.CreatedDate, &c.IsApproved); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}

	return comments, rows.Err()
}

func (r *PostgresCommentRepository) getOne(ctx context.Context, query string, args ...interface{}) (*domain.Comment, error) {
	var c domain.Comment
	err := r.pool.QueryRow(ctx, query, args...).
		Scan(&c.ID, &c.ArticleID, &c.AuthorName, &c.Email,
			&c.Content, &c.CreatedDate, &c.IsApproved)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}

	return &c, nil
}

// ListApproved returns approved comments, newest first.
func (r *PostgresCommentRepository) ListApproved(ctx context.Context) ([]domain.Comment, error) {
	return r.queryComments(ctx, commentSelect+` WHERE is_approved ORDER BY created_date DESC`)
}

// GetApprovedByID retrieves an approved comment. Unapproved comments are
// reported as not found.
func (r *PostgresCommentRepository) GetApprovedByID(ctx context.Context, id int64) (*domain.Comment, error) {
	return r.getOne(ctx, commentSelect+` WHERE id = $1 AND is_approved`, id)
}

// ListByArticle returns every comment on the article, approved or not,
// newest first.
func (r *PostgresCommentRepository) ListByArticle(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	return r.queryComments(ctx, commentSelect+` WHERE article_id = $1 ORDER BY created_date DESC`, articleID)
}

// List is the admin-side listing with approval/date filters and
// author_name/content search.
func (r *PostgresCommentRepository) List(ctx context.Context, filter domain.CommentFilter) ([]domain.Comment, error) {
	var conditions []string
	var args []interface{}

	add := func(condition string, arg interface{}) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(condition, len(args)))
	}

	if filter.Approved != nil {
		add("is_approved = $%d", *filter.Approved)
	}
	if filter.CreatedAfter != nil {
		add("created_date >= $%d", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		add("created_date < $%d", *filter.CreatedBefore)
	}
	if filter.Query != "" {
		args = append(args, filter.Query)
		conditions = append(conditions, fmt.Sprintf(
			"(author_name ILIKE '%%' || $%d || '%%' OR content ILIKE '%%' || $%d || '%%')",
			len(args), len(args)))
	}

	query := commentSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_date DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	return r.queryComments(ctx, query, args...)
}

// GetByID retrieves a comment regardless of approval state (admin side).
func (r *PostgresCommentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	return r.getOne(ctx, commentSelect+` WHERE id = $1`, id)
}

// Create inserts a new comment. is_approved is always persisted as given
// (false for public submissions).
func (r *PostgresCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO comments (article_id, author_name, email, content, is_approved)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_date
	`, comment.ArticleID, comment.AuthorName, comment.Email,
		comment.Content, comment.IsApproved).
		Scan(&comment.ID, &comment.CreatedDate)

	if err != nil {
		if mapped := mapIntegrityError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("insert comment: %w", err)
	}

	return nil
}

// Update modifies an existing comment.
func (r *PostgresCommentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE comments
		SET author_name = $2, email = $3, content = $4, is_approved = $5
		WHERE id = $1
	`, comment.ID, comment.AuthorName, comment.Email, comment.Content, comment.IsApproved)

	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Delete removes a comment.
func (r *PostgresCommentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// BulkApprove approves exactly the given comments in one statement.
func (r *PostgresCommentRepository) BulkApprove(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE comments SET is_approved = TRUE WHERE id = ANY($1)
	`, ids)
	if err != nil {
		return 0, fmt.Errorf("bulk approve comments: %w", err)
	}

	return tag.RowsAffected(), nil
}
