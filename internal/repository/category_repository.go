package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"newsdesk/internal/domain"
)

// PostgresCategoryRepository implements CategoryRepository using PostgreSQL.
type PostgresCategoryRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCategoryRepository creates a new PostgresCategoryRepository.
func NewPostgresCategoryRepository(pool *pgxpool.Pool) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{pool: pool}
}

// List returns categories, filtered by name substring when nameQuery is set.
func (r *PostgresCategoryRepository) List(ctx context.Context, nameQuery string) ([]domain.Category, error) {
	query := `
		SELECT id, name, slug, description
		FROM categories
	`
	var args []interface{}
	if nameQuery != "" {
		query += ` WHERE name ILIKE '%' || $1 || '%'`
		args = append(args, nameQuery)
	}
	query += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// GetByID retrieves a category by ID.
func (r *PostgresCategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	var c domain.Category
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, slug, description
		FROM categories
		WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Slug, &c.Description)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	return &c, nil
}

// Create inserts a new category.
func (r *PostgresCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO categories (name, slug, description)
		VALUES ($1, $2, $3)
		RETURNING id
	`, category.Name, category.Slug, category.Description).Scan(&category.ID)

	if err != nil {
		if mapped := mapIntegrityError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("insert category: %w", err)
	}

	return nil
}

// Update modifies an existing category.
func (r *PostgresCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE categories
		SET name = $2, slug = $3, description = $4
		WHERE id = $1
	`, category.ID, category.Name, category.Slug, category.Description)

	if err != nil {
		if mapped := mapIntegrityError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Delete removes a category. The schema clears category references on
// articles (ON DELETE SET NULL) rather than deleting them.
func (r *PostgresCategoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}
