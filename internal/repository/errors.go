package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"newsdesk/internal/domain"
)

// mapIntegrityError translates PostgreSQL integrity violations into
// field-level validation errors so callers see them as client faults,
// not server faults. Other errors pass through unchanged.
func mapIntegrityError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case "23503": // foreign_key_violation
		switch {
		case strings.Contains(pgErr.ConstraintName, "article"):
			return domain.NewValidationError("article_id", "article_not_found")
		case strings.Contains(pgErr.ConstraintName, "author"):
			return domain.NewValidationError("author_id", "author_not_found")
		case strings.Contains(pgErr.ConstraintName, "category"):
			return domain.NewValidationError("category_id", "category_not_found")
		}
	case "23505": // unique_violation
		if strings.Contains(pgErr.ConstraintName, "slug") {
			return domain.NewValidationError("slug", "duplicate_slug")
		}
	}

	return err
}
