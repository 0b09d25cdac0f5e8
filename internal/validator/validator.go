package validator

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"newsdesk/internal/domain"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Validator provides validation methods for domain entities.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCategory validates a Category entity.
func (v *Validator) ValidateCategory(c *domain.Category) error {
	return toValidationError(validation.ValidateStruct(c,
		validation.Field(&c.Name,
			validation.Required.Error("name_required"),
			validation.Length(1, 100).Error("name_too_long"),
		),
		validation.Field(&c.Slug,
			validation.Required.Error("slug_required"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
	))
}

// ValidateArticle validates an Article entity.
func (v *Validator) ValidateArticle(a *domain.Article) error {
	return toValidationError(validation.ValidateStruct(a,
		validation.Field(&a.Title,
			validation.Required.Error("title_required"),
			validation.Length(1, 200).Error("title_too_long"),
		),
		validation.Field(&a.Slug,
			validation.Required.Error("slug_required"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
		validation.Field(&a.Content,
			validation.Required.Error("content_required"),
		),
		validation.Field(&a.Excerpt,
			validation.Length(0, 300).Error("excerpt_too_long"),
		),
		validation.Field(&a.AuthorID,
			validation.Required.Error("author_id_required"),
			is.UUID.Error("invalid_author_id"),
		),
		validation.Field(&a.Status,
			validation.Required.Error("status_required"),
			validation.In(statusValues()...).Error("invalid_status"),
		),
	))
}

// ValidateComment validates a Comment entity.
func (v *Validator) ValidateComment(c *domain.Comment) error {
	return toValidationError(validation.ValidateStruct(c,
		validation.Field(&c.ArticleID,
			validation.Required.Error("article_id_required"),
		),
		validation.Field(&c.AuthorName,
			validation.Required.Error("author_name_required"),
			validation.Length(1, 100).Error("author_name_too_long"),
		),
		validation.Field(&c.Email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
		validation.Field(&c.Content,
			validation.Required.Error("content_required"),
		),
	))
}

func statusValues() []interface{} {
	values := make([]interface{}, len(domain.ValidStatuses))
	for i, s := range domain.ValidStatuses {
		values[i] = s
	}
	return values
}

// toValidationError converts ozzo validation errors into the domain's
// field-keyed validation error type.
func toValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ve, ok := err.(validation.Errors); ok {
		fields := make(map[string]string, len(ve))
		for field, fieldErr := range ve {
			fields[field] = fieldErr.Error()
		}
		return &domain.ValidationError{Fields: fields}
	}

	return err
}
