package service

import (
	"context"

	"newsdesk/internal/domain"
	"newsdesk/internal/repository"
	"newsdesk/internal/validator"
)

// CategoryService implements category reads and the admin-side category
// lifecycle.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	validator    *validator.Validator
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo repository.CategoryRepository, v *validator.Validator) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo, validator: v}
}

// List returns categories, restricted by name substring when nameQuery
// is set.
func (s *CategoryService) List(ctx context.Context, nameQuery string) ([]domain.Category, error) {
	return s.categoryRepo.List(ctx, nameQuery)
}

// Get retrieves a category by ID.
func (s *CategoryService) Get(ctx context.Context, id int64) (*domain.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

// Create persists a new category. A missing slug is suggested from the
// name.
func (s *CategoryService) Create(ctx context.Context, category *domain.Category) error {
	if category.Slug == "" {
		category.Slug = Slugify(category.Name)
	}

	if err := s.validator.ValidateCategory(category); err != nil {
		return err
	}

	return s.categoryRepo.Create(ctx, category)
}

// Update modifies an existing category.
func (s *CategoryService) Update(ctx context.Context, category *domain.Category) error {
	if category.Slug == "" {
		category.Slug = Slugify(category.Name)
	}

	if err := s.validator.ValidateCategory(category); err != nil {
		return err
	}

	return s.categoryRepo.Update(ctx, category)
}

// Delete removes a category. Articles referencing it survive with their
// category reference cleared.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	return s.categoryRepo.Delete(ctx, id)
}
