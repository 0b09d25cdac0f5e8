package service

import (
	"context"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"newsdesk/internal/domain"
	"newsdesk/internal/metrics"
	"newsdesk/internal/repository"
	"newsdesk/internal/validator"
)

// CommentService implements public comment submission and the admin-side
// moderation surface.
type CommentService struct {
	commentRepo repository.CommentRepository
	validator   *validator.Validator
	sanitizer   *bluemonday.Policy
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, v *validator.Validator) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		validator:   v,
		// Comments come from unauthenticated submitters; strip all markup.
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *CommentService) sanitize(comment *domain.Comment) {
	comment.AuthorName = strings.TrimSpace(s.sanitizer.Sanitize(comment.AuthorName))
	comment.Content = strings.TrimSpace(s.sanitizer.Sanitize(comment.Content))
}

// ListApproved returns approved comments, newest first.
func (s *CommentService) ListApproved(ctx context.Context) ([]domain.Comment, error) {
	return s.commentRepo.ListApproved(ctx)
}

// GetApproved retrieves an approved comment.
func (s *CommentService) GetApproved(ctx context.Context, id int64) (*domain.Comment, error) {
	return s.commentRepo.GetApprovedByID(ctx, id)
}

// Create persists a new comment. Public submissions always start
// unapproved, no matter what the caller sent.
func (s *CommentService) Create(ctx context.Context, comment *domain.Comment) error {
	s.sanitize(comment)
	comment.IsApproved = false

	if err := s.validator.ValidateComment(comment); err != nil {
		return err
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return err
	}

	metrics.CommentsCreatedTotal.Inc()
	return nil
}

// Update modifies a comment through the public surface. Only approved
// comments are reachable here; the article reference and approval state
// are kept from the stored record.
func (s *CommentService) Update(ctx context.Context, comment *domain.Comment) error {
	existing, err := s.commentRepo.GetApprovedByID(ctx, comment.ID)
	if err != nil {
		return err
	}

	s.sanitize(comment)
	comment.ArticleID = existing.ArticleID
	comment.IsApproved = existing.IsApproved
	comment.CreatedDate = existing.CreatedDate

	if err := s.validator.ValidateComment(comment); err != nil {
		return err
	}

	return s.commentRepo.Update(ctx, comment)
}

// Delete removes a comment through the public surface. Unapproved
// comments are reported as not found.
func (s *CommentService) Delete(ctx context.Context, id int64) error {
	if _, err := s.commentRepo.GetApprovedByID(ctx, id); err != nil {
		return err
	}

	return s.commentRepo.Delete(ctx, id)
}

// ListAdmin lists comments for the administrative interface.
func (s *CommentService) ListAdmin(ctx context.Context, filter domain.CommentFilter) ([]domain.Comment, error) {
	return s.commentRepo.List(ctx, filter)
}

// GetAdmin retrieves a comment regardless of approval state.
func (s *CommentService) GetAdmin(ctx context.Context, id int64) (*domain.Comment, error) {
	return s.commentRepo.GetByID(ctx, id)
}

// UpdateAdmin modifies any comment, including its approval state.
func (s *CommentService) UpdateAdmin(ctx context.Context, comment *domain.Comment) error {
	existing, err := s.commentRepo.GetByID(ctx, comment.ID)
	if err != nil {
		return err
	}

	if comment.ArticleID == 0 {
		comment.ArticleID = existing.ArticleID
	}
	comment.CreatedDate = existing.CreatedDate

	if err := s.validator.ValidateComment(comment); err != nil {
		return err
	}

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return err
	}

	if comment.IsApproved && !existing.IsApproved {
		metrics.CommentsApprovedTotal.Add(1)
	}
	return nil
}

// DeleteAdmin removes any comment.
func (s *CommentService) DeleteAdmin(ctx context.Context, id int64) error {
	return s.commentRepo.Delete(ctx, id)
}

// BulkApprove approves exactly the selected comments in one operation.
func (s *CommentService) BulkApprove(ctx context.Context, ids []int64) (int64, error) {
	n, err := s.commentRepo.BulkApprove(ctx, ids)
	if err != nil {
		return 0, err
	}

	if n > 0 {
		metrics.CommentsApprovedTotal.Add(float64(n))
	}
	return n, nil
}
