package handler

import (
	"newsdesk/internal/domain"
)

// CategoryResponse represents a category in the API response.
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

func toCategoryResponse(category *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Slug:        category.Slug,
		Description: category.Description,
	}
}

func toCategoryResponses(categories []domain.Category) []CategoryResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, toCategoryResponse(&categories[i]))
	}
	return responses
}

// CommentResponse represents a comment in public API responses. The
// submitter's email and the moderation flag never leave the admin
// surface.
type CommentResponse struct {
	ID          int64  `json:"id"`
	AuthorName  string `json:"author_name"`
	Content     string `json:"content"`
	CreatedDate string `json:"created_date"`
}

func toCommentResponse(comment *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:          comment.ID,
		AuthorName:  comment.AuthorName,
		Content:     comment.Content,
		CreatedDate: comment.CreatedDate.Format(TimeFormat),
	}
}

func toCommentResponses(comments []domain.Comment) []CommentResponse {
	responses := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, toCommentResponse(&comments[i]))
	}
	return responses
}

// ArticleListResponse represents an article in public listing responses.
// Listings carry the excerpt instead of the full body, plus the count of
// approved comments.
type ArticleListResponse struct {
	ID            int64             `json:"id"`
	Title         string            `json:"title"`
	Slug          string            `json:"slug"`
	Excerpt       string            `json:"excerpt"`
	Author        string            `json:"author"`
	Category      *CategoryResponse `json:"category"`
	Image         *string           `json:"image"`
	PublishedDate string            `json:"published_date"`
	Views         int               `json:"views"`
	IsFeatured    bool              `json:"is_featured"`
	CommentCount  int               `json:"comment_count"`
}

func toArticleListResponse(view *domain.ArticleView) ArticleListResponse {
	response := ArticleListResponse{
		ID:            view.ID,
		Title:         view.Title,
		Slug:          view.Slug,
		Excerpt:       view.Excerpt,
		Author:        view.AuthorID,
		Image:         view.Image,
		PublishedDate: view.PublishedDate.Format(TimeFormat),
		Views:         view.Views,
		IsFeatured:    view.IsFeatured,
		CommentCount:  view.CommentCount,
	}
	if view.Category != nil {
		category := toCategoryResponse(view.Category)
		response.Category = &category
	}
	return response
}

func toArticleListResponses(views []domain.ArticleView) []ArticleListResponse {
	responses := make([]ArticleListResponse, 0, len(views))
	for i := range views {
		responses = append(responses, toArticleListResponse(&views[i]))
	}
	return responses
}

// ArticleDetailResponse represents a single article in the public detail
// response, with the full body and every comment nested.
type ArticleDetailResponse struct {
	ID            int64             `json:"id"`
	Title         string            `json:"title"`
	Slug          string            `json:"slug"`
	Content       string            `json:"content"`
	Author        string            `json:"author"`
	Category      *CategoryResponse `json:"category"`
	Image         *string           `json:"image"`
	PublishedDate string            `json:"published_date"`
	UpdatedDate   string            `json:"updated_date"`
	Views         int               `json:"views"`
	IsFeatured    bool              `json:"is_featured"`
	Comments      []CommentResponse `json:"comments"`
}

func toArticleDetailResponse(detail *domain.ArticleDetail) ArticleDetailResponse {
	response := ArticleDetailResponse{
		ID:            detail.ID,
		Title:         detail.Title,
		Slug:          detail.Slug,
		Content:       detail.Content,
		Author:        detail.AuthorID,
		Image:         detail.Image,
		PublishedDate: detail.PublishedDate.Format(TimeFormat),
		UpdatedDate:   detail.UpdatedDate.Format(TimeFormat),
		Views:         detail.Views,
		IsFeatured:    detail.IsFeatured,
		Comments:      toCommentResponses(detail.Comments),
	}
	if detail.Category != nil {
		category := toCategoryResponse(detail.Category)
		response.Category = &category
	}
	return response
}

// AdminArticleResponse represents an article in the administrative API,
// with every stored field exposed.
type AdminArticleResponse struct {
	ID            int64             `json:"id"`
	Title         string            `json:"title"`
	Slug          string            `json:"slug"`
	Content       string            `json:"content"`
	Excerpt       string            `json:"excerpt"`
	AuthorID      string            `json:"author_id"`
	CategoryID    *int64            `json:"category_id"`
	Category      *CategoryResponse `json:"category"`
	Image         *string           `json:"image"`
	Status        string            `json:"status"`
	PublishedDate string            `json:"published_date"`
	CreatedDate   string            `json:"created_date"`
	UpdatedDate   string            `json:"updated_date"`
	Views         int               `json:"views"`
	IsFeatured    bool              `json:"is_featured"`
	CommentCount  int               `json:"comment_count"`
}

func toAdminArticleResponse(view *domain.ArticleView) AdminArticleResponse {
	response := AdminArticleResponse{
		ID:            view.ID,
		Title:         view.Title,
		Slug:          view.Slug,
		Content:       view.Content,
		Excerpt:       view.Excerpt,
		AuthorID:      view.AuthorID,
		CategoryID:    view.CategoryID,
		Image:         view.Image,
		Status:        view.Status,
		PublishedDate: view.PublishedDate.Format(TimeFormat),
		CreatedDate:   view.CreatedDate.Format(TimeFormat),
		UpdatedDate:   view.UpdatedDate.Format(TimeFormat),
		Views:         view.Views,
		IsFeatured:    view.IsFeatured,
		CommentCount:  view.CommentCount,
	}
	if view.Category != nil {
		category := toCategoryResponse(view.Category)
		response.Category = &category
	}
	return response
}

func toAdminArticleResponses(views []domain.ArticleView) []AdminArticleResponse {
	responses := make([]AdminArticleResponse, 0, len(views))
	for i := range views {
		responses = append(responses, toAdminArticleResponse(&views[i]))
	}
	return responses
}

// AdminCommentResponse represents a comment in the administrative API,
// including the submitter's email and the moderation flag.
type AdminCommentResponse struct {
	ID          int64  `json:"id"`
	ArticleID   int64  `json:"article_id"`
	AuthorName  string `json:"author_name"`
	Email       string `json:"email"`
	Content     string `json:"content"`
	CreatedDate string `json:"created_date"`
	IsApproved  bool   `json:"is_approved"`
}

func toAdminCommentResponse(comment *domain.Comment) AdminCommentResponse {
	return AdminCommentResponse{
		ID:          comment.ID,
		ArticleID:   comment.ArticleID,
		AuthorName:  comment.AuthorName,
		Email:       comment.Email,
		Content:     comment.Content,
		CreatedDate: comment.CreatedDate.Format(TimeFormat),
		IsApproved:  comment.IsApproved,
	}
}

func toAdminCommentResponses(comments []domain.Comment) []AdminCommentResponse {
	responses := make([]AdminCommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, toAdminCommentResponse(&comments[i]))
	}
	return responses
}
