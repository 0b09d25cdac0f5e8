package domain

import "time"

// Comment represents a reader comment on an article. Comments are created
// unapproved and stay invisible to the public API until moderated.
type Comment struct {
	ID          int64     `json:"id"`
	ArticleID   int64     `json:"article_id"`
	AuthorName  string    `json:"author_name"`
	Email       string    `json:"email"`
	Content     string    `json:"content"`
	CreatedDate time.Time `json:"created_date"`
	IsApproved  bool      `json:"is_approved"`
}

// CommentFilter is the admin-side listing filter.
type CommentFilter struct {
	Approved      *bool
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	Query         string
	Limit         int
	Offset        int
}
