package domain

import "time"

// Article statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// ValidStatuses contains all valid article statuses.
var ValidStatuses = []string{StatusDraft, StatusPublished, StatusArchived}

// IsValidStatus checks if a status is valid.
func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Article represents an article entity in the system. AuthorID references
// the external user-identity record of the author. CategoryID is nullable
// and is cleared when the referenced category is deleted.
type Article struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Content       string    `json:"content"`
	Excerpt       string    `json:"excerpt"`
	AuthorID      string    `json:"author_id"`
	CategoryID    *int64    `json:"category_id,omitempty"`
	Image         *string   `json:"image,omitempty"`
	Status        string    `json:"status"`
	PublishedDate time.Time `json:"published_date"`
	CreatedDate   time.Time `json:"created_date"`
	UpdatedDate   time.Time `json:"updated_date"`
	Views         int       `json:"views"`
	IsFeatured    bool      `json:"is_featured"`
}

// ArticleView is an article joined with its category and the count of
// approved comments, as produced by the read-side queries.
type ArticleView struct {
	Article
	Category     *Category `json:"category,omitempty"`
	CommentCount int       `json:"comment_count"`
}

// ArticleDetail is the full detail representation source: the article,
// its category, and all of its comments regardless of approval state.
type ArticleDetail struct {
	ArticleView
	Comments []Comment `json:"comments"`
}

// PublishedFilter selects from published articles only. The default sort
// order is descending published_date.
type PublishedFilter struct {
	FeaturedOnly bool
	TitleQuery   string
	Limit        int
}

// ArticleFilter is the admin-side listing filter.
type ArticleFilter struct {
	Status          string
	CategoryID      *int64
	Featured        *bool
	PublishedAfter  *time.Time
	PublishedBefore *time.Time
	Query           string
	Limit           int
	Offset          int
}
