package blogservice

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Slug    string    `json:"slug"`
	Excerpt string    `json:"excerpt"`
	// Content is stored in Markdown format.
	Content string `json:"content"`
	// ContentHTML is only rendered for public single-post reads.
	ContentHTML string    `json:"contentHtml,omitempty"`
	Author      string    `json:"author"`
	Tags        []string  `json:"tags"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Featured    bool      `json:"featured"`
	Published   bool      `json:"published"`
	ReadTime    string    `json:"readTime"`
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Version     int       `json:"version"`
}

type CreatePostRequest struct {
	Title     string   `json:"title"`
	Slug      string   `json:"slug"`
	Excerpt   string   `json:"excerpt"`
	Content   string   `json:"content"`
	Author    string   `json:"author"`
	Tags      []string `json:"tags"`
	ImageURL  string   `json:"imageUrl"`
	Featured  bool     `json:"featured"`
	Published bool     `json:"published"`
	ReadTime  string   `json:"readTime"`
}

// UpdatePostRequest holds the fields to merge into an existing post. Nil fields are left untouched.
type UpdatePostRequest struct {
	Title     *string   `json:"title"`
	Slug      *string   `json:"slug"`
	Excerpt   *string   `json:"excerpt"`
	Content   *string   `json:"content"`
	Author    *string   `json:"author"`
	Tags      *[]string `json:"tags"`
	ImageURL  *string   `json:"imageUrl"`
	Featured  *bool     `json:"featured"`
	Published *bool     `json:"published"`
	ReadTime  *string   `json:"readTime"`
}

type Filter struct {
	PublishedOnly bool
	FeaturedOnly  bool
	Limit         int
	Offset        int
}

type BlogModel struct {
	db *sql.DB
}

type BlogService struct {
	m             *BlogModel
	defaultAuthor string
}
