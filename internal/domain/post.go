package domain

import (
	"context"
	"time"
)

// Post is a blog post authored through the admin flow.
// swagger:model Post
type Post struct {
	ID                 string    `json:"id"`
	Slug               string    `json:"slug"`
	Title              string    `json:"title"`
	Content            string    `json:"content"`
	CoverImageURL      string    `json:"cover_image_url,omitempty"`
	ReadingTimeMinutes int       `json:"reading_time_minutes"`
	PublishedAt        string    `json:"published_at"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// CreatePostInput holds the author-supplied fields for a new post.
type CreatePostInput struct {
	Title         string
	Slug          string
	Content       string
	CoverImageURL string
}

// PostRepository defines storage operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	// GetBySlug returns the post with the slug, or ErrNotFound.
	GetBySlug(ctx context.Context, slug string) (*Post, error)
	// List returns a page of posts (newest first) and the total count.
	List(ctx context.Context, p PaginationParams) ([]*Post, int, error)
}

// ContentService defines the blog authoring and reading operations.
type ContentService interface {
	CreatePost(ctx context.Context, input CreatePostInput) (*Post, error)
	GetPostBySlug(ctx context.Context, slug string) (*Post, error)
	ListPosts(ctx context.Context, p PaginationParams) ([]*Post, int, error)
}
