package postgres

import (
	"context"
	"database/sql"
	"errors"

	"communityhub/internal/domain"
)

type postRepository struct {
	DB *sql.DB
}

func NewPostRepository(db *sql.DB) domain.PostRepository {
	return &postRepository{
		DB: db,
	}
}

func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO posts (id, slug, title, content, cover_image_url, reading_time_minutes, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.DB.ExecContext(ctx, query,
		post.ID, post.Slug, post.Title, post.Content, post.CoverImageURL,
		post.ReadingTimeMinutes, post.PublishedAt, post.CreatedAt, post.UpdatedAt)
	return err
}

func (r *postRepository) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	query := `
		SELECT id, slug, title, content, cover_image_url, reading_time_minutes, published_at, created_at, updated_at
		FROM posts
		WHERE slug = $1
	`
	post := &domain.Post{}
	err := r.DB.QueryRowContext(ctx, query, slug).
		Scan(&post.ID, &post.Slug, &post.Title, &post.Content, &post.CoverImageURL,
			&post.ReadingTimeMinutes, &post.PublishedAt, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

func (r *postRepository) List(ctx context.Context, p domain.PaginationParams) ([]*domain.Post, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, slug, title, content, cover_image_url, reading_time_minutes, published_at, created_at, updated_at
		FROM posts
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, p.Limit(), p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var posts []*domain.Post
	for rows.Next() {
		post := &domain.Post{}
		if err := rows.Scan(&post.ID, &post.Slug, &post.Title, &post.Content, &post.CoverImageURL,
			&post.ReadingTimeMinutes, &post.PublishedAt, &post.CreatedAt, &post.UpdatedAt); err != nil {
			return nil, 0, err
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if posts == nil {
		posts = []*domain.Post{}
	}
	return posts, total, nil
}
