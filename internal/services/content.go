package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"communityhub/internal/domain"
	"communityhub/internal/meta"
)

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

type contentService struct {
	repo domain.PostRepository
}

// NewContentService creates a ContentService backed by the given repository.
func NewContentService(repo domain.PostRepository) domain.ContentService {
	return &contentService{repo: repo}
}

// slugify derives a URL slug from a title: lowercase, non-alphanumeric runs
// collapsed to single hyphens.
func slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugInvalidChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func (s *contentService) CreatePost(ctx context.Context, input domain.CreatePostInput) (*domain.Post, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, fmt.Errorf("%w: content is required", domain.ErrInvalidInput)
	}

	slug := input.Slug
	if slug == "" {
		slug = slugify(input.Title)
	}
	if slug == "" {
		return nil, fmt.Errorf("%w: slug could not be derived from title", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	post := &domain.Post{
		ID:                 meta.NewID(),
		Slug:               slug,
		Title:              strings.TrimSpace(input.Title),
		Content:            input.Content,
		CoverImageURL:      input.CoverImageURL,
		ReadingTimeMinutes: meta.ReadingTime(input.Content),
		PublishedAt:        meta.FormatISO(now),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

func (s *contentService) GetPostBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	if slug == "" {
		return nil, fmt.Errorf("%w: slug is required", domain.ErrInvalidInput)
	}
	post, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}
	return post, nil
}

func (s *contentService) ListPosts(ctx context.Context, p domain.PaginationParams) ([]*domain.Post, int, error) {
	posts, total, err := s.repo.List(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}
	if posts == nil {
		posts = []*domain.Post{}
	}
	return posts, total, nil
}
