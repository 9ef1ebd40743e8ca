package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"communityhub/internal/domain"
)

type mockPostRepository struct {
	posts     map[string]*domain.Post
	createErr error
}

func newMockPostRepository() *mockPostRepository {
	return &mockPostRepository{posts: map[string]*domain.Post{}}
}

func (m *mockPostRepository) Create(ctx context.Context, post *domain.Post) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.posts[post.Slug] = post
	return nil
}

func (m *mockPostRepository) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	post, ok := m.posts[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return post, nil
}

func (m *mockPostRepository) List(ctx context.Context, p domain.PaginationParams) ([]*domain.Post, int, error) {
	var out []*domain.Post
	for _, post := range m.posts {
		out = append(out, post)
	}
	return out, len(out), nil
}

func TestContentService_CreatePost(t *testing.T) {
	ctx := context.Background()
	repo := newMockPostRepository()
	svc := NewContentService(repo)

	content := strings.Repeat("word ", 250)
	post, err := svc.CreatePost(ctx, domain.CreatePostInput{
		Title:   "Community BBQ: What We Learned!",
		Content: content,
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if post.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if post.Slug != "community-bbq-what-we-learned" {
		t.Fatalf("unexpected slug %q", post.Slug)
	}
	if post.ReadingTimeMinutes != 2 {
		t.Fatalf("reading time = %d, want 2", post.ReadingTimeMinutes)
	}
	if post.PublishedAt == "" {
		t.Fatalf("expected published_at to be set")
	}

	got, err := svc.GetPostBySlug(ctx, post.Slug)
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if got.ID != post.ID {
		t.Fatalf("slug lookup returned wrong post")
	}
}

func TestContentService_CreatePostExplicitSlug(t *testing.T) {
	ctx := context.Background()
	svc := NewContentService(newMockPostRepository())

	post, err := svc.CreatePost(ctx, domain.CreatePostInput{
		Title:   "Anything",
		Slug:    "custom-slug",
		Content: "short body",
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if post.Slug != "custom-slug" {
		t.Fatalf("explicit slug ignored, got %q", post.Slug)
	}
	if post.ReadingTimeMinutes != 1 {
		t.Fatalf("reading time = %d, want 1", post.ReadingTimeMinutes)
	}
}

func TestContentService_CreatePostValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewContentService(newMockPostRepository())

	tests := []struct {
		name  string
		input domain.CreatePostInput
	}{
		{"missing title", domain.CreatePostInput{Content: "body"}},
		{"missing content", domain.CreatePostInput{Title: "Title"}},
		{"unsluggable title", domain.CreatePostInput{Title: "!!!", Content: "body"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreatePost(ctx, tt.input); !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestContentService_GetPostNotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewContentService(newMockPostRepository())

	if _, err := svc.GetPostBySlug(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Multiple   Spaces  ", "multiple-spaces"},
		{"Already-Slugged", "already-slugged"},
		{"Ünïcode goes away", "n-code-goes-away"},
		{"Trailing! Punctuation?", "trailing-punctuation"},
	}
	for _, tt := range tests {
		if got := slugify(tt.in); got != tt.want {
			t.Fatalf("slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
