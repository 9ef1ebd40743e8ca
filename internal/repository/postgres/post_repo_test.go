package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"communityhub/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var postColumns = []string{"id", "slug", "title", "content", "cover_image_url", "reading_time_minutes", "published_at", "created_at", "updated_at"}

func TestPostRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	post := &domain.Post{
		ID:                 "post-uuid-1",
		Slug:               "hello-world",
		Title:              "Hello World",
		Content:            "first post",
		ReadingTimeMinutes: 1,
		PublishedAt:        "2025-05-20T10:00:00Z",
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	mock.ExpectExec(`INSERT INTO posts`).
		WithArgs("post-uuid-1", "hello-world", "Hello World", "first post", "", 1, "2025-05-20T10:00:00Z", now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewPostRepository(db)
	require.NoError(t, repo.Create(ctx, post))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_GetBySlug(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT .* FROM posts\s+WHERE slug = \$1`).
			WithArgs("hello-world").
			WillReturnRows(sqlmock.NewRows(postColumns).
				AddRow("post-uuid-1", "hello-world", "Hello World", "first post", "", 1, "2025-05-20T10:00:00Z", now, now))

		repo := NewPostRepository(db)
		post, err := repo.GetBySlug(ctx, "hello-world")
		require.NoError(t, err)
		require.Equal(t, "Hello World", post.Title)
		require.Equal(t, 1, post.ReadingTimeMinutes)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT .* FROM posts`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		repo := NewPostRepository(db)
		_, err = repo.GetBySlug(ctx, "missing")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestPostRepository_List(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM posts`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT .* FROM posts\s+ORDER BY created_at DESC\s+LIMIT \$1 OFFSET \$2`).
		WithArgs(2, 0).
		WillReturnRows(sqlmock.NewRows(postColumns).
			AddRow("p1", "one", "One", "a", "", 1, "2025-05-20T10:00:00Z", now, now).
			AddRow("p2", "two", "Two", "b", "", 1, "2025-05-19T10:00:00Z", now, now))

	repo := NewPostRepository(db)
	posts, total, err := repo.List(ctx, domain.PaginationParams{Page: 1, PageSize: 2})
	require.NoError(t, err)
	require.Equal(t, 3, total)
	require.Len(t, posts, 2)
	require.Equal(t, "one", posts[0].Slug)
	require.NoError(t, mock.ExpectationsWereMet())
}
