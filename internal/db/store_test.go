package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"

	"github.com/2YH02/portfolio-be/internal/models"
)

var postFields = []string{
	"id", "title", "description", "body", "tags",
	"thumbnail", "thumbnail_blur", "view_count", "created_at",
}

func newMockStore(t *testing.T) (*Store, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal("Error: ", err)
	}
	t.Cleanup(mock.Close)
	return NewStoreWith(mock), mock
}

func checkExpectations(t *testing.T, mock pgxmock.PgxPoolIface) {
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error("Unmet expectations: ", err)
	}
}

func TestStore_ListPosts(t *testing.T) {
	store, mock := newMockStore(t)
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	blur := "data:image/jpeg;base64,AAAA"
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM posts`).
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(30))
	mock.ExpectQuery(`ORDER BY created_at DESC, id DESC\s+LIMIT \$1 OFFSET \$2`).
		WithArgs(12, 12).
		WillReturnRows(mock.NewRows(postFields).
			AddRow(int64(2), "second", "", "body", []string{"go"}, "thumb", &blur, int64(4), created).
			AddRow(int64(1), "first", "desc", "body", []string{}, "thumb", (*string)(nil), int64(0), created))

	posts, total, err := store.ListPosts(context.Background(), 12, 12)
	if err != nil {
		t.Fatal("Error: ", err)
	}
	if total != 30 {
		t.Errorf("Expected total 30, but got %d", total)
	}
	if len(posts) != 2 || posts[0].ID != 2 || posts[1].ID != 1 {
		t.Fatalf("Unexpected posts: %+v", posts)
	}
	if posts[0].ThumbnailBlur == nil || *posts[0].ThumbnailBlur != blur {
		t.Errorf("Expected thumbnail blur, but got %v", posts[0].ThumbnailBlur)
	}
	if posts[1].ThumbnailBlur != nil {
		t.Errorf("Expected no thumbnail blur, but got %v", *posts[1].ThumbnailBlur)
	}
	checkExpectations(t, mock)
}

func TestStore_ListPosts_CountError(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM posts`).WillReturnError(errors.New("connection reset"))
	if _, _, err := store.ListPosts(context.Background(), 12, 0); err == nil {
		t.Error("Expected error")
	}
	checkExpectations(t, mock)
}

func TestStore_GetPostByID(t *testing.T) {
	store, mock := newMockStore(t)
	created := time.Now().UTC()
	mock.ExpectQuery(`FROM posts\s+WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(mock.NewRows(postFields).
			AddRow(int64(7), "title", "desc", "body", []string{"a", "b"}, "thumb", (*string)(nil), int64(3), created))
	mock.ExpectQuery(`FROM posts\s+WHERE id = \$1`).
		WithArgs(int64(8)).
		WillReturnError(pgx.ErrNoRows)

	post, err := store.GetPostByID(context.Background(), 7)
	if err != nil {
		t.Fatal("Error: ", err)
	}
	if post.Title != "title" || post.ViewCount != 3 || len(post.Tags) != 2 {
		t.Errorf("Unexpected post: %+v", post)
	}
	if _, err := store.GetPostByID(context.Background(), 8); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, but got %v", err)
	}
	checkExpectations(t, mock)
}

func TestStore_CreatePost(t *testing.T) {
	store, mock := newMockStore(t)
	created := time.Now().UTC()
	mock.ExpectQuery(`INSERT INTO posts \(title, description, body, tags, thumbnail, thumbnail_blur\)`).
		WithArgs("title", "", "body", []string{}, "thumb", (*string)(nil)).
		WillReturnRows(mock.NewRows(postFields).
			AddRow(int64(1), "title", "", "body", []string{}, "thumb", (*string)(nil), int64(0), created))

	post, err := store.CreatePost(context.Background(), models.CreatePost{
		Title:     "title",
		Body:      "body",
		Thumbnail: "thumb",
	})
	if err != nil {
		t.Fatal("Error: ", err)
	}
	if post.ID != 1 || !post.CreatedAt.Equal(created) {
		t.Errorf("Unexpected post: %+v", post)
	}
	checkExpectations(t, mock)
}

func TestStore_UpdatePost(t *testing.T) {
	store, mock := newMockStore(t)
	created := time.Now().UTC()
	title := "new title"
	mock.ExpectQuery(`title = COALESCE\(\$1, title\)`).
		WithArgs(&title, (*string)(nil), (*string)(nil), int64(4)).
		WillReturnRows(mock.NewRows(postFields).
			AddRow(int64(4), title, "desc", "body", []string{}, "thumb", (*string)(nil), int64(0), created))
	mock.ExpectQuery(`title = COALESCE\(\$1, title\)`).
		WithArgs((*string)(nil), (*string)(nil), (*string)(nil), int64(5)).
		WillReturnError(pgx.ErrNoRows)

	post, err := store.UpdatePost(context.Background(), 4, models.UpdatePost{Title: &title})
	if err != nil {
		t.Fatal("Error: ", err)
	}
	if post.Title != title || post.Description != "desc" {
		t.Errorf("Unexpected post: %+v", post)
	}
	if _, err := store.UpdatePost(context.Background(), 5, models.UpdatePost{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, but got %v", err)
	}
	checkExpectations(t, mock)
}

func TestStore_DeletePost(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec(`DELETE FROM posts WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec(`DELETE FROM posts WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnError(errors.New("connection refused"))

	if err := store.DeletePost(context.Background(), 99); err != nil {
		t.Errorf("Expected missing id to be deleted quietly, but got %v", err)
	}
	if err := store.DeletePost(context.Background(), 1); err == nil {
		t.Error("Expected error")
	}
	checkExpectations(t, mock)
}

func TestStore_IncrementViewCount(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(`SET view_count = view_count \+ 1`).
		WithArgs(int64(3)).
		WillReturnRows(mock.NewRows([]string{"view_count"}).AddRow(int64(11)))
	mock.ExpectQuery(`SET view_count = view_count \+ 1`).
		WithArgs(int64(4)).
		WillReturnError(pgx.ErrNoRows)

	count, err := store.IncrementViewCount(context.Background(), 3)
	if err != nil {
		t.Fatal("Error: ", err)
	}
	if count != 11 {
		t.Errorf("Expected 11, but got %d", count)
	}
	if _, err := store.IncrementViewCount(context.Background(), 4); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, but got %v", err)
	}
	checkExpectations(t, mock)
}

func TestStore_Migrate(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS posts`).WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec(`ADD COLUMN IF NOT EXISTS description`).WillReturnResult(pgxmock.NewResult("ALTER", 0))
	mock.ExpectExec(`ADD COLUMN IF NOT EXISTS thumbnail_blur`).WillReturnResult(pgxmock.NewResult("ALTER", 0))
	mock.ExpectExec(`ADD COLUMN IF NOT EXISTS view_count`).WillReturnResult(pgxmock.NewResult("ALTER", 0))
	mock.ExpectExec(`CREATE INDEX IF NOT EXISTS posts_created_at_idx`).WillReturnResult(pgxmock.NewResult("CREATE", 0))
	if err := store.Migrate(context.Background()); err != nil {
		t.Fatal("Error: ", err)
	}
	checkExpectations(t, mock)
}
