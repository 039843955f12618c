package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/2YH02/portfolio-be/internal/models"
)

var ErrNotFound = errors.New("post not found")

// Querier is the subset of pgxpool.Pool the store needs.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Store struct {
	db   Querier
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &Store{db: pool, pool: pool}, nil
}

// NewStoreWith builds a store over an existing connection or pool.
func NewStoreWith(db Querier) *Store {
	return &Store{db: db}
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

const postColumns = `
	id,
	title,
	COALESCE(description, ''),
	body,
	COALESCE(tags, '{}'::text[]),
	thumbnail,
	thumbnail_blur,
	view_count,
	created_at
`

func scanPost(row pgx.Row, post *models.Post) error {
	return row.Scan(
		&post.ID,
		&post.Title,
		&post.Description,
		&post.Body,
		&post.Tags,
		&post.Thumbnail,
		&post.ThumbnailBlur,
		&post.ViewCount,
		&post.CreatedAt,
	)
}

// ListPosts returns one page ordered newest first and the count of all posts.
// The two statements are not run in one snapshot.
func (s *Store) ListPosts(ctx context.Context, limit, offset int) ([]models.Post, int, error) {
	var total int
	if err := s.db.QueryRow(ctx, "SELECT COUNT(*) FROM posts").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	rows, err := s.db.Query(ctx, `
		SELECT`+postColumns+`
		FROM posts
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, limit)
	for rows.Next() {
		var post models.Post
		if err := scanPost(rows, &post); err != nil {
			return nil, 0, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}
	return posts, total, nil
}

func (s *Store) GetPostByID(ctx context.Context, id int64) (*models.Post, error) {
	var post models.Post
	err := scanPost(s.db.QueryRow(ctx, `
		SELECT`+postColumns+`
		FROM posts
		WHERE id = $1
	`, id), &post)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}
	return &post, nil
}

func (s *Store) CreatePost(ctx context.Context, input models.CreatePost) (*models.Post, error) {
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}
	var created models.Post
	err := scanPost(s.db.QueryRow(ctx, `
		INSERT INTO posts (title, description, body, tags, thumbnail, thumbnail_blur)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING`+postColumns,
		input.Title,
		input.Description,
		input.Body,
		tags,
		input.Thumbnail,
		input.ThumbnailBlur,
	), &created)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return &created, nil
}

func (s *Store) UpdatePost(ctx context.Context, id int64, input models.UpdatePost) (*models.Post, error) {
	var updated models.Post
	err := scanPost(s.db.QueryRow(ctx, `
		UPDATE posts SET
			title = COALESCE($1, title),
			description = COALESCE($2, description),
			body = COALESCE($3, body)
		WHERE id = $4
		RETURNING`+postColumns,
		input.Title,
		input.Description,
		input.Body,
		id,
	), &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update post: %w", err)
	}
	return &updated, nil
}

// DeletePost removes the row. Deleting a missing id is not an error.
func (s *Store) DeletePost(ctx context.Context, id int64) error {
	if _, err := s.db.Exec(ctx, "DELETE FROM posts WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

func (s *Store) IncrementViewCount(ctx context.Context, id int64) (int64, error) {
	var count int64
	err := s.db.QueryRow(ctx, `
		UPDATE posts SET view_count = view_count + 1
		WHERE id = $1
		RETURNING view_count
	`, id).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("increment view count: %w", err)
	}
	return count, nil
}
