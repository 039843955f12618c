package service

import (
	"context"
	"errors"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/2YH02/portfolio-be/internal/apperr"
	"github.com/2YH02/portfolio-be/internal/db"
	"github.com/2YH02/portfolio-be/internal/models"
)

const DefaultPageSize = 12

// PostStore is implemented by *db.Store.
type PostStore interface {
	ListPosts(ctx context.Context, limit, offset int) ([]models.Post, int, error)
	GetPostByID(ctx context.Context, id int64) (*models.Post, error)
	CreatePost(ctx context.Context, input models.CreatePost) (*models.Post, error)
	UpdatePost(ctx context.Context, id int64, input models.UpdatePost) (*models.Post, error)
	DeletePost(ctx context.Context, id int64) error
	IncrementViewCount(ctx context.Context, id int64) (int64, error)
}

type PostService struct {
	store    PostStore
	logger   *zap.Logger
	pageSize int
}

func NewPostService(store PostStore, logger *zap.Logger, pageSize int) *PostService {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &PostService{store: store, logger: logger, pageSize: pageSize}
}

// PageBounds converts a 1-based page number into limit and offset.
// Pages below 1 are treated as the first page; pages past the int range of
// the offset are clamped and yield an empty page.
func PageBounds(page, pageSize int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if maxPage := math.MaxInt / pageSize; page > maxPage {
		page = maxPage
	}
	return pageSize, (page - 1) * pageSize
}

func (s *PostService) List(ctx context.Context, page int) (*models.PostListResponse, error) {
	limit, offset := PageBounds(page, s.pageSize)
	posts, total, err := s.store.ListPosts(ctx, limit, offset)
	if err != nil {
		return nil, s.internal("list posts", err)
	}
	return &models.PostListResponse{TotalCount: total, Posts: posts}, nil
}

func (s *PostService) Get(ctx context.Context, id int64) (*models.Post, error) {
	post, err := s.store.GetPostByID(ctx, id)
	if err != nil {
		return nil, s.classify("get post", err)
	}
	return post, nil
}

func (s *PostService) Create(ctx context.Context, input models.CreatePost) (*models.Post, error) {
	if err := validateCreate(input); err != nil {
		return nil, err
	}
	post, err := s.store.CreatePost(ctx, input)
	if err != nil {
		return nil, s.internal("create post", err)
	}
	s.logger.Info("post created", zap.Int64("post_id", post.ID), zap.String("title", post.Title))
	return post, nil
}

func validateCreate(input models.CreatePost) error {
	if strings.TrimSpace(input.Title) == "" {
		return apperr.BadRequest("title is required")
	}
	if strings.TrimSpace(input.Body) == "" {
		return apperr.BadRequest("body is required")
	}
	if strings.TrimSpace(input.Thumbnail) == "" {
		return apperr.BadRequest("thumbnail is required")
	}
	return nil
}

func (s *PostService) Update(ctx context.Context, id int64, input models.UpdatePost) (*models.Post, error) {
	post, err := s.store.UpdatePost(ctx, id, input)
	if err != nil {
		return nil, s.classify("update post", err)
	}
	return post, nil
}

func (s *PostService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeletePost(ctx, id); err != nil {
		return s.internal("delete post", err)
	}
	s.logger.Info("post deleted", zap.Int64("post_id", id))
	return nil
}

func (s *PostService) IncrementView(ctx context.Context, id int64) (int64, error) {
	count, err := s.store.IncrementViewCount(ctx, id)
	if err != nil {
		return 0, s.classify("increment view", err)
	}
	return count, nil
}

func (s *PostService) classify(op string, err error) error {
	if errors.Is(err, db.ErrNotFound) {
		return apperr.NotFound()
	}
	return s.internal(op, err)
}

func (s *PostService) internal(op string, err error) error {
	return apperr.Internal(op, err)
}
