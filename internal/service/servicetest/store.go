// Package servicetest provides an in-memory PostStore for tests.
package servicetest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/2YH02/portfolio-be/internal/db"
	"github.com/2YH02/portfolio-be/internal/models"
)

type Store struct {
	mu     sync.Mutex
	posts  map[int64]models.Post
	nextID int64
	now    time.Time

	// Calls counts every store method invocation.
	Calls int
	// Err, when set, is returned by every method.
	Err error
}

func NewStore() *Store {
	return &Store{
		posts:  map[int64]models.Post{},
		nextID: 1,
		now:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.posts)
}

func (s *Store) enter() error {
	s.Calls++
	return s.Err
}

func (s *Store) ListPosts(_ context.Context, limit, offset int) ([]models.Post, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(); err != nil {
		return nil, 0, err
	}
	all := make([]models.Post, 0, len(s.posts))
	for _, post := range s.posts {
		all = append(all, post)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID > all[j].ID
	})
	if offset < 0 {
		offset = 0
	}
	if offset > len(all) {
		offset = len(all)
	}
	end := offset + limit
	if limit < 0 || end < offset || end > len(all) {
		end = len(all)
	}
	return all[offset:end], len(all), nil
}

func (s *Store) GetPostByID(_ context.Context, id int64) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(); err != nil {
		return nil, err
	}
	post, ok := s.posts[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return &post, nil
}

func (s *Store) CreatePost(_ context.Context, input models.CreatePost) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(); err != nil {
		return nil, err
	}
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}
	s.now = s.now.Add(time.Minute)
	post := models.Post{
		ID:            s.nextID,
		Title:         input.Title,
		Description:   input.Description,
		Body:          input.Body,
		Tags:          tags,
		Thumbnail:     input.Thumbnail,
		ThumbnailBlur: input.ThumbnailBlur,
		CreatedAt:     s.now,
	}
	s.posts[post.ID] = post
	s.nextID++
	return &post, nil
}

func (s *Store) UpdatePost(_ context.Context, id int64, input models.UpdatePost) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(); err != nil {
		return nil, err
	}
	post, ok := s.posts[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Description != nil {
		post.Description = *input.Description
	}
	if input.Body != nil {
		post.Body = *input.Body
	}
	s.posts[id] = post
	return &post, nil
}

func (s *Store) DeletePost(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(); err != nil {
		return err
	}
	delete(s.posts, id)
	return nil
}

func (s *Store) IncrementViewCount(_ context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(); err != nil {
		return 0, err
	}
	post, ok := s.posts[id]
	if !ok {
		return 0, db.ErrNotFound
	}
	post.ViewCount++
	s.posts[id] = post
	return post.ViewCount, nil
}
