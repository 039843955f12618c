package models

import (
	"time"
)

type Post struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Body          string    `json:"body"`
	Tags          []string  `json:"tags"`
	Thumbnail     string    `json:"thumbnail"`
	ThumbnailBlur *string   `json:"thumbnail_blur"`
	ViewCount     int64     `json:"view_count"`
	CreatedAt     time.Time `json:"created_at"`
}

type PostListResponse struct {
	TotalCount int    `json:"total_count"`
	Posts      []Post `json:"posts"`
}

type CreatePost struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Body          string   `json:"body"`
	Tags          []string `json:"tags"`
	Thumbnail     string   `json:"thumbnail"`
	ThumbnailBlur *string  `json:"thumbnail_blur"`
}

// UpdatePost is a partial update: nil fields keep their stored value.
type UpdatePost struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Body        *string `json:"body"`
}
