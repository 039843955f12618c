package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/2YH02/portfolio-be/internal/apperr"
	"github.com/2YH02/portfolio-be/internal/models"
	"github.com/2YH02/portfolio-be/internal/service"
	"github.com/2YH02/portfolio-be/internal/views"
)

type PostsHandler struct {
	posts  *service.PostService
	logger *zap.Logger
}

func NewPostsHandler(posts *service.PostService, logger *zap.Logger) *PostsHandler {
	return &PostsHandler{posts: posts, logger: logger}
}

func (h *PostsHandler) List(w http.ResponseWriter, r *http.Request) {
	page := parsePositiveInt(r.URL.Query().Get("page"), 1)
	resp, err := h.posts.List(r.Context(), page)
	if err != nil {
		respondAppError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *PostsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondAppError(w, r, h.logger, err)
		return
	}
	post, err := h.posts.Get(r.Context(), id)
	if err != nil {
		respondAppError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, post)
}

func (h *PostsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePost
	if err := decodeBody(w, r, &req); err != nil {
		respondAppError(w, r, h.logger, err)
		return
	}
	created, err := h.posts.Create(r.Context(), req)
	if err != nil {
		respondAppError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *PostsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondAppError(w, r, h.logger, err)
		return
	}
	var req models.UpdatePost
	if err := decodeBody(w, r, &req); err != nil {
		respondAppError(w, r, h.logger, err)
		return
	}
	updated, err := h.posts.Update(r.Context(), id, req)
	if err != nil {
		respondAppError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// Delete answers 204 whether or not the post existed.
func (h *PostsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		respondAppError(w, r, h.logger, err)
		return
	}
	if err := h.posts.Delete(r.Context(), id); err != nil {
		respondAppError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type viewResponse struct {
	ViewCount int64 `json:"view_count"`
}

// View counts one view per client and post. Repeats answer 204 and leave
// both the counter and the viewed_posts cookie alone.
func (h *PostsHandler) View(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondAppError(w, r, h.logger, err)
		return
	}
	viewed := views.FromRequest(r)
	if views.AlreadyViewed(viewed, id) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	count, err := h.posts.IncrementView(r.Context(), id)
	if err != nil {
		respondAppError(w, r, h.logger, err)
		return
	}
	http.SetCookie(w, views.Cookie(views.Record(viewed, id), time.Now()))
	respondJSON(w, http.StatusOK, viewResponse{ViewCount: count})
}
