package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/2YH02/portfolio-be/internal/apperr"
)

const maxBodyBytes = 8 << 20

func Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.BadRequest("invalid body")
	}
	return nil
}

// parseID reads the {id} path segment. Post ids are int4 in storage, so a
// number outside that range cannot name a post.
func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, apperr.NotFound()
		}
		return 0, apperr.BadRequest("invalid id")
	}
	return id, nil
}

func parsePositiveInt(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondAppError maps err onto its status. Internal causes are logged, not sent.
func respondAppError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("request_id", chimiddleware.GetReqID(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	respondError(w, status, apperr.PublicMessage(err))
}
