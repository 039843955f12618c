package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/2YH02/portfolio-be/internal/blur"
)

type BlurHandler struct {
	blurrer *blur.Blurrer
	logger  *zap.Logger
}

func NewBlurHandler(blurrer *blur.Blurrer, logger *zap.Logger) *BlurHandler {
	return &BlurHandler{blurrer: blurrer, logger: logger}
}

type BlurRequest struct {
	URL string `json:"url"`
}

type BlurResponse struct {
	DataURL string `json:"data_url"`
}

func (h *BlurHandler) Blur(w http.ResponseWriter, r *http.Request) {
	var req BlurRequest
	if err := decodeBody(w, r, &req); err != nil {
		respondAppError(w, r, h.logger, err)
		return
	}
	dataURL, err := h.blurrer.Blur(r.Context(), req.URL)
	if err != nil {
		respondAppError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, BlurResponse{DataURL: dataURL})
}
