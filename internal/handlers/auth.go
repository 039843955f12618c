package handlers

import (
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/2YH02/portfolio-be/internal/apperr"
	"github.com/2YH02/portfolio-be/internal/auth"
	"github.com/2YH02/portfolio-be/internal/middleware"
)

type AuthHandler struct {
	resolver     *auth.Resolver
	cookieSecure bool
	sameSite     http.SameSite
	logger       *zap.Logger
}

func NewAuthHandler(resolver *auth.Resolver, cookieSecure bool, sameSite http.SameSite, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		resolver:     resolver,
		cookieSecure: cookieSecure,
		sameSite:     sameSite,
		logger:       logger,
	}
}

type LoginRequest struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

// Login exchanges admin credentials for an admin_token cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeBody(w, r, &req); err != nil {
		respondAppError(w, r, h.logger, err)
		return
	}
	principal, token, err := h.resolver.Login(req.User, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.logger.Warn("admin login rejected", zap.String("user", req.User), zap.String("remote", r.RemoteAddr))
			respondAppError(w, r, h.logger, apperr.Unauthorized("invalid credentials"))
			return
		}
		respondAppError(w, r, h.logger, apperr.Internal("login", err))
		return
	}
	http.SetCookie(w, h.tokenCookie(token, int(auth.TokenTTL.Seconds())))
	respondJSON(w, http.StatusOK, principal)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.tokenCookie("", -1))
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, middleware.PrincipalFrom(r.Context()))
}

func (h *AuthHandler) tokenCookie(value string, maxAge int) *http.Cookie {
	cookie := &http.Cookie{
		Name:     auth.TokenCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: h.sameSite,
	}
	if maxAge > 0 {
		cookie.Expires = time.Now().Add(time.Duration(maxAge) * time.Second)
	} else {
		cookie.Expires = time.Unix(0, 0)
	}
	return cookie
}
