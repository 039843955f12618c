package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/2YH02/portfolio-be/internal/auth"
	"github.com/2YH02/portfolio-be/internal/blur"
	"github.com/2YH02/portfolio-be/internal/middleware"
	"github.com/2YH02/portfolio-be/internal/service"
)

type RouterDeps struct {
	Posts              *service.PostService
	Resolver           *auth.Resolver
	Blurrer            *blur.Blurrer
	Logger             *zap.Logger
	CookieSecure       bool
	CookieSameSite     http.SameSite
	CorsAllowedOrigins []string
}

func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   deps.CorsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler)
	r.Use(middleware.Principal(deps.Resolver))

	postsHandler := NewPostsHandler(deps.Posts, deps.Logger)
	authHandler := NewAuthHandler(deps.Resolver, deps.CookieSecure, deps.CookieSameSite, deps.Logger)
	blurHandler := NewBlurHandler(deps.Blurrer, deps.Logger)

	r.Get("/health", Health)
	r.Post("/auth", authHandler.Login)
	r.Post("/logout", authHandler.Logout)
	r.Get("/me", authHandler.Me)

	r.Route("/posts", func(r chi.Router) {
		r.Get("/", postsHandler.List)
		r.Post("/blur", blurHandler.Blur)
		r.Get("/{id}", postsHandler.Get)
		r.Post("/{id}/view", postsHandler.View)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Post("/", postsHandler.Create)
			r.Put("/{id}", postsHandler.Update)
			r.Delete("/{id}", postsHandler.Delete)
		})
	})

	return r
}
