package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/2YH02/portfolio-be/internal/auth"
	"github.com/2YH02/portfolio-be/internal/blur"
	"github.com/2YH02/portfolio-be/internal/config"
	"github.com/2YH02/portfolio-be/internal/db"
	"github.com/2YH02/portfolio-be/internal/handlers"
	"github.com/2YH02/portfolio-be/internal/logs"
	"github.com/2YH02/portfolio-be/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logs.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	store, err := db.NewStore(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("db connect failed", zap.Error(err))
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		logger.Fatal("failed to migrate posts table", zap.Error(err))
	}

	codec := auth.NewCodec(cfg.JWTSecret, auth.TokenTTL)
	router := handlers.NewRouter(handlers.RouterDeps{
		Posts:              service.NewPostService(store, logger, cfg.PageSize),
		Resolver:           auth.NewResolver(codec, cfg.AdminUser, cfg.AdminPass, cfg.LegacyAuthHeader),
		Blurrer:            blur.NewBlurrer(cfg.BlurFetchTimeout, cfg.BlurMaxBytes),
		Logger:             logger,
		CookieSecure:       cfg.CookieSecure,
		CookieSameSite:     cfg.CookieSameSite,
		CorsAllowedOrigins: cfg.CorsAllowedOrigins,
	})

	srv := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("listening", zap.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
