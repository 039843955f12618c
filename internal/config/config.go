package config

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddr         string
	DatabaseURL        string
	AdminUser          string
	AdminPass          string
	JWTSecret          string
	CookieSecure       bool
	CookieSameSite     http.SameSite
	CorsAllowedOrigins []string
	LegacyAuthHeader   bool
	PageSize           int
	BlurFetchTimeout   time.Duration
	BlurMaxBytes       int64
	LogLevel           string
	LogFormat          string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		ServerAddr:         getEnv("SERVER_ADDR", "0.0.0.0:8080"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		AdminUser:          getEnv("ADMIN_USER", "guest"),
		AdminPass:          getEnv("ADMIN_PASS", "secret"),
		JWTSecret:          getEnv("JWT_SECRET", "change-me-in-production"),
		CorsAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "json"),
	}
	if port := getEnv("PORT", ""); port != "" {
		cfg.ServerAddr = ":" + port
	}

	var err error
	if cfg.CookieSecure, err = getBool("COOKIE_SECURE", false); err != nil {
		return Config{}, err
	}
	if cfg.LegacyAuthHeader, err = getBool("AUTH_LEGACY_HEADER", true); err != nil {
		return Config{}, err
	}
	if cfg.CookieSameSite, err = parseSameSite(getEnv("COOKIE_SAMESITE", "lax")); err != nil {
		return Config{}, err
	}
	if cfg.PageSize, err = getInt("PAGE_SIZE", 12); err != nil {
		return Config{}, err
	}
	if cfg.PageSize <= 0 {
		return Config{}, errors.New("PAGE_SIZE must be positive")
	}
	if cfg.BlurFetchTimeout, err = time.ParseDuration(getEnv("BLUR_FETCH_TIMEOUT", "10s")); err != nil {
		return Config{}, fmt.Errorf("BLUR_FETCH_TIMEOUT: %w", err)
	}
	maxBytes, err := getInt("BLUR_MAX_BYTES", 10<<20)
	if err != nil {
		return Config{}, err
	}
	cfg.BlurMaxBytes = int64(maxBytes)

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL is required")
	}
	if cfg.CookieSameSite == http.SameSiteNoneMode && !cfg.CookieSecure {
		return Config{}, errors.New("COOKIE_SAMESITE=none requires COOKIE_SECURE=true")
	}
	// The router allows credentials, so every origin must be named.
	if len(cfg.CorsAllowedOrigins) == 0 {
		return Config{}, errors.New("CORS_ALLOWED_ORIGINS must list at least one origin")
	}
	for _, origin := range cfg.CorsAllowedOrigins {
		if origin == "*" {
			return Config{}, errors.New("CORS_ALLOWED_ORIGINS cannot contain * when credentials are allowed")
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getBool(key string, fallback bool) (bool, error) {
	value := getEnv(key, "")
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return parsed, nil
}

func getInt(key string, fallback int) (int, error) {
	value := getEnv(key, "")
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return parsed, nil
}

func parseSameSite(value string) (http.SameSite, error) {
	switch strings.ToLower(value) {
	case "lax":
		return http.SameSiteLaxMode, nil
	case "strict":
		return http.SameSiteStrictMode, nil
	case "none":
		return http.SameSiteNoneMode, nil
	default:
		return 0, fmt.Errorf("COOKIE_SAMESITE: unknown mode %q", value)
	}
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
