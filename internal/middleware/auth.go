package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2YH02/portfolio-be/internal/apperr"
	"github.com/2YH02/portfolio-be/internal/auth"
	"github.com/2YH02/portfolio-be/internal/models"
)

type contextKey string

const principalContextKey contextKey = "principal"

// Principal resolves the caller once per request and stores it in the context.
// Bad or missing credentials resolve to a guest; they never fail the request.
func Principal(resolver *auth.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := resolver.Resolve(r)
			ctx := context.WithValue(r.Context(), principalContextKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func PrincipalFrom(ctx context.Context) models.Principal {
	principal, ok := ctx.Value(principalContextKey).(models.Principal)
	if !ok {
		return models.Guest()
	}
	return principal
}

// RequireAdmin answers 401 without calling next unless the caller is the admin.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !auth.IsAdmin(PrincipalFrom(r.Context())) {
			err := apperr.Unauthorized("unauthorized")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(apperr.Status(err))
			_ = json.NewEncoder(w).Encode(map[string]string{"error": apperr.PublicMessage(err)})
			return
		}
		next.ServeHTTP(w, r)
	})
}
