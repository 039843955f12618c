package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/2YH02/portfolio-be/internal/auth"
	"github.com/2YH02/portfolio-be/internal/models"
)

func TestRequireAdmin(t *testing.T) {
	codec := auth.NewCodec("secret", auth.TokenTTL)
	resolver := auth.NewResolver(codec, "admin", "pw", false)
	called := 0
	handler := Principal(resolver)(RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called++
		if principal := PrincipalFrom(r.Context()); principal.Role != models.RoleAdmin {
			t.Errorf("Expected admin principal, but got %+v", principal)
		}
		w.WriteHeader(http.StatusNoContent)
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/posts", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, but got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != `{"error":"unauthorized"}` {
		t.Errorf("Unexpected body: %s", body)
	}
	if called != 0 {
		t.Error("Gate must not call the next handler")
	}

	token, err := codec.Issue("admin", "Admin")
	if err != nil {
		t.Fatal("Error: ", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/posts", nil)
	req.AddCookie(&http.Cookie{Name: auth.TokenCookieName, Value: token})
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent || called != 1 {
		t.Errorf("Expected admin to pass the gate, got %d (called=%d)", rec.Code, called)
	}
}

func TestPrincipalFrom_Default(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if principal := PrincipalFrom(req.Context()); principal != models.Guest() {
		t.Errorf("Expected guest, but got %+v", principal)
	}
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	handler := Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("tea"))
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, but got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["status"] != int64(http.StatusTeapot) || fields["path"] != "/health" || fields["bytes"] != int64(3) {
		t.Errorf("Unexpected fields: %v", fields)
	}
}
