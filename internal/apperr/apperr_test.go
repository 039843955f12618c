package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{BadRequest("title is required"), http.StatusBadRequest},
		{Unauthorized("unauthorized"), http.StatusUnauthorized},
		{NotFound(), http.StatusNotFound},
		{Internal("db", errors.New("boom")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", NotFound()), http.StatusNotFound},
	}
	for _, test := range tests {
		if status := Status(test.err); status != test.status {
			t.Errorf("Expected %d for %q, but got %d", test.status, test.err, status)
		}
	}
}

func TestPublicMessage(t *testing.T) {
	if msg := PublicMessage(BadRequest("body is required")); msg != "body is required" {
		t.Errorf("Expected bad request message, but got %q", msg)
	}
	internal := Internal("list posts", errors.New("pq: connection refused"))
	if msg := PublicMessage(internal); msg != "internal server error" {
		t.Errorf("Internal message leaked: %q", msg)
	}
	if !errors.Is(internal, internal.(*Error).Err) {
		t.Error("Expected internal error to unwrap to its cause")
	}
}
