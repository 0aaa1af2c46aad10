package utils

import (
	"fmt"
	"net/http"
	"testing"
)

func TestErrorCodesSurviveWrapping(t *testing.T) {
	err := fmt.Errorf("login failed: %w", UnauthorizedError("incorrect password"))
	if !IsUnauthorized(err) {
		t.Fatalf("code lost through wrapping: %v", err)
	}
	if IsNotFound(err) {
		t.Fatal("wrong code matched")
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{NotFoundError("x"), http.StatusNotFound},
		{UnauthorizedError("x"), http.StatusUnauthorized},
		{ConflictError("x"), http.StatusConflict},
		{UnavailableError("x"), http.StatusServiceUnavailable},
		{ConfigurationError("x", nil), http.StatusInternalServerError},
		{fmt.Errorf("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}
