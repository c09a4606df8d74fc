package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusCodes(t *testing.T) {
	cause := errors.New("cause")
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"bad request", BadRequestError(cause, "bad"), http.StatusBadRequest},
		{"unauthorized", UnAuthorizedError(nil, "who"), http.StatusUnauthorized},
		{"not found", ResourceNotFoundError(nil, "missing"), http.StatusNotFound},
		{"conflict", ConflictError(cause, "dup"), http.StatusConflict},
		{"dependency", DependencyFailureError(cause, "db"), http.StatusBadGateway},
		{"unavailable", UnavailableError(nil, "warming up"), http.StatusServiceUnavailable},
		{"general", GeneralError(nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var svcErr *ServiceError
			if !errors.As(tt.err, &svcErr) {
				t.Fatalf("expected ServiceError, got %T", tt.err)
			}
			if got := svcErr.StatusCode(); got != tt.want {
				t.Fatalf("expected status %d, got %d", tt.want, got)
			}
		})
	}
}

func TestIs_ThroughWrapping(t *testing.T) {
	cause := errors.New("address already whitelisted")
	err := fmt.Errorf("add: %w", ConflictError(cause, "already whitelisted"))

	if !Is(err, CategoryDataConflict) {
		t.Fatal("expected conflict category through wrapping")
	}
	if Is(err, CategoryResourceNotFound) {
		t.Fatal("unexpected not found category")
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected cause to be reachable via Unwrap")
	}
}

func TestIsInternalError(t *testing.T) {
	if !IsInternalError(errors.New("plain")) {
		t.Fatal("plain errors are internal")
	}
	if !IsInternalError(DependencyFailureError(nil, "db")) {
		t.Fatal("dependency failures are internal")
	}
	if IsInternalError(BadRequestError(nil, "bad")) {
		t.Fatal("client errors are not internal")
	}
}
