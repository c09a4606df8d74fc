// Package http provides HTTP utilities including chi-compatible error handling
package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	apperrors "github.com/etherspot/arka-sub001/pkg/app/errors"
)

const maxBodySize = 1 << 20

// HandlerFunc defines a function that returns an error for clean error handling
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// HandleError wraps an error-returning HandlerFunc into a standard http.HandlerFunc.
//
// Usage with chi:
//
//	r.Post("/v1/sponsorship/decide", http.HandleError(h.decide))
func HandleError(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			DefaultErrorHandler(w, err)
		}
	}
}

type errorResponse struct {
	ErrMsg     string `json:"error"`
	ErrMsgCode int    `json:"code"`
}

// DefaultErrorHandler writes err as a JSON error body. Errors that are not a ServiceError are
// reported as a generic 500 so internals never leak to clients.
func DefaultErrorHandler(w http.ResponseWriter, err error) {
	var svcErr *apperrors.ServiceError
	if errors.As(err, &svcErr) {
		WriteJSON(w, svcErr.StatusCode(), &errorResponse{
			ErrMsg:     svcErr.Message,
			ErrMsgCode: svcErr.StatusCode(),
		})
		return
	}

	WriteJSON(w, http.StatusInternalServerError, &errorResponse{
		ErrMsg:     "Unexpected Service Error",
		ErrMsgCode: http.StatusInternalServerError,
	})
}

// WriteJSON writes data with the given status
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// DecodeJSON reads at most 1MB of the request body into v
func DecodeJSON(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}
	if err := json.Unmarshal(body, v); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}
	return nil
}
