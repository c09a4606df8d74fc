// Package errors defines the error categories surfaced to API clients.
package errors

import (
	"errors"
	"net/http"
)

// Category classifies a ServiceError for clients and for logging.
type Category int

const (
	// CategoryGeneralError the service failed in an unexpected way
	CategoryGeneralError Category = iota
	// CategoryDataError the request carried invalid or malformed input
	CategoryDataError
	// CategoryUnauthorized the caller presented no credential or an unknown one
	CategoryUnauthorized
	// CategoryResourceNotFound the referenced resource does not exist
	CategoryResourceNotFound
	// CategoryDataConflict the write would conflict with existing data
	CategoryDataConflict
	// CategoryDependencyFailure a collaborator (database, price source) failed
	CategoryDependencyFailure
	// CategoryUnavailable the service is not ready to serve the request
	CategoryUnavailable
)

var categoryNames = map[Category]string{
	CategoryGeneralError:      "CategoryGeneralError",
	CategoryDataError:         "CategoryDataError",
	CategoryUnauthorized:      "CategoryUnauthorized",
	CategoryResourceNotFound:  "CategoryResourceNotFound",
	CategoryDataConflict:      "CategoryDataConflict",
	CategoryDependencyFailure: "CategoryDependencyFailure",
	CategoryUnavailable:       "CategoryUnavailable",
}

var categoryStatus = map[Category]int{
	CategoryGeneralError:      http.StatusInternalServerError,
	CategoryDataError:         http.StatusBadRequest,
	CategoryUnauthorized:      http.StatusUnauthorized,
	CategoryResourceNotFound:  http.StatusNotFound,
	CategoryDataConflict:      http.StatusConflict,
	CategoryDependencyFailure: http.StatusBadGateway,
	CategoryUnavailable:       http.StatusServiceUnavailable,
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return categoryNames[CategoryGeneralError]
}

// ServiceError carries a client-facing Message and the underlying Err, which is only logged.
type ServiceError struct {
	Category Category
	Message  string
	Err      error
}

func (err ServiceError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}

func (err ServiceError) Unwrap() error {
	return err.Err
}

// StatusCode returns the HTTP status for the error category.
func (err ServiceError) StatusCode() int {
	if code, ok := categoryStatus[err.Category]; ok {
		return code
	}
	return http.StatusInternalServerError
}

// Is reports whether err is a ServiceError of category cat.
func Is(err error, cat Category) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr) && svcErr.Category == cat
}

// IsInternalError reports whether err should be treated as a server-side failure.
func IsInternalError(err error) bool {
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		return true
	}
	return svcErr.Category == CategoryGeneralError ||
		svcErr.Category == CategoryDependencyFailure ||
		svcErr.Category == CategoryUnavailable
}

func newError(cat Category, err error, message, fallback string) error {
	if err == nil {
		err = errors.New(fallback + ": " + message)
	}
	return &ServiceError{Category: cat, Message: message, Err: err}
}

// GeneralError hides err behind "Internal Server Error".
func GeneralError(err error) error {
	return newError(CategoryGeneralError, err, "Internal Server Error", "internal server error")
}

// BadRequestError reports invalid client input.
func BadRequestError(err error, message string) error {
	return newError(CategoryDataError, err, message, "bad request")
}

// UnAuthorizedError reports a missing or unknown credential.
func UnAuthorizedError(err error, message string) error {
	return newError(CategoryUnauthorized, err, message, "unauthorized")
}

// ResourceNotFoundError reports a missing resource.
func ResourceNotFoundError(err error, message string) error {
	return newError(CategoryResourceNotFound, err, message, "resource not found")
}

// ConflictError reports a write conflicting with existing data.
func ConflictError(err error, message string) error {
	return newError(CategoryDataConflict, err, message, "conflict")
}

// DependencyFailureError reports a failing collaborator.
func DependencyFailureError(err error, message string) error {
	return newError(CategoryDependencyFailure, err, message, "dependency failure")
}

// UnavailableError reports that the service cannot serve requests yet.
func UnavailableError(err error, message string) error {
	return newError(CategoryUnavailable, err, message, "unavailable")
}
