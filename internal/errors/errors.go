// Package errors provides standardized domain errors with codes for the catalog API.
//
// Usage:
//
//	// In services - return typed errors
//	if exists {
//	    return errors.DuplicateISBN("a book with this ISBN number already exists")
//	}
//
//	// In handlers - delegate to response.HandleError, or check explicitly
//	if errors.Is(err, errors.ErrNotFound) {
//	    response.NotFound(w, err.Error(), logger)
//	    return
//	}
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Re-export standard library functions for convenience.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	Join   = errors.Join
)

// Code represents a machine-readable error code.
type Code string

// Error codes used throughout the application.
const (
	CodeNotFound              Code = "NOT_FOUND"
	CodeValidation            Code = "VALIDATION"
	CodeInvalidGenre          Code = "INVALID_GENRE"
	CodeDuplicateISBN         Code = "DUPLICATE_ISBN"
	CodeInvalidISBN           Code = "INVALID_ISBN"
	CodeInvalidRatingValue    Code = "INVALID_RATING_VALUE"
	CodeUnsupportedMediaType  Code = "UNSUPPORTED_MEDIA_TYPE"
	CodeEnrichmentUnavailable Code = "ENRICHMENT_UNAVAILABLE"
	CodeInternal              Code = "INTERNAL"
)

// HTTPStatus returns the appropriate HTTP status code for an error code.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeValidation, CodeInvalidGenre, CodeDuplicateISBN, CodeInvalidRatingValue:
		return http.StatusUnprocessableEntity
	case CodeInvalidISBN:
		return http.StatusBadRequest
	case CodeUnsupportedMediaType:
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}

// Error is a domain error with a code, message, and optional details.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
	cause   error  // unexported, for wrapping
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target matches this error.
// Matches if target is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// HTTPStatus returns the HTTP status code for this error.
func (e *Error) HTTPStatus() int {
	return e.Code.HTTPStatus()
}

// WithCause wraps an underlying error.
func (e *Error) WithCause(err error) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		cause:   err,
	}
}

// Sentinel errors for use with errors.Is().
var (
	ErrNotFound              = &Error{Code: CodeNotFound, Message: "not found"}
	ErrValidation            = &Error{Code: CodeValidation, Message: "validation error"}
	ErrInvalidGenre          = &Error{Code: CodeInvalidGenre, Message: "invalid genre"}
	ErrDuplicateISBN         = &Error{Code: CodeDuplicateISBN, Message: "duplicate ISBN"}
	ErrInvalidISBN           = &Error{Code: CodeInvalidISBN, Message: "invalid ISBN"}
	ErrInvalidRatingValue    = &Error{Code: CodeInvalidRatingValue, Message: "invalid rating value"}
	ErrUnsupportedMediaType  = &Error{Code: CodeUnsupportedMediaType, Message: "unsupported media type"}
	ErrEnrichmentUnavailable = &Error{Code: CodeEnrichmentUnavailable, Message: "enrichment unavailable"}
	ErrInternal              = &Error{Code: CodeInternal, Message: "internal error"}
)

// Constructor functions for creating errors with custom messages.

// NotFound creates a not found error.
func NotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg}
}

// NotFoundf creates a not found error with formatted message.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// Validation creates a validation error.
func Validation(msg string) *Error {
	return &Error{Code: CodeValidation, Message: msg}
}

// ValidationWithDetails creates a validation error with details.
func ValidationWithDetails(msg string, details any) *Error {
	return &Error{Code: CodeValidation, Message: msg, Details: details}
}

// InvalidGenre creates an invalid genre error.
func InvalidGenre(msg string) *Error {
	return &Error{Code: CodeInvalidGenre, Message: msg}
}

// DuplicateISBN creates a duplicate ISBN error.
func DuplicateISBN(msg string) *Error {
	return &Error{Code: CodeDuplicateISBN, Message: msg}
}

// InvalidISBN creates an invalid ISBN error.
func InvalidISBN(msg string) *Error {
	return &Error{Code: CodeInvalidISBN, Message: msg}
}

// InvalidRatingValue creates an invalid rating value error.
func InvalidRatingValue(msg string) *Error {
	return &Error{Code: CodeInvalidRatingValue, Message: msg}
}

// UnsupportedMediaType creates an unsupported media type error.
func UnsupportedMediaType(msg string) *Error {
	return &Error{Code: CodeUnsupportedMediaType, Message: msg}
}

// EnrichmentUnavailable creates an enrichment unavailable error.
func EnrichmentUnavailable(msg string) *Error {
	return &Error{Code: CodeEnrichmentUnavailable, Message: msg}
}

// Internal creates an internal error.
func Internal(msg string) *Error {
	return &Error{Code: CodeInternal, Message: msg}
}

// Internalf creates an internal error with formatted message.
func Internalf(format string, args ...any) *Error {
	return &Error{Code: CodeInternal, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with a code and message.
func Wrap(err error, code Code, msg string) *Error {
	return &Error{Code: code, Message: msg, cause: err}
}
