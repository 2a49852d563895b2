package tmdb

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid tmdb configuration")
	// ErrInvalidPage indicates a page number below 1
	ErrInvalidPage = errors.New("page must be a positive integer")
	// ErrInvalidMovieID indicates a movie ID that is not a positive integer
	ErrInvalidMovieID = errors.New("movie ID must be a positive integer")
	// ErrEmptyQuery indicates a search query that is blank after trimming
	ErrEmptyQuery = errors.New("search query must not be empty")
	// ErrNotFound matches an UpstreamError carrying a 404 status
	ErrNotFound = errors.New("resource not found")
)

// ValidationError reports an input constraint violation detected before
// any request was built.
type ValidationError struct {
	Field string
	Value any
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("tmdb: invalid %s %v: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// TransportError indicates the request never produced a response: DNS
// failure, connection reset, timeout or context cancellation.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("tmdb: request to %s failed: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UpstreamError represents a response whose status is outside 200-299.
// Body holds a bounded prefix of the response for diagnostics only.
type UpstreamError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("tmdb API error: %s: status %d: %s", e.Endpoint, e.StatusCode, http.StatusText(e.StatusCode))
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses
func (e *UpstreamError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// IsNotFound checks if the error indicates a not found response
func (e *UpstreamError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *UpstreamError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsClientError reports a 4xx status
func (e *UpstreamError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// IsServerError reports a 5xx status
func (e *UpstreamError) IsServerError() bool {
	return e.StatusCode >= 500
}

// DecodeError indicates a 2xx body that is not valid JSON or does not match
// the expected shape.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("tmdb: failed to decode %s response: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
