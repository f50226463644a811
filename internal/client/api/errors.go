package api

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable  = errors.New("service unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("already exists")
	ErrNotFound     = errors.New("not found")
)

// errMalformedBody marks a 2xx response whose body could not be decoded.
// Callers that tolerate it (the list fetch) match it with errors.Is.
var errMalformedBody = errors.New("malformed response body")

// RequestError carries the HTTP status and server-provided message of a
// failed call. When the status maps to a sentinel class (ErrUnauthorized,
// ErrConflict, ErrNotFound), errors.Is matches it through Unwrap.
type RequestError struct {
	Status  int
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api request failed: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api request failed: status %d", e.Status)
}

func (e *RequestError) Unwrap() error { return e.Err }
