package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the Grocey API. Message comes from the
// response body when the server sent one, otherwise a generic placeholder.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("grocey api: %s (status %d)", e.Message, e.StatusCode)
}

// NetworkError means no response was received at all: DNS failure, refused
// connection, broken pipe. It is distinct from an APIError so callers can
// tell "server said no" from "server unreachable".
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("grocey api: %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is an APIError with status 404. The server
// soft-deletes, so a 404 only means the entity is no longer readable.
func IsNotFound(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether err is an APIError with status 401.
func IsUnauthorized(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.StatusCode == http.StatusUnauthorized
}

// IsCancelled reports whether err came from a cancelled or expired context
// rather than from the server.
func IsCancelled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// IsNetworkError reports whether err is a transport-level failure.
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}
