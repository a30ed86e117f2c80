package api

import (
	"errors"
	"fmt"
	"net/http"
)

// RequestError is returned for every failed request: non-2xx responses and
// transport failures alike. StatusCode is zero when no response arrived.
type RequestError struct {
	StatusCode int
	Message    string
	RequestID  string
	Cause      error
}

// Error returns the human-readable message, suitable for display.
func (e *RequestError) Error() string {
	return e.Message
}

// Unwrap returns the transport error, if any.
func (e *RequestError) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the response status; zero for transport failures.
func (e *RequestError) HTTPStatus() int {
	return e.StatusCode
}

// IsTransport reports whether the request never produced a response.
func (e *RequestError) IsTransport() bool {
	return e.StatusCode == 0
}

// StatusCode returns the HTTP status carried by err, or zero.
func StatusCode(err error) int {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode
	}
	return 0
}

// IsUnauthorized reports whether err is a 401 response.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// MessageOr returns the server message carried by err, or fallback when
// err carries none.
func MessageOr(err error, fallback string) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) && reqErr.Message != "" {
		return reqErr.Message
	}
	return fallback
}

func statusMessage(status int) string {
	return fmt.Sprintf("Request failed with status %d", status)
}
