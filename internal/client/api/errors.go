package api

import (
	"errors"
	"fmt"
)

// ServiceError is returned when the server explicitly rejected a call
// (validation, conflict, not found). Retrying the same call will not help.
type ServiceError struct {
	Method  string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: service error: %s", e.Method, e.Message)
}

// TransportError is returned when the call did not complete: network
// failure, timeout, server failure or an unreadable response.
// Extractable via errors.As(). Supports Unwrap().
type TransportError struct {
	Err        error
	Method     string
	StatusCode int
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: transport error (status %d): %v", e.Method, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: transport error: %v", e.Method, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsTransient reports whether err is worth retrying later.
// Only transport errors are transient.
func IsTransient(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}

// IsServiceError reports whether the server rejected the call.
func IsServiceError(err error) bool {
	var serviceErr *ServiceError
	return errors.As(err, &serviceErr)
}
