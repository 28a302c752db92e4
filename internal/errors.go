package internal

import (
	"errors"
	"fmt"
)

// ErrNotAuthenticated is returned when a call needs a session that has no token
var ErrNotAuthenticated = errors.New("not authenticated")

// AuthenticationError represents a login that produced no auth token
type AuthenticationError struct {
	Username string
	Err      error
}

func (e *AuthenticationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("authentication failed for %s", e.Username)
	}
	return fmt.Sprintf("authentication failed for %s: %v", e.Username, e.Err)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// FetchError represents a read endpoint that could not be fetched or decoded
type FetchError struct {
	Endpoint string // e.g. "/gyms"
	Op       string // "request", "decode"
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch error: %s %s: %v", e.Op, e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ValidationError represents user input that fails a workflow gate
type ValidationError struct {
	Field  string // "username", "gym", "date", "event"
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// BookingError represents a booking submission the service did not accept
type BookingError struct {
	EventID    int
	StatusCode int // 0 when the request never got a response
	Err        error
}

func (e *BookingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("booking error [event %d]: %v", e.EventID, e.Err)
	}
	return fmt.Sprintf("booking error [event %d]: status %d", e.EventID, e.StatusCode)
}

func (e *BookingError) Unwrap() error {
	return e.Err
}
