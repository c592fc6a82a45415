package cloud

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a required argument is missing.
	// It is always returned before any network call is made.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAuthConfiguration is returned when the app SID or app key is unset.
	ErrAuthConfiguration = errors.New("auth configuration error")

	// ErrTransport is returned on connection failures and on non-2xx responses
	// that do not carry a JSON envelope.
	ErrTransport = errors.New("transport error")

	// ErrNotFoundOrError is returned by Result.Get when the envelope code is not
	// 200. The remote API uses the same shape for "not found" and for any other
	// failure, so the two cannot be told apart here; inspect EnvelopeError.Code.
	ErrNotFoundOrError = errors.New("not found or error")
)

// ArgumentError names the argument that failed validation.
type ArgumentError struct {
	Field string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s not specified", e.Field)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// RequireString returns an ArgumentError if value is empty.
func RequireString(field, value string) error {
	if value == "" {
		return &ArgumentError{Field: field}
	}
	return nil
}

// RequireID returns an ArgumentError if id is not a positive identifier.
func RequireID(field string, id int) error {
	if id <= 0 {
		return &ArgumentError{Field: field}
	}
	return nil
}

// TransportError describes a failed HTTP exchange.
type TransportError struct {
	Method     string
	URI        string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Method, e.URI, e.Err)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.URI, e.StatusCode, e.Body)
}

func (e *TransportError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrTransport, e.Err}
	}
	return []error{ErrTransport}
}

// EnvelopeError carries the code and status of a non-200 envelope.
type EnvelopeError struct {
	Code   int
	Status string
}

func (e *EnvelopeError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("%v (code %d): %s", ErrNotFoundOrError, e.Code, e.Status)
	}
	return fmt.Sprintf("%v (code %d)", ErrNotFoundOrError, e.Code)
}

func (e *EnvelopeError) Unwrap() error {
	return ErrNotFoundOrError
}
