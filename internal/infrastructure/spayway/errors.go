package spayway

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by Client carries exactly one of them and can be
// matched with errors.Is.
var (
	// ErrConfig reports an invalid client configuration; raised before any network call.
	ErrConfig = errors.New("spayway: invalid client configuration")

	// ErrTransport reports a network, TLS or timeout failure. Safe to retry.
	ErrTransport = errors.New("spayway: transport error")

	// ErrResponseFormat reports a body that is not the expected JSON. Safe to retry.
	ErrResponseFormat = errors.New("spayway: invalid response format")

	// ErrAPI reports a well-formed response signalling a business failure.
	ErrAPI = errors.New("spayway: api error")
)

const (
	fallbackStatusMessage  = "Unknown error"
	fallbackFailureMessage = "Request failed"
)

// Error is the single error type surfaced by Client.
//
// StatusCode is set only for ErrAPI raised on a non-200 response; a 200 response
// with success != true yields StatusCode 0.
type Error struct {
	Kind       error
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrAPI:
		if e.StatusCode != 0 {
			return fmt.Sprintf("API Error (%d): %s", e.StatusCode, e.Message)
		}
		return e.Message
	case ErrTransport:
		return "transport error: " + e.Message
	case ErrResponseFormat:
		return "invalid JSON response: " + e.Message
	default:
		return "invalid configuration: " + e.Message
	}
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// HasStatus reports whether the error came with an HTTP status code.
func (e *Error) HasStatus() bool {
	return e.StatusCode != 0
}

func configError(msg string) *Error {
	return &Error{Kind: ErrConfig, Message: msg}
}

func transportError(err error) *Error {
	return &Error{Kind: ErrTransport, Message: err.Error(), Err: err}
}

func formatError(err error) *Error {
	return &Error{Kind: ErrResponseFormat, Message: err.Error(), Err: err}
}

func apiError(status int, msg string) *Error {
	return &Error{Kind: ErrAPI, StatusCode: status, Message: msg}
}

// AsError extracts the typed gateway error from err, if present.
func AsError(err error) (*Error, bool) {
	var gwErr *Error
	if errors.As(err, &gwErr) {
		return gwErr, true
	}
	return nil, false
}

// IsRetryable reports whether err is a transient integration fault
// (transport or response-format error).
func IsRetryable(err error) bool {
	return errors.Is(err, ErrTransport) || errors.Is(err, ErrResponseFormat)
}
