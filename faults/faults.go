// Package faults defines the error taxonomy shared by the extraction
// pipeline and the job orchestration layer. Every failure surfaced to a
// caller carries a kind, reported as the error_type field of failure
// responses.
package faults

import (
	"errors"
	"fmt"
)

// Kind classifies an error for response mapping and retry policy.
type Kind string

const (
	// KindValidation marks request-validation failures: missing or
	// malformed source locator, unsupported extraction mode, unparsable
	// message body. Never retried, extraction never attempted.
	KindValidation Kind = "ValidationError"

	// KindAuth marks authentication failures, checked before any other
	// processing.
	KindAuth Kind = "AuthenticationError"

	// KindLimit marks documents rejected for exceeding the byte-size or
	// page-count ceiling before extraction runs.
	KindLimit Kind = "LimitExceededError"

	// KindExtraction marks failures raised by the parse/extract step.
	KindExtraction Kind = "ExtractionError"

	// KindNotification marks failures in the post-extraction side effects:
	// result persistence, webhook delivery, event emission.
	KindNotification Kind = "NotificationError"

	// KindInternal is the fallback for errors with no explicit kind.
	KindInternal Kind = "InternalError"
)

// Error is a classified error. Extra carries optional response fields for
// client errors, such as expected_format or valid_values.
type Error struct {
	Kind  Kind
	Msg   string
	Err   error
	Extra map[string]any
}

// WithExtra attaches a response field to the error and returns it.
func (e *Error) WithExtra(key string, value any) *Error {
	if e.Extra == nil {
		e.Extra = make(map[string]any)
	}
	e.Extra[key] = value
	return e
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// New creates a classified error wrapping an optional cause.
func New(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

// Validationf creates a request-validation error.
func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

// Authf creates an authentication error.
func Authf(format string, args ...any) *Error {
	return &Error{Kind: KindAuth, Msg: fmt.Sprintf(format, args...)}
}

// Limitf creates a resource-limit error.
func Limitf(format string, args ...any) *Error {
	return &Error{Kind: KindLimit, Msg: fmt.Sprintf(format, args...)}
}

// Extraction wraps a parse/extract failure.
func Extraction(msg string, cause error) *Error {
	return &Error{Kind: KindExtraction, Msg: msg, Err: cause}
}

// Notification wraps a side-effect failure.
func Notification(msg string, cause error) *Error {
	return &Error{Kind: KindNotification, Msg: msg, Err: cause}
}

// KindOf returns the kind of an error, or KindInternal when the error
// carries none.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindInternal
}

// IsKind reports whether the error carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
