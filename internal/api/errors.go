package api

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a request failure. Every error leaving the client core
// is an *Error carrying exactly one Kind, so callers match on the closed
// set instead of probing optional fields.
type Kind int

const (
	// KindGeneric is any failure not covered by the other kinds.
	KindGeneric Kind = iota
	// KindTimeout means the per-request deadline fired and the call was aborted.
	KindTimeout
	// KindNetwork means the transport could not reach the server at all
	// (DNS failure, connection refused).
	KindNetwork
	// KindHTTPStatus means the server answered with a non-2xx status.
	KindHTTPStatus
)

func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindNetwork:
		return "network"
	case KindHTTPStatus:
		return "http_status"
	default:
		return "generic"
	}
}

// Error is the single error type produced by the client core.
type Error struct {
	Kind       Kind
	StatusCode int      // set when Kind is KindHTTPStatus
	Message    string   // human-readable, safe to display
	Details    []string // server-supplied errors array, when present
	Err        error    // underlying cause
}

func (e *Error) Error() string {
	if len(e.Details) > 0 {
		return fmt.Sprintf("%s (%s)", e.Message, strings.Join(e.Details, "; "))
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsTimeout reports whether err is a request-timeout failure.
func IsTimeout(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindTimeout
}

// IsNetwork reports whether err is a transport-level failure.
func IsNetwork(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindNetwork
}

// HTTPStatus extracts the status code when err is a non-2xx response error.
func HTTPStatus(err error) (int, bool) {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindHTTPStatus {
		return e.StatusCode, true
	}
	return 0, false
}

func timeoutError(err error) *Error {
	return &Error{
		Kind:    KindTimeout,
		Message: "request timed out; check your connection and try again",
		Err:     err,
	}
}

func networkError(err error) *Error {
	return &Error{
		Kind:    KindNetwork,
		Message: "cannot reach the server; check your connection",
		Err:     err,
	}
}

func genericError(msg string, err error) *Error {
	return &Error{Kind: KindGeneric, Message: msg, Err: err}
}
