package adapter

import (
	"errors"
	"fmt"
)

// StatusNetworkFailure is the StatusCode of a [TransportError] raised before
// any HTTP response was received (connection refused, DNS failure, timeout).
const StatusNetworkFailure = 0

// ErrTransport is matched by every [*TransportError] via errors.Is.
var ErrTransport = errors.New("transport failure")

// TransportError is the single error shape returned by [ChatbotAdapter].
type TransportError struct {
	// Op names the adapter operation, e.g. "send chat".
	Op string
	// StatusCode is the HTTP status, or StatusNetworkFailure.
	StatusCode int
	// Message is a human-readable description of the failure.
	Message string
	// Err is the underlying cause, if any.
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is reports whether target is [ErrTransport].
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// IsNetworkFailure reports whether no HTTP response was received.
func (e *TransportError) IsNetworkFailure() bool {
	return e.StatusCode == StatusNetworkFailure
}
