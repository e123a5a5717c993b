package session

import "errors"

// ErrUnknownConversation is returned when an operation names a conversation
// that is not in the current list.
var ErrUnknownConversation = errors.New("unknown conversation")

// ErrorKind classifies a session error.
type ErrorKind int

const (
	// ErrorKindTransport marks failures of the backend exchange (network,
	// non-2xx status, malformed body). These are surfaced to the user.
	ErrorKindTransport ErrorKind = iota + 1
	// ErrorKindValidation marks rejected input. Validation skips are
	// silent, so this kind is never stored by the services.
	ErrorKindValidation
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindTransport:
		return "transport"
	case ErrorKindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error is the single user-facing error slot of the session.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}
