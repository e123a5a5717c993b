package service

import "errors"

var (
	// ErrVersionIsNotSpecified is returned when the backend is started
	// without an application version.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	// ErrAgentFailed is returned when the answering agent cannot produce a
	// reply.
	ErrAgentFailed = errors.New("agent failed to respond")
)
