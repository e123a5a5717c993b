package server

import "context"

// Server defines the lifecycle contract of the backend transport.
type Server interface {
	// RunServer serves requests until a stop signal arrives.
	RunServer()

	// Run serves requests until ctx is cancelled and returns the first
	// serving or shutdown error.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown(ctx context.Context) error
}
