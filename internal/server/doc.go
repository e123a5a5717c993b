// Package server runs the development backend's HTTP server.
//
// It owns signal handling and graceful shutdown: the server stops when
// SIGTERM, SIGINT or SIGQUIT arrives or when the parent context is
// cancelled.
package server
