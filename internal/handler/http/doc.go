// Package http implements the REST surface of the development backend.
//
// It exposes route wiring, request handlers, and middleware. Request
// tracing, access logging and response compression are handled in this
// package before requests are delegated to the service layer. Failures are
// reported as {"detail": "..."} bodies with the status chosen by
// [statusFromError].
package http
