package client

import "errors"

// ErrNotConfigured is returned by [NewApp] when services or the UI are missing.
var ErrNotConfigured = errors.New("client app is not configured")
